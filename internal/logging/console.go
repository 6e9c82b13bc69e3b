package logging

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/mitchellh/colorstring"
	"github.com/rotisserie/eris"
)

var colorize = colorstring.Colorize{Colors: colorstring.DefaultColors}

// ConsoleWriter turns zerolog JSON events into short colored lines
type ConsoleWriter struct {
	out    io.Writer
	debug  bool
	buffer strings.Builder
	lock   sync.Mutex
}

// NewConsoleWriter creates a ConsoleWriter. With debug set every event field is printed.
func NewConsoleWriter(out io.Writer, debug bool) *ConsoleWriter {
	return &ConsoleWriter{out: out, debug: debug}
}

func (w *ConsoleWriter) Write(p []byte) (n int, err error) {
	w.lock.Lock()
	defer w.lock.Unlock()

	var evt map[string]interface{}
	d := json.NewDecoder(bytes.NewReader(p))
	d.UseNumber()
	if err := d.Decode(&evt); err != nil {
		return 0, eris.Wrapf(err, "cannot decode event: %s", p)
	}

	w.buffer.Reset()

	switch evt["level"] {
	case "fatal", "error":
		w.buffer.WriteString("[red]")
	case "warn":
		w.buffer.WriteString("[yellow]")
	case "debug", "trace":
		w.buffer.WriteString("[blue]")
	default:
		w.buffer.WriteString("[green]")
	}

	if module, ok := evt["module"].(string); ok {
		w.buffer.WriteString(module + ": ")
	}

	if evt["level"] == "error" {
		w.buffer.WriteString("Error: ")
	}

	// only the prefix goes through colorstring, message text may contain brackets
	line := colorize.Color(w.buffer.String())

	msg, _ := evt["message"].(string)
	if path, ok := evt["path"].(string); ok {
		msg = strings.ReplaceAll(msg, path, relativePath(path))
	}
	line += msg

	if errorDetails, ok := evt["error"].(string); ok {
		line += "\n" + errorDetails
	}

	if w.debug {
		keys := make([]string, 0, len(evt))
		for name := range evt {
			keys = append(keys, name)
		}
		sort.Strings(keys)

		line += "\n"
		for _, name := range keys {
			line += fmt.Sprintf("  %s: %+v\n", name, evt[name])
		}
	}

	line += colorize.Color("[reset]") + "\n"
	if _, err := io.WriteString(w.out, line); err != nil {
		return 0, err
	}
	return len(p), nil
}

// relativePath shortens path to be relative to the working directory when it lies below it
func relativePath(path string) string {
	if !filepath.IsAbs(path) {
		return path
	}
	cwd, err := os.Getwd()
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(cwd, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return rel
}
