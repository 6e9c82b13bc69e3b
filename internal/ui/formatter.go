package ui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"caselists/internal/discovery"
	"caselists/internal/domain"

	"github.com/fatih/color"
)

// Formatter formats and displays output
type Formatter struct {
	out io.Writer
}

// NewFormatter creates a new Formatter writing to stdout
func NewFormatter() *Formatter {
	return &Formatter{out: color.Output}
}

// NewFormatterTo creates a new Formatter writing to w
func NewFormatterTo(w io.Writer) *Formatter {
	return &Formatter{out: w}
}

func (f *Formatter) writer() io.Writer {
	if f.out == nil {
		return os.Stdout
	}
	return f.out
}

// PrintBanner prints a boxed title
func (f *Formatter) PrintBanner(title string) {
	w := f.writer()
	fmt.Fprintln(w)
	fmt.Fprintln(w, color.CyanString("╔═══════════════════════════════════════════════════════════════╗"))
	fmt.Fprintln(w, color.CyanString("║ %-61s ║", title))
	fmt.Fprintln(w, color.CyanString("╚═══════════════════════════════════════════════════════════════╝"))
}

// PrintModules prints the registered modules as a tree
func (f *Formatter) PrintModules(modules []domain.Module) {
	w := f.writer()
	fmt.Fprintln(w, color.GreenString("%d registered module(s):", len(modules)))
	fmt.Fprintln(w)

	for i, m := range modules {
		connector := "├──"
		if i == len(modules)-1 {
			connector = "└──"
		}
		fmt.Fprintf(w, "%s %s %s\n", connector, color.CyanString("%-12s", m.Name), color.YellowString(m.API))
	}
}

// PrintCaseListFiles prints case-list files found on disk. Modules the
// registry does not know are flagged.
func (f *Formatter) PrintCaseListFiles(dir string, files []discovery.CaseListFile, known map[string]bool) {
	w := f.writer()
	if len(files) == 0 {
		fmt.Fprintln(w, color.YellowString("No case lists found in %s", dir))
		return
	}

	fmt.Fprintln(w, color.GreenString("Found %d case list(s) in %s:", len(files), dir))
	fmt.Fprintln(w)
	for i, file := range files {
		connector := "├──"
		if i == len(files)-1 {
			connector = "└──"
		}
		marker := ""
		if known != nil && !known[file.Module] {
			marker = " " + color.RedString("[unknown module]")
		}
		fmt.Fprintf(w, "%s %s %s%s\n", connector, color.CyanString(filepath.Base(file.Path)), humanBytes(file.Size), marker)
	}
}

// PrintRunSummary prints the statistics table of a generate run
func (f *Formatter) PrintRunSummary(manifest *domain.RunManifest) {
	w := f.writer()
	meta := manifest.Meta

	f.PrintBanner("Case List Generation Summary")
	fmt.Fprintln(w, "┌─────────────────────────────────┬─────────────────────────────┐")
	row := func(label, value string, paint func(format string, a ...interface{}) string) {
		fmt.Fprintf(w, "│ %-31s │ %s │\n", label, paint("%-27s", value))
	}
	sep := func() {
		fmt.Fprintln(w, "├─────────────────────────────────┼─────────────────────────────┤")
	}

	row("Build Directory", shorten(meta.BuildDir, 27), color.WhiteString)
	sep()
	row("Build Type / Target", meta.BuildType+" / "+meta.Target, color.WhiteString)
	sep()
	row("Case Lists", fmt.Sprintf("%d", meta.Total), color.WhiteString)
	sep()
	row("Generated", fmt.Sprintf("%d", meta.Succeeded), color.GreenString)
	sep()
	row("Failed", fmt.Sprintf("%d", meta.Failed), color.RedString)
	sep()
	row("Duration", fmt.Sprintf("%.2fs", meta.DurationSeconds), color.WhiteString)
	sep()
	row("Destination", shorten(meta.DestDir, 27), color.WhiteString)
	fmt.Fprintln(w, "└─────────────────────────────────┴─────────────────────────────┘")
	fmt.Fprintln(w)

	for _, r := range manifest.Results {
		if r.Success {
			fmt.Fprintf(w, "%s %s %s\n", color.GreenString("✓"), color.CyanString("%-28s", filepath.Base(r.DestPath)), color.WhiteString("%d cases, %s", r.Cases, humanBytes(r.Bytes)))
		} else {
			fmt.Fprintf(w, "%s %s %s\n", color.RedString("✗"), color.CyanString("%-28s", r.Module+"-cases."+string(r.Type)), color.RedString(r.Error))
		}
	}

	fmt.Fprintln(w)
	if meta.Failed == 0 && meta.Succeeded == meta.Total {
		fmt.Fprintln(w, color.GreenString("✓ All case lists generated!"))
	} else {
		fmt.Fprintln(w, color.RedString("✗ %d of %d case list(s) failed", meta.Total-meta.Succeeded, meta.Total))
	}
}

func shorten(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return "…" + s[len(s)-max+1:]
}

func humanBytes(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MiB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KiB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
