package buildcfg

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/rotisserie/eris"
)

// BinaryLocator resolves the path of a built binary for a build type.
// basePath is the binary path a single-config generator would produce.
type BinaryLocator interface {
	BinaryPath(buildType, basePath string) string
}

// LocatorFunc adapts a function to BinaryLocator
type LocatorFunc func(buildType, basePath string) string

// BinaryPath calls f
func (f LocatorFunc) BinaryPath(buildType, basePath string) string {
	return f(buildType, basePath)
}

// SingleConfigLocator serves generators that put binaries directly in the
// target directory (Makefiles, Ninja)
type SingleConfigLocator struct{}

// BinaryPath returns basePath unchanged
func (SingleConfigLocator) BinaryPath(buildType, basePath string) string {
	return basePath
}

// MultiConfigLocator serves generators that keep one output directory per
// build type (Visual Studio, Xcode)
type MultiConfigLocator struct {
	Ext string
}

// BinaryPath returns <dir>/<buildType>/<name><ext>
func (l MultiConfigLocator) BinaryPath(buildType, basePath string) string {
	dir, name := filepath.Split(basePath)
	return filepath.Join(dir, buildType, name+l.Ext)
}

var locators = map[string]BinaryLocator{
	"makefile": SingleConfigLocator{},
	"ninja":    SingleConfigLocator{},
	"vs":       MultiConfigLocator{Ext: ".exe"},
	"xcode":    MultiConfigLocator{},
}

// LocatorByName returns the locator for a generator name
func LocatorByName(name string) (BinaryLocator, error) {
	l, ok := locators[strings.ToLower(name)]
	if !ok {
		return nil, eris.Errorf("unknown generator %q (supported: %s)", name, strings.Join(LocatorNames(), ", "))
	}
	return l, nil
}

// LocatorNames returns the supported generator names, sorted
func LocatorNames() []string {
	names := make([]string, 0, len(locators))
	for name := range locators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
