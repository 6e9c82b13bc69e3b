// Package buildcfg describes a glcts build tree: where it lives, how it was
// configured and where the case-list binary and its outputs are found in it.
package buildcfg

import (
	"fmt"
	"path/filepath"
	"strings"

	"caselists/internal/domain"
)

const (
	// ModulesDir is the build-tree directory holding the glcts binary and the case lists it writes
	ModulesDir = "external/openglcts/modules"
	// BinaryName is the base name of the conformance binary
	BinaryName = "glcts"
)

// BuildConfig identifies a configured build tree
type BuildConfig struct {
	BuildDir  string
	BuildType string
	Args      []string // extra configure arguments, e.g. -DDEQP_TARGET=null
}

// Compute fills {targetName} and {buildType} in pathPattern and returns the
// matching BuildConfig
func Compute(pathPattern, targetName, buildType string) BuildConfig {
	r := strings.NewReplacer(
		"{targetName}", targetName,
		"{buildType}", buildType,
	)

	return BuildConfig{
		BuildDir:  r.Replace(pathPattern),
		BuildType: buildType,
		Args:      []string{fmt.Sprintf("-DDEQP_TARGET=%s", targetName)},
	}
}

// ModulesPath returns the directory the binary runs in and writes case lists to
func ModulesPath(cfg BuildConfig) string {
	return filepath.Join(cfg.BuildDir, filepath.FromSlash(ModulesDir))
}

// CaseListFileName returns "<module>-cases.<type>"
func CaseListFileName(module domain.Module, caseListType domain.CaseListType) string {
	return caseListType.FileName(module)
}

// CaseListPath returns where the binary is expected to write the module's case list
func CaseListPath(cfg BuildConfig, module domain.Module, caseListType domain.CaseListType) string {
	return filepath.Join(ModulesPath(cfg), CaseListFileName(module, caseListType))
}
