package cli

import "caselists/internal/config"

// Flags holds command-line flags
type Flags struct {
	BuildDir   string
	Target     string
	BuildType  string
	Generator  string
	Modules    []string
	Filter     string
	Types      []string
	KeepGoing  bool
	Store      string
	ConfigFile string
	Verbose    bool
	ListDir    string
}

// ToConfigFlags converts CLI flags to config flags. The destination
// directory is positional and set by the generate command itself.
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		BuildDir:   f.BuildDir,
		Target:     f.Target,
		BuildType:  f.BuildType,
		Generator:  f.Generator,
		Modules:    f.Modules,
		Filter:     f.Filter,
		Types:      f.Types,
		KeepGoing:  f.KeepGoing,
		Store:      f.Store,
		ConfigFile: f.ConfigFile,
		Verbose:    f.Verbose,
		ListDir:    f.ListDir,
	}
}
