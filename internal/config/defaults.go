package config

import (
	"os"
	"path/filepath"
)

const (
	// DefaultTarget is the default DEQP_TARGET
	DefaultTarget = "null"
	// DefaultBuildType is the default build type
	DefaultBuildType = "Debug"
	// DefaultGenerator is the default build generator used to locate the binary
	DefaultGenerator = "makefile"
	// DefaultDestDir is the default destination for copied case lists
	DefaultDestDir = "."
	// DefaultCaseListType is the default case-list format
	DefaultCaseListType = "txt"
	// DefaultStore is the default run manifest storage
	DefaultStore = "json"
	// DefaultManifestDir is the default directory of the run manifest
	DefaultManifestDir = ".caselists"
	// DefaultManifestFile is the default run manifest file name
	DefaultManifestFile = "last-run.json"
	// DefaultEnvFile is loaded from the working directory when present
	DefaultEnvFile = ".env"
)

// Database defaults, matching a local MySQL install
const (
	DefaultDBHost = "127.0.0.1"
	DefaultDBPort = "3306"
	DefaultDBUser = "root"
	DefaultDBName = "caselists"
)

// DefaultBuildDirPattern is the default build directory pattern
var DefaultBuildDirPattern = filepath.Join(os.TempDir(), "deqp-caselists", "{targetName}-{buildType}")
