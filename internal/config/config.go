package config

import (
	"os"
	"path/filepath"

	"caselists/internal/buildcfg"
	"caselists/internal/domain"

	"github.com/joho/godotenv"
	"github.com/rotisserie/eris"
)

// Config holds all configuration for the application
type Config struct {
	// Build tree settings
	BuildDirPattern string
	Target          string
	BuildType       string
	Generator       string

	// Output settings
	DestDir       string
	CaseListTypes []string
	Modules       []string

	// Run manifest settings
	Store        string
	ManifestDir  string
	ManifestFile string

	Database DatabaseConfig

	// Command flags
	Flags Flags
}

// DatabaseConfig holds MySQL connection settings for the mysql store
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

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

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		BuildDirPattern: DefaultBuildDirPattern,
		Target:          DefaultTarget,
		BuildType:       DefaultBuildType,
		Generator:       DefaultGenerator,
		DestDir:         DefaultDestDir,
		CaseListTypes:   []string{DefaultCaseListType},
		Store:           DefaultStore,
		ManifestDir:     DefaultManifestDir,
		ManifestFile:    DefaultManifestFile,
		Database: DatabaseConfig{
			Host: DefaultDBHost,
			Port: DefaultDBPort,
			User: DefaultDBUser,
			Name: DefaultDBName,
		},
	}
}

// LoadEnvFile loads variables from a .env file into the process environment.
// Variables that are already set win. A missing file is not an error.
func LoadEnvFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return eris.Wrapf(err, "failed to check %s", path)
	}
	if err := godotenv.Load(path); err != nil {
		return eris.Wrapf(err, "failed to load %s", path)
	}
	return nil
}

// Apply layers the config file, the environment and flags over the current
// values, in that order, so flags take precedence
func (c *Config) Apply(flags Flags) error {
	if flags.ConfigFile != "" {
		if err := c.LoadFile(flags.ConfigFile); err != nil {
			return err
		}
	}
	c.ApplyEnv()
	c.ApplyFlags(flags)
	return nil
}

// ApplyEnv overrides settings from CASELISTS_* and DB_* variables
func (c *Config) ApplyEnv() {
	setFromEnv(&c.BuildDirPattern, "CASELISTS_BUILD_DIR")
	setFromEnv(&c.Target, "CASELISTS_TARGET")
	setFromEnv(&c.BuildType, "CASELISTS_BUILD_TYPE")
	setFromEnv(&c.Generator, "CASELISTS_GENERATOR")
	setFromEnv(&c.DestDir, "CASELISTS_DEST_DIR")
	setFromEnv(&c.Store, "CASELISTS_STORE")
	setFromEnv(&c.ManifestDir, "CASELISTS_MANIFEST_DIR")

	setFromEnv(&c.Database.Host, "DB_HOST")
	setFromEnv(&c.Database.Port, "DB_PORT")
	setFromEnv(&c.Database.User, "DB_USERNAME")
	setFromEnv(&c.Database.Password, "DB_PASSWORD")
	setFromEnv(&c.Database.Name, "DB_DATABASE")
}

// ApplyFlags stores flags and overrides every setting a flag was given for
func (c *Config) ApplyFlags(flags Flags) {
	c.Flags = flags

	setIfNotEmpty(&c.BuildDirPattern, flags.BuildDir)
	setIfNotEmpty(&c.Target, flags.Target)
	setIfNotEmpty(&c.BuildType, flags.BuildType)
	setIfNotEmpty(&c.Generator, flags.Generator)
	setIfNotEmpty(&c.Store, flags.Store)
	if len(flags.Types) > 0 {
		c.CaseListTypes = flags.Types
	}
	if len(flags.Modules) > 0 {
		c.Modules = flags.Modules
	}
}

// BuildConfig returns the build tree described by the config
func (c *Config) BuildConfig() buildcfg.BuildConfig {
	return buildcfg.Compute(c.BuildDirPattern, c.Target, c.BuildType)
}

// Locator returns the binary locator for the configured generator
func (c *Config) Locator() (buildcfg.BinaryLocator, error) {
	return buildcfg.LocatorByName(c.Generator)
}

// Types parses the configured case-list types, dropping duplicates
func (c *Config) Types() ([]domain.CaseListType, error) {
	seen := make(map[domain.CaseListType]bool)
	var types []domain.CaseListType
	for _, s := range c.CaseListTypes {
		t, err := domain.ParseCaseListType(s)
		if err != nil {
			return nil, err
		}
		if seen[t] {
			continue
		}
		seen[t] = true
		types = append(types, t)
	}
	if len(types) == 0 {
		return nil, eris.New("no case list type configured")
	}
	return types, nil
}

// GetManifestPath returns the absolute path of the JSON run manifest
func (c *Config) GetManifestPath() string {
	p := filepath.Join(c.ManifestDir, c.ManifestFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

func setFromEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setIfNotEmpty(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
