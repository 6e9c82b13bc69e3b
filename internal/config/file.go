package config

import (
	"bytes"
	"io"
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk YAML shape of Config
type fileConfig struct {
	BuildDir    string   `yaml:"build_dir"`
	Target      string   `yaml:"target"`
	BuildType   string   `yaml:"build_type"`
	Generator   string   `yaml:"generator"`
	DestDir     string   `yaml:"dest_dir"`
	Types       []string `yaml:"types"`
	Modules     []string `yaml:"modules"`
	Store       string   `yaml:"store"`
	ManifestDir string   `yaml:"manifest_dir"`
	Database    struct {
		Host string `yaml:"host"`
		Port string `yaml:"port"`
		User string `yaml:"user"`
		Name string `yaml:"name"`
	} `yaml:"database"`
}

// LoadFile applies the settings of a YAML config file. Unknown keys are rejected.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return eris.Wrapf(err, "failed to read config file %s", path)
	}

	var fc fileConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&fc); err != nil && !eris.Is(err, io.EOF) {
		return eris.Wrapf(err, "failed to parse config file %s", path)
	}

	setIfNotEmpty(&c.BuildDirPattern, fc.BuildDir)
	setIfNotEmpty(&c.Target, fc.Target)
	setIfNotEmpty(&c.BuildType, fc.BuildType)
	setIfNotEmpty(&c.Generator, fc.Generator)
	setIfNotEmpty(&c.DestDir, fc.DestDir)
	setIfNotEmpty(&c.Store, fc.Store)
	setIfNotEmpty(&c.ManifestDir, fc.ManifestDir)
	setIfNotEmpty(&c.Database.Host, fc.Database.Host)
	setIfNotEmpty(&c.Database.Port, fc.Database.Port)
	setIfNotEmpty(&c.Database.User, fc.Database.User)
	setIfNotEmpty(&c.Database.Name, fc.Database.Name)
	if len(fc.Types) > 0 {
		c.CaseListTypes = fc.Types
	}
	if len(fc.Modules) > 0 {
		c.Modules = fc.Modules
	}
	return nil
}
