package storage

import (
	"encoding/json"
	"os"
	"path/filepath"

	"caselists/internal/domain"

	"github.com/rotisserie/eris"
)

// Save writes the manifest to the configured JSON file.
func (s *JSONStorage) Save(manifest *domain.RunManifest) error {
	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return eris.Wrap(err, "marshal manifest")
	}

	path := s.cfg.GetManifestPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return eris.Wrap(err, "create manifest dir")
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return eris.Wrap(err, "write manifest")
	}
	return nil
}

// Load reads the last manifest from the configured JSON file.
func (s *JSONStorage) Load() (*domain.RunManifest, error) {
	path := s.cfg.GetManifestPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "read manifest %s", path)
	}
	var manifest domain.RunManifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, eris.Wrapf(err, "parse manifest %s", path)
	}
	return &manifest, nil
}
