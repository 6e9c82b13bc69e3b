package storage

import (
	"strings"

	"caselists/internal/config"
	"caselists/internal/domain"

	"github.com/rotisserie/eris"
)

// Storage persists and loads run manifests (e.g. for the run viewer).
type Storage interface {
	Save(manifest *domain.RunManifest) error
	Load() (*domain.RunManifest, error)
}

// JSONStorage stores the last run manifest in a JSON file.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's manifest path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}

// New returns the Storage selected by cfg.Store
func New(cfg *config.Config) (Storage, error) {
	switch strings.ToLower(cfg.Store) {
	case "", "json":
		return NewJSONStorage(cfg), nil
	case "mysql":
		return NewMySQLStorage(cfg), nil
	default:
		return nil, eris.Errorf("unknown store %q (supported: json, mysql)", cfg.Store)
	}
}
