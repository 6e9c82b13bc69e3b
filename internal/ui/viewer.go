package ui

import "caselists/internal/domain"

// Viewer displays a run manifest in an interactive TUI
type Viewer interface {
	View(manifest *domain.RunManifest) error
}
