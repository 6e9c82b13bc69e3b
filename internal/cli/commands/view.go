package commands

import (
	"caselists/internal/config"
	"caselists/internal/storage"
	"caselists/internal/ui"

	"github.com/spf13/cobra"
)

// ViewCommand handles the view command
type ViewCommand struct {
	config *config.Config
	viewer ui.Viewer
}

// NewViewCommand creates a new ViewCommand
func NewViewCommand(cfg *config.Config, viewer ui.Viewer) *ViewCommand {
	return &ViewCommand{
		config: cfg,
		viewer: viewer,
	}
}

// Execute runs the command
func (vc *ViewCommand) Execute(cmd *cobra.Command, args []string) error {
	st, err := storage.New(vc.config)
	if err != nil {
		return err
	}

	manifest, err := st.Load()
	if err != nil {
		return err
	}

	return vc.viewer.View(manifest)
}
