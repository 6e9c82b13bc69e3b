package commands

import (
	"caselists/internal/config"
	"caselists/internal/discovery"
	"caselists/internal/registry"
	"caselists/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	registry  *registry.Registry
	filter    *discovery.Filter
	scanner   *discovery.Scanner
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	reg *registry.Registry,
	filter *discovery.Filter,
	scanner *discovery.Scanner,
	formatter *ui.Formatter,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		registry:  reg,
		filter:    filter,
		scanner:   scanner,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	pattern := lc.config.Flags.Filter

	if dir := lc.config.Flags.ListDir; dir != "" {
		files, err := lc.scanner.Scan(dir)
		if err != nil {
			return err
		}

		var matched []discovery.CaseListFile
		for _, file := range files {
			if pattern == "" || lc.filter.Matches(file.Module, pattern) {
				matched = append(matched, file)
			}
		}

		known := make(map[string]bool)
		for _, name := range lc.registry.Names() {
			known[name] = true
		}
		lc.formatter.PrintCaseListFiles(dir, matched, known)
		return nil
	}

	modules := lc.filter.FilterModules(lc.registry.All(), pattern)
	if len(modules) == 0 {
		color.Yellow("No modules found")
		return nil
	}

	lc.formatter.PrintModules(modules)
	return nil
}
