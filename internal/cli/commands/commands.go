package commands

import (
	"fmt"
	"strings"

	"caselists/internal/buildcfg"
	"caselists/internal/cli"
	"caselists/internal/config"
	"caselists/internal/discovery"
	"caselists/internal/execution"
	"caselists/internal/parser"
	"caselists/internal/registry"
	"caselists/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Generate *GenerateCommand
	List     *ListCommand
	View     *ViewCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	return newCommands(cfg, execution.NewRunner(), ui.NewFormatter())
}

func newCommands(cfg *config.Config, runner execution.CommandRunner, formatter *ui.Formatter) *Commands {
	reg := registry.Default()
	filter := discovery.NewFilter()
	scanner := discovery.NewScanner()
	caseListParser := parser.NewCaseListParser()
	generator := execution.NewGenerator(runner)
	batch := execution.NewBatch(generator, caseListParser)
	viewer := ui.NewRunViewer(caseListParser)

	return &Commands{
		Generate: NewGenerateCommand(cfg, reg, filter, batch, formatter),
		List:     NewListCommand(cfg, reg, filter, scanner, formatter),
		View:     NewViewCommand(cfg, viewer),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Update config with flags after parsing
	applyFlags := func(cmd *cobra.Command, args []string) error {
		return cfg.Apply(flags.ToConfigFlags())
	}

	rootCmd.PersistentFlags().StringVar(&flags.ConfigFile, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Enable debug logging")

	// Generate command
	generateCmd := &cobra.Command{
		Use:   "generate [dst-dir]",
		Short: "Generate test case lists",
		Long: fmt.Sprintf("Run glcts in the build tree once per selected module and case-list type, and copy each generated case list into dst-dir.\n\nModules: %s",
			strings.Join(registry.Default().Names(), ", ")),
		Args:    cobra.MaximumNArgs(1),
		RunE:    c.Generate.Execute,
		PreRunE: applyFlags,
	}
	generateCmd.Flags().StringVarP(&flags.BuildDir, "build-dir", "b", "", "Build directory pattern, {targetName} and {buildType} are substituted")
	generateCmd.Flags().StringVarP(&flags.Target, "target", "t", "", "Target name (default \""+config.DefaultTarget+"\")")
	generateCmd.Flags().StringVar(&flags.BuildType, "build-type", "", "Build type (default \""+config.DefaultBuildType+"\")")
	generateCmd.Flags().StringVarP(&flags.Generator, "generator", "g", "", "Build system generator: "+strings.Join(buildcfg.LocatorNames(), ", "))
	generateCmd.Flags().StringArrayVarP(&flags.Modules, "module", "m", nil, "Module to generate, repeatable (default all)")
	generateCmd.Flags().StringVarP(&flags.Filter, "filter", "f", "", "Filter modules by name pattern (supports wildcards, e.g., 'KHR-GLES*')")
	generateCmd.Flags().StringArrayVarP(&flags.Types, "type", "c", nil, "Case list type, txt or xml, repeatable (default txt)")
	generateCmd.Flags().BoolVarP(&flags.KeepGoing, "keep-going", "k", false, "Continue with the remaining modules after a failure")
	generateCmd.Flags().StringVar(&flags.Store, "store", "", "Where to record the run manifest: json or mysql")
	rootCmd.AddCommand(generateCmd)

	// List command
	listCmd := &cobra.Command{
		Use:     "list",
		Short:   "List registered modules or generated case lists",
		Long:    "Print the registered modules, or with --dir the case-list files found in a directory",
		Args:    cobra.NoArgs,
		RunE:    c.List.Execute,
		PreRunE: applyFlags,
	}
	listCmd.Flags().StringVarP(&flags.Filter, "filter", "f", "", "Filter modules by name pattern")
	listCmd.Flags().StringVarP(&flags.ListDir, "dir", "d", "", "Directory to scan for case-list files")
	rootCmd.AddCommand(listCmd)

	// View command
	viewCmd := &cobra.Command{
		Use:     "view",
		Short:   "View the last generate run interactively",
		Long:    "Display the recorded results of the last generate run in an interactive viewer",
		Args:    cobra.NoArgs,
		RunE:    c.View.Execute,
		PreRunE: applyFlags,
	}
	viewCmd.Flags().StringVar(&flags.Store, "store", "", "Where the run manifest is recorded: json or mysql")
	rootCmd.AddCommand(viewCmd)
}
