package commands

import (
	"context"
	"io"
	"os"

	"caselists/internal/config"
	"caselists/internal/discovery"
	"caselists/internal/domain"
	"caselists/internal/execution"
	"caselists/internal/logging"
	"caselists/internal/registry"
	"caselists/internal/storage"
	"caselists/internal/ui"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
)

// GenerateCommand handles the generate command
type GenerateCommand struct {
	config    *config.Config
	registry  *registry.Registry
	filter    *discovery.Filter
	batch     *execution.Batch
	formatter *ui.Formatter
	stderr    io.Writer
}

// NewGenerateCommand creates a new GenerateCommand
func NewGenerateCommand(
	cfg *config.Config,
	reg *registry.Registry,
	filter *discovery.Filter,
	batch *execution.Batch,
	formatter *ui.Formatter,
) *GenerateCommand {
	return &GenerateCommand{
		config:    cfg,
		registry:  reg,
		filter:    filter,
		batch:     batch,
		formatter: formatter,
		stderr:    os.Stderr,
	}
}

// Execute runs the command
func (gc *GenerateCommand) Execute(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		gc.config.DestDir = args[0]
	}

	logger := logging.New(gc.stderr, gc.config.Flags.Verbose)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithLogger(ctx, &logger)

	modules, err := gc.selectModules()
	if err != nil {
		return err
	}
	types, err := gc.config.Types()
	if err != nil {
		return err
	}
	locator, err := gc.config.Locator()
	if err != nil {
		return err
	}
	st, err := storage.New(gc.config)
	if err != nil {
		return err
	}

	buildCfg := gc.config.BuildConfig()
	logger.Debug().
		Str("path", buildCfg.BuildDir).
		Str("generator", gc.config.Generator).
		Int("modules", len(modules)).
		Int("types", len(types)).
		Msg("generating case lists")

	gc.batch.SetProgress(ui.NewProgressBarTo(gc.stderr, len(modules)*len(types)))

	manifest, runErr := gc.batch.Run(ctx, execution.BatchRequest{
		Config:    buildCfg,
		Target:    gc.config.Target,
		Locator:   locator,
		Modules:   modules,
		Types:     types,
		DestDir:   gc.config.DestDir,
		KeepGoing: gc.config.Flags.KeepGoing,
	})
	if manifest == nil {
		return runErr
	}

	if err := st.Save(manifest); err != nil {
		if runErr == nil {
			return eris.Wrap(err, "failed to save run manifest")
		}
		logger.Warn().Err(err).Msg("failed to save run manifest")
	}

	gc.formatter.PrintRunSummary(manifest)
	return runErr
}

// selectModules resolves --module names, or takes the whole registry, and
// narrows the result with --filter
func (gc *GenerateCommand) selectModules() ([]domain.Module, error) {
	modules := gc.registry.All()
	if len(gc.config.Modules) > 0 {
		resolved, err := gc.registry.ResolveAll(gc.config.Modules)
		if err != nil {
			return nil, err
		}
		modules = resolved
	}

	modules = gc.filter.FilterModules(modules, gc.config.Flags.Filter)
	if len(modules) == 0 {
		return nil, eris.Errorf("no module matches filter %q", gc.config.Flags.Filter)
	}
	return modules, nil
}
