package execution

import (
	"context"
	"os"
	"time"

	"caselists/internal/buildcfg"
	"caselists/internal/domain"
	"caselists/internal/logging"
	"caselists/internal/parser"

	"github.com/rotisserie/eris"
)

// Progress receives updates while a batch runs
type Progress interface {
	Update(completed, succeeded, failed int)
	Finish()
}

// BatchRequest describes one generate run
type BatchRequest struct {
	Config    buildcfg.BuildConfig
	Target    string
	Locator   buildcfg.BinaryLocator
	Modules   []domain.Module
	Types     []domain.CaseListType
	DestDir   string
	KeepGoing bool
}

// Batch generates case lists for several modules, one after another
type Batch struct {
	generator *Generator
	parser    *parser.CaseListParser
	progress  Progress
}

// NewBatch creates a new Batch
func NewBatch(generator *Generator, caseListParser *parser.CaseListParser) *Batch {
	return &Batch{
		generator: generator,
		parser:    caseListParser,
	}
}

// SetProgress sets the progress reporter for the batch
func (b *Batch) SetProgress(progress Progress) {
	b.progress = progress
}

// Run generates every (module, type) pair of the request in order. Without
// KeepGoing it stops at the first failure and returns that error unchanged.
// The returned manifest always covers the pairs that were attempted.
func (b *Batch) Run(ctx context.Context, req BatchRequest) (*domain.RunManifest, error) {
	if len(req.Modules) == 0 {
		return nil, eris.New("no modules selected")
	}
	if len(req.Types) == 0 {
		return nil, eris.New("no case list types selected")
	}
	if req.Locator == nil {
		req.Locator = buildcfg.SingleConfigLocator{}
	}

	if err := os.MkdirAll(req.DestDir, 0755); err != nil {
		return nil, eris.Wrapf(err, "failed to create destination %s", req.DestDir)
	}

	log := logging.FromContext(ctx)
	startTime := time.Now()
	total := len(req.Modules) * len(req.Types)
	manifest := &domain.RunManifest{
		Results: make([]domain.GenerationResult, 0, total),
	}

	var firstErr error
	var succeeded, failed int

run:
	for _, module := range req.Modules {
		for _, caseListType := range req.Types {
			if err := ctx.Err(); err != nil {
				firstErr = err
				break run
			}

			result, err := b.generator.GenerateAndCopy(ctx, req.Config, req.Locator, module, req.DestDir, caseListType)
			if err == nil && b.parser != nil {
				cases, perr := b.parser.CountCases(result.DestPath, caseListType)
				if perr != nil {
					log.Warn().Err(perr).Str("module", module.Name).Msg("could not count cases")
				} else {
					result.Cases = cases
				}
			}
			manifest.Results = append(manifest.Results, result)

			if err != nil {
				failed++
				log.Error().Err(err).Str("module", module.Name).Msgf("%s case list failed", caseListType)
				if firstErr == nil {
					firstErr = err
				}
			} else {
				succeeded++
			}

			if b.progress != nil {
				b.progress.Update(succeeded+failed, succeeded, failed)
			}

			if err != nil && !req.KeepGoing {
				break run
			}
		}
	}

	if b.progress != nil {
		b.progress.Finish()
	}

	duration := time.Since(startTime)
	manifest.Meta = domain.RunMeta{
		RunID:           startTime.UTC().Format("20060102T150405.000Z"),
		BuildDir:        req.Config.BuildDir,
		BuildType:       req.Config.BuildType,
		Target:          req.Target,
		DestDir:         req.DestDir,
		Total:           total,
		Succeeded:       succeeded,
		Failed:          failed,
		Duration:        duration.String(),
		DurationSeconds: duration.Seconds(),
		Timestamp:       startTime.Format(time.RFC3339),
	}

	if firstErr != nil && req.KeepGoing && failed > 0 {
		return manifest, eris.Errorf("%d of %d case lists failed, first error: %v", failed, total, firstErr)
	}
	return manifest, firstErr
}
