package execution

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"caselists/internal/buildcfg"
	"caselists/internal/domain"
	"caselists/internal/logging"

	"github.com/rotisserie/eris"
)

// Generator runs the glcts binary in case-list mode and copies its output
type Generator struct {
	runner CommandRunner
	// every invocation writes into the same modules directory
	mu sync.Mutex
}

// NewGenerator creates a new Generator
func NewGenerator(runner CommandRunner) *Generator {
	return &Generator{runner: runner}
}

// GenerateCaseList runs the binary with --deqp-runmode=<type>-caselist inside
// the build's modules directory. The binary decides which files it writes.
func (g *Generator) GenerateCaseList(ctx context.Context, cfg buildcfg.BuildConfig, locator buildcfg.BinaryLocator, caseListType domain.CaseListType) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.generate(ctx, cfg, locator, caseListType)
}

func (g *Generator) generate(ctx context.Context, cfg buildcfg.BuildConfig, locator buildcfg.BinaryLocator, caseListType domain.CaseListType) error {
	workDir, err := filepath.Abs(buildcfg.ModulesPath(cfg))
	if err != nil {
		return eris.Wrapf(err, "failed to resolve modules path of %s", cfg.BuildDir)
	}

	binPath := locator.BinaryPath(cfg.BuildType, "."+string(filepath.Separator)+buildcfg.BinaryName)
	if !filepath.IsAbs(binPath) {
		binPath = filepath.Join(workDir, binPath)
	}

	arg := "--deqp-runmode=" + caseListType.RunMode()
	logging.FromContext(ctx).Debug().
		Str("path", binPath).
		Str("dir", workDir).
		Msgf("running %s %s", binPath, arg)

	return g.runner.Run(ctx, workDir, binPath, arg)
}

// GenerateAndCopy regenerates one module's case list and copies it to dstDir.
// A stale source file is removed first so that the existence check afterwards
// only passes for a file written by this invocation.
func (g *Generator) GenerateAndCopy(ctx context.Context, cfg buildcfg.BuildConfig, locator buildcfg.BinaryLocator, module domain.Module, dstDir string, caseListType domain.CaseListType) (domain.GenerationResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	start := time.Now()
	fileName := buildcfg.CaseListFileName(module, caseListType)
	srcPath := buildcfg.CaseListPath(cfg, module, caseListType)
	dstPath := filepath.Join(dstDir, fileName)

	result := domain.GenerationResult{
		Module:     module.Name,
		API:        module.API,
		Type:       caseListType,
		SourcePath: srcPath,
	}
	finish := func(err error) (domain.GenerationResult, error) {
		result.DurationSeconds = time.Since(start).Seconds()
		result.Success = err == nil
		if err != nil {
			result.Error = err.Error()
		}
		return result, err
	}

	log := logging.FromContext(ctx)

	if err := os.Remove(srcPath); err == nil {
		log.Debug().Str("module", module.Name).Str("path", srcPath).Msgf("removed stale %s", srcPath)
	} else if !os.IsNotExist(err) {
		return finish(eris.Wrapf(err, "failed to remove stale case list %s", srcPath))
	}

	if err := g.generate(ctx, cfg, locator, caseListType); err != nil {
		return finish(err)
	}

	if _, err := os.Stat(srcPath); err != nil {
		if os.IsNotExist(err) {
			return finish(&domain.GenerationFailedError{Path: srcPath})
		}
		return finish(eris.Wrapf(err, "failed to check %s", srcPath))
	}

	n, sum, err := copyFile(srcPath, dstPath)
	if err != nil {
		return finish(err)
	}

	result.DestPath = dstPath
	result.Bytes = n
	result.SHA256 = sum
	log.Info().Str("module", module.Name).Str("path", dstPath).Msgf("copied %s (%d bytes)", dstPath, n)

	return finish(nil)
}

// copyFile copies src to dst byte for byte, truncating dst, and returns the
// number of bytes written and their SHA-256
func copyFile(src, dst string) (int64, string, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, "", eris.Wrapf(err, "failed to open %s", src)
	}
	defer in.Close()

	// truncating dst would destroy src when both name the same file
	srcInfo, err := in.Stat()
	if err != nil {
		return 0, "", eris.Wrapf(err, "failed to stat %s", src)
	}
	if dstInfo, err := os.Stat(dst); err == nil && os.SameFile(srcInfo, dstInfo) {
		return 0, "", eris.Errorf("%s and %s are the same file", src, dst)
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return 0, "", eris.Wrapf(err, "failed to create %s", dst)
	}

	hash := sha256.New()
	n, err := io.Copy(io.MultiWriter(out, hash), in)
	if err != nil {
		out.Close()
		return 0, "", eris.Wrapf(err, "failed to copy %s to %s", src, dst)
	}
	if err := out.Close(); err != nil {
		return 0, "", eris.Wrapf(err, "failed to close %s", dst)
	}

	return n, hex.EncodeToString(hash.Sum(nil)), nil
}
