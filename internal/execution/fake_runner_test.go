package execution

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"caselists/internal/buildcfg"
	"caselists/internal/domain"

	"github.com/stretchr/testify/require"
)

type runCall struct {
	dir    string
	binary string
	args   []string
}

// fakeRunner records invocations and delegates to fn
type fakeRunner struct {
	mu    sync.Mutex
	calls []runCall
	fn    func(dir, binary string, args []string) error
}

func (f *fakeRunner) Run(ctx context.Context, dir, binary string, args ...string) error {
	f.mu.Lock()
	f.calls = append(f.calls, runCall{dir: dir, binary: binary, args: args})
	f.mu.Unlock()
	if f.fn == nil {
		return nil
	}
	return f.fn(dir, binary, args)
}

// glctsWriting imitates glcts: it writes one case list per module into dir
func glctsWriting(modules []domain.Module, content func(m domain.Module) string) func(dir, binary string, args []string) error {
	return func(dir, binary string, args []string) error {
		caseListType := domain.CaseListType(strings.TrimSuffix(strings.TrimPrefix(args[0], "--deqp-runmode="), "-caselist"))
		for _, m := range modules {
			path := filepath.Join(dir, caseListType.FileName(m))
			if err := os.WriteFile(path, []byte(content(m)), 0644); err != nil {
				return err
			}
		}
		return nil
	}
}

func newBuildTree(t *testing.T) buildcfg.BuildConfig {
	t.Helper()
	cfg := buildcfg.Compute(filepath.Join(t.TempDir(), "{targetName}-{buildType}"), "null", "Debug")
	require.NoError(t, os.MkdirAll(buildcfg.ModulesPath(cfg), 0755))
	return cfg
}
