package execution

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"caselists/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func skipWithoutShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires /bin/sh")
	}
	if _, err := os.Stat("/bin/sh"); err != nil {
		t.Skip("requires /bin/sh")
	}
}

func TestRunner_Run(t *testing.T) {
	skipWithoutShell(t)
	runner := NewRunner()

	t.Run("runs inside the given directory", func(t *testing.T) {
		cwd, err := os.Getwd()
		require.NoError(t, err)
		dir := t.TempDir()

		err = runner.Run(context.Background(), dir, "/bin/sh", "-c", "pwd > where.txt")
		require.NoError(t, err)

		data, err := os.ReadFile(filepath.Join(dir, "where.txt"))
		require.NoError(t, err)
		want, err := filepath.EvalSymlinks(dir)
		require.NoError(t, err)
		got, err := filepath.EvalSymlinks(strings.TrimSpace(string(data)))
		require.NoError(t, err)
		assert.Equal(t, want, got)

		after, err := os.Getwd()
		require.NoError(t, err)
		assert.Equal(t, cwd, after)
	})

	t.Run("non-zero exit", func(t *testing.T) {
		err := runner.Run(context.Background(), t.TempDir(), "/bin/sh", "-c", "echo broken; exit 3")

		var procErr *domain.ProcessExecutionError
		require.True(t, errors.As(err, &procErr))
		assert.Equal(t, 3, procErr.ExitCode)
		assert.Contains(t, procErr.Output, "broken")
		assert.Contains(t, err.Error(), "exited with code 3")
	})

	t.Run("missing binary", func(t *testing.T) {
		dir := t.TempDir()
		err := runner.Run(context.Background(), dir, filepath.Join(dir, "glcts"), "--deqp-runmode=txt-caselist")

		var procErr *domain.ProcessExecutionError
		require.True(t, errors.As(err, &procErr))
		assert.Equal(t, -1, procErr.ExitCode)
		assert.NotNil(t, procErr.Unwrap())
	})
}
