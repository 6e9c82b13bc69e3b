package commands

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"caselists/internal/buildcfg"
	"caselists/internal/cli"
	"caselists/internal/config"
	"caselists/internal/domain"
	"caselists/internal/execution"
	"caselists/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fakeGlcts = `#!/bin/sh
mode="${1#--deqp-runmode=}"
type="${mode%-caselist}"
for m in KHR-GLES3 KHR-GLES2; do
  printf 'GROUP: %s.info\nTEST: %s.info.vendor\nTEST: %s.info.renderer\n' "$m" "$m" "$m" > "$m-cases.$type"
done
`

type testEnv struct {
	buildPattern string
	manifestDir  string
	out          *bytes.Buffer
}

func setupEnv(t *testing.T) testEnv {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake glcts is a POSIX shell script")
	}
	color.NoColor = true

	for _, key := range []string{
		"CASELISTS_BUILD_DIR", "CASELISTS_TARGET", "CASELISTS_BUILD_TYPE",
		"CASELISTS_GENERATOR", "CASELISTS_DEST_DIR", "CASELISTS_STORE",
	} {
		t.Setenv(key, "")
	}
	manifestDir := t.TempDir()
	t.Setenv("CASELISTS_MANIFEST_DIR", manifestDir)

	pattern := filepath.Join(t.TempDir(), "{targetName}-{buildType}")
	modulesDir := buildcfg.ModulesPath(buildcfg.Compute(pattern, config.DefaultTarget, config.DefaultBuildType))
	require.NoError(t, os.MkdirAll(modulesDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(modulesDir, buildcfg.BinaryName), []byte(fakeGlcts), 0755))

	return testEnv{buildPattern: pattern, manifestDir: manifestDir, out: &bytes.Buffer{}}
}

func (e testEnv) execute(args ...string) error {
	cfg := config.New()
	var flags cli.Flags
	cmds := newCommands(cfg, execution.NewRunner(), ui.NewFormatterTo(e.out))
	cmds.Generate.stderr = io.Discard

	root := &cobra.Command{Use: "caselists", SilenceUsage: true, SilenceErrors: true}
	cmds.Register(root, &flags, cfg)
	root.SetOut(io.Discard)
	root.SetArgs(args)
	return root.Execute()
}

func TestGenerate(t *testing.T) {
	t.Run("copies the requested case lists", func(t *testing.T) {
		env := setupEnv(t)
		dst := filepath.Join(t.TempDir(), "out")

		err := env.execute("generate", dst, "-b", env.buildPattern, "-m", "KHR-GLES3", "-m", "KHR-GLES2")
		require.NoError(t, err)

		content, err := os.ReadFile(filepath.Join(dst, "KHR-GLES3-cases.txt"))
		require.NoError(t, err)
		assert.Contains(t, string(content), "TEST: KHR-GLES3.info.vendor")
		assert.FileExists(t, filepath.Join(dst, "KHR-GLES2-cases.txt"))
		assert.NoFileExists(t, filepath.Join(dst, "KHR-GLES31-cases.txt"))

		assert.FileExists(t, filepath.Join(env.manifestDir, config.DefaultManifestFile))
		assert.Contains(t, env.out.String(), "✓ All case lists generated!")
		assert.Contains(t, env.out.String(), "2 cases")
	})

	t.Run("filter narrows the selected modules", func(t *testing.T) {
		env := setupEnv(t)
		dst := t.TempDir()

		err := env.execute("generate", dst, "-b", env.buildPattern, "-m", "KHR-GLES3", "-m", "KHR-GLES2", "-f", "*GLES3")
		require.NoError(t, err)
		assert.FileExists(t, filepath.Join(dst, "KHR-GLES3-cases.txt"))
		assert.NoFileExists(t, filepath.Join(dst, "KHR-GLES2-cases.txt"))
	})

	t.Run("unknown module", func(t *testing.T) {
		env := setupEnv(t)

		err := env.execute("generate", t.TempDir(), "-b", env.buildPattern, "-m", "KHR-VULKAN")
		var unknown *domain.UnknownModuleError
		require.True(t, errors.As(err, &unknown), "got %v", err)
		assert.Equal(t, "KHR-VULKAN", unknown.Name)
	})

	t.Run("module the binary does not emit", func(t *testing.T) {
		env := setupEnv(t)
		dst := t.TempDir()

		err := env.execute("generate", dst, "-b", env.buildPattern, "-m", "dEQP-EGL")
		var notGenerated *domain.GenerationFailedError
		require.True(t, errors.As(err, &notGenerated), "got %v", err)
		assert.NoFileExists(t, filepath.Join(dst, "dEQP-EGL-cases.txt"))
		assert.Contains(t, env.out.String(), "1 of 1 case list(s) failed")
	})

	t.Run("keep going reports every failure", func(t *testing.T) {
		env := setupEnv(t)
		dst := t.TempDir()

		err := env.execute("generate", dst, "-b", env.buildPattern, "-k", "-m", "dEQP-EGL", "-m", "KHR-GLES3")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "1 of 2 case lists failed")
		assert.FileExists(t, filepath.Join(dst, "KHR-GLES3-cases.txt"))
	})

	t.Run("invalid settings", func(t *testing.T) {
		env := setupEnv(t)

		assert.Error(t, env.execute("generate", t.TempDir(), "-b", env.buildPattern, "-g", "bazel"))
		assert.Error(t, env.execute("generate", t.TempDir(), "-b", env.buildPattern, "-c", "json"))
		assert.Error(t, env.execute("generate", t.TempDir(), "-b", env.buildPattern, "--store", "redis"))
		assert.Error(t, env.execute("generate", "a", "b"))
	})
}

func TestList(t *testing.T) {
	t.Run("registered modules", func(t *testing.T) {
		env := setupEnv(t)

		require.NoError(t, env.execute("list"))
		out := env.out.String()
		assert.Contains(t, out, "11 registered module(s)")
		assert.Contains(t, out, "dEQP-EGL")
		assert.Contains(t, out, "GTF-GLES31")
	})

	t.Run("filtered", func(t *testing.T) {
		env := setupEnv(t)

		require.NoError(t, env.execute("list", "-f", "GTF-*"))
		assert.Contains(t, env.out.String(), "3 registered module(s)")
	})

	t.Run("case lists on disk", func(t *testing.T) {
		env := setupEnv(t)
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "KHR-GLES3-cases.txt"), []byte("TEST: a\n"), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "VK-GL-CTS-cases.xml"), []byte("<x/>"), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.md"), []byte("#"), 0644))

		require.NoError(t, env.execute("list", "--dir", dir))
		out := env.out.String()
		assert.Contains(t, out, "Found 2 case list(s)")
		assert.Contains(t, out, "VK-GL-CTS-cases.xml 4 B [unknown module]")
		assert.NotContains(t, out, "notes.md")
	})

	t.Run("missing directory", func(t *testing.T) {
		env := setupEnv(t)
		assert.Error(t, env.execute("list", "--dir", filepath.Join(t.TempDir(), "nope")))
	})
}

func TestRegister(t *testing.T) {
	cfg := config.New()
	var flags cli.Flags
	root := &cobra.Command{Use: "caselists"}
	newCommands(cfg, execution.NewRunner(), ui.NewFormatterTo(io.Discard)).Register(root, &flags, cfg)

	generateCmd, _, err := root.Find([]string{"generate"})
	require.NoError(t, err)
	assert.Contains(t, generateCmd.Long, "once per selected module and case-list type")
	assert.Contains(t, generateCmd.Long, "KHR-GLES3")

	for _, name := range []string{"list", "view"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}
}
