package buildcfg

import (
	"path/filepath"
	"testing"

	"caselists/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name      string
		pattern   string
		target    string
		buildType string
		wantDir   string
	}{
		{
			name:      "both placeholders",
			pattern:   "/tmp/{targetName}-{buildType}",
			target:    "null",
			buildType: "Debug",
			wantDir:   "/tmp/null-Debug",
		},
		{
			name:      "no placeholders",
			pattern:   "/opt/build",
			target:    "x11_egl",
			buildType: "Release",
			wantDir:   "/opt/build",
		},
		{
			name:      "repeated placeholder",
			pattern:   "/b/{buildType}/{targetName}/{buildType}",
			target:    "null",
			buildType: "Release",
			wantDir:   "/b/Release/null/Release",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Compute(tt.pattern, tt.target, tt.buildType)

			assert.Equal(t, tt.wantDir, cfg.BuildDir)
			assert.Equal(t, tt.buildType, cfg.BuildType)
			require.Len(t, cfg.Args, 1)
			assert.Contains(t, cfg.Args[0], "DEQP_TARGET="+tt.target)
		})
	}
}

func TestDerivedPaths(t *testing.T) {
	cfg := Compute("/tmp/{targetName}-{buildType}", "null", "Debug")
	module := domain.Module{Name: "KHR-GLES3", API: "GLES3"}

	modulesPath := ModulesPath(cfg)
	assert.Equal(t, filepath.Join("/tmp/null-Debug", "external", "openglcts", "modules"), modulesPath)

	assert.Equal(t, "KHR-GLES3-cases.txt", CaseListFileName(module, domain.CaseListTxt))
	assert.Equal(t, "KHR-GLES3-cases.xml", CaseListFileName(module, domain.CaseListXML))
	assert.Equal(t, filepath.Join(modulesPath, "KHR-GLES3-cases.txt"), CaseListPath(cfg, module, domain.CaseListTxt))
}

func TestLocators(t *testing.T) {
	base := filepath.Join(".", BinaryName)

	tests := []struct {
		generator string
		want      string
	}{
		{"makefile", base},
		{"ninja", base},
		{"Ninja", base},
		{"vs", filepath.Join("Debug", "glcts.exe")},
		{"xcode", filepath.Join("Debug", "glcts")},
	}

	for _, tt := range tests {
		t.Run(tt.generator, func(t *testing.T) {
			l, err := LocatorByName(tt.generator)
			require.NoError(t, err)
			assert.Equal(t, tt.want, l.BinaryPath("Debug", base))
		})
	}

	t.Run("unknown generator", func(t *testing.T) {
		_, err := LocatorByName("scons")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "scons")
	})

	t.Run("func adapter", func(t *testing.T) {
		var l BinaryLocator = LocatorFunc(func(buildType, basePath string) string {
			return "/bin/" + buildType
		})
		assert.Equal(t, "/bin/Release", l.BinaryPath("Release", base))
	})
}
