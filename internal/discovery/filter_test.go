package discovery

import (
	"testing"

	"caselists/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestFilter_FilterModules(t *testing.T) {
	filter := NewFilter()
	modules := []string{"dEQP-EGL", "dEQP-GLES2", "dEQP-GLES3", "KHR-GLES3", "KHR-GLES31", "GTF-GLES3"}

	tests := []struct {
		name     string
		pattern  string
		expected []string
	}{
		{
			name:     "empty pattern returns all",
			pattern:  "",
			expected: modules,
		},
		{
			name:     "prefix wildcard",
			pattern:  "KHR-*",
			expected: []string{"KHR-GLES3", "KHR-GLES31"},
		},
		{
			name:     "wildcard pattern matches substring",
			pattern:  "*GLES3*",
			expected: []string{"dEQP-GLES3", "KHR-GLES3", "KHR-GLES31", "GTF-GLES3"},
		},
		{
			name:     "simple contains match",
			pattern:  "EGL",
			expected: []string{"dEQP-EGL"},
		},
		{
			name:     "single character wildcard",
			pattern:  "dEQP-GLES?",
			expected: []string{"dEQP-GLES2", "dEQP-GLES3"},
		},
		{
			name:     "no matches",
			pattern:  "*VK*",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, names(filter.FilterModules(toModules(modules), tt.pattern)))
		})
	}
}

func TestFilter_EdgeCases(t *testing.T) {
	filter := NewFilter()

	t.Run("empty module list", func(t *testing.T) {
		assert.Empty(t, filter.FilterModules(nil, "KHR-*"))
	})

	t.Run("only wildcards", func(t *testing.T) {
		assert.Equal(t, []string{"KHR-GLES3"}, names(filter.FilterModules(toModules([]string{"KHR-GLES3"}), "*")))
		assert.Empty(t, filter.FilterModules(toModules([]string{"KHR-GLES3"}), "**x"))
	})

	t.Run("multiple wildcards", func(t *testing.T) {
		result := names(filter.FilterModules(toModules([]string{"KHR-GLES31", "KHR-GLES32", "GTF-GLES31"}), "*KHR*31"))
		assert.Equal(t, []string{"KHR-GLES31"}, result)
	})

	t.Run("modules keep order", func(t *testing.T) {
		modules := []domain.Module{
			{Name: "GTF-GLES2", API: "GLES2"},
			{Name: "KHR-GLES2", API: "GLES2"},
			{Name: "KHR-GLES3", API: "GLES3"},
		}
		result := filter.FilterModules(modules, "*GLES2")
		assert.Equal(t, modules[:2], result)
		assert.Equal(t, modules, filter.FilterModules(modules, ""))
	})
}

func toModules(names []string) []domain.Module {
	modules := make([]domain.Module, len(names))
	for i, name := range names {
		modules[i] = domain.Module{Name: name}
	}
	return modules
}

func names(modules []domain.Module) []string {
	if modules == nil {
		return nil
	}
	out := make([]string, len(modules))
	for i, m := range modules {
		out[i] = m.Name
	}
	return out
}
