package discovery

import (
	"path/filepath"
	"strings"

	"caselists/internal/domain"
)

// Filter filters modules by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterModules keeps the modules whose name matches pattern, in order.
// Supports patterns like "KHR-*" or "*GLES3*"
func (f *Filter) FilterModules(modules []domain.Module, pattern string) []domain.Module {
	if pattern == "" {
		return modules
	}

	var filtered []domain.Module
	for _, m := range modules {
		if f.Matches(m.Name, pattern) {
			filtered = append(filtered, m)
		}
	}
	return filtered
}

// Matches reports whether name matches pattern
func (f *Filter) Matches(name, pattern string) bool {
	// filepath.Match supports * and ? wildcards
	if matched, err := filepath.Match(pattern, name); err == nil && matched {
		return true
	}

	if strings.Contains(pattern, "*") {
		// every non-empty segment between wildcards must appear in the name
		hasNonEmptyPart := false
		for _, part := range strings.Split(pattern, "*") {
			if part == "" {
				continue
			}
			hasNonEmptyPart = true
			if !strings.Contains(name, part) {
				return false
			}
		}
		return hasNonEmptyPart
	}

	// no wildcards, do a simple contains check
	if !strings.Contains(pattern, "?") {
		return strings.Contains(name, pattern)
	}
	return false
}
