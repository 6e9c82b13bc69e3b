package registry

import (
	"caselists/internal/domain"
)

// DefaultModules are the test modules the glcts binary can emit case lists for
var DefaultModules = []domain.Module{
	{Name: "dEQP-EGL", API: "EGL"},
	{Name: "dEQP-GLES2", API: "GLES2"},
	{Name: "dEQP-GLES3", API: "GLES3"},
	{Name: "dEQP-GLES31", API: "GLES31"},
	{Name: "KHR-GLES3", API: "GLES3"},
	{Name: "KHR-GLES2", API: "GLES2"},
	{Name: "KHR-GLES31", API: "GLES31"},
	{Name: "KHR-GLES32", API: "GLES32"},
	{Name: "GTF-GLES2", API: "GLES2"},
	{Name: "GTF-GLES3", API: "GLES3"},
	{Name: "GTF-GLES31", API: "GLES31"},
}

// Registry looks up modules by exact name
type Registry struct {
	byName  map[string]domain.Module
	modules []domain.Module
}

// New creates a Registry from the given modules. Later duplicates are ignored.
func New(modules ...domain.Module) *Registry {
	r := &Registry{
		byName:  make(map[string]domain.Module, len(modules)),
		modules: make([]domain.Module, 0, len(modules)),
	}
	for _, m := range modules {
		if _, ok := r.byName[m.Name]; ok {
			continue
		}
		r.byName[m.Name] = m
		r.modules = append(r.modules, m)
	}
	return r
}

// Default returns a Registry holding DefaultModules
func Default() *Registry {
	return New(DefaultModules...)
}

// Resolve returns the module with the given name
func (r *Registry) Resolve(name string) (domain.Module, error) {
	m, ok := r.byName[name]
	if !ok {
		return domain.Module{}, &domain.UnknownModuleError{Name: name}
	}
	return m, nil
}

// ResolveAll resolves every name, failing on the first unknown one
func (r *Registry) ResolveAll(names []string) ([]domain.Module, error) {
	modules := make([]domain.Module, 0, len(names))
	for _, name := range names {
		m, err := r.Resolve(name)
		if err != nil {
			return nil, err
		}
		modules = append(modules, m)
	}
	return modules, nil
}

// All returns the registered modules in registration order
func (r *Registry) All() []domain.Module {
	out := make([]domain.Module, len(r.modules))
	copy(out, r.modules)
	return out
}

// Names returns the registered module names in registration order
func (r *Registry) Names() []string {
	names := make([]string, len(r.modules))
	for i, m := range r.modules {
		names[i] = m.Name
	}
	return names
}
