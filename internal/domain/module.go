package domain

// Module represents a named group of conformance tests built into the glcts binary
type Module struct {
	Name string `json:"name" yaml:"name"` // Module name, e.g. "KHR-GLES3"
	API  string `json:"api" yaml:"api"`   // Graphics API the module targets
}

// String returns the module name
func (m Module) String() string {
	return m.Name
}
