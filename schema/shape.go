package schema

// Shape is a structural description of permitted payload data, modeled on
// JSON Schema. A shape is a tree: object shapes carry per-property child
// shapes, array shapes carry an item shape. Only the keywords used by the
// lux catalog are represented.
type Shape struct {
	Type        string `json:"type,omitempty" yaml:"type,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Format      string `json:"format,omitempty" yaml:"format,omitempty"`
	Default     any    `json:"default,omitempty" yaml:"default,omitempty"`

	// Object keywords
	Properties           map[string]*Shape `json:"properties,omitempty" yaml:"properties,omitempty"`
	Required             []string          `json:"required,omitempty" yaml:"required,omitempty"`
	AdditionalProperties *bool             `json:"additionalProperties,omitempty" yaml:"additionalProperties,omitempty"`

	// Array keywords
	Items *Shape `json:"items,omitempty" yaml:"items,omitempty"`

	// Value constraints
	Enum      []any    `json:"enum,omitempty" yaml:"enum,omitempty"`
	Minimum   *float64 `json:"minimum,omitempty" yaml:"minimum,omitempty"`
	Maximum   *float64 `json:"maximum,omitempty" yaml:"maximum,omitempty"`
	MinLength *int     `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	MaxLength *int     `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	Pattern   string   `json:"pattern,omitempty" yaml:"pattern,omitempty"`
}

// Float returns a pointer to v, for use in Shape literals.
func Float(v float64) *float64 {
	return &v
}

// Int returns a pointer to v, for use in Shape literals.
func Int(v int) *int {
	return &v
}

// Bool returns a pointer to v, for use in Shape literals.
func Bool(v bool) *bool {
	return &v
}

// closed reports whether the shape forbids undeclared properties.
func (s *Shape) closed() bool {
	return s.AdditionalProperties != nil && !*s.AdditionalProperties
}
