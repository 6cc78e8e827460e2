package schema

import (
	"errors"
	"strings"
)

// Definition is an immutable named, versioned data-shape declaration.
// Definitions are intended to be process-wide constants: constructed once,
// shared by reference, and safe for concurrent validation calls.
type Definition struct {
	name        string
	version     string
	description string
	shape       *Shape
	model       Model
}

// New creates a Definition backed by a structural shape. The shape's root
// type must be "object".
func New(name, version, description string, shape *Shape) (*Definition, error) {
	def := &Definition{name: name, version: version, description: description}
	if err := def.checkIdentity(); err != nil {
		return nil, err
	}
	if shape == nil {
		return nil, configErrorf("either a shape or a valid model must be provided")
	}
	if shape.Type != "object" {
		return nil, configErrorf("shape must declare an object type")
	}
	def.shape = shape
	return def, nil
}

// NewFromModel creates a Definition backed by a model. The model may
// implement the Model interface directly; any other struct value is
// wrapped in a StructModel and its shape derived by reflection. The
// model's derived shape is exposed through Shape and RequiredFields
// exactly as a literal shape would be, and normalization uses it, but
// strict validation goes through the model's native validation.
func NewFromModel(name, version, description string, model any) (*Definition, error) {
	def := &Definition{name: name, version: version, description: description}
	if err := def.checkIdentity(); err != nil {
		return nil, err
	}
	if model == nil {
		return nil, configErrorf("either a shape or a valid model must be provided")
	}

	m, ok := model.(Model)
	if !ok {
		var err error
		m, err = NewStructModel(model)
		if err != nil {
			var cfg *ConfigurationError
			if errors.As(err, &cfg) {
				return nil, err
			}
			return nil, configErrorf("model is not usable: %v", err)
		}
	}

	shape, err := m.DeriveShape()
	if err != nil {
		return nil, configErrorf("model did not yield a usable shape: %v", err)
	}
	if shape == nil || shape.Type != "object" {
		return nil, configErrorf("model shape must declare an object type")
	}

	def.shape = shape
	def.model = m
	return def, nil
}

func (d *Definition) checkIdentity() error {
	if strings.TrimSpace(d.name) == "" {
		return configErrorf("schema name must be a non-empty string")
	}
	if strings.TrimSpace(d.version) == "" {
		return configErrorf("schema version must be a non-empty string")
	}
	if strings.TrimSpace(d.description) == "" {
		return configErrorf("schema description must be a non-empty string")
	}
	return nil
}

// Name returns the schema name.
func (d *Definition) Name() string { return d.name }

// Version returns the schema version.
func (d *Definition) Version() string { return d.version }

// Description returns the schema description.
func (d *Definition) Description() string { return d.description }

// Shape returns the effective shape: the literal shape, or the shape
// derived from the model when one was supplied. Callers must not mutate
// the returned tree.
func (d *Definition) Shape() *Shape { return d.shape }

// RequiredFields returns the field names marked required at the shape's
// root level, in declaration order. The slice is empty when none are
// declared.
func (d *Definition) RequiredFields() []string {
	if len(d.shape.Required) == 0 {
		return []string{}
	}
	out := make([]string, len(d.shape.Required))
	copy(out, d.shape.Required)
	return out
}

// Validate reports whether the payload conforms to the schema after
// normalization. Violation detail is deliberately discarded; use
// ValidateStrict when the failure reason matters.
func (d *Definition) Validate(payload map[string]any) bool {
	return d.ValidateStrict(payload) == nil
}

// ValidateStrict normalizes the payload and checks it against the
// effective shape, returning a *ValidationError describing the first
// violation found, or nil when the payload conforms. When the Definition
// was built from a model the model's native validation runs instead of
// the structural check and its error is mapped to the same message
// catalog.
func (d *Definition) ValidateStrict(payload map[string]any) error {
	normalized := d.normalize(payload)

	if d.model != nil {
		if err := d.model.ValidateNative(normalized); err != nil {
			return mapModelError(err)
		}
		return nil
	}

	if v := validateObject(normalized, d.shape); v != nil {
		return v.toValidationError()
	}
	return nil
}
