package schema

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Model is the capability interface for an external structured-model
// validator substituting for a literal shape. DeriveShape produces the
// structural shape the model implies; ValidateNative validates a payload
// with the model's own machinery and returns its native error, or nil.
//
// Native errors are mapped back to the stable message catalog: a
// *Violation maps directly, a *ModelError is classified by semantic cues
// in its message, and anything else is preserved verbatim.
type Model interface {
	DeriveShape() (*Shape, error)
	ValidateNative(payload map[string]any) error
}

// ModelError is a structured native error a Model implementation can
// return to get its violations mapped onto the standard message catalog.
type ModelError struct {
	Field      string
	Value      any
	Constraint any
	Msg        string
}

func (e *ModelError) Error() string {
	return fmt.Sprintf("invalid value for field '%s': %s", e.Field, e.Msg)
}

// mapModelError re-expresses a model's native validation error as a
// *ValidationError with the best available field/value/bound context.
func mapModelError(err error) *ValidationError {
	var violation *Violation
	if errors.As(err, &violation) {
		return violation.toValidationError()
	}

	var me *ModelError
	if errors.As(err, &me) {
		msg := strings.ToLower(me.Msg)
		switch {
		case strings.Contains(msg, "required") || strings.Contains(msg, "missing"):
			return (&Violation{Kind: ViolationRequired, Field: me.Field}).toValidationError()
		case strings.Contains(msg, "not a valid integer"):
			return (&Violation{Kind: ViolationWrongType, Value: me.Value, Constraint: "integer"}).toValidationError()
		case strings.Contains(msg, "not a valid number"):
			return (&Violation{Kind: ViolationWrongType, Value: me.Value, Constraint: "number"}).toValidationError()
		case strings.Contains(msg, "not a valid string"):
			return (&Violation{Kind: ViolationWrongType, Value: me.Value, Constraint: "string"}).toValidationError()
		case strings.Contains(msg, "greater than or equal to"):
			return (&Violation{Kind: ViolationBelowMinimum, Value: me.Value, Constraint: me.Constraint}).toValidationError()
		case strings.Contains(msg, "less than or equal to"):
			return (&Violation{Kind: ViolationAboveMaximum, Value: me.Value, Constraint: me.Constraint}).toValidationError()
		default:
			return &ValidationError{Message: fmt.Sprintf("Invalid value for field '%s': %s", me.Field, me.Msg)}
		}
	}

	// No mapping available; never swallow the underlying message.
	return &ValidationError{Message: err.Error()}
}

// StructModel is the default Model implementation: it derives a shape
// from a Go struct by reflection and validates payloads structurally
// against that shape. Constraint struct tags are honored:
//
//	type Task struct {
//	    Title    string `json:"title"`
//	    Priority int    `json:"priority" minimum:"1" maximum:"5"`
//	    Assignee string `json:"assignee,omitempty" pattern:"^[a-z_]+$"`
//	}
//
// Fields tagged omitempty are optional; all others are required. Derived
// shapes forbid additional properties, since a struct is a closed type.
type StructModel struct {
	shape *Shape
}

// NewStructModel builds a StructModel from a struct value or pointer.
func NewStructModel(prototype any) (*StructModel, error) {
	t := reflect.TypeOf(prototype)
	if t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil, configErrorf("model must be a struct, got %T", prototype)
	}
	shape, err := deriveStructShape(t)
	if err != nil {
		return nil, err
	}
	return &StructModel{shape: shape}, nil
}

// DeriveShape returns the shape derived from the struct.
func (m *StructModel) DeriveShape() (*Shape, error) {
	return m.shape, nil
}

// ValidateNative validates the payload against the derived shape and
// returns the structural *Violation directly.
func (m *StructModel) ValidateNative(payload map[string]any) error {
	if v := validateObject(payload, m.shape); v != nil {
		return v
	}
	return nil
}

func deriveStructShape(t reflect.Type) (*Shape, error) {
	shape := &Shape{
		Type:                 "object",
		Properties:           map[string]*Shape{},
		AdditionalProperties: Bool(false),
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.PkgPath != "" {
			continue
		}

		jsonTag := field.Tag.Get("json")
		if jsonTag == "-" {
			continue
		}

		name := field.Name
		omitempty := false
		if jsonTag != "" {
			parts := strings.Split(jsonTag, ",")
			if parts[0] != "" {
				name = parts[0]
			}
			for _, part := range parts[1:] {
				if part == "omitempty" {
					omitempty = true
				}
			}
		} else {
			name = strings.ToLower(name[:1]) + name[1:]
		}

		// Anonymous embedded structs fold their fields into the parent.
		if field.Anonymous && jsonTag == "" {
			ft := field.Type
			if ft.Kind() == reflect.Ptr {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct && ft != reflect.TypeOf(time.Time{}) {
				embedded, err := deriveStructShape(ft)
				if err != nil {
					return nil, err
				}
				for k, v := range embedded.Properties {
					shape.Properties[k] = v
				}
				shape.Required = append(shape.Required, embedded.Required...)
				continue
			}
		}

		prop, err := deriveFieldShape(field.Type)
		if err != nil {
			return nil, err
		}
		if err := applyConstraintTags(prop, field.Tag); err != nil {
			return nil, err
		}

		shape.Properties[name] = prop
		if !omitempty && field.Type.Kind() != reflect.Ptr {
			shape.Required = append(shape.Required, name)
		}
	}
	return shape, nil
}

func deriveFieldShape(t reflect.Type) (*Shape, error) {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == reflect.TypeOf(time.Time{}) {
		return &Shape{Type: "string", Format: "date-time"}, nil
	}

	switch t.Kind() {
	case reflect.String:
		return &Shape{Type: "string"}, nil
	case reflect.Bool:
		return &Shape{Type: "boolean"}, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return &Shape{Type: "integer"}, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &Shape{Type: "integer", Minimum: Float(0)}, nil
	case reflect.Float32, reflect.Float64:
		return &Shape{Type: "number"}, nil
	case reflect.Slice, reflect.Array:
		items, err := deriveFieldShape(t.Elem())
		if err != nil {
			return nil, err
		}
		return &Shape{Type: "array", Items: items}, nil
	case reflect.Map:
		return &Shape{Type: "object"}, nil
	case reflect.Struct:
		return deriveStructShape(t)
	case reflect.Interface:
		return &Shape{}, nil
	default:
		return nil, configErrorf("cannot derive a shape for field type %s", t.Kind())
	}
}

func applyConstraintTags(shape *Shape, tag reflect.StructTag) error {
	if desc := tag.Get("description"); desc != "" {
		shape.Description = desc
	}
	if min := tag.Get("minimum"); min != "" {
		f, err := strconv.ParseFloat(min, 64)
		if err != nil {
			return configErrorf("invalid minimum tag %q", min)
		}
		shape.Minimum = Float(f)
	}
	if max := tag.Get("maximum"); max != "" {
		f, err := strconv.ParseFloat(max, 64)
		if err != nil {
			return configErrorf("invalid maximum tag %q", max)
		}
		shape.Maximum = Float(f)
	}
	if pattern := tag.Get("pattern"); pattern != "" {
		shape.Pattern = pattern
	}
	if enum := tag.Get("enum"); enum != "" {
		for _, v := range strings.Split(enum, ",") {
			shape.Enum = append(shape.Enum, v)
		}
	}
	return nil
}
