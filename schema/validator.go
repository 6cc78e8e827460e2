package schema

import (
	"fmt"
	"math"
	"reflect"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// normalize coerces superficial type mismatches in the payload toward the
// declared shape. Only properties declared at the shape's root level are
// touched; unknown fields pass through so that additionalProperties
// violations are still caught by strict validation rather than silently
// stripped. Normalization never fails: unparseable values are left
// untouched so strict validation reports the real type error.
func (d *Definition) normalize(payload map[string]any) map[string]any {
	props := d.shape.Properties
	if len(props) == 0 {
		return payload
	}

	normalized := make(map[string]any, len(payload))
	for key, value := range payload {
		prop, declared := props[key]
		if !declared {
			normalized[key] = value
			continue
		}

		switch prop.Type {
		case "integer":
			if s, ok := value.(string); ok {
				if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
					normalized[key] = n
					continue
				}
			}
		case "number":
			if s, ok := value.(string); ok {
				if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
					normalized[key] = f
					continue
				}
			}
		case "string":
			if _, ok := value.(string); !ok {
				normalized[key] = formatValue(value)
				continue
			}
		}
		normalized[key] = value
	}
	return normalized
}

// validateObject checks an object value against an object shape and
// returns the first violation found, or nil. Required fields are checked
// in declaration order, then declared properties in name order, then
// undeclared properties when the shape is closed.
func validateObject(data map[string]any, shape *Shape) *Violation {
	for _, required := range shape.Required {
		if _, present := data[required]; !present {
			return &Violation{Kind: ViolationRequired, Field: required}
		}
	}

	for _, name := range sortedKeys(data) {
		prop, declared := shape.Properties[name]
		if !declared {
			continue
		}
		if v := validateValue(name, data[name], prop); v != nil {
			return v
		}
	}

	if shape.closed() {
		for _, name := range sortedKeys(data) {
			if _, declared := shape.Properties[name]; !declared {
				return &Violation{Kind: ViolationAdditionalProperty, Field: name}
			}
		}
	}
	return nil
}

// validateValue checks a single value against its shape. The type check
// runs first; constraint checks only apply once the value is of the
// declared type.
func validateValue(field string, value any, shape *Shape) *Violation {
	if value == nil {
		if shape.Type != "" && shape.Type != "null" {
			return &Violation{Kind: ViolationWrongType, Field: field, Value: value, Constraint: shape.Type}
		}
		return nil
	}

	if shape.Type != "" && !typeMatches(value, shape.Type) {
		return &Violation{Kind: ViolationWrongType, Field: field, Value: value, Constraint: shape.Type}
	}

	if len(shape.Enum) > 0 {
		if v := validateEnum(field, value, shape.Enum); v != nil {
			return v
		}
	}

	if num, ok := toFloat(value); ok {
		if shape.Minimum != nil && num < *shape.Minimum {
			return &Violation{Kind: ViolationBelowMinimum, Field: field, Value: value, Constraint: *shape.Minimum}
		}
		if shape.Maximum != nil && num > *shape.Maximum {
			return &Violation{Kind: ViolationAboveMaximum, Field: field, Value: value, Constraint: *shape.Maximum}
		}
	}

	if str, ok := value.(string); ok {
		if v := validateString(field, str, shape); v != nil {
			return v
		}
	}

	if arr, ok := value.([]any); ok && shape.Items != nil {
		for i, item := range arr {
			if v := validateValue(fmt.Sprintf("%s[%d]", field, i), item, shape.Items); v != nil {
				return v
			}
		}
	}

	if obj, ok := value.(map[string]any); ok {
		if v := validateObject(obj, shape); v != nil {
			return v
		}
	}
	return nil
}

func validateString(field, value string, shape *Shape) *Violation {
	if shape.MinLength != nil && len(value) < *shape.MinLength {
		return &Violation{
			Kind:  ViolationOther,
			Field: field,
			Value: value,
			Raw:   fmt.Sprintf("'%s' is shorter than the minimum length of %d", value, *shape.MinLength),
		}
	}
	if shape.MaxLength != nil && len(value) > *shape.MaxLength {
		return &Violation{
			Kind:  ViolationOther,
			Field: field,
			Value: value,
			Raw:   fmt.Sprintf("'%s' is longer than the maximum length of %d", value, *shape.MaxLength),
		}
	}
	if shape.Pattern != "" {
		re, err := regexp.Compile(shape.Pattern)
		if err != nil {
			return &Violation{
				Kind:  ViolationOther,
				Field: field,
				Value: value,
				Raw:   fmt.Sprintf("invalid pattern '%s' for field '%s'", shape.Pattern, field),
			}
		}
		if !re.MatchString(value) {
			return &Violation{
				Kind:  ViolationOther,
				Field: field,
				Value: value,
				Raw:   fmt.Sprintf("'%s' does not match pattern '%s'", value, shape.Pattern),
			}
		}
	}
	return nil
}

func validateEnum(field string, value any, enum []any) *Violation {
	for _, allowed := range enum {
		if reflect.DeepEqual(value, allowed) {
			return nil
		}
		// JSON decoding yields float64 where a literal enum may hold int.
		if a, ok := toFloat(value); ok {
			if b, ok := toFloat(allowed); ok && a == b {
				return nil
			}
		}
	}
	return &Violation{
		Kind:  ViolationOther,
		Field: field,
		Value: value,
		Raw:   fmt.Sprintf("'%s' is not one of the allowed values for field '%s'", formatValue(value), field),
	}
}

// typeMatches checks a value against a declared JSON type name. Numbers
// arriving through encoding/json decode as float64, so an integral
// float64 counts as an integer.
func typeMatches(value any, typeName string) bool {
	switch typeName {
	case "string":
		_, ok := value.(string)
		return ok
	case "boolean":
		_, ok := value.(bool)
		return ok
	case "integer":
		switch t := value.(type) {
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
			return true
		case float64:
			return t == math.Trunc(t)
		case float32:
			return float64(t) == math.Trunc(float64(t))
		default:
			return false
		}
	case "number":
		_, ok := toFloat(value)
		return ok
	case "array":
		_, ok := value.([]any)
		return ok
	case "object":
		_, ok := value.(map[string]any)
		return ok
	case "null":
		return value == nil
	default:
		// Unknown type names pass, matching permissive validators.
		return true
	}
}

func toFloat(value any) (float64, bool) {
	switch t := value.(type) {
	case int:
		return float64(t), true
	case int8:
		return float64(t), true
	case int16:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint:
		return float64(t), true
	case uint8:
		return float64(t), true
	case uint16:
		return float64(t), true
	case uint32:
		return float64(t), true
	case uint64:
		return float64(t), true
	case float32:
		return float64(t), true
	case float64:
		return t, true
	default:
		return 0, false
	}
}

// sortedKeys keeps the property walk deterministic so the "first"
// violation is stable across runs.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
