package schema

import (
	"fmt"
	"strconv"
)

// ConfigurationError reports malformed Definition construction arguments.
// It is fatal to the caller and never retried.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

func configErrorf(format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Message: fmt.Sprintf(format, args...)}
}

// ValidationError reports that a payload failed to conform to a schema.
// It carries exactly one human-readable message describing the first
// violation encountered.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ViolationKind classifies a single schema violation.
type ViolationKind int

const (
	// ViolationOther covers violations with no dedicated message shape;
	// the underlying message is passed through unmodified.
	ViolationOther ViolationKind = iota
	ViolationRequired
	ViolationWrongType
	ViolationBelowMinimum
	ViolationAboveMaximum
	ViolationAdditionalProperty
)

// Violation is a single structured schema violation. Validation walks the
// payload and stops at the first violation found; the violation's kind,
// field, offending value, and constraint determine the formatted message.
type Violation struct {
	Kind       ViolationKind
	Field      string
	Value      any
	Constraint any
	Raw        string
}

// Error formats the violation per the stable message catalog.
func (v *Violation) Error() string {
	switch v.Kind {
	case ViolationRequired:
		return fmt.Sprintf("Required property '%s' was not present", v.Field)
	case ViolationWrongType:
		return fmt.Sprintf("'%s' is not of type '%s'", formatValue(v.Value), v.Constraint)
	case ViolationBelowMinimum:
		return fmt.Sprintf("'%s' is less than the minimum of %s", formatValue(v.Value), formatValue(v.Constraint))
	case ViolationAboveMaximum:
		return fmt.Sprintf("'%s' is greater than the maximum of %s", formatValue(v.Value), formatValue(v.Constraint))
	case ViolationAdditionalProperty:
		return fmt.Sprintf("Additional properties are not allowed ('%s' was unexpected)", v.Field)
	default:
		return v.Raw
	}
}

func (v *Violation) toValidationError() *ValidationError {
	return &ValidationError{Message: v.Error()}
}

// formatValue renders a payload value for inclusion in an error message.
// Numbers render without trailing zeros so that 0.0 reads as 0 and 0.5
// stays 0.5.
func formatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case *float64:
		if t == nil {
			return "null"
		}
		return strconv.FormatFloat(*t, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", t)
	}
}
