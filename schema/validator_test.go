package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDefinition(t *testing.T, shape *Shape) *Definition {
	t.Helper()
	def, err := New("test", "1.0", "Test schema", shape)
	require.NoError(t, err)
	return def
}

func assertValidationError(t *testing.T, def *Definition, payload map[string]any, expected string) {
	t.Helper()
	err := def.ValidateStrict(payload)
	require.Error(t, err)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, expected, ve.Message)
}

func TestValidateStrict(t *testing.T) {
	def := mustDefinition(t, basicShape())

	t.Run("missing required field", func(t *testing.T) {
		assertValidationError(t, def,
			map[string]any{"priority": 1},
			"Required property 'message' was not present")
	})

	t.Run("required fields checked in declaration order", func(t *testing.T) {
		assertValidationError(t, def,
			map[string]any{},
			"Required property 'message' was not present")
	})

	t.Run("wrong primitive type", func(t *testing.T) {
		assertValidationError(t, def,
			map[string]any{"message": "test", "priority": "high"},
			"'high' is not of type 'integer'")
	})

	t.Run("value below minimum", func(t *testing.T) {
		assertValidationError(t, def,
			map[string]any{"message": "test", "priority": 0},
			"'0' is less than the minimum of 1")
	})

	t.Run("value above maximum", func(t *testing.T) {
		assertValidationError(t, def,
			map[string]any{"message": "hi", "priority": 6},
			"'6' is greater than the maximum of 5")
	})

	t.Run("additional property", func(t *testing.T) {
		assertValidationError(t, def,
			map[string]any{"message": "test", "priority": 1, "extra": "field"},
			"Additional properties are not allowed ('extra' was unexpected)")
	})

	t.Run("valid payload passes", func(t *testing.T) {
		assert.NoError(t, def.ValidateStrict(map[string]any{
			"message":  "test",
			"priority": 1,
			"tags":     []any{"important"},
		}))
	})

	t.Run("wrong type for non-string value renders the value", func(t *testing.T) {
		assertValidationError(t, def,
			map[string]any{"message": 123, "priority": 2.5},
			"'2.5' is not of type 'integer'")
	})

	t.Run("integral float counts as integer", func(t *testing.T) {
		assert.NoError(t, def.ValidateStrict(map[string]any{
			"message":  "test",
			"priority": float64(3),
		}))
	})
}

func TestValidateStrictNested(t *testing.T) {
	def := mustDefinition(t, &Shape{
		Type: "object",
		Properties: map[string]*Shape{
			"data": {
				Type: "object",
				Properties: map[string]*Shape{
					"value": {Type: "integer"},
					"unit":  {Type: "string"},
				},
				Required:             []string{"value", "unit"},
				AdditionalProperties: Bool(false),
			},
		},
		Required:             []string{"data"},
		AdditionalProperties: Bool(false),
	})

	t.Run("missing nested required field", func(t *testing.T) {
		assertValidationError(t, def,
			map[string]any{"data": map[string]any{"unit": "meters"}},
			"Required property 'value' was not present")
	})

	t.Run("additional property in nested object", func(t *testing.T) {
		assertValidationError(t, def,
			map[string]any{"data": map[string]any{"value": 42, "unit": "meters", "extra": "field"}},
			"Additional properties are not allowed ('extra' was unexpected)")
	})

	t.Run("valid nested payload passes", func(t *testing.T) {
		assert.NoError(t, def.ValidateStrict(map[string]any{
			"data": map[string]any{"value": 42, "unit": "meters"},
		}))
	})
}

func TestValidateStrictConstraints(t *testing.T) {
	t.Run("enum rejects values outside the set", func(t *testing.T) {
		def := mustDefinition(t, &Shape{
			Type: "object",
			Properties: map[string]*Shape{
				"level": {Type: "string", Enum: []any{"basic", "advanced"}},
			},
		})

		assert.NoError(t, def.ValidateStrict(map[string]any{"level": "basic"}))
		assertValidationError(t, def,
			map[string]any{"level": "expert"},
			"'expert' is not one of the allowed values for field 'level'")
	})

	t.Run("enum matches numbers across int and float", func(t *testing.T) {
		def := mustDefinition(t, &Shape{
			Type: "object",
			Properties: map[string]*Shape{
				"n": {Type: "integer", Enum: []any{1, 2, 3}},
			},
		})

		assert.NoError(t, def.ValidateStrict(map[string]any{"n": float64(2)}))
	})

	t.Run("pattern rejects non-matching strings", func(t *testing.T) {
		def := mustDefinition(t, &Shape{
			Type: "object",
			Properties: map[string]*Shape{
				"address": {Type: "string", Pattern: "^0x[a-fA-F0-9]{40}$"},
			},
		})

		assert.NoError(t, def.ValidateStrict(map[string]any{
			"address": "0x" + "ab12cd34ef56ab12cd34ef56ab12cd34ef56ab12",
		}))
		err := def.ValidateStrict(map[string]any{"address": "not-an-address"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "does not match pattern")
	})

	t.Run("string length bounds", func(t *testing.T) {
		def := mustDefinition(t, &Shape{
			Type: "object",
			Properties: map[string]*Shape{
				"code": {Type: "string", MinLength: Int(2), MaxLength: Int(4)},
			},
		})

		assert.NoError(t, def.ValidateStrict(map[string]any{"code": "abc"}))
		err := def.ValidateStrict(map[string]any{"code": "a"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "shorter than the minimum length")
	})

	t.Run("array items validated in order", func(t *testing.T) {
		def := mustDefinition(t, &Shape{
			Type: "object",
			Properties: map[string]*Shape{
				"tags": {Type: "array", Items: &Shape{Type: "string"}},
			},
		})

		assertValidationError(t, def,
			map[string]any{"tags": []any{"ok", 7}},
			"'7' is not of type 'string'")
	})

	t.Run("null fails a typed property", func(t *testing.T) {
		def := mustDefinition(t, &Shape{
			Type: "object",
			Properties: map[string]*Shape{
				"count": {Type: "integer"},
			},
		})

		assertValidationError(t, def,
			map[string]any{"count": nil},
			"'null' is not of type 'integer'")
	})

	t.Run("open shapes allow undeclared fields", func(t *testing.T) {
		def := mustDefinition(t, &Shape{
			Type: "object",
			Properties: map[string]*Shape{
				"name": {Type: "string"},
			},
		})

		assert.NoError(t, def.ValidateStrict(map[string]any{"name": "x", "anything": 1}))
	})
}

func TestNormalize(t *testing.T) {
	def := mustDefinition(t, basicShape())

	t.Run("string to integer coercion", func(t *testing.T) {
		assert.True(t, def.Validate(map[string]any{
			"message":  "test",
			"priority": "3",
			"tags":     []any{"test"},
		}))
	})

	t.Run("non-coercible string left for strict validation", func(t *testing.T) {
		assertValidationError(t, def,
			map[string]any{"message": "test", "priority": "invalid"},
			"'invalid' is not of type 'integer'")
	})

	t.Run("string to number coercion", func(t *testing.T) {
		def := mustDefinition(t, &Shape{
			Type: "object",
			Properties: map[string]*Shape{
				"score": {Type: "number", Minimum: Float(0), Maximum: Float(1)},
			},
			Required: []string{"score"},
		})

		assert.True(t, def.Validate(map[string]any{"score": "0.5"}))
		assertValidationError(t, def,
			map[string]any{"score": "1.5"},
			"'1.5' is greater than the maximum of 1")
	})

	t.Run("non-string stringified for string fields", func(t *testing.T) {
		assert.True(t, def.Validate(map[string]any{
			"message":  42,
			"priority": 1,
		}))
	})

	t.Run("undeclared fields pass through untouched", func(t *testing.T) {
		// The extra field must survive normalization so strict validation
		// still reports it.
		assertValidationError(t, def,
			map[string]any{"message": "hi", "priority": 1, "x": "1"},
			"Additional properties are not allowed ('x' was unexpected)")
	})

	t.Run("nested values are not normalized", func(t *testing.T) {
		def := mustDefinition(t, &Shape{
			Type: "object",
			Properties: map[string]*Shape{
				"data": {
					Type: "object",
					Properties: map[string]*Shape{
						"value": {Type: "integer"},
					},
					Required: []string{"value"},
				},
			},
			Required: []string{"data"},
		})

		assertValidationError(t, def,
			map[string]any{"data": map[string]any{"value": "3"}},
			"'3' is not of type 'integer'")
	})
}

func TestValidate(t *testing.T) {
	def := mustDefinition(t, basicShape())

	t.Run("Validate returns true for conformant payload", func(t *testing.T) {
		assert.True(t, def.Validate(map[string]any{"message": "hi", "priority": 3}))
	})

	t.Run("Validate returns false without detail", func(t *testing.T) {
		assert.False(t, def.Validate(map[string]any{"priority": 3}))
	})

	t.Run("Validate is idempotent", func(t *testing.T) {
		payload := map[string]any{"message": "hi", "priority": "3"}

		first := def.Validate(payload)
		second := def.Validate(payload)

		assert.Equal(t, first, second)
		assert.Equal(t, "3", payload["priority"], "normalization must not mutate the input")
	})
}

func TestEndToEndScenario(t *testing.T) {
	// Schema requires {message: string, priority: integer[1..5]} and
	// forbids extra fields.
	def := mustDefinition(t, &Shape{
		Type: "object",
		Properties: map[string]*Shape{
			"message":  {Type: "string"},
			"priority": {Type: "integer", Minimum: Float(1), Maximum: Float(5)},
		},
		Required:             []string{"message", "priority"},
		AdditionalProperties: Bool(false),
	})

	assert.True(t, def.Validate(map[string]any{"message": "hi", "priority": "3"}))

	assertValidationError(t, def,
		map[string]any{"message": "hi", "priority": 6},
		"'6' is greater than the maximum of 5")

	assertValidationError(t, def,
		map[string]any{"priority": 3},
		"Required property 'message' was not present")

	assertValidationError(t, def,
		map[string]any{"message": "hi", "priority": 3, "x": 1},
		"Additional properties are not allowed ('x' was unexpected)")
}
