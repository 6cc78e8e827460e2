// Package schema provides named, versioned data-shape definitions and the
// validation layer used by lux signals.
//
// A Definition pairs a name, version, and description with a structural
// shape describing the permitted form of a payload. Payloads are plain
// map[string]any trees; the shape is the sole source of structural truth.
// Before strict validation every payload is normalized: string-encoded
// integers and numbers are parsed, non-string values for string fields are
// stringified, and everything else passes through untouched. Normalization
// never fails; it only improves the odds that type-correct data from a
// loosely-typed transport validates.
//
// Basic usage:
//
//	def, err := schema.New("chat_message", "1.0", "A chat message", &schema.Shape{
//	    Type: "object",
//	    Properties: map[string]*schema.Shape{
//	        "message":  {Type: "string"},
//	        "priority": {Type: "integer", Minimum: schema.Float(1), Maximum: schema.Float(5)},
//	    },
//	    Required: []string{"message", "priority"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := def.ValidateStrict(payload); err != nil {
//	    log.Printf("validation failed: %v", err)
//	}
//
// Validation stops at the first violation and reports it with a stable,
// human-readable message. Alternatively a Definition can be built from a Go
// struct with NewFromModel, in which case the shape is derived by
// reflection and validation runs against the derived shape.
//
// Definitions are immutable after construction and safe for concurrent use.
package schema
