// Package catalog holds a representative set of prebuilt lux schema
// definitions as process-wide constants. Each definition is built lazily
// on first use, immutable thereafter, and shared by reference across any
// number of concurrent validations.
//
//	sig, err := signal.New(catalog.ChatMessage(), map[string]any{
//	    "message":  "hi",
//	    "priority": 3,
//	})
//
// The bodies here are static data supplied to the schema constructor; no
// behavior is attached to any individual catalog entry beyond what the
// schema package provides.
package catalog
