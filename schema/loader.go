package schema

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document is the on-disk form of a schema definition. It mirrors the
// constructor arguments: identity fields plus the shape under "schema".
type Document struct {
	Name        string `json:"name" yaml:"name"`
	Version     string `json:"version" yaml:"version"`
	Description string `json:"description" yaml:"description"`
	Schema      *Shape `json:"schema" yaml:"schema"`
}

// Load reads a schema definition document from a JSON or YAML file,
// dispatching on the file extension, and constructs a Definition through
// the same checks as New.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema document: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return Parse(data, "json")
	case ".yaml", ".yml":
		return Parse(data, "yaml")
	default:
		return nil, fmt.Errorf("unsupported schema document extension %q", filepath.Ext(path))
	}
}

// Parse constructs a Definition from a serialized document. Format is
// "json" or "yaml".
func Parse(data []byte, format string) (*Definition, error) {
	var doc Document
	switch format {
	case "json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse schema document: %w", err)
		}
	case "yaml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse schema document: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported schema document format %q", format)
	}

	return New(doc.Name, doc.Version, doc.Description, doc.Schema)
}
