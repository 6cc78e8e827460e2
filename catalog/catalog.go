package catalog

import (
	"sort"

	"github.com/Spectral-Finance/lux-go/schema"
)

// mustBuild constructs a catalog definition, panicking on a malformed
// body. Catalog bodies are static and checked by tests, so a failure here
// is a programming error, like a bad regexp in regexp.MustCompile.
func mustBuild(name, version, description string, shape *schema.Shape) *schema.Definition {
	def, err := schema.New(name, version, description, shape)
	if err != nil {
		panic("catalog: " + name + ": " + err.Error())
	}
	return def
}

// All returns every catalog definition, sorted by name.
func All() []*schema.Definition {
	defs := []*schema.Definition{
		ChatMessage(),
		TaskDefinition(),
		EmotionRecognition(),
		SensorReading(),
		PerformanceMetric(),
		DeFiPosition(),
		PatientRecord(),
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Name() < defs[j].Name() })
	return defs
}

// Lookup returns the catalog definition with the given name.
func Lookup(name string) (*schema.Definition, bool) {
	for _, def := range All() {
		if def.Name() == name {
			return def, true
		}
	}
	return nil, false
}
