package catalog

import (
	"sync"

	"github.com/Spectral-Finance/lux-go/schema"
)

var performanceMetric = sync.OnceValue(func() *schema.Definition {
	return mustBuild("performance_metric", "1.0",
		"Schema for system performance metrics and thresholds",
		&schema.Shape{
			Type: "object",
			Properties: map[string]*schema.Shape{
				"timestamp": {Type: "string", Format: "date-time"},
				"metric_id": {Type: "string"},
				"source": {
					Type:        "string",
					Description: "Component or host reporting the metric",
				},
				"name": {Type: "string"},
				"value": {
					Type: "number",
				},
				"unit": {Type: "string"},
				"kind": {
					Type: "string",
					Enum: []any{"gauge", "counter", "histogram", "summary"},
				},
				"thresholds": {
					Type: "object",
					Properties: map[string]*schema.Shape{
						"warning":  {Type: "number"},
						"critical": {Type: "number"},
					},
				},
				"labels": {
					Type:        "object",
					Description: "Arbitrary metric labels",
				},
			},
			Required:             []string{"timestamp", "metric_id", "name", "value"},
			AdditionalProperties: schema.Bool(false),
		})
})

// PerformanceMetric returns the performance metric schema.
func PerformanceMetric() *schema.Definition {
	return performanceMetric()
}
