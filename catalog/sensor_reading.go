package catalog

import (
	"sync"

	"github.com/Spectral-Finance/lux-go/schema"
)

var sensorReading = sync.OnceValue(func() *schema.Definition {
	return mustBuild("sensor_reading", "1.0",
		"Schema for environmental sensor readings with location and quality metrics",
		&schema.Shape{
			Type: "object",
			Properties: map[string]*schema.Shape{
				"timestamp":  {Type: "string", Format: "date-time"},
				"reading_id": {Type: "string"},
				"sensor_id":  {Type: "string"},
				"sensor_info": {
					Type: "object",
					Properties: map[string]*schema.Shape{
						"type":  {Type: "string"},
						"model": {Type: "string"},
					},
					Required: []string{"type", "model"},
				},
				"location": {
					Type: "object",
					Properties: map[string]*schema.Shape{
						"latitude": {
							Type:    "number",
							Minimum: schema.Float(-90),
							Maximum: schema.Float(90),
						},
						"longitude": {
							Type:    "number",
							Minimum: schema.Float(-180),
							Maximum: schema.Float(180),
						},
						"altitude_meters": {Type: "number"},
					},
					Required: []string{"latitude", "longitude"},
				},
				"measurements": {
					Type: "array",
					Items: &schema.Shape{
						Type: "object",
						Properties: map[string]*schema.Shape{
							"name":  {Type: "string"},
							"value": {Type: "number"},
							"unit":  {Type: "string"},
						},
						Required: []string{"name", "value", "unit"},
					},
				},
				"quality_metrics": {
					Type: "object",
					Properties: map[string]*schema.Shape{
						"signal_strength": {
							Type:    "number",
							Minimum: schema.Float(0),
							Maximum: schema.Float(1),
						},
						"calibrated": {Type: "boolean"},
					},
				},
			},
			Required: []string{"timestamp", "reading_id", "sensor_id", "measurements"},
		})
})

// SensorReading returns the sensor reading schema.
func SensorReading() *schema.Definition {
	return sensorReading()
}
