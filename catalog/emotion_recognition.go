package catalog

import (
	"sync"

	"github.com/Spectral-Finance/lux-go/schema"
)

var emotionRecognition = sync.OnceValue(func() *schema.Definition {
	return mustBuild("emotion_recognition", "1.0",
		"Schema for representing emotion recognition and analysis results",
		&schema.Shape{
			Type: "object",
			Properties: map[string]*schema.Shape{
				"context": {
					Type: "object",
					Properties: map[string]*schema.Shape{
						"situation": {Type: "string"},
						"timestamp": {Type: "string", Format: "date-time"},
						"channel":   {Type: "string"},
						"duration_seconds": {
							Type:    "integer",
							Minimum: schema.Float(0),
						},
					},
					Required: []string{"situation", "timestamp"},
				},
				"subject": {
					Type: "object",
					Properties: map[string]*schema.Shape{
						"type":       {Type: "string"},
						"identifier": {Type: "string"},
					},
					Required: []string{"type", "identifier"},
				},
				"detected_emotions": {
					Type: "array",
					Items: &schema.Shape{
						Type: "object",
						Properties: map[string]*schema.Shape{
							"emotion": {Type: "string"},
							"confidence": {
								Type:        "number",
								Minimum:     schema.Float(0),
								Maximum:     schema.Float(1),
								Description: "Detection confidence, 0 to 1",
							},
							"intensity": {
								Type:    "number",
								Minimum: schema.Float(0),
								Maximum: schema.Float(1),
							},
							"indicators": {
								Type: "array",
								Items: &schema.Shape{
									Type: "object",
									Properties: map[string]*schema.Shape{
										"type":    {Type: "string", Enum: []any{"text", "voice", "facial", "behavioral"}},
										"signals": {Type: "array", Items: &schema.Shape{Type: "string"}},
										"confidence": {
											Type:    "number",
											Minimum: schema.Float(0),
											Maximum: schema.Float(1),
										},
									},
									Required: []string{"type", "signals"},
								},
							},
						},
						Required: []string{"emotion", "confidence"},
					},
				},
			},
			Required: []string{"context", "subject", "detected_emotions"},
		})
})

// EmotionRecognition returns the emotion recognition schema.
func EmotionRecognition() *schema.Definition {
	return emotionRecognition()
}
