package catalog

import (
	"sync"

	"github.com/Spectral-Finance/lux-go/schema"
)

var taskDefinition = sync.OnceValue(func() *schema.Definition {
	return mustBuild("task_definition", "1.0",
		"Schema for representing task definitions including objectives, requirements, and success criteria",
		&schema.Shape{
			Type: "object",
			Properties: map[string]*schema.Shape{
				"timestamp": {Type: "string", Format: "date-time"},
				"task_id":   {Type: "string"},
				"title":     {Type: "string"},
				"description": {
					Type:        "string",
					Description: "What the task accomplishes",
				},
				"objectives": {
					Type: "array",
					Items: &schema.Shape{
						Type: "object",
						Properties: map[string]*schema.Shape{
							"id":          {Type: "string"},
							"description": {Type: "string"},
							"priority": {
								Type:    "integer",
								Minimum: schema.Float(1),
								Maximum: schema.Float(5),
							},
						},
						Required: []string{"id", "description", "priority"},
					},
				},
				"requirements": {
					Type: "object",
					Properties: map[string]*schema.Shape{
						"skills": {
							Type: "array",
							Items: &schema.Shape{
								Type: "object",
								Properties: map[string]*schema.Shape{
									"name": {Type: "string"},
									"level": {
										Type: "string",
										Enum: []any{"basic", "intermediate", "advanced"},
									},
								},
								Required: []string{"name", "level"},
							},
						},
					},
				},
				"status": {
					Type: "string",
					Enum: []any{"draft", "ready", "in_progress", "blocked", "done"},
				},
			},
			Required: []string{"timestamp", "task_id", "title", "description", "objectives"},
		})
})

// TaskDefinition returns the task definition schema.
func TaskDefinition() *schema.Definition {
	return taskDefinition()
}
