package catalog

import (
	"sync"

	"github.com/Spectral-Finance/lux-go/schema"
)

var chatMessage = sync.OnceValue(func() *schema.Definition {
	return mustBuild("chat_message", "1.0",
		"Schema for chat messages exchanged between agents",
		&schema.Shape{
			Type: "object",
			Properties: map[string]*schema.Shape{
				"message": {
					Type:        "string",
					Description: "Message body",
				},
				"priority": {
					Type:        "integer",
					Minimum:     schema.Float(1),
					Maximum:     schema.Float(5),
					Description: "Delivery priority, 1 lowest to 5 highest",
				},
				"tags": {
					Type:        "array",
					Items:       &schema.Shape{Type: "string"},
					Description: "Free-form routing tags",
				},
			},
			Required:             []string{"message", "priority"},
			AdditionalProperties: schema.Bool(false),
		})
})

// ChatMessage returns the chat message schema.
func ChatMessage() *schema.Definition {
	return chatMessage()
}
