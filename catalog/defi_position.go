package catalog

import (
	"sync"

	"github.com/Spectral-Finance/lux-go/schema"
)

var defiPosition = sync.OnceValue(func() *schema.Definition {
	return mustBuild("defi_position", "1.0",
		"Schema for DeFi positions and investments",
		&schema.Shape{
			Type: "object",
			Properties: map[string]*schema.Shape{
				"timestamp":   {Type: "string", Format: "date-time"},
				"position_id": {Type: "string"},
				"protocol": {
					Type: "object",
					Properties: map[string]*schema.Shape{
						"name": {Type: "string"},
						"address": {
							Type:        "string",
							Pattern:     "^0x[a-fA-F0-9]{40}$",
							Description: "Protocol contract address",
						},
						"chain_id": {Type: "integer"},
						"type": {
							Type: "string",
							Enum: []any{"dex", "lending", "yield", "options", "derivatives", "insurance"},
						},
					},
					Required: []string{"name", "address", "chain_id", "type"},
				},
				"position_type": {
					Type: "string",
					Enum: []any{"liquidity", "farming", "staking", "lending", "borrowing"},
				},
				"assets": {
					Type: "array",
					Items: &schema.Shape{
						Type: "object",
						Properties: map[string]*schema.Shape{
							"symbol": {Type: "string"},
							"amount": {
								Type:    "number",
								Minimum: schema.Float(0),
							},
							"value_usd": {Type: "number"},
						},
						Required: []string{"symbol", "amount"},
					},
				},
				"health_factor": {
					Type:        "number",
					Minimum:     schema.Float(0),
					Description: "Liquidation health, below 1 is at risk",
				},
			},
			Required: []string{"timestamp", "position_id", "protocol", "position_type", "assets"},
		})
})

// DeFiPosition returns the DeFi position schema.
func DeFiPosition() *schema.Definition {
	return defiPosition()
}
