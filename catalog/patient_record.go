package catalog

import (
	"sync"

	"github.com/Spectral-Finance/lux-go/schema"
)

var patientRecord = sync.OnceValue(func() *schema.Definition {
	return mustBuild("patient_record", "1.0",
		"Schema for patient records including demographics, conditions, and medications",
		&schema.Shape{
			Type: "object",
			Properties: map[string]*schema.Shape{
				"timestamp":  {Type: "string", Format: "date-time"},
				"patient_id": {Type: "string"},
				"demographics": {
					Type: "object",
					Properties: map[string]*schema.Shape{
						"date_of_birth": {Type: "string", Format: "date"},
						"sex":           {Type: "string", Enum: []any{"female", "male", "other", "unknown"}},
						"blood_type": {
							Type: "string",
							Enum: []any{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"},
						},
					},
					Required: []string{"date_of_birth"},
				},
				"conditions": {
					Type: "array",
					Items: &schema.Shape{
						Type: "object",
						Properties: map[string]*schema.Shape{
							"code":        {Type: "string", Description: "ICD-10 code"},
							"description": {Type: "string"},
							"diagnosed":   {Type: "string", Format: "date"},
							"status":      {Type: "string", Enum: []any{"active", "resolved", "chronic"}},
						},
						Required: []string{"code", "description"},
					},
				},
				"medications": {
					Type: "array",
					Items: &schema.Shape{
						Type: "object",
						Properties: map[string]*schema.Shape{
							"name":      {Type: "string"},
							"dosage_mg": {Type: "number", Minimum: schema.Float(0)},
							"frequency_per_day": {
								Type:    "integer",
								Minimum: schema.Float(0),
								Maximum: schema.Float(24),
							},
						},
						Required: []string{"name"},
					},
				},
				"allergies": {
					Type:  "array",
					Items: &schema.Shape{Type: "string"},
				},
			},
			Required: []string{"timestamp", "patient_id", "demographics"},
		})
})

// PatientRecord returns the patient record schema.
func PatientRecord() *schema.Definition {
	return patientRecord()
}
