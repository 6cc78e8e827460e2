package signal

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/Spectral-Finance/lux-go/schema"
)

// wireSignal is the flat transport representation. The schema identity is
// deliberately absent: schema agreement happens out of band.
type wireSignal struct {
	ID        string         `json:"id"`
	Payload   map[string]any `json:"payload"`
	Sender    *string        `json:"sender"`
	Recipient *string        `json:"recipient"`
	Timestamp string         `json:"timestamp"`
	Topic     *string        `json:"topic"`
	Metadata  map[string]any `json:"metadata"`
}

// ToMap produces the flat transport map. Unset sender, recipient, and
// topic render as nil so the wire form carries string|null for each.
func (s *Signal) ToMap() map[string]any {
	return map[string]any{
		"id":        s.ID,
		"payload":   s.Payload,
		"sender":    optional(s.Sender),
		"recipient": optional(s.Recipient),
		"timestamp": s.Timestamp.Format(time.RFC3339Nano),
		"topic":     optional(s.Topic),
		"metadata":  s.Metadata,
	}
}

// ToJSON serializes the transport map to JSON text.
func (s *Signal) ToJSON() ([]byte, error) {
	w := wireSignal{
		ID:        s.ID,
		Payload:   s.Payload,
		Sender:    optionalPtr(s.Sender),
		Recipient: optionalPtr(s.Recipient),
		Timestamp: s.Timestamp.Format(time.RFC3339Nano),
		Topic:     optionalPtr(s.Topic),
		Metadata:  s.Metadata,
	}
	data, err := json.Marshal(w)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal signal: %w", err)
	}
	return data, nil
}

// FromMap reconstructs a signal from a transport map, re-running the same
// construction-time validation against def. The timestamp may be an
// RFC 3339 / ISO-8601 string or an existing time.Time.
func FromMap(data map[string]any, def *schema.Definition) (*Signal, error) {
	payload, _ := data["payload"].(map[string]any)

	opts := []Option{}
	if id, ok := data["id"].(string); ok && id != "" {
		opts = append(opts, WithID(id))
	}
	if sender, ok := data["sender"].(string); ok {
		opts = append(opts, WithSender(sender))
	}
	if recipient, ok := data["recipient"].(string); ok {
		opts = append(opts, WithRecipient(recipient))
	}
	if topic, ok := data["topic"].(string); ok {
		opts = append(opts, WithTopic(topic))
	}
	if metadata, ok := data["metadata"].(map[string]any); ok {
		opts = append(opts, WithMetadata(metadata))
	}

	switch ts := data["timestamp"].(type) {
	case time.Time:
		opts = append(opts, WithTimestamp(ts))
	case string:
		t, err := parseTimestamp(ts)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithTimestamp(t))
	}

	return New(def, payload, opts...)
}

// FromJSON reconstructs a signal from JSON text, re-running the same
// construction-time validation against def.
func FromJSON(data []byte, def *schema.Definition) (*Signal, error) {
	var w wireSignal
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("failed to unmarshal signal: %w", err)
	}

	opts := []Option{}
	if w.ID != "" {
		opts = append(opts, WithID(w.ID))
	}
	if w.Sender != nil {
		opts = append(opts, WithSender(*w.Sender))
	}
	if w.Recipient != nil {
		opts = append(opts, WithRecipient(*w.Recipient))
	}
	if w.Topic != nil {
		opts = append(opts, WithTopic(*w.Topic))
	}
	if w.Metadata != nil {
		opts = append(opts, WithMetadata(w.Metadata))
	}
	if w.Timestamp != "" {
		t, err := parseTimestamp(w.Timestamp)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithTimestamp(t))
	}

	return New(def, w.Payload, opts...)
}

// parseTimestamp accepts RFC 3339 timestamps, with a trailing Z read as
// UTC offset +00:00, and offset-less ISO-8601 timestamps read as UTC.
func parseTimestamp(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02T15:04:05.999999999", value); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", value)
}

func optional(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func optionalPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
