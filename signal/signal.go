package signal

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Spectral-Finance/lux-go/schema"
)

// Signal is a validated message envelope. The zero value is not usable;
// construct signals with New or the From* decoders.
type Signal struct {
	// ID uniquely identifies the signal. Generated when not supplied.
	ID string

	// Schema is the definition this signal was validated against. It is
	// not serialized; receivers supply the same definition when decoding.
	Schema *schema.Definition

	// Payload is the field map carried by the signal, conformant to the
	// schema at construction time.
	Payload map[string]any

	// Sender and Recipient are optional free-text agent identifiers.
	Sender    string
	Recipient string

	// Timestamp is the creation time, UTC now when not supplied.
	Timestamp time.Time

	// Topic is an optional free-text routing label.
	Topic string

	// Metadata carries arbitrary auxiliary key/value pairs.
	Metadata map[string]any
}

// Option configures optional signal fields at construction.
type Option func(*Signal)

// WithID sets an explicit signal ID.
func WithID(id string) Option {
	return func(s *Signal) { s.ID = id }
}

// WithSender sets the sender identifier.
func WithSender(sender string) Option {
	return func(s *Signal) { s.Sender = sender }
}

// WithRecipient sets the recipient identifier.
func WithRecipient(recipient string) Option {
	return func(s *Signal) { s.Recipient = recipient }
}

// WithTimestamp sets an explicit creation time.
func WithTimestamp(t time.Time) Option {
	return func(s *Signal) { s.Timestamp = t }
}

// WithTopic sets the routing topic.
func WithTopic(topic string) Option {
	return func(s *Signal) { s.Topic = topic }
}

// WithMetadata sets the metadata map.
func WithMetadata(metadata map[string]any) Option {
	return func(s *Signal) { s.Metadata = metadata }
}

// New creates a signal wrapping payload, validated against def. The
// payload is normalized and strictly validated immediately; New returns
// the *schema.ValidationError when it does not conform. ID defaults to a
// random UUID and Timestamp to the current UTC time.
func New(def *schema.Definition, payload map[string]any, opts ...Option) (*Signal, error) {
	if def == nil {
		return nil, fmt.Errorf("schema definition cannot be nil")
	}

	s := &Signal{
		ID:        uuid.New().String(),
		Schema:    def,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
		Metadata:  map[string]any{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.Metadata == nil {
		s.Metadata = map[string]any{}
	}

	if err := def.ValidateStrict(payload); err != nil {
		return nil, err
	}
	return s, nil
}
