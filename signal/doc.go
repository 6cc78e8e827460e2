// Package signal provides the envelope that pairs a payload with routing
// metadata and the schema definition it was validated against.
//
// A Signal is validated at construction: New normalizes and strictly
// validates the payload against the supplied schema definition, so a
// signal that exists was valid at the moment of creation. Treat the
// payload as immutable once wrapped.
//
//	def, _ := schema.New("chat_message", "1.0", "A chat message", shape)
//	sig, err := signal.New(def, map[string]any{"message": "hi", "priority": 3},
//	    signal.WithSender("agent1"),
//	    signal.WithTopic("support"),
//	)
//	if err != nil {
//	    // *schema.ValidationError with the first violation
//	}
//
//	data, _ := sig.ToJSON()
//	restored, err := signal.FromJSON(data, def)
//
// The schema is never embedded in the transport form; sender and receiver
// agree on the schema out of band, and decoding re-runs construction-time
// validation.
package signal
