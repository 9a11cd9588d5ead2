package realtime

import "encoding/json"

// Frame is the JSON envelope exchanged with the broker endpoint, in the
// usual broker style: a CONNECT handshake carrying auth headers, SUBSCRIBE
// and SEND with a destination, MESSAGE for inbound deliveries.
type Frame struct {
	Type        string            `json:"type"`
	Destination string            `json:"destination,omitempty"`
	Headers     map[string]string `json:"headers,omitempty"`
	Body        json.RawMessage   `json:"body,omitempty"`
}

const (
	FrameConnect   = "CONNECT"
	FrameSubscribe = "SUBSCRIBE"
	FrameSend      = "SEND"
	FrameMessage   = "MESSAGE"
)

// Message is an inbound delivery handed to subscribers.
type Message struct {
	Destination string
	Headers     map[string]string
	Body        json.RawMessage
}
