package ipc

import (
	"encoding/json"
	"fmt"

	"github.com/gorilla/websocket"
)

// Envelope is the wire format shared with the canvas front-end.
// Data is kept as RawMessage so handlers can defer deserialization to
// the concrete type.
type Envelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

func NewEnvelope(msgType string, data any) (Envelope, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return Envelope{}, fmt.Errorf("marshal data: %w", err)
	}
	return Envelope{Type: msgType, Data: raw}, nil
}

// maxMessageBytes guards against corrupted frames or runaway payloads.
const maxMessageBytes = 1 << 20

// ReadEnvelope reads a single JSON envelope from one websocket text frame.
func ReadEnvelope(conn *websocket.Conn) (Envelope, error) {
	conn.SetReadLimit(maxMessageBytes)
	_, payload, err := conn.ReadMessage()
	if err != nil {
		return Envelope{}, fmt.Errorf("read frame: %w", err)
	}
	var env Envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return Envelope{}, fmt.Errorf("unmarshal envelope: %w", err)
	}
	return env, nil
}

// WriteEnvelope writes one envelope as a single websocket text frame.
func WriteEnvelope(conn *websocket.Conn, env Envelope) error {
	payload, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}
	if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}
