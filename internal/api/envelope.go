package api

import "encoding/json"

// Envelope es el sobre {success, data, message} de las rutas de administración.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
}

// DecodeEnvelope interpreta un cuerpo crudo como sobre de admin.
func DecodeEnvelope(raw json.RawMessage) (Envelope, error) {
	var env Envelope
	err := json.Unmarshal(raw, &env)
	return env, err
}

// DecodeInto vuelca un payload crudo en la estructura destino.
func DecodeInto(raw json.RawMessage, v any) error {
	return json.Unmarshal(raw, v)
}
