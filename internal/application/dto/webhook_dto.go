package dto

import "time"

// VoiceCallPayload cuerpo del webhook del proveedor de voz.
type VoiceCallPayload struct {
	Event           string    `json:"event"` // call.completed
	CallID          string    `json:"call_id"`
	From            string    `json:"from"`
	CallerName      string    `json:"caller_name"`
	Summary         string    `json:"summary"`
	DurationSeconds int       `json:"duration_seconds"`
	StartedAt       time.Time `json:"started_at"`
}

// WebhookAck respuesta al proveedor.
type WebhookAck struct {
	Received bool   `json:"received"`
	CallID   string `json:"call_id,omitempty"`
	Created  bool   `json:"created"`
}
