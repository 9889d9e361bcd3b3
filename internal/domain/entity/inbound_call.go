package entity

import "time"

// Estados de una llamada entrante.
const (
	CallStatusNew       = "new"
	CallStatusReviewed  = "reviewed"
	CallStatusConverted = "converted"
	CallStatusClosed    = "closed"
)

// InboundCall llamada recibida a través del proveedor de voz (webhook).
type InboundCall struct {
	ID              string
	VendorCallID    string // id del proveedor; clave de idempotencia
	CallerPhone     string
	CallerName      string
	Summary         string
	Status          string
	DurationSeconds int
	ReceivedAt      time.Time
}
