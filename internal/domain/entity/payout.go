package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un pago a contratista.
const (
	PayoutStatusPending    = "pending"
	PayoutStatusProcessing = "processing"
	PayoutStatusPaid       = "paid"
	PayoutStatusFailed     = "failed"
)

// Payout pago a un contratista por trabajos completados.
type Payout struct {
	ID           string
	ContractorID string
	Amount       decimal.Decimal
	Status       string
	CreatedAt    time.Time
}
