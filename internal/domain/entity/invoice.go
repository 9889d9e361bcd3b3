package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus estado de una factura: draft → sent → paid, o overdue si vence sin pago.
type InvoiceStatus string

const (
	InvoiceStatusDraft   InvoiceStatus = "draft"
	InvoiceStatusSent    InvoiceStatus = "sent"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
)

// Invoice factura entre entidades del grupo (o hacia un cliente externo).
type Invoice struct {
	ID         string
	Number     string // ej. INV-2025-0001
	FromEntity string
	ToEntity   string
	Total      decimal.Decimal
	Status     InvoiceStatus
	DueDate    time.Time
	SentAt     *time.Time
	PaidAt     *time.Time
	CreatedAt  time.Time
}

// EffectiveStatus estado a mostrar: una factura enviada con DueDate vencida se reporta overdue.
func (i Invoice) EffectiveStatus(now time.Time) InvoiceStatus {
	if i.Status == InvoiceStatusSent && !i.DueDate.IsZero() && now.After(i.DueDate) {
		return InvoiceStatusOverdue
	}
	return i.Status
}
