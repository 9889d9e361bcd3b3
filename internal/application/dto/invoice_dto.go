package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest entrada para crear una factura en borrador.
type CreateInvoiceRequest struct {
	Prefix     string          `json:"prefix"`
	FromEntity string          `json:"from_entity"`
	ToEntity   string          `json:"to_entity"`
	Total      decimal.Decimal `json:"total"`
	DueDate    time.Time       `json:"due_date"`
}

// InvoiceResponse factura creada.
type InvoiceResponse struct {
	ID         string          `json:"id"`
	Number     string          `json:"number"`
	FromEntity string          `json:"from_entity"`
	ToEntity   string          `json:"to_entity"`
	Total      decimal.Decimal `json:"total"`
	Status     string          `json:"status"`
	DueDate    time.Time       `json:"due_date"`
	CreatedAt  time.Time       `json:"created_at"`
}
