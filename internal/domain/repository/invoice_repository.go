package repository

import (
	"context"

	"github.com/lithrlnd12/keyhubcentral/internal/domain/entity"
)

// InvoiceRepository persistencia de facturas.
type InvoiceRepository interface {
	Create(ctx context.Context, inv *entity.Invoice) error
	List(ctx context.Context) ([]entity.Invoice, error)
	// LastNumber último número emitido con el prefijo y año dados; "" si no hay.
	LastNumber(ctx context.Context, prefix string, year int) (string, error)
}
