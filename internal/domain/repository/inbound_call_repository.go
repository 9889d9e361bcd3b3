package repository

import (
	"context"

	"github.com/lithrlnd12/keyhubcentral/internal/domain/entity"
)

// InboundCallRepository persistencia de llamadas entrantes.
type InboundCallRepository interface {
	// Upsert inserta la llamada o, si VendorCallID ya existe, devuelve created=false sin modificarla.
	Upsert(ctx context.Context, call *entity.InboundCall) (created bool, err error)
	List(ctx context.Context) ([]entity.InboundCall, error)
}
