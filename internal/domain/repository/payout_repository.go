package repository

import (
	"context"

	"github.com/lithrlnd12/keyhubcentral/internal/domain/entity"
)

// PayoutRepository lectura de pagos a contratistas.
type PayoutRepository interface {
	List(ctx context.Context) ([]entity.Payout, error)
}
