package repository

import (
	"context"

	"github.com/lithrlnd12/keyhubcentral/internal/domain/entity"
)

// IntegrationTokenRepository credenciales OAuth por usuario y proveedor.
type IntegrationTokenRepository interface {
	Save(ctx context.Context, tok *entity.IntegrationToken) error
	Get(ctx context.Context, userID, provider string) (*entity.IntegrationToken, error)
}
