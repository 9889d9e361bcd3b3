package repository

import (
	"context"

	"github.com/lithrlnd12/keyhubcentral/internal/domain/entity"
)

// ContractorRepository persistencia de contratistas.
type ContractorRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Contractor, error)
	GetByUserID(ctx context.Context, userID string) (*entity.Contractor, error)
	List(ctx context.Context, limit, offset int) ([]entity.Contractor, error)
	UpdateRating(ctx context.Context, id string, r entity.Rating) error
}
