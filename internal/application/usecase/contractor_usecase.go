package usecase

import (
	"context"
	"fmt"

	"github.com/lithrlnd12/keyhubcentral/internal/application/dto"
	"github.com/lithrlnd12/keyhubcentral/internal/domain"
	"github.com/lithrlnd12/keyhubcentral/internal/domain/entity"
	"github.com/lithrlnd12/keyhubcentral/internal/domain/rating"
	"github.com/lithrlnd12/keyhubcentral/internal/domain/repository"
)

// ContractorUseCase consulta de contratistas y actualización de su calificación.
type ContractorUseCase struct {
	repo repository.ContractorRepository
}

// NewContractorUseCase construye el caso de uso.
func NewContractorUseCase(repo repository.ContractorRepository) *ContractorUseCase {
	return &ContractorUseCase{repo: repo}
}

// GetByID devuelve domain.ErrNotFound si no existe.
func (uc *ContractorUseCase) GetByID(ctx context.Context, id string) (*dto.ContractorResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return toContractorResponse(c)
}

// GetByUserID perfil de contratista del usuario autenticado.
func (uc *ContractorUseCase) GetByUserID(ctx context.Context, userID string) (*dto.ContractorResponse, error) {
	c, err := uc.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return toContractorResponse(c)
}

// List contratistas paginados.
func (uc *ContractorUseCase) List(ctx context.Context, page dto.PageRequest) ([]dto.ContractorResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ContractorResponse, 0, len(list))
	for i := range list {
		r, err := toContractorResponse(&list[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *r)
	}
	return out, nil
}

// UpdateRating aplica la actualización parcial y persiste la calificación resultante.
// Valores fuera de [0,5] devuelven *rating.ValidationError y no se persiste nada.
func (uc *ContractorUseCase) UpdateRating(ctx context.Context, id string, in dto.UpdateRatingRequest) (*dto.ContractorResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	next, err := rating.Update(c.Rating, rating.Partial{
		Customer: in.Customer,
		Speed:    in.Speed,
		Warranty: in.Warranty,
		Internal: in.Internal,
	})
	if err != nil {
		return nil, err
	}
	if err := uc.repo.UpdateRating(ctx, id, next); err != nil {
		return nil, fmt.Errorf("contractor: guardar calificación: %w", err)
	}
	c.Rating = next
	return toContractorResponse(c)
}

func toContractorResponse(c *entity.Contractor) (*dto.ContractorResponse, error) {
	tier, err := rating.GetTier(c.Rating.Overall)
	if err != nil {
		return nil, fmt.Errorf("contractor %s: %w", c.ID, err)
	}
	trades := c.Trades
	if trades == nil {
		trades = []string{}
	}
	return &dto.ContractorResponse{
		ID:            c.ID,
		UserID:        c.UserID,
		BusinessName:  c.BusinessName,
		Trades:        trades,
		Status:        c.Status,
		ServiceRadius: c.ServiceRadius,
		Address:       c.Address,
		Rating:        c.Rating,
		Tier:          string(tier),
		UpdatedAt:     c.UpdatedAt,
	}, nil
}
