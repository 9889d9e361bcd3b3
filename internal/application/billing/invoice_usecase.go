package billing

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lithrlnd12/keyhubcentral/internal/application/dto"
	"github.com/lithrlnd12/keyhubcentral/internal/domain"
	"github.com/lithrlnd12/keyhubcentral/internal/domain/entity"
	"github.com/lithrlnd12/keyhubcentral/internal/domain/invoicing"
	"github.com/lithrlnd12/keyhubcentral/internal/domain/repository"
)

// maxNumberAttempts reintentos cuando otro proceso tomó el mismo consecutivo (unique en number).
const maxNumberAttempts = 3

// InvoiceUseCase crea facturas en borrador con numeración consecutiva por prefijo y año.
type InvoiceUseCase struct {
	repo repository.InvoiceRepository
	now  func() time.Time
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(repo repository.InvoiceRepository) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo, now: time.Now}
}

// Create asigna el siguiente número y persiste la factura en estado draft.
func (uc *InvoiceUseCase) Create(ctx context.Context, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if strings.TrimSpace(in.FromEntity) == "" || strings.TrimSpace(in.ToEntity) == "" {
		return nil, fmt.Errorf("%w: from_entity y to_entity son obligatorios", domain.ErrInvalidInput)
	}
	if in.Total.IsNegative() {
		return nil, fmt.Errorf("%w: total negativo", domain.ErrInvalidInput)
	}
	prefix := strings.ToUpper(strings.TrimSpace(in.Prefix))
	if prefix == "" {
		prefix = invoicing.DefaultPrefix
	}
	now := uc.now()

	for attempt := 1; ; attempt++ {
		last, err := uc.repo.LastNumber(ctx, prefix, now.Year())
		if err != nil {
			return nil, fmt.Errorf("billing: último consecutivo: %w", err)
		}
		number, err := invoicing.NextNumber(prefix, now.Year(), last)
		if err != nil {
			return nil, err
		}
		inv := &entity.Invoice{
			ID:         uuid.New().String(),
			Number:     number,
			FromEntity: in.FromEntity,
			ToEntity:   in.ToEntity,
			Total:      in.Total,
			Status:     entity.InvoiceStatusDraft,
			DueDate:    in.DueDate,
			CreatedAt:  now,
		}
		err = uc.repo.Create(ctx, inv)
		if err == nil {
			return toInvoiceResponse(inv), nil
		}
		if !errors.Is(err, domain.ErrDuplicate) || attempt >= maxNumberAttempts {
			return nil, fmt.Errorf("billing: crear factura: %w", err)
		}
	}
}

func toInvoiceResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	return &dto.InvoiceResponse{
		ID:         inv.ID,
		Number:     inv.Number,
		FromEntity: inv.FromEntity,
		ToEntity:   inv.ToEntity,
		Total:      inv.Total,
		Status:     string(inv.Status),
		DueDate:    inv.DueDate,
		CreatedAt:  inv.CreatedAt,
	}
}
