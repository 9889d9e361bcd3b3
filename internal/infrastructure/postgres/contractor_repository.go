package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/lithrlnd12/keyhubcentral/internal/domain"
	"github.com/lithrlnd12/keyhubcentral/internal/domain/entity"
	"github.com/lithrlnd12/keyhubcentral/internal/domain/repository"
)

var _ repository.ContractorRepository = (*ContractorRepo)(nil)

const contractorColumns = `
	id, user_id, business_name, trades,
	rating_customer, rating_speed, rating_warranty, rating_internal, rating_overall,
	status, service_radius, street, city, state, zip, lat, lng, created_at, updated_at`

// ContractorRepo contratistas sobre PostgreSQL. trades es text[].
type ContractorRepo struct {
	q Querier
}

// NewContractorRepository construye el adaptador.
func NewContractorRepository(q Querier) *ContractorRepo {
	return &ContractorRepo{q: q}
}

// GetByID (nil, nil) si no existe.
func (r *ContractorRepo) GetByID(ctx context.Context, id string) (*entity.Contractor, error) {
	return r.getOne(ctx, `SELECT `+contractorColumns+` FROM contractors WHERE id = $1`, id)
}

// GetByUserID perfil de contratista del usuario; (nil, nil) si no tiene.
func (r *ContractorRepo) GetByUserID(ctx context.Context, userID string) (*entity.Contractor, error) {
	return r.getOne(ctx, `SELECT `+contractorColumns+` FROM contractors WHERE user_id = $1`, userID)
}

// List ordenado por nombre comercial.
func (r *ContractorRepo) List(ctx context.Context, limit, offset int) ([]entity.Contractor, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+contractorColumns+` FROM contractors ORDER BY business_name, id LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list contractors: %w", err)
	}
	list, err := collect(rows, scanContractor)
	if err != nil {
		return nil, fmt.Errorf("scan contractor: %w", err)
	}
	return list, nil
}

// UpdateRating reemplaza las cinco columnas de calificación.
func (r *ContractorRepo) UpdateRating(ctx context.Context, id string, rt entity.Rating) error {
	query := `
		UPDATE contractors SET rating_customer = $2, rating_speed = $3, rating_warranty = $4,
			rating_internal = $5, rating_overall = $6, updated_at = $7
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, id, rt.Customer, rt.Speed, rt.Warranty, rt.Internal, rt.Overall, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("update contractor rating: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ContractorRepo) getOne(ctx context.Context, query string, arg any) (*entity.Contractor, error) {
	c, err := scanContractor(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contractor: %w", err)
	}
	return &c, nil
}

func scanContractor(row pgxScanner) (entity.Contractor, error) {
	var (
		c                        entity.Contractor
		street, city, state, zip *string
	)
	err := row.Scan(
		&c.ID, &c.UserID, &c.BusinessName, &c.Trades,
		&c.Rating.Customer, &c.Rating.Speed, &c.Rating.Warranty, &c.Rating.Internal, &c.Rating.Overall,
		&c.Status, &c.ServiceRadius, &street, &city, &state, &zip, &c.Address.Lat, &c.Address.Lng,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return entity.Contractor{}, err
	}
	c.Address.Street = derefString(street)
	c.Address.City = derefString(city)
	c.Address.State = derefString(state)
	c.Address.Zip = derefString(zip)
	return c, nil
}
