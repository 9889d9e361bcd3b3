package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/lithrlnd12/keyhubcentral/internal/domain"
	"github.com/lithrlnd12/keyhubcentral/internal/domain/entity"
	"github.com/lithrlnd12/keyhubcentral/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persiste la factura. Número repetido → domain.ErrDuplicate (UNIQUE(number)).
func (r *InvoiceRepo) Create(ctx context.Context, inv *entity.Invoice) error {
	if inv.ID == "" {
		inv.ID = uuid.New().String()
	}
	query := `
		INSERT INTO invoices (id, number, from_entity, to_entity, total, status, due_date, sent_at, paid_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		inv.ID, inv.Number, inv.FromEntity, inv.ToEntity, inv.Total, string(inv.Status),
		inv.DueDate, inv.SentAt, inv.PaidAt, inv.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: factura %s", domain.ErrDuplicate, inv.Number)
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// List todas las facturas, más recientes primero.
func (r *InvoiceRepo) List(ctx context.Context) ([]entity.Invoice, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, number, from_entity, to_entity, total, status, due_date, sent_at, paid_at, created_at
		FROM invoices ORDER BY created_at DESC, number DESC`)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	list, err := collect(rows, func(row pgxScanner) (entity.Invoice, error) {
		var (
			inv    entity.Invoice
			status string
		)
		err := row.Scan(&inv.ID, &inv.Number, &inv.FromEntity, &inv.ToEntity, &inv.Total, &status,
			&inv.DueDate, &inv.SentAt, &inv.PaidAt, &inv.CreatedAt)
		inv.Status = entity.InvoiceStatus(status)
		return inv, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan invoice: %w", err)
	}
	return list, nil
}

// LastNumber mayor número emitido para prefix-year. El consecutivo tiene ancho fijo
// hasta 9999; el orden por longitud cubre los que lo exceden.
func (r *InvoiceRepo) LastNumber(ctx context.Context, prefix string, year int) (string, error) {
	var number string
	err := r.q.QueryRow(ctx, `
		SELECT number FROM invoices
		WHERE number LIKE $1 ESCAPE '\'
		ORDER BY length(number) DESC, number DESC
		LIMIT 1`, escapeLike(fmt.Sprintf("%s-%d-", prefix, year))+"%").Scan(&number)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("last invoice number: %w", err)
	}
	return number, nil
}
