package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lithrlnd12/keyhubcentral/internal/domain/entity"
	"github.com/lithrlnd12/keyhubcentral/internal/domain/repository"
)

var (
	_ repository.InboundCallRepository = (*InboundCallRepo)(nil)
	_ repository.PayoutRepository      = (*PayoutRepo)(nil)
)

// InboundCallRepo llamadas recibidas del proveedor de voz.
type InboundCallRepo struct {
	q Querier
}

// NewInboundCallRepository construye el adaptador.
func NewInboundCallRepository(q Querier) *InboundCallRepo {
	return &InboundCallRepo{q: q}
}

// Upsert inserta la llamada; si vendor_call_id ya existe no modifica nada y devuelve created=false.
func (r *InboundCallRepo) Upsert(ctx context.Context, call *entity.InboundCall) (bool, error) {
	if call.ID == "" {
		call.ID = uuid.New().String()
	}
	tag, err := r.q.Exec(ctx, `
		INSERT INTO inbound_calls (id, vendor_call_id, caller_phone, caller_name, summary, status, duration_seconds, received_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (vendor_call_id) DO NOTHING`,
		call.ID, call.VendorCallID, call.CallerPhone, nullIfEmpty(call.CallerName), nullIfEmpty(call.Summary),
		call.Status, call.DurationSeconds, call.ReceivedAt,
	)
	if err != nil {
		return false, fmt.Errorf("upsert inbound call: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// List llamadas, más recientes primero.
func (r *InboundCallRepo) List(ctx context.Context) ([]entity.InboundCall, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, vendor_call_id, caller_phone, caller_name, summary, status, duration_seconds, received_at
		FROM inbound_calls ORDER BY received_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list inbound calls: %w", err)
	}
	list, err := collect(rows, func(row pgxScanner) (entity.InboundCall, error) {
		var (
			c             entity.InboundCall
			name, summary *string
		)
		err := row.Scan(&c.ID, &c.VendorCallID, &c.CallerPhone, &name, &summary, &c.Status, &c.DurationSeconds, &c.ReceivedAt)
		c.CallerName = derefString(name)
		c.Summary = derefString(summary)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan inbound call: %w", err)
	}
	return list, nil
}

// PayoutRepo pagos a contratistas (solo lectura).
type PayoutRepo struct {
	q Querier
}

// NewPayoutRepository construye el adaptador.
func NewPayoutRepository(q Querier) *PayoutRepo {
	return &PayoutRepo{q: q}
}

// List todos los pagos.
func (r *PayoutRepo) List(ctx context.Context) ([]entity.Payout, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, contractor_id, amount, status, created_at
		FROM payouts ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list payouts: %w", err)
	}
	list, err := collect(rows, func(row pgxScanner) (entity.Payout, error) {
		var p entity.Payout
		err := row.Scan(&p.ID, &p.ContractorID, &p.Amount, &p.Status, &p.CreatedAt)
		return p, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan payout: %w", err)
	}
	return list, nil
}
