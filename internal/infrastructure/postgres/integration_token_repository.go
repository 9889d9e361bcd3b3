package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/lithrlnd12/keyhubcentral/internal/domain/entity"
	"github.com/lithrlnd12/keyhubcentral/internal/domain/repository"
)

var _ repository.IntegrationTokenRepository = (*IntegrationTokenRepo)(nil)

// IntegrationTokenRepo tokens OAuth; PK (user_id, provider).
type IntegrationTokenRepo struct {
	q Querier
}

// NewIntegrationTokenRepository construye el adaptador.
func NewIntegrationTokenRepository(q Querier) *IntegrationTokenRepo {
	return &IntegrationTokenRepo{q: q}
}

// Save inserta o reemplaza el token. Un refresh_token vacío conserva el anterior
// (Google solo lo envía en el primer consentimiento).
func (r *IntegrationTokenRepo) Save(ctx context.Context, tok *entity.IntegrationToken) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO integration_tokens (user_id, provider, access_token, refresh_token, token_type, expiry, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id, provider) DO UPDATE SET
			access_token  = EXCLUDED.access_token,
			refresh_token = COALESCE(EXCLUDED.refresh_token, integration_tokens.refresh_token),
			token_type    = EXCLUDED.token_type,
			expiry        = EXCLUDED.expiry,
			updated_at    = EXCLUDED.updated_at`,
		tok.UserID, tok.Provider, tok.AccessToken, nullIfEmpty(tok.RefreshToken), tok.TokenType, tok.Expiry, tok.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save integration token: %w", err)
	}
	return nil
}

// Get (nil, nil) si el usuario no ha conectado el proveedor.
func (r *IntegrationTokenRepo) Get(ctx context.Context, userID, provider string) (*entity.IntegrationToken, error) {
	var (
		tok     entity.IntegrationToken
		refresh *string
	)
	err := r.q.QueryRow(ctx, `
		SELECT user_id, provider, access_token, refresh_token, token_type, expiry, updated_at
		FROM integration_tokens WHERE user_id = $1 AND provider = $2`, userID, provider).Scan(
		&tok.UserID, &tok.Provider, &tok.AccessToken, &refresh, &tok.TokenType, &tok.Expiry, &tok.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get integration token: %w", err)
	}
	tok.RefreshToken = derefString(refresh)
	return &tok, nil
}
