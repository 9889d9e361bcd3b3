// Package integration conecta cuentas de usuario con proveedores OAuth externos.
package integration

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/lithrlnd12/keyhubcentral/internal/domain"
	"github.com/lithrlnd12/keyhubcentral/internal/domain/entity"
	"github.com/lithrlnd12/keyhubcentral/internal/domain/repository"
	"github.com/lithrlnd12/keyhubcentral/pkg/signature"
)

// CalendarEventsScope permiso solicitado a Google.
const CalendarEventsScope = "https://www.googleapis.com/auth/calendar.events"

// CalendarConfig credenciales del cliente OAuth y firma del state.
type CalendarConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	StateSecret  string
	StateTTL     time.Duration
	// Endpoint vacío usa google.Endpoint.
	Endpoint oauth2.Endpoint
}

// CalendarUseCase flujo de autorización de Google Calendar.
type CalendarUseCase struct {
	oauth  *oauth2.Config
	cfg    CalendarConfig
	tokens repository.IntegrationTokenRepository
	now    func() time.Time
}

// NewCalendarUseCase construye el caso de uso.
func NewCalendarUseCase(cfg CalendarConfig, tokens repository.IntegrationTokenRepository) *CalendarUseCase {
	endpoint := cfg.Endpoint
	if endpoint.AuthURL == "" {
		endpoint = google.Endpoint
	}
	return &CalendarUseCase{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       []string{CalendarEventsScope},
			Endpoint:     endpoint,
		},
		cfg:    cfg,
		tokens: tokens,
		now:    time.Now,
	}
}

// Configured false si falta el client ID o el secreto del state.
func (uc *CalendarUseCase) Configured() bool {
	return uc.cfg.ClientID != "" && uc.cfg.StateSecret != ""
}

// AuthURL URL de consentimiento con un state firmado que identifica al usuario.
func (uc *CalendarUseCase) AuthURL(userID string) (string, error) {
	if userID == "" {
		return "", domain.ErrUnauthorized
	}
	if !uc.Configured() {
		return "", fmt.Errorf("integration: google calendar no configurado")
	}
	state, err := signature.EncodeState(signature.State{
		UserID:   userID,
		Provider: entity.ProviderGoogleCalendar,
		Nonce:    uuid.New().String(),
		IssuedAt: uc.now().Unix(),
	}, uc.cfg.StateSecret)
	if err != nil {
		return "", err
	}
	return uc.oauth.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce), nil
}

// Callback valida el state, intercambia el código y guarda el token del usuario.
// State inválido o expirado → domain.ErrUnauthorized.
func (uc *CalendarUseCase) Callback(ctx context.Context, state, code string) (string, error) {
	st, err := signature.DecodeState(state, uc.cfg.StateSecret, uc.cfg.StateTTL, uc.now())
	if err != nil {
		if errors.Is(err, signature.ErrExpiredState) {
			return "", fmt.Errorf("%w: state expirado", domain.ErrUnauthorized)
		}
		return "", fmt.Errorf("%w: state inválido", domain.ErrUnauthorized)
	}
	if st.Provider != entity.ProviderGoogleCalendar {
		return "", fmt.Errorf("%w: proveedor %q", domain.ErrUnauthorized, st.Provider)
	}
	if code == "" {
		return "", fmt.Errorf("%w: code requerido", domain.ErrInvalidInput)
	}
	tok, err := uc.oauth.Exchange(ctx, code)
	if err != nil {
		return "", fmt.Errorf("integration: intercambio de código: %w", err)
	}
	if err := uc.tokens.Save(ctx, &entity.IntegrationToken{
		UserID:       st.UserID,
		Provider:     entity.ProviderGoogleCalendar,
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		TokenType:    tok.TokenType,
		Expiry:       tok.Expiry,
		UpdatedAt:    uc.now(),
	}); err != nil {
		return "", fmt.Errorf("integration: guardar token: %w", err)
	}
	return st.UserID, nil
}
