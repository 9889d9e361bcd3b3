// Package webhook procesa webhooks entrantes de proveedores externos.
package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lithrlnd12/keyhubcentral/internal/application/dto"
	"github.com/lithrlnd12/keyhubcentral/internal/domain"
	"github.com/lithrlnd12/keyhubcentral/internal/domain/entity"
	"github.com/lithrlnd12/keyhubcentral/internal/domain/repository"
)

// EventCallCompleted único evento que genera una llamada entrante; el resto se ignora.
const EventCallCompleted = "call.completed"

// SignatureVerifier lo implementa *signature.Verifier.
type SignatureVerifier interface {
	Verify(payload []byte, signature string) bool
}

// VoiceWebhookUseCase verifica y registra las llamadas reportadas por el proveedor de voz.
type VoiceWebhookUseCase struct {
	verifier SignatureVerifier
	calls    repository.InboundCallRepository
	log      zerolog.Logger
	now      func() time.Time
}

// NewVoiceWebhookUseCase construye el caso de uso.
func NewVoiceWebhookUseCase(verifier SignatureVerifier, calls repository.InboundCallRepository, log zerolog.Logger) *VoiceWebhookUseCase {
	return &VoiceWebhookUseCase{
		verifier: verifier,
		calls:    calls,
		log:      log.With().Str("component", "voice_webhook").Logger(),
		now:      time.Now,
	}
}

// Receive verifica la firma sobre el cuerpo crudo antes de decodificarlo.
// Firma inválida → domain.ErrInvalidSignature; cuerpo inválido → domain.ErrInvalidInput.
// Reenvíos del mismo call_id no duplican la llamada (Created=false).
func (uc *VoiceWebhookUseCase) Receive(ctx context.Context, body []byte, sig string) (*dto.WebhookAck, error) {
	if !uc.verifier.Verify(body, sig) {
		return nil, domain.ErrInvalidSignature
	}
	var p dto.VoiceCallPayload
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("%w: json: %v", domain.ErrInvalidInput, err)
	}
	if p.Event != EventCallCompleted {
		uc.log.Debug().Str("event", p.Event).Msg("evento ignorado")
		return &dto.WebhookAck{Received: true}, nil
	}
	if strings.TrimSpace(p.CallID) == "" {
		return nil, fmt.Errorf("%w: call_id requerido", domain.ErrInvalidInput)
	}
	receivedAt := p.StartedAt
	if receivedAt.IsZero() {
		receivedAt = uc.now()
	}
	call := &entity.InboundCall{
		ID:              uuid.New().String(),
		VendorCallID:    p.CallID,
		CallerPhone:     p.From,
		CallerName:      p.CallerName,
		Summary:         p.Summary,
		Status:          entity.CallStatusNew,
		DurationSeconds: p.DurationSeconds,
		ReceivedAt:      receivedAt,
	}
	created, err := uc.calls.Upsert(ctx, call)
	if err != nil {
		return nil, fmt.Errorf("webhook: guardar llamada: %w", err)
	}
	uc.log.Info().Str("call_id", p.CallID).Bool("created", created).Msg("llamada registrada")
	return &dto.WebhookAck{Received: true, CallID: p.CallID, Created: created}, nil
}
