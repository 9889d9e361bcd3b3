package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lithrlnd12/keyhubcentral/internal/application/webhook"
)

// SignatureHeader cabecera con la firma HMAC-SHA256 (hex, "sha256=" opcional) del cuerpo.
const SignatureHeader = "X-Signature"

// WebhookHandler recibe eventos de proveedores externos.
type WebhookHandler struct {
	voice *webhook.VoiceWebhookUseCase
}

// NewWebhookHandler construye el handler.
func NewWebhookHandler(voice *webhook.VoiceWebhookUseCase) *WebhookHandler {
	return &WebhookHandler{voice: voice}
}

// Voice godoc
// @Summary      Webhook del proveedor de voz
// @Description  La firma se calcula sobre el cuerpo crudo. Reenvíos del mismo call_id son idempotentes.
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        X-Signature  header  string  true  "HMAC-SHA256 hex del cuerpo"
// @Success      200  {object}  dto.WebhookAck
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/webhooks/voice [post]
func (h *WebhookHandler) Voice(c *fiber.Ctx) error {
	// c.Body() se reutiliza al terminar el request; el caso de uso no lo retiene.
	ack, err := h.voice.Receive(c.Context(), c.Body(), c.Get(SignatureHeader))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(ack)
}
