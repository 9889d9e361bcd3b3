package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lithrlnd12/keyhubcentral/internal/application/dto"
	"github.com/lithrlnd12/keyhubcentral/internal/application/integration"
)

// IntegrationHandler conexión de cuentas externas (Google Calendar).
type IntegrationHandler struct {
	calendar *integration.CalendarUseCase
}

// NewIntegrationHandler construye el handler.
func NewIntegrationHandler(calendar *integration.CalendarUseCase) *IntegrationHandler {
	return &IntegrationHandler{calendar: calendar}
}

// ConnectCalendar godoc
// @Summary      Iniciar conexión con Google Calendar
// @Description  Devuelve la URL de consentimiento; con redirect=true responde 302 hacia ella.
// @Tags         integrations
// @Produce      json
// @Security     BearerAuth
// @Param        redirect  query  bool  false  "redirigir en lugar de devolver JSON"
// @Success      200  {object}  map[string]string
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/integrations/google-calendar/connect [get]
func (h *IntegrationHandler) ConnectCalendar(c *fiber.Ctx) error {
	if !h.calendar.Configured() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "NOT_CONFIGURED", Message: "integración con Google Calendar no configurada"})
	}
	url, err := h.calendar.AuthURL(GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	if c.QueryBool("redirect") {
		return c.Redirect(url, fiber.StatusFound)
	}
	return c.JSON(fiber.Map{"url": url})
}

// CalendarCallback godoc
// @Summary      Callback OAuth de Google Calendar
// @Description  Público: el usuario se identifica por el state firmado.
// @Tags         integrations
// @Produce      json
// @Param        state  query  string  true  "state firmado"
// @Param        code   query  string  true  "código de autorización"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/integrations/google-calendar/callback [get]
func (h *IntegrationHandler) CalendarCallback(c *fiber.Ctx) error {
	if e := c.Query("error"); e != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "OAUTH_DENIED", Message: e})
	}
	userID, err := h.calendar.Callback(c.Context(), c.Query("state"), c.Query("code"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"connected": true, "user_id": userID, "provider": "google_calendar"})
}
