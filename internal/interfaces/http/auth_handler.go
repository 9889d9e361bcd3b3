package http

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/lithrlnd12/keyhubcentral/internal/application/auth"
	"github.com/lithrlnd12/keyhubcentral/internal/application/dto"
	"github.com/lithrlnd12/keyhubcentral/internal/domain"
)

// AuthHandler expone /api/auth. Una cuenta registrada queda pending (rol y estado)
// y no recibe token hasta que un admin la active.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

var errBadCredentials = dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "email o password incorrectos"}

// authFailures traduce los errores del flujo de cuentas; el resto pasa por writeError.
var authFailures = []struct {
	target error
	status int
	body   dto.ErrorResponse
}{
	{domain.ErrEmailAlreadyExists, fiber.StatusConflict, dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "ya hay una cuenta KeyHub con ese email"}},
	{domain.ErrInvalidInput, fiber.StatusBadRequest, dto.ErrorResponse{Code: "VALIDATION", Message: fmt.Sprintf("email requerido y password de al menos %d caracteres", auth.MinPasswordLen)}},
	{domain.ErrUserNotFound, fiber.StatusUnauthorized, errBadCredentials},
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, errBadCredentials},
	{domain.ErrForbidden, fiber.StatusForbidden, dto.ErrorResponse{Code: "INACTIVE_ACCOUNT", Message: "la cuenta espera aprobación o fue desactivada"}},
}

func writeAuthError(c *fiber.Ctx, err error) error {
	for _, f := range authFailures {
		if errors.Is(err, f.target) {
			return c.Status(f.status).JSON(f.body)
		}
	}
	return writeError(c, err)
}

// bindCredentials parsea el body en dst y exige email y password no vacíos.
func bindCredentials(c *fiber.Ctx, dst any, email, password *string) *dto.ErrorResponse {
	if err := c.BodyParser(dst); err != nil {
		return &dto.ErrorResponse{Code: "INVALID_BODY", Message: "se esperaba JSON con email y password"}
	}
	if strings.TrimSpace(*email) == "" || *password == "" {
		return &dto.ErrorResponse{Code: "VALIDATION", Message: "email y password son requeridos"}
	}
	return nil
}

// Register godoc
// @Summary      Solicitar cuenta
// @Description  Crea la cuenta con rol y estado pending. Un admin asigna el rol definitivo.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "email, password, name"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if bad := bindCredentials(c, &in, &in.Email, &in.Password); bad != nil {
		return c.Status(fiber.StatusBadRequest).JSON(bad)
	}
	user, err := h.uc.RegisterUser(c.Context(), in)
	if err != nil {
		return writeAuthError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// Login godoc
// @Summary      Obtener token
// @Description  Solo cuentas activas. El JWT lleva rol, estado y partner_id.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if bad := bindCredentials(c, &in, &in.Email, &in.Password); bad != nil {
		return c.Status(fiber.StatusBadRequest).JSON(bad)
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return writeAuthError(c, err)
	}
	return c.JSON(out)
}
