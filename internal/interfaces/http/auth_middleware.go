package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/lithrlnd12/keyhubcentral/internal/application/dto"
	"github.com/lithrlnd12/keyhubcentral/internal/domain/entity"
	"github.com/lithrlnd12/keyhubcentral/internal/domain/policy"
	"github.com/lithrlnd12/keyhubcentral/pkg/jwt"
)

// Locals keys que deja AuthMiddleware en Fiber.
const (
	LocalUserID    = "user_id"
	LocalRole      = "role"
	LocalStatus    = "status"
	LocalPartnerID = "partner_id"
)

// AuthMiddleware valida el Bearer Token JWT y deja UserID, rol y estado en c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalRole, claims.Role)
		c.Locals(LocalStatus, claims.Status)
		c.Locals(LocalPartnerID, claims.PartnerID)
		return c.Next()
	}
}

// RequireRole deja pasar solo a los roles indicados. Debe ir después de AuthMiddleware.
//   - 401 MISSING_ROLE si el token no trae rol.
//   - 403 INACTIVE_ACCOUNT si la cuenta no está activa.
//   - 403 FORBIDDEN si el rol no está en roles (o no es un rol conocido).
func RequireRole(roles ...entity.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "el token no contiene rol"})
		}
		if GetStatus(c) != entity.UserStatusActive {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "INACTIVE_ACCOUNT", Message: "la cuenta no está activa"})
		}
		if !policy.HasRole(role, roles...) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol sin acceso a este recurso"})
		}
		return c.Next()
	}
}

// RequirePermission resuelve perm con policy.Allows. Una cuenta no activa recibe
// 403 INACTIVE_ACCOUNT aunque su rol tenga el permiso.
func RequirePermission(perm policy.Permission) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "el token no contiene rol"})
		}
		if GetStatus(c) != entity.UserStatusActive {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "INACTIVE_ACCOUNT", Message: "la cuenta no está activa"})
		}
		if !policy.Allows(role, perm) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "permiso requerido: " + string(perm)})
		}
		return c.Next()
	}
}

func localString(c *fiber.Ctx, key string) string {
	s, _ := c.Locals(key).(string)
	return s
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string { return localString(c, LocalUserID) }

// GetRole rol del token; sin validar contra la enumeración.
func GetRole(c *fiber.Ctx) entity.Role { return entity.Role(localString(c, LocalRole)) }

// GetStatus estado de la cuenta según el token.
func GetStatus(c *fiber.Ctx) entity.UserStatus { return entity.UserStatus(localString(c, LocalStatus)) }

// GetPartnerID solo presente para el rol partner.
func GetPartnerID(c *fiber.Ctx) string { return localString(c, LocalPartnerID) }
