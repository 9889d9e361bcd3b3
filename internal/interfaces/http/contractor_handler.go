package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lithrlnd12/keyhubcentral/internal/application/dto"
	"github.com/lithrlnd12/keyhubcentral/internal/application/usecase"
	"github.com/lithrlnd12/keyhubcentral/internal/domain/policy"
)

// ContractorHandler consulta y calificación de contratistas.
type ContractorHandler struct {
	uc *usecase.ContractorUseCase
}

// NewContractorHandler construye el handler.
func NewContractorHandler(uc *usecase.ContractorUseCase) *ContractorHandler {
	return &ContractorHandler{uc: uc}
}

// List godoc
// @Summary      Listar contratistas
// @Tags         contractors
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query  int  false  "máximo 100"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {array}   dto.ContractorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/contractors [get]
func (h *ContractorHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	list, err := h.uc.List(c.Context(), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// GetByID godoc
// @Summary      Obtener contratista
// @Description  Owner, admin y pm ven cualquiera; el resto solo su propio perfil.
// @Tags         contractors
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del contratista"
// @Success      200  {object}  dto.ContractorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/contractors/{id} [get]
func (h *ContractorHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	if !policy.CanViewAllContractors(GetRole(c)) && out.UserID != GetUserID(c) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo puede ver su propio perfil"})
	}
	return c.JSON(out)
}

// UpdateRating godoc
// @Summary      Actualizar calificación
// @Description  Actualización parcial: los campos omitidos conservan su valor. Cada valor en [0,5].
// @Tags         contractors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                   true  "ID del contratista"
// @Param        body  body  dto.UpdateRatingRequest  true  "customer, speed, warranty, internal"
// @Success      200  {object}  dto.ContractorResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/contractors/{id}/rating [patch]
func (h *ContractorHandler) UpdateRating(c *fiber.Ctx) error {
	var in dto.UpdateRatingRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateRating(c.Context(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
