package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/suminitec/suministros-api/internal/application/dto"
	"github.com/suminitec/suministros-api/internal/application/usecase"
)

// UsuarioHandler administración de cuentas (solo admin).
type UsuarioHandler struct {
	uc *usecase.UsuarioUseCase
}

// NewUsuarioHandler construye el handler.
func NewUsuarioHandler(uc *usecase.UsuarioUseCase) *UsuarioHandler {
	return &UsuarioHandler{uc: uc}
}

// List lista todas las cuentas.
func (h *UsuarioHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.Listar()
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// ListClientes lista los clientes activos (destinos de reserva).
func (h *UsuarioHandler) ListClientes(c *fiber.Ctx) error {
	out, err := h.uc.ListarClientesActivos()
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// ToggleEstado activa o desactiva una cuenta ajena.
func (h *UsuarioHandler) ToggleEstado(c *fiber.Ctx) error {
	out, err := h.uc.CambiarEstado(GetUserID(c), c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina una cuenta ajena.
func (h *UsuarioHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Eliminar(GetUserID(c), c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ResetPassword asigna una contraseña nueva a una cuenta ajena.
func (h *UsuarioHandler) ResetPassword(c *fiber.Ctx) error {
	var in dto.ResetPasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.ResetearPassword(GetUserID(c), c.Params("id"), in.NuevaPassword); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
