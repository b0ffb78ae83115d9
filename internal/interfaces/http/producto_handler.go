package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/suminitec/suministros-api/internal/application/dto"
	"github.com/suminitec/suministros-api/internal/application/usecase"
)

// ProductoHandler catálogo e inventario. El CRUD es de admin; el catálogo y la
// disponibilidad los consulta cualquier usuario autenticado.
type ProductoHandler struct {
	uc *usecase.ProductoUseCase
}

// NewProductoHandler construye el handler.
func NewProductoHandler(uc *usecase.ProductoUseCase) *ProductoHandler {
	return &ProductoHandler{uc: uc}
}

// Create alta de producto con registro de stock inicial como compra.
func (h *ProductoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Crear(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID obtiene un producto.
func (h *ProductoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(out)
}

// Update edición completa de un producto.
func (h *ProductoHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Actualizar(c.Params("id"), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina un producto.
func (h *ProductoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Eliminar(c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Inventario vista de admin: todos los productos con nivel de ocupación y alerta.
func (h *ProductoHandler) Inventario(c *fiber.Ctx) error {
	out, err := h.uc.ListarInventario()
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Catalogo vista de cliente: solo productos con existencias.
func (h *ProductoHandler) Catalogo(c *fiber.Ctx) error {
	out, err := h.uc.ListarCatalogo()
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Disponible stock vendible efectivo de un producto (existencias menos reservas pendientes).
func (h *ProductoHandler) Disponible(c *fiber.Ctx) error {
	disponible, err := h.uc.DisponibleParaReserva(c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(fiber.Map{"producto_id": c.Params("id"), "disponible": disponible})
}
