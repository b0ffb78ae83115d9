package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/suminitec/suministros-api/internal/application/dto"
	"github.com/suminitec/suministros-api/internal/application/reservas"
)

// CarritoHandler carrito explícito: el cliente envía su carrito en cada
// petición y recibe el actualizado. El servidor no guarda estado de sesión.
type CarritoHandler struct {
	uc *reservas.CarritoUseCase
}

// NewCarritoHandler construye el handler.
func NewCarritoHandler(uc *reservas.CarritoUseCase) *CarritoHandler {
	return &CarritoHandler{uc: uc}
}

// Agregar suma unidades de un producto al carrito recibido.
func (h *CarritoHandler) Agregar(c *fiber.Ctx) error {
	var in dto.AgregarCarritoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	carrito, err := h.uc.Agregar(c.UserContext(), in.Carrito, in.ProductoID, in.Cantidad)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(fiber.Map{"carrito": carrito})
}

// Quitar elimina la línea de un producto del carrito recibido.
func (h *CarritoHandler) Quitar(c *fiber.Ctx) error {
	var in dto.AgregarCarritoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	return c.JSON(fiber.Map{"carrito": h.uc.Quitar(in.Carrito, in.ProductoID)})
}

// Vaciar devuelve un carrito sin líneas.
func (h *CarritoHandler) Vaciar(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"carrito": h.uc.Vaciar()})
}

// Ver valora el carrito a precio de catálogo.
func (h *CarritoHandler) Ver(c *fiber.Ctx) error {
	var in dto.AgregarCarritoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Ver(c.UserContext(), in.Carrito)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Confirmar materializa el carrito como reservas pendientes, todo o nada.
func (h *CarritoHandler) Confirmar(c *fiber.Ctx) error {
	var in dto.AgregarCarritoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	pedidos, err := h.uc.Confirmar(c.UserContext(), solicitante(c), in.Carrito)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toPedidoResponses(pedidos))
}
