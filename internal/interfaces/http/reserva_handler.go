package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/suminitec/suministros-api/internal/application/dto"
	"github.com/suminitec/suministros-api/internal/application/reservas"
	"github.com/suminitec/suministros-api/internal/domain/entity"
	"github.com/suminitec/suministros-api/internal/domain/repository"
)

// ReciboGenerator genera el justificante de una reserva en PDF.
type ReciboGenerator interface {
	GenerarRecibo(ctx context.Context, pedido *entity.Pedido, producto *entity.Producto, usuario *entity.Usuario) ([]byte, error)
}

// ReservaHandler ciclo de vida de las reservas: alta, entrega, cancelación,
// reposición de stock y justificante en PDF.
type ReservaHandler struct {
	uc      *reservas.ReservaUseCase
	recibos ReciboGenerator
}

// NewReservaHandler construye el handler.
func NewReservaHandler(uc *reservas.ReservaUseCase, recibos ReciboGenerator) *ReservaHandler {
	return &ReservaHandler{uc: uc, recibos: recibos}
}

// CrearVenta reserva unidades de un producto para el solicitante (o para el
// cliente indicado, si quien reserva es admin).
func (h *ReservaHandler) CrearVenta(c *fiber.Ctx) error {
	var in dto.CrearVentaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	pedido, err := h.uc.CrearVenta(c.UserContext(), solicitante(c), reservas.CrearVentaInput{
		ProductoID: c.Params("id"),
		Cantidad:   in.Cantidad,
		Descuento:  in.Descuento,
		IVA:        in.IVA,
		ClienteID:  in.ClienteID,
	})
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toPedidoResponse(pedido))
}

// Confirmar marca una reserva como entregada y cobrada (solo admin).
func (h *ReservaHandler) Confirmar(c *fiber.Ctx) error {
	if err := h.uc.ConfirmarEntrega(c.UserContext(), solicitante(c), c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Cancelar anula una reserva y devuelve su stock.
func (h *ReservaHandler) Cancelar(c *fiber.Ctx) error {
	if err := h.uc.Cancelar(c.UserContext(), solicitante(c), c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Reabastecer repone stock de un producto y registra la compra (solo admin).
func (h *ReservaHandler) Reabastecer(c *fiber.Ctx) error {
	var in dto.RestockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	pedido, err := h.uc.Reabastecer(c.UserContext(), solicitante(c), c.Params("id"), in.Cantidad)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toPedidoResponse(pedido))
}

// GetByID obtiene un pedido (dueño o admin).
func (h *ReservaHandler) GetByID(c *fiber.Ctx) error {
	pedido, err := h.uc.ObtenerPedido(c.UserContext(), solicitante(c), c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(toPedidoResponse(pedido))
}

// ListMias reservas del propio usuario, con filtro opcional por producto.
func (h *ReservaHandler) ListMias(c *fiber.Ctx) error {
	pedidos, err := h.uc.ListarReservasUsuario(c.UserContext(), GetUserID(c), c.Query("producto_id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(toPedidoResponses(pedidos))
}

// List panel de administración con filtros por cliente, producto y estado.
func (h *ReservaHandler) List(c *fiber.Ctx) error {
	pedidos, err := h.uc.ListarReservas(c.UserContext(), solicitante(c), repository.FiltroReservas{
		UsuarioID:  c.Query("usuario_id"),
		ProductoID: c.Query("producto_id"),
		Estado:     c.Query("estado"),
	})
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(toPedidoResponses(pedidos))
}

// Recibo descarga el justificante de la reserva en PDF.
func (h *ReservaHandler) Recibo(c *fiber.Ctx) error {
	pedido, producto, usuario, err := h.uc.DatosRecibo(c.UserContext(), solicitante(c), c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	pdfBytes, err := h.recibos.GenerarRecibo(c.UserContext(), pedido, producto, usuario)
	if err != nil {
		return responderError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="reserva-`+pedido.ID+`.pdf"`)
	return c.Send(pdfBytes)
}

func toPedidoResponse(p *entity.Pedido) dto.PedidoResponse {
	return dto.PedidoResponse{
		ID:                p.ID,
		Fecha:             p.Fecha,
		Cantidad:          p.Cantidad,
		PrecioUnidadCoste: p.PrecioUnidadCoste,
		PrecioUnidadVenta: p.PrecioUnidadVenta,
		TotalVenta:        p.TotalVenta,
		DescuentoAplicado: p.DescuentoAplicado,
		IVAAplicado:       p.IVAAplicado,
		Tipo:              p.Tipo,
		Estado:            p.Estado,
		UsuarioID:         p.UsuarioID,
		ProductoID:        p.ProductoID,
	}
}

func toPedidoResponses(pedidos []*entity.Pedido) []dto.PedidoResponse {
	out := make([]dto.PedidoResponse, 0, len(pedidos))
	for _, p := range pedidos {
		out = append(out, toPedidoResponse(p))
	}
	return out
}
