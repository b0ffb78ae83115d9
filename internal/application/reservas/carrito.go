package reservas

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/suminitec/suministros-api/internal/application/dto"
	"github.com/suminitec/suministros-api/internal/domain"
	"github.com/suminitec/suministros-api/internal/domain/entity"
	"github.com/suminitec/suministros-api/internal/domain/pricing"
	"github.com/suminitec/suministros-api/internal/domain/repository"
)

// CarritoUseCase opera sobre un carrito explícito por sesión (producto → cantidad).
// El carrito es una lista de deseos, no una reserva: no bloquea stock; cada
// alta valida contra el disponible real (stock menos reservas pendientes) y la
// confirmación revalida las existencias al materializar las ventas.
type CarritoUseCase struct {
	txRunner     TxRunner
	productoRepo repository.ProductoRepository
	pedidoRepo   repository.PedidoRepository
}

// NewCarritoUseCase construye el caso de uso del carrito.
func NewCarritoUseCase(
	txRunner TxRunner,
	productoRepo repository.ProductoRepository,
	pedidoRepo repository.PedidoRepository,
) *CarritoUseCase {
	return &CarritoUseCase{
		txRunner:     txRunner,
		productoRepo: productoRepo,
		pedidoRepo:   pedidoRepo,
	}
}

// Agregar suma unidades de un producto al carrito validando que el total
// solicitado (lo que ya hay en el carrito más lo nuevo) quepa en el stock
// disponible descontando las reservas pendientes de otros usuarios.
// Devuelve un carrito nuevo; el recibido no se muta.
func (uc *CarritoUseCase) Agregar(ctx context.Context, carrito dto.CarritoDTO, productoID string, cantidad int) (dto.CarritoDTO, error) {
	if cantidad <= 0 {
		return nil, domain.ErrCantidadInvalida
	}
	producto, err := uc.productoRepo.GetByID(productoID)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, domain.ErrNotFound
	}

	reservado, err := uc.pedidoRepo.SumPendientesByProducto(productoID)
	if err != nil {
		return nil, err
	}
	disponible := producto.CantidadActual - reservado

	nuevaCantidad := carrito[productoID] + cantidad
	if nuevaCantidad > disponible {
		return nil, domain.ErrInsufficientStock
	}

	resultado := clonarCarrito(carrito)
	resultado[productoID] = nuevaCantidad
	return resultado, nil
}

// Quitar elimina la línea de un producto. Quitar lo que no está no es un error.
func (uc *CarritoUseCase) Quitar(carrito dto.CarritoDTO, productoID string) dto.CarritoDTO {
	resultado := clonarCarrito(carrito)
	delete(resultado, productoID)
	return resultado
}

// Vaciar descarta todas las líneas.
func (uc *CarritoUseCase) Vaciar() dto.CarritoDTO {
	return dto.CarritoDTO{}
}

// Ver valora el carrito a precio de catálogo: una línea por producto con su
// subtotal y el total de la compra. Los productos que ya no existen se omiten.
func (uc *CarritoUseCase) Ver(ctx context.Context, carrito dto.CarritoDTO) (*dto.CarritoDetalleDTO, error) {
	detalle := &dto.CarritoDetalleDTO{Items: []dto.CarritoItemDTO{}, Total: decimal.Zero}
	if len(carrito) == 0 {
		return detalle, nil
	}

	ids := idsOrdenados(carrito)
	productos, err := uc.productoRepo.ListByIDs(ids)
	if err != nil {
		return nil, err
	}
	porID := make(map[string]*entity.Producto, len(productos))
	for _, p := range productos {
		porID[p.ID] = p
	}

	for _, id := range ids {
		producto, ok := porID[id]
		if !ok {
			continue
		}
		cantidad := carrito[id]
		subtotal := producto.PrecioVenta.Mul(decimal.NewFromInt(int64(cantidad))).Round(2)
		detalle.Items = append(detalle.Items, dto.CarritoItemDTO{
			ProductoID: producto.ID,
			Nombre:     producto.Nombre,
			Precio:     producto.PrecioVenta.Round(2),
			Cantidad:   cantidad,
			Subtotal:   subtotal,
		})
		detalle.Total = detalle.Total.Add(subtotal)
	}
	return detalle, nil
}

// Confirmar materializa cada línea como una venta pendiente a precio de
// catálogo (sin descuento ni IVA propios), revalidando el stock al confirmar:
// las líneas del carrito no eran reservas. Todo en una transacción; si una
// línea no tiene stock, ninguna se registra.
func (uc *CarritoUseCase) Confirmar(ctx context.Context, s Solicitante, carrito dto.CarritoDTO) ([]*entity.Pedido, error) {
	if len(carrito) == 0 {
		return nil, domain.ErrInvalidInput
	}

	// Orden estable de bloqueo de filas entre confirmaciones concurrentes.
	ids := idsOrdenados(carrito)

	var creados []*entity.Pedido
	err := uc.txRunner.Run(ctx, func(
		pedidoRepo repository.PedidoRepository,
		productoRepo repository.ProductoRepository,
	) error {
		ahora := time.Now().UTC()
		for _, id := range ids {
			cantidad := carrito[id]
			producto, err := productoRepo.GetForUpdate(id)
			if err != nil {
				return err
			}
			if producto == nil {
				return domain.ErrNotFound
			}
			if producto.CantidadActual < cantidad {
				return domain.ErrInsufficientStock
			}
			if err := productoRepo.UpdateCantidad(producto.ID, producto.CantidadActual-cantidad); err != nil {
				return err
			}
			pedido := &entity.Pedido{
				ID:                uuid.New().String(),
				Fecha:             ahora,
				Cantidad:          cantidad,
				PrecioUnidadCoste: producto.PrecioCoste.Round(2),
				PrecioUnidadVenta: producto.PrecioVenta.Round(2),
				TotalVenta:        producto.PrecioVenta.Mul(decimal.NewFromInt(int64(cantidad))).Round(2),
				DescuentoAplicado: decimal.Zero,
				IVAAplicado:       pricing.IVADefecto,
				Tipo:              entity.PedidoTipoVenta,
				Estado:            entity.PedidoEstadoPendiente,
				UsuarioID:         s.UsuarioID,
				ProductoID:        producto.ID,
			}
			if err := pedidoRepo.Create(pedido); err != nil {
				return err
			}
			creados = append(creados, pedido)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return creados, nil
}

func clonarCarrito(c dto.CarritoDTO) dto.CarritoDTO {
	resultado := make(dto.CarritoDTO, len(c)+1)
	for id, cantidad := range c {
		resultado[id] = cantidad
	}
	return resultado
}

func idsOrdenados(c dto.CarritoDTO) []string {
	ids := make([]string, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
