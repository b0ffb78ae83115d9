package reservas

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/suminitec/suministros-api/internal/domain"
	"github.com/suminitec/suministros-api/internal/domain/entity"
	"github.com/suminitec/suministros-api/internal/domain/pricing"
	"github.com/suminitec/suministros-api/internal/domain/repository"
)

// TTLReservaDefecto política de negocio: una reserva sin recoger se libera a las 48h.
const TTLReservaDefecto = 48 * time.Hour

// ReservaUseCase implementa el ciclo de vida de una reserva de venta
// (pendiente → completado | cancelado) y la reposición de stock, de forma
// transaccional con bloqueo de fila (SELECT FOR UPDATE) sobre el producto.
type ReservaUseCase struct {
	txRunner     TxRunner
	usuarioRepo  repository.UsuarioRepository
	pedidoRepo   repository.PedidoRepository   // atado al pool, solo lecturas
	productoRepo repository.ProductoRepository // atado al pool, solo lecturas
	ttl          time.Duration
}

// NewReservaUseCase construye el motor de reservas. Con ttl <= 0 aplica las 48h estándar.
func NewReservaUseCase(
	txRunner TxRunner,
	usuarioRepo repository.UsuarioRepository,
	pedidoRepo repository.PedidoRepository,
	productoRepo repository.ProductoRepository,
	ttl time.Duration,
) *ReservaUseCase {
	if ttl <= 0 {
		ttl = TTLReservaDefecto
	}
	return &ReservaUseCase{
		txRunner:     txRunner,
		usuarioRepo:  usuarioRepo,
		pedidoRepo:   pedidoRepo,
		productoRepo: productoRepo,
		ttl:          ttl,
	}
}

// CrearVentaInput entrada para crear una reserva.
// Descuento fuera de 0..100 se ignora; IVA fuera de rango cae al estándar.
// ClienteID solo tiene efecto si el solicitante es admin.
type CrearVentaInput struct {
	ProductoID string
	Cantidad   int
	Descuento  *decimal.Decimal
	IVA        *decimal.Decimal
	ClienteID  string
}

// CrearVenta reserva stock: bloquea la fila del producto, verifica existencias,
// recalcula el precio unitario con el IVA de la transacción (el descuento solo
// rebaja el total), decrementa CantidadActual en el acto y persiste el pedido
// en estado pendiente.
// El stock sale de la estantería al reservar; solo la cancelación o expiración lo devuelve.
func (uc *ReservaUseCase) CrearVenta(ctx context.Context, s Solicitante, input CrearVentaInput) (*entity.Pedido, error) {
	if input.Cantidad <= 0 {
		return nil, domain.ErrCantidadInvalida
	}

	descuento := decimal.Zero
	if input.Descuento != nil {
		descuento = pricing.NormalizarDescuento(*input.Descuento)
	}
	iva := pricing.IVADefecto
	if input.IVA != nil {
		iva = pricing.NormalizarIVA(*input.IVA)
	}

	// El admin puede reservar a nombre de un cliente activo; el cliente, solo para sí.
	destino := s.UsuarioID
	if s.Rol == entity.RolAdmin && input.ClienteID != "" {
		cliente, err := uc.usuarioRepo.GetByID(input.ClienteID)
		if err != nil {
			return nil, err
		}
		if cliente == nil || cliente.Rol != entity.RolCliente || !cliente.Activo {
			return nil, domain.ErrNotFound
		}
		destino = cliente.ID
	}

	var creado *entity.Pedido
	err := uc.txRunner.Run(ctx, func(
		pedidoRepo repository.PedidoRepository,
		productoRepo repository.ProductoRepository,
	) error {
		producto, err := productoRepo.GetForUpdate(input.ProductoID)
		if err != nil {
			return err
		}
		if producto == nil {
			return domain.ErrNotFound
		}
		if producto.CantidadActual < input.Cantidad {
			return domain.ErrInsufficientStock
		}

		// El unitario guardado no lleva el descuento; solo el total lo refleja.
		unitario := pricing.PrecioUnitarioVenta(producto.PrecioVenta, iva)
		conDescuento := pricing.AplicarDescuento(unitario, descuento)
		total := pricing.TotalVenta(conDescuento, input.Cantidad)

		if err := productoRepo.UpdateCantidad(producto.ID, producto.CantidadActual-input.Cantidad); err != nil {
			return err
		}

		creado = &entity.Pedido{
			ID:                uuid.New().String(),
			Fecha:             time.Now().UTC(),
			Cantidad:          input.Cantidad,
			PrecioUnidadCoste: producto.PrecioCoste,
			PrecioUnidadVenta: unitario,
			TotalVenta:        total,
			DescuentoAplicado: descuento,
			IVAAplicado:       iva,
			Tipo:              entity.PedidoTipoVenta,
			Estado:            entity.PedidoEstadoPendiente,
			UsuarioID:         destino,
			ProductoID:        producto.ID,
		}
		return pedidoRepo.Create(creado)
	})
	if err != nil {
		return nil, err
	}
	return creado, nil
}

// ConfirmarEntrega marca una reserva pendiente como completada (entregada y
// cobrada). Solo admin. No toca el stock: ya se descontó al crear la reserva.
// Sobre un pedido ya terminal no hace nada, igual que Cancelar.
func (uc *ReservaUseCase) ConfirmarEntrega(ctx context.Context, s Solicitante, pedidoID string) error {
	if s.Rol != entity.RolAdmin {
		return domain.ErrForbidden
	}
	return uc.txRunner.Run(ctx, func(
		pedidoRepo repository.PedidoRepository,
		_ repository.ProductoRepository,
	) error {
		pedido, err := pedidoRepo.GetForUpdate(pedidoID)
		if err != nil {
			return err
		}
		if pedido == nil || pedido.Tipo != entity.PedidoTipoVenta {
			return domain.ErrNotFound
		}
		if pedido.EsTerminal() {
			return nil
		}
		return pedidoRepo.UpdateEstado(pedido.ID, entity.PedidoEstadoCompletado)
	})
}

// Cancelar anula una reserva. Solo el admin o el dueño del pedido pueden hacerlo.
// Si sigue pendiente, devuelve el stock bloqueado y pasa a cancelado; si ya es
// terminal no hace nada (cancelar dos veces no duplica la devolución).
func (uc *ReservaUseCase) Cancelar(ctx context.Context, s Solicitante, pedidoID string) error {
	return uc.txRunner.Run(ctx, func(
		pedidoRepo repository.PedidoRepository,
		productoRepo repository.ProductoRepository,
	) error {
		pedido, err := pedidoRepo.GetForUpdate(pedidoID)
		if err != nil {
			return err
		}
		if pedido == nil {
			return domain.ErrNotFound
		}
		if s.Rol != entity.RolAdmin && pedido.UsuarioID != s.UsuarioID {
			return domain.ErrForbidden
		}
		if pedido.Estado != entity.PedidoEstadoPendiente {
			return nil
		}
		producto, err := productoRepo.GetForUpdate(pedido.ProductoID)
		if err != nil {
			return err
		}
		if producto != nil {
			if err := productoRepo.UpdateCantidad(producto.ID, producto.CantidadActual+pedido.Cantidad); err != nil {
				return err
			}
		}
		return pedidoRepo.UpdateEstado(pedido.ID, entity.PedidoEstadoCancelado)
	})
}

// ExpirarReservas barre las ventas pendientes más antiguas que el TTL: devuelve
// el stock de cada una y las cancela, todo en una única transacción. No hay
// temporizador: se invoca antes de cada vista de reservas, y es idempotente
// porque el segundo barrido ya no encuentra pendientes vencidas.
func (uc *ReservaUseCase) ExpirarReservas(ctx context.Context) (int, error) {
	limite := time.Now().UTC().Add(-uc.ttl)
	expiradas := 0
	err := uc.txRunner.Run(ctx, func(
		pedidoRepo repository.PedidoRepository,
		productoRepo repository.ProductoRepository,
	) error {
		vencidos, err := pedidoRepo.ListPendientesVencidos(limite)
		if err != nil {
			return err
		}
		for _, pedido := range vencidos {
			producto, err := productoRepo.GetForUpdate(pedido.ProductoID)
			if err != nil {
				return err
			}
			if producto != nil {
				if err := productoRepo.UpdateCantidad(producto.ID, producto.CantidadActual+pedido.Cantidad); err != nil {
					return err
				}
			}
			if err := pedidoRepo.UpdateEstado(pedido.ID, entity.PedidoEstadoCancelado); err != nil {
				return err
			}
			expiradas++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return expiradas, nil
}

// Reabastecer incrementa el stock de un producto (solo admin) y deja constancia
// como pedido de compra a los precios actuales, con total de venta en cero:
// es un evento de costo, no de ingreso.
func (uc *ReservaUseCase) Reabastecer(ctx context.Context, s Solicitante, productoID string, cantidad int) (*entity.Pedido, error) {
	if s.Rol != entity.RolAdmin {
		return nil, domain.ErrForbidden
	}
	if cantidad <= 0 {
		return nil, domain.ErrCantidadInvalida
	}
	var creado *entity.Pedido
	err := uc.txRunner.Run(ctx, func(
		pedidoRepo repository.PedidoRepository,
		productoRepo repository.ProductoRepository,
	) error {
		producto, err := productoRepo.GetForUpdate(productoID)
		if err != nil {
			return err
		}
		if producto == nil {
			return domain.ErrNotFound
		}
		if producto.CantidadActual+cantidad > producto.StockMaximo {
			return domain.ErrStockMaximoExcedido
		}
		if err := productoRepo.UpdateCantidad(producto.ID, producto.CantidadActual+cantidad); err != nil {
			return err
		}
		creado = &entity.Pedido{
			ID:                uuid.New().String(),
			Fecha:             time.Now().UTC(),
			Cantidad:          cantidad,
			PrecioUnidadCoste: producto.PrecioCoste,
			PrecioUnidadVenta: producto.PrecioVenta,
			TotalVenta:        decimal.Zero,
			DescuentoAplicado: decimal.Zero,
			IVAAplicado:       pricing.IVADefecto,
			Tipo:              entity.PedidoTipoCompra,
			Estado:            entity.PedidoEstadoCompletado,
			UsuarioID:         s.UsuarioID,
			ProductoID:        producto.ID,
		}
		return pedidoRepo.Create(creado)
	})
	if err != nil {
		return nil, err
	}
	return creado, nil
}

// ObtenerPedido devuelve un pedido si el solicitante es admin o su dueño.
func (uc *ReservaUseCase) ObtenerPedido(ctx context.Context, s Solicitante, pedidoID string) (*entity.Pedido, error) {
	pedido, err := uc.pedidoRepo.GetByID(pedidoID)
	if err != nil {
		return nil, err
	}
	if pedido == nil {
		return nil, domain.ErrNotFound
	}
	if s.Rol != entity.RolAdmin && pedido.UsuarioID != s.UsuarioID {
		return nil, domain.ErrForbidden
	}
	return pedido, nil
}

// DatosRecibo reúne pedido, producto y titular para el justificante en PDF.
// Producto o usuario borrados llegan como nil; el recibo los degrada a su ID.
func (uc *ReservaUseCase) DatosRecibo(ctx context.Context, s Solicitante, pedidoID string) (*entity.Pedido, *entity.Producto, *entity.Usuario, error) {
	pedido, err := uc.ObtenerPedido(ctx, s, pedidoID)
	if err != nil {
		return nil, nil, nil, err
	}
	var producto *entity.Producto
	if pedido.ProductoID != "" {
		if producto, err = uc.productoRepo.GetByID(pedido.ProductoID); err != nil {
			return nil, nil, nil, err
		}
	}
	var usuario *entity.Usuario
	if pedido.UsuarioID != "" {
		if usuario, err = uc.usuarioRepo.GetByID(pedido.UsuarioID); err != nil {
			return nil, nil, nil, err
		}
	}
	return pedido, producto, usuario, nil
}

// ListarReservasUsuario lista las ventas del propio usuario, opcionalmente
// filtradas por producto. Ejecuta antes el barrido de expiración.
func (uc *ReservaUseCase) ListarReservasUsuario(ctx context.Context, usuarioID, productoID string) ([]*entity.Pedido, error) {
	if _, err := uc.ExpirarReservas(ctx); err != nil {
		return nil, err
	}
	return uc.pedidoRepo.ListVentas(repository.FiltroReservas{
		UsuarioID:  usuarioID,
		ProductoID: productoID,
	})
}

// ListarReservas panel de administración: todas las ventas con filtros por
// cliente, producto y estado. Ejecuta antes el barrido de expiración.
func (uc *ReservaUseCase) ListarReservas(ctx context.Context, s Solicitante, filtro repository.FiltroReservas) ([]*entity.Pedido, error) {
	if s.Rol != entity.RolAdmin {
		return nil, domain.ErrForbidden
	}
	if _, err := uc.ExpirarReservas(ctx); err != nil {
		return nil, err
	}
	return uc.pedidoRepo.ListVentas(filtro)
}
