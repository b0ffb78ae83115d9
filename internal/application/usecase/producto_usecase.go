package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/suminitec/suministros-api/internal/application/dto"
	"github.com/suminitec/suministros-api/internal/domain"
	"github.com/suminitec/suministros-api/internal/domain/entity"
	"github.com/suminitec/suministros-api/internal/domain/pricing"
	"github.com/suminitec/suministros-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD (misma forma
// que el runner del motor de reservas; ambos los satisface el adaptador pgx).
// El alta de producto lo necesita: producto y compra inicial van juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		pedidoRepo repository.PedidoRepository,
		productoRepo repository.ProductoRepository,
	) error) error
}

// ProductoUseCase CRUD de productos del catálogo. El alta aplica el IVA a los
// precios recibidos y registra el stock inicial como compra en la misma
// transacción que el producto.
type ProductoUseCase struct {
	txRunner      TxRunner
	productoRepo  repository.ProductoRepository
	proveedorRepo repository.ProveedorRepository
	pedidoRepo    repository.PedidoRepository
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(
	txRunner TxRunner,
	productoRepo repository.ProductoRepository,
	proveedorRepo repository.ProveedorRepository,
	pedidoRepo repository.PedidoRepository,
) *ProductoUseCase {
	return &ProductoUseCase{
		txRunner:      txRunner,
		productoRepo:  productoRepo,
		proveedorRepo: proveedorRepo,
		pedidoRepo:    pedidoRepo,
	}
}

// Crear da de alta un producto. Los precios llegan sin IVA y se persisten con
// el IVA aplicado (el indicado o el estándar), redondeado a 2 decimales. Si
// hay stock inicial se registra una compra de usuarioID en la misma
// transacción: el producto ya tiene identidad cuando la compra lo referencia.
func (uc *ProductoUseCase) Crear(ctx context.Context, usuarioID string, in dto.CreateProductoRequest) (*dto.ProductoResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	iva := pricing.IVADefecto
	if in.IVA != nil {
		if !pricing.PorcentajeValido(*in.IVA) {
			return nil, domain.ErrInvalidInput
		}
		iva = *in.IVA
	}
	if in.PrecioCoste.LessThan(decimal.Zero) || in.PrecioVenta.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.CantidadActual < 0 || in.StockMaximo < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.CantidadActual > in.StockMaximo {
		return nil, domain.ErrInvalidInput
	}
	if in.ProveedorID != "" {
		proveedor, err := uc.proveedorRepo.GetByID(in.ProveedorID)
		if err != nil {
			return nil, err
		}
		if proveedor == nil {
			return nil, domain.ErrNotFound
		}
	}

	ahora := time.Now().UTC()
	producto := &entity.Producto{
		ID:             uuid.New().String(),
		Nombre:         in.Nombre,
		Descripcion:    in.Descripcion,
		Referencia:     in.Referencia,
		Ubicacion:      in.Ubicacion,
		PrecioCoste:    pricing.ConIVA(in.PrecioCoste, iva),
		PrecioVenta:    pricing.ConIVA(in.PrecioVenta, iva),
		CantidadActual: in.CantidadActual,
		StockMaximo:    in.StockMaximo,
		ProveedorID:    in.ProveedorID,
		CreatedAt:      ahora,
		UpdatedAt:      ahora,
	}

	err := uc.txRunner.Run(ctx, func(
		pedidoRepo repository.PedidoRepository,
		productoRepo repository.ProductoRepository,
	) error {
		if err := productoRepo.Create(producto); err != nil {
			return err
		}
		if in.CantidadActual > 0 {
			// La inversión inicial cuenta como compra para el reporte de costos.
			return pedidoRepo.Create(&entity.Pedido{
				ID:                uuid.New().String(),
				Fecha:             ahora,
				Cantidad:          in.CantidadActual,
				PrecioUnidadCoste: producto.PrecioCoste,
				PrecioUnidadVenta: producto.PrecioVenta,
				TotalVenta:        decimal.Zero,
				DescuentoAplicado: decimal.Zero,
				IVAAplicado:       iva,
				Tipo:              entity.PedidoTipoCompra,
				Estado:            entity.PedidoEstadoCompletado,
				UsuarioID:         usuarioID,
				ProductoID:        producto.ID,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toProductoResponse(producto), nil
}

// Actualizar reemplaza los datos del producto. Aquí los precios ya vienen con
// IVA incluido: son los valores persistidos que el admin corrige.
func (uc *ProductoUseCase) Actualizar(id string, in dto.UpdateProductoRequest) (*dto.ProductoResponse, error) {
	if in.PrecioCoste.LessThan(decimal.Zero) || in.PrecioVenta.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.CantidadActual < 0 || in.StockMaximo < 0 || in.CantidadActual > in.StockMaximo {
		return nil, domain.ErrInvalidInput
	}
	producto, err := uc.productoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, domain.ErrNotFound
	}
	if in.ProveedorID != "" {
		proveedor, err := uc.proveedorRepo.GetByID(in.ProveedorID)
		if err != nil {
			return nil, err
		}
		if proveedor == nil {
			return nil, domain.ErrNotFound
		}
	}

	producto.Nombre = in.Nombre
	producto.Descripcion = in.Descripcion
	producto.Referencia = in.Referencia
	producto.Ubicacion = in.Ubicacion
	producto.PrecioCoste = in.PrecioCoste
	producto.PrecioVenta = in.PrecioVenta
	producto.CantidadActual = in.CantidadActual
	producto.StockMaximo = in.StockMaximo
	producto.ProveedorID = in.ProveedorID
	producto.UpdatedAt = time.Now().UTC()

	if err := uc.productoRepo.Update(producto); err != nil {
		return nil, err
	}
	return toProductoResponse(producto), nil
}

// Eliminar borra un producto. A diferencia del proveedor, no se comprueba si
// tiene pedidos históricos; los registros quedan huérfanos de producto.
func (uc *ProductoUseCase) Eliminar(id string) error {
	producto, err := uc.productoRepo.GetByID(id)
	if err != nil {
		return err
	}
	if producto == nil {
		return domain.ErrNotFound
	}
	return uc.productoRepo.Delete(id)
}

// GetByID obtiene un producto.
func (uc *ProductoUseCase) GetByID(id string) (*dto.ProductoResponse, error) {
	producto, err := uc.productoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, nil
	}
	return toProductoResponse(producto), nil
}

// Umbrales de alerta de ocupación del inventario.
const (
	umbralCritico = 10 // ≤10% rojo
	umbralBajo    = 25 // ≤25% amarillo
	umbralAlto    = 90 // ≥90% azul (cerca del máximo)
)

// ListarInventario lista todos los productos con su nivel de ocupación y alerta.
func (uc *ProductoUseCase) ListarInventario() ([]dto.ProductoConAlertaDTO, error) {
	productos, err := uc.productoRepo.List()
	if err != nil {
		return nil, err
	}
	resultado := make([]dto.ProductoConAlertaDTO, 0, len(productos))
	for _, p := range productos {
		pct := p.PorcentajeOcupacion()
		alerta := ""
		switch {
		case pct <= umbralCritico:
			alerta = "danger"
		case pct <= umbralBajo:
			alerta = "warning"
		case pct >= umbralAlto:
			alerta = "info"
		}
		resultado = append(resultado, dto.ProductoConAlertaDTO{
			Producto:   *toProductoResponse(p),
			Porcentaje: redondear1(pct),
			Alerta:     alerta,
		})
	}
	return resultado, nil
}

// ListarCatalogo lista los productos con existencias (vista de clientes).
func (uc *ProductoUseCase) ListarCatalogo() ([]dto.ProductoResponse, error) {
	productos, err := uc.productoRepo.ListEnStock()
	if err != nil {
		return nil, err
	}
	resultado := make([]dto.ProductoResponse, 0, len(productos))
	for _, p := range productos {
		resultado = append(resultado, *toProductoResponse(p))
	}
	return resultado, nil
}

// DisponibleParaReserva devuelve el stock vendible efectivo: las existencias
// menos las reservas pendientes. Es el número informativo que ve el carrito;
// el descuento duro de stock ocurre al crear cada reserva.
func (uc *ProductoUseCase) DisponibleParaReserva(id string) (int, error) {
	producto, err := uc.productoRepo.GetByID(id)
	if err != nil {
		return 0, err
	}
	if producto == nil {
		return 0, domain.ErrNotFound
	}
	reservado, err := uc.pedidoRepo.SumPendientesByProducto(id)
	if err != nil {
		return 0, err
	}
	return producto.CantidadActual - reservado, nil
}

func toProductoResponse(p *entity.Producto) *dto.ProductoResponse {
	return &dto.ProductoResponse{
		ID:             p.ID,
		Nombre:         p.Nombre,
		Descripcion:    p.Descripcion,
		Referencia:     p.Referencia,
		Ubicacion:      p.Ubicacion,
		PrecioCoste:    p.PrecioCoste,
		PrecioVenta:    p.PrecioVenta,
		CantidadActual: p.CantidadActual,
		StockMaximo:    p.StockMaximo,
		ProveedorID:    p.ProveedorID,
	}
}

func redondear1(f float64) float64 {
	return float64(int(f*10+0.5)) / 10
}
