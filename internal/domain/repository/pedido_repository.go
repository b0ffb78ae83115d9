package repository

import (
	"time"

	"github.com/suminitec/suministros-api/internal/domain/entity"
)

// FiltroReservas filtros opcionales del panel de reservas; cadena vacía = sin filtro.
type FiltroReservas struct {
	UsuarioID  string
	ProductoID string
	Estado     string
}

// PedidoRepository define el puerto de persistencia para Pedido (DIP).
type PedidoRepository interface {
	Create(pedido *entity.Pedido) error
	GetByID(id string) (*entity.Pedido, error)
	// GetForUpdate obtiene el pedido bloqueando su fila, para transiciones de estado.
	GetForUpdate(id string) (*entity.Pedido, error)
	// UpdateEstado transiciona el estado del pedido. El resto de campos es inmutable.
	UpdateEstado(id, estado string) error
	// SumPendientesByProducto suma las cantidades de las ventas pendientes de un
	// producto: el stock ya reservado que el carrito descuenta del disponible.
	SumPendientesByProducto(productoID string) (int, error)
	// ListPendientesVencidos devuelve las ventas pendientes con fecha anterior al
	// límite, bloqueando las filas (se llama dentro del barrido de expiración).
	ListPendientesVencidos(limite time.Time) ([]*entity.Pedido, error)
	// ListVentas lista pedidos de tipo venta según filtros, fecha descendente.
	ListVentas(filtro FiltroReservas) ([]*entity.Pedido, error)
}
