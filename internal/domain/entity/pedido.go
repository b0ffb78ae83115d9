package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de pedido.
const (
	PedidoTipoVenta  = "venta"  // reserva de un cliente, pasa por el ciclo pendiente → completado|cancelado
	PedidoTipoCompra = "compra" // reposición de stock, nace completado y nunca se cancela
)

// Estados de un pedido de tipo venta. Pendiente es el estado inicial;
// completado y cancelado son terminales y mutuamente excluyentes.
const (
	PedidoEstadoPendiente  = "pendiente"
	PedidoEstadoCompletado = "completado"
	PedidoEstadoCancelado  = "cancelado"
)

// Pedido es el registro inmutable de un movimiento de stock: una reserva de
// venta o una compra a proveedor. Captura los precios del momento para que la
// historia no cambie si el catálogo cambia después.
type Pedido struct {
	ID                string
	Fecha             time.Time // UTC
	Cantidad          int
	PrecioUnidadCoste decimal.Decimal
	PrecioUnidadVenta decimal.Decimal
	TotalVenta        decimal.Decimal // 0 en compras: son un evento de costo, no de ingreso
	DescuentoAplicado decimal.Decimal // porcentaje aplicado al cliente
	IVAAplicado       decimal.Decimal // porcentaje de IVA de esta transacción
	Tipo              string          // venta, compra
	Estado            string          // pendiente, completado, cancelado
	UsuarioID         string
	ProductoID        string
}

// EsTerminal indica si el pedido ya alcanzó un estado final.
func (p *Pedido) EsTerminal() bool {
	return p.Estado == PedidoEstadoCompletado || p.Estado == PedidoEstadoCancelado
}
