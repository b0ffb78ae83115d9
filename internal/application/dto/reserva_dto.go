package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CrearVentaRequest crea una reserva (venta pendiente) sobre un producto.
// Descuento e IVA son opcionales; ClienteID solo lo puede fijar un admin.
type CrearVentaRequest struct {
	Cantidad  int              `json:"cantidad"`
	Descuento *decimal.Decimal `json:"descuento"`
	IVA       *decimal.Decimal `json:"iva"`
	ClienteID string           `json:"cliente_id"`
}

// PedidoResponse representación de un pedido (venta o compra).
type PedidoResponse struct {
	ID                string          `json:"id"`
	Fecha             time.Time       `json:"fecha"`
	Cantidad          int             `json:"cantidad"`
	PrecioUnidadCoste decimal.Decimal `json:"precio_unidad_coste"`
	PrecioUnidadVenta decimal.Decimal `json:"precio_unidad_venta"`
	TotalVenta        decimal.Decimal `json:"total_venta"`
	DescuentoAplicado decimal.Decimal `json:"descuento_aplicado"`
	IVAAplicado       decimal.Decimal `json:"iva_aplicado"`
	Tipo              string          `json:"tipo"`
	Estado            string          `json:"estado"`
	UsuarioID         string          `json:"usuario_id"`
	ProductoID        string          `json:"producto_id"`
}
