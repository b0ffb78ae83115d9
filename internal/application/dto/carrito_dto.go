package dto

import "github.com/shopspring/decimal"

// CarritoDTO carrito explícito por sesión: producto → cantidad solicitada.
// Es una lista de deseos, no una reserva; el stock se revalida al confirmar.
type CarritoDTO map[string]int

// AgregarCarritoRequest añade unidades de un producto a un carrito existente.
type AgregarCarritoRequest struct {
	Carrito    CarritoDTO `json:"carrito"`
	ProductoID string     `json:"producto_id"`
	Cantidad   int        `json:"cantidad"`
}

// CarritoItemDTO línea del carrito valorada a precio de catálogo.
type CarritoItemDTO struct {
	ProductoID string          `json:"producto_id"`
	Nombre     string          `json:"nombre"`
	Precio     decimal.Decimal `json:"precio"`
	Cantidad   int             `json:"cantidad"`
	Subtotal   decimal.Decimal `json:"subtotal"`
}

// CarritoDetalleDTO carrito valorado: líneas más el total de la compra.
type CarritoDetalleDTO struct {
	Items []CarritoItemDTO `json:"items"`
	Total decimal.Decimal  `json:"total"`
}
