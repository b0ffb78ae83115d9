package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto representa un artículo del inventario.
//
// PrecioCoste y PrecioVenta se persisten con IVA incluido: el IVA se aplica en
// el momento del alta y el valor sin impuesto no se conserva. CantidadActual
// se decrementa al crear una reserva, no al completarla; el invariante
// 0 <= CantidadActual <= StockMaximo debe cumplirse tras toda operación
// confirmada.
type Producto struct {
	ID             string
	Nombre         string
	Descripcion    string
	Referencia     string
	Ubicacion      string
	PrecioCoste    decimal.Decimal // con IVA incluido
	PrecioVenta    decimal.Decimal // con IVA incluido
	CantidadActual int
	StockMaximo    int
	ProveedorID    string // vacío = sin proveedor
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// PorcentajeOcupacion devuelve qué porcentaje del stock máximo está ocupado.
// Con StockMaximo en 0 devuelve 0 para evitar división por cero.
func (p *Producto) PorcentajeOcupacion() float64 {
	if p.StockMaximo <= 0 {
		return 0
	}
	return float64(p.CantidadActual) / float64(p.StockMaximo) * 100
}
