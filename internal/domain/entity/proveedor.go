package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Proveedor representa una empresa que suministra productos.
// No puede eliminarse mientras tenga productos asociados.
type Proveedor struct {
	ID            string
	NombreEmpresa string
	CIF           string // único cuando no está vacío
	Telefono      string
	Direccion     string
	Descuento     decimal.Decimal // porcentaje 0..100
	CreatedAt     time.Time
}
