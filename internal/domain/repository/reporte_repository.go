package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// ResumenFinanciero ingresos realizados contra costos de compra acumulados.
type ResumenFinanciero struct {
	TotalIngresos decimal.Decimal // ventas completadas
	TotalCostos   decimal.Decimal // todas las compras (no tienen fase pendiente)
}

// TopProductoResult agregado de ventas por producto para los rankings.
// PrecioCoste es el costo actual del catálogo, no el histórico de cada venta.
type TopProductoResult struct {
	ProductoID   string
	Nombre       string
	Cantidad     int64
	IngresoTotal decimal.Decimal
	PrecioCoste  decimal.Decimal
}

// ProductoCompradoResult referencia mínima de producto para filtros de cliente.
type ProductoCompradoResult struct {
	ProductoID string
	Nombre     string
}

// ReporteRepository consultas read-only de agregación sobre pedidos.
type ReporteRepository interface {
	GetResumenFinanciero(ctx context.Context) (*ResumenFinanciero, error)
	// GetTopProductos agrupa TODAS las ventas (cualquier estado) por producto,
	// ordenadas por cantidad vendida descendente; empates por id de producto.
	GetTopProductos(ctx context.Context, limit int) ([]TopProductoResult, error)
	GetTopProductosUsuario(ctx context.Context, usuarioID string, limit int) ([]TopProductoResult, error)
	// ListProductosComprados productos distintos con ventas del usuario (para filtros).
	ListProductosComprados(ctx context.Context, usuarioID string) ([]ProductoCompradoResult, error)
}
