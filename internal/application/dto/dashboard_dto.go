package dto

import "github.com/shopspring/decimal"

// TopProductoDTO fila del ranking de productos más vendidos.
// Ganancia = ingreso acumulado − costo actual × unidades (costo de catálogo,
// no el histórico de cada venta).
type TopProductoDTO struct {
	ProductoID string          `json:"producto_id"`
	Nombre     string          `json:"nombre"`
	Cantidad   int64           `json:"cantidad"`
	CostoTotal decimal.Decimal `json:"costo_total"`
	VentaTotal decimal.Decimal `json:"venta_total"`
	Ganancia   decimal.Decimal `json:"ganancia"`
}

// DashboardDTO resumen financiero del panel de administración.
type DashboardDTO struct {
	TotalIngresos decimal.Decimal  `json:"total_ingresos"`
	TotalCostos   decimal.Decimal  `json:"total_costos"`
	TopProductos  []TopProductoDTO `json:"top_productos"`
}

// ProductoFiltroDTO opción de producto para el filtro de reservas del cliente.
type ProductoFiltroDTO struct {
	ProductoID string `json:"producto_id"`
	Nombre     string `json:"nombre"`
}

// TopClienteDTO ranking personal del cliente más la lista para su filtro.
type TopClienteDTO struct {
	TopProductos []TopProductoDTO    `json:"top_productos"`
	Productos    []ProductoFiltroDTO `json:"productos"`
}
