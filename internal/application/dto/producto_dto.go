package dto

import "github.com/shopspring/decimal"

// CreateProductoRequest alta de producto. Los precios llegan SIN IVA; el IVA
// indicado (o el estándar) se aplica al persistir y no se vuelve a separar.
type CreateProductoRequest struct {
	Nombre         string           `json:"nombre"`
	Descripcion    string           `json:"descripcion"`
	Referencia     string           `json:"referencia"`
	Ubicacion      string           `json:"ubicacion"`
	PrecioCoste    decimal.Decimal  `json:"precio_coste"`
	PrecioVenta    decimal.Decimal  `json:"precio_venta"`
	IVA            *decimal.Decimal `json:"iva"` // nil = IVA estándar
	CantidadActual int              `json:"cantidad_actual"`
	StockMaximo    int              `json:"stock_maximo"`
	ProveedorID    string           `json:"proveedor_id"`
}

// UpdateProductoRequest edición de producto. Los precios ya vienen con IVA
// incluido (son los valores persistidos que el admin ve y corrige).
type UpdateProductoRequest struct {
	Nombre         string          `json:"nombre"`
	Descripcion    string          `json:"descripcion"`
	Referencia     string          `json:"referencia"`
	Ubicacion      string          `json:"ubicacion"`
	PrecioCoste    decimal.Decimal `json:"precio_coste"`
	PrecioVenta    decimal.Decimal `json:"precio_venta"`
	CantidadActual int             `json:"cantidad_actual"`
	StockMaximo    int             `json:"stock_maximo"`
	ProveedorID    string          `json:"proveedor_id"`
}

// ProductoResponse representación de un producto del inventario.
type ProductoResponse struct {
	ID             string          `json:"id"`
	Nombre         string          `json:"nombre"`
	Descripcion    string          `json:"descripcion,omitempty"`
	Referencia     string          `json:"referencia,omitempty"`
	Ubicacion      string          `json:"ubicacion,omitempty"`
	PrecioCoste    decimal.Decimal `json:"precio_coste"`
	PrecioVenta    decimal.Decimal `json:"precio_venta"`
	CantidadActual int             `json:"cantidad_actual"`
	StockMaximo    int             `json:"stock_maximo"`
	ProveedorID    string          `json:"proveedor_id,omitempty"`
}

// ProductoConAlertaDTO fila del inventario con su nivel de ocupación.
// Alerta: "danger" ≤10%, "warning" ≤25%, "info" ≥90%, vacío en el resto.
type ProductoConAlertaDTO struct {
	Producto   ProductoResponse `json:"producto"`
	Porcentaje float64          `json:"porcentaje"`
	Alerta     string           `json:"alerta,omitempty"`
}

// RestockRequest reposición de stock de un producto.
type RestockRequest struct {
	Cantidad int `json:"cantidad"`
}
