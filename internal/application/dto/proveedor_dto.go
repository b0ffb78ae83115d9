package dto

import "github.com/shopspring/decimal"

// CreateProveedorRequest alta de proveedor.
type CreateProveedorRequest struct {
	NombreEmpresa string          `json:"nombre_empresa"`
	CIF           string          `json:"cif"`
	Telefono      string          `json:"telefono"`
	Direccion     string          `json:"direccion"`
	Descuento     decimal.Decimal `json:"descuento"`
}

// UpdateProveedorRequest edición de proveedor (reemplazo completo, como el alta).
type UpdateProveedorRequest = CreateProveedorRequest

// ProveedorResponse representación de un proveedor.
type ProveedorResponse struct {
	ID            string          `json:"id"`
	NombreEmpresa string          `json:"nombre_empresa"`
	CIF           string          `json:"cif,omitempty"`
	Telefono      string          `json:"telefono,omitempty"`
	Direccion     string          `json:"direccion,omitempty"`
	Descuento     decimal.Decimal `json:"descuento"`
}
