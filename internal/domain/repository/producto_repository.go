package repository

import "github.com/suminitec/suministros-api/internal/domain/entity"

// ProductoRepository define el puerto de persistencia para Producto (DIP).
type ProductoRepository interface {
	Create(producto *entity.Producto) error
	GetByID(id string) (*entity.Producto, error)
	// GetForUpdate obtiene el producto bloqueando su fila (SELECT FOR UPDATE).
	// Toda lectura-modificación-escritura de CantidadActual debe pasar por aquí
	// dentro de una transacción para evitar lost updates entre peticiones.
	GetForUpdate(id string) (*entity.Producto, error)
	Update(producto *entity.Producto) error
	// UpdateCantidad escribe solo CantidadActual (usado por el motor de reservas).
	UpdateCantidad(id string, cantidad int) error
	List() ([]*entity.Producto, error)
	// ListEnStock lista los productos con CantidadActual > 0 (catálogo de clientes).
	ListEnStock() ([]*entity.Producto, error)
	ListByIDs(ids []string) ([]*entity.Producto, error)
	Delete(id string) error
}
