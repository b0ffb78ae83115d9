package repository

import "github.com/suminitec/suministros-api/internal/domain/entity"

// ProveedorRepository define el puerto de persistencia para Proveedor (DIP).
type ProveedorRepository interface {
	Create(proveedor *entity.Proveedor) error
	GetByID(id string) (*entity.Proveedor, error)
	GetByCIF(cif string) (*entity.Proveedor, error)
	Update(proveedor *entity.Proveedor) error
	List() ([]*entity.Proveedor, error)
	// CountProductos devuelve cuántos productos referencian al proveedor.
	// La integridad referencial impide eliminar proveedores con productos.
	CountProductos(proveedorID string) (int, error)
	Delete(id string) error
}
