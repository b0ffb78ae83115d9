package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/suminitec/suministros-api/internal/domain"
	"github.com/suminitec/suministros-api/internal/domain/entity"
	"github.com/suminitec/suministros-api/internal/domain/repository"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

const productoColumns = `id, nombre, descripcion, referencia, ubicacion,
		precio_coste, precio_venta, cantidad_actual, stock_maximo,
		COALESCE(proveedor_id, ''), created_at, updated_at`

// ProductoRepo implementación del puerto ProductoRepository sobre PostgreSQL (usable con pool o tx).
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

// Create persiste un producto nuevo. Proveedor vacío se guarda como NULL.
func (r *ProductoRepo) Create(producto *entity.Producto) error {
	query := `
		INSERT INTO productos (id, nombre, descripcion, referencia, ubicacion,
			precio_coste, precio_venta, cantidad_actual, stock_maximo,
			proveedor_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NULLIF($10, ''), $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		producto.ID, producto.Nombre, producto.Descripcion, producto.Referencia, producto.Ubicacion,
		producto.PrecioCoste, producto.PrecioVenta, producto.CantidadActual, producto.StockMaximo,
		producto.ProveedorID, producto.CreatedAt, producto.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductoRepo) GetByID(id string) (*entity.Producto, error) {
	return r.getBy(``, id)
}

// GetForUpdate obtiene el producto bloqueando su fila. Solo dentro de una tx;
// el lock vive hasta el Commit o Rollback.
func (r *ProductoRepo) GetForUpdate(id string) (*entity.Producto, error) {
	return r.getBy(`FOR UPDATE`, id)
}

func (r *ProductoRepo) getBy(lock string, id string) (*entity.Producto, error) {
	query := `SELECT ` + productoColumns + ` FROM productos WHERE id = $1 ` + lock
	var p entity.Producto
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Nombre, &p.Descripcion, &p.Referencia, &p.Ubicacion,
		&p.PrecioCoste, &p.PrecioVenta, &p.CantidadActual, &p.StockMaximo,
		&p.ProveedorID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return &p, nil
}

// Update actualiza un producto existente (edición completa de catálogo).
func (r *ProductoRepo) Update(producto *entity.Producto) error {
	query := `
		UPDATE productos SET nombre = $2, descripcion = $3, referencia = $4, ubicacion = $5,
			precio_coste = $6, precio_venta = $7, cantidad_actual = $8, stock_maximo = $9,
			proveedor_id = NULLIF($10, ''), updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		producto.ID, producto.Nombre, producto.Descripcion, producto.Referencia, producto.Ubicacion,
		producto.PrecioCoste, producto.PrecioVenta, producto.CantidadActual, producto.StockMaximo,
		producto.ProveedorID, producto.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update producto: %w", err)
	}
	return nil
}

// UpdateCantidad escribe solo CantidadActual (motor de reservas, bajo lock de fila).
func (r *ProductoRepo) UpdateCantidad(id string, cantidad int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE productos SET cantidad_actual = $2, updated_at = now() WHERE id = $1`,
		id, cantidad,
	)
	if err != nil {
		return fmt.Errorf("update cantidad producto: %w", err)
	}
	return nil
}

// List lista todos los productos por nombre.
func (r *ProductoRepo) List() ([]*entity.Producto, error) {
	return r.list(`ORDER BY nombre ASC`)
}

// ListEnStock lista los productos con existencias (catálogo de clientes).
func (r *ProductoRepo) ListEnStock() ([]*entity.Producto, error) {
	return r.list(`WHERE cantidad_actual > 0 ORDER BY nombre ASC`)
}

func (r *ProductoRepo) list(tail string, args ...any) ([]*entity.Producto, error) {
	query := `SELECT ` + productoColumns + ` FROM productos ` + tail
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Producto
	for rows.Next() {
		var p entity.Producto
		if err := rows.Scan(&p.ID, &p.Nombre, &p.Descripcion, &p.Referencia, &p.Ubicacion,
			&p.PrecioCoste, &p.PrecioVenta, &p.CantidadActual, &p.StockMaximo,
			&p.ProveedorID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// ListByIDs lista los productos cuyos IDs están en la lista (valoración del carrito).
func (r *ProductoRepo) ListByIDs(ids []string) ([]*entity.Producto, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.list(`WHERE id = ANY($1) ORDER BY nombre ASC`, ids)
}

// Delete elimina un producto por ID. Sus pedidos quedan con producto NULL.
func (r *ProductoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM productos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete producto: %w", err)
	}
	return nil
}
