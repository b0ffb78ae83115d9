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

var _ repository.ProveedorRepository = (*ProveedorRepo)(nil)

// ProveedorRepo implementación del puerto ProveedorRepository sobre PostgreSQL (usable con pool o tx).
type ProveedorRepo struct {
	q Querier
}

// NewProveedorRepository construye el adaptador de persistencia para proveedores. Pasar pool o tx (Querier).
func NewProveedorRepository(q Querier) *ProveedorRepo {
	return &ProveedorRepo{q: q}
}

// Create persiste un proveedor nuevo. El CIF es único.
func (r *ProveedorRepo) Create(proveedor *entity.Proveedor) error {
	query := `
		INSERT INTO proveedores (id, nombre_empresa, cif, telefono, direccion, descuento, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		proveedor.ID, proveedor.NombreEmpresa, proveedor.CIF, proveedor.Telefono,
		proveedor.Direccion, proveedor.Descuento, proveedor.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert proveedor: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID.
func (r *ProveedorRepo) GetByID(id string) (*entity.Proveedor, error) {
	return r.getBy(`WHERE id = $1`, id)
}

// GetByCIF obtiene un proveedor por CIF.
func (r *ProveedorRepo) GetByCIF(cif string) (*entity.Proveedor, error) {
	return r.getBy(`WHERE cif = $1`, cif)
}

func (r *ProveedorRepo) getBy(where string, arg any) (*entity.Proveedor, error) {
	query := `
		SELECT id, nombre_empresa, cif, telefono, direccion, descuento, created_at
		FROM proveedores ` + where
	var p entity.Proveedor
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&p.ID, &p.NombreEmpresa, &p.CIF, &p.Telefono, &p.Direccion, &p.Descuento, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get proveedor: %w", err)
	}
	return &p, nil
}

// Update actualiza un proveedor existente.
func (r *ProveedorRepo) Update(proveedor *entity.Proveedor) error {
	query := `
		UPDATE proveedores SET nombre_empresa = $2, cif = $3, telefono = $4, direccion = $5, descuento = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		proveedor.ID, proveedor.NombreEmpresa, proveedor.CIF, proveedor.Telefono,
		proveedor.Direccion, proveedor.Descuento,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update proveedor: %w", err)
	}
	return nil
}

// List lista todos los proveedores por nombre.
func (r *ProveedorRepo) List() ([]*entity.Proveedor, error) {
	query := `
		SELECT id, nombre_empresa, cif, telefono, direccion, descuento, created_at
		FROM proveedores ORDER BY nombre_empresa ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list proveedores: %w", err)
	}
	defer rows.Close()
	var list []*entity.Proveedor
	for rows.Next() {
		var p entity.Proveedor
		if err := rows.Scan(&p.ID, &p.NombreEmpresa, &p.CIF, &p.Telefono, &p.Direccion, &p.Descuento, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan proveedor: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// CountProductos cuenta los productos que referencian al proveedor.
func (r *ProveedorRepo) CountProductos(proveedorID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM productos WHERE proveedor_id = $1`, proveedorID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count productos de proveedor: %w", err)
	}
	return n, nil
}

// Delete elimina un proveedor por ID.
func (r *ProveedorRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM proveedores WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete proveedor: %w", err)
	}
	return nil
}
