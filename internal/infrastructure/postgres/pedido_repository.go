package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/suminitec/suministros-api/internal/domain/entity"
	"github.com/suminitec/suministros-api/internal/domain/repository"
)

var _ repository.PedidoRepository = (*PedidoRepo)(nil)

const pedidoColumns = `id, fecha, cantidad, precio_unidad_coste, precio_unidad_venta,
		total_venta, descuento_aplicado, iva_aplicado, tipo, estado,
		COALESCE(usuario_id, ''), COALESCE(producto_id, '')`

// PedidoRepo implementación del puerto PedidoRepository sobre PostgreSQL (usable con pool o tx).
type PedidoRepo struct {
	q Querier
}

// NewPedidoRepository construye el adaptador de persistencia para pedidos. Pasar pool o tx (Querier).
func NewPedidoRepository(q Querier) *PedidoRepo {
	return &PedidoRepo{q: q}
}

// Create persiste un pedido nuevo. Los pedidos son inmutables salvo el estado.
func (r *PedidoRepo) Create(pedido *entity.Pedido) error {
	query := `
		INSERT INTO pedidos (id, fecha, cantidad, precio_unidad_coste, precio_unidad_venta,
			total_venta, descuento_aplicado, iva_aplicado, tipo, estado, usuario_id, producto_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NULLIF($11, ''), NULLIF($12, ''))`
	_, err := r.q.Exec(context.Background(), query,
		pedido.ID, pedido.Fecha, pedido.Cantidad, pedido.PrecioUnidadCoste, pedido.PrecioUnidadVenta,
		pedido.TotalVenta, pedido.DescuentoAplicado, pedido.IVAAplicado, pedido.Tipo, pedido.Estado,
		pedido.UsuarioID, pedido.ProductoID,
	)
	if err != nil {
		return fmt.Errorf("insert pedido: %w", err)
	}
	return nil
}

// GetByID obtiene un pedido por ID.
func (r *PedidoRepo) GetByID(id string) (*entity.Pedido, error) {
	return r.getBy(``, id)
}

// GetForUpdate obtiene el pedido bloqueando su fila, para transiciones de estado.
func (r *PedidoRepo) GetForUpdate(id string) (*entity.Pedido, error) {
	return r.getBy(`FOR UPDATE`, id)
}

func (r *PedidoRepo) getBy(lock string, id string) (*entity.Pedido, error) {
	query := `SELECT ` + pedidoColumns + ` FROM pedidos WHERE id = $1 ` + lock
	var p entity.Pedido
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Fecha, &p.Cantidad, &p.PrecioUnidadCoste, &p.PrecioUnidadVenta,
		&p.TotalVenta, &p.DescuentoAplicado, &p.IVAAplicado, &p.Tipo, &p.Estado,
		&p.UsuarioID, &p.ProductoID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pedido: %w", err)
	}
	return &p, nil
}

// UpdateEstado transiciona el estado del pedido.
func (r *PedidoRepo) UpdateEstado(id, estado string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE pedidos SET estado = $2 WHERE id = $1`, id, estado,
	)
	if err != nil {
		return fmt.Errorf("update estado pedido: %w", err)
	}
	return nil
}

// SumPendientesByProducto suma las cantidades de las ventas pendientes de un producto.
func (r *PedidoRepo) SumPendientesByProducto(productoID string) (int, error) {
	var total int
	err := r.q.QueryRow(context.Background(), `
		SELECT COALESCE(SUM(cantidad), 0) FROM pedidos
		WHERE producto_id = $1 AND tipo = 'venta' AND estado = 'pendiente'`,
		productoID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("sum pendientes producto: %w", err)
	}
	return total, nil
}

// ListPendientesVencidos devuelve las ventas pendientes anteriores al límite,
// bloqueando sus filas para el barrido de expiración. Solo dentro de una tx.
func (r *PedidoRepo) ListPendientesVencidos(limite time.Time) ([]*entity.Pedido, error) {
	query := `SELECT ` + pedidoColumns + ` FROM pedidos
		WHERE tipo = 'venta' AND estado = 'pendiente' AND fecha < $1
		ORDER BY fecha ASC
		FOR UPDATE`
	return r.queryPedidos(query, limite)
}

// ListVentas lista pedidos de tipo venta según filtros, fecha descendente.
func (r *PedidoRepo) ListVentas(filtro repository.FiltroReservas) ([]*entity.Pedido, error) {
	query := `SELECT ` + pedidoColumns + ` FROM pedidos
		WHERE tipo = 'venta'
		  AND ($1 = '' OR usuario_id = $1)
		  AND ($2 = '' OR producto_id = $2)
		  AND ($3 = '' OR estado = $3)
		ORDER BY fecha DESC`
	return r.queryPedidos(query, filtro.UsuarioID, filtro.ProductoID, filtro.Estado)
}

func (r *PedidoRepo) queryPedidos(query string, args ...any) ([]*entity.Pedido, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list pedidos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Pedido
	for rows.Next() {
		var p entity.Pedido
		if err := rows.Scan(&p.ID, &p.Fecha, &p.Cantidad, &p.PrecioUnidadCoste, &p.PrecioUnidadVenta,
			&p.TotalVenta, &p.DescuentoAplicado, &p.IVAAplicado, &p.Tipo, &p.Estado,
			&p.UsuarioID, &p.ProductoID); err != nil {
			return nil, fmt.Errorf("scan pedido: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
