package postgres

import (
	"context"
	"fmt"

	"github.com/suminitec/suministros-api/internal/domain/repository"
)

var _ repository.ReporteRepository = (*ReporteRepo)(nil)

// ReporteRepo consultas de agregación para reportes. Solo lecturas sobre el pool.
type ReporteRepo struct {
	q Querier
}

// NewReporteRepository construye el adaptador de reportes.
func NewReporteRepository(q Querier) *ReporteRepo {
	return &ReporteRepo{q: q}
}

// GetResumenFinanciero ingresos de ventas completadas contra costo de todas las
// compras. Las pendientes no cuentan como ingreso; las canceladas, nunca.
func (r *ReporteRepo) GetResumenFinanciero(ctx context.Context) (*repository.ResumenFinanciero, error) {
	query := `
		SELECT
			COALESCE(SUM(total_venta) FILTER (WHERE tipo = 'venta' AND estado = 'completado'), 0),
			COALESCE(SUM(precio_unidad_coste * cantidad) FILTER (WHERE tipo = 'compra'), 0)
		FROM pedidos`
	var resumen repository.ResumenFinanciero
	if err := r.q.QueryRow(ctx, query).Scan(&resumen.TotalIngresos, &resumen.TotalCostos); err != nil {
		return nil, fmt.Errorf("resumen financiero: %w", err)
	}
	return &resumen, nil
}

// GetTopProductos agrupa todas las ventas por producto, ordenadas por cantidad
// descendente con empate por id. El costo que acompaña es el actual del catálogo.
func (r *ReporteRepo) GetTopProductos(ctx context.Context, limit int) ([]repository.TopProductoResult, error) {
	query := `
		SELECT pe.producto_id, pr.nombre, SUM(pe.cantidad), SUM(pe.total_venta), pr.precio_coste
		FROM pedidos pe
		JOIN productos pr ON pr.id = pe.producto_id
		WHERE pe.tipo = 'venta'
		GROUP BY pe.producto_id, pr.nombre, pr.precio_coste
		ORDER BY SUM(pe.cantidad) DESC, pe.producto_id ASC
		LIMIT $1`
	return r.queryTop(ctx, query, limit)
}

// GetTopProductosUsuario igual que GetTopProductos pero solo con las ventas del usuario.
func (r *ReporteRepo) GetTopProductosUsuario(ctx context.Context, usuarioID string, limit int) ([]repository.TopProductoResult, error) {
	query := `
		SELECT pe.producto_id, pr.nombre, SUM(pe.cantidad), SUM(pe.total_venta), pr.precio_coste
		FROM pedidos pe
		JOIN productos pr ON pr.id = pe.producto_id
		WHERE pe.tipo = 'venta' AND pe.usuario_id = $1
		GROUP BY pe.producto_id, pr.nombre, pr.precio_coste
		ORDER BY SUM(pe.cantidad) DESC, pe.producto_id ASC
		LIMIT $2`
	return r.queryTop(ctx, query, usuarioID, limit)
}

func (r *ReporteRepo) queryTop(ctx context.Context, query string, args ...any) ([]repository.TopProductoResult, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("top productos: %w", err)
	}
	defer rows.Close()
	var list []repository.TopProductoResult
	for rows.Next() {
		var t repository.TopProductoResult
		if err := rows.Scan(&t.ProductoID, &t.Nombre, &t.Cantidad, &t.IngresoTotal, &t.PrecioCoste); err != nil {
			return nil, fmt.Errorf("scan top producto: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// ListProductosComprados productos distintos con ventas del usuario, por nombre.
func (r *ReporteRepo) ListProductosComprados(ctx context.Context, usuarioID string) ([]repository.ProductoCompradoResult, error) {
	query := `
		SELECT DISTINCT pe.producto_id, pr.nombre
		FROM pedidos pe
		JOIN productos pr ON pr.id = pe.producto_id
		WHERE pe.tipo = 'venta' AND pe.usuario_id = $1
		ORDER BY pr.nombre ASC`
	rows, err := r.q.Query(ctx, query, usuarioID)
	if err != nil {
		return nil, fmt.Errorf("productos comprados: %w", err)
	}
	defer rows.Close()
	var list []repository.ProductoCompradoResult
	for rows.Next() {
		var p repository.ProductoCompradoResult
		if err := rows.Scan(&p.ProductoID, &p.Nombre); err != nil {
			return nil, fmt.Errorf("scan producto comprado: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}
