package reportes

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/suminitec/suministros-api/internal/application/dto"
	"github.com/suminitec/suministros-api/internal/domain/repository"
)

// Tamaño de los rankings.
const (
	topDashboard = 3
	topCliente   = 10
)

// Expirador barrido perezoso de reservas vencidas. Los reportes lo ejecutan
// antes de consultar para no contar reservas que ya deberían estar canceladas.
type Expirador interface {
	ExpirarReservas(ctx context.Context) (int, error)
}

// UseCase reportes financieros del panel de administración y el ranking
// personal del cliente.
type UseCase struct {
	reporteRepo repository.ReporteRepository
	expirador   Expirador
}

func NewUseCase(reporteRepo repository.ReporteRepository, expirador Expirador) *UseCase {
	return &UseCase{reporteRepo: reporteRepo, expirador: expirador}
}

// GetDashboard resumen financiero más el top de productos vendidos. Las dos
// consultas de agregación corren en paralelo.
func (uc *UseCase) GetDashboard(ctx context.Context) (*dto.DashboardDTO, error) {
	if _, err := uc.expirador.ExpirarReservas(ctx); err != nil {
		return nil, err
	}

	type resumenOut struct {
		resumen *repository.ResumenFinanciero
		err     error
	}
	type topOut struct {
		top []repository.TopProductoResult
		err error
	}
	resumenCh := make(chan resumenOut, 1)
	topCh := make(chan topOut, 1)

	go func() {
		r, err := uc.reporteRepo.GetResumenFinanciero(ctx)
		resumenCh <- resumenOut{resumen: r, err: err}
	}()
	go func() {
		t, err := uc.reporteRepo.GetTopProductos(ctx, topDashboard)
		topCh <- topOut{top: t, err: err}
	}()

	r := <-resumenCh
	t := <-topCh
	if r.err != nil {
		return nil, r.err
	}
	if t.err != nil {
		return nil, t.err
	}

	return &dto.DashboardDTO{
		TotalIngresos: r.resumen.TotalIngresos,
		TotalCostos:   r.resumen.TotalCostos,
		TopProductos:  toTopProductoDTOs(t.top),
	}, nil
}

// GetTopCliente ranking de lo más comprado por el usuario más la lista de sus
// productos para el filtro de reservas.
func (uc *UseCase) GetTopCliente(ctx context.Context, usuarioID string) (*dto.TopClienteDTO, error) {
	if _, err := uc.expirador.ExpirarReservas(ctx); err != nil {
		return nil, err
	}
	top, err := uc.reporteRepo.GetTopProductosUsuario(ctx, usuarioID, topCliente)
	if err != nil {
		return nil, err
	}
	comprados, err := uc.reporteRepo.ListProductosComprados(ctx, usuarioID)
	if err != nil {
		return nil, err
	}

	productos := make([]dto.ProductoFiltroDTO, 0, len(comprados))
	for _, p := range comprados {
		productos = append(productos, dto.ProductoFiltroDTO{
			ProductoID: p.ProductoID,
			Nombre:     p.Nombre,
		})
	}
	return &dto.TopClienteDTO{
		TopProductos: toTopProductoDTOs(top),
		Productos:    productos,
	}, nil
}

// La ganancia usa el costo actual del catálogo por unidad, no el costo
// histórico de cada venta.
func toTopProductoDTOs(resultados []repository.TopProductoResult) []dto.TopProductoDTO {
	top := make([]dto.TopProductoDTO, 0, len(resultados))
	for _, r := range resultados {
		costo := r.PrecioCoste.Mul(decimal.NewFromInt(r.Cantidad)).Round(2)
		top = append(top, dto.TopProductoDTO{
			ProductoID: r.ProductoID,
			Nombre:     r.Nombre,
			Cantidad:   r.Cantidad,
			CostoTotal: costo,
			VentaTotal: r.IngresoTotal.Round(2),
			Ganancia:   r.IngresoTotal.Sub(costo).Round(2),
		})
	}
	return top
}
