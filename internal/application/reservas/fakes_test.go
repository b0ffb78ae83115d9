package reservas_test

import (
	"context"
	"sort"
	"time"

	"github.com/suminitec/suministros-api/internal/domain/entity"
	"github.com/suminitec/suministros-api/internal/domain/repository"
)

// Dobles en memoria de los puertos de persistencia. El runner de transacciones
// solo invoca el callback: la atomicidad real la cubre el adaptador pgx.

type fakeTxRunner struct {
	pedidos   *fakePedidoRepo
	productos *fakeProductoRepo
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	pedidoRepo repository.PedidoRepository,
	productoRepo repository.ProductoRepository,
) error) error {
	return fn(r.pedidos, r.productos)
}

type fakeProductoRepo struct {
	productos map[string]*entity.Producto
}

func newFakeProductoRepo(productos ...*entity.Producto) *fakeProductoRepo {
	r := &fakeProductoRepo{productos: make(map[string]*entity.Producto)}
	for _, p := range productos {
		r.productos[p.ID] = p
	}
	return r
}

func (r *fakeProductoRepo) Create(p *entity.Producto) error {
	r.productos[p.ID] = p
	return nil
}

func (r *fakeProductoRepo) GetByID(id string) (*entity.Producto, error) {
	return r.productos[id], nil
}

func (r *fakeProductoRepo) GetForUpdate(id string) (*entity.Producto, error) {
	return r.productos[id], nil
}

func (r *fakeProductoRepo) Update(p *entity.Producto) error {
	r.productos[p.ID] = p
	return nil
}

func (r *fakeProductoRepo) UpdateCantidad(id string, cantidad int) error {
	if p, ok := r.productos[id]; ok {
		p.CantidadActual = cantidad
	}
	return nil
}

func (r *fakeProductoRepo) List() ([]*entity.Producto, error) {
	var list []*entity.Producto
	for _, p := range r.productos {
		list = append(list, p)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Nombre < list[j].Nombre })
	return list, nil
}

func (r *fakeProductoRepo) ListEnStock() ([]*entity.Producto, error) {
	todos, _ := r.List()
	var list []*entity.Producto
	for _, p := range todos {
		if p.CantidadActual > 0 {
			list = append(list, p)
		}
	}
	return list, nil
}

func (r *fakeProductoRepo) ListByIDs(ids []string) ([]*entity.Producto, error) {
	var list []*entity.Producto
	for _, id := range ids {
		if p, ok := r.productos[id]; ok {
			list = append(list, p)
		}
	}
	return list, nil
}

func (r *fakeProductoRepo) Delete(id string) error {
	delete(r.productos, id)
	return nil
}

type fakePedidoRepo struct {
	pedidos map[string]*entity.Pedido
	orden   []string
}

func newFakePedidoRepo() *fakePedidoRepo {
	return &fakePedidoRepo{pedidos: make(map[string]*entity.Pedido)}
}

func (r *fakePedidoRepo) Create(p *entity.Pedido) error {
	r.pedidos[p.ID] = p
	r.orden = append(r.orden, p.ID)
	return nil
}

func (r *fakePedidoRepo) GetByID(id string) (*entity.Pedido, error) {
	return r.pedidos[id], nil
}

func (r *fakePedidoRepo) GetForUpdate(id string) (*entity.Pedido, error) {
	return r.pedidos[id], nil
}

func (r *fakePedidoRepo) UpdateEstado(id, estado string) error {
	if p, ok := r.pedidos[id]; ok {
		p.Estado = estado
	}
	return nil
}

func (r *fakePedidoRepo) SumPendientesByProducto(productoID string) (int, error) {
	total := 0
	for _, p := range r.pedidos {
		if p.ProductoID == productoID && p.Tipo == entity.PedidoTipoVenta && p.Estado == entity.PedidoEstadoPendiente {
			total += p.Cantidad
		}
	}
	return total, nil
}

func (r *fakePedidoRepo) ListPendientesVencidos(limite time.Time) ([]*entity.Pedido, error) {
	var list []*entity.Pedido
	for _, id := range r.orden {
		p := r.pedidos[id]
		if p.Tipo == entity.PedidoTipoVenta && p.Estado == entity.PedidoEstadoPendiente && p.Fecha.Before(limite) {
			list = append(list, p)
		}
	}
	return list, nil
}

func (r *fakePedidoRepo) ListVentas(filtro repository.FiltroReservas) ([]*entity.Pedido, error) {
	var list []*entity.Pedido
	for i := len(r.orden) - 1; i >= 0; i-- {
		p := r.pedidos[r.orden[i]]
		if p.Tipo != entity.PedidoTipoVenta {
			continue
		}
		if filtro.UsuarioID != "" && p.UsuarioID != filtro.UsuarioID {
			continue
		}
		if filtro.ProductoID != "" && p.ProductoID != filtro.ProductoID {
			continue
		}
		if filtro.Estado != "" && p.Estado != filtro.Estado {
			continue
		}
		list = append(list, p)
	}
	return list, nil
}

type fakeUsuarioRepo struct {
	usuarios map[string]*entity.Usuario
}

func newFakeUsuarioRepo(usuarios ...*entity.Usuario) *fakeUsuarioRepo {
	r := &fakeUsuarioRepo{usuarios: make(map[string]*entity.Usuario)}
	for _, u := range usuarios {
		r.usuarios[u.ID] = u
	}
	return r
}

func (r *fakeUsuarioRepo) Create(u *entity.Usuario) error {
	r.usuarios[u.ID] = u
	return nil
}

func (r *fakeUsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	return r.usuarios[id], nil
}

func (r *fakeUsuarioRepo) GetByUsername(username string) (*entity.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUsuarioRepo) Update(u *entity.Usuario) error {
	r.usuarios[u.ID] = u
	return nil
}

func (r *fakeUsuarioRepo) List() ([]*entity.Usuario, error) {
	var list []*entity.Usuario
	for _, u := range r.usuarios {
		list = append(list, u)
	}
	return list, nil
}

func (r *fakeUsuarioRepo) ListClientesActivos() ([]*entity.Usuario, error) {
	var list []*entity.Usuario
	for _, u := range r.usuarios {
		if u.Rol == entity.RolCliente && u.Activo {
			list = append(list, u)
		}
	}
	return list, nil
}

func (r *fakeUsuarioRepo) Delete(id string) error {
	delete(r.usuarios, id)
	return nil
}
