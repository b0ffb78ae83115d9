package usecase_test

import (
	"context"
	"sort"
	"time"

	"github.com/suminitec/suministros-api/internal/domain/entity"
	"github.com/suminitec/suministros-api/internal/domain/repository"
)

// Dobles en memoria de los puertos de persistencia.

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

func (r *fakeProductoRepo) Create(p *entity.Producto) error            { r.productos[p.ID] = p; return nil }
func (r *fakeProductoRepo) GetByID(id string) (*entity.Producto, error) { return r.productos[id], nil }
func (r *fakeProductoRepo) GetForUpdate(id string) (*entity.Producto, error) {
	return r.productos[id], nil
}
func (r *fakeProductoRepo) Update(p *entity.Producto) error { r.productos[p.ID] = p; return nil }
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

func (r *fakeProductoRepo) Delete(id string) error { delete(r.productos, id); return nil }

type fakePedidoRepo struct {
	pedidos []*entity.Pedido
}

func (r *fakePedidoRepo) Create(p *entity.Pedido) error { r.pedidos = append(r.pedidos, p); return nil }

func (r *fakePedidoRepo) GetByID(id string) (*entity.Pedido, error)      { return r.find(id), nil }
func (r *fakePedidoRepo) GetForUpdate(id string) (*entity.Pedido, error) { return r.find(id), nil }

func (r *fakePedidoRepo) find(id string) *entity.Pedido {
	for _, p := range r.pedidos {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (r *fakePedidoRepo) UpdateEstado(id, estado string) error {
	if p := r.find(id); p != nil {
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
	for _, p := range r.pedidos {
		if p.Tipo == entity.PedidoTipoVenta && p.Estado == entity.PedidoEstadoPendiente && p.Fecha.Before(limite) {
			list = append(list, p)
		}
	}
	return list, nil
}

func (r *fakePedidoRepo) ListVentas(filtro repository.FiltroReservas) ([]*entity.Pedido, error) {
	var list []*entity.Pedido
	for _, p := range r.pedidos {
		if p.Tipo == entity.PedidoTipoVenta {
			list = append(list, p)
		}
	}
	return list, nil
}

type fakeProveedorRepo struct {
	proveedores map[string]*entity.Proveedor
	productos   map[string]int // proveedor -> nº de productos
}

func newFakeProveedorRepo(proveedores ...*entity.Proveedor) *fakeProveedorRepo {
	r := &fakeProveedorRepo{
		proveedores: make(map[string]*entity.Proveedor),
		productos:   make(map[string]int),
	}
	for _, p := range proveedores {
		r.proveedores[p.ID] = p
	}
	return r
}

func (r *fakeProveedorRepo) Create(p *entity.Proveedor) error { r.proveedores[p.ID] = p; return nil }
func (r *fakeProveedorRepo) GetByID(id string) (*entity.Proveedor, error) {
	return r.proveedores[id], nil
}

func (r *fakeProveedorRepo) GetByCIF(cif string) (*entity.Proveedor, error) {
	for _, p := range r.proveedores {
		if p.CIF == cif {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProveedorRepo) Update(p *entity.Proveedor) error { r.proveedores[p.ID] = p; return nil }

func (r *fakeProveedorRepo) List() ([]*entity.Proveedor, error) {
	var list []*entity.Proveedor
	for _, p := range r.proveedores {
		list = append(list, p)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].NombreEmpresa < list[j].NombreEmpresa })
	return list, nil
}

func (r *fakeProveedorRepo) CountProductos(proveedorID string) (int, error) {
	return r.productos[proveedorID], nil
}

func (r *fakeProveedorRepo) Delete(id string) error { delete(r.proveedores, id); return nil }

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

func (r *fakeUsuarioRepo) Create(u *entity.Usuario) error { r.usuarios[u.ID] = u; return nil }
func (r *fakeUsuarioRepo) GetByID(id string) (*entity.Usuario, error) { return r.usuarios[id], nil }

func (r *fakeUsuarioRepo) GetByUsername(username string) (*entity.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUsuarioRepo) Update(u *entity.Usuario) error { r.usuarios[u.ID] = u; return nil }

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

func (r *fakeUsuarioRepo) Delete(id string) error { delete(r.usuarios, id); return nil }
