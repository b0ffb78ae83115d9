package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suminitec/suministros-api/internal/application/dto"
	"github.com/suminitec/suministros-api/internal/application/usecase"
	"github.com/suminitec/suministros-api/internal/domain"
	"github.com/suminitec/suministros-api/internal/domain/entity"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func nuevoProductoEntorno(proveedores ...*entity.Proveedor) (*usecase.ProductoUseCase, *fakeProductoRepo, *fakePedidoRepo, *fakeProveedorRepo) {
	productos := newFakeProductoRepo()
	pedidos := &fakePedidoRepo{}
	proveedorRepo := newFakeProveedorRepo(proveedores...)
	runner := &fakeTxRunner{pedidos: pedidos, productos: productos}
	uc := usecase.NewProductoUseCase(runner, productos, proveedorRepo, pedidos)
	return uc, productos, pedidos, proveedorRepo
}

func TestProductoCrear_AplicaIVAALosPrecios(t *testing.T) {
	uc, _, _, _ := nuevoProductoEntorno()

	out, err := uc.Crear(context.Background(), "admin-1", dto.CreateProductoRequest{
		Nombre:      "Teclado mecánico",
		PrecioCoste: dec("50"),
		PrecioVenta: dec("100"),
		StockMaximo: 10,
	})
	require.NoError(t, err)

	// IVA estándar 21%: 50 -> 60.50, 100 -> 121.00
	assert.True(t, out.PrecioCoste.Equal(dec("60.50")), "coste = %s", out.PrecioCoste)
	assert.True(t, out.PrecioVenta.Equal(dec("121.00")), "venta = %s", out.PrecioVenta)
}

func TestProductoCrear_IVAPropio(t *testing.T) {
	uc, _, _, _ := nuevoProductoEntorno()

	out, err := uc.Crear(context.Background(), "admin-1", dto.CreateProductoRequest{
		Nombre:      "Licencia software",
		PrecioCoste: dec("100"),
		PrecioVenta: dec("200"),
		IVA:         decPtr("10"),
		StockMaximo: 5,
	})
	require.NoError(t, err)
	assert.True(t, out.PrecioCoste.Equal(dec("110.00")))
	assert.True(t, out.PrecioVenta.Equal(dec("220.00")))
}

// El stock inicial queda registrado como compra completada del usuario que
// dio el alta, con total de venta cero.
func TestProductoCrear_RegistraCompraInicial(t *testing.T) {
	uc, _, pedidos, _ := nuevoProductoEntorno()

	out, err := uc.Crear(context.Background(), "admin-1", dto.CreateProductoRequest{
		Nombre:         "Monitor 24\"",
		PrecioCoste:    dec("80"),
		PrecioVenta:    dec("150"),
		CantidadActual: 6,
		StockMaximo:    10,
	})
	require.NoError(t, err)
	require.Len(t, pedidos.pedidos, 1)

	compra := pedidos.pedidos[0]
	assert.Equal(t, entity.PedidoTipoCompra, compra.Tipo)
	assert.Equal(t, entity.PedidoEstadoCompletado, compra.Estado)
	assert.Equal(t, 6, compra.Cantidad)
	assert.Equal(t, "admin-1", compra.UsuarioID)
	assert.Equal(t, out.ID, compra.ProductoID)
	assert.True(t, compra.TotalVenta.IsZero())
}

func TestProductoCrear_SinStockInicialNoHayCompra(t *testing.T) {
	uc, _, pedidos, _ := nuevoProductoEntorno()

	_, err := uc.Crear(context.Background(), "admin-1", dto.CreateProductoRequest{
		Nombre:      "Hub USB",
		PrecioCoste: dec("5"),
		PrecioVenta: dec("12"),
		StockMaximo: 30,
	})
	require.NoError(t, err)
	assert.Empty(t, pedidos.pedidos)
}

func TestProductoCrear_Validaciones(t *testing.T) {
	uc, _, _, _ := nuevoProductoEntorno()

	casos := []dto.CreateProductoRequest{
		{Nombre: "", PrecioVenta: dec("10"), StockMaximo: 5},
		{Nombre: "X", PrecioVenta: dec("-1"), StockMaximo: 5},
		{Nombre: "X", PrecioVenta: dec("10"), CantidadActual: -1, StockMaximo: 5},
		{Nombre: "X", PrecioVenta: dec("10"), CantidadActual: 6, StockMaximo: 5},
		{Nombre: "X", PrecioVenta: dec("10"), IVA: decPtr("140"), StockMaximo: 5},
	}
	for _, in := range casos {
		_, err := uc.Crear(context.Background(), "admin-1", in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "caso %+v", in)
	}
}

func TestProductoCrear_ProveedorInexistente(t *testing.T) {
	uc, _, _, _ := nuevoProductoEntorno()

	_, err := uc.Crear(context.Background(), "admin-1", dto.CreateProductoRequest{
		Nombre:      "Router",
		PrecioVenta: dec("40"),
		StockMaximo: 5,
		ProveedorID: "no-existe",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductoActualizar_NoReaplicaIVA(t *testing.T) {
	uc, productos, _, _ := nuevoProductoEntorno()
	productos.Create(&entity.Producto{
		ID: "p1", Nombre: "Cable", PrecioCoste: dec("60.50"), PrecioVenta: dec("121.00"),
		CantidadActual: 3, StockMaximo: 10,
	})

	out, err := uc.Actualizar("p1", dto.UpdateProductoRequest{
		Nombre:         "Cable HDMI",
		PrecioCoste:    dec("55.00"),
		PrecioVenta:    dec("110.00"),
		CantidadActual: 3,
		StockMaximo:    10,
	})
	require.NoError(t, err)
	assert.True(t, out.PrecioVenta.Equal(dec("110.00")), "la edición guarda el precio tal cual")
}

func TestProductoEliminar_SinGuardaDeHistorial(t *testing.T) {
	uc, productos, pedidos, _ := nuevoProductoEntorno()
	productos.Create(&entity.Producto{ID: "p1", Nombre: "Cable", StockMaximo: 10})
	pedidos.Create(&entity.Pedido{ID: "ped-1", ProductoID: "p1", Cantidad: 1, Tipo: entity.PedidoTipoVenta})

	// Borrar un producto con pedidos históricos está permitido.
	require.NoError(t, uc.Eliminar("p1"))
	p, _ := productos.GetByID("p1")
	assert.Nil(t, p)
}

func TestProductoEliminar_Inexistente(t *testing.T) {
	uc, _, _, _ := nuevoProductoEntorno()
	assert.ErrorIs(t, uc.Eliminar("no-existe"), domain.ErrNotFound)
}

func TestListarInventario_Alertas(t *testing.T) {
	uc, productos, _, _ := nuevoProductoEntorno()
	productos.Create(&entity.Producto{ID: "a", Nombre: "A", CantidadActual: 1, StockMaximo: 10})  // 10% danger
	productos.Create(&entity.Producto{ID: "b", Nombre: "B", CantidadActual: 2, StockMaximo: 10})  // 20% warning
	productos.Create(&entity.Producto{ID: "c", Nombre: "C", CantidadActual: 5, StockMaximo: 10})  // 50% sin alerta
	productos.Create(&entity.Producto{ID: "d", Nombre: "D", CantidadActual: 9, StockMaximo: 10})  // 90% info

	out, err := uc.ListarInventario()
	require.NoError(t, err)
	require.Len(t, out, 4)

	alertas := map[string]string{}
	for _, fila := range out {
		alertas[fila.Producto.ID] = fila.Alerta
	}
	assert.Equal(t, "danger", alertas["a"])
	assert.Equal(t, "warning", alertas["b"])
	assert.Equal(t, "", alertas["c"])
	assert.Equal(t, "info", alertas["d"])
}

func TestListarCatalogo_SoloConStock(t *testing.T) {
	uc, productos, _, _ := nuevoProductoEntorno()
	productos.Create(&entity.Producto{ID: "a", Nombre: "A", CantidadActual: 3, StockMaximo: 10})
	productos.Create(&entity.Producto{ID: "b", Nombre: "B", CantidadActual: 0, StockMaximo: 10})

	out, err := uc.ListarCatalogo()
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "a", out[0].ID)
}

func TestDisponibleParaReserva_DescuentaPendientes(t *testing.T) {
	uc, productos, pedidos, _ := nuevoProductoEntorno()
	productos.Create(&entity.Producto{ID: "p1", Nombre: "Cable", CantidadActual: 10, StockMaximo: 20})
	pedidos.Create(&entity.Pedido{
		ID: "ped-1", ProductoID: "p1", Cantidad: 4,
		Tipo: entity.PedidoTipoVenta, Estado: entity.PedidoEstadoPendiente,
	})

	disponible, err := uc.DisponibleParaReserva("p1")
	require.NoError(t, err)
	assert.Equal(t, 6, disponible)
}
