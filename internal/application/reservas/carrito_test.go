package reservas_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suminitec/suministros-api/internal/application/dto"
	"github.com/suminitec/suministros-api/internal/application/reservas"
	"github.com/suminitec/suministros-api/internal/domain"
	"github.com/suminitec/suministros-api/internal/domain/entity"
)

func nuevoCarritoEntorno(productos ...*entity.Producto) (*reservas.CarritoUseCase, *fakePedidoRepo, *fakeProductoRepo) {
	pedidos := newFakePedidoRepo()
	productosRepo := newFakeProductoRepo(productos...)
	runner := &fakeTxRunner{pedidos: pedidos, productos: productosRepo}
	return reservas.NewCarritoUseCase(runner, productosRepo, pedidos), pedidos, productosRepo
}

func productoRaton(cantidad int) *entity.Producto {
	return &entity.Producto{
		ID:             "prod-raton",
		Nombre:         "Ratón inalámbrico",
		PrecioCoste:    dec("10.00"),
		PrecioVenta:    dec("24.20"),
		CantidadActual: cantidad,
		StockMaximo:    50,
	}
}

func TestCarritoAgregar_AcumulaCantidad(t *testing.T) {
	uc, _, _ := nuevoCarritoEntorno(productoRaton(10))

	carrito, err := uc.Agregar(context.Background(), nil, "prod-raton", 2)
	require.NoError(t, err)
	carrito, err = uc.Agregar(context.Background(), carrito, "prod-raton", 3)
	require.NoError(t, err)

	assert.Equal(t, 5, carrito["prod-raton"])
}

func TestCarritoAgregar_NoMutaElRecibido(t *testing.T) {
	uc, _, _ := nuevoCarritoEntorno(productoRaton(10))

	original := dto.CarritoDTO{"prod-raton": 1}
	_, err := uc.Agregar(context.Background(), original, "prod-raton", 2)
	require.NoError(t, err)
	assert.Equal(t, 1, original["prod-raton"])
}

// El disponible del carrito descuenta las reservas pendientes de otros:
// 10 en estantería con 4 reservadas deja 6 vendibles.
func TestCarritoAgregar_RespetaDisponible(t *testing.T) {
	uc, pedidos, _ := nuevoCarritoEntorno(productoRaton(10))
	require.NoError(t, pedidos.Create(&entity.Pedido{
		ID: "res-1", Cantidad: 4, Tipo: entity.PedidoTipoVenta,
		Estado: entity.PedidoEstadoPendiente, ProductoID: "prod-raton",
	}))

	carrito, err := uc.Agregar(context.Background(), nil, "prod-raton", 6)
	require.NoError(t, err)

	_, err = uc.Agregar(context.Background(), carrito, "prod-raton", 1)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestCarritoAgregar_Errores(t *testing.T) {
	uc, _, _ := nuevoCarritoEntorno(productoRaton(10))

	_, err := uc.Agregar(context.Background(), nil, "prod-raton", 0)
	assert.ErrorIs(t, err, domain.ErrCantidadInvalida)

	_, err = uc.Agregar(context.Background(), nil, "no-existe", 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCarritoQuitar_EsSilencioso(t *testing.T) {
	uc, _, _ := nuevoCarritoEntorno(productoRaton(10))

	carrito := uc.Quitar(dto.CarritoDTO{"prod-raton": 2}, "prod-raton")
	assert.Empty(t, carrito)

	// Quitar lo que no está no es un error.
	carrito = uc.Quitar(carrito, "prod-raton")
	assert.Empty(t, carrito)
}

func TestCarritoVer_ValoraAPrecioDeCatalogo(t *testing.T) {
	uc, _, _ := nuevoCarritoEntorno(productoRaton(10), productoCable(5))

	detalle, err := uc.Ver(context.Background(), dto.CarritoDTO{
		"prod-raton": 2,
		"prod-cable": 1,
	})
	require.NoError(t, err)
	require.Len(t, detalle.Items, 2)

	// 2 x 24.20 + 1 x 121.00
	assert.True(t, detalle.Total.Equal(dec("169.40")), "total = %s", detalle.Total)
}

func TestCarritoVer_OmiteProductosBorrados(t *testing.T) {
	uc, _, _ := nuevoCarritoEntorno(productoRaton(10))

	detalle, err := uc.Ver(context.Background(), dto.CarritoDTO{
		"prod-raton":  1,
		"prod-borrado": 3,
	})
	require.NoError(t, err)
	assert.Len(t, detalle.Items, 1)
	assert.True(t, detalle.Total.Equal(dec("24.20")))
}

func TestCarritoConfirmar_CreaReservasPendientes(t *testing.T) {
	uc, pedidos, productos := nuevoCarritoEntorno(productoRaton(10), productoCable(5))

	creados, err := uc.Confirmar(context.Background(), cliente, dto.CarritoDTO{
		"prod-raton": 2,
		"prod-cable": 1,
	})
	require.NoError(t, err)
	require.Len(t, creados, 2)

	for _, p := range creados {
		assert.Equal(t, entity.PedidoEstadoPendiente, p.Estado)
		assert.Equal(t, "cliente-1", p.UsuarioID)
		assert.True(t, p.DescuentoAplicado.IsZero(), "el carrito vende a precio de catálogo")
	}
	assert.Equal(t, 8, productos.productos["prod-raton"].CantidadActual)
	assert.Equal(t, 4, productos.productos["prod-cable"].CantidadActual)
	assert.Len(t, pedidos.pedidos, 2)
}

func TestCarritoConfirmar_VacioEsError(t *testing.T) {
	uc, _, _ := nuevoCarritoEntorno()
	_, err := uc.Confirmar(context.Background(), cliente, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCarritoConfirmar_RevalidaStock(t *testing.T) {
	uc, _, _ := nuevoCarritoEntorno(productoRaton(1))

	// El carrito se llenó cuando había stock; al confirmar ya no lo hay.
	_, err := uc.Confirmar(context.Background(), cliente, dto.CarritoDTO{"prod-raton": 3})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}
