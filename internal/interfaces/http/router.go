package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/suminitec/suministros-api/internal/application/auth"
	"github.com/suminitec/suministros-api/internal/application/reportes"
	"github.com/suminitec/suministros-api/internal/application/reservas"
	"github.com/suminitec/suministros-api/internal/application/usecase"
	"github.com/suminitec/suministros-api/internal/domain/entity"
	"github.com/suminitec/suministros-api/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	UsuarioUC   *usecase.UsuarioUseCase
	ProveedorUC *usecase.ProveedorUseCase
	ProductoUC  *usecase.ProductoUseCase
	ReservaUC   *reservas.ReservaUseCase
	CarritoUC   *reservas.CarritoUseCase
	ReportesUC  *reportes.UseCase
	Recibos     ReciboGenerator
	Tokens      *jwt.Manager
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.Tokens))
	soloAdmin := RequireRole(entity.RolAdmin)

	// Productos: catálogo y disponibilidad para todos; CRUD e inventario de admin
	productos := protected.Group("/productos")
	productoHandler := NewProductoHandler(deps.ProductoUC)
	productos.Get("/", productoHandler.Catalogo)
	productos.Get("/inventario", soloAdmin, productoHandler.Inventario)
	productos.Post("/", soloAdmin, productoHandler.Create)
	productos.Get("/:id", productoHandler.GetByID)
	productos.Put("/:id", soloAdmin, productoHandler.Update)
	productos.Delete("/:id", soloAdmin, productoHandler.Delete)
	productos.Get("/:id/disponible", productoHandler.Disponible)
	rh := NewReservaHandler(deps.ReservaUC, deps.Recibos)
	productos.Post("/:id/restock", soloAdmin, rh.Reabastecer)

	// Reservas
	reservasGroup := protected.Group("/reservas")
	reservasGroup.Post("/productos/:id", rh.CrearVenta)
	reservasGroup.Get("/", soloAdmin, rh.List)
	reservasGroup.Get("/mias", rh.ListMias)
	reservasGroup.Get("/:id", rh.GetByID)
	reservasGroup.Get("/:id/recibo", rh.Recibo)
	reservasGroup.Post("/:id/confirmar", soloAdmin, rh.Confirmar)
	reservasGroup.Post("/:id/cancelar", rh.Cancelar)

	// Carrito (estado del lado del cliente)
	carrito := protected.Group("/carrito")
	carritoHandler := NewCarritoHandler(deps.CarritoUC)
	carrito.Post("/agregar", carritoHandler.Agregar)
	carrito.Post("/quitar", carritoHandler.Quitar)
	carrito.Post("/vaciar", carritoHandler.Vaciar)
	carrito.Post("/ver", carritoHandler.Ver)
	carrito.Post("/confirmar", carritoHandler.Confirmar)

	// Proveedores (solo admin)
	proveedores := protected.Group("/proveedores", soloAdmin)
	proveedorHandler := NewProveedorHandler(deps.ProveedorUC)
	proveedores.Post("/", proveedorHandler.Create)
	proveedores.Get("/", proveedorHandler.List)
	proveedores.Get("/:id", proveedorHandler.GetByID)
	proveedores.Put("/:id", proveedorHandler.Update)
	proveedores.Delete("/:id", proveedorHandler.Delete)

	// Usuarios (solo admin)
	usuarios := protected.Group("/usuarios", soloAdmin)
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC)
	usuarios.Get("/", usuarioHandler.List)
	usuarios.Get("/clientes", usuarioHandler.ListClientes)
	usuarios.Post("/:id/toggle", usuarioHandler.ToggleEstado)
	usuarios.Post("/:id/reset-password", usuarioHandler.ResetPassword)
	usuarios.Delete("/:id", usuarioHandler.Delete)

	// Reportes
	dashboardHandler := NewDashboardHandler(deps.ReportesUC)
	protected.Get("/dashboard", soloAdmin, dashboardHandler.Dashboard)
	protected.Get("/mi-top", dashboardHandler.TopCliente)
}
