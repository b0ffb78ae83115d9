package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/suminitec/suministros-api/internal/application/auth"
	"github.com/suminitec/suministros-api/internal/application/reportes"
	"github.com/suminitec/suministros-api/internal/application/reservas"
	"github.com/suminitec/suministros-api/internal/application/usecase"
	infrapdf "github.com/suminitec/suministros-api/internal/infrastructure/pdf"
	"github.com/suminitec/suministros-api/internal/infrastructure/postgres"
	httpRouter "github.com/suminitec/suministros-api/internal/interfaces/http"
	"github.com/suminitec/suministros-api/pkg/config"
	"github.com/suminitec/suministros-api/pkg/jwt"
	"github.com/suminitec/suministros-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	tokens, err := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Expiration)
	if err != nil {
		log.Fatal().Err(err).Msg("configuración JWT")
	}

	usuarioRepo := postgres.NewUsuarioRepository(pool)
	proveedorRepo := postgres.NewProveedorRepository(pool)
	productoRepo := postgres.NewProductoRepository(pool)
	pedidoRepo := postgres.NewPedidoRepository(pool)
	reporteRepo := postgres.NewReporteRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewUseCase(usuarioRepo, tokens)
	usuarioUC := usecase.NewUsuarioUseCase(usuarioRepo)
	proveedorUC := usecase.NewProveedorUseCase(proveedorRepo)
	productoUC := usecase.NewProductoUseCase(txRunner, productoRepo, proveedorRepo, pedidoRepo)

	ttl := time.Duration(cfg.Reservas.TTLHoras) * time.Hour
	reservaUC := reservas.NewReservaUseCase(txRunner, usuarioRepo, pedidoRepo, productoRepo, ttl)
	carritoUC := reservas.NewCarritoUseCase(txRunner, productoRepo, pedidoRepo)
	reportesUC := reportes.NewUseCase(reporteRepo, reservaUC)

	recibos := infrapdf.NewMarotoReciboGenerator(cfg.App.Name)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    cfg.App.Name,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		UsuarioUC:   usuarioUC,
		ProveedorUC: proveedorUC,
		ProductoUC:  productoUC,
		ReservaUC:   reservaUC,
		CarritoUC:   carritoUC,
		ReportesUC:  reportesUC,
		Recibos:     recibos,
		Tokens:      tokens,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
