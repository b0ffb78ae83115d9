// Crea la cuenta de administrador inicial a partir de ADMIN_USER y
// ADMIN_PASSWORD. Idempotente: si el usuario ya existe no hace nada.
package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/suminitec/suministros-api/internal/domain/entity"
	"github.com/suminitec/suministros-api/internal/infrastructure/postgres"
	"github.com/suminitec/suministros-api/pkg/config"
	"github.com/suminitec/suministros-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	if cfg.Seed.AdminPassword == "" {
		log.Fatal().Msg("ADMIN_PASSWORD es requerido")
	}
	if len(cfg.Seed.AdminPassword) < 6 {
		log.Fatal().Msg("ADMIN_PASSWORD debe tener al menos 6 caracteres")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	usuarioRepo := postgres.NewUsuarioRepository(pool)
	existente, err := usuarioRepo.GetByUsername(cfg.Seed.AdminUser)
	if err != nil {
		log.Fatal().Err(err).Msg("consultar admin")
	}
	if existente != nil {
		log.Info().Str("username", cfg.Seed.AdminUser).Msg("el admin ya existe, nada que hacer")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Seed.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hash de contraseña")
	}
	admin := &entity.Usuario{
		ID:           uuid.New().String(),
		Username:     cfg.Seed.AdminUser,
		PasswordHash: string(hash),
		Rol:          entity.RolAdmin,
		Activo:       true,
		CreatedAt:    time.Now().UTC(),
	}
	if err := usuarioRepo.Create(admin); err != nil {
		log.Fatal().Err(err).Msg("crear admin")
	}
	log.Info().Str("username", admin.Username).Msg("admin creado")
}
