package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/suminitec/suministros-api/internal/domain"
	"github.com/suminitec/suministros-api/internal/domain/entity"
	"github.com/suminitec/suministros-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación del puerto UsuarioRepository sobre PostgreSQL (usable con pool o tx).
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository construye el adaptador de persistencia para usuarios. Pasar pool o tx (Querier).
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

// Create persiste un usuario nuevo.
func (r *UsuarioRepo) Create(usuario *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (id, username, password_hash, rol, activo, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		usuario.ID, usuario.Username, usuario.PasswordHash, usuario.Rol, usuario.Activo, usuario.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUsernameAlreadyExists
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	return r.getBy(`WHERE id = $1`, id)
}

// GetByUsername obtiene un usuario por su nombre de usuario (único).
func (r *UsuarioRepo) GetByUsername(username string) (*entity.Usuario, error) {
	return r.getBy(`WHERE username = $1`, username)
}

func (r *UsuarioRepo) getBy(where string, arg any) (*entity.Usuario, error) {
	query := `
		SELECT id, username, password_hash, rol, activo, created_at
		FROM usuarios ` + where
	var u entity.Usuario
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.Rol, &u.Activo, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}

// Update actualiza hash, rol y estado de un usuario.
func (r *UsuarioRepo) Update(usuario *entity.Usuario) error {
	query := `
		UPDATE usuarios SET password_hash = $2, rol = $3, activo = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		usuario.ID, usuario.PasswordHash, usuario.Rol, usuario.Activo,
	)
	if err != nil {
		return fmt.Errorf("update usuario: %w", err)
	}
	return nil
}

// List lista todos los usuarios por fecha de alta.
func (r *UsuarioRepo) List() ([]*entity.Usuario, error) {
	return r.list(`ORDER BY created_at ASC`)
}

// ListClientesActivos lista los clientes activos (destinos válidos de una reserva).
func (r *UsuarioRepo) ListClientesActivos() ([]*entity.Usuario, error) {
	return r.list(`WHERE rol = 'cliente' AND activo ORDER BY username ASC`)
}

func (r *UsuarioRepo) list(tail string) ([]*entity.Usuario, error) {
	query := `
		SELECT id, username, password_hash, rol, activo, created_at
		FROM usuarios ` + tail
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()
	var list []*entity.Usuario
	for rows.Next() {
		var u entity.Usuario
		if err := rows.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Rol, &u.Activo, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// Delete elimina un usuario por ID.
func (r *UsuarioRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM usuarios WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete usuario: %w", err)
	}
	return nil
}
