package repository

import "github.com/suminitec/suministros-api/internal/domain/entity"

// UsuarioRepository define el puerto de persistencia para Usuario (DIP).
type UsuarioRepository interface {
	Create(usuario *entity.Usuario) error
	GetByID(id string) (*entity.Usuario, error)
	GetByUsername(username string) (*entity.Usuario, error)
	Update(usuario *entity.Usuario) error
	List() ([]*entity.Usuario, error)
	ListClientesActivos() ([]*entity.Usuario, error)
	Delete(id string) error
}
