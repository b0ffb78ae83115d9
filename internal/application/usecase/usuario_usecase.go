package usecase

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/suminitec/suministros-api/internal/application/dto"
	"github.com/suminitec/suministros-api/internal/domain"
	"github.com/suminitec/suministros-api/internal/domain/repository"
)

// PasswordMinLen longitud mínima de contraseña.
const PasswordMinLen = 6

// UsuarioUseCase administración de cuentas. Las operaciones destructivas
// rechazan la propia cuenta del admin: no puede desactivarse, borrarse ni
// resetearse la contraseña a sí mismo por esta vía.
type UsuarioUseCase struct {
	usuarioRepo repository.UsuarioRepository
}

func NewUsuarioUseCase(usuarioRepo repository.UsuarioRepository) *UsuarioUseCase {
	return &UsuarioUseCase{usuarioRepo: usuarioRepo}
}

// Listar lista todas las cuentas.
func (uc *UsuarioUseCase) Listar() ([]dto.UsuarioResponse, error) {
	usuarios, err := uc.usuarioRepo.List()
	if err != nil {
		return nil, err
	}
	resultado := make([]dto.UsuarioResponse, 0, len(usuarios))
	for _, u := range usuarios {
		resultado = append(resultado, dto.UsuarioResponse{
			ID:        u.ID,
			Username:  u.Username,
			Rol:       u.Rol,
			Activo:    u.Activo,
			CreatedAt: u.CreatedAt,
		})
	}
	return resultado, nil
}

// ListarClientesActivos clientes que pueden recibir reservas a su nombre.
func (uc *UsuarioUseCase) ListarClientesActivos() ([]dto.UsuarioResponse, error) {
	usuarios, err := uc.usuarioRepo.ListClientesActivos()
	if err != nil {
		return nil, err
	}
	resultado := make([]dto.UsuarioResponse, 0, len(usuarios))
	for _, u := range usuarios {
		resultado = append(resultado, dto.UsuarioResponse{
			ID:        u.ID,
			Username:  u.Username,
			Rol:       u.Rol,
			Activo:    u.Activo,
			CreatedAt: u.CreatedAt,
		})
	}
	return resultado, nil
}

// CambiarEstado activa o desactiva una cuenta. Un usuario inactivo conserva
// sus datos pero no puede iniciar sesión.
func (uc *UsuarioUseCase) CambiarEstado(adminID, targetID string) (*dto.UsuarioResponse, error) {
	if adminID == targetID {
		return nil, domain.ErrForbidden
	}
	usuario, err := uc.usuarioRepo.GetByID(targetID)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrUserNotFound
	}
	usuario.Activo = !usuario.Activo
	if err := uc.usuarioRepo.Update(usuario); err != nil {
		return nil, err
	}
	return &dto.UsuarioResponse{
		ID:        usuario.ID,
		Username:  usuario.Username,
		Rol:       usuario.Rol,
		Activo:    usuario.Activo,
		CreatedAt: usuario.CreatedAt,
	}, nil
}

// Eliminar borra una cuenta ajena.
func (uc *UsuarioUseCase) Eliminar(adminID, targetID string) error {
	if adminID == targetID {
		return domain.ErrForbidden
	}
	usuario, err := uc.usuarioRepo.GetByID(targetID)
	if err != nil {
		return err
	}
	if usuario == nil {
		return domain.ErrUserNotFound
	}
	return uc.usuarioRepo.Delete(targetID)
}

// ResetearPassword asigna una contraseña nueva a una cuenta ajena.
func (uc *UsuarioUseCase) ResetearPassword(adminID, targetID, nueva string) error {
	if adminID == targetID {
		return domain.ErrForbidden
	}
	if len(nueva) < PasswordMinLen {
		return domain.ErrInvalidInput
	}
	usuario, err := uc.usuarioRepo.GetByID(targetID)
	if err != nil {
		return err
	}
	if usuario == nil {
		return domain.ErrUserNotFound
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(nueva), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	usuario.PasswordHash = string(hash)
	return uc.usuarioRepo.Update(usuario)
}
