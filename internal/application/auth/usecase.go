package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/suminitec/suministros-api/internal/application/dto"
	"github.com/suminitec/suministros-api/internal/domain"
	"github.com/suminitec/suministros-api/internal/domain/entity"
	"github.com/suminitec/suministros-api/internal/domain/repository"
)

// PasswordMinLen longitud mínima de contraseña en el registro.
const PasswordMinLen = 6

// TokenIssuer emite el JWT de sesión con la identidad y el rol del usuario.
type TokenIssuer interface {
	Generate(usuarioID, rol string) (string, error)
}

// UseCase registro e inicio de sesión.
type UseCase struct {
	usuarioRepo repository.UsuarioRepository
	tokens      TokenIssuer
}

func NewUseCase(usuarioRepo repository.UsuarioRepository, tokens TokenIssuer) *UseCase {
	return &UseCase{usuarioRepo: usuarioRepo, tokens: tokens}
}

// Register crea una cuenta de cliente activa. El username es único.
func (uc *UseCase) Register(in dto.RegisterRequest) (*dto.UsuarioResponse, error) {
	if in.Username == "" || len(in.Password) < PasswordMinLen {
		return nil, domain.ErrInvalidInput
	}
	existente, err := uc.usuarioRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrUsernameAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	usuario := &entity.Usuario{
		ID:           uuid.New().String(),
		Username:     in.Username,
		PasswordHash: string(hash),
		Rol:          entity.RolCliente,
		Activo:       true,
		CreatedAt:    time.Now().UTC(),
	}
	if err := uc.usuarioRepo.Create(usuario); err != nil {
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

// Login valida credenciales y emite el token. Una credencial incorrecta no
// distingue entre usuario inexistente y contraseña errada; una cuenta
// desactivada sí se rechaza de forma explícita.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	usuario, err := uc.usuarioRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !usuario.Activo {
		return nil, domain.ErrForbidden
	}

	token, err := uc.tokens.Generate(usuario.ID, usuario.Rol)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		Usuario: dto.UsuarioResponse{
			ID:        usuario.ID,
			Username:  usuario.Username,
			Rol:       usuario.Rol,
			Activo:    usuario.Activo,
			CreatedAt: usuario.CreatedAt,
		},
	}, nil
}
