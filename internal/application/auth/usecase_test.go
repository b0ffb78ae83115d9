package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/suminitec/suministros-api/internal/application/auth"
	"github.com/suminitec/suministros-api/internal/application/dto"
	"github.com/suminitec/suministros-api/internal/domain"
	"github.com/suminitec/suministros-api/internal/domain/entity"
)

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

func (r *fakeUsuarioRepo) Create(u *entity.Usuario) error             { r.usuarios[u.ID] = u; return nil }
func (r *fakeUsuarioRepo) GetByID(id string) (*entity.Usuario, error) { return r.usuarios[id], nil }
func (r *fakeUsuarioRepo) Update(u *entity.Usuario) error             { r.usuarios[u.ID] = u; return nil }
func (r *fakeUsuarioRepo) Delete(id string) error                     { delete(r.usuarios, id); return nil }
func (r *fakeUsuarioRepo) List() ([]*entity.Usuario, error)           { return nil, nil }
func (r *fakeUsuarioRepo) ListClientesActivos() ([]*entity.Usuario, error) {
	return nil, nil
}

func (r *fakeUsuarioRepo) GetByUsername(username string) (*entity.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

// stubTokens emite un token predecible para poder afirmar sobre él.
type stubTokens struct{}

func (stubTokens) Generate(usuarioID, rol string) (string, error) {
	return "token:" + usuarioID + ":" + rol, nil
}

func usuarioConPassword(id, username, password, rol string, activo bool) *entity.Usuario {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return &entity.Usuario{
		ID: id, Username: username, PasswordHash: string(hash),
		Rol: rol, Activo: activo, CreatedAt: time.Now().UTC(),
	}
}

func TestRegister_CreaClienteActivo(t *testing.T) {
	repo := newFakeUsuarioRepo()
	uc := auth.NewUseCase(repo, stubTokens{})

	out, err := uc.Register(dto.RegisterRequest{Username: "maria", Password: "secreta99"})
	require.NoError(t, err)

	assert.Equal(t, entity.RolCliente, out.Rol, "el registro público siempre crea clientes")
	assert.True(t, out.Activo)

	guardado, _ := repo.GetByID(out.ID)
	require.NotNil(t, guardado)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(guardado.PasswordHash), []byte("secreta99")))
}

func TestRegister_UsernameDuplicado(t *testing.T) {
	repo := newFakeUsuarioRepo(usuarioConPassword("u1", "maria", "otra", entity.RolCliente, true))
	uc := auth.NewUseCase(repo, stubTokens{})

	_, err := uc.Register(dto.RegisterRequest{Username: "maria", Password: "secreta99"})
	assert.ErrorIs(t, err, domain.ErrUsernameAlreadyExists)
}

func TestRegister_PasswordCorta(t *testing.T) {
	uc := auth.NewUseCase(newFakeUsuarioRepo(), stubTokens{})
	_, err := uc.Register(dto.RegisterRequest{Username: "maria", Password: "corta"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_Correcto(t *testing.T) {
	repo := newFakeUsuarioRepo(usuarioConPassword("u1", "maria", "secreta99", entity.RolCliente, true))
	uc := auth.NewUseCase(repo, stubTokens{})

	out, err := uc.Login(dto.LoginRequest{Username: "maria", Password: "secreta99"})
	require.NoError(t, err)
	assert.Equal(t, "token:u1:cliente", out.Token)
	assert.Equal(t, "maria", out.Usuario.Username)
}

// Usuario inexistente y contraseña errada devuelven el mismo error: el login
// no filtra qué cuentas existen.
func TestLogin_CredencialesIncorrectas(t *testing.T) {
	repo := newFakeUsuarioRepo(usuarioConPassword("u1", "maria", "secreta99", entity.RolCliente, true))
	uc := auth.NewUseCase(repo, stubTokens{})

	_, err := uc.Login(dto.LoginRequest{Username: "maria", Password: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(dto.LoginRequest{Username: "no-existe", Password: "secreta99"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_CuentaDesactivada(t *testing.T) {
	repo := newFakeUsuarioRepo(usuarioConPassword("u1", "maria", "secreta99", entity.RolCliente, false))
	uc := auth.NewUseCase(repo, stubTokens{})

	_, err := uc.Login(dto.LoginRequest{Username: "maria", Password: "secreta99"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
