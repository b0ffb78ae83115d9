package entity

import "time"

// Roles válidos para Usuario.
const (
	RolAdmin   = "admin"
	RolCliente = "cliente"
)

// Usuario representa una cuenta del sistema. El hash de la contraseña es bcrypt
// y nunca viaja en claro por el dominio después de persistir.
type Usuario struct {
	ID           string
	Username     string // único
	PasswordHash string
	Rol          string // admin, cliente
	Activo       bool
	CreatedAt    time.Time
}

// EsAdmin indica si la cuenta tiene rol administrador.
func (u *Usuario) EsAdmin() bool { return u.Rol == RolAdmin }
