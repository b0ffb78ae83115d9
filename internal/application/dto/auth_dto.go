package dto

import "time"

// RegisterRequest alta de usuario (rol cliente por defecto).
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UsuarioResponse representación pública de un usuario (sin hash).
type UsuarioResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Rol       string    `json:"rol"`
	Activo    bool      `json:"activo"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginResponse token JWT más el usuario autenticado.
type LoginResponse struct {
	Token   string          `json:"token"`
	Usuario UsuarioResponse `json:"usuario"`
}

// ResetPasswordRequest nueva contraseña para otro usuario (solo admin).
type ResetPasswordRequest struct {
	NuevaPassword string `json:"nueva_password"`
}
