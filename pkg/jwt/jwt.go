package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims estándar JWT más los campos propios de la aplicación. Rol viaja en el
// token para que el middleware RBAC decida sin consultar la BD.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Rol    string `json:"rol"` // "admin" | "cliente"
}

// Manager emite y valida tokens firmados con HS256.
type Manager struct {
	secret []byte
	issuer string
	exp    time.Duration
}

// NewManager construye el gestor. El secret no puede estar vacío.
func NewManager(secret, issuer string, expMinutes int) (*Manager, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	return &Manager{
		secret: []byte(secret),
		issuer: issuer,
		exp:    time.Duration(expMinutes) * time.Minute,
	}, nil
}

// Generate genera un token firmado con la identidad y el rol del usuario.
func (m *Manager) Generate(usuarioID, rol string) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Subject:   usuarioID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.exp)),
		},
		UserID: usuarioID,
		Rol:    rol,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Parse valida el token y devuelve identidad y rol. Retorna error si el token
// es inválido, expiró o la firma no corresponde.
func (m *Manager) Parse(tokenString string) (usuarioID, rol string, err error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return "", "", err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", "", fmt.Errorf("claims inválidos")
	}
	return claims.UserID, claims.Rol, nil
}
