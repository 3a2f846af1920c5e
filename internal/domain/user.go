package domain

import "github.com/golang-jwt/jwt/v5"

const (
	RoleAdmin  = 1
	RoleViewer = 2
)

// Claims são os dados carregados no token de acesso administrativo
type Claims struct {
	UserEmail  string `json:"user_email"`
	UserRoleID int    `json:"user_role_id"`
	jwt.RegisteredClaims
}
