package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/vfg2006/ecommerce-agent-api/internal/usecases/authenticating"
	"github.com/vfg2006/ecommerce-agent-api/pkg/apiErrors"
	"github.com/vfg2006/ecommerce-agent-api/pkg/log"
)

type contextKey string

const (
	ContextKeyUser contextKey = "user"
)

// AdminPathPrefix delimita as rotas que exigem token
const AdminPathPrefix = "/v1/admin/"

// AuthMiddleware valida o bearer token apenas nas rotas administrativas.
// As rotas de perguntas continuam públicas.
func AuthMiddleware(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !strings.HasPrefix(r.URL.Path, AdminPathPrefix) || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Authorization header is required", nil)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Bearer token is required", nil)
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				log.ForContext(r.Context()).WithError(err).Warn("Token inválido em rota administrativa")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Invalid token", nil)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
