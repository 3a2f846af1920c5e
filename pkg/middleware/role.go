package middleware

import (
	"net/http"

	"github.com/vfg2006/ecommerce-agent-api/internal/domain"
	"github.com/vfg2006/ecommerce-agent-api/pkg/apiErrors"
	"github.com/vfg2006/ecommerce-agent-api/pkg/log"
)

// Constantes para identificar os roles
const (
	RoleAdmin  = domain.RoleAdmin
	RoleViewer = domain.RoleViewer
)

// RoleMiddleware restringe o acesso aos roles informados
func RoleMiddleware(allowedRoles []int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userClaims, ok := r.Context().Value(ContextKeyUser).(*domain.Claims)
			if !ok {
				log.L.Warn("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			for _, role := range allowedRoles {
				if userClaims.UserRoleID == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			log.L.Warnf("Acesso negado para usuário %s, Role=%d", userClaims.UserEmail, userClaims.UserRoleID)
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
		})
	}
}

// AdminOnly permite acesso apenas para administradores
func AdminOnly() func(http.Handler) http.Handler {
	return RoleMiddleware([]int{RoleAdmin})
}
