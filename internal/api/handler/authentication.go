package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/ecommerce-agent-api/internal/usecases/authenticating"
	"github.com/vfg2006/ecommerce-agent-api/pkg/apiErrors"
	"github.com/vfg2006/ecommerce-agent-api/pkg/log"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := decodeBody(w, r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		token, err := service.Login(req.Email, req.Password)
		if err != nil {
			handleLoginError(w, r, err)
			return
		}

		writeSuccess(w, http.StatusOK, map[string]any{
			"token": token,
		})
	}
}

// handleLoginError trata erros específicos de login e retorna a resposta apropriada
func handleLoginError(w http.ResponseWriter, r *http.Request, err error) {
	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
		return
	}

	log.ForContext(r.Context()).WithError(err).Error("Erro inesperado no login")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao realizar login", nil)
}
