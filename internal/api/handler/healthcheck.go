package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/vfg2006/ecommerce-agent-api/pkg/apiErrors"
	"github.com/vfg2006/ecommerce-agent-api/pkg/log"
)

const pingTimeout = 2 * time.Second

// Pinger verifica se uma dependência está acessível
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthcheckHandler responde a liveness. O banco é reportado mas não derruba o status.
func HealthcheckHandler(db Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		database := "up"
		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
			defer cancel()

			if err := db.Ping(ctx); err != nil {
				log.ForContext(r.Context()).WithError(err).Warn("Banco de dados indisponível no healthcheck")
				database = "down"
			}
		}

		apiErrors.WriteJSON(w, http.StatusOK, map[string]any{
			"status":   "ok",
			"database": database,
			"time":     time.Now().Format(time.RFC3339),
		})
	})
}
