package handler

import (
	"net/http"

	"github.com/vfg2006/ecommerce-agent-api/internal/domain"
	"github.com/vfg2006/ecommerce-agent-api/internal/scheduler"
	"github.com/vfg2006/ecommerce-agent-api/pkg/apiErrors"
	"github.com/vfg2006/ecommerce-agent-api/pkg/log"
	"github.com/vfg2006/ecommerce-agent-api/pkg/middleware"
)

// RunImport dispara a recarga dos arquivos CSV em background
func RunImport(syncer scheduler.ImportSyncer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userEmail := ""
		if claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims); ok {
			userEmail = claims.UserEmail
		}

		accepted := syncer.TriggerManualSync()
		log.AddRequestFields(r.Context(), log.Fields{"import_trigger": "manual", "import_accepted": accepted})

		if !accepted {
			apiErrors.WriteError(w, apiErrors.ErrAlreadyRunning, "Import already running", nil)
			return
		}

		log.ForContext(r.Context()).WithField("user_email", userEmail).Info("Importação manual solicitada")

		writeSuccess(w, http.StatusAccepted, map[string]any{
			"message": "Import started",
		})
	}
}

func ImportStatus(syncer scheduler.ImportSyncer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeSuccess(w, http.StatusOK, map[string]any{
			"status": syncer.GetStatus(),
		})
	}
}
