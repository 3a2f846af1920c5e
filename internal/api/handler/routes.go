package handler

import (
	"net/http"

	"github.com/vfg2006/ecommerce-agent-api/internal/api/handler/router"
	"github.com/vfg2006/ecommerce-agent-api/internal/scheduler"
	"github.com/vfg2006/ecommerce-agent-api/internal/usecases/answering"
	"github.com/vfg2006/ecommerce-agent-api/internal/usecases/authenticating"
	"github.com/vfg2006/ecommerce-agent-api/internal/usecases/summarizing"
	"github.com/vfg2006/ecommerce-agent-api/pkg/metrics"
	"github.com/vfg2006/ecommerce-agent-api/pkg/middleware"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metrics.Handler(),
		},
	}
}

func Questions(service answering.Answerer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/ask",
			Method:  http.MethodPost,
			Handler: Ask(service),
		},
		{
			Path:    "/v1/examples",
			Method:  http.MethodGet,
			Handler: Examples(service),
		},
		{
			Path:    "/v1/quick-answers",
			Method:  http.MethodGet,
			Handler: QuickAnswers(service),
		},
	}
}

func Data(service summarizing.Summarizer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/data/summary",
			Method:  http.MethodGet,
			Handler: DataSummary(service),
		},
		{
			Path:    "/v1/items/:item_id/ad-metrics",
			Method:  http.MethodGet,
			Handler: ItemAdMetrics(service),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
	}
}

func AdminImport(syncer scheduler.ImportSyncer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/admin/import/run",
			Method:      http.MethodPost,
			Handler:     RunImport(syncer),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/admin/import/status",
			Method:      http.MethodGet,
			Handler:     ImportStatus(syncer),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
