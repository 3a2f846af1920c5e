package middleware

import (
	"net/http"
	"time"

	"github.com/vfg2006/ecommerce-agent-api/pkg/metrics"
)

// MetricsMiddleware registra contagem e latência usando o padrão da rota como label
func MetricsMiddleware(routePattern string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			startTime := time.Now()
			lrw := newStatusRecorder(w)

			next.ServeHTTP(lrw, r)

			metrics.ObserveHTTPRequest(r.Method, routePattern, lrw.statusCode, time.Since(startTime))
		})
	}
}
