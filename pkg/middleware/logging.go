package middleware

import (
	"fmt"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/vfg2006/ecommerce-agent-api/pkg/apiErrors"
	"github.com/vfg2006/ecommerce-agent-api/pkg/log"
)

// Perguntas passam por duas chamadas ao modelo, então o limite é alto
const slowRequestThreshold = 5 * time.Second

// LoggingMiddleware gera o ID de correlação e registra uma linha por requisição.
// Os handlers completam essa linha com log.AddRequestFields (estágio, row_count etc).
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, correlationID := log.WithCorrelationID(r.Context())
			ctx = log.WithRequestFields(ctx)
			w.Header().Set("X-Correlation-ID", correlationID)

			recorder := newStatusRecorder(w)
			startTime := time.Now()

			next.ServeHTTP(recorder, r.WithContext(ctx))

			elapsed := time.Since(startTime)
			fields := requestLogFields(r, correlationID, recorder.statusCode, elapsed)
			for key, value := range log.RequestFields(ctx) {
				fields[key] = value
			}

			logger := log.L.WithFields(fields)
			message := completionMessage(recorder.statusCode, elapsed)

			switch {
			case recorder.statusCode >= 500:
				logger.Error(message)
			case recorder.statusCode >= 400:
				logger.Warn(message)
			default:
				logger.Info(message)
			}

			if elapsed > slowRequestThreshold {
				logger.Warnf("Requisição lenta: %s", formatDuration(elapsed))
			}
		})
	}
}

// requestLogFields monta os campos base; fora de desenvolvimento inclui os dados do cliente
func requestLogFields(r *http.Request, correlationID string, statusCode int, elapsed time.Duration) log.Fields {
	fields := log.Fields{
		"method":      r.Method,
		"path":        r.URL.Path,
		"status_code": statusCode,
	}

	if log.IsDevelopment() {
		return fields
	}

	fields["correlation_id"] = correlationID
	fields["duration_ms"] = elapsed.Milliseconds()
	fields["remote_addr"] = r.RemoteAddr
	fields["user_agent"] = r.UserAgent()
	if r.URL.RawQuery != "" {
		fields["query"] = r.URL.RawQuery
	}
	return fields
}

func completionMessage(statusCode int, elapsed time.Duration) string {
	if !log.IsDevelopment() {
		return "Requisição finalizada"
	}

	symbol := "✓"
	if statusCode >= 400 {
		symbol = "✗"
	}
	return fmt.Sprintf("%s Completada em %s", symbol, formatDuration(elapsed))
}

// formatDuration formata a duração de forma humana
func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%d µs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%d ms", d.Milliseconds())
	default:
		return fmt.Sprintf("%.2f s", d.Seconds())
	}
}

// statusRecorder captura o status code escrito pelo handler
type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func newStatusRecorder(w http.ResponseWriter) *statusRecorder {
	return &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.statusCode = code
	sr.ResponseWriter.WriteHeader(code)
}

// LogPanicMiddleware transforma um panic em 500 e registra a pilha
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}

				stack := make([]byte, 4096)
				stack = stack[:runtime.Stack(stack, false)]

				fields := log.RequestFields(r.Context())
				fields["panic_error"] = recovered
				fields["method"] = r.Method
				fields["path"] = r.URL.Path

				if log.IsDevelopment() {
					log.ForContext(r.Context()).WithFields(fields).Error("❌ PANIC na aplicação")
					fmt.Fprintf(os.Stderr, "\n\n=== STACK TRACE ===\n%s\n=================\n\n", stack)
				} else {
					fields["stack_trace"] = string(stack)
					log.ForContext(r.Context()).WithFields(fields).Error("Erro não tratado na aplicação")
				}

				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
