package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ecommerce-agent-api/internal/domain"
	"github.com/vfg2006/ecommerce-agent-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/ecommerce-agent-api/pkg/log"
	"go.uber.org/mock/gomock"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		path           string
		authorization  string
		setup          func(auth *mocks.MockAuthenticator)
		expectedStatus int
	}{
		{
			name:           "Rota pública não exige token",
			method:         http.MethodPost,
			path:           "/v1/ask",
			setup:          func(auth *mocks.MockAuthenticator) {},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Preflight em rota administrativa passa",
			method:         http.MethodOptions,
			path:           "/v1/admin/import/run",
			setup:          func(auth *mocks.MockAuthenticator) {},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Rota administrativa sem token",
			method:         http.MethodGet,
			path:           "/v1/admin/import/status",
			setup:          func(auth *mocks.MockAuthenticator) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:          "Token rejeitado",
			method:        http.MethodGet,
			path:          "/v1/admin/import/status",
			authorization: "Bearer expirado",
			setup: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().ValidateToken("expirado").Return(nil, errors.New("token expirado"))
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:          "Token válido",
			method:        http.MethodGet,
			path:          "/v1/admin/import/status",
			authorization: "Bearer valido",
			setup: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().ValidateToken("valido").Return(&domain.Claims{UserRoleID: domain.RoleAdmin}, nil)
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			auth := mocks.NewMockAuthenticator(ctrl)
			tt.setup(auth)

			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.authorization != "" {
				req.Header.Set("Authorization", tt.authorization)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(auth)(okHandler).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestRoleMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		claims         *domain.Claims
		expectedStatus int
	}{
		{name: "Sem claims no contexto", claims: nil, expectedStatus: http.StatusUnauthorized},
		{name: "Viewer é bloqueado", claims: &domain.Claims{UserRoleID: RoleViewer}, expectedStatus: http.StatusForbidden},
		{name: "Admin passa", claims: &domain.Claims{UserRoleID: RoleAdmin}, expectedStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/admin/import/status", nil)
			if tt.claims != nil {
				req = req.WithContext(context.WithValue(req.Context(), ContextKeyUser, tt.claims))
			}
			rec := httptest.NewRecorder()

			AdminOnly()(okHandler).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestLogPanicMiddleware(t *testing.T) {
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("falha inesperada")
	})

	rec := httptest.NewRecorder()
	LogPanicMiddleware()(LoggingMiddleware()(panicking)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/examples", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
}

func TestLoggingMiddleware_CorrelationID(t *testing.T) {
	rec := httptest.NewRecorder()
	LoggingMiddleware()(okHandler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))
}

func TestLoggingMiddleware_RequestFields(t *testing.T) {
	hook := logrustest.NewGlobal()
	defer hook.Reset()

	failing := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.AddRequestFields(r.Context(), log.Fields{"stage": "GenerationFailed"})
		w.WriteHeader(http.StatusBadGateway)
	})

	rec := httptest.NewRecorder()
	LoggingMiddleware()(failing).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/ask", nil))

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, "GenerationFailed", entry.Data["stage"])
	assert.Equal(t, http.StatusBadGateway, entry.Data["status_code"])
	assert.Equal(t, "/v1/ask", entry.Data["path"])
}
