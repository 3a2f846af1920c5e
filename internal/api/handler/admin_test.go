package handler

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ecommerce-agent-api/internal/domain"
	"github.com/vfg2006/ecommerce-agent-api/internal/scheduler"
	schedulerMocks "github.com/vfg2006/ecommerce-agent-api/internal/scheduler/mocks"
	"github.com/vfg2006/ecommerce-agent-api/internal/usecases/authenticating"
	authMocks "github.com/vfg2006/ecommerce-agent-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/ecommerce-agent-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestLogin(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setup          func(service *authMocks.MockAuthenticator)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Corpo inválido",
			body:           `{`,
			setup:          func(service *authMocks.MockAuthenticator) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Credenciais inválidas",
			body: `{"email":"admin@loja.com","password":"errada"}`,
			setup: func(service *authMocks.MockAuthenticator) {
				service.EXPECT().Login("admin@loja.com", "errada").Return("",
					authenticating.NewAuthError(authenticating.ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, ""))
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"success":false,"code":"AUTH_001","error":"credenciais inválidas"}`,
		},
		{
			name: "Erro inesperado",
			body: `{"email":"admin@loja.com","password":"x"}`,
			setup: func(service *authMocks.MockAuthenticator) {
				service.EXPECT().Login(gomock.Any(), gomock.Any()).Return("", errors.New("falha"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name: "Login com sucesso",
			body: `{"email":"admin@loja.com","password":"certa"}`,
			setup: func(service *authMocks.MockAuthenticator) {
				service.EXPECT().Login("admin@loja.com", "certa").Return("token-jwt", nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success":true,"token":"token-jwt"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := authMocks.NewMockAuthenticator(ctrl)
			tt.setup(service)

			rec := httptest.NewRecorder()
			Login(service).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/login", bytes.NewBufferString(tt.body)))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rec.Body.String())
			}
		})
	}
}

func TestRunImport(t *testing.T) {
	t.Run("Importação iniciada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		syncer := schedulerMocks.NewMockImportSyncer(ctrl)
		syncer.EXPECT().TriggerManualSync().Return(true)

		rec := httptest.NewRecorder()
		RunImport(syncer).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/admin/import/run", nil))

		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.JSONEq(t, `{"success":true,"message":"Import started"}`, rec.Body.String())
	})

	t.Run("Importação já em andamento", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		syncer := schedulerMocks.NewMockImportSyncer(ctrl)
		syncer.EXPECT().TriggerManualSync().Return(false)

		rec := httptest.NewRecorder()
		RunImport(syncer).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/admin/import/run", nil))

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestImportStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	syncer := schedulerMocks.NewMockImportSyncer(ctrl)

	startedAt := time.Date(2025, 6, 1, 2, 0, 0, 0, time.UTC)
	syncer.EXPECT().GetStatus().Return(scheduler.ImportSyncStatus{
		SyncEnabled:       true,
		SyncCron:          "0 2 * * *",
		LastSyncStartedAt: &startedAt,
		LastReport:        &domain.ImportReport{RunID: "abc"},
	})

	rec := httptest.NewRecorder()
	ImportStatus(syncer).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/admin/import/status", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"sync_cron":"0 2 * * *"`)
	assert.Contains(t, rec.Body.String(), `"run_id":"abc"`)
	assert.Contains(t, rec.Body.String(), `"last_sync_started_at":"2025-06-01T02:00:00Z"`)
}

type fakePinger struct {
	err error
}

func (f fakePinger) Ping(context.Context) error {
	return f.err
}

func TestHealthcheckHandler(t *testing.T) {
	tests := []struct {
		name     string
		db       Pinger
		database string
	}{
		{name: "Banco disponível", db: fakePinger{}, database: `"database":"up"`},
		{name: "Banco indisponível", db: fakePinger{err: errors.New("refused")}, database: `"database":"down"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HealthcheckHandler(tt.db).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.database)
		})
	}
}
