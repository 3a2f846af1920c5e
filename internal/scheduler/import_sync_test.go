package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ecommerce-agent-api/internal/config"
	"github.com/vfg2006/ecommerce-agent-api/internal/domain"
	"github.com/vfg2006/ecommerce-agent-api/internal/usecases/importing/mocks"
	"go.uber.org/mock/gomock"
)

func TestImportSyncService_TriggerManualSync(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(importer *mocks.MockImporter)
		validate func(t *testing.T, status ImportSyncStatus)
	}{
		{
			name: "Execução manual com sucesso guarda o relatório",
			setup: func(importer *mocks.MockImporter) {
				importer.EXPECT().Run(gomock.Any()).Return(&domain.ImportReport{
					RunID:  "abc123",
					Tables: []*domain.TableImportStats{{Table: "product_sales", Loaded: 10}},
				}, nil)
			},
			validate: func(t *testing.T, status ImportSyncStatus) {
				assert.False(t, status.Running)
				assert.Empty(t, status.LastError)
				require.NotNil(t, status.LastReport)
				assert.Equal(t, "abc123", status.LastReport.RunID)
				require.NotNil(t, status.LastSyncStartedAt)
				require.NotNil(t, status.LastSyncCompletedAt)
				assert.False(t, status.LastSyncCompletedAt.Before(*status.LastSyncStartedAt))
			},
		},
		{
			name: "Erro na importação fica registrado no status",
			setup: func(importer *mocks.MockImporter) {
				importer.EXPECT().Run(gomock.Any()).Return(nil, errors.New("arquivo corrompido"))
			},
			validate: func(t *testing.T, status ImportSyncStatus) {
				assert.False(t, status.Running)
				assert.Equal(t, "arquivo corrompido", status.LastError)
				assert.Nil(t, status.LastReport)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			importer := mocks.NewMockImporter(ctrl)
			tt.setup(importer)

			service := NewImportSyncService(importer, config.ImportSync{CronSchedule: "0 2 * * *"})

			assert.True(t, service.TriggerManualSync())
			service.Wait()

			tt.validate(t, service.GetStatus())
		})
	}
}

func TestImportSyncService_SingleFlight(t *testing.T) {
	ctrl := gomock.NewController(t)
	importer := mocks.NewMockImporter(ctrl)

	release := make(chan struct{})
	started := make(chan struct{})
	importer.EXPECT().Run(gomock.Any()).DoAndReturn(func(ctx context.Context) (*domain.ImportReport, error) {
		close(started)
		<-release
		return &domain.ImportReport{RunID: "unico"}, nil
	}).Times(1)

	service := NewImportSyncService(importer, config.ImportSync{})

	require.True(t, service.TriggerManualSync())
	<-started

	assert.True(t, service.GetStatus().Running)
	assert.False(t, service.TriggerManualSync())

	close(release)
	service.Wait()

	assert.False(t, service.GetStatus().Running)
}

func TestImportSyncService_Start(t *testing.T) {
	t.Run("Desabilitado não agenda nada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := NewImportSyncService(mocks.NewMockImporter(ctrl), config.ImportSync{
			CronSchedule: "expressão inválida",
			Enabled:      false,
		})

		assert.NoError(t, service.Start(context.Background()))
		assert.False(t, service.GetStatus().SyncEnabled)
	})

	t.Run("Cron inválido retorna erro", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := NewImportSyncService(mocks.NewMockImporter(ctrl), config.ImportSync{
			CronSchedule: "expressão inválida",
			Enabled:      true,
		})

		assert.Error(t, service.Start(context.Background()))
	})

	t.Run("Cron válido inicia o agendador", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := NewImportSyncService(mocks.NewMockImporter(ctrl), config.ImportSync{
			CronSchedule: "0 2 * * *",
			Enabled:      true,
		})

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		require.NoError(t, service.Start(ctx))
		assert.True(t, service.scheduler.IsRunning())
		assert.True(t, service.GetStatus().SyncEnabled)
	})
}
