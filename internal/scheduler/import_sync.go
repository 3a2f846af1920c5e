package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/vfg2006/ecommerce-agent-api/internal/config"
	"github.com/vfg2006/ecommerce-agent-api/internal/domain"
	"github.com/vfg2006/ecommerce-agent-api/internal/usecases/importing"
	"github.com/vfg2006/ecommerce-agent-api/pkg/log"
)

//go:generate mockgen -source=import_sync.go -destination=mocks/import_sync.go -package=mocks

// ImportSyncer é o que as rotas administrativas enxergam do agendador
type ImportSyncer interface {
	// TriggerManualSync dispara a importação em background.
	// Retorna false quando já existe uma execução em andamento.
	TriggerManualSync() bool
	GetStatus() ImportSyncStatus
}

// ImportSyncStatus representa o estado atual da recarga dos arquivos
type ImportSyncStatus struct {
	SyncEnabled         bool                 `json:"sync_enabled"`
	SyncCron            string               `json:"sync_cron"`
	Running             bool                 `json:"running"`
	LastSyncStartedAt   *time.Time           `json:"last_sync_started_at,omitempty"`
	LastSyncCompletedAt *time.Time           `json:"last_sync_completed_at,omitempty"`
	LastError           string               `json:"last_error,omitempty"`
	LastReport          *domain.ImportReport `json:"last_report,omitempty"`
}

// ImportSyncService gerencia o agendamento e execução da recarga dos arquivos CSV
type ImportSyncService struct {
	scheduler           *gocron.Scheduler
	config              config.ImportSync
	importer            importing.Importer
	syncRunning         bool
	syncMutex           sync.Mutex
	wg                  sync.WaitGroup
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastError           error
	lastReport          *domain.ImportReport
}

func NewImportSyncService(importer importing.Importer, cfg config.ImportSync) *ImportSyncService {
	log.L.WithFields(log.Fields{
		"cron_schedule": cfg.CronSchedule,
		"sync_enabled":  cfg.Enabled,
	}).Info("Configuração do agendador de importação carregada")

	return &ImportSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    cfg,
		importer:  importer,
	}
}

// Start inicia o agendador. Com a sincronização desabilitada apenas o disparo manual funciona.
func (s *ImportSyncService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		log.L.Info("Recarga agendada de dados desabilitada por configuração")
		return nil
	}

	log.L.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de importação")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if !s.claim() {
			log.L.Info("Importação já em andamento, ignorando execução agendada")
			return
		}
		s.runSync("cron")
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar importação: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.Info("Parando agendador de importação")
		s.scheduler.Stop()
	}()

	return nil
}

// Wait bloqueia até que as execuções disparadas manualmente terminem
func (s *ImportSyncService) Wait() {
	s.wg.Wait()
}

func (s *ImportSyncService) TriggerManualSync() bool {
	if !s.claim() {
		log.L.Info("Importação já em andamento, ignorando solicitação manual")
		return false
	}

	log.L.Info("Iniciando importação manual")

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.runSync("manual")
	}()

	return true
}

// claim marca a execução como em andamento, falhando se outra já estiver rodando
func (s *ImportSyncService) claim() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	return true
}

// runSync deve ser chamado somente após claim
func (s *ImportSyncService) runSync(trigger string) {
	ctx, _ := log.WithCorrelationID(context.Background())
	logger := log.ForContext(ctx).WithField("trigger", trigger)
	logger.Info("Iniciando recarga dos dados")

	report, err := s.importer.Run(ctx)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastError = err
	if report != nil {
		s.lastReport = report
	}

	if err != nil {
		logger.WithError(err).Error("Erro na recarga dos dados")
		return
	}

	logger.WithField("duration", s.lastSyncCompletedAt.Sub(s.lastSyncStartedAt).String()).Info("Recarga dos dados concluída")
}

func (s *ImportSyncService) GetStatus() ImportSyncStatus {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := ImportSyncStatus{
		SyncEnabled: s.config.Enabled,
		SyncCron:    s.config.CronSchedule,
		Running:     s.syncRunning,
		LastReport:  s.lastReport,
	}

	if !s.lastSyncStartedAt.IsZero() {
		startedAt := s.lastSyncStartedAt
		status.LastSyncStartedAt = &startedAt
	}
	if !s.lastSyncCompletedAt.IsZero() {
		completedAt := s.lastSyncCompletedAt
		status.LastSyncCompletedAt = &completedAt
	}
	if s.lastError != nil {
		status.LastError = s.lastError.Error()
	}

	return status
}
