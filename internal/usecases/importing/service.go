package importing

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/vfg2006/ecommerce-agent-api/infrastructure/database/postgres"
	"github.com/vfg2006/ecommerce-agent-api/infrastructure/importer/csvimport"
	"github.com/vfg2006/ecommerce-agent-api/infrastructure/repository"
	"github.com/vfg2006/ecommerce-agent-api/internal/config"
	"github.com/vfg2006/ecommerce-agent-api/internal/domain"
	"github.com/vfg2006/ecommerce-agent-api/pkg/log"
	"github.com/vfg2006/ecommerce-agent-api/pkg/metrics"
	"github.com/vfg2006/ecommerce-agent-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

type Importer interface {
	// Run limpa as tabelas e recarrega os três arquivos
	Run(ctx context.Context) (*domain.ImportReport, error)

	// LoadIfEmpty executa Run apenas quando ainda não há vendas carregadas.
	// Retorna nil quando a carga não foi necessária.
	LoadIfEmpty(ctx context.Context) (*domain.ImportReport, error)
}

type Service struct {
	salesRepo       repository.SalesRepository
	adMetricsRepo   repository.AdMetricsRepository
	eligibilityRepo repository.EligibilityRepository
	cfg             config.Import
	fs              afero.Fs
	mu              sync.Mutex
}

func NewService(
	salesRepo repository.SalesRepository,
	adMetricsRepo repository.AdMetricsRepository,
	eligibilityRepo repository.EligibilityRepository,
	cfg config.Import,
	fs afero.Fs,
) Importer {
	if fs == nil {
		fs = afero.NewOsFs()
	}

	return &Service{
		salesRepo:       salesRepo,
		adMetricsRepo:   adMetricsRepo,
		eligibilityRepo: eligibilityRepo,
		cfg:             cfg,
		fs:              fs,
	}
}

func (s *Service) LoadIfEmpty(ctx context.Context) (*domain.ImportReport, error) {
	total, err := s.salesRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao verificar dados existentes")
	}

	if total > 0 {
		log.ForContext(ctx).WithField("sales_records", total).Info("Dados já carregados, importação inicial ignorada")
		return nil, nil
	}

	return s.Run(ctx)
}

func (s *Service) Run(ctx context.Context) (*domain.ImportReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	runID, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar id da importação")
	}

	logger := log.ForContext(ctx).WithField("run_id", runID)
	logger.Info("Iniciando importação dos arquivos CSV")

	report := &domain.ImportReport{
		RunID:     runID,
		StartedAt: time.Now(),
		Tables:    make([]*domain.TableImportStats, 0, 3),
	}

	if err := s.clearTables(ctx); err != nil {
		return nil, err
	}

	salesStats, err := importTable[*domain.SalesRecord](ctx, s, postgres.SalesTable, s.cfg.SalesFile,
		csvimport.ParseSalesRow, s.salesRepo.InsertBatch)
	report.Tables = append(report.Tables, salesStats)
	if err != nil {
		return report, err
	}

	adStats, err := importTable[*domain.AdMetricsRecord](ctx, s, postgres.AdMetricsTable, s.cfg.AdMetricsFile,
		csvimport.ParseAdMetricsRow, s.adMetricsRepo.InsertBatch)
	report.Tables = append(report.Tables, adStats)
	if err != nil {
		return report, err
	}

	eligibilityStats, err := importTable[*domain.EligibilityRecord](ctx, s, postgres.EligibilityTable, s.cfg.EligibilityFile,
		csvimport.ParseEligibilityRow, s.eligibilityRepo.InsertBatch)
	report.Tables = append(report.Tables, eligibilityStats)
	if err != nil {
		return report, err
	}

	report.CompletedAt = time.Now()

	logger.WithFields(log.Fields{
		"total_loaded": report.TotalLoaded(),
		"duration":     report.CompletedAt.Sub(report.StartedAt).String(),
	}).Info("Importação concluída")

	return report, nil
}

func (s *Service) clearTables(ctx context.Context) error {
	cleaners := []struct {
		table string
		clear func(context.Context) (int64, error)
	}{
		{table: postgres.EligibilityTable, clear: s.eligibilityRepo.DeleteAll},
		{table: postgres.AdMetricsTable, clear: s.adMetricsRepo.DeleteAll},
		{table: postgres.SalesTable, clear: s.salesRepo.DeleteAll},
	}

	for _, c := range cleaners {
		deleted, err := c.clear(ctx)
		if err != nil {
			return errors.Wrapf(err, "erro ao limpar tabela %s", c.table)
		}
		log.ForContext(ctx).Debugf("Tabela %s limpa (%d registros)", c.table, deleted)
	}

	return nil
}

func importTable[T any](
	ctx context.Context,
	s *Service,
	table string,
	path string,
	parse csvimport.RowParser[T],
	flush csvimport.FlushFunc[T],
) (*domain.TableImportStats, error) {
	stats := &domain.TableImportStats{Table: table, File: path}
	logger := log.ForContext(ctx).WithFields(log.Fields{"table": table, "file": path})

	file, err := s.fs.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			stats.Missing = true
			logger.Warn("Arquivo de dados não encontrado, tabela ignorada")
			return stats, nil
		}
		return stats, fmt.Errorf("erro ao abrir %s: %w", path, err)
	}
	defer file.Close()

	streamStats, err := csvimport.Stream(ctx, file, parse, s.cfg.BatchSize, flush)
	stats.Loaded = streamStats.Loaded
	stats.Skipped = streamStats.Skipped
	metrics.ObserveImport(table, stats.Loaded, stats.Skipped)

	if err != nil {
		return stats, errors.Wrapf(err, "erro ao importar %s", table)
	}

	logger.WithFields(log.Fields{
		"loaded":  stats.Loaded,
		"skipped": stats.Skipped,
	}).Info("Tabela importada")

	return stats, nil
}
