package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ecommerce-agent-api/infrastructure/database/postgres"
	"github.com/vfg2006/ecommerce-agent-api/infrastructure/integrator/llm"
	"github.com/vfg2006/ecommerce-agent-api/infrastructure/integrator/llm/llmclient"
	"github.com/vfg2006/ecommerce-agent-api/infrastructure/repository"
	"github.com/vfg2006/ecommerce-agent-api/internal/api"
	"github.com/vfg2006/ecommerce-agent-api/internal/config"
	"github.com/vfg2006/ecommerce-agent-api/internal/scheduler"
	"github.com/vfg2006/ecommerce-agent-api/internal/usecases/answering"
	"github.com/vfg2006/ecommerce-agent-api/internal/usecases/authenticating"
	"github.com/vfg2006/ecommerce-agent-api/internal/usecases/importing"
	"github.com/vfg2006/ecommerce-agent-api/internal/usecases/summarizing"
	"github.com/vfg2006/ecommerce-agent-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel)
	log.L.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	salesRepo := repository.NewSalesRepository(pgConn)
	adMetricsRepo := repository.NewAdMetricsRepository(pgConn)
	eligibilityRepo := repository.NewEligibilityRepository(pgConn)
	queryExecutor := repository.NewQueryExecutor(pgConn, repository.QueryExecutorOptions{
		Timeout:      cfg.Query.Timeout,
		GuardEnabled: cfg.Query.GuardEnabled,
	})

	if cfg.LLM.APIKey == "" {
		log.L.Warn("LLM_API_KEY não configurada, as perguntas vão falhar na geração do SQL")
	}
	llmIntegrator := llm.New(cfg.LLM, llmclient.NewClient(cfg.LLM))

	answerer := answering.NewService(llmIntegrator, queryExecutor, llmIntegrator)
	summarizer := summarizing.NewService(salesRepo, adMetricsRepo, eligibilityRepo)
	authenticator := authenticating.NewService(cfg)
	importer := importing.NewService(salesRepo, adMetricsRepo, eligibilityRepo, cfg.Import, nil)

	if cfg.Import.OnStartup {
		report, err := importer.LoadIfEmpty(ctx)
		if err != nil {
			log.L.WithError(err).Error("Erro na importação inicial dos dados")
		} else if report != nil {
			log.L.WithField("total_loaded", report.TotalLoaded()).Info("Importação inicial concluída")
		}
	}

	importSyncService := scheduler.NewImportSyncService(importer, cfg.ImportSync)
	if err := importSyncService.Start(ctx); err != nil {
		log.L.WithError(err).Error("Erro ao iniciar o agendador de importação")
	} else {
		log.L.Info("Agendador de importação iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Answerer:      answerer,
		Summarizer:    summarizer,
		Authenticator: authenticator,
		ImportSyncer:  importSyncService,
		Database:      pgConn,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		log.L.Error(err)
	}

	cancel()
	importSyncService.Wait()
}

// pgconn cria a conexão com o banco e garante que as tabelas existam
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	if err := conn.EnsureSchema(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao criar tabelas no PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
