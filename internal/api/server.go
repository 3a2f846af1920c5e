package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/vfg2006/ecommerce-agent-api/internal/api/handler"
	"github.com/vfg2006/ecommerce-agent-api/internal/api/handler/router"
	"github.com/vfg2006/ecommerce-agent-api/internal/config"
	"github.com/vfg2006/ecommerce-agent-api/internal/scheduler"
	"github.com/vfg2006/ecommerce-agent-api/internal/usecases/answering"
	"github.com/vfg2006/ecommerce-agent-api/internal/usecases/authenticating"
	"github.com/vfg2006/ecommerce-agent-api/internal/usecases/summarizing"
	"github.com/vfg2006/ecommerce-agent-api/pkg/log"
	"github.com/vfg2006/ecommerce-agent-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

// Services agrupa as dependências expostas pelas rotas
type Services struct {
	Answerer      answering.Answerer
	Summarizer    summarizing.Summarizer
	Authenticator authenticating.Authenticator
	ImportSyncer  scheduler.ImportSyncer
	Database      handler.Pinger
}

// NewHandler monta o router com a cadeia global de middlewares
func NewHandler(cfg *config.Config, services Services) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck(services.Database)...),
		router.WithRoutes(handler.Metrics()...),
		router.WithRoutes(handler.Questions(services.Answerer)...),
		router.WithRoutes(handler.Data(services.Summarizer)...),
		router.WithRoutes(handler.Authentication(services.Authenticator)...),
		router.WithRoutes(handler.AdminImport(services.ImportSyncer)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Server.CorsAllowedOrigins),
		middleware.AuthMiddleware(services.Authenticator),
	}

	return alice.New(middlewares...).Then(rt)
}

func New(cfg *config.Config, services Services) (*Server, error) {
	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           NewHandler(cfg, services),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		log.L.WithFields(log.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.L.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		log.L.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		log.L.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	log.L.WithFields(log.Fields{
		"timeout": shutdownTimeout.String(),
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		log.L.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	log.L.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	log.L.Info("Servidor HTTP desligado com sucesso")
	return nil
}
