package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/ecommerce-agent-api/infrastructure/integrator/llm/llmclient"
	"github.com/vfg2006/ecommerce-agent-api/infrastructure/integrator/llm/llmdomain"
	"github.com/vfg2006/ecommerce-agent-api/internal/config"
	"github.com/vfg2006/ecommerce-agent-api/internal/domain"
	"github.com/vfg2006/ecommerce-agent-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type LLMIntegrator struct {
	cfg    config.LLM
	Client llmclient.Client
}

func New(cfg config.LLM, client llmclient.Client) *LLMIntegrator {
	return &LLMIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// GenerateSQL pede ao modelo o SQL e a explicação para a pergunta
func (s *LLMIntegrator) GenerateSQL(ctx context.Context, question, schema string) (*domain.GeneratedQuery, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	raw, err := s.Client.Complete(ctx, llmclient.CompletionRequest{
		Model:        s.cfg.SQLModel,
		SystemPrompt: sqlSystemPrompt(schema),
		UserPrompt:   sqlUserPrompt(question),
		JSONResponse: true,
	})
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("llm: falha ao gerar SQL")
		return nil, fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}

	log.ForContext(ctx).WithField("response", raw).Debug("llm: resposta da geração de SQL")

	generated, err := parseSQLQuery(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}

	return generated, nil
}

// FormatAnswer transforma o resultado da consulta em texto
func (s *LLMIntegrator) FormatAnswer(ctx context.Context, question string, result *domain.QueryResult, explanation string) (string, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	prompt, err := formatPrompt(question, result, explanation)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrFormattingFailed, err)
	}

	text, err := s.Client.Complete(ctx, llmclient.CompletionRequest{
		Model:      s.cfg.FormatModel,
		UserPrompt: prompt,
	})
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("llm: falha ao formatar resposta")
		return "", fmt.Errorf("%w: %v", domain.ErrFormattingFailed, err)
	}

	return strings.TrimSpace(text), nil
}

func (s *LLMIntegrator) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.cfg.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.cfg.Timeout)
}

func parseSQLQuery(raw string) (*domain.GeneratedQuery, error) {
	cleaned := stripMarkdownSQL(raw)
	if cleaned == "" {
		return nil, errors.New("model returned an empty response")
	}

	var payload llmdomain.SQLQuery
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return nil, fmt.Errorf("decode model response: %w", err)
	}

	query := stripMarkdownSQL(payload.Query)
	if query == "" {
		return nil, errors.New("model returned empty SQL")
	}

	return &domain.GeneratedQuery{
		Query:       query,
		Explanation: strings.TrimSpace(payload.Explanation),
	}, nil
}
