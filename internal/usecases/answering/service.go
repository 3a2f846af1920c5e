package answering

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/vfg2006/ecommerce-agent-api/internal/domain"
	"github.com/vfg2006/ecommerce-agent-api/pkg/log"
	"github.com/vfg2006/ecommerce-agent-api/pkg/metrics"
)

const (
	stageGeneration = "generation"
	stageExecution  = "execution"
	stageFormatting = "formatting"
)

type Service struct {
	generator SQLGenerator
	executor  QueryExecutor
	formatter AnswerFormatter
	schema    string
}

func NewService(generator SQLGenerator, executor QueryExecutor, formatter AnswerFormatter) Answerer {
	return &Service{
		generator: generator,
		executor:  executor,
		formatter: formatter,
		schema:    SchemaDescription,
	}
}

func (s *Service) Answer(ctx context.Context, question string) (*domain.Answer, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		metrics.ObserveQuestion(string(domain.InvalidInput))
		return nil, NewAnswerError(domain.InvalidInput, question, ErrEmptyQuestion)
	}

	logger := log.ForContext(ctx).WithField("question", question)
	logger.Info("Processando pergunta")

	startTime := time.Now()
	generated, err := s.generator.GenerateSQL(ctx, question, s.schema)
	metrics.ObserveStage(stageGeneration, time.Since(startTime))
	if err == nil && (generated == nil || strings.TrimSpace(generated.Query) == "") {
		err = errors.New("model returned empty SQL")
	}
	if err != nil {
		logger.WithError(err).Error("Erro ao gerar SQL")
		metrics.ObserveQuestion(string(domain.GenerationFailed))
		return nil, NewAnswerError(domain.GenerationFailed, question, err)
	}

	logger.WithField("sql", generated.Query).Info("SQL gerado")

	startTime = time.Now()
	result, err := s.executor.Execute(ctx, generated.Query)
	metrics.ObserveStage(stageExecution, time.Since(startTime))
	if err != nil {
		logger.WithError(err).WithField("sql", generated.Query).Error("Erro ao executar SQL")
		metrics.ObserveQuestion(string(domain.QueryExecutionFailed))
		return nil, NewAnswerError(domain.QueryExecutionFailed, question, err)
	}
	if result == nil {
		result = &domain.QueryResult{Columns: []string{}, Rows: []domain.Row{}}
	}

	logger.WithField("row_count", result.RowCount()).Info("Consulta executada com sucesso")

	answer := &domain.Answer{
		Question:    question,
		SQLQuery:    generated.Query,
		Explanation: generated.Explanation,
		Result:      result,
		RowCount:    result.RowCount(),
	}

	startTime = time.Now()
	formatted, err := s.formatter.FormatAnswer(ctx, question, result, generated.Explanation)
	metrics.ObserveStage(stageFormatting, time.Since(startTime))
	if err == nil && strings.TrimSpace(formatted) == "" {
		err = errors.New("formatter returned an empty answer")
	}
	if err != nil {
		formattingErr := NewAnswerError(domain.FormattingFailed, question, err)
		logger.WithError(formattingErr).Warn("Falha na formatação, usando dados brutos")
		answer.FormattedAnswer = RawDataAnswer(result)
		answer.FormattingError = formattingErr.Error()
		metrics.ObserveQuestion(string(domain.FormattingFailed))
		return answer, nil
	}

	answer.FormattedAnswer = formatted
	metrics.ObserveQuestion("ok")

	return answer, nil
}

func (s *Service) QuickAnswers(ctx context.Context) []*QuickAnswer {
	answers := make([]*QuickAnswer, 0, len(quickQuestions))

	for _, quick := range quickQuestions {
		answer, err := s.Answer(ctx, quick.Question)
		answers = append(answers, &QuickAnswer{
			Key:      quick.Key,
			Question: quick.Question,
			Answer:   answer,
			Err:      err,
		})
	}

	return answers
}

func (s *Service) Examples() []domain.ExampleQuestion {
	examples := make([]domain.ExampleQuestion, len(exampleQuestions))
	copy(examples, exampleQuestions)
	return examples
}
