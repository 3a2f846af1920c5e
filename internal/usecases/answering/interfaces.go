package answering

import (
	"context"

	"github.com/vfg2006/ecommerce-agent-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces.go -package=mocks

// SQLGenerator traduz a pergunta em SQL usando a descrição do schema
type SQLGenerator interface {
	GenerateSQL(ctx context.Context, question, schema string) (*domain.GeneratedQuery, error)
}

// QueryExecutor executa o SQL gerado exatamente como recebido
type QueryExecutor interface {
	Execute(ctx context.Context, sqlText string) (*domain.QueryResult, error)
}

// AnswerFormatter transforma o resultado em texto para o usuário
type AnswerFormatter interface {
	FormatAnswer(ctx context.Context, question string, result *domain.QueryResult, explanation string) (string, error)
}

type Answerer interface {
	// Answer executa o pipeline completo para uma pergunta
	Answer(ctx context.Context, question string) (*domain.Answer, error)

	// QuickAnswers responde as perguntas de demonstração em sequência
	QuickAnswers(ctx context.Context) []*QuickAnswer

	// Examples lista as perguntas de exemplo
	Examples() []domain.ExampleQuestion
}
