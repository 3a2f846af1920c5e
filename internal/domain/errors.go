package domain

import "errors"

// ErrorKind identifica o estágio do pipeline de perguntas que falhou
type ErrorKind string

const (
	InvalidInput         ErrorKind = "InvalidInput"
	GenerationFailed     ErrorKind = "GenerationFailed"
	QueryExecutionFailed ErrorKind = "QueryExecutionFailed"
	FormattingFailed     ErrorKind = "FormattingFailed"
)

var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrGenerationFailed     = errors.New("failed to generate SQL query")
	ErrQueryExecutionFailed = errors.New("failed to execute SQL query")
	ErrFormattingFailed     = errors.New("failed to format response")
)

// Sentinel devolve o erro base associado ao tipo
func (k ErrorKind) Sentinel() error {
	switch k {
	case InvalidInput:
		return ErrInvalidInput
	case GenerationFailed:
		return ErrGenerationFailed
	case QueryExecutionFailed:
		return ErrQueryExecutionFailed
	case FormattingFailed:
		return ErrFormattingFailed
	}
	return nil
}
