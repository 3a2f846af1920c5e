package answering

import (
	"errors"
	"fmt"

	"github.com/vfg2006/ecommerce-agent-api/internal/domain"
)

var ErrEmptyQuestion = errors.New("question cannot be empty")

// AnswerError identifica o estágio que interrompeu o pipeline
type AnswerError struct {
	Kind     domain.ErrorKind
	Question string
	Err      error
}

// NewAnswerError garante que a cadeia de erros contenha o sentinela do estágio
func NewAnswerError(kind domain.ErrorKind, question string, err error) *AnswerError {
	sentinel := kind.Sentinel()
	if err == nil {
		err = sentinel
	} else if sentinel != nil && !errors.Is(err, sentinel) {
		err = fmt.Errorf("%w: %w", sentinel, err)
	}

	return &AnswerError{
		Kind:     kind,
		Question: question,
		Err:      err,
	}
}

func (e *AnswerError) Error() string {
	return e.Err.Error()
}

func (e *AnswerError) Unwrap() error {
	return e.Err
}

// FallbackAnswer é o texto exibido ao usuário quando o pipeline falha
func (e *AnswerError) FallbackAnswer() string {
	return "I encountered an error while processing your question: " + e.Error()
}
