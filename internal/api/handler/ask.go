package handler

import (
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/ecommerce-agent-api/internal/domain"
	"github.com/vfg2006/ecommerce-agent-api/internal/usecases/answering"
	"github.com/vfg2006/ecommerce-agent-api/pkg/apiErrors"
	"github.com/vfg2006/ecommerce-agent-api/pkg/log"
)

type AskRequest struct {
	Question *string `json:"question"`
}

// AskResponse é o corpo devolvido quando a pergunta é respondida
type AskResponse struct {
	Success         bool         `json:"success"`
	Question        string       `json:"question"`
	SQLQuery        string       `json:"sql_query"`
	Explanation     string       `json:"explanation"`
	RawResult       []domain.Row `json:"raw_result"`
	Columns         []string     `json:"columns"`
	RowCount        int          `json:"row_count"`
	FormattedAnswer string       `json:"formatted_answer"`
	FormattingError string       `json:"formatting_error,omitempty"`
}

// AskErrorResponse identifica o estágio que falhou junto com a resposta de contingência
type AskErrorResponse struct {
	Success         bool   `json:"success"`
	Question        string `json:"question"`
	Stage           string `json:"stage"`
	Error           string `json:"error"`
	FormattedAnswer string `json:"formatted_answer"`
}

// stageCodes relaciona o estágio do pipeline ao código de erro da API
var stageCodes = map[domain.ErrorKind]string{
	domain.InvalidInput:         apiErrors.ErrInvalidRequest,
	domain.GenerationFailed:     apiErrors.ErrGenerationFailed,
	domain.QueryExecutionFailed: apiErrors.ErrQueryExecutionFailed,
	domain.FormattingFailed:     apiErrors.ErrExternalService,
}

func Ask(service answering.Answerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AskRequest
		if err := decodeBody(w, r, &req); err != nil || req.Question == nil {
			writeFailure(w, http.StatusBadRequest, "Question is required")
			return
		}

		question := strings.TrimSpace(*req.Question)
		if question == "" {
			writeFailure(w, http.StatusBadRequest, "Question cannot be empty")
			return
		}

		answer, err := service.Answer(r.Context(), question)
		if err != nil {
			status, body := answerFailure(question, err)
			log.AddRequestFields(r.Context(), log.Fields{"stage": body.Stage})
			log.ForContext(r.Context()).WithError(err).WithField("stage", body.Stage).Warn("Falha ao responder pergunta")
			apiErrors.WriteJSON(w, status, body)
			return
		}

		log.AddRequestFields(r.Context(), log.Fields{
			"row_count":           answer.RowCount,
			"formatting_fallback": answer.FormattingError != "",
		})
		apiErrors.WriteJSON(w, http.StatusOK, answerSuccess(answer))
	}
}

func Examples(service answering.Answerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeSuccess(w, http.StatusOK, map[string]any{
			"examples": service.Examples(),
		})
	}
}

// QuickAnswers responde as perguntas de demonstração indexadas pela chave
func QuickAnswers(service answering.Answerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		results := make(map[string]any)

		for _, quick := range service.QuickAnswers(r.Context()) {
			if quick.Err != nil {
				_, body := answerFailure(quick.Question, quick.Err)
				results[quick.Key] = body
				continue
			}
			results[quick.Key] = answerSuccess(quick.Answer)
		}

		writeSuccess(w, http.StatusOK, map[string]any{
			"results": results,
		})
	}
}

func answerSuccess(answer *domain.Answer) AskResponse {
	response := AskResponse{
		Success:         true,
		Question:        answer.Question,
		SQLQuery:        answer.SQLQuery,
		Explanation:     answer.Explanation,
		RawResult:       []domain.Row{},
		Columns:         []string{},
		RowCount:        answer.RowCount,
		FormattedAnswer: answer.FormattedAnswer,
		FormattingError: answer.FormattingError,
	}

	if answer.Result != nil {
		if answer.Result.Rows != nil {
			response.RawResult = answer.Result.Rows
		}
		if answer.Result.Columns != nil {
			response.Columns = answer.Result.Columns
		}
	}

	return response
}

func answerFailure(question string, err error) (int, AskErrorResponse) {
	var answerErr *answering.AnswerError
	if !errors.As(err, &answerErr) {
		answerErr = answering.NewAnswerError("", question, err)
	}

	code, ok := stageCodes[answerErr.Kind]
	if !ok {
		code = apiErrors.ErrInternalServer
	}

	stage := string(answerErr.Kind)
	if stage == "" {
		stage = "Unknown"
	}

	return apiErrors.StatusFor(code), AskErrorResponse{
		Success:         false,
		Question:        question,
		Stage:           stage,
		Error:           answerErr.Error(),
		FormattedAnswer: answerErr.FallbackAnswer(),
	}
}
