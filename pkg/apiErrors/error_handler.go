package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro da API
const (
	// Erros de autenticação
	ErrInvalidCredentials    = "AUTH_001" // Credenciais inválidas
	ErrInvalidToken          = "AUTH_002" // Token inválido
	ErrInsufficientPrivilege = "AUTH_003" // Privilégios insuficientes

	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido

	// Erros do pipeline de perguntas
	ErrGenerationFailed     = "ASK_001" // Modelo não gerou SQL utilizável
	ErrQueryExecutionFailed = "ASK_002" // Banco rejeitou o SQL gerado

	// Erros do servidor
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrExternalService   = "SRV_003" // Erro em serviço externo
	ErrNotFound          = "SRV_004" // Recurso inexistente
	ErrServiceDisabled   = "SRV_005" // Serviço desabilitado por configuração
	ErrAlreadyRunning    = "SRV_006" // Execução já em andamento
)

var httpStatusMap = map[string]int{
	ErrInvalidCredentials:    http.StatusUnauthorized,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrGenerationFailed:      http.StatusBadGateway,
	ErrQueryExecutionFailed:  http.StatusUnprocessableEntity,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrExternalService:       http.StatusBadGateway,
	ErrNotFound:              http.StatusNotFound,
	ErrServiceDisabled:       http.StatusServiceUnavailable,
	ErrAlreadyRunning:        http.StatusConflict,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Error   string `json:"error,omitempty"`
	Details any    `json:"details,omitempty"`
}

// StatusFor devolve o status HTTP do código, com 500 para códigos desconhecidos
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Success: false,
		Code:    code,
		Error:   message,
		Details: details,
	}

	WriteJSON(w, StatusFor(code), apiErr)
}

// WriteJSON serializa o corpo com o status informado
func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
