package domain

// GeneratedQuery é o SQL produzido pelo modelo junto com a explicação da consulta
type GeneratedQuery struct {
	Query       string `json:"query"`
	Explanation string `json:"explanation"`
}

// Answer é o resultado de uma pergunta respondida com sucesso
type Answer struct {
	Question        string       `json:"question"`
	SQLQuery        string       `json:"sql_query"`
	Explanation     string       `json:"explanation"`
	Result          *QueryResult `json:"-"`
	RowCount        int          `json:"row_count"`
	FormattedAnswer string       `json:"formatted_answer"`
	FormattingError string       `json:"formatting_error,omitempty"`
}

// ExampleQuestion é uma pergunta de exemplo exibida para o usuário
type ExampleQuestion struct {
	Question    string `json:"question"`
	Description string `json:"description"`
}
