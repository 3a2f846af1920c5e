package llmdomain

// SQLQuery é o objeto JSON que o modelo devolve na geração de SQL
type SQLQuery struct {
	Query       string `json:"query"`
	Explanation string `json:"explanation"`
}

// PromptResult é a forma compacta do resultado enviada ao modelo de formatação
type PromptResult struct {
	Columns  []string `json:"columns"`
	Rows     [][]any  `json:"rows"`
	RowCount int      `json:"row_count"`
}
