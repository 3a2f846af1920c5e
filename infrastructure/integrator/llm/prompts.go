package llm

import (
	"fmt"
	"strings"

	"github.com/vfg2006/ecommerce-agent-api/infrastructure/integrator/llm/llmdomain"
	"github.com/vfg2006/ecommerce-agent-api/internal/domain"
)

// Linhas enviadas ao modelo de formatação; o restante é resumido pela contagem
const maxPromptRows = 50

func sqlSystemPrompt(schema string) string {
	return fmt.Sprintf(`You are an expert SQL analyst for an e-commerce database. Convert natural language questions to SQL queries.

Database Schema:
%s

Rules:
1. Generate a single valid PostgreSQL SELECT query (WITH is allowed). Never modify data.
2. Use proper table joins on item_id when needed.
3. Include appropriate aggregations and filters.
4. Guard divisions: only divide by clicks, impressions or ad_spend when they are greater than zero.
5. Always use the exact column names listed in the schema.
6. Answer with a JSON object with the fields "query" and "explanation" and nothing else.`, strings.TrimSpace(schema))
}

func sqlUserPrompt(question string) string {
	return "Question: " + question
}

func formatPrompt(question string, result *domain.QueryResult, explanation string) (string, error) {
	payload, err := json.Marshal(toPromptResult(result))
	if err != nil {
		return "", fmt.Errorf("marshal query result: %w", err)
	}

	return fmt.Sprintf(`Question: %s
SQL Result: %s
SQL Explanation: %s

Please format this data into a clear, human-readable answer.
Include relevant numbers, percentages, and insights.
If the result is a single number, present it clearly with context.
If it's multiple rows, organize the information logically.
If the result is empty, say that no matching data was found.`, question, string(payload), explanation), nil
}

func toPromptResult(result *domain.QueryResult) llmdomain.PromptResult {
	prompt := llmdomain.PromptResult{
		Columns: []string{},
		Rows:    [][]any{},
	}
	if result == nil {
		return prompt
	}

	prompt.Columns = result.Columns
	prompt.RowCount = result.RowCount()

	for i, row := range result.Rows {
		if i >= maxPromptRows {
			break
		}
		values := make([]any, 0, len(result.Columns))
		for _, column := range result.Columns {
			values = append(values, row[column])
		}
		prompt.Rows = append(prompt.Rows, values)
	}

	return prompt
}

func stripMarkdownSQL(value string) string {
	trimmed := strings.TrimSpace(value)
	if strings.HasPrefix(trimmed, "```") {
		trimmed = strings.TrimPrefix(trimmed, "```sql")
		trimmed = strings.TrimPrefix(trimmed, "```json")
		trimmed = strings.TrimPrefix(trimmed, "```")
		trimmed = strings.TrimSuffix(trimmed, "```")
		return strings.TrimSpace(trimmed)
	}
	return trimmed
}
