package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ecommerce-agent-api/infrastructure/integrator/llm/llmclient"
	"github.com/vfg2006/ecommerce-agent-api/infrastructure/integrator/llm/mocks"
	"github.com/vfg2006/ecommerce-agent-api/internal/config"
	"github.com/vfg2006/ecommerce-agent-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newIntegrator(t *testing.T) (*LLMIntegrator, *mocks.MockClient) {
	t.Helper()

	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	return New(config.LLM{SQLModel: "sql-model", FormatModel: "format-model", Timeout: time.Second}, client), client
}

func TestLLMIntegrator_GenerateSQL(t *testing.T) {
	tests := []struct {
		name     string
		response string
		err      error
		want     *domain.GeneratedQuery
		wantErr  bool
	}{
		{
			name:     "JSON válido",
			response: `{"query":"SELECT SUM(total_sales) FROM product_sales;","explanation":"Soma das vendas"}`,
			want:     &domain.GeneratedQuery{Query: "SELECT SUM(total_sales) FROM product_sales;", Explanation: "Soma das vendas"},
		},
		{
			name:     "JSON dentro de bloco markdown com SQL cercado",
			response: "```json\n{\"query\":\"```sql\\nSELECT 1\\n```\",\"explanation\":\"\"}\n```",
			want:     &domain.GeneratedQuery{Query: "SELECT 1", Explanation: ""},
		},
		{
			name:     "Query vazia",
			response: `{"query":"  ","explanation":"nada"}`,
			wantErr:  true,
		},
		{
			name:     "Resposta que não é JSON",
			response: "SELECT 1",
			wantErr:  true,
		},
		{
			name:    "Falha de transporte",
			err:     errors.New("connection refused"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			integrator, client := newIntegrator(t)

			client.EXPECT().
				Complete(gomock.Any(), gomock.Any()).
				DoAndReturn(func(ctx context.Context, req llmclient.CompletionRequest) (string, error) {
					assert.Equal(t, "sql-model", req.Model)
					assert.True(t, req.JSONResponse)
					assert.Contains(t, req.SystemPrompt, "product_sales")
					assert.Equal(t, "Question: What is my total sales?", req.UserPrompt)

					_, hasDeadline := ctx.Deadline()
					assert.True(t, hasDeadline)

					return tt.response, tt.err
				})

			got, err := integrator.GenerateSQL(context.Background(), "What is my total sales?", "product_sales(total_sales)")

			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrGenerationFailed)
				assert.Nil(t, got)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLLMIntegrator_FormatAnswer(t *testing.T) {
	integrator, client := newIntegrator(t)

	result := &domain.QueryResult{
		Columns: []string{"total"},
		Rows:    []domain.Row{{"total": domain.NumberValue(150)}},
	}

	client.EXPECT().
		Complete(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req llmclient.CompletionRequest) (string, error) {
			assert.Equal(t, "format-model", req.Model)
			assert.False(t, req.JSONResponse)
			assert.Contains(t, req.UserPrompt, `SQL Result: {"columns":["total"],"rows":[[150]],"row_count":1}`)
			assert.Contains(t, req.UserPrompt, "SQL Explanation: Soma")
			return "  Your total sales are $150.00.\n", nil
		})

	text, err := integrator.FormatAnswer(context.Background(), "What is my total sales?", result, "Soma")

	require.NoError(t, err)
	assert.Equal(t, "Your total sales are $150.00.", text)
}

func TestLLMIntegrator_FormatAnswerError(t *testing.T) {
	integrator, client := newIntegrator(t)

	client.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("", context.DeadlineExceeded)

	_, err := integrator.FormatAnswer(context.Background(), "q", &domain.QueryResult{}, "")

	assert.ErrorIs(t, err, domain.ErrFormattingFailed)
}

func TestToPromptResult_LimitsRows(t *testing.T) {
	result := &domain.QueryResult{Columns: []string{"item_id", "sales"}}
	for i := 0; i < maxPromptRows+10; i++ {
		result.Rows = append(result.Rows, domain.Row{
			"item_id": domain.IntValue(int64(i)),
			"sales":   domain.NumberValue(float64(i)),
		})
	}

	prompt := toPromptResult(result)

	assert.Len(t, prompt.Rows, maxPromptRows)
	assert.Equal(t, maxPromptRows+10, prompt.RowCount)
	assert.Equal(t, []any{domain.IntValue(0), domain.NumberValue(0)}, prompt.Rows[0])
}

func TestStripMarkdownSQL(t *testing.T) {
	assert.Equal(t, "SELECT 1;", stripMarkdownSQL("```sql\nSELECT 1;\n```"))
	assert.Equal(t, "SELECT 1;", stripMarkdownSQL("  SELECT 1;  "))
}
