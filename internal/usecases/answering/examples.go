package answering

import "github.com/vfg2006/ecommerce-agent-api/internal/domain"

const (
	QuickTotalSales = "total_sales"
	QuickRoAS       = "roas"
	QuickHighestCPC = "highest_cpc"
)

// quickQuestions mantém a ordem de execução das respostas rápidas
var quickQuestions = []struct {
	Key      string
	Question string
}{
	{Key: QuickTotalSales, Question: "What is my total sales?"},
	{Key: QuickRoAS, Question: "Calculate the RoAS (Return on Ad Spend)"},
	{Key: QuickHighestCPC, Question: "Which product had the highest CPC (Cost Per Click)?"},
}

var exampleQuestions = []domain.ExampleQuestion{
	{
		Question:    "What is my total sales?",
		Description: "Calculate the sum of all revenue across all products",
	},
	{
		Question:    "Calculate the RoAS (Return on Ad Spend)",
		Description: "Calculate the return on advertising spend as a percentage",
	},
	{
		Question:    "Which product had the highest CPC (Cost Per Click)?",
		Description: "Find the product with the maximum cost per click",
	},
	{
		Question:    "What are my top performing products by revenue?",
		Description: "List products sorted by total revenue",
	},
	{
		Question:    "How much did I spend on advertising this month?",
		Description: "Calculate total ad spend for the current period",
	},
}

// QuickAnswer é o resultado de uma pergunta de demonstração; Err é *AnswerError quando falha
type QuickAnswer struct {
	Key      string
	Question string
	Answer   *domain.Answer
	Err      error
}
