package answering

import (
	"strings"

	"github.com/vfg2006/ecommerce-agent-api/internal/domain"
)

const rawDataPrefix = "Raw data: "

// RawDataAnswer monta a resposta determinística usada quando a formatação falha.
// As colunas seguem a ordem do resultado.
func RawDataAnswer(result *domain.QueryResult) string {
	var b strings.Builder
	b.WriteString(rawDataPrefix)
	b.WriteString("[")

	if result != nil {
		for i, row := range result.Rows {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString("{")
			for j, column := range result.Columns {
				if j > 0 {
					b.WriteString(", ")
				}
				b.WriteString(column)
				b.WriteString(": ")
				b.WriteString(row[column].String())
			}
			b.WriteString("}")
		}
	}

	b.WriteString("]")
	return b.String()
}
