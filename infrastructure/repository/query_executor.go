package repository

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/ecommerce-agent-api/infrastructure/database/postgres"
	"github.com/vfg2006/ecommerce-agent-api/internal/domain"
	"github.com/vfg2006/ecommerce-agent-api/pkg/log"
)

// QueryExecutor executa o SQL gerado pelo modelo e devolve linhas tipadas
type QueryExecutor interface {
	Execute(ctx context.Context, sqlText string) (*domain.QueryResult, error)
}

type QueryExecutorOptions struct {
	Timeout      time.Duration
	GuardEnabled bool
}

type queryExecutor struct {
	conn *postgres.Connection
	opts QueryExecutorOptions
}

func NewQueryExecutor(conn *postgres.Connection, opts QueryExecutorOptions) QueryExecutor {
	return &queryExecutor{
		conn: conn,
		opts: opts,
	}
}

var forbiddenKeywords = regexp.MustCompile(`(?i)\b(insert|update|delete|drop|alter|create|truncate|grant|revoke|copy|merge|call|vacuum|reindex)\b`)

var (
	errNotReadOnly        = errors.New("only read-only SELECT/WITH queries are allowed")
	errMultipleStatements = errors.New("only a single statement is allowed")
)

// checkReadOnly aceita apenas uma instrução SELECT/WITH sem palavras de escrita ou DDL
func checkReadOnly(sqlText string) error {
	normalized := strings.TrimSpace(sqlText)
	normalized = strings.TrimSpace(strings.TrimRight(normalized, "; \n\t"))
	if normalized == "" {
		return errNotReadOnly
	}

	if strings.Contains(normalized, ";") {
		return errMultipleStatements
	}

	lower := strings.ToLower(normalized)
	if !strings.HasPrefix(lower, "select") && !strings.HasPrefix(lower, "with") {
		return errNotReadOnly
	}

	if keyword := forbiddenKeywords.FindString(normalized); keyword != "" {
		return fmt.Errorf("%w: found %s", errNotReadOnly, strings.ToUpper(keyword))
	}

	return nil
}

func (e *queryExecutor) Execute(ctx context.Context, sqlText string) (*domain.QueryResult, error) {
	if e.opts.GuardEnabled {
		if err := checkReadOnly(sqlText); err != nil {
			log.ForContext(ctx).WithField("sql", sqlText).Warn("SQL rejeitado pela verificação de somente leitura")
			return nil, fmt.Errorf("%w: %v", domain.ErrQueryExecutionFailed, err)
		}
	}

	if e.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.opts.Timeout)
		defer cancel()
	}

	var result *domain.QueryResult
	err := e.conn.RunReadOnly(ctx, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, sqlText)
		if err != nil {
			return err
		}
		defer rows.Close()

		result, err = scanResult(rows)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrQueryExecutionFailed, driverMessage(err))
	}

	return result, nil
}

func scanResult(rows *sql.Rows) (*domain.QueryResult, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	columns = uniqueColumns(columns)

	columnTypes, err := rows.ColumnTypes()
	if err != nil {
		return nil, err
	}

	result := &domain.QueryResult{
		Columns: columns,
		Rows:    make([]domain.Row, 0),
	}

	for rows.Next() {
		raw := make([]any, len(columns))
		dest := make([]any, len(columns))
		for i := range raw {
			dest[i] = &raw[i]
		}

		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}

		row := make(domain.Row, len(columns))
		for i, column := range columns {
			row[column] = domain.NewValue(raw[i], columnTypes[i].DatabaseTypeName())
		}
		result.Rows = append(result.Rows, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// uniqueColumns renomeia colunas repetidas (ex.: SUM sem alias vira "sum" duas
// vezes) para sum, sum_2, sum_3. Cada coluna precisa de uma chave própria na Row.
func uniqueColumns(columns []string) []string {
	original := make(map[string]bool, len(columns))
	for _, column := range columns {
		original[column] = true
	}

	assigned := make(map[string]bool, len(columns))
	result := make([]string, len(columns))
	for i, column := range columns {
		name := column
		if assigned[name] {
			for n := 2; assigned[name] || original[name]; n++ {
				name = fmt.Sprintf("%s_%d", column, n)
			}
		}
		assigned[name] = true
		result[i] = name
	}
	return result
}

// driverMessage preserva a mensagem original do banco
func driverMessage(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if pqErr.Detail != "" {
			return fmt.Sprintf("%s (%s)", pqErr.Message, pqErr.Detail)
		}
		return pqErr.Message
	}
	return err.Error()
}
