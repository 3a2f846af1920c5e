package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ecommerce-agent-api/infrastructure/database/postgres"
)

//go:generate mockgen -source=sales.go -destination=mocks/sales.go -package=mocks
//go:generate mockgen -source=ad_metrics.go -destination=mocks/ad_metrics.go -package=mocks
//go:generate mockgen -source=eligibility.go -destination=mocks/eligibility.go -package=mocks
//go:generate mockgen -source=query_executor.go -destination=mocks/query_executor.go -package=mocks

func countRows(ctx context.Context, q postgres.Queryer, table string) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(table).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total int
	if err := q.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao contar registros de %s: %w", table, err)
	}

	return total, nil
}

func deleteAll(ctx context.Context, q postgres.Queryer, table string) (int64, error) {
	query, args, err := squirrel.
		Delete(table).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao limpar %s: %w", table, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}
