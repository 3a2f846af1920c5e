package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ecommerce-agent-api/infrastructure/database/postgres"
	"github.com/vfg2006/ecommerce-agent-api/internal/domain"
)

type SalesRepository interface {
	InsertBatch(ctx context.Context, records []*domain.SalesRecord) error
	DeleteAll(ctx context.Context) (int64, error)
	Count(ctx context.Context) (int, error)
	DateRange(ctx context.Context) (*domain.SalesDateRange, error)
}

type salesRepository struct {
	conn *postgres.Connection
}

func NewSalesRepository(conn *postgres.Connection) SalesRepository {
	return &salesRepository{
		conn: conn,
	}
}

// InsertBatch grava o lote inteiro em um único INSERT e faz commit
func (r *salesRepository) InsertBatch(ctx context.Context, records []*domain.SalesRecord) error {
	if len(records) == 0 {
		return nil
	}

	builder := squirrel.
		Insert(postgres.SalesTable).
		Columns("date", "item_id", "total_sales", "total_units_ordered").
		PlaceholderFormat(squirrel.Dollar)

	for _, record := range records {
		builder = builder.Values(
			record.Date.Format("2006-01-02"),
			record.ItemID,
			record.TotalSales,
			record.TotalUnitsOrdered,
		)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("erro ao inserir vendas: %w", err)
		}
		return nil
	})
}

func (r *salesRepository) DeleteAll(ctx context.Context) (int64, error) {
	return deleteAll(ctx, r.conn, postgres.SalesTable)
}

func (r *salesRepository) Count(ctx context.Context) (int, error) {
	return countRows(ctx, r.conn, postgres.SalesTable)
}

// DateRange devolve a primeira e a última data de vendas, nulas quando a tabela está vazia
func (r *salesRepository) DateRange(ctx context.Context) (*domain.SalesDateRange, error) {
	query, args, err := squirrel.
		Select("MIN(date)", "MAX(date)").
		From(postgres.SalesTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var start, end sql.NullTime
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&start, &end); err != nil {
		return nil, fmt.Errorf("erro ao buscar intervalo de datas: %w", err)
	}

	dateRange := &domain.SalesDateRange{}
	if start.Valid {
		dateRange.SalesStart = &start.Time
	}
	if end.Valid {
		dateRange.SalesEnd = &end.Time
	}

	return dateRange, nil
}
