package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ecommerce-agent-api/infrastructure/database/postgres"
	"github.com/vfg2006/ecommerce-agent-api/internal/domain"
)

type AdMetricsRepository interface {
	InsertBatch(ctx context.Context, records []*domain.AdMetricsRecord) error
	DeleteAll(ctx context.Context) (int64, error)
	Count(ctx context.Context) (int, error)
	ListByItem(ctx context.Context, itemID int) ([]*domain.AdMetricsRecord, error)
}

type adMetricsRepository struct {
	conn *postgres.Connection
}

func NewAdMetricsRepository(conn *postgres.Connection) AdMetricsRepository {
	return &adMetricsRepository{
		conn: conn,
	}
}

func (r *adMetricsRepository) InsertBatch(ctx context.Context, records []*domain.AdMetricsRecord) error {
	if len(records) == 0 {
		return nil
	}

	builder := squirrel.
		Insert(postgres.AdMetricsTable).
		Columns("date", "item_id", "ad_sales", "impressions", "ad_spend", "clicks", "units_sold").
		PlaceholderFormat(squirrel.Dollar)

	for _, record := range records {
		builder = builder.Values(
			record.Date.Format("2006-01-02"),
			record.ItemID,
			record.AdSales,
			record.Impressions,
			record.AdSpend,
			record.Clicks,
			record.UnitsSold,
		)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("erro ao inserir métricas de anúncio: %w", err)
		}
		return nil
	})
}

func (r *adMetricsRepository) DeleteAll(ctx context.Context) (int64, error) {
	return deleteAll(ctx, r.conn, postgres.AdMetricsTable)
}

func (r *adMetricsRepository) Count(ctx context.Context) (int, error) {
	return countRows(ctx, r.conn, postgres.AdMetricsTable)
}

// ListByItem retorna as métricas do item em ordem cronológica
func (r *adMetricsRepository) ListByItem(ctx context.Context, itemID int) ([]*domain.AdMetricsRecord, error) {
	query, args, err := squirrel.
		Select("id", "date", "item_id", "ad_sales", "impressions", "ad_spend", "clicks", "units_sold", "created_at").
		From(postgres.AdMetricsTable).
		Where(squirrel.Eq{"item_id": itemID}).
		OrderBy("date ASC", "id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]*domain.AdMetricsRecord, 0)
	for rows.Next() {
		record := &domain.AdMetricsRecord{}
		err := rows.Scan(
			&record.ID,
			&record.Date,
			&record.ItemID,
			&record.AdSales,
			&record.Impressions,
			&record.AdSpend,
			&record.Clicks,
			&record.UnitsSold,
			&record.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear métricas de anúncio: %w", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}
