package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ecommerce-agent-api/infrastructure/database/postgres"
	"github.com/vfg2006/ecommerce-agent-api/internal/domain"
)

type EligibilityRepository interface {
	InsertBatch(ctx context.Context, records []*domain.EligibilityRecord) error
	DeleteAll(ctx context.Context) (int64, error)
	Count(ctx context.Context) (int, error)
	CountDistinctItems(ctx context.Context) (int, error)
}

type eligibilityRepository struct {
	conn *postgres.Connection
}

func NewEligibilityRepository(conn *postgres.Connection) EligibilityRepository {
	return &eligibilityRepository{
		conn: conn,
	}
}

func (r *eligibilityRepository) InsertBatch(ctx context.Context, records []*domain.EligibilityRecord) error {
	if len(records) == 0 {
		return nil
	}

	builder := squirrel.
		Insert(postgres.EligibilityTable).
		Columns("item_id", "eligibility_datetime", "eligibility", "message").
		PlaceholderFormat(squirrel.Dollar)

	for _, record := range records {
		builder = builder.Values(
			record.ItemID,
			record.EligibilityDateTime,
			record.Eligible,
			record.Message,
		)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("erro ao inserir elegibilidade: %w", err)
		}
		return nil
	})
}

func (r *eligibilityRepository) DeleteAll(ctx context.Context) (int64, error) {
	return deleteAll(ctx, r.conn, postgres.EligibilityTable)
}

func (r *eligibilityRepository) Count(ctx context.Context) (int, error) {
	return countRows(ctx, r.conn, postgres.EligibilityTable)
}

// CountDistinctItems conta os produtos conhecidos pela tabela de elegibilidade
func (r *eligibilityRepository) CountDistinctItems(ctx context.Context) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(DISTINCT item_id)").
		From(postgres.EligibilityTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total int
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao contar produtos: %w", err)
	}

	return total, nil
}
