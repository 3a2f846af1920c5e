package postgres

import (
	"context"
	"fmt"

	"github.com/vfg2006/ecommerce-agent-api/pkg/log"
)

const (
	SalesTable       = "product_sales"
	AdMetricsTable   = "product_ad_metrics"
	EligibilityTable = "product_eligibility"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS product_sales (
		id BIGSERIAL PRIMARY KEY,
		date DATE NOT NULL,
		item_id INTEGER NOT NULL,
		total_sales DOUBLE PRECISION NOT NULL DEFAULT 0,
		total_units_ordered INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_product_sales_item_id ON product_sales (item_id)`,
	`CREATE TABLE IF NOT EXISTS product_ad_metrics (
		id BIGSERIAL PRIMARY KEY,
		date DATE NOT NULL,
		item_id INTEGER NOT NULL,
		ad_sales DOUBLE PRECISION NOT NULL DEFAULT 0,
		impressions INTEGER NOT NULL DEFAULT 0,
		ad_spend DOUBLE PRECISION NOT NULL DEFAULT 0,
		clicks INTEGER NOT NULL DEFAULT 0,
		units_sold INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_product_ad_metrics_item_id ON product_ad_metrics (item_id)`,
	`CREATE TABLE IF NOT EXISTS product_eligibility (
		id BIGSERIAL PRIMARY KEY,
		item_id INTEGER NOT NULL,
		eligibility_datetime TIMESTAMP NOT NULL,
		eligibility BOOLEAN NOT NULL,
		message TEXT,
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_product_eligibility_item_id ON product_eligibility (item_id)`,
}

// EnsureSchema cria as tabelas caso ainda não existam
func (c *Connection) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := c.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("erro ao criar schema: %w", err)
		}
	}

	log.L.Debug("Schema do banco verificado")
	return nil
}
