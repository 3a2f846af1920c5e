package domain

import (
	"time"
)

// SalesRecord representa o total vendido de um item em um dia
type SalesRecord struct {
	ID                int64     `json:"id"`
	Date              time.Time `json:"date"`
	ItemID            int       `json:"item_id"`
	TotalSales        float64   `json:"total_sales"`
	TotalUnitsOrdered int       `json:"total_units_ordered"`
	CreatedAt         time.Time `json:"created_at"`
}
