package domain

import "time"

type SalesDateRange struct {
	SalesStart *time.Time `json:"sales_start"`
	SalesEnd   *time.Time `json:"sales_end"`
}

// DataSummary resume o volume de dados disponível para as perguntas
type DataSummary struct {
	TotalProducts           int            `json:"total_products"`
	TotalSalesRecords       int            `json:"total_sales_records"`
	TotalAdRecords          int            `json:"total_ad_records"`
	TotalEligibilityRecords int            `json:"total_eligibility_records"`
	DateRange               SalesDateRange `json:"date_range"`
}
