package domain

import (
	"time"

	"github.com/vfg2006/ecommerce-agent-api/pkg/utils"
)

// AdMetricsRecord guarda apenas os contadores brutos de anúncios de um item em um dia.
// CPC, CTR e RoAS são sempre derivados na leitura.
type AdMetricsRecord struct {
	ID          int64     `json:"id"`
	Date        time.Time `json:"date"`
	ItemID      int       `json:"item_id"`
	AdSales     float64   `json:"ad_sales"`
	Impressions int       `json:"impressions"`
	AdSpend     float64   `json:"ad_spend"`
	Clicks      int       `json:"clicks"`
	UnitsSold   int       `json:"units_sold"`
	CreatedAt   time.Time `json:"created_at"`
}

// CPC custo por clique; zero quando não houve cliques
func (m *AdMetricsRecord) CPC() float64 {
	if m.Clicks <= 0 {
		return 0
	}
	return utils.RoundWithTwoDecimalPlace(m.AdSpend / float64(m.Clicks))
}

// CTR taxa de cliques em porcentagem; zero quando não houve impressões
func (m *AdMetricsRecord) CTR() float64 {
	if m.Impressions <= 0 {
		return 0
	}
	return utils.RoundWithTwoDecimalPlace(float64(m.Clicks) / float64(m.Impressions) * 100)
}

// RoAS retorno sobre o investimento em anúncios em porcentagem; zero quando não houve gasto
func (m *AdMetricsRecord) RoAS() float64 {
	if m.AdSpend <= 0 {
		return 0
	}
	return utils.RoundWithTwoDecimalPlace(m.AdSales / m.AdSpend * 100)
}

// AdMetricsView é a visão de leitura com os contadores e as métricas derivadas
type AdMetricsView struct {
	AdMetricsRecord
	CPC  float64 `json:"cpc"`
	CTR  float64 `json:"ctr"`
	RoAS float64 `json:"roas"`
}

// MarshalJSON serializa a data do registro como YYYY-MM-DD. Nos totais, sem dia
// definido, date e created_at saem como null.
func (v AdMetricsView) MarshalJSON() ([]byte, error) {
	var date *string
	if !v.Date.IsZero() {
		formatted := v.Date.Format(time.DateOnly)
		date = &formatted
	}

	var createdAt *time.Time
	if !v.CreatedAt.IsZero() {
		createdAt = &v.CreatedAt
	}

	return json.Marshal(struct {
		ID          int64      `json:"id"`
		Date        *string    `json:"date"`
		ItemID      int        `json:"item_id"`
		AdSales     float64    `json:"ad_sales"`
		Impressions int        `json:"impressions"`
		AdSpend     float64    `json:"ad_spend"`
		Clicks      int        `json:"clicks"`
		UnitsSold   int        `json:"units_sold"`
		CreatedAt   *time.Time `json:"created_at"`
		CPC         float64    `json:"cpc"`
		CTR         float64    `json:"ctr"`
		RoAS        float64    `json:"roas"`
	}{
		ID:          v.ID,
		Date:        date,
		ItemID:      v.ItemID,
		AdSales:     v.AdSales,
		Impressions: v.Impressions,
		AdSpend:     v.AdSpend,
		Clicks:      v.Clicks,
		UnitsSold:   v.UnitsSold,
		CreatedAt:   createdAt,
		CPC:         v.CPC,
		CTR:         v.CTR,
		RoAS:        v.RoAS,
	})
}

// NewAdMetricsView calcula as métricas derivadas a partir dos contadores atuais
func NewAdMetricsView(record *AdMetricsRecord) *AdMetricsView {
	if record == nil {
		return nil
	}

	return &AdMetricsView{
		AdMetricsRecord: *record,
		CPC:             record.CPC(),
		CTR:             record.CTR(),
		RoAS:            record.RoAS(),
	}
}

// ItemAdMetricsResponse agrupa as métricas diárias de um item
type ItemAdMetricsResponse struct {
	ItemID  int              `json:"item_id"`
	Metrics []*AdMetricsView `json:"metrics"`
	Totals  *AdMetricsView   `json:"totals"`
}

// SumAdMetrics soma os contadores de vários dias e recalcula as métricas derivadas sobre o total
func SumAdMetrics(itemID int, records []*AdMetricsRecord) *AdMetricsView {
	total := &AdMetricsRecord{ItemID: itemID}
	for _, r := range records {
		if r == nil {
			continue
		}
		total.AdSales += r.AdSales
		total.AdSpend += r.AdSpend
		total.Impressions += r.Impressions
		total.Clicks += r.Clicks
		total.UnitsSold += r.UnitsSold
	}

	return NewAdMetricsView(total)
}
