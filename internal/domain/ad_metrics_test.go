package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdMetricsRecord_DerivedMetrics(t *testing.T) {
	tests := []struct {
		name     string
		record   AdMetricsRecord
		wantCPC  float64
		wantCTR  float64
		wantRoAS float64
	}{
		{
			name:     "Contadores completos",
			record:   AdMetricsRecord{AdSpend: 50, Clicks: 20, Impressions: 1000, AdSales: 200},
			wantCPC:  2.5,
			wantCTR:  2,
			wantRoAS: 400,
		},
		{
			name:     "Sem cliques - CPC zerado",
			record:   AdMetricsRecord{AdSpend: 50, Clicks: 0, Impressions: 1000, AdSales: 200},
			wantCPC:  0,
			wantCTR:  0,
			wantRoAS: 400,
		},
		{
			name:     "Sem impressões - CTR zerado",
			record:   AdMetricsRecord{AdSpend: 10, Clicks: 3, Impressions: 0, AdSales: 5},
			wantCPC:  3.33,
			wantCTR:  0,
			wantRoAS: 50,
		},
		{
			name:     "Sem gasto - RoAS zerado",
			record:   AdMetricsRecord{AdSpend: 0, Clicks: 4, Impressions: 400, AdSales: 80},
			wantCPC:  0,
			wantCTR:  1,
			wantRoAS: 0,
		},
		{
			name:     "Tudo zerado",
			record:   AdMetricsRecord{},
			wantCPC:  0,
			wantCTR:  0,
			wantRoAS: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCPC, tt.record.CPC())
			assert.Equal(t, tt.wantCTR, tt.record.CTR())
			assert.Equal(t, tt.wantRoAS, tt.record.RoAS())
		})
	}
}

func TestSumAdMetrics(t *testing.T) {
	view := SumAdMetrics(7, []*AdMetricsRecord{
		{ItemID: 7, AdSpend: 10, Clicks: 5, Impressions: 100, AdSales: 30, UnitsSold: 1},
		nil,
		{ItemID: 7, AdSpend: 30, Clicks: 15, Impressions: 900, AdSales: 50, UnitsSold: 2},
	})

	assert.Equal(t, 7, view.ItemID)
	assert.Equal(t, 40.0, view.AdSpend)
	assert.Equal(t, 20, view.Clicks)
	assert.Equal(t, 1000, view.Impressions)
	assert.Equal(t, 3, view.UnitsSold)
	assert.Equal(t, 2.0, view.CPC)
	assert.Equal(t, 2.0, view.CTR)
	assert.Equal(t, 200.0, view.RoAS)
}

func TestNewAdMetricsView_Nil(t *testing.T) {
	assert.Nil(t, NewAdMetricsView(nil))
}

func TestAdMetricsView_MarshalJSON(t *testing.T) {
	t.Run("Data diária sem horário", func(t *testing.T) {
		view := NewAdMetricsView(&AdMetricsRecord{
			Date:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			ItemID:  7,
			AdSpend: 10,
			Clicks:  4,
		})

		data, err := json.Marshal(view)
		require.NoError(t, err)

		assert.Contains(t, string(data), `"date":"2025-06-01"`)
		assert.Contains(t, string(data), `"created_at":null`)
		assert.Contains(t, string(data), `"cpc":2.5`)
		assert.NotContains(t, string(data), "T00:00:00Z")
	})

	t.Run("Totais sem data", func(t *testing.T) {
		data, err := json.Marshal(SumAdMetrics(7, nil))
		require.NoError(t, err)

		assert.Contains(t, string(data), `"date":null`)
		assert.Contains(t, string(data), `"item_id":7`)
	})
}
