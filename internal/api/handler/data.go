package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/ecommerce-agent-api/internal/usecases/summarizing"
	"github.com/vfg2006/ecommerce-agent-api/pkg/apiErrors"
	"github.com/vfg2006/ecommerce-agent-api/pkg/log"
)

type dateRangeResponse struct {
	SalesStart *string `json:"sales_start"`
	SalesEnd   *string `json:"sales_end"`
}

type dataSummaryResponse struct {
	TotalProducts           int               `json:"total_products"`
	TotalSalesRecords       int               `json:"total_sales_records"`
	TotalAdRecords          int               `json:"total_ad_records"`
	TotalEligibilityRecords int               `json:"total_eligibility_records"`
	DateRange               dateRangeResponse `json:"date_range"`
}

func DataSummary(service summarizing.Summarizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := service.DataSummary(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao obter resumo dos dados")
			writeFailure(w, http.StatusInternalServerError, "Failed to load data summary")
			return
		}

		writeSuccess(w, http.StatusOK, map[string]any{
			"summary": dataSummaryResponse{
				TotalProducts:           summary.TotalProducts,
				TotalSalesRecords:       summary.TotalSalesRecords,
				TotalAdRecords:          summary.TotalAdRecords,
				TotalEligibilityRecords: summary.TotalEligibilityRecords,
				DateRange: dateRangeResponse{
					SalesStart: formatDate(summary.DateRange.SalesStart),
					SalesEnd:   formatDate(summary.DateRange.SalesEnd),
				},
			},
		})
	}
}

func ItemAdMetrics(service summarizing.Summarizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemIDStr := httprouter.ParamsFromContext(r.Context()).ByName("item_id")
		if itemIDStr == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "item_id não fornecido", nil)
			return
		}

		itemID, err := strconv.Atoi(itemIDStr)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "item_id inválido", nil)
			return
		}

		response, err := service.ItemAdMetrics(r.Context(), itemID)
		if err != nil {
			switch {
			case errors.Is(err, summarizing.ErrInvalidItemID):
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			case errors.Is(err, summarizing.ErrItemNotFound):
				apiErrors.WriteError(w, apiErrors.ErrNotFound, err.Error(), nil)
			default:
				log.ForContext(r.Context()).WithError(err).Error("Erro ao obter métricas do item")
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao obter métricas do item", nil)
			}
			return
		}

		writeSuccess(w, http.StatusOK, map[string]any{
			"item": response,
		})
	}
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(time.DateOnly)
	return &formatted
}
