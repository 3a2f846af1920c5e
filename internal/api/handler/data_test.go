package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ecommerce-agent-api/internal/domain"
	"github.com/vfg2006/ecommerce-agent-api/internal/usecases/summarizing"
	"github.com/vfg2006/ecommerce-agent-api/internal/usecases/summarizing/mocks"
	"go.uber.org/mock/gomock"
)

func TestDataSummary(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		setup    func(service *mocks.MockSummarizer)
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "Resumo com intervalo de datas",
			setup: func(service *mocks.MockSummarizer) {
				service.EXPECT().DataSummary(gomock.Any()).Return(&domain.DataSummary{
					TotalProducts:           3,
					TotalSalesRecords:       10,
					TotalAdRecords:          8,
					TotalEligibilityRecords: 5,
					DateRange:               domain.SalesDateRange{SalesStart: &start, SalesEnd: &end},
				}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.JSONEq(t, `{"success":true,"summary":{
					"total_products":3,
					"total_sales_records":10,
					"total_ad_records":8,
					"total_eligibility_records":5,
					"date_range":{"sales_start":"2025-06-01","sales_end":"2025-06-30"}
				}}`, rec.Body.String())
			},
		},
		{
			name: "Banco vazio devolve datas nulas",
			setup: func(service *mocks.MockSummarizer) {
				service.EXPECT().DataSummary(gomock.Any()).Return(&domain.DataSummary{}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Contains(t, rec.Body.String(), `"date_range":{"sales_start":null,"sales_end":null}`)
			},
		},
		{
			name: "Erro no banco",
			setup: func(service *mocks.MockSummarizer) {
				service.EXPECT().DataSummary(gomock.Any()).Return(nil, errors.New("connection reset"))
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusInternalServerError, rec.Code)
				assert.JSONEq(t, `{"success":false,"error":"Failed to load data summary"}`, rec.Body.String())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockSummarizer(ctrl)
			tt.setup(service)

			rec := httptest.NewRecorder()
			DataSummary(service).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/data/summary", nil))

			tt.validate(t, rec)
		})
	}
}

func TestItemAdMetrics(t *testing.T) {
	tests := []struct {
		name           string
		itemID         string
		setup          func(service *mocks.MockSummarizer)
		expectedStatus int
	}{
		{
			name:           "item_id não numérico",
			itemID:         "abc",
			setup:          func(service *mocks.MockSummarizer) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "item_id inválido para o serviço",
			itemID: "0",
			setup: func(service *mocks.MockSummarizer) {
				service.EXPECT().ItemAdMetrics(gomock.Any(), 0).Return(nil, summarizing.ErrInvalidItemID)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "Item sem métricas",
			itemID: "99",
			setup: func(service *mocks.MockSummarizer) {
				service.EXPECT().ItemAdMetrics(gomock.Any(), 99).Return(nil, fmt.Errorf("%w: 99", summarizing.ErrItemNotFound))
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "Erro no banco",
			itemID: "5",
			setup: func(service *mocks.MockSummarizer) {
				service.EXPECT().ItemAdMetrics(gomock.Any(), 5).Return(nil, errors.New("timeout"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:   "Métricas do item",
			itemID: "7",
			setup: func(service *mocks.MockSummarizer) {
				service.EXPECT().ItemAdMetrics(gomock.Any(), 7).Return(&domain.ItemAdMetricsResponse{ItemID: 7}, nil)
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockSummarizer(ctrl)
			tt.setup(service)

			rt := httprouter.New()
			rt.Handler(http.MethodGet, "/v1/items/:item_id/ad-metrics", ItemAdMetrics(service))

			rec := httptest.NewRecorder()
			rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/items/"+tt.itemID+"/ad-metrics", nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}
