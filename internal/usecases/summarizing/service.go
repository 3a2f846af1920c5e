package summarizing

import (
	"context"
	"errors"
	"fmt"

	"github.com/vfg2006/ecommerce-agent-api/infrastructure/repository"
	"github.com/vfg2006/ecommerce-agent-api/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

var (
	ErrInvalidItemID = errors.New("item_id inválido")
	ErrItemNotFound  = errors.New("nenhuma métrica de anúncio para o item")
)

type Summarizer interface {
	// DataSummary resume os volumes carregados em cada tabela
	DataSummary(ctx context.Context) (*domain.DataSummary, error)

	// ItemAdMetrics devolve as métricas diárias do item com CPC, CTR e RoAS calculados
	ItemAdMetrics(ctx context.Context, itemID int) (*domain.ItemAdMetricsResponse, error)
}

type Service struct {
	salesRepo       repository.SalesRepository
	adMetricsRepo   repository.AdMetricsRepository
	eligibilityRepo repository.EligibilityRepository
}

func NewService(
	salesRepo repository.SalesRepository,
	adMetricsRepo repository.AdMetricsRepository,
	eligibilityRepo repository.EligibilityRepository,
) Summarizer {
	return &Service{
		salesRepo:       salesRepo,
		adMetricsRepo:   adMetricsRepo,
		eligibilityRepo: eligibilityRepo,
	}
}

func (s *Service) DataSummary(ctx context.Context) (*domain.DataSummary, error) {
	totalProducts, err := s.eligibilityRepo.CountDistinctItems(ctx)
	if err != nil {
		return nil, err
	}

	totalSales, err := s.salesRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	totalAds, err := s.adMetricsRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	totalEligibility, err := s.eligibilityRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	dateRange, err := s.salesRepo.DateRange(ctx)
	if err != nil {
		return nil, err
	}

	summary := &domain.DataSummary{
		TotalProducts:           totalProducts,
		TotalSalesRecords:       totalSales,
		TotalAdRecords:          totalAds,
		TotalEligibilityRecords: totalEligibility,
	}
	if dateRange != nil {
		summary.DateRange = *dateRange
	}

	return summary, nil
}

func (s *Service) ItemAdMetrics(ctx context.Context, itemID int) (*domain.ItemAdMetricsResponse, error) {
	if itemID < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidItemID, itemID)
	}

	records, err := s.adMetricsRepo.ListByItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %d", ErrItemNotFound, itemID)
	}

	views := make([]*domain.AdMetricsView, 0, len(records))
	for _, record := range records {
		views = append(views, domain.NewAdMetricsView(record))
	}

	return &domain.ItemAdMetricsResponse{
		ItemID:  itemID,
		Metrics: views,
		Totals:  domain.SumAdMetrics(itemID, records),
	}, nil
}
