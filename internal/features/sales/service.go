package sales

import (
	"context"

	"go-apre/internal/metrics"

	"go.uber.org/zap"
)

type SalesService interface {
	Regions(ctx context.Context) ([]string, error)
	SalesByRegion(ctx context.Context, region string) ([]SalespersonSales, error)
	SalesByProduct(ctx context.Context, product string) ([]SalespersonSales, error)
	ExportSalesByRegion(ctx context.Context, region, format string) ([]byte, string, error)
}

type SalesServiceImpl struct {
	SalesRepo SalesRepository
	Metrics   *metrics.Metrics
	Logger    *zap.Logger
}

func NewSalesService(salesRepo SalesRepository, m *metrics.Metrics, log *zap.Logger) SalesService {
	return &SalesServiceImpl{
		SalesRepo: salesRepo,
		Metrics:   m,
		Logger:    log.Named("sales"),
	}
}

func (s *SalesServiceImpl) Regions(ctx context.Context) ([]string, error) {
	regions, err := s.SalesRepo.Regions(ctx)
	s.observe(ReportRegions, zap.Skip(), len(regions), err)
	return regions, err
}

func (s *SalesServiceImpl) SalesByRegion(ctx context.Context, region string) ([]SalespersonSales, error) {
	rows, err := s.SalesRepo.SalesByRegion(ctx, region)
	s.observe(ReportSalesByRegion, zap.String("region", region), len(rows), err)
	return rows, err
}

func (s *SalesServiceImpl) SalesByProduct(ctx context.Context, product string) ([]SalespersonSales, error) {
	rows, err := s.SalesRepo.SalesByProduct(ctx, product)
	s.observe(ReportSalesByProduct, zap.String("product", product), len(rows), err)
	return rows, err
}

func (s *SalesServiceImpl) ExportSalesByRegion(ctx context.Context, region, format string) ([]byte, string, error) {
	if err := checkFormat(format); err != nil {
		return nil, "", err
	}
	rows, err := s.SalesByRegion(ctx, region)
	if err != nil {
		return nil, "", err
	}
	return exportRows(rows, "sales_by_region_"+region, format)
}

func (s *SalesServiceImpl) observe(report string, dimension zap.Field, rows int, err error) {
	s.Metrics.ObserveReport(report, rows, err)
	if err != nil {
		s.Logger.Error("report query failed", zap.String("report", report), dimension, zap.Error(err))
		return
	}
	s.Logger.Debug("report query", zap.String("report", report), dimension, zap.Int("rows", rows))
}
