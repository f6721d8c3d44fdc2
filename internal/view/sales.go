package view

import (
	"context"
	"fmt"
	"net/url"
	"slices"
	"strings"

	"go-apre/internal/features/sales"

	"go.uber.org/zap"
)

// SalesByProductView lists total sales per salesperson for a product.
type SalesByProductView struct {
	view[[]sales.SalespersonSales]
}

func NewSalesByProductView(baseURL string, fetcher Fetcher, log *zap.Logger) *SalesByProductView {
	v := &SalesByProductView{}
	v.init(baseURL, fetcher, log, "sales-by-product", messages{
		failed: "Error fetching data from the server.",
	})
	return v
}

func (v *SalesByProductView) Submit(ctx context.Context, product string) {
	if strings.TrimSpace(product) == "" {
		v.reject("Please select a product.")
		return
	}

	path := "/reports/sales/sales-by-product/" + url.PathEscape(product)
	v.submit(ctx, path, "No data found for this product", func(rows []any) ([]sales.SalespersonSales, bool) {
		out := make([]sales.SalespersonSales, 0, len(rows))
		for _, row := range rows {
			out = append(out, sales.SalespersonSales{
				Salesperson: toText(field(row, "salesperson")),
				TotalSales:  toNumber(field(row, "totalSales")),
				Product:     toText(field(row, "product")),
			})
		}
		return out, true
	})
}

// SalesByRegionView charts total sales per salesperson for a region picked
// from the list returned by LoadRegions.
type SalesByRegionView struct {
	view[ChartProjection]
	regions []string
}

func NewSalesByRegionView(baseURL string, fetcher Fetcher, log *zap.Logger) *SalesByRegionView {
	v := &SalesByRegionView{}
	v.init(baseURL, fetcher, log, "sales-by-region", messages{
		failed: "Failed to load data. Please try again.",
	})
	return v
}

// LoadRegions fetches the region options. On failure the list is cleared
// and the failure message is shown.
func (v *SalesByRegionView) LoadRegions(ctx context.Context) error {
	u := v.baseURL + "/reports/sales/regions"
	rows, err := v.fetchRows(ctx, u)
	if err != nil {
		v.log.Error("region list request failed", zap.String("url", u), zap.Error(err))
		v.mu.Lock()
		v.regions = nil
		v.state = State[ChartProjection]{Status: Idle, Message: v.text.failed}
		v.mu.Unlock()
		return err
	}

	regions := make([]string, 0, len(rows))
	for _, row := range rows {
		if name, ok := row.(string); ok {
			regions = append(regions, name)
		}
	}

	v.mu.Lock()
	v.regions = regions
	v.mu.Unlock()
	return nil
}

// Regions returns the options loaded by LoadRegions.
func (v *SalesByRegionView) Regions() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return slices.Clone(v.regions)
}

func (v *SalesByRegionView) Submit(ctx context.Context, region string) {
	if strings.TrimSpace(region) == "" {
		v.reject("Please select a region")
		return
	}

	path := "/reports/sales/regions/" + url.PathEscape(region)
	noData := fmt.Sprintf("No data found for %s", region)
	v.submit(ctx, path, noData, func(rows []any) (ChartProjection, bool) {
		chart := ChartProjection{
			Labels: make([]string, 0, len(rows)),
			Values: make([]float64, 0, len(rows)),
		}
		for _, row := range rows {
			chart.Labels = append(chart.Labels, toText(field(row, "salesperson")))
			chart.Values = append(chart.Values, toNumber(field(row, "totalSales")))
		}
		return chart, true
	})
}
