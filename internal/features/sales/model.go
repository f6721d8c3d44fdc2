package sales

// SalespersonSales is one row of the sales reports. Product is only set by
// the sales-by-product report.
type SalespersonSales struct {
	Salesperson string  `json:"salesperson" bson:"salesperson"`
	TotalSales  float64 `json:"totalSales" bson:"totalSales"`
	Product     string  `json:"product,omitempty" bson:"product,omitempty"`
}

// Report names used for metrics and logging.
const (
	ReportRegions        = "sales_regions"
	ReportSalesByRegion  = "sales_by_region"
	ReportSalesByProduct = "sales_by_product"
)

// Export formats.
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)
