package sales

import (
	"fmt"

	"go-apre/internal/common/params"

	"github.com/gofiber/fiber/v2"
)

var contentTypes = map[string]string{
	FormatCSV:  "text/csv",
	FormatXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

type SalesController struct {
	SalesService SalesService
}

func NewSalesController(salesService SalesService) *SalesController {
	return &SalesController{SalesService: salesService}
}

// Regions godoc
// @Summary List sales regions
// @Description Distinct region names found in the sales collection, sorted ascending.
// @Tags sales
// @Produce json
// @Success 200 {array} string
// @Failure 500 {object} apierror.Error
// @Router /api/reports/sales/regions [get]
func (c *SalesController) Regions(ctx *fiber.Ctx) error {
	regions, err := c.SalesService.Regions(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(regions)
}

// SalesByRegion godoc
// @Summary Sales by salesperson for a region
// @Description Total sales per salesperson in the region, sorted by salesperson. The region is matched literally.
// @Tags sales
// @Produce json
// @Param region path string true "Region"
// @Success 200 {array} SalespersonSales
// @Failure 400 {object} apierror.Error
// @Failure 500 {object} apierror.Error
// @Router /api/reports/sales/regions/{region} [get]
func (c *SalesController) SalesByRegion(ctx *fiber.Ctx) error {
	region, err := params.PathText("region", ctx.Params("region"))
	if err != nil {
		return err
	}

	rows, err := c.SalesService.SalesByRegion(ctx.UserContext(), region)
	if err != nil {
		return err
	}
	return ctx.JSON(rows)
}

// SalesByProduct godoc
// @Summary Sales by salesperson for a product
// @Description Total sales per salesperson for the product, sorted by salesperson. The product is matched literally.
// @Tags sales
// @Produce json
// @Param product path string true "Product"
// @Success 200 {array} SalespersonSales
// @Failure 400 {object} apierror.Error
// @Failure 500 {object} apierror.Error
// @Router /api/reports/sales/sales-by-product/{product} [get]
func (c *SalesController) SalesByProduct(ctx *fiber.Ctx) error {
	product, err := params.PathText("product", ctx.Params("product"))
	if err != nil {
		return err
	}

	rows, err := c.SalesService.SalesByProduct(ctx.UserContext(), product)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusOK).JSON(rows)
}

// ExportSalesByRegion godoc
// @Summary Export sales by salesperson for a region
// @Description Downloads the sales-by-region report as CSV or XLSX.
// @Tags sales
// @Produce octet-stream
// @Param region path string true "Region"
// @Param format query string false "csv or xlsx" default(csv)
// @Success 200 {file} file
// @Failure 400 {object} apierror.Error
// @Failure 500 {object} apierror.Error
// @Router /api/reports/sales/regions/{region}/export [get]
func (c *SalesController) ExportSalesByRegion(ctx *fiber.Ctx) error {
	region, err := params.PathText("region", ctx.Params("region"))
	if err != nil {
		return err
	}
	format := ctx.Query("format", FormatCSV)

	data, filename, err := c.SalesService.ExportSalesByRegion(ctx.UserContext(), region, format)
	if err != nil {
		return err
	}

	ctx.Set(fiber.HeaderContentType, contentTypes[format])
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", filename))
	return ctx.Send(data)
}
