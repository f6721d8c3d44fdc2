package sales

import (
	"github.com/gofiber/fiber/v2"
)

type SalesApi struct {
	SalesController *SalesController
}

func NewSalesApi(salesController *SalesController) *SalesApi {
	return &SalesApi{SalesController: salesController}
}

func (api *SalesApi) Setup(app *fiber.App) {
	group := app.Group("/api/reports/sales")

	group.Get("/regions", api.SalesController.Regions)
	group.Get("/regions/:region", api.SalesController.SalesByRegion)
	group.Get("/regions/:region/export", api.SalesController.ExportSalesByRegion)
	group.Get("/sales-by-product/:product", api.SalesController.SalesByProduct)
}
