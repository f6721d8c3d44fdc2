package system

import (
	"go-apre/internal/catalog"

	"github.com/gofiber/fiber/v2"
)

type OptionsController struct {
	Catalog *catalog.Catalog
}

func NewOptionsController(c *catalog.Catalog) *OptionsController {
	return &OptionsController{Catalog: c}
}

// GetOptions godoc
// @Summary      Report option catalog
// @Description  Years, months and products offered by the report forms
// @Tags         reports
// @Produce      json
// @Success      200  {object}  catalog.Catalog
// @Router       /api/reports/options [get]
func (c *OptionsController) GetOptions(ctx *fiber.Ctx) error {
	return ctx.JSON(c.Catalog)
}
