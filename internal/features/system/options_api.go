package system

import (
	"go-apre/internal/common/api"

	"github.com/gofiber/fiber/v2"
)

type OptionsApi struct {
	Controller *OptionsController
}

func NewOptionsApi(controller *OptionsController) api.Route {
	return &OptionsApi{Controller: controller}
}

func (h *OptionsApi) Setup(app *fiber.App) {
	app.Get("/api/reports/options", h.Controller.GetOptions)
}
