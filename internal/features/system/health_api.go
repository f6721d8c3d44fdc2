package system

import (
	"go-apre/internal/common/api"
	"go-apre/internal/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
)

type HealthApi struct {
	Metrics *metrics.Metrics
}

func NewHealthApi(m *metrics.Metrics) api.Route {
	return &HealthApi{Metrics: m}
}

// Setup registers the liveness probe and the Prometheus scrape endpoint.
func (h *HealthApi) Setup(app *fiber.App) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("OK")
	})
	app.Get("/metrics", adaptor.HTTPHandler(h.Metrics.Handler()))
}
