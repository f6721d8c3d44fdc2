package middleware

import (
	"strconv"
	"time"

	"go-apre/internal/metrics"

	"github.com/gofiber/fiber/v2"
)

// Metrics records request count, latency and the in-flight gauge. Requests
// are labelled by their route pattern so path parameters do not explode the
// label set.
func Metrics(m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		m.HTTPRequestsInFlight.Inc()
		defer m.HTTPRequestsInFlight.Dec()

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			// The app error handler has not run yet; derive the status it will write.
			status = statusOf(err)
		}

		route := routePattern(c)
		m.HTTPRequestsTotal.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		m.HTTPRequestDuration.WithLabelValues(c.Method(), route).Observe(time.Since(start).Seconds())

		return err
	}
}

func routePattern(c *fiber.Ctx) string {
	if r := c.Route(); r != nil && r.Path != "" && r.Path != "/" {
		return r.Path
	}
	return "unmatched"
}
