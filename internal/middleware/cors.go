package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CORSMiddleware returns Fiber's built-in CORS middleware for the report front end.
// Reports are read-only, so only GET and preflight requests are allowed.
func CORSMiddleware(origins []string) fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: strings.Join(origins, ", "),
		AllowMethods: "GET,OPTIONS",
		AllowHeaders: "Content-Type,X-Requested-With,X-Request-ID",
	})
}
