package apierror

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const typeError = "error"

// Error is the JSON body returned for every failed request.
type Error struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
	Type    string `json:"type"`
}

func (e *Error) Error() string {
	return e.Message
}

// New creates an error body for the given status code.
func New(status int, message string) *Error {
	return &Error{Message: message, Status: status, Type: typeError}
}

// BadRequest reports an invalid or missing request parameter.
func BadRequest(message string) *Error {
	return New(fiber.StatusBadRequest, message)
}

// NotFound is the body for unmatched routes.
func NotFound() *Error {
	return New(fiber.StatusNotFound, http.StatusText(http.StatusNotFound))
}

// Handler renders every error returned by a route. Typed errors keep their
// status and message, fiber errors keep their status, and anything else is
// logged and reported as 500.
func Handler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var apiErr *Error
		var fiberErr *fiber.Error

		switch {
		case errors.As(err, &apiErr):
		case errors.As(err, &fiberErr):
			apiErr = New(fiberErr.Code, http.StatusText(fiberErr.Code))
			if apiErr.Message == "" {
				apiErr.Message = fiberErr.Message
			}
		default:
			log.Error("request failed",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Error(err),
			)
			apiErr = New(fiber.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		}

		return c.Status(apiErr.Status).JSON(apiErr)
	}
}

// NotFoundHandler terminates the middleware chain for unmatched routes.
func NotFoundHandler(c *fiber.Ctx) error {
	return NotFound()
}
