// Package params validates report dimension parameters taken from the path
// or query string.
package params

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"go-apre/internal/common/apierror"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Integer parses a required integer dimension such as a year or month.
func Integer(name, value string) (int, error) {
	value = strings.TrimSpace(value)
	if err := validate.Var(value, "required"); err != nil {
		return 0, apierror.BadRequest(fmt.Sprintf("%s is required", name))
	}
	if err := validate.Var(value, "numeric"); err != nil {
		return 0, apierror.BadRequest(fmt.Sprintf("%s must be an integer", name))
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, apierror.BadRequest(fmt.Sprintf("%s must be an integer", name))
	}
	return n, nil
}

// Text returns a required string dimension unchanged. Any non-empty value is
// accepted, whitespace included, and matched literally by the repositories.
func Text(name, value string) (string, error) {
	if err := validate.Var(value, "required"); err != nil {
		return "", apierror.BadRequest(fmt.Sprintf("%s is required", name))
	}
	return value, nil
}

// PathText decodes a URL-encoded path segment and validates it as Text.
// Routing sees the encoded form, so values containing "/" stay one segment.
func PathText(name, segment string) (string, error) {
	value, err := url.PathUnescape(segment)
	if err != nil {
		return "", apierror.BadRequest(fmt.Sprintf("%s is not a valid path segment", name))
	}
	return Text(name, value)
}
