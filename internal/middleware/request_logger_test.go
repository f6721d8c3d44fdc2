package middleware

import (
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"go-apre/internal/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type recordingSink struct {
	mu      sync.Mutex
	entries []logger.LogEntry
}

func (s *recordingSink) AddLog(entry logger.LogEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
}

func TestRequestLoggerEntriesOutliveTheRequest(t *testing.T) {
	base, _ := observer.New(zapcore.InfoLevel)
	sink := &recordingSink{}
	log := zap.New(logger.NewDBCore(base, sink))

	app := fiber.New()
	app.Use(requestid.New())
	app.Use(RequestLogger(log))
	app.Get("/*", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	paths := []string{
		"/api/reports/sales/regions/SouthWestXX",
		"/" + strings.Repeat("z", 40),
		"/api/reports/sales/regions/North",
	}
	ids := []string{"req-south-west", "req-zzzzzzzzzzzzzzzz", "req-north"}
	for i, path := range paths {
		req := httptest.NewRequest("GET", path, nil)
		req.Header.Set(fiber.HeaderXRequestID, ids[i])
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, 200, resp.StatusCode)
	}

	require.Len(t, sink.entries, len(paths))
	for i, entry := range sink.entries {
		assert.Equal(t, paths[i], entry.Path)
		assert.Equal(t, ids[i], entry.RequestID)
		assert.Equal(t, 200, entry.Status)
	}
}
