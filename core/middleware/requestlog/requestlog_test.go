package requestlog

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"record-merger/core/middleware/rayid"
)

func setup() (*fiber.App, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	app := fiber.New()
	app.Use(rayid.New())
	app.Use(New(zap.New(core)))
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/down", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusServiceUnavailable) })
	app.Get("/missing", func(c *fiber.Ctx) error { return fiber.ErrNotFound })
	app.Get("/boom", func(c *fiber.Ctx) error { return errors.New("boom") })
	return app, logs
}

// TestRequestLog_Levels tests the level and status chosen for each outcome.
func TestRequestLog_Levels(t *testing.T) {
	tests := []struct {
		path   string
		level  zapcore.Level
		status int64
	}{
		{"/ok", zapcore.InfoLevel, 200},
		{"/down", zapcore.WarnLevel, 503},
		{"/missing", zapcore.InfoLevel, 404},
		{"/boom", zapcore.ErrorLevel, 500},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			app, logs := setup()
			req := httptest.NewRequest("GET", tt.path, nil)
			req.Header.Set(rayid.Header, "ray-"+tt.path)

			_, err := app.Test(req)
			require.NoError(t, err)

			require.Equal(t, 1, logs.Len())
			entry := logs.All()[0]
			assert.Equal(t, tt.level, entry.Level)
			ctx := entry.ContextMap()
			assert.Equal(t, tt.status, ctx["status"])
			assert.Equal(t, tt.path, ctx["path"])
			assert.Equal(t, "ray-"+tt.path, ctx["ray_id"])
		})
	}
}
