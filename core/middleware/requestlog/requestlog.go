// Package requestlog logs one line per request with its ray ID.
package requestlog

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"record-merger/core/logger"
)

// New returns middleware logging method, path, status and latency. Requests
// failing with an error are logged at error level, 5xx responses at warn.
// It must run after rayid.
func New(l *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		var fe *fiber.Error
		if err != nil {
			status = fiber.StatusInternalServerError
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}

		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
			zap.Int("status", status),
			zap.Duration("took", time.Since(start)),
		}

		rl := logger.WithRayID(l, c)
		switch {
		case err != nil && fe == nil:
			rl.Error("Request error", append(fields, zap.Error(err))...)
		case status >= fiber.StatusInternalServerError:
			rl.Warn("Request failed", fields...)
		default:
			rl.Info("Request handled", fields...)
		}
		return err
	}
}
