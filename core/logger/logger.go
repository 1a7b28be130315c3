package logger

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// RayIDKey is both the fiber locals key set by the rayid middleware and the
// log field name.
const RayIDKey = "ray_id"

// New builds a zap logger from cfg.
func New(cfg *Config) (*zap.Logger, error) {
	zc, err := buildConfig(cfg)
	if err != nil {
		return nil, err
	}
	return zc.Build()
}

// buildConfig starts from the development preset for debug and the production
// preset otherwise, then applies level and encoding.
func buildConfig(cfg *Config) (zap.Config, error) {
	zc := zap.NewProductionConfig()
	if cfg.Level == "debug" {
		zc = zap.NewDevelopmentConfig()
	}

	if cfg.Level != "" {
		level, err := zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return zap.Config{}, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
		zc.Level = zap.NewAtomicLevelAt(level)
	}

	switch cfg.Format {
	case "console":
		zc.Encoding = "console"
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zc.DisableStacktrace = true
	case "json", "":
		zc.Encoding = "json"
		zc.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
	default:
		return zap.Config{}, fmt.Errorf("invalid log format %q", cfg.Format)
	}

	zc.EncoderConfig.LevelKey = "level"
	zc.EncoderConfig.TimeKey = "time"
	zc.EncoderConfig.MessageKey = "message"
	return zc, nil
}

// WithRayID returns l with the request's ray_id attached, or l unchanged when
// the request has none.
func WithRayID(l *zap.Logger, c *fiber.Ctx) *zap.Logger {
	if id, ok := c.Locals(RayIDKey).(string); ok && id != "" {
		return l.With(zap.String(RayIDKey, id))
	}
	return l
}
