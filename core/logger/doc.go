// Package logger builds the zap loggers used by the server and the CLI.
//
// Level accepts anything zapcore.ParseLevel does. "debug" also switches to
// zap's development preset (caller, stack traces on warn, ISO8601 time). Format
// is "json" (default, RFC3339 time) or "console".
//
// Request handlers log through WithRayID so every line of a request carries
// the ray_id set by the rayid middleware:
//
//	l := logger.WithRayID(log, c)
//	l.Error("Product reconcile failed", zap.Error(err))
package logger
