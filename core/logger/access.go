package logger

import (
	"time"

	"go.uber.org/zap"
)

// AccessEntry describes one completed request.
type AccessEntry struct {
	Time     time.Time
	RayID    string
	RemoteIP string
	Method   string
	Path     string
	Status   int
	Bytes    int
	Duration time.Duration
}

// RequestLogger receives one entry per completed request.
// Implementations must not block for long: requests are served one at a time.
type RequestLogger interface {
	LogRequest(entry AccessEntry)
}

// RequestLoggerFunc adapts a plain function to RequestLogger.
type RequestLoggerFunc func(entry AccessEntry)

// LogRequest calls f(entry).
func (f RequestLoggerFunc) LogRequest(entry AccessEntry) {
	f(entry)
}

type zapRequestLogger struct {
	l *zap.Logger
}

// NewRequestLogger returns a RequestLogger that writes each entry to l.
func NewRequestLogger(l *zap.Logger) RequestLogger {
	return &zapRequestLogger{l: l}
}

func (z *zapRequestLogger) LogRequest(e AccessEntry) {
	fields := []zap.Field{
		zap.String("method", e.Method),
		zap.String("path", e.Path),
		zap.Int("status", e.Status),
		zap.Int("bytes", e.Bytes),
		zap.Duration("duration", e.Duration),
		zap.String("ip", e.RemoteIP),
	}
	if e.RayID != "" {
		fields = append(fields, zap.String("ray_id", e.RayID))
	}

	switch {
	case e.Status >= 500:
		z.l.Error("Request served", fields...)
	case e.Status >= 400:
		z.l.Warn("Request served", fields...)
	default:
		z.l.Info("Request served", fields...)
	}
}
