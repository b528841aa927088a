package middleware

import (
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"os"
	"strings"
	"time"

	"stitchcart/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

type Logger struct {
	slogger  *slog.Logger
	location *time.Location
}

func NewLogger(cfg config.LogConfig) *Logger {
	location := time.FixedZone(cfg.TimeZone, cfg.TimeZoneOffset)

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.In(location).Format(cfg.TimeFormat))
				}
			}
			return a
		},
	})

	slogger := slog.New(handler)
	slog.SetDefault(slogger)

	return &Logger{slogger: slogger, location: location}
}

func (l *Logger) GetSlogLogger() *slog.Logger {
	return l.slogger
}

func (l *Logger) LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()
		requestID := generateRequestID()

		c.Set("request_id", requestID)

		c.Next()

		attrs := []any{
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(startTime).Milliseconds(),
			"client_ip", c.ClientIP(),
		}
		if userID, ok := GetUserID(c); ok {
			attrs = append(attrs, "user_id", userID.String())
		}

		switch {
		case c.Writer.Status() >= 500:
			l.slogger.Error("request completed", attrs...)
		case c.Writer.Status() >= 400:
			l.slogger.Warn("request completed", attrs...)
		default:
			l.slogger.Info("request completed", attrs...)
		}
	}
}

func generateRequestID() string {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "unknown"
	}
	return hex.EncodeToString(buf)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
