package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"rental-marketplace/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger owns the process-wide slog handler and its optional rotating file
type Logger struct {
	logger *slog.Logger
	closer io.Closer
}

func NewLogger(cfg config.LogConfig) *Logger {
	timezone := time.FixedZone(cfg.TimeZone, cfg.TimeZoneOffset)

	opts := &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.In(timezone).Format(cfg.TimeFormat))
				}
			}
			return a
		},
	}

	var (
		out    io.Writer = os.Stdout
		closer io.Closer
	)
	if cfg.File != "" {
		rotating := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   true,
		}
		out = io.MultiWriter(os.Stdout, rotating)
		closer = rotating
	}

	var handler slog.Handler
	if gin.Mode() == gin.ReleaseMode || cfg.File != "" {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return &Logger{logger: logger, closer: closer}
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l *Logger) GetSlogLogger() *slog.Logger {
	return l.logger
}

// Close flushes the rotating file, if any
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

const (
	RequestIDHeader = "X-Request-ID"
	ctxRequestIDKey = "request_id"
	maxRequestIDLen = 64
)

func (l *Logger) LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := requestIDFor(c)
		c.Set(ctxRequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		attrs := []slog.Attr{
			slog.String("request_id", requestID),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("client_ip", c.ClientIP()),
		}
		l.logger.LogAttrs(c.Request.Context(), slog.LevelDebug, "request started", attrs...)

		c.Next()

		// identity is only known once the route's auth middleware has run
		if actor := GetActor(c); actor.IsAuthenticated() {
			attrs = append(attrs, slog.String("user_id", actor.UserID.String()), slog.String("role", actor.Role.String()))
			if tenantID, ok := actor.Tenant(); ok {
				attrs = append(attrs, slog.String("tenant_id", tenantID.String()))
			}
		}

		status := c.Writer.Status()
		attrs = append(attrs,
			slog.Int("status_code", status),
			slog.Duration("duration", time.Since(start)),
		)
		if size := c.Writer.Size(); size > 0 {
			attrs = append(attrs, slog.Int("response_size", size))
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, slog.String("errors", c.Errors.String()))
		}

		l.logger.LogAttrs(c.Request.Context(), levelFor(status), "request completed", attrs...)
	}
}

func levelFor(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// requestIDFor trusts an upstream proxy's id when it looks sane
func requestIDFor(c *gin.Context) string {
	if id := strings.TrimSpace(c.GetHeader(RequestIDHeader)); id != "" && len(id) <= maxRequestIDLen && !strings.ContainsAny(id, " \t\r\n") {
		return id
	}
	return uuid.NewString()
}

func GetRequestID(c *gin.Context) string {
	return c.GetString(ctxRequestIDKey)
}
