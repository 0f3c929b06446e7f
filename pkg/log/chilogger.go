package log

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/kubev2v/paint-planner/pkg/requestid"
	"go.uber.org/zap"
)

// Logger writes one access log line per request. The chi route pattern is logged next to
// the raw path so worksheet routes group together; the worksheet id and report format are
// added when present.
func Logger(l *zap.Logger, name string) func(next http.Handler) http.Handler {
	if l == nil {
		panic("log.Logger received a nil *zap.Logger")
	}

	logger := l.WithOptions(zap.AddCallerSkip(1)).Named(name)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			fields := []zap.Field{
				zap.String("request_id", requestid.FromRequest(r)),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("route", routePattern(r)),
				zap.Int("status", status),
				zap.Int("bytes", ww.BytesWritten()),
				zap.String("content_type", ww.Header().Get("Content-Type")),
				zap.Duration("latency", time.Since(start)),
				zap.String("remote_addr", r.RemoteAddr),
			}
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if id := rctx.URLParam("id"); id != "" {
					fields = append(fields, zap.String("worksheet_id", id))
				}
			}
			if format := r.URL.Query().Get("format"); format != "" {
				fields = append(fields, zap.String("report_format", format))
			}

			msg := fmt.Sprintf("%s %s", r.Method, r.URL.Path)
			switch {
			case status >= http.StatusInternalServerError:
				logger.Error(msg, fields...)
			case status >= http.StatusBadRequest:
				logger.Warn(msg, fields...)
			case isProbe(r):
				logger.Debug(msg, fields...)
			default:
				logger.Info(msg, fields...)
			}
		})
	}
}

// ConditionalLogger returns HTTP request logging middleware unless accessLog is false.
func ConditionalLogger(accessLog bool, l *zap.Logger, name string) func(next http.Handler) http.Handler {
	if l == nil {
		panic("log.ConditionalLogger received a nil *zap.Logger")
	}

	if accessLog {
		l.Named(name).Info("HTTP request logging enabled")
		return Logger(l, name)
	}

	l.Named(name).Info("HTTP request logging disabled")
	return func(next http.Handler) http.Handler {
		return next
	}
}

// AccessLogEnabled reports whether the configured level asks for per-request logs.
func AccessLogEnabled(logLevel string) bool {
	level := strings.ToLower(logLevel)
	return level == "debug" || level == "trace"
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unmatched"
}

func isProbe(r *http.Request) bool {
	return r.Method == http.MethodGet && (r.URL.Path == "/health" || r.URL.Path == "/metrics")
}
