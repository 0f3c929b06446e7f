package log

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggerRecordsRouteAndWorksheet(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	r := chi.NewRouter()
	r.Use(Logger(zap.New(core), "api_server"))
	r.Get("/api/v1/worksheets/{id}/report", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte("a,b\n"))
	})
	r.Get("/api/v1/worksheets/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/worksheets/abc/report?format=csv", nil)
	r.ServeHTTP(httptest.NewRecorder(), req)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.InfoLevel, entry.Level)
	fields := entry.ContextMap()
	assert.Equal(t, "/api/v1/worksheets/{id}/report", fields["route"])
	assert.Equal(t, "abc", fields["worksheet_id"])
	assert.Equal(t, "csv", fields["report_format"])
	assert.Equal(t, "text/csv", fields["content_type"])
	assert.EqualValues(t, 200, fields["status"])
	assert.EqualValues(t, 4, fields["bytes"])

	req = httptest.NewRequest(http.MethodGet, "/api/v1/worksheets/missing", nil)
	r.ServeHTTP(httptest.NewRecorder(), req)

	require.Equal(t, 2, logs.Len())
	assert.Equal(t, zapcore.WarnLevel, logs.All()[1].Level)
}

func TestConditionalLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	handler := ConditionalLogger(false, zap.New(core), "api_server")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	// only the "disabled" notice
	assert.Equal(t, 1, logs.Len())
	assert.True(t, AccessLogEnabled("DEBUG"))
	assert.False(t, AccessLogEnabled("info"))
}
