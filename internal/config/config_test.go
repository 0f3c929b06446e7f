package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	require.NotNil(t, cfg.Service)

	assert.Equal(t, ":3443", cfg.Service.Address)
	assert.Equal(t, ":8080", cfg.Service.MetricsAddress)
	assert.Equal(t, "info", cfg.Service.LogLevel)
	assert.Equal(t, 1000, cfg.Service.MaxWorksheets)
	assert.Len(t, cfg.Service.AllowedOrigins, 2)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PAINT_PLANNER_ADDRESS", ":9000")
	t.Setenv("PAINT_PLANNER_MAX_WORKSHEETS", "5")
	t.Setenv("PAINT_PLANNER_CORS_ALLOWED_ORIGINS", "https://paint.example.com")
	t.Setenv("PAINT_PLANNER_ACCESS_LOG", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Service.Address)
	assert.Equal(t, 5, cfg.Service.MaxWorksheets)
	assert.Equal(t, []string{"https://paint.example.com"}, cfg.Service.AllowedOrigins)
	assert.True(t, cfg.Service.AccessLog)
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("PAINT_PLANNER_MAX_WORKSHEETS", "many")
	_, err := Load()
	assert.Error(t, err)
}
