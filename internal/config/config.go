package config

import (
	"github.com/kelseyhightower/envconfig"
)

var singleConfig *Config = nil

type Config struct {
	Service *svcConfig
}

type svcConfig struct {
	Address        string   `envconfig:"PAINT_PLANNER_ADDRESS" default:":3443"`
	MetricsAddress string   `envconfig:"PAINT_PLANNER_METRICS_ADDRESS" default:":8080"`
	LogLevel       string   `envconfig:"PAINT_PLANNER_LOG_LEVEL" default:"info"`
	AccessLog      bool     `envconfig:"PAINT_PLANNER_ACCESS_LOG" default:"false"`
	LatencyBuckets string   `envconfig:"PAINT_PLANNER_LATENCY_BUCKETS" default:""`
	AllowedOrigins []string `envconfig:"PAINT_PLANNER_CORS_ALLOWED_ORIGINS" default:"http://localhost:5173,http://localhost:3000"`
	MaxWorksheets  int      `envconfig:"PAINT_PLANNER_MAX_WORKSHEETS" default:"1000"`
}

// New returns the process-wide configuration, reading the environment on first use.
func New() (*Config, error) {
	if singleConfig == nil {
		cfg, err := Load()
		if err != nil {
			return nil, err
		}
		singleConfig = cfg
	}
	return singleConfig, nil
}

// Load reads the environment into a fresh Config.
func Load() (*Config, error) {
	cfg := new(Config)
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
