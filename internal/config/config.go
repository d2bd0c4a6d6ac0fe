// Package config provides application configuration from environment variables.
package config

import (
	"fmt"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every environment variable name.
const Prefix = "MERGINGTON"

// Settings holds all application configuration.
type Settings struct {
	// Application metadata
	Version   string `envconfig:"VERSION" default:"0.1.0"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"console"` // console or json

	// API server settings
	APIHost string `envconfig:"API_HOST" default:"0.0.0.0"`
	APIPort int    `envconfig:"API_PORT" default:"8000"`

	// Activity dataset; empty means the built-in seed
	SeedFile string `envconfig:"SEED_FILE" default:""`

	// Timeouts
	RequestTimeout  time.Duration `envconfig:"REQUEST_TIMEOUT" default:"30s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`

	// HTTP extras
	CORSOrigins    []string `envconfig:"CORS_ORIGINS" default:"*"`
	MetricsEnabled bool     `envconfig:"METRICS_ENABLED" default:"true"`
}

// ListenAddr returns the address string for the HTTP server to bind to.
func (s *Settings) ListenAddr() string {
	return fmt.Sprintf("%s:%d", s.APIHost, s.APIPort)
}

var (
	cfg  *Settings
	once sync.Once
)

// Get returns the singleton Settings instance.
func Get() *Settings {
	once.Do(func() {
		s, err := Load()
		if err != nil {
			panic(err.Error())
		}
		cfg = s
	})
	return cfg
}

// Load creates a new Settings instance from environment variables.
func Load() (*Settings, error) {
	s := &Settings{}
	if err := envconfig.Process(Prefix, s); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if s.APIPort <= 0 || s.APIPort > 65535 {
		return nil, fmt.Errorf("failed to load config: API_PORT out of range: %d", s.APIPort)
	}
	return s, nil
}
