package config

import (
	"os"
	"testing"
	"time"
)

// unsetEnv clears a variable for the duration of the test. envconfig also
// falls back to the unprefixed name, so both are cleared.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	for _, k := range []string{key, Prefix + "_" + key} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadDefaults(t *testing.T) {
	// Clear any env vars that might interfere
	for _, key := range []string{"API_HOST", "API_PORT", "SEED_FILE", "VERSION", "SHUTDOWN_TIMEOUT", "CORS_ORIGINS", "METRICS_ENABLED"} {
		unsetEnv(t, key)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.APIPort != 8000 {
		t.Errorf("Load() default port = %v, want 8000", cfg.APIPort)
	}
	if cfg.Version != "0.1.0" {
		t.Errorf("Load() default version = %v, want 0.1.0", cfg.Version)
	}
	if cfg.SeedFile != "" {
		t.Errorf("Load() default seed file = %q, want empty", cfg.SeedFile)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("Load() default shutdown timeout = %v, want 10s", cfg.ShutdownTimeout)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
		t.Errorf("Load() default CORS origins = %v, want [*]", cfg.CORSOrigins)
	}
	if !cfg.MetricsEnabled {
		t.Error("Load() metrics should be enabled by default")
	}
	if got := cfg.ListenAddr(); got != "0.0.0.0:8000" {
		t.Errorf("ListenAddr() = %q, want 0.0.0.0:8000", got)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("MERGINGTON_API_PORT", "8080")
	t.Setenv("MERGINGTON_API_HOST", "127.0.0.1")
	t.Setenv("MERGINGTON_SEED_FILE", "/etc/mergington/seed.yaml")
	t.Setenv("MERGINGTON_CORS_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("MERGINGTON_METRICS_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.ListenAddr() != "127.0.0.1:8080" {
		t.Errorf("ListenAddr() = %v, want 127.0.0.1:8080", cfg.ListenAddr())
	}
	if cfg.SeedFile != "/etc/mergington/seed.yaml" {
		t.Errorf("Load() seed file = %v", cfg.SeedFile)
	}
	if len(cfg.CORSOrigins) != 2 {
		t.Errorf("Load() CORS origins = %v, want 2 entries", cfg.CORSOrigins)
	}
	if cfg.MetricsEnabled {
		t.Error("Load() metrics should be disabled")
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"port not a number", "MERGINGTON_API_PORT", "eighty"},
		{"port out of range", "MERGINGTON_API_PORT", "70000"},
		{"bad duration", "MERGINGTON_SHUTDOWN_TIMEOUT", "soon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Errorf("Load() with %s=%s should fail", tt.key, tt.value)
			}
		})
	}
}
