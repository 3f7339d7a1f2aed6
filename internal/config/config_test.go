package config

import (
	"log/slog"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENV", "LOG_LEVEL", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST",
		"DEFAULT_PASSWORD_LENGTH", "MAX_PASSWORD_LENGTH", "METRICS_ENABLED"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
	}
	if cfg.DefaultLength != 16 || cfg.MaxLength != 128 {
		t.Errorf("lengths = %d/%d, want 16/128", cfg.DefaultLength, cfg.MaxLength)
	}
	if !cfg.MetricsEnabled {
		t.Error("MetricsEnabled = false, want true")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "5")
	t.Setenv("DEFAULT_PASSWORD_LENGTH", "20")
	t.Setenv("MAX_PASSWORD_LENGTH", "50")
	t.Setenv("METRICS_ENABLED", "false")

	cfg := Load()
	if cfg.Port != "9090" || !cfg.IsProduction() {
		t.Errorf("Port/Env = %q/%q", cfg.Port, cfg.Env)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v, want debug", cfg.LogLevel)
	}
	if cfg.RateLimitRPS != 2.5 || cfg.RateLimitBurst != 5 {
		t.Errorf("rate limit = %v/%d, want 2.5/5", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
	if cfg.DefaultLength != 20 || cfg.MaxLength != 50 {
		t.Errorf("lengths = %d/%d, want 20/50", cfg.DefaultLength, cfg.MaxLength)
	}
	if cfg.MetricsEnabled {
		t.Error("MetricsEnabled = true, want false")
	}
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Setenv("RATE_LIMIT_BURST", "many")
	t.Setenv("LOG_LEVEL", "chatty")

	cfg := Load()
	if cfg.RateLimitBurst != 20 {
		t.Errorf("RateLimitBurst = %d, want 20", cfg.RateLimitBurst)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"empty port", func(c *Config) { c.Port = "" }, true},
		{"zero rps", func(c *Config) { c.RateLimitRPS = 0 }, true},
		{"zero burst", func(c *Config) { c.RateLimitBurst = 0 }, true},
		{"default above max", func(c *Config) { c.DefaultLength = 200 }, true},
		{"zero max", func(c *Config) { c.MaxLength = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Port: "8080", RateLimitRPS: 10, RateLimitBurst: 20, DefaultLength: 16, MaxLength: 128}
			tt.mutate(&cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
