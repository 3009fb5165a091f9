package config

import (
	"strings"
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		Port:              "8080",
		DBPath:            "./data/test.db",
		JWTSecret:         "secret",
		AdminEmail:        "admin@example.com",
		AdminPasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		TokenTTL:          time.Hour,
	}
}

func TestValidate(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantMsg string
	}{
		{"non-numeric port", func(c *Config) { c.Port = "abc" }, "invalid port"},
		{"port out of range", func(c *Config) { c.Port = "70000" }, "invalid port"},
		{"empty db path", func(c *Config) { c.DBPath = "" }, "database path"},
		{"missing jwt secret", func(c *Config) { c.JWTSecret = "" }, "JWT_SECRET"},
		{"missing admin email", func(c *Config) { c.AdminEmail = "" }, "ADMIN_EMAIL"},
		{"missing password hash", func(c *Config) { c.AdminPasswordHash = "" }, "ADMIN_PASSWORD_HASH"},
		{"non-positive ttl", func(c *Config) { c.TokenTTL = 0 }, "TTL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %v, want mention of %q", err, tt.wantMsg)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.Port != "8080" {
		t.Errorf("default port = %s", cfg.Port)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Errorf("default TTL = %v", cfg.TokenTTL)
	}
}
