package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Server.ShutdownTimeout != 10*time.Second {
		t.Errorf("Server.ShutdownTimeout = %v, want 10s", cfg.Server.ShutdownTimeout)
	}
	if cfg.Dashboard.TransactionLimit != 100 {
		t.Errorf("Dashboard.TransactionLimit = %d, want 100", cfg.Dashboard.TransactionLimit)
	}
	if cfg.Dashboard.BreakdownTop != 8 {
		t.Errorf("Dashboard.BreakdownTop = %d, want 8", cfg.Dashboard.BreakdownTop)
	}
	if !cfg.RateLimit.Enabled {
		t.Error("RateLimit.Enabled = false, want true")
	}
	if cfg.JWT.Audience != "authenticated" {
		t.Errorf("JWT.Audience = %q, want authenticated", cfg.JWT.Audience)
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SERVER_SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("REDIS_DB", "4")
	t.Setenv("DASHBOARD_TRANSACTION_LIMIT", "50")
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	t.Setenv("JWT_AUDIENCE", "")

	cfg := Load()

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Server.ShutdownTimeout != 3*time.Second {
		t.Errorf("Server.ShutdownTimeout = %v, want 3s", cfg.Server.ShutdownTimeout)
	}
	if cfg.Redis.DB != 4 {
		t.Errorf("Redis.DB = %d, want 4", cfg.Redis.DB)
	}
	if cfg.Dashboard.TransactionLimit != 50 {
		t.Errorf("Dashboard.TransactionLimit = %d, want 50", cfg.Dashboard.TransactionLimit)
	}
	if cfg.RateLimit.Enabled {
		t.Error("RateLimit.Enabled = true, want false")
	}
	if cfg.JWT.Audience != "" {
		t.Errorf("JWT.Audience = %q, want empty", cfg.JWT.Audience)
	}
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("SERVER_PORT", "eighty")
	t.Setenv("SERVER_READ_TIMEOUT", "soon")
	t.Setenv("RATE_LIMIT_ENABLED", "maybe")

	cfg := Load()

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 15*time.Second {
		t.Errorf("Server.ReadTimeout = %v, want 15s", cfg.Server.ReadTimeout)
	}
	if !cfg.RateLimit.Enabled {
		t.Error("RateLimit.Enabled = false, want true")
	}
}
