package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Addr != ":8080" {
		t.Errorf("expected default addr, got %q", cfg.Server.Addr)
	}
	if cfg.RateLimit.Capacity != 5 || cfg.RateLimit.Refill != time.Minute {
		t.Errorf("unexpected rate limit defaults %+v", cfg.RateLimit)
	}
	if cfg.Engine.MaxTenureMonths != 1200 {
		t.Errorf("expected 1200 max months, got %d", cfg.Engine.MaxTenureMonths)
	}
	if cfg.Cache.MaxEntries != 1000 || cfg.Cache.TTL != 24*time.Hour {
		t.Errorf("unexpected cache defaults %+v", cfg.Cache)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
server:
  addr: ":9000"
  read_timeout: 3s
rate_limit:
  capacity: 50
cache:
  redis_addr: "redis:6379"
  ttl: 1h
engine:
  max_tenure_months: 600
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("EMI_ADDR", ":7000")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Addr != ":7000" {
		t.Errorf("expected env override, got %q", cfg.Server.Addr)
	}
	if cfg.Server.ReadTimeout != 3*time.Second {
		t.Errorf("expected 3s read timeout, got %v", cfg.Server.ReadTimeout)
	}
	if cfg.RateLimit.Capacity != 50 {
		t.Errorf("expected capacity 50, got %d", cfg.RateLimit.Capacity)
	}
	if cfg.Cache.RedisAddr != "redis:6379" || cfg.Cache.TTL != time.Hour {
		t.Errorf("unexpected cache config %+v", cfg.Cache)
	}
	if cfg.Engine.MaxTenureMonths != 600 {
		t.Errorf("expected 600 max months, got %d", cfg.Engine.MaxTenureMonths)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected debug level, got %q", cfg.Log.Level)
	}
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server: [unclosed"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Errorf("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg.RateLimit.Capacity = -1
	if err := cfg.Validate(); err == nil {
		t.Errorf("expected negative capacity to fail")
	}

	cfg.RateLimit.Capacity = 5
	cfg.Cache.MaxEntries = -3
	if err := cfg.Validate(); err == nil {
		t.Errorf("expected negative cache size to fail")
	}

	cfg.Cache.MaxEntries = 1000
	cfg.Log.Level = "verbose"
	if err := cfg.Validate(); err == nil {
		t.Errorf("expected unknown log level to fail")
	}
}
