package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Addr != ":8001" {
		t.Errorf("expected default addr :8001, got %s", cfg.Addr)
	}
	if cfg.CacheTTL != 5*time.Minute {
		t.Errorf("expected default ttl 5m, got %v", cfg.CacheTTL)
	}
	if cfg.CacheCapacity != 1000 {
		t.Errorf("expected default capacity 1000, got %d", cfg.CacheCapacity)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
		t.Errorf("expected default origins [*], got %v", cfg.CORSOrigins)
	}
	if cfg.StrictSymbols {
		t.Error("strict mode should default off")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ADDR", ":9000")
	t.Setenv("CACHE_TTL", "90s")
	t.Setenv("CORS_ORIGINS", "http://a.example,http://b.example")
	t.Setenv("SYMBOLS", "JPM,GS,AAPL")
	t.Setenv("STRICT_SYMBOLS", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Addr != ":9000" {
		t.Errorf("expected :9000, got %s", cfg.Addr)
	}
	if cfg.CacheTTL != 90*time.Second {
		t.Errorf("expected 90s ttl, got %v", cfg.CacheTTL)
	}
	if len(cfg.CORSOrigins) != 2 {
		t.Errorf("expected 2 origins, got %v", cfg.CORSOrigins)
	}
	if len(cfg.Symbols) != 3 || cfg.Symbols[2] != "AAPL" {
		t.Errorf("unexpected symbols: %v", cfg.Symbols)
	}
	if !cfg.StrictSymbols {
		t.Error("strict mode should be on")
	}
}
