package config

import (
	"testing"
	"time"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("unexpected HTTPAddr: %q", cfg.HTTPAddr)
	}
	if cfg.DBPath != "data/daily-shift.db" {
		t.Fatalf("unexpected DBPath: %q", cfg.DBPath)
	}
	if cfg.DefaultFavoriteTeam != "ANA" {
		t.Fatalf("unexpected DefaultFavoriteTeam: %q", cfg.DefaultFavoriteTeam)
	}
	if cfg.WarmupMaxWorkers != 4 {
		t.Fatalf("unexpected WarmupMaxWorkers: %d", cfg.WarmupMaxWorkers)
	}
	if !cfg.CacheEnabled || cfg.CacheTTL != 60*time.Second {
		t.Fatalf("unexpected cache defaults: enabled=%t ttl=%s", cfg.CacheEnabled, cfg.CacheTTL)
	}
	if cfg.StatsFeedEnabled {
		t.Fatalf("expected stats feed disabled by default")
	}
}

func TestLoad_FavoriteTeamUppercased(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("APP_DEFAULT_FAVORITE_TEAM", " bos ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.DefaultFavoriteTeam != "BOS" {
		t.Fatalf("expected favorite team BOS, got %q", cfg.DefaultFavoriteTeam)
	}
}

func TestLoad_StatsFeedRequiresBaseURLWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("STATSFEED_ENABLED", "true")
	t.Setenv("STATSFEED_BASE_URL", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when STATSFEED_ENABLED=true without STATSFEED_BASE_URL")
	}
}

func TestLoad_StatsFeedRequiresDatasetDirWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("STATSFEED_ENABLED", "true")
	t.Setenv("STATSFEED_BASE_URL", "https://feed.example.com/v1")
	t.Setenv("DATASET_DIR", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when STATSFEED_ENABLED=true without DATASET_DIR")
	}
}

func TestLoad_StatsFeedConfigParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("STATSFEED_ENABLED", "true")
	t.Setenv("STATSFEED_BASE_URL", "https://feed.example.com/v1/")
	t.Setenv("STATSFEED_TOKEN", "token-123")
	t.Setenv("STATSFEED_TIMEOUT", "5s")
	t.Setenv("STATSFEED_MAX_RETRIES", "3")
	t.Setenv("DATASET_DIR", "data/dataset")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.StatsFeedEnabled {
		t.Fatalf("expected StatsFeedEnabled=true")
	}
	if cfg.StatsFeedToken != "token-123" {
		t.Fatalf("unexpected StatsFeedToken")
	}
	if cfg.StatsFeedTimeout != 5*time.Second {
		t.Fatalf("unexpected StatsFeedTimeout: %s", cfg.StatsFeedTimeout)
	}
	if cfg.StatsFeedMaxRetries != 3 {
		t.Fatalf("unexpected StatsFeedMaxRetries: %d", cfg.StatsFeedMaxRetries)
	}
	if cfg.DatasetDir != "data/dataset" {
		t.Fatalf("unexpected DatasetDir: %q", cfg.DatasetDir)
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", `uptrace-dsn="https://token@api.uptrace.dev/123"`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev/123" {
		t.Fatalf("unexpected UptraceDSN: %q", cfg.UptraceDSN)
	}
}

func TestLoad_PprofDefaultsAddrWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("PPROF_ENABLED", "true")
	t.Setenv("PPROF_ADDR", "  ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PprofAddr != ":6060" {
		t.Fatalf("expected default pprof addr :6060, got %q", cfg.PprofAddr)
	}
}

func TestLoad_PyroscopeRequiresServerAddressWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestLoad_WarmupWorkersValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("APP_WARMUP_MAX_WORKERS", "0")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for APP_WARMUP_MAX_WORKERS=0")
	}
}

func TestLoad_LogLevelParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("APP_LOG_LEVEL", "warn")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.LogLevel.String() != "warn" {
		t.Fatalf("unexpected LogLevel: %s", cfg.LogLevel.String())
	}
}
