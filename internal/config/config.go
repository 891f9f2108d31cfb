package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/scoutschool/daily-shift/internal/platform/logging"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv             string
	ServiceName        string
	ServiceVersion     string
	HTTPAddr           string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	CORSAllowedOrigins []string
	LogLevel           logging.Level

	DBPath              string
	DatasetDir          string
	DefaultFavoriteTeam string
	WarmupMaxWorkers    int

	CacheEnabled bool
	CacheTTL     time.Duration

	StatsFeedEnabled               bool
	StatsFeedBaseURL               string
	StatsFeedToken                 string
	StatsFeedTimeout               time.Duration
	StatsFeedMaxRetries            int
	StatsFeedCircuitEnabled        bool
	StatsFeedCircuitFailureCount   int
	StatsFeedCircuitOpenTimeout    time.Duration
	StatsFeedCircuitHalfOpenMaxReq int

	PprofEnabled bool
	PprofAddr    string

	UptraceEnabled     bool
	UptraceDSN         string
	UptraceLogsEnabled bool

	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	warmupMaxWorkers, err := getEnvAsInt("APP_WARMUP_MAX_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WARMUP_MAX_WORKERS: %w", err)
	}
	if warmupMaxWorkers < 1 {
		return Config{}, fmt.Errorf("APP_WARMUP_MAX_WORKERS must be >= 1")
	}

	defaultFavorite := strings.ToUpper(strings.TrimSpace(getEnv("APP_DEFAULT_FAVORITE_TEAM", "ANA")))
	if defaultFavorite == "" {
		return Config{}, fmt.Errorf("APP_DEFAULT_FAVORITE_TEAM cannot be empty")
	}

	cacheEnabled, err := strconv.ParseBool(getEnv("CACHE_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_ENABLED: %w", err)
	}
	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "60s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_TTL: %w", err)
	}
	if cacheTTL <= 0 {
		return Config{}, fmt.Errorf("CACHE_TTL must be > 0")
	}

	statsFeedEnabled, err := strconv.ParseBool(getEnv("STATSFEED_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse STATSFEED_ENABLED: %w", err)
	}
	statsFeedBaseURL := strings.TrimSpace(getEnv("STATSFEED_BASE_URL", ""))
	if statsFeedEnabled && statsFeedBaseURL == "" {
		return Config{}, fmt.Errorf("STATSFEED_BASE_URL is required when STATSFEED_ENABLED=true")
	}
	statsFeedTimeout, err := time.ParseDuration(getEnv("STATSFEED_TIMEOUT", "20s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse STATSFEED_TIMEOUT: %w", err)
	}
	if statsFeedTimeout <= 0 {
		return Config{}, fmt.Errorf("STATSFEED_TIMEOUT must be > 0")
	}
	statsFeedMaxRetries, err := getEnvAsInt("STATSFEED_MAX_RETRIES", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse STATSFEED_MAX_RETRIES: %w", err)
	}
	if statsFeedMaxRetries < 0 {
		return Config{}, fmt.Errorf("STATSFEED_MAX_RETRIES must be >= 0")
	}
	statsFeedCircuitEnabled, err := strconv.ParseBool(getEnv("STATSFEED_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse STATSFEED_CIRCUIT_ENABLED: %w", err)
	}
	statsFeedCircuitFailureCount, err := getEnvAsInt("STATSFEED_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse STATSFEED_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if statsFeedCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("STATSFEED_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	statsFeedCircuitOpenTimeout, err := time.ParseDuration(getEnv("STATSFEED_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse STATSFEED_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if statsFeedCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("STATSFEED_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	statsFeedCircuitHalfOpenMaxReq, err := getEnvAsInt("STATSFEED_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse STATSFEED_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if statsFeedCircuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("STATSFEED_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}
	uptraceLogsEnabled, err := strconv.ParseBool(getEnv("UPTRACE_LOGS_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_LOGS_ENABLED: %w", err)
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	cfg := Config{
		AppEnv:             appEnv,
		ServiceName:        getEnv("APP_SERVICE_NAME", "daily-shift-api"),
		ServiceVersion:     getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:           getEnv("APP_HTTP_ADDR", ":8080"),
		ReadTimeout:        readTimeout,
		WriteTimeout:       writeTimeout,
		CORSAllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		LogLevel:           parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),

		DBPath:              strings.TrimSpace(getEnv("DB_PATH", "data/daily-shift.db")),
		DatasetDir:          strings.TrimSpace(getEnv("DATASET_DIR", "")),
		DefaultFavoriteTeam: defaultFavorite,
		WarmupMaxWorkers:    warmupMaxWorkers,

		CacheEnabled: cacheEnabled,
		CacheTTL:     cacheTTL,

		StatsFeedEnabled:               statsFeedEnabled,
		StatsFeedBaseURL:               statsFeedBaseURL,
		StatsFeedToken:                 strings.TrimSpace(getEnv("STATSFEED_TOKEN", "")),
		StatsFeedTimeout:               statsFeedTimeout,
		StatsFeedMaxRetries:            statsFeedMaxRetries,
		StatsFeedCircuitEnabled:        statsFeedCircuitEnabled,
		StatsFeedCircuitFailureCount:   statsFeedCircuitFailureCount,
		StatsFeedCircuitOpenTimeout:    statsFeedCircuitOpenTimeout,
		StatsFeedCircuitHalfOpenMaxReq: statsFeedCircuitHalfOpenMaxReq,

		PprofEnabled: pprofEnabled,
		PprofAddr:    pprofAddr,

		UptraceEnabled:     uptraceEnabled,
		UptraceDSN:         uptraceDSN,
		UptraceLogsEnabled: uptraceLogsEnabled,

		PyroscopeEnabled:           pyroscopeEnabled,
		PyroscopeServerAddress:     pyroscopeServerAddress,
		PyroscopeAuthToken:         strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:     strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword: strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:        pyroscopeUploadRate,
	}

	if cfg.DBPath == "" {
		return Config{}, fmt.Errorf("DB_PATH cannot be empty")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}
	if statsFeedEnabled && cfg.DatasetDir == "" {
		return Config{}, fmt.Errorf("DATASET_DIR is required when STATSFEED_ENABLED=true")
	}

	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}

	return cfg, nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
