package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/fantasy-draft/internal/platform/logging"
	"github.com/riskibarqy/fantasy-draft/internal/platform/resilience"
)

const (
	CatalogSourceMemory     = "memory"
	CatalogSourceSportsData = "sportsdata"
	CatalogSourcePostgres   = "postgres"
)

// Config stores runtime configuration for the API server and the draft console.
type Config struct {
	AppEnv          string
	ServiceName     string
	ServiceVersion  string
	HTTPAddr        string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	LogLevel        logging.Level

	CORSAllowedOrigins []string

	CatalogSource          string
	CatalogCacheTTL        time.Duration
	CatalogPageSize        int
	CatalogRefreshInterval time.Duration
	CatalogSeedOnBoot      bool

	SportsDataBaseURL           string
	SportsDataAPIKey            string
	SportsDataTimeout           time.Duration
	SportsDataMaxRetries        int
	SportsDataRequestsPerSecond float64
	SportsDataStatsSeason       string
	SportsDataProjectionSeason  string
	SportsDataCircuit           resilience.CircuitBreakerConfig

	DraftAPIURL     string
	DraftAPITimeout time.Duration
	DraftPageSize   int
	DraftWorkers    int
	DraftCircuit    resilience.CircuitBreakerConfig

	DBURL                   string
	DBDisablePreparedBinary bool

	PprofEnabled bool
	PprofAddr    string

	UptraceEnabled bool
	UptraceDSN     string

	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration
}

// PickLogPersistent reports whether draft picks go to Postgres.
func (c Config) PickLogPersistent() bool {
	return strings.TrimSpace(c.DBURL) != ""
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppEnv:             appEnv,
		ServiceName:        getEnv("APP_SERVICE_NAME", "fantasy-draft-api"),
		ServiceVersion:     getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:           getEnv("APP_HTTP_ADDR", ":5000"),
		LogLevel:           logging.ParseLevel(getEnv("APP_LOG_LEVEL", "info")),
		CORSAllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		DBURL:              strings.TrimSpace(getEnv("DB_URL", "")),
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	if cfg.ReadTimeout, err = positiveDuration("APP_READ_TIMEOUT", "10s"); err != nil {
		return Config{}, err
	}
	if cfg.WriteTimeout, err = positiveDuration("APP_WRITE_TIMEOUT", "15s"); err != nil {
		return Config{}, err
	}
	if cfg.ShutdownTimeout, err = positiveDuration("APP_SHUTDOWN_TIMEOUT", "10s"); err != nil {
		return Config{}, err
	}

	if err := loadCatalog(&cfg); err != nil {
		return Config{}, err
	}
	if err := loadSportsData(&cfg); err != nil {
		return Config{}, err
	}
	if err := loadDraftClient(&cfg); err != nil {
		return Config{}, err
	}
	if err := loadDatabase(&cfg); err != nil {
		return Config{}, err
	}
	if err := loadObservability(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func loadCatalog(cfg *Config) error {
	source := strings.ToLower(strings.TrimSpace(getEnv("CATALOG_SOURCE", CatalogSourceMemory)))
	switch source {
	case CatalogSourceMemory, CatalogSourceSportsData, CatalogSourcePostgres:
	default:
		return fmt.Errorf("invalid CATALOG_SOURCE %q: valid values are %s, %s, %s",
			source, CatalogSourceMemory, CatalogSourceSportsData, CatalogSourcePostgres)
	}
	cfg.CatalogSource = source

	var err error
	if cfg.CatalogCacheTTL, err = positiveDuration("CATALOG_CACHE_TTL", "10m"); err != nil {
		return err
	}

	if cfg.CatalogPageSize, err = getEnvAsInt("CATALOG_PAGE_SIZE", 100); err != nil {
		return fmt.Errorf("parse CATALOG_PAGE_SIZE: %w", err)
	}
	if cfg.CatalogPageSize < 1 || cfg.CatalogPageSize > 500 {
		return fmt.Errorf("CATALOG_PAGE_SIZE must be between 1 and 500")
	}

	// Zero disables the periodic refresh job.
	if cfg.CatalogRefreshInterval, err = time.ParseDuration(getEnv("CATALOG_REFRESH_INTERVAL", "0s")); err != nil {
		return fmt.Errorf("parse CATALOG_REFRESH_INTERVAL: %w", err)
	}
	if cfg.CatalogRefreshInterval < 0 {
		return fmt.Errorf("CATALOG_REFRESH_INTERVAL must be >= 0")
	}
	if cfg.CatalogRefreshInterval > 0 && cfg.CatalogRefreshInterval < time.Minute {
		return fmt.Errorf("CATALOG_REFRESH_INTERVAL must be at least 1m when enabled")
	}

	if cfg.CatalogSeedOnBoot, err = strconv.ParseBool(getEnv("CATALOG_SEED_ON_BOOT", "true")); err != nil {
		return fmt.Errorf("parse CATALOG_SEED_ON_BOOT: %w", err)
	}
	return nil
}

func loadSportsData(cfg *Config) error {
	cfg.SportsDataBaseURL = strings.TrimSpace(getEnv("SPORTSDATA_BASE_URL", "https://api.sportsdata.io/v3/nfl"))
	cfg.SportsDataAPIKey = strings.TrimSpace(getEnv("SPORTSDATA_API_KEY", ""))
	cfg.SportsDataStatsSeason = strings.TrimSpace(getEnv("SPORTSDATA_STATS_SEASON", "2024"))
	cfg.SportsDataProjectionSeason = strings.TrimSpace(getEnv("SPORTSDATA_PROJECTION_SEASON", "2025"))

	if cfg.CatalogSource == CatalogSourceSportsData && cfg.SportsDataAPIKey == "" {
		return fmt.Errorf("SPORTSDATA_API_KEY is required when CATALOG_SOURCE=%s", CatalogSourceSportsData)
	}
	if err := validateHTTPURL("SPORTSDATA_BASE_URL", cfg.SportsDataBaseURL); err != nil {
		return err
	}

	var err error
	if cfg.SportsDataTimeout, err = positiveDuration("SPORTSDATA_TIMEOUT", "20s"); err != nil {
		return err
	}
	if cfg.SportsDataMaxRetries, err = getEnvAsInt("SPORTSDATA_MAX_RETRIES", 2); err != nil {
		return fmt.Errorf("parse SPORTSDATA_MAX_RETRIES: %w", err)
	}
	if cfg.SportsDataMaxRetries < 0 {
		return fmt.Errorf("SPORTSDATA_MAX_RETRIES must be >= 0")
	}
	if cfg.SportsDataRequestsPerSecond, err = strconv.ParseFloat(getEnv("SPORTSDATA_REQUESTS_PER_SECOND", "2"), 64); err != nil {
		return fmt.Errorf("parse SPORTSDATA_REQUESTS_PER_SECOND: %w", err)
	}
	if cfg.SportsDataRequestsPerSecond < 0 {
		return fmt.Errorf("SPORTSDATA_REQUESTS_PER_SECOND must be >= 0")
	}

	cfg.SportsDataCircuit, err = loadCircuit("SPORTSDATA", true)
	return err
}

func loadDraftClient(cfg *Config) error {
	cfg.DraftAPIURL = strings.TrimRight(strings.TrimSpace(getEnv("DRAFT_API_URL", "http://localhost:5000")), "/")
	if err := validateHTTPURL("DRAFT_API_URL", cfg.DraftAPIURL); err != nil {
		return err
	}

	var err error
	if cfg.DraftAPITimeout, err = positiveDuration("DRAFT_API_TIMEOUT", "15s"); err != nil {
		return err
	}
	if cfg.DraftPageSize, err = getEnvAsInt("DRAFT_PAGE_SIZE", 100); err != nil {
		return fmt.Errorf("parse DRAFT_PAGE_SIZE: %w", err)
	}
	if cfg.DraftPageSize < 1 || cfg.DraftPageSize > 500 {
		return fmt.Errorf("DRAFT_PAGE_SIZE must be between 1 and 500")
	}
	if cfg.DraftWorkers, err = getEnvAsInt("DRAFT_WORKERS", 4); err != nil {
		return fmt.Errorf("parse DRAFT_WORKERS: %w", err)
	}
	if cfg.DraftWorkers < 1 {
		return fmt.Errorf("DRAFT_WORKERS must be >= 1")
	}

	cfg.DraftCircuit, err = loadCircuit("DRAFT_API", false)
	return err
}

func loadDatabase(cfg *Config) error {
	if cfg.CatalogSource == CatalogSourcePostgres && cfg.DBURL == "" {
		return fmt.Errorf("DB_URL is required when CATALOG_SOURCE=%s", CatalogSourcePostgres)
	}

	dbDisablePreparedBinary, err := strconv.ParseBool(getEnv("DB_DISABLE_PREPARED_BINARY_RESULT", "true"))
	if err != nil {
		return fmt.Errorf("parse DB_DISABLE_PREPARED_BINARY_RESULT: %w", err)
	}
	cfg.DBDisablePreparedBinary = dbDisablePreparedBinary
	return nil
}

func loadObservability(cfg *Config) error {
	var err error
	if cfg.PprofEnabled, err = strconv.ParseBool(getEnv("PPROF_ENABLED", "false")); err != nil {
		return fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	cfg.PprofAddr = strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if cfg.PprofEnabled && cfg.PprofAddr == "" {
		return fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	if cfg.UptraceEnabled, err = strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false")); err != nil {
		return fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	cfg.UptraceDSN = strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if cfg.UptraceDSN == "" {
		cfg.UptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if cfg.UptraceEnabled && cfg.UptraceDSN == "" {
		return fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	if cfg.PyroscopeEnabled, err = strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false")); err != nil {
		return fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	cfg.PyroscopeServerAddress = strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if cfg.PyroscopeEnabled && cfg.PyroscopeServerAddress == "" {
		return fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	if cfg.PyroscopeUploadRate, err = positiveDuration("PYROSCOPE_UPLOAD_RATE", "15s"); err != nil {
		return err
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	cfg.PyroscopeAuthToken = strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", ""))
	cfg.PyroscopeBasicAuthUser = strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", ""))
	cfg.PyroscopeBasicAuthPassword = strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", ""))
	return nil
}

// loadCircuit reads <PREFIX>_CIRCUIT_* keys.
func loadCircuit(prefix string, enabledByDefault bool) (resilience.CircuitBreakerConfig, error) {
	defaults := resilience.DefaultCircuitBreakerConfig()
	out := resilience.CircuitBreakerConfig{}

	var err error
	if out.Enabled, err = strconv.ParseBool(getEnv(prefix+"_CIRCUIT_ENABLED", strconv.FormatBool(enabledByDefault))); err != nil {
		return out, fmt.Errorf("parse %s_CIRCUIT_ENABLED: %w", prefix, err)
	}
	if out.FailureThreshold, err = getEnvAsInt(prefix+"_CIRCUIT_FAILURE_COUNT", defaults.FailureThreshold); err != nil {
		return out, fmt.Errorf("parse %s_CIRCUIT_FAILURE_COUNT: %w", prefix, err)
	}
	if out.OpenTimeout, err = time.ParseDuration(getEnv(prefix+"_CIRCUIT_OPEN_TIMEOUT", defaults.OpenTimeout.String())); err != nil {
		return out, fmt.Errorf("parse %s_CIRCUIT_OPEN_TIMEOUT: %w", prefix, err)
	}
	if out.HalfOpenMaxReq, err = getEnvAsInt(prefix+"_CIRCUIT_HALF_OPEN_MAX_REQ", defaults.HalfOpenMaxReq); err != nil {
		return out, fmt.Errorf("parse %s_CIRCUIT_HALF_OPEN_MAX_REQ: %w", prefix, err)
	}
	if err := out.Validate(); err != nil {
		return out, fmt.Errorf("%s circuit: %w", prefix, err)
	}
	return out, nil
}

func positiveDuration(key, fallback string) (time.Duration, error) {
	value, err := time.ParseDuration(getEnv(key, fallback))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if value <= 0 {
		return 0, fmt.Errorf("%s must be > 0", key)
	}
	return value, nil
}

func validateHTTPURL(key, raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return fmt.Errorf("%s must be an absolute http(s) URL, got %q", key, raw)
	}
	return nil
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
