package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// DatabaseConfig holds Postgres connection settings for the catalog tables.
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
	MaxConns int
	MaxIdle  int
}

// DSN returns the lib/pq connection string.
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode)
}

// RedisConfig holds the optional side-effects cache settings.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// Config is the analysis service configuration. Everything comes from
// environment variables with sensible defaults; there are no config files.
type Config struct {
	Database DatabaseConfig
	Redis    RedisConfig

	Analysis struct {
		// DataDir holds the bundled training datasets and catalog CSVs.
		DataDir string
		// FontPath points at a TTF with Devanagari coverage for PDF output.
		// Defaults to the bundled Noto Sans Devanagari file; the renderer
		// falls back to a built-in Latin font when the file is absent.
		FontPath string
		// UnidocLicenseKey is the metered unidoc API key. unipdf needs it
		// registered before any PDF is read or written.
		UnidocLicenseKey string
		// OCRLanguages is passed to tesseract, e.g. "eng" or "eng+hin".
		OCRLanguages string
		// ClarifyRounds caps symptom clarification rounds before the
		// disambiguator gives up with an undetermined outcome.
		ClarifyRounds int
	}

	OpenFDA struct {
		BaseURL    string
		Timeout    time.Duration
		RetryCount int
		CacheTTL   time.Duration
	}

	Log struct {
		Level  string
		Format string
	}
}

// Load builds a Config from environment variables.
func Load() *Config {
	cfg := &Config{}

	cfg.Database.Host = getEnv("DB_HOST", "localhost")
	cfg.Database.Port = getEnvInt("DB_PORT", 5432)
	cfg.Database.User = getEnv("DB_USER", "postgres")
	cfg.Database.Password = getEnv("DB_PASSWORD", "postgres")
	cfg.Database.Database = getEnv("DB_NAME", "scan2heal")
	cfg.Database.SSLMode = getEnv("DB_SSLMODE", "disable")
	cfg.Database.MaxConns = getEnvInt("DB_MAX_CONNS", 10)
	cfg.Database.MaxIdle = getEnvInt("DB_MAX_IDLE", 5)

	cfg.Redis.Addr = getEnv("REDIS_ADDR", "")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	cfg.Redis.DB = getEnvInt("REDIS_DB", 0)

	cfg.Analysis.DataDir = getEnv("ANALYSIS_DATA_DIR", "data")
	cfg.Analysis.FontPath = getEnv("ANALYSIS_FONT_PATH",
		filepath.Join(cfg.Analysis.DataDir, "fonts", "NotoSansDevanagari-Regular.ttf"))
	cfg.Analysis.UnidocLicenseKey = getEnv("UNIDOC_LICENSE_API_KEY", "")
	cfg.Analysis.OCRLanguages = getEnv("ANALYSIS_OCR_LANGS", "eng")
	cfg.Analysis.ClarifyRounds = getEnvInt("ANALYSIS_CLARIFY_ROUNDS", 3)

	cfg.OpenFDA.BaseURL = getEnv("OPENFDA_BASE_URL", "https://api.fda.gov")
	cfg.OpenFDA.Timeout = time.Duration(getEnvInt("OPENFDA_TIMEOUT_SECONDS", 10)) * time.Second
	cfg.OpenFDA.RetryCount = getEnvInt("OPENFDA_RETRY_COUNT", 0)
	cfg.OpenFDA.CacheTTL = time.Duration(getEnvInt("OPENFDA_CACHE_TTL_SECONDS", 3600)) * time.Second

	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "json")

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
