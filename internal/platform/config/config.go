package config

import (
	"log"
	"strings"
	"time"

	"github.com/flourmill/mill_ledger/internal/utils/money"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port          string
	IsProduction  bool
	DatabaseURL   string `mapstructure:"PGSQL_URL"`
	EnableDBCheck bool

	// ERP backend
	ERPAPIBaseURL  string        `mapstructure:"ERP_API_BASE_URL"`
	ERPAPITimeout  time.Duration `mapstructure:"ERP_API_TIMEOUT"`
	ERPConcurrency int           `mapstructure:"ERP_API_CONCURRENCY"`

	// JWTSecret enables signature verification of incoming bearer tokens. When empty,
	// tokens are only decoded and checked for expiry; the backend stays the verifier.
	JWTSecret string

	DefaultCurrency string
	RedisURL        string `mapstructure:"REDIS_URL"`
	RateLimit       string `mapstructure:"RATE_LIMIT"`
	FrontendBaseURL string `mapstructure:"FRONTEND_BASE_URL"`

	LedgerPageSize    int
	CheckpointsToKeep int
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("ERP_API_BASE_URL", "http://localhost:5000")
	v.SetDefault("ERP_API_TIMEOUT", "15s")
	v.SetDefault("ERP_API_CONCURRENCY", 4)
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("DEFAULT_CURRENCY", money.DefaultCurrency)
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	v.SetDefault("LEDGER_PAGE_SIZE", 50)
	v.SetDefault("CHECKPOINTS_TO_KEEP", 5)
	v.AutomaticEnv()

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{
		Port:              v.GetString("PORT"),
		IsProduction:      v.GetBool("IS_PRODUCTION"),
		DatabaseURL:       v.GetString("PGSQL_URL"),
		EnableDBCheck:     v.GetBool("ENABLE_DB_CHECK"),
		ERPAPIBaseURL:     strings.TrimRight(v.GetString("ERP_API_BASE_URL"), "/"),
		ERPConcurrency:    v.GetInt("ERP_API_CONCURRENCY"),
		JWTSecret:         v.GetString("JWT_SECRET"),
		DefaultCurrency:   strings.ToUpper(strings.TrimSpace(v.GetString("DEFAULT_CURRENCY"))),
		RedisURL:          v.GetString("REDIS_URL"),
		RateLimit:         v.GetString("RATE_LIMIT"),
		FrontendBaseURL:   v.GetString("FRONTEND_BASE_URL"),
		LedgerPageSize:    v.GetInt("LEDGER_PAGE_SIZE"),
		CheckpointsToKeep: v.GetInt("CHECKPOINTS_TO_KEEP"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	timeoutStr := v.GetString("ERP_API_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil || timeout <= 0 {
		timeout = 15 * time.Second
		log.Printf("Warning: Invalid value for ERP_API_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout)
	}
	cfg.ERPAPITimeout = timeout

	currency, err := money.ValidateCurrency(cfg.DefaultCurrency)
	if err != nil {
		log.Printf("Warning: DEFAULT_CURRENCY '%s' is not an ISO 4217 code. Defaulting to %s.\n", cfg.DefaultCurrency, money.DefaultCurrency)
		currency = money.DefaultCurrency
	}
	cfg.DefaultCurrency = currency

	if cfg.LedgerPageSize <= 0 {
		cfg.LedgerPageSize = 50
	}
	if cfg.ERPConcurrency <= 0 {
		cfg.ERPConcurrency = 4
	}
	if cfg.CheckpointsToKeep <= 0 {
		cfg.CheckpointsToKeep = 5
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL not set. Balance checkpoints are disabled.")
	}
	if cfg.JWTSecret == "" {
		log.Println("Warning: JWT_SECRET not set. Bearer tokens are checked for expiry only.")
	}
	return cfg
}
