package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/osse101/MarketBot_Go/internal/database"
)

// Config holds the application configuration
type Config struct {
	// Control API and logging
	Port        int
	APIKey      string // optional key for the control API
	LogLevel    string
	LogFormat   string
	Environment string
	ServiceName string
	Version     string
	AutoStart   bool

	// Marketplace
	MarketAPIKey   string
	MarketBaseURL  string
	MarketCurrency string
	RequestTimeout time.Duration
	RequestSpacing time.Duration
	RetryBackoff   time.Duration
	MaxAttempts    int

	// Loop
	ItemCooldown time.Duration
	LoopDelay    time.Duration
	ResetEvery   int
	DevMode      bool

	// Bound store
	BoundsBackend string
	DBUser        string
	DBPassword    string
	DBHost        string
	DBPort        string
	DBName        string
	DBSSLMode     string
	DBMaxConns    int

	// Notifications
	TelegramToken     string
	TelegramChatID    string
	DiscordWebhookURL string

	ShutdownTimeout time.Duration
}

// Load loads the configuration from environment variables, reading a .env
// file first when one exists.
func Load() (*Config, error) {
	// real env vars win over .env
	_ = godotenv.Load()

	cfg := &Config{
		APIKey:      getEnv("API_KEY", ""),
		LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", DefaultLogLevel)),
		LogFormat:   strings.ToLower(getEnv("LOG_FORMAT", DefaultLogFormat)),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),
		ServiceName: getEnv("SERVICE_NAME", DefaultServiceName),
		Version:     getEnv("VERSION", DefaultVersion),
		AutoStart:   getEnvAsBool("AUTO_START", false),

		MarketAPIKey:   getEnv("MARKET_API_KEY", ""),
		MarketBaseURL:  getEnv("MARKET_BASE_URL", DefaultMarketBaseURL),
		MarketCurrency: getEnv("MARKET_CURRENCY", DefaultMarketCurrency),
		RequestTimeout: getEnvAsDuration("REQUEST_TIMEOUT", DefaultRequestTimeout),
		RequestSpacing: getEnvAsDuration("REQUEST_SPACING", DefaultRequestSpacing),
		RetryBackoff:   getEnvAsDuration("RETRY_BACKOFF", DefaultRetryBackoff),
		MaxAttempts:    getEnvAsInt("MAX_ATTEMPTS", DefaultMaxAttempts),

		ItemCooldown: getEnvAsDuration("ITEM_COOLDOWN", DefaultItemCooldown),
		LoopDelay:    getEnvAsDuration("LOOP_DELAY", DefaultLoopDelay),
		ResetEvery:   getEnvAsInt("RESET_EVERY", DefaultResetEvery),
		DevMode:      getEnvAsBool("DEV_MODE", false),

		BoundsBackend: strings.ToLower(getEnv("BOUNDS_BACKEND", DefaultBoundsBackend)),
		DBUser:        getEnv("DB_USER", DefaultDBUser),
		DBPassword:    getEnv("DB_PASSWORD", DefaultDBPassword),
		DBHost:        getEnv("DB_HOST", DefaultDBHost),
		DBPort:        getEnv("DB_PORT", DefaultDBPort),
		DBName:        getEnv("DB_NAME", DefaultDBName),
		DBSSLMode:     getEnv("DB_SSLMODE", DefaultDBSSLMode),
		DBMaxConns:    getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),

		TelegramToken:     getEnv("TELEGRAM_TOKEN", ""),
		TelegramChatID:    getEnv("TELEGRAM_CHAT_ID", ""),
		DiscordWebhookURL: getEnv("DISCORD_WEBHOOK_URL", ""),

		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", DefaultShutdownTimeout),
	}

	port, err := strconv.Atoi(getEnv("PORT", strconv.Itoa(DefaultPort)))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidPort, err)
	}
	cfg.Port = port

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks required values and ranges. It reports every problem at once.
func (c *Config) Validate() error {
	var errs []error

	if c.MarketAPIKey == "" {
		errs = append(errs, errors.New(ErrMsgMissingMarketKey))
	}
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("%s: %d", ErrMsgInvalidPort, c.Port))
	}
	if c.BoundsBackend != BoundsBackendPostgres && c.BoundsBackend != BoundsBackendMemory {
		errs = append(errs, fmt.Errorf("%s: %q", ErrMsgInvalidBackend, c.BoundsBackend))
	}
	if c.MaxAttempts < 1 {
		errs = append(errs, errors.New(ErrMsgInvalidMaxAttempts))
	}
	if c.ResetEvery < 1 {
		errs = append(errs, errors.New(ErrMsgInvalidResetEvery))
	}
	if c.RequestTimeout <= 0 {
		errs = append(errs, errors.New(ErrMsgInvalidTimeout))
	}
	if c.RequestSpacing < 0 || c.RetryBackoff < 0 || c.ItemCooldown < 0 || c.LoopDelay < 0 {
		errs = append(errs, errors.New(ErrMsgNegativeDuration))
	}
	if (c.TelegramToken == "") != (c.TelegramChatID == "") {
		errs = append(errs, errors.New(ErrMsgTelegramIncomplete))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%s: %w", ErrMsgInvalidConfiguration, errors.Join(errs...))
	}
	return nil
}

// UsesDatabase reports whether bounds are stored in PostgreSQL
func (c *Config) UsesDatabase() bool {
	return c.BoundsBackend == BoundsBackendPostgres
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return database.ConnString(c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt returns the default when the variable is unset or not an integer
func getEnvAsInt(key string, defaultValue int) int {
	if v, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return v
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if v, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return v
	}
	return defaultValue
}

// getEnvAsDuration parses values like "300ms" or "9s"
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if v, err := time.ParseDuration(getEnv(key, "")); err == nil {
		return v
	}
	return defaultValue
}
