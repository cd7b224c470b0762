package config

import "time"

// Bound store backends
const (
	BoundsBackendPostgres = "postgres"
	BoundsBackendMemory   = "memory"
)

// Defaults
const (
	DefaultPort            = 8080
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
	DefaultEnvironment     = "dev"
	DefaultServiceName     = "marketbot"
	DefaultVersion         = "dev"
	DefaultMarketBaseURL   = "https://market.csgo.com"
	DefaultMarketCurrency  = "USD"
	DefaultRequestTimeout  = 10 * time.Second
	DefaultRequestSpacing  = 300 * time.Millisecond
	DefaultRetryBackoff    = 2 * time.Second
	DefaultMaxAttempts     = 3
	DefaultItemCooldown    = 9 * time.Second
	DefaultLoopDelay       = time.Second
	DefaultResetEvery      = 100
	DefaultBoundsBackend   = BoundsBackendPostgres
	DefaultDBUser          = "postgres"
	DefaultDBPassword      = "postgres"
	DefaultDBHost          = "localhost"
	DefaultDBPort          = "5432"
	DefaultDBName          = "marketbot"
	DefaultDBSSLMode       = "disable"
	DefaultDBMaxConns      = 5
	DefaultShutdownTimeout = 30 * time.Second
)

// Error messages
const (
	ErrMsgInvalidPort          = "invalid PORT value"
	ErrMsgMissingMarketKey     = "MARKET_API_KEY environment variable must be set"
	ErrMsgInvalidBackend       = "BOUNDS_BACKEND must be postgres or memory"
	ErrMsgInvalidMaxAttempts   = "MAX_ATTEMPTS must be at least 1"
	ErrMsgInvalidResetEvery    = "RESET_EVERY must be at least 1"
	ErrMsgNegativeDuration     = "durations must not be negative"
	ErrMsgInvalidTimeout       = "REQUEST_TIMEOUT must be positive"
	ErrMsgTelegramIncomplete   = "TELEGRAM_TOKEN and TELEGRAM_CHAT_ID must be set together"
	ErrMsgInvalidConfiguration = "invalid configuration"
)
