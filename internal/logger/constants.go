package logger

// Level names not covered by slog's own parser
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarning = "warning"
)

// Log Format String Values
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

const (
	DefaultServiceName = "marketbot"
	DefaultVersion     = "dev"
)

// Environment String Values
const (
	EnvironmentDev         = "dev"
	EnvironmentDevelopment = "development"
	EnvironmentTest        = "test"
)

// Log Attribute Keys
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
)
