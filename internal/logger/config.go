package logger

import (
	"log/slog"
	"strings"
)

// Config selects the handler, level and base attributes of the default logger
type Config struct {
	Level       string
	Format      string
	ServiceName string
	Version     string
	Environment string
	AddSource   bool
}

// NewConfig builds a logger config for one deployment. Source locations are
// only attached in development environments.
func NewConfig(level, format, serviceName, version, environment string) Config {
	return Config{
		Level:       level,
		Format:      format,
		ServiceName: serviceName,
		Version:     version,
		Environment: environment,
		AddSource:   IsDevEnvironment(environment),
	}
}

// DefaultConfig is text output at info level
func DefaultConfig() Config {
	return NewConfig(LogLevelInfo, LogFormatText, DefaultServiceName, DefaultVersion, EnvironmentTest)
}

// IsDevEnvironment reports whether env names a local development setup
func IsDevEnvironment(env string) bool {
	switch strings.ToLower(env) {
	case EnvironmentDev, EnvironmentDevelopment:
		return true
	}
	return false
}

// LogLevel parses Level the way slog does ("debug", "INFO", "warn+2").
// "warning" is accepted as warn; anything unparsable is info.
func (c Config) LogLevel() slog.Level {
	if strings.EqualFold(c.Level, LogLevelWarning) {
		return slog.LevelWarn
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Level)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// IsJSON returns true if format is JSON
func (c Config) IsJSON() bool {
	return strings.EqualFold(c.Format, LogFormatJSON)
}

func (c Config) baseAttributes() []slog.Attr {
	return []slog.Attr{
		slog.String(AttrKeyService, c.ServiceName),
		slog.String(AttrKeyVersion, c.Version),
		slog.String(AttrKeyEnvironment, c.Environment),
	}
}
