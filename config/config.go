package config

import (
	"hotelops/utils"
)

// Config is the process configuration, read once at startup.
type Config struct {
	Port string

	// DatabaseURL is a mysql:// URL, a raw MySQL DSN or a sqlite:// path.
	// Empty starts the document store disabled.
	DatabaseURL  string
	DatabaseName string

	CORSOrigins string

	LogLevel  string
	LogFormat string
	GinMode   string

	AigenAPIKey   string
	AigenEndpoint string
}

func Load() Config {
	return Config{
		Port:          utils.EnvOrDefault("PORT", "8000"),
		DatabaseURL:   utils.EnvOrDefault("DATABASE_URL", ""),
		DatabaseName:  utils.EnvOrDefault("DATABASE_NAME", ""),
		CORSOrigins:   utils.EnvOrDefault("CORS_ORIGINS", ""),
		LogLevel:      utils.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:     utils.EnvOrDefault("LOG_FORMAT", "json"),
		GinMode:       utils.EnvOrDefault("GIN_MODE", "release"),
		AigenAPIKey:   utils.EnvOrDefault("AIGEN_API_KEY", ""),
		AigenEndpoint: utils.EnvOrDefault("AIGEN_ENDPOINT", ""),
	}
}

func (c Config) DatabaseConfigured() bool { return c.DatabaseURL != "" }
