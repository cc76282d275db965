package config

import (
	"os"
)

type Config struct {
	ServerPort       string
	JWTSecret        string
	DatabaseHost     string
	DatabasePort     string
	DatabaseUser     string
	DatabasePassword string
	DatabaseName     string
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		JWTSecret:        getEnv("JWT_SECRET", "secret"),
		DatabaseHost:     getEnv("DATABASE_HOST", ""),
		DatabasePort:     getEnv("DATABASE_PORT", "5432"),
		DatabaseUser:     getEnv("DATABASE_USER", "postgres"),
		DatabasePassword: getEnv("DATABASE_PASSWORD", "password"),
		DatabaseName:     getEnv("DATABASE_NAME", "vending"),
	}
	return cfg, nil
}

// JournalEnabled reports whether an audit database was configured. With no
// DATABASE_HOST the machine runs purely in memory.
func (c *Config) JournalEnabled() bool {
	return c.DatabaseHost != ""
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
