package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv         string
	Addr           string
	DbDsn          string
	SqliteFallback string
	JwtSecret      string
	JwtHours       int
	SeedDemo       bool
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		AppEnv:         getEnv("APP_ENV", "local"),
		Addr:           getEnv("APP_ADDR", ":8080"),
		DbDsn:          os.Getenv("DB_DSN"),
		SqliteFallback: getEnv("SQLITE_FALLBACK", "ems_local.db"),
		JwtSecret:      os.Getenv("JWT_SECRET"),
		JwtHours:       getEnvInt("JWT_HOURS", 12),
		SeedDemo:       getEnvBool("SEED_DEMO", true),
	}

	if cfg.JwtSecret == "" {
		return cfg, errors.New("missing env: JWT_SECRET")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}
