package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddress string
	PostgresURL   string
	MigrationsURL string

	SendGridAPIKey string
	EmailFrom      string
	VerifyBaseURL  string

	AllowOrigins []string
}

// Load reads configuration from the environment, with an optional .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":8080"),
		MigrationsURL: getEnv("MIGRATIONS_URL", "file://migrations"),
		EmailFrom:     getEnv("EMAIL_FROM", "noreply@licitaya.do"),
		VerifyBaseURL: getEnv("VERIFY_BASE_URL", "http://localhost:3000"),
	}

	cfg.PostgresURL = getEnv("POSTGRES_CONN", "")
	if cfg.PostgresURL == "" {
		host := getEnv("POSTGRES_HOST", "")
		port := getEnv("POSTGRES_PORT", "5432")
		username := getEnv("POSTGRES_USERNAME", "")
		password := getEnv("POSTGRES_PASSWORD", "")
		database := getEnv("POSTGRES_DATABASE", "")
		if host == "" || username == "" || database == "" {
			return nil, errors.New("either POSTGRES_CONN or POSTGRES_HOST/POSTGRES_USERNAME/POSTGRES_DATABASE must be set")
		}

		cfg.PostgresURL = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
			username, password, host, port, database)
	}

	cfg.SendGridAPIKey = getEnv("SENDGRID_API_KEY", "")
	if cfg.SendGridAPIKey == "" {
		return nil, errors.New("SENDGRID_API_KEY must be set")
	}

	for _, origin := range strings.Split(getEnv("ALLOW_ORIGINS", "http://localhost:3000"), ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			cfg.AllowOrigins = append(cfg.AllowOrigins, origin)
		}
	}

	return cfg, nil
}

func getEnv(key string, def string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return def
}
