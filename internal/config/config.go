package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config — настройки сервера из окружения
type Config struct {
	Addr          string `env:"APP_ADDR" envDefault:":8080"`
	DatabaseDSN   string `env:"DB_DSN"`
	SessionSecret string `env:"SESSION_SECRET" envDefault:"dev_fallback_secret"`
	RedisAddr     string `env:"REDIS_ADDR"` // пусто — cookie store
	UploadDir     string `env:"UPLOAD_DIR" envDefault:"uploads"`
}

// Load reads .env files (if present) and then the environment.
// Missing .env files are not an error — in production everything
// comes from real environment variables.
func Load() (*Config, error) {
	_ = godotenv.Overload(".env", "../.env", "../../.env")

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}
	return cfg, nil
}
