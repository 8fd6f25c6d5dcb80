package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Store drivers accepted by STORE_DRIVER.
const (
	DriverMongo  = "mongo"
	DriverMySQL  = "mysql"
	DriverMemory = "memory"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort      string        `env:"SERVER_PORT" envDefault:"5000"`
	StoreDriver     string        `env:"STORE_DRIVER" envDefault:"mongo"`
	MongoURI        string        `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
	MongoDatabase   string        `env:"MONGO_DATABASE" envDefault:"graphical-api"`
	MySQLDSN        string        `env:"MYSQL_DSN" envDefault:"user:password@tcp(localhost:3306)/app?charset=utf8mb4&parseTime=True&loc=UTC"`
	JWTSecret       string        `env:"JWT_SECRET_KEY"`
	TokenTTL        time.Duration `env:"TOKEN_TTL" envDefault:"3h"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"json"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	SwaggerHost     string        `env:"SWAGGER_HOST"`
	SeedSource      string        `env:"SEED_SOURCE"`
}

// Load builds Config from the environment and rejects unusable settings.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY is required")
	}
	switch cfg.StoreDriver {
	case DriverMongo, DriverMySQL, DriverMemory:
	default:
		return nil, fmt.Errorf("STORE_DRIVER must be one of %s, %s, %s", DriverMongo, DriverMySQL, DriverMemory)
	}
	if cfg.TokenTTL <= 0 {
		return nil, fmt.Errorf("TOKEN_TTL must be positive")
	}
	return &cfg, nil
}
