package config

import (
	"log"
	"os"
	"strings"
)

const (
	defaultDBPath      = "./housecost.db"
	defaultPort        = "8080"
	defaultRedisURL    = "redis://localhost:6379/0"
	defaultEnvironment = "development"
)

// Store drivers for the saved-configuration collection.
const (
	StoreSQLite = "sqlite"
	StoreRedis  = "redis"
	StoreMemory = "memory"
)

// Config holds application configuration sourced from environment variables.
type Config struct {
	Env            string
	Port           string
	DBPath         string
	StoreDriver    string
	RedisURL       string
	RedisKeyPrefix string
}

// Load reads environment variables and returns a populated Config.
func Load() Config {
	// Best-effort: a missing .env is normal outside local development.
	if err := loadDotEnv(".env"); err != nil {
		log.Printf("warning: could not read .env: %v", err)
	}

	cfg := Config{
		Env:            os.Getenv("APP_ENV"),
		Port:           os.Getenv("PORT"),
		DBPath:         os.Getenv("DB_PATH"),
		StoreDriver:    strings.ToLower(strings.TrimSpace(os.Getenv("STORE_DRIVER"))),
		RedisURL:       os.Getenv("REDIS_URL"),
		RedisKeyPrefix: os.Getenv("REDIS_KEY_PREFIX"),
	}

	if cfg.Env == "" {
		cfg.Env = defaultEnvironment
	}
	if cfg.DBPath == "" {
		cfg.DBPath = defaultDBPath
	}
	if cfg.Port == "" {
		cfg.Port = defaultPort
	}
	if cfg.RedisURL == "" {
		cfg.RedisURL = defaultRedisURL
	}

	switch cfg.StoreDriver {
	case "":
		cfg.StoreDriver = StoreSQLite
	case StoreSQLite, StoreRedis, StoreMemory:
	default:
		log.Printf("warning: unknown STORE_DRIVER %q, using %s", cfg.StoreDriver, StoreSQLite)
		cfg.StoreDriver = StoreSQLite
	}

	if cfg.StoreDriver == StoreMemory {
		log.Print("warning: STORE_DRIVER=memory, saved configurations are lost on exit")
	}

	return cfg
}

// IsDev reports whether the app runs in local development mode.
func (c Config) IsDev() bool {
	return c.Env == defaultEnvironment || c.Env == "dev"
}
