package server

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the HTTP front end configuration, sourced from the
// environment. A .env file in the working directory is honored when
// present so local runs do not need exported variables.
type Config struct {
	// Port the server listens on, without a colon.
	Port string

	// RedisAddr enables the Redis cache when non-empty, e.g.
	// "localhost:6379". Takes precedence over CacheDir.
	RedisAddr string

	// CacheDir enables the file cache when non-empty.
	CacheDir string
}

// LoadConfig reads configuration from the environment, loading a .env file
// first if one exists. Missing values fall back to defaults.
func LoadConfig() Config {
	_ = godotenv.Load()

	cfg := Config{
		Port:      os.Getenv("PORT"),
		RedisAddr: os.Getenv("REDIS_ADDR"),
		CacheDir:  os.Getenv("CACHE_DIR"),
	}
	if cfg.Port == "" {
		cfg.Port = "5000"
	}
	return cfg
}
