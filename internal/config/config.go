package config

import (
	"log"
	"os"
)

type Config struct {
	HTTPPort     string
	DatabasePath string // SQLite file path
	CORSOrigins  string
}

func Load() *Config {
	cfg := &Config{
		HTTPPort:     getEnv("HTTP_PORT", "8080"),
		DatabasePath: getEnv("DATABASE_PATH", "db/food_wastage.db"),
		CORSOrigins:  getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
	}

	if cfg.DatabasePath == "db/food_wastage.db" {
		log.Println("[WARN] DATABASE_PATH not set, using local default db/food_wastage.db")
	}
	if cfg.CORSOrigins == "http://localhost:5173" {
		log.Println("[WARN] CORS_ALLOWED_ORIGINS not set, allowing only the local dev frontend")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
