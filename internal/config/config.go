package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	DatabaseURL  string
	DatabaseName string
	CORSOrigins  string
}

func Load() Config {
	// coba load .env, kalau gak ada ya di-skip
	_ = godotenv.Load()

	cfg := Config{
		Port:         getEnv("PORT", "8000"),
		DatabaseURL:  getEnv("DATABASE_URL", ""),
		DatabaseName: getEnv("DATABASE_NAME", "indotopup"),
		CORSOrigins:  getEnv("CORS_ORIGINS", "*"),
	}

	// DATABASE_URL boleh kosong: server tetap jalan dalam mode degraded
	// (endpoint read pakai fallback, create order balas 503).
	if cfg.DatabaseURL == "" {
		log.Println("warning: DATABASE_URL kosong, server berjalan tanpa database")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
