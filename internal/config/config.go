package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort       string
	AppEnv        string
	DataDir       string
	JWTSecret     string
	AdminUsername string
	AdminPassword string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		AppPort:       getenv("APP_PORT", "3000"),
		AppEnv:        getenv("APP_ENV", "development"),
		DataDir:       getenv("DATA_DIR", "data"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		AdminUsername: getenv("ADMIN_USERNAME", "admin"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET not set in environment")
	}
	if cfg.AdminPassword == "" {
		log.Fatal("ADMIN_PASSWORD not set in environment")
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
