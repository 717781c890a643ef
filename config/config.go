package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	DatabasePath string
}

func NewConfig() *Config {
	// .env é opcional; em produção as variáveis vêm do ambiente.
	_ = godotenv.Load()

	return &Config{
		Port:         getEnv("AGENDA_PORT", "8081"),
		DatabasePath: getEnv("AGENDA_DB_PATH", "agenda.db"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
