package config

import (
	"os"
)

type Config struct {
	ServerPort    string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	MigrationsDir string
	TemplatesDir  string
}

func Load() *Config {
	return &Config{
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnv("DB_USER", "chitter"),
		DBPassword:    getEnv("DB_PASSWORD", "chitter_dev_password"),
		DBName:        getEnv("DB_NAME", "chitter"),
		MigrationsDir: getEnv("MIGRATIONS_DIR", "migrations"),
		TemplatesDir:  getEnv("TEMPLATES_DIR", "web/templates"),
	}
}

func getEnv(key, fallback string) string {
	val, exists := os.LookupEnv(key)

	if exists {
		return val
	}

	return fallback
}
