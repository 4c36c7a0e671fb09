package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string

	// Database
	DatabaseURL string // full DSN override; built from the parts below when empty
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string

	// RabbitMQ (optional; empty disables event publishing)
	RabbitURL string

	// SMTP (optional; missing credentials disable outbound mail)
	EmailHost string
	EmailPort int
	EmailUser string
	EmailPass string
	EmailFrom string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment defaults")
	}

	cfg := &Config{
		ServerPort:  getEnv("PORT", "5000"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  getEnv("DB_PASSWORD", "postgres"),
		DBName:      getEnv("DB_NAME", "showroom"),
		RabbitURL:   os.Getenv("RABBITMQ_URL"),
		EmailHost:   getEnv("EMAIL_HOST", "smtp.gmail.com"),
		EmailPort:   getEnvInt("EMAIL_PORT", 587),
		EmailUser:   os.Getenv("EMAIL_USER"),
		EmailPass:   os.Getenv("EMAIL_PASS"),
	}
	cfg.EmailFrom = getEnv("EMAIL_FROM", "Vehicle Showroom <"+cfg.EmailUser+">")

	if cfg.DatabaseURL == "" {
		log.Println("DATABASE_URL not set, falling back to local postgres")
	}

	return cfg
}

func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName,
	)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var n int
	if _, err := fmt.Sscanf(v, "%d", &n); err != nil {
		return fallback
	}
	return n
}
