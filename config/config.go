package config

import (
	"os"
	"strconv"
)

// Config holds application settings loaded from environment variables.
type Config struct {
	DatabaseURL   string
	Port          string
	SMTPHost      string
	SMTPPort      int
	EmailUser     string
	EmailPass     string
	AlertReceiver string
}

// Load builds Config from the environment with defaults. ALERT_RECEIVER
// falls back to the sending address so alerts always have a recipient.
func Load() *Config {
	cfg := &Config{
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		Port:          getEnv("PORT", "5000"),
		SMTPHost:      getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:      getEnvInt("SMTP_PORT", 587),
		EmailUser:     os.Getenv("EMAIL_USER"),
		EmailPass:     os.Getenv("EMAIL_PASS"),
		AlertReceiver: os.Getenv("ALERT_RECEIVER"),
	}
	if cfg.AlertReceiver == "" {
		cfg.AlertReceiver = cfg.EmailUser
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
