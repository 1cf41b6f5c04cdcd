package config

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

const (
	defaultDBName = "tennis.db"
	defaultPort   = "8080"
)

// Load reads configuration from environment variables and .env file.
// Nothing is strictly required: without Turso the local database is used,
// without Slack notifications are only logged, and without a GCP project
// events are handled in-process.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, reading from environment variables")
	}

	getEnv := func(key, fallback string) string {
		if value, ok := os.LookupEnv(key); ok && value != "" {
			return value
		}
		return fallback
	}

	cfg := Config{
		DBName: getEnv("DB_NAME", defaultDBName),
		Port:   getEnv("PORT", defaultPort),
		Slack: SlackConfig{
			Token:     getEnv("SLACK_BOT_TOKEN", ""),
			ChannelID: getEnv("SLACK_CHANNEL_ID", ""),
		},
		Turso: TursoConfig{
			PrimaryURL: getEnv("TURSO_PRIMARY_URL", ""),
			AuthToken:  getEnv("TURSO_AUTH_TOKEN", ""),
		},
		ProjectID: getEnv("GCP_PROJECT", ""),
		PushToken: getEnv("PUBSUB_PUSH_TOKEN", ""),
	}

	if cfg.Turso.PrimaryURL != "" && cfg.Turso.AuthToken == "" {
		log.Warn("TURSO_PRIMARY_URL is set without TURSO_AUTH_TOKEN")
	}
	if !cfg.Slack.Enabled() {
		log.Info("Slack is not configured, notifications will only be logged")
	}
	return cfg
}
