package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"DB_NAME", "PORT", "SLACK_BOT_TOKEN", "SLACK_CHANNEL_ID", "TURSO_PRIMARY_URL", "TURSO_AUTH_TOKEN", "GCP_PROJECT", "PUBSUB_PUSH_TOKEN"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "tennis.db", cfg.DBName)
	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.Slack.Enabled())
	assert.Empty(t, cfg.Turso.PrimaryURL)
	assert.Empty(t, cfg.ProjectID)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("DB_NAME", "club.db")
	t.Setenv("PORT", "9090")
	t.Setenv("SLACK_BOT_TOKEN", "xoxb-test")
	t.Setenv("SLACK_CHANNEL_ID", "C123")
	t.Setenv("TURSO_PRIMARY_URL", "libsql://club.turso.io")
	t.Setenv("TURSO_AUTH_TOKEN", "secret")
	t.Setenv("GCP_PROJECT", "tennis-project")
	t.Setenv("PUBSUB_PUSH_TOKEN", "push")

	cfg := Load()

	assert.Equal(t, Config{
		DBName:    "club.db",
		Port:      "9090",
		Slack:     SlackConfig{Token: "xoxb-test", ChannelID: "C123"},
		Turso:     TursoConfig{PrimaryURL: "libsql://club.turso.io", AuthToken: "secret"},
		ProjectID: "tennis-project",
		PushToken: "push",
	}, cfg)
	assert.True(t, cfg.Slack.Enabled())
}
