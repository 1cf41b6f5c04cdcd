package config

// Config holds all configuration for the application.
type Config struct {
	DBName    string
	Port      string
	Slack     SlackConfig
	Turso     TursoConfig
	ProjectID string
	// PushToken, when set, must be presented by Pub/Sub push requests.
	PushToken string
}

type SlackConfig struct {
	Token     string
	ChannelID string
}

// Enabled reports whether notifications can actually be posted.
func (c SlackConfig) Enabled() bool {
	return c.Token != "" && c.ChannelID != ""
}

type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}
