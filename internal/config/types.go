// Package config manages application configuration from environment variables,
// config files, and default values.
package config

// Config defines the application configuration. Values can be set via
// environment variables prefixed with BOT_ (e.g., BOT_LINE_CHANNEL_TOKEN)
// or through config.yaml.
type Config struct {
	Logger    LoggerConfig    `mapstructure:"log"`
	Server    ServerConfig    `mapstructure:"server"`
	Line      LineConfig      `mapstructure:"line"`
	Gemini    GeminiConfig    `mapstructure:"gemini"`
	Bot       BotConfig       `mapstructure:"bot"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	Messages  MessagesConfig  `mapstructure:"messages"`
}

// LoggerConfig controls log level and output format.
type LoggerConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	JSON  bool   `mapstructure:"json"`
}

// ServerConfig holds settings for the webhook HTTP server.
type ServerConfig struct {
	Port int `mapstructure:"port" validate:"required,min=1,max=65535"`
}

// LineConfig holds credentials for the messaging platform.
// ChannelToken authorizes outbound API calls; ChannelSecret verifies
// inbound webhook signatures.
type LineConfig struct {
	ChannelToken  string `mapstructure:"channel_token"  validate:"required"`
	ChannelSecret string `mapstructure:"channel_secret" validate:"required"`
	APIBaseURL    string `mapstructure:"api_base_url"   validate:"required,url"`
}

// GeminiConfig holds settings for the Gemini translation client.
type GeminiConfig struct {
	APIKey            string  `mapstructure:"api_key"             validate:"required"`
	ModelName         string  `mapstructure:"model_name"          validate:"required"`
	Temperature       float32 `mapstructure:"temperature"         validate:"min=0,max=2"`
	MaxRetries        int     `mapstructure:"max_retries"         validate:"min=0,max=10"`
	RetryDelaySeconds int     `mapstructure:"retry_delay_seconds" validate:"min=0,max=60"`
}

// BotConfig holds bot behavior settings.
type BotConfig struct {
	// Mention is the token members use to address the bot in group chats,
	// e.g. "@TranslatorBot language french".
	Mention string `mapstructure:"mention" validate:"required"`
}

// DatabaseConfig selects the preference storage backend. An empty Path keeps
// preferences in memory for the lifetime of the process; a non-empty Path
// stores them in a SQLite database at that location.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// SchedulerConfig maps task names to their schedules.
type SchedulerConfig struct {
	Tasks map[string]TaskConfig `mapstructure:"tasks"`
}

// TaskConfig enables a named scheduled task with a cron expression.
type TaskConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Schedule string `mapstructure:"schedule"`
}

// MessagesConfig holds user-visible message templates. Templates containing
// %s are filled with the bot mention token or the language tag.
type MessagesConfig struct {
	Welcome         string `mapstructure:"welcome"          validate:"required"`
	Joined          string `mapstructure:"joined"           validate:"required"`
	MemberJoined    string `mapstructure:"member_joined"    validate:"required"`
	DirectHint      string `mapstructure:"direct_hint"      validate:"required"`
	UsageGroup      string `mapstructure:"usage_group"      validate:"required"`
	UsageDirect     string `mapstructure:"usage_direct"     validate:"required"`
	SpecifyLanguage string `mapstructure:"specify_language" validate:"required"`
	ConfirmGroup    string `mapstructure:"confirm_group"    validate:"required"`
	ConfirmDirect   string `mapstructure:"confirm_direct"   validate:"required"`
}
