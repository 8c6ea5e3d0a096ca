package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// LoadConfig loads and validates configuration from:
// 1. Default values
// 2. The YAML file at path (optional; missing file is not an error)
// 3. BOT_* environment variables
//
// Startup must fail fast when a required secret is absent, so any
// validation failure is returned as an error.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetEnvPrefix("BOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
			}
		}
		// Missing config file is fine, defaults and env vars apply.
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setDefaults registers default values for all optional parameters.
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.json", DefaultLogJSON)

	v.SetDefault("server.port", DefaultServerPort)

	v.SetDefault("line.api_base_url", DefaultLineAPIBaseURL)

	v.SetDefault("gemini.model_name", DefaultGeminiModel)
	v.SetDefault("gemini.temperature", DefaultGeminiTemperature)
	v.SetDefault("gemini.max_retries", DefaultGeminiMaxRetries)
	v.SetDefault("gemini.retry_delay_seconds", DefaultGeminiRetryDelaySeconds)

	v.SetDefault("bot.mention", DefaultBotMention)

	v.SetDefault("database.path", "")

	v.SetDefault("messages.welcome", DefaultMsgWelcome)
	v.SetDefault("messages.joined", DefaultMsgJoined)
	v.SetDefault("messages.member_joined", DefaultMsgMemberJoined)
	v.SetDefault("messages.direct_hint", DefaultMsgDirectHint)
	v.SetDefault("messages.usage_group", DefaultMsgUsageGroup)
	v.SetDefault("messages.usage_direct", DefaultMsgUsageDirect)
	v.SetDefault("messages.specify_language", DefaultMsgSpecifyLanguage)
	v.SetDefault("messages.confirm_group", DefaultMsgConfirmGroup)
	v.SetDefault("messages.confirm_direct", DefaultMsgConfirmDirect)
}
