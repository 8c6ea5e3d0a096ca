package config

// Default values for optional configuration parameters.
const (
	// Log defaults
	DefaultLogLevel = "info"
	DefaultLogJSON  = false

	// Server defaults
	DefaultServerPort = 8080

	// Platform API defaults
	DefaultLineAPIBaseURL = "https://api.line.me"

	// Gemini defaults
	DefaultGeminiModel             = "gemini-2.0-flash"
	DefaultGeminiTemperature       = 0.2
	DefaultGeminiMaxRetries        = 2
	DefaultGeminiRetryDelaySeconds = 2

	// Bot defaults
	DefaultBotMention = "@TranslatorBot"
)

// Default user-visible message templates.
const (
	DefaultMsgWelcome         = "Thanks for adding me! Send \"language <your language>\" and I will translate your messages into it."
	DefaultMsgJoined          = "Hello! I translate group messages. Each member can send \"%s language <your language>\" to set their preferred language."
	DefaultMsgMemberJoined    = "Welcome! Send \"%s language <your language>\" to receive translations."
	DefaultMsgDirectHint      = "Set your language first by sending \"language <your language>\"."
	DefaultMsgUsageGroup      = "Usage: %s language <your language>"
	DefaultMsgUsageDirect     = "Usage: language <your language>"
	DefaultMsgSpecifyLanguage = "Please specify a language."
	DefaultMsgConfirmGroup    = "OK! Your preferred language is set to %s for this group."
	DefaultMsgConfirmDirect   = "OK! Your preferred language is set to %s."
)

// DefaultMessages returns the default message template set.
func DefaultMessages() MessagesConfig {
	return MessagesConfig{
		Welcome:         DefaultMsgWelcome,
		Joined:          DefaultMsgJoined,
		MemberJoined:    DefaultMsgMemberJoined,
		DirectHint:      DefaultMsgDirectHint,
		UsageGroup:      DefaultMsgUsageGroup,
		UsageDirect:     DefaultMsgUsageDirect,
		SpecifyLanguage: DefaultMsgSpecifyLanguage,
		ConfirmGroup:    DefaultMsgConfirmGroup,
		ConfirmDirect:   DefaultMsgConfirmDirect,
	}
}
