package relay

import "strings"

// CommandAction classifies the outcome of parsing a potential
// "set language" command.
type CommandAction int

const (
	// CommandNone means the text is not addressed to the bot as a command
	// and should flow into the translation pipeline.
	CommandNone CommandAction = iota
	// CommandSet means a valid command carrying a language tag.
	CommandSet
	// CommandUsage means the text addressed the bot but did not match the
	// expected command format; reply with usage guidance.
	CommandUsage
	// CommandSpecify means the command was recognized but carried an empty
	// language tag; reply asking for a language.
	CommandSpecify
)

// Command is the parsed form of a potential preference command.
type Command struct {
	Action CommandAction
	Lang   string
}

const commandKeyword = "language"

// ParseGroupCommand parses group-scoped command text. The grammar is the
// mention token followed by the literal word "language" followed by the
// language tag, all matched case-insensitively:
//
//	@TranslatorBot language French
//
// Text not starting with the mention token is not a command. Text starting
// with the mention but missing the "language" keyword yields CommandUsage.
func ParseGroupCommand(text, mention string) Command {
	fields := strings.Fields(text)
	if len(fields) == 0 || !strings.EqualFold(fields[0], mention) {
		return Command{Action: CommandNone}
	}
	if len(fields) < 2 || !strings.EqualFold(fields[1], commandKeyword) {
		return Command{Action: CommandUsage}
	}
	return commandWithTag(fields[2:])
}

// ParseDirectCommand parses one-to-one command text, which drops the mention:
//
//	language ja
func ParseDirectCommand(text string) Command {
	fields := strings.Fields(text)
	if len(fields) == 0 || !strings.EqualFold(fields[0], commandKeyword) {
		return Command{Action: CommandNone}
	}
	return commandWithTag(fields[1:])
}

// commandWithTag joins the remaining tokens back with single spaces and
// case-folds them into the language tag.
func commandWithTag(tokens []string) Command {
	tag := NormalizeTag(strings.Join(tokens, " "))
	if tag == "" {
		return Command{Action: CommandSpecify}
	}
	return Command{Action: CommandSet, Lang: tag}
}
