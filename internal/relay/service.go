package relay

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"babelbot/internal/config"
	"babelbot/internal/gemini"
	"babelbot/internal/line"
)

// fallbackSenderName attributes the original message when the profile
// lookup fails.
const fallbackSenderName = "Someone"

// Messenger delivers text to the platform. Both modes fail soft: errors are
// logged by the caller and never surfaced to users.
type Messenger interface {
	ReplyMessage(ctx context.Context, replyToken, text string) error
	PushMessage(ctx context.Context, to, text string) error
}

// ProfileFetcher resolves member display names.
type ProfileFetcher interface {
	GetProfile(ctx context.Context, userID string) (*line.Profile, error)
	GetGroupMemberProfile(ctx context.Context, groupID, userID string) (*line.Profile, error)
}

// Deps provides dependencies for the event router.
type Deps struct {
	Logger     *slog.Logger
	Config     *config.Config
	Store      PreferenceStore
	Translator gemini.Translator
	Messenger  Messenger
	Profiles   ProfileFetcher
}

// Service routes inbound webhook events into preference updates or the
// translation pipeline.
type Service struct {
	deps Deps
	log  *slog.Logger
}

// NewService creates the event router with its dependencies.
func NewService(deps Deps) *Service {
	return &Service{
		deps: deps,
		log:  deps.Logger.With("component", "relay_service"),
	}
}

// HandleEvents processes one webhook batch. Every event is handled as an
// independent task and the call returns only once all tasks have settled.
// Per-event failures are recovered locally and never fail the batch; a
// non-nil return means the join itself failed and the caller should report
// the whole batch as failed so the platform can redeliver it.
func (s *Service) HandleEvents(ctx context.Context, events []line.Event) error {
	g, gCtx := errgroup.WithContext(ctx)
	for _, ev := range events {
		g.Go(func() error {
			s.handleEvent(gCtx, ev)
			return nil
		})
	}
	return g.Wait()
}

func (s *Service) handleEvent(ctx context.Context, ev line.Event) {
	switch ev.Type {
	case line.EventTypeMessage:
		s.handleMessage(ctx, ev)
	case line.EventTypeJoin:
		s.handleJoin(ctx, ev)
	case line.EventTypeFollow:
		s.reply(ctx, ev.ReplyToken, s.deps.Config.Messages.Welcome)
	case line.EventTypeMemberJoined:
		s.reply(ctx, ev.ReplyToken, fmt.Sprintf(s.deps.Config.Messages.MemberJoined, s.deps.Config.Bot.Mention))
	default:
		s.log.DebugContext(ctx, "Ignoring unsupported event", "event_type", ev.Type)
	}
}

func (s *Service) handleMessage(ctx context.Context, ev line.Event) {
	if ev.Message == nil || ev.Message.Type != line.MessageTypeText {
		s.log.DebugContext(ctx, "Ignoring non-text message event")
		return
	}
	text := ev.Message.Text
	if strings.TrimSpace(text) == "" {
		return
	}

	if ev.Source.IsShared() {
		s.handleGroupMessage(ctx, ev, text)
	} else {
		s.handleDirectMessage(ctx, ev, text)
	}
}

func (s *Service) handleGroupMessage(ctx context.Context, ev line.Event, text string) {
	msgs := s.deps.Config.Messages
	mention := s.deps.Config.Bot.Mention
	conversationID := ev.Source.ConversationID()
	senderID := ev.Source.UserID

	cmd := ParseGroupCommand(text, mention)
	switch cmd.Action {
	case CommandSet:
		if err := s.deps.Store.SetGroupLanguage(ctx, conversationID, senderID, cmd.Lang); err != nil {
			s.log.ErrorContext(ctx, "Failed to save group preference",
				"conversation_id", conversationID, "user_id", senderID, "error", err)
			return
		}
		s.log.InfoContext(ctx, "Group preference set",
			"conversation_id", conversationID, "user_id", senderID, "lang", cmd.Lang)
		s.reply(ctx, ev.ReplyToken, fmt.Sprintf(msgs.ConfirmGroup, cmd.Lang))
	case CommandUsage:
		s.reply(ctx, ev.ReplyToken, fmt.Sprintf(msgs.UsageGroup, mention))
	case CommandSpecify:
		s.reply(ctx, ev.ReplyToken, msgs.SpecifyLanguage)
	default:
		s.relayGroupMessage(ctx, ev, text)
	}
}

func (s *Service) relayGroupMessage(ctx context.Context, ev line.Event, text string) {
	conversationID := ev.Source.ConversationID()
	senderID := ev.Source.UserID

	prefs, err := s.deps.Store.GroupLanguages(ctx, conversationID)
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to load group preferences",
			"conversation_id", conversationID, "error", err)
		return
	}

	targets := ResolveTargets(prefs, senderID)
	if len(targets) == 0 {
		s.log.DebugContext(ctx, "No translation targets for message",
			"conversation_id", conversationID, "sender_id", senderID)
		return
	}

	senderName := s.groupSenderName(ctx, conversationID, senderID)
	outcomes := TranslateAll(ctx, s.deps.Translator, text, targets)

	replyText, ok := ComposeReply(senderName, text, outcomes)
	if !ok {
		s.log.WarnContext(ctx, "All translations failed, nothing to send",
			"conversation_id", conversationID, "targets", targets)
		return
	}
	s.reply(ctx, ev.ReplyToken, replyText)
}

func (s *Service) handleDirectMessage(ctx context.Context, ev line.Event, text string) {
	msgs := s.deps.Config.Messages
	userID := ev.Source.UserID

	cmd := ParseDirectCommand(text)
	switch cmd.Action {
	case CommandSet:
		if err := s.deps.Store.SetUserLanguage(ctx, userID, cmd.Lang); err != nil {
			s.log.ErrorContext(ctx, "Failed to save user preference", "user_id", userID, "error", err)
			return
		}
		s.log.InfoContext(ctx, "User preference set", "user_id", userID, "lang", cmd.Lang)
		s.reply(ctx, ev.ReplyToken, fmt.Sprintf(msgs.ConfirmDirect, cmd.Lang))
	case CommandUsage:
		s.reply(ctx, ev.ReplyToken, msgs.UsageDirect)
	case CommandSpecify:
		s.reply(ctx, ev.ReplyToken, msgs.SpecifyLanguage)
	default:
		s.relayDirectMessage(ctx, ev, text)
	}
}

func (s *Service) relayDirectMessage(ctx context.Context, ev line.Event, text string) {
	userID := ev.Source.UserID

	lang, err := s.deps.Store.UserLanguage(ctx, userID)
	if err != nil {
		s.log.ErrorContext(ctx, "Failed to load user preference", "user_id", userID, "error", err)
		return
	}
	if lang == "" {
		s.reply(ctx, ev.ReplyToken, s.deps.Config.Messages.DirectHint)
		return
	}

	senderName := s.directSenderName(ctx, userID)
	outcomes := TranslateAll(ctx, s.deps.Translator, text, []string{lang})

	replyText, ok := ComposeReply(senderName, text, outcomes)
	if !ok {
		s.log.WarnContext(ctx, "Translation failed, nothing to send", "user_id", userID, "lang", lang)
		return
	}
	s.reply(ctx, ev.ReplyToken, replyText)
}

func (s *Service) handleJoin(ctx context.Context, ev line.Event) {
	conversationID := ev.Source.ConversationID()
	if err := s.deps.Store.EnsureGroup(ctx, conversationID); err != nil {
		s.log.ErrorContext(ctx, "Failed to initialize conversation",
			"conversation_id", conversationID, "error", err)
	}
	s.log.InfoContext(ctx, "Joined conversation", "conversation_id", conversationID)
	s.reply(ctx, ev.ReplyToken, fmt.Sprintf(s.deps.Config.Messages.Joined, s.deps.Config.Bot.Mention))
}

// groupSenderName fetches a member's display name, falling back to a generic
// name on any error.
func (s *Service) groupSenderName(ctx context.Context, groupID, userID string) string {
	profile, err := s.deps.Profiles.GetGroupMemberProfile(ctx, groupID, userID)
	if err != nil || profile.DisplayName == "" {
		s.log.DebugContext(ctx, "Falling back to generic sender name",
			"group_id", groupID, "user_id", userID, "error", err)
		return fallbackSenderName
	}
	return profile.DisplayName
}

func (s *Service) directSenderName(ctx context.Context, userID string) string {
	profile, err := s.deps.Profiles.GetProfile(ctx, userID)
	if err != nil || profile.DisplayName == "" {
		s.log.DebugContext(ctx, "Falling back to generic sender name", "user_id", userID, "error", err)
		return fallbackSenderName
	}
	return profile.DisplayName
}

// reply delivers text bound to a reply token. Delivery failures are logged
// and otherwise swallowed; they never fail the batch.
func (s *Service) reply(ctx context.Context, replyToken, text string) {
	if replyToken == "" {
		return
	}
	if err := s.deps.Messenger.ReplyMessage(ctx, replyToken, text); err != nil {
		s.log.ErrorContext(ctx, "Failed to deliver reply", "error", err)
	}
}
