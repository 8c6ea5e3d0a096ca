package database

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"

	"babelbot/internal/relay"
)

// sqlxStore implements relay.PreferenceStore on a SQLite database.
type sqlxStore struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewStore creates a relay.PreferenceStore backed by sqlx. It requires a
// connected sqlx.DB instance and a logger.
func NewStore(db *sqlx.DB, logger *slog.Logger) relay.PreferenceStore {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &sqlxStore{
		db:     db,
		logger: logger.With("component", "store"),
	}
}

// SetGroupLanguage upserts a member's preference within a conversation.
func (s *sqlxStore) SetGroupLanguage(ctx context.Context, conversationID, userID, lang string) error {
	if conversationID == "" || userID == "" {
		return fmt.Errorf("conversation and user IDs must be non-empty")
	}
	if err := s.ensureConversation(ctx, conversationID); err != nil {
		return err
	}

	now := time.Now().UTC()
	query := `
        INSERT INTO group_preferences (conversation_id, user_id, language, created_at, updated_at)
        VALUES (?, ?, ?, ?, ?)
        ON CONFLICT (conversation_id, user_id)
        DO UPDATE SET language = excluded.language, updated_at = excluded.updated_at;
    `
	if _, err := s.db.ExecContext(ctx, query, conversationID, userID, relay.NormalizeTag(lang), now, now); err != nil {
		s.logger.ErrorContext(ctx, "Error saving group preference",
			"conversation_id", conversationID, "user_id", userID, "error", err)
		return fmt.Errorf("failed to save group preference: %w", err)
	}
	return nil
}

// SetUserLanguage upserts a user's one-to-one preference.
func (s *sqlxStore) SetUserLanguage(ctx context.Context, userID, lang string) error {
	if userID == "" {
		return fmt.Errorf("user ID must be non-empty")
	}

	now := time.Now().UTC()
	query := `
        INSERT INTO user_preferences (user_id, language, created_at, updated_at)
        VALUES (?, ?, ?, ?)
        ON CONFLICT (user_id)
        DO UPDATE SET language = excluded.language, updated_at = excluded.updated_at;
    `
	if _, err := s.db.ExecContext(ctx, query, userID, relay.NormalizeTag(lang), now, now); err != nil {
		s.logger.ErrorContext(ctx, "Error saving user preference", "user_id", userID, "error", err)
		return fmt.Errorf("failed to save user preference: %w", err)
	}
	return nil
}

// GroupLanguages returns the member-to-language mapping for a conversation.
// Unknown conversations yield an empty map.
func (s *sqlxStore) GroupLanguages(ctx context.Context, conversationID string) (map[string]string, error) {
	var rows []GroupPreference
	query := `SELECT conversation_id, user_id, language, created_at, updated_at
              FROM group_preferences WHERE conversation_id = ?;`
	if err := s.db.SelectContext(ctx, &rows, query, conversationID); err != nil {
		s.logger.ErrorContext(ctx, "Error loading group preferences",
			"conversation_id", conversationID, "error", err)
		return nil, fmt.Errorf("failed to load group preferences: %w", err)
	}

	prefs := make(map[string]string, len(rows))
	for _, row := range rows {
		prefs[row.UserID] = row.Language
	}
	return prefs, nil
}

// UserLanguage returns a user's one-to-one preference, or "" when unset.
func (s *sqlxStore) UserLanguage(ctx context.Context, userID string) (string, error) {
	var langs []string
	query := `SELECT language FROM user_preferences WHERE user_id = ?;`
	if err := s.db.SelectContext(ctx, &langs, query, userID); err != nil {
		s.logger.ErrorContext(ctx, "Error loading user preference", "user_id", userID, "error", err)
		return "", fmt.Errorf("failed to load user preference: %w", err)
	}
	if len(langs) == 0 {
		return "", nil
	}
	return langs[0], nil
}

// EnsureGroup idempotently creates the conversation entry.
func (s *sqlxStore) EnsureGroup(ctx context.Context, conversationID string) error {
	if conversationID == "" {
		return fmt.Errorf("conversation ID must be non-empty")
	}
	return s.ensureConversation(ctx, conversationID)
}

func (s *sqlxStore) ensureConversation(ctx context.Context, conversationID string) error {
	query := `INSERT OR IGNORE INTO conversations (conversation_id, created_at) VALUES (?, ?);`
	if _, err := s.db.ExecContext(ctx, query, conversationID, time.Now().UTC()); err != nil {
		s.logger.ErrorContext(ctx, "Error initializing conversation",
			"conversation_id", conversationID, "error", err)
		return fmt.Errorf("failed to initialize conversation: %w", err)
	}
	return nil
}

// Maintain performs database maintenance tasks like VACUUM.
func (s *sqlxStore) Maintain(ctx context.Context) error {
	s.logger.InfoContext(ctx, "Running SQL maintenance (VACUUM, ANALYZE)...")

	if _, err := s.db.ExecContext(ctx, "VACUUM;"); err != nil {
		return fmt.Errorf("failed to VACUUM database: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, "ANALYZE;"); err != nil {
		return fmt.Errorf("failed to ANALYZE database: %w", err)
	}

	s.logger.InfoContext(ctx, "SQL maintenance completed successfully")
	return nil
}
