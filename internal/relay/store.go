// Package relay implements the preference-aware translation fan-out engine:
// per-conversation language preferences, target resolution, concurrent
// translation dispatch, reply composition, and the webhook event router.
package relay

import (
	"context"
	"strings"
	"sync"
)

// PreferenceStore holds per-conversation and per-user language preferences.
// Implementations must be safe for concurrent use. Language tags are opaque
// lowercase strings; implementations store them lower-cased and trimmed.
type PreferenceStore interface {
	// SetGroupLanguage records a member's preferred language within a
	// conversation, creating the conversation entry if absent. Repeated
	// identical calls are idempotent.
	SetGroupLanguage(ctx context.Context, conversationID, userID, lang string) error

	// SetUserLanguage records a user's preferred language for one-to-one chats.
	SetUserLanguage(ctx context.Context, userID, lang string) error

	// GroupLanguages returns the member-to-language mapping for a
	// conversation. Unknown conversations yield an empty map, not an error.
	GroupLanguages(ctx context.Context, conversationID string) (map[string]string, error)

	// UserLanguage returns a user's one-to-one preference, or "" when unset.
	UserLanguage(ctx context.Context, userID string) (string, error)

	// EnsureGroup idempotently creates an empty conversation entry so that
	// later lookups are well-defined. Called when the bot joins a group.
	EnsureGroup(ctx context.Context, conversationID string) error

	// Maintain runs backend housekeeping. A no-op for in-memory storage.
	Maintain(ctx context.Context) error
}

// MemoryStore is the default PreferenceStore. State lives for the process
// lifetime only; a restart clears all preferences.
type MemoryStore struct {
	mu     sync.RWMutex
	groups map[string]map[string]string
	users  map[string]string
}

// NewMemoryStore creates an empty in-memory preference store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		groups: make(map[string]map[string]string),
		users:  make(map[string]string),
	}
}

// NormalizeTag folds a language tag to its canonical stored form.
// Two tags are equal iff their normalized forms are equal.
func NormalizeTag(lang string) string {
	return strings.ToLower(strings.TrimSpace(lang))
}

// SetGroupLanguage records a member's preference within a conversation.
func (s *MemoryStore) SetGroupLanguage(_ context.Context, conversationID, userID, lang string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	members, ok := s.groups[conversationID]
	if !ok {
		members = make(map[string]string)
		s.groups[conversationID] = members
	}
	members[userID] = NormalizeTag(lang)
	return nil
}

// SetUserLanguage records a user's one-to-one preference.
func (s *MemoryStore) SetUserLanguage(_ context.Context, userID, lang string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users[userID] = NormalizeTag(lang)
	return nil
}

// GroupLanguages returns a copy of the conversation's preference mapping.
func (s *MemoryStore) GroupLanguages(_ context.Context, conversationID string) (map[string]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	members := s.groups[conversationID]
	out := make(map[string]string, len(members))
	for id, lang := range members {
		out[id] = lang
	}
	return out, nil
}

// UserLanguage returns a user's one-to-one preference, or "" when unset.
func (s *MemoryStore) UserLanguage(_ context.Context, userID string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.users[userID], nil
}

// EnsureGroup creates an empty conversation entry if one does not exist.
func (s *MemoryStore) EnsureGroup(_ context.Context, conversationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.groups[conversationID]; !ok {
		s.groups[conversationID] = make(map[string]string)
	}
	return nil
}

// Maintain is a no-op for the in-memory store.
func (s *MemoryStore) Maintain(_ context.Context) error {
	return nil
}
