package database

import "time"

// GroupPreference is one member's declared language within a conversation.
type GroupPreference struct {
	ConversationID string    `db:"conversation_id"`
	UserID         string    `db:"user_id"`
	Language       string    `db:"language"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

// UserPreference is a user's declared language for one-to-one conversations.
type UserPreference struct {
	UserID    string    `db:"user_id"`
	Language  string    `db:"language"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
