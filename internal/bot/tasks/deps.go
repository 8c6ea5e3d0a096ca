// Package tasks implements scheduled background tasks for the bot.
package tasks

import (
	"log/slog"

	"babelbot/internal/config"
	"babelbot/internal/relay"
)

// TaskDeps contains the dependencies available to scheduled tasks.
type TaskDeps struct {
	Logger *slog.Logger
	Store  relay.PreferenceStore
	Config *config.Config
}
