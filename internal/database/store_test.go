package database_test

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"babelbot/internal/database"
	"babelbot/internal/relay"
)

func newTestStore(t *testing.T) relay.PreferenceStore {
	t.Helper()

	db, err := database.NewDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewDB: %v", err)
	}
	t.Cleanup(func() { database.CloseDB(db) })

	return database.NewStore(db, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestStoreGroupPreferences(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newTestStore(t)

	if err := store.SetGroupLanguage(ctx, "g1", "u1", "English"); err != nil {
		t.Fatalf("SetGroupLanguage: %v", err)
	}
	if err := store.SetGroupLanguage(ctx, "g1", "u2", "thai"); err != nil {
		t.Fatalf("SetGroupLanguage: %v", err)
	}
	if err := store.SetGroupLanguage(ctx, "g2", "u1", "french"); err != nil {
		t.Fatalf("SetGroupLanguage: %v", err)
	}

	prefs, err := store.GroupLanguages(ctx, "g1")
	if err != nil {
		t.Fatalf("GroupLanguages: %v", err)
	}
	if len(prefs) != 2 {
		t.Fatalf("got %d preferences, want 2", len(prefs))
	}
	if prefs["u1"] != "english" {
		t.Errorf("u1 preference = %q, want lower-cased %q", prefs["u1"], "english")
	}
	if prefs["u2"] != "thai" {
		t.Errorf("u2 preference = %q, want %q", prefs["u2"], "thai")
	}

	// Preferences are scoped per conversation.
	other, _ := store.GroupLanguages(ctx, "g2")
	if other["u1"] != "french" {
		t.Errorf("g2 u1 preference = %q, want %q", other["u1"], "french")
	}
}

func TestStoreGroupPreferenceOverwrite(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newTestStore(t)

	if err := store.SetGroupLanguage(ctx, "g1", "u1", "english"); err != nil {
		t.Fatalf("SetGroupLanguage: %v", err)
	}
	if err := store.SetGroupLanguage(ctx, "g1", "u1", "french"); err != nil {
		t.Fatalf("SetGroupLanguage (overwrite): %v", err)
	}

	prefs, _ := store.GroupLanguages(ctx, "g1")
	if prefs["u1"] != "french" {
		t.Errorf("u1 preference = %q, want latest value %q", prefs["u1"], "french")
	}
}

func TestStoreUnknownConversation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newTestStore(t)

	prefs, err := store.GroupLanguages(ctx, "missing")
	if err != nil {
		t.Fatalf("GroupLanguages: %v", err)
	}
	if len(prefs) != 0 {
		t.Errorf("unknown conversation yields %d preferences, want 0", len(prefs))
	}
}

func TestStoreUserPreference(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newTestStore(t)

	lang, err := store.UserLanguage(ctx, "u5")
	if err != nil {
		t.Fatalf("UserLanguage: %v", err)
	}
	if lang != "" {
		t.Errorf("unset user preference = %q, want empty", lang)
	}

	if err := store.SetUserLanguage(ctx, "u5", "JA"); err != nil {
		t.Fatalf("SetUserLanguage: %v", err)
	}
	if err := store.SetUserLanguage(ctx, "u5", "German"); err != nil {
		t.Fatalf("SetUserLanguage (overwrite): %v", err)
	}

	lang, _ = store.UserLanguage(ctx, "u5")
	if lang != "german" {
		t.Errorf("user preference = %q, want %q", lang, "german")
	}
}

func TestStoreEnsureGroup(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newTestStore(t)

	if err := store.EnsureGroup(ctx, "g1"); err != nil {
		t.Fatalf("EnsureGroup: %v", err)
	}
	_ = store.SetGroupLanguage(ctx, "g1", "u1", "thai")
	if err := store.EnsureGroup(ctx, "g1"); err != nil {
		t.Fatalf("EnsureGroup (repeat): %v", err)
	}

	prefs, _ := store.GroupLanguages(ctx, "g1")
	if prefs["u1"] != "thai" {
		t.Error("EnsureGroup clobbered an existing preference")
	}
}

func TestStoreRejectsEmptyIDs(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newTestStore(t)

	if err := store.SetGroupLanguage(ctx, "", "u1", "thai"); err == nil {
		t.Error("empty conversation ID accepted")
	}
	if err := store.SetGroupLanguage(ctx, "g1", "", "thai"); err == nil {
		t.Error("empty user ID accepted")
	}
	if err := store.SetUserLanguage(ctx, "", "thai"); err == nil {
		t.Error("empty user ID accepted")
	}
	if err := store.EnsureGroup(ctx, ""); err == nil {
		t.Error("empty conversation ID accepted")
	}
}

func TestStoreMaintain(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newTestStore(t)

	_ = store.SetGroupLanguage(ctx, "g1", "u1", "thai")
	if err := store.Maintain(ctx); err != nil {
		t.Fatalf("Maintain: %v", err)
	}

	prefs, _ := store.GroupLanguages(ctx, "g1")
	if prefs["u1"] != "thai" {
		t.Error("maintenance lost stored preferences")
	}
}
