package relay_test

import (
	"context"
	"testing"

	"babelbot/internal/relay"
)

func TestMemoryStoreGroupPreferences(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := relay.NewMemoryStore()

	if err := store.SetGroupLanguage(ctx, "g1", "u1", "English"); err != nil {
		t.Fatalf("SetGroupLanguage: %v", err)
	}
	if err := store.SetGroupLanguage(ctx, "g1", "u2", "thai"); err != nil {
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
}

func TestMemoryStoreOverwrite(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := relay.NewMemoryStore()

	_ = store.SetGroupLanguage(ctx, "g1", "u1", "english")
	_ = store.SetGroupLanguage(ctx, "g1", "u1", "french")

	prefs, _ := store.GroupLanguages(ctx, "g1")
	if prefs["u1"] != "french" {
		t.Errorf("u1 preference = %q, want latest value %q", prefs["u1"], "french")
	}
}

func TestMemoryStoreUnknownConversation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := relay.NewMemoryStore()

	prefs, err := store.GroupLanguages(ctx, "missing")
	if err != nil {
		t.Fatalf("GroupLanguages: %v", err)
	}
	if len(prefs) != 0 {
		t.Errorf("unknown conversation yields %d preferences, want 0", len(prefs))
	}
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := relay.NewMemoryStore()

	_ = store.SetGroupLanguage(ctx, "g1", "u1", "english")

	prefs, _ := store.GroupLanguages(ctx, "g1")
	prefs["u1"] = "mutated"

	again, _ := store.GroupLanguages(ctx, "g1")
	if again["u1"] != "english" {
		t.Error("mutating the returned map leaked into the store")
	}
}

func TestMemoryStoreUserPreference(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := relay.NewMemoryStore()

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
	lang, _ = store.UserLanguage(ctx, "u5")
	if lang != "ja" {
		t.Errorf("user preference = %q, want %q", lang, "ja")
	}
}

func TestMemoryStoreEnsureGroup(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := relay.NewMemoryStore()

	if err := store.EnsureGroup(ctx, "g1"); err != nil {
		t.Fatalf("EnsureGroup: %v", err)
	}
	// Idempotent, and must not clobber existing preferences.
	_ = store.SetGroupLanguage(ctx, "g1", "u1", "thai")
	if err := store.EnsureGroup(ctx, "g1"); err != nil {
		t.Fatalf("EnsureGroup: %v", err)
	}

	prefs, _ := store.GroupLanguages(ctx, "g1")
	if prefs["u1"] != "thai" {
		t.Error("EnsureGroup clobbered an existing preference")
	}
}

func TestMemoryStoreMaintainIsNoop(t *testing.T) {
	t.Parallel()

	if err := relay.NewMemoryStore().Maintain(context.Background()); err != nil {
		t.Fatalf("Maintain: %v", err)
	}
}
