package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/emberlight/chronicle/internal/chronicle/domain"
	"github.com/emberlight/chronicle/internal/chronicle/storage"
	_ "modernc.org/sqlite"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chronicle.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close: %v", err)
		}
	})
	return store
}

func assertTableExists(t *testing.T, db *sql.DB, name string) {
	t.Helper()
	var found int
	err := db.QueryRow("SELECT 1 FROM sqlite_master WHERE type = 'table' AND name = ?", name).Scan(&found)
	if err != nil {
		t.Fatalf("expected table %q to exist: %v", name, err)
	}
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open("  "); err == nil {
		t.Fatal("expected error")
	}
}

func TestOpenRunsMigrations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chronicle.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})

	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer func() {
		_ = sqlDB.Close()
	}()

	assertTableExists(t, sqlDB, "campaigns")
	assertTableExists(t, sqlDB, "characters")
	assertTableExists(t, sqlDB, "aliases")
	assertTableExists(t, sqlDB, "sessions")
}

func TestCampaignRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	created := time.Date(2025, 6, 2, 19, 0, 0, 0, time.UTC)
	campaign := domain.Campaign{ID: "c1", Title: "Shards of Emberlight", CreatedAt: created}
	if err := store.PutCampaign(ctx, campaign); err != nil {
		t.Fatalf("put campaign: %v", err)
	}

	loaded, err := store.GetCampaign(ctx, "c1")
	if err != nil {
		t.Fatalf("get campaign: %v", err)
	}
	if loaded != campaign {
		t.Fatalf("expected %+v, got %+v", campaign, loaded)
	}
}

func TestGetCampaignNotFound(t *testing.T) {
	store := openTestStore(t)

	_, err := store.GetCampaign(context.Background(), "missing")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCharactersAndAliasesScopedByCampaign(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	created := time.Date(2025, 6, 2, 19, 0, 0, 0, time.UTC)
	for _, campaign := range []domain.Campaign{
		{ID: "c1", Title: "One", CreatedAt: created},
		{ID: "c2", Title: "Two", CreatedAt: created},
	} {
		if err := store.PutCampaign(ctx, campaign); err != nil {
			t.Fatalf("put campaign: %v", err)
		}
	}

	characters := []domain.Character{
		{ID: "r1", CampaignID: "c1", Name: "Thalion the Ranger", Level: 5, CreatedAt: created},
		{ID: "r2", CampaignID: "c1", Name: "Mira", Level: 3, CreatedAt: created},
		{ID: "r3", CampaignID: "c2", Name: "Bram", Level: 2, CreatedAt: created},
	}
	for _, character := range characters {
		if err := store.PutCharacter(ctx, character); err != nil {
			t.Fatalf("put character: %v", err)
		}
	}

	aliases := []domain.Alias{
		{CharacterID: "r1", CampaignID: "c1", Alias: "Thal"},
		{CharacterID: "r3", CampaignID: "c2", Alias: "Bram the Bold"},
	}
	for _, alias := range aliases {
		if err := store.PutAlias(ctx, alias); err != nil {
			t.Fatalf("put alias: %v", err)
		}
	}

	listed, err := store.ListCharacters(ctx, "c1")
	if err != nil {
		t.Fatalf("list characters: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("expected 2 characters in c1, got %d", len(listed))
	}
	for _, character := range listed {
		if character.CampaignID != "c1" {
			t.Fatalf("character leaked from another campaign: %+v", character)
		}
	}

	listedAliases, err := store.ListAliases(ctx, "c1")
	if err != nil {
		t.Fatalf("list aliases: %v", err)
	}
	if len(listedAliases) != 1 || listedAliases[0].Alias != "Thal" {
		t.Fatalf("expected only c1 aliases, got %+v", listedAliases)
	}
}

func TestPutAliasIdempotent(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	alias := domain.Alias{CharacterID: "r1", CampaignID: "c1", Alias: "Thal"}
	if err := store.PutAlias(ctx, alias); err != nil {
		t.Fatalf("put alias: %v", err)
	}
	if err := store.PutAlias(ctx, alias); err != nil {
		t.Fatalf("re-put alias: %v", err)
	}

	aliases, err := store.ListAliases(ctx, "c1")
	if err != nil {
		t.Fatalf("list aliases: %v", err)
	}
	if len(aliases) != 1 {
		t.Fatalf("expected single alias row, got %d", len(aliases))
	}
}

func TestFindSessionByNumber(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	session := domain.Session{
		ID:         "s3",
		CampaignID: "c1",
		Number:     3,
		OccurredAt: time.Date(2025, 8, 6, 19, 0, 0, 0, time.UTC),
	}
	if err := store.PutSession(ctx, session); err != nil {
		t.Fatalf("put session: %v", err)
	}

	loaded, found, err := store.FindSessionByNumber(ctx, "c1", 3)
	if err != nil {
		t.Fatalf("find by number: %v", err)
	}
	if !found || loaded != session {
		t.Fatalf("expected %+v, got %+v found=%v", session, loaded, found)
	}

	_, found, err = store.FindSessionByNumber(ctx, "c1", 42)
	if err != nil {
		t.Fatalf("find missing number: %v", err)
	}
	if found {
		t.Fatal("expected absence for unknown number")
	}
}

func TestFindLatestSession(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	sessions := []domain.Session{
		{ID: "s1", CampaignID: "c1", Number: 1, OccurredAt: time.Date(2025, 6, 2, 19, 0, 0, 0, time.UTC)},
		{ID: "s3", CampaignID: "c1", Number: 3, OccurredAt: time.Date(2025, 8, 6, 19, 0, 0, 0, time.UTC)},
		{ID: "s2", CampaignID: "c1", Number: 2, OccurredAt: time.Date(2025, 7, 18, 19, 0, 0, 0, time.UTC)},
	}
	for _, session := range sessions {
		if err := store.PutSession(ctx, session); err != nil {
			t.Fatalf("put session: %v", err)
		}
	}

	latest, found, err := store.FindLatestSession(ctx, "c1")
	if err != nil {
		t.Fatalf("find latest: %v", err)
	}
	if !found || latest.ID != "s3" {
		t.Fatalf("expected s3, got %+v", latest)
	}
}

func TestFindLatestSessionBreaksDateTiesByNumber(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	occurred := time.Date(2025, 8, 6, 19, 0, 0, 0, time.UTC)
	sessions := []domain.Session{
		{ID: "s5", CampaignID: "c1", Number: 5, OccurredAt: occurred},
		{ID: "s4", CampaignID: "c1", Number: 4, OccurredAt: occurred},
	}
	for _, session := range sessions {
		if err := store.PutSession(ctx, session); err != nil {
			t.Fatalf("put session: %v", err)
		}
	}

	latest, found, err := store.FindLatestSession(ctx, "c1")
	if err != nil {
		t.Fatalf("find latest: %v", err)
	}
	if !found || latest.Number != 5 {
		t.Fatalf("expected highest number on tied dates, got %+v", latest)
	}
}

func TestFindLatestSessionEmptyCampaign(t *testing.T) {
	store := openTestStore(t)

	_, found, err := store.FindLatestSession(context.Background(), "c1")
	if err != nil {
		t.Fatalf("find latest: %v", err)
	}
	if found {
		t.Fatal("expected absence for empty campaign")
	}
}
