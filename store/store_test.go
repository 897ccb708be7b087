// Copyright (c) 2025 Kpacaychuk.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/Kpacaychuk/type-quiz-bot/models"
)

func sampleState() *models.State {
	state := models.NewState()
	state.Identities["1001"] = models.Identity{FirstName: "Ivan", LastName: "Petrov"}
	state.Polls["AB12CD"] = &models.Poll{
		ID:        "AB12CD",
		CreatorID: "1001",
		Active:    true,
		Options:   models.DefaultOptionLabels(),
		Participants: map[string]*models.ParticipantAnswer{
			"2002": {Answers: []int{1, 3, 5}},
			"3003": {Answers: []int{}},
		},
		CreatedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	return state
}

// runStoreContract exercises behavior every backend must share
func runStoreContract(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	empty, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load() on empty store error = %v", err)
	}
	if len(empty.Polls) != 0 || len(empty.Identities) != 0 || empty.Reports == nil {
		t.Fatalf("Expected empty allocated state, got %+v", empty)
	}

	want := sampleState()
	if err := s.Save(ctx, want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(got.Identities, want.Identities) {
		t.Errorf("Identities mismatch: got %+v, want %+v", got.Identities, want.Identities)
	}
	poll, ok := got.Polls["AB12CD"]
	if !ok {
		t.Fatal("Saved poll missing after Load")
	}
	if !reflect.DeepEqual(poll.Participants["2002"].Answers, []int{1, 3, 5}) {
		t.Errorf("Answers mismatch: %v", poll.Participants["2002"].Answers)
	}
	if len(poll.Options) != models.OptionCount {
		t.Errorf("Expected %d options, got %d", models.OptionCount, len(poll.Options))
	}

	// Overwrite replaces the whole document
	next := models.NewState()
	next.Identities["4004"] = models.Identity{FirstName: "Anna", LastName: "Smirnova"}
	if err := s.Save(ctx, next); err != nil {
		t.Fatalf("Save() overwrite error = %v", err)
	}
	got, err = s.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Polls) != 0 || got.Identities["4004"].FirstName != "Anna" {
		t.Errorf("Overwrite not applied: %+v", got)
	}
}

func TestMemoryStore(t *testing.T) {
	runStoreContract(t, NewMemoryStore())
}

func TestMemoryStore_LoadReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	if err := s.Save(ctx, sampleState()); err != nil {
		t.Fatal(err)
	}

	first, _ := s.Load(ctx)
	first.Polls["AB12CD"].Active = false

	second, _ := s.Load(ctx)
	if !second.Polls["AB12CD"].Active {
		t.Error("Mutating a loaded state leaked into the store")
	}
	if s.Saves() != 1 {
		t.Errorf("Expected 1 save, got %d", s.Saves())
	}
}

func TestFileStore(t *testing.T) {
	runStoreContract(t, NewFileStore(filepath.Join(t.TempDir(), "data.json")))
}

func TestFileStore_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatal(err)
	}

	state, err := NewFileStore(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(state.Polls) != 0 {
		t.Errorf("Expected empty state, got %d polls", len(state.Polls))
	}
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := NewFileStore(path).Load(context.Background()); err == nil {
		t.Error("Expected decode error for corrupt file")
	}
}

func TestSQLiteStore(t *testing.T) {
	ctx := context.Background()
	s, err := OpenSQLite(ctx, "file:"+filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("OpenSQLite() error = %v", err)
	}
	defer s.Close()

	runStoreContract(t, s)

	version, err := s.Version(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if version != 2 {
		t.Errorf("Expected version 2 after two saves, got %d", version)
	}
}

func TestSQLiteStore_SchemaIsIdempotent(t *testing.T) {
	ctx := context.Background()
	dsn := "file:" + filepath.Join(t.TempDir(), "test.db")

	s1, err := OpenSQLite(ctx, dsn)
	if err != nil {
		t.Fatal(err)
	}
	if err := s1.Save(ctx, sampleState()); err != nil {
		t.Fatal(err)
	}
	s1.Close()

	s2, err := OpenSQLite(ctx, dsn)
	if err != nil {
		t.Fatalf("Reopen error = %v", err)
	}
	defer s2.Close()

	state, err := s2.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := state.Polls["AB12CD"]; !ok {
		t.Error("State lost across reopen")
	}
}

func TestPostgresStore(t *testing.T) {
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	s, err := OpenPostgres(ctx, url)
	if err != nil {
		t.Fatalf("OpenPostgres() error = %v", err)
	}
	defer s.Close()

	if _, err := s.db.ExecContext(ctx, `DELETE FROM state_document`); err != nil {
		t.Fatalf("Failed to clean table: %v", err)
	}

	runStoreContract(t, s)
}

func TestRedisStore(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}

	ctx := context.Background()
	key := "quizbot:test:" + t.Name()
	s, err := OpenRedis(ctx, addr, "", 0, key)
	if err != nil {
		t.Fatalf("OpenRedis() error = %v", err)
	}
	defer s.Close()
	defer s.client.Del(ctx, key)

	s.client.Del(ctx, key)
	runStoreContract(t, s)
}

func TestBind(t *testing.T) {
	pg := &SQLStore{postgres: true}
	lite := &SQLStore{}

	query := "SELECT a FROM t WHERE x = ? AND y = ?"
	if got := pg.bind(query); got != "SELECT a FROM t WHERE x = $1 AND y = $2" {
		t.Errorf("postgres bind = %q", got)
	}
	if got := lite.bind(query); got != query {
		t.Errorf("sqlite bind = %q", got)
	}
}
