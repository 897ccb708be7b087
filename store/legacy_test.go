// Copyright (c) 2025 Kpacaychuk.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

const legacyDocument = `{
  "users": {
    "111": {"first_name": "Ivan", "last_name": "Ivanov"}
  },
  "QW12ER": {
    "creator": 111,
    "active": true,
    "participants": {
      "222": {"answers": [3, 1, 2], "username": "petya"}
    },
    "options": ["A", "B", "C", "D", "E"]
  },
  "OLD001": {
    "creator": 222,
    "active": false,
    "participants": {}
  }
}`

func TestDecodeState_Legacy(t *testing.T) {
	state, err := decodeState([]byte(legacyDocument))
	if err != nil {
		t.Fatalf("decodeState() error = %v", err)
	}

	if got := state.Identities["111"]; got.FirstName != "Ivan" || got.LastName != "Ivanov" {
		t.Errorf("Unexpected identity: %+v", got)
	}

	if _, ok := state.Polls["users"]; ok {
		t.Error("users table must not become a poll")
	}

	poll, ok := state.Polls["QW12ER"]
	if !ok {
		t.Fatal("Legacy poll missing")
	}
	if poll.CreatorID != "111" || !poll.Active {
		t.Errorf("Unexpected poll header: %+v", poll)
	}
	if !reflect.DeepEqual(poll.Options, []string{"A", "B", "C", "D", "E"}) {
		t.Errorf("Unexpected options: %v", poll.Options)
	}
	answer := poll.Participants["222"]
	if !reflect.DeepEqual(answer.Answers, []int{1, 2, 3}) || answer.Username != "petya" {
		t.Errorf("Unexpected participant: %+v", answer)
	}

	old := state.Polls["OLD001"]
	if old == nil || old.Active {
		t.Fatalf("Expected inactive legacy poll, got %+v", old)
	}
	if len(old.Options) != 5 || old.Options[0] != "Option 1" {
		t.Errorf("Expected default options for legacy poll without options, got %v", old.Options)
	}
}

func TestFileStore_MigratesLegacyOnSave(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data.json")
	if err := os.WriteFile(path, []byte(legacyDocument), 0o600); err != nil {
		t.Fatal(err)
	}

	s := NewFileStore(path)
	state, err := s.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Save(ctx, state); err != nil {
		t.Fatal(err)
	}

	reloaded, err := s.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(reloaded.Polls) != 2 || len(reloaded.Identities) != 1 {
		t.Errorf("Migration lost records: %d polls, %d identities", len(reloaded.Polls), len(reloaded.Identities))
	}
}
