// Copyright (c) 2025 Kpacaychuk.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists the application state document.

The core treats storage as a document store: Load returns the whole state,
Save replaces it. Callers serialize their own read-modify-write cycles.

# Backends

	store.OpenSQLite(ctx, "file:quizbot.db")          // modernc.org/sqlite
	store.OpenPostgres(ctx, "postgres://...")          // lib/pq
	store.OpenRedis(ctx, "localhost:6379", "", 0, key) // go-redis
	store.NewFileStore("data.json")
	store.NewMemoryStore()

Open picks one from the parsed configuration:

	s, err := store.Open(ctx, cfg)

SQL backends keep the document in the state_document table (see package db)
and bump its version on every save.

# Legacy Documents

Older deployments wrote a flat JSON object: a "users" table plus one
top-level key per poll code. Load recognizes that layout and converts it;
the next Save writes the typed layout.
*/
package store
