// Copyright (c) 2025 Kpacaychuk.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(ctx, conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS. The DDL is portable
between SQLite (modernc.org/sqlite) and PostgreSQL (lib/pq).

# Tables

  - state_document: one row per document, keyed by name. The application
    keeps its whole state (identities, polls, reports) as JSON under
    StateKey and bumps version on every save.
*/
package db
