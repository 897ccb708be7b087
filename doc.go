// Copyright (c) 2025 Kpacaychuk.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the type-quiz-bot server.

type-quiz-bot runs group polls inside Telegram. A creator opens a poll with
five options and shares its 6-character code. Each participant picks three
options. When the poll is full and everyone has answered, the participants
are split into groups whose answers overlap as little as possible and the
creator receives the grouping.

# Starting the Server

The server reads flags, environment variables and an optional .env file:

	ADMIN_KEY_SALT=... TELEGRAM_TOKEN=... go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..." -admin-salt s

# Configuration

Required settings:

  - ADMIN_KEY_SALT (-admin-salt): Secret for admin key HMAC

Storage (-t / STORE_TYPE): sqlite (default), postgres, redis, file or memory.

Poll rules:

  - POLL_CAPACITY (-capacity): participants per poll (default: 35)
  - GROUP_SIZE (-group-size): target group size (default: 5)
  - SELECTION_LIMIT (-selection-limit): options per participant (default: 3)
  - COMPLETION_POLICY (-completion): revise (default) or lock
  - GROUPING_SEED (-seed): fixed grouping seed, 0 for time based

Chat bot:

  - TELEGRAM_TOKEN (-tg-token): enables the bot
  - TELEGRAM_WEBHOOK_URL (-tg-webhook-url): registers a webhook; long polling otherwise
  - TELEGRAM_WEBHOOK_SECRET (-tg-secret): checked on every webhook call

Optional settings:

  - PORT (-p): Server port (default: 3318)

# Architecture

  - polls: identity store, poll registry, vote engine, finalization
  - grouping: greedy diversity grouping
  - store: whole-state persistence (sqlite, postgres, redis, file, memory)
  - telegram: Bot API client, command handling and report delivery
  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Domain and request/response types
  - auth: Poll codes, admin keys, webhook secrets
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
