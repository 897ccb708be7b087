// Copyright (c) 2025 Kpacaychuk.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cliparse.LoadDotEnv()
	cfg, err := cliparse.ParseFlags(os.Args[1:])

LoadDotEnv reads a .env file (if present) into the environment first; values
already exported in the shell win.

# CLI Flags

	-p                Server port (default: 3318)
	-t                Store type: sqlite, postgres, redis, file, memory
	-d                Database URL (sqlite DSN or postgres URL)
	-redis-addr       Redis address
	-redis-key        Redis key for the state document
	-data-file        JSON file for the file store
	-admin-salt       Admin key salt
	-capacity         Participants needed to finalize (default: 35)
	-group-size       Target group size (default: 5)
	-selection-limit  Options per participant (default: 3)
	-completion       revise or lock
	-seed             Grouping seed (0 = time based)
	-tg-token         Telegram bot token
	-tg-secret        Telegram webhook secret
	-tg-webhook-url   Webhook URL registered at startup

# Environment Variables

Flags fall back to environment variables:

	PORT, STORE_TYPE, DATABASE_URL, REDIS_ADDR, REDIS_PASSWORD, REDIS_DB,
	REDIS_KEY, DATA_FILE, ADMIN_KEY_SALT, POLL_CAPACITY, GROUP_SIZE,
	SELECTION_LIMIT, COMPLETION_POLICY, GROUPING_SEED, TELEGRAM_TOKEN,
	TELEGRAM_WEBHOOK_SECRET, TELEGRAM_WEBHOOK_URL

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if:

  - ADMIN_KEY_SALT is missing
  - the store type is unknown, or postgres has no DATABASE_URL
  - capacity or group size is below 1
  - the selection limit is outside 1..5
  - the completion policy is not revise or lock

Capacity does not have to be a multiple of the group size; the last group
is simply smaller.
*/
package cliparse
