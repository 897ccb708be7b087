// Copyright (c) 2025 Kpacaychuk.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/Kpacaychuk/type-quiz-bot/models"
)

// Store types
const (
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
	StoreRedis    = "redis"
	StoreFile     = "file"
	StoreMemory   = "memory"
)

// Poll defaults
const (
	DefaultCapacity       = 35
	DefaultGroupSize      = 5
	DefaultSelectionLimit = 3
)

type Config struct {
	Port int

	StoreType   string
	DatabaseURL string
	RedisAddr   string
	RedisPass   string
	RedisDB     int
	RedisKey    string
	DataFile    string

	AdminKeySalt string

	Capacity         int
	GroupSize        int
	SelectionLimit   int
	CompletionPolicy string
	GroupingSeed     uint64

	TelegramToken      string
	TelegramSecret     string
	TelegramWebhookURL string
}

// LoadDotEnv reads .env into the process environment if present.
// Variables already set win over the file.
func LoadDotEnv(paths ...string) {
	_ = godotenv.Load(paths...)
}

// ParseFlags validates flags and falls back to environment variables
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("type-quiz-bot", flag.ContinueOnError)

	// Network and storage
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.StoreType, "t", "", "Store type (sqlite, postgres, redis, file, memory)")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL (sqlite DSN or postgres URL)")
	fs.StringVar(&cfg.RedisAddr, "redis-addr", "", "Redis address")
	fs.StringVar(&cfg.RedisKey, "redis-key", "", "Redis key holding the state document")
	fs.StringVar(&cfg.DataFile, "data-file", "", "JSON file for the file store")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.AdminKeySalt, "admin-salt", "", "Admin key salt (prefer env)")
	fs.StringVar(&cfg.TelegramToken, "tg-token", "", "Telegram bot token (prefer env)")
	fs.StringVar(&cfg.TelegramSecret, "tg-secret", "", "Telegram webhook secret (prefer env)")
	fs.StringVar(&cfg.TelegramWebhookURL, "tg-webhook-url", "", "Public webhook URL to register with Telegram")

	// Poll rules
	fs.IntVar(&cfg.Capacity, "capacity", 0, "Participants needed to finalize a poll")
	fs.IntVar(&cfg.GroupSize, "group-size", 0, "Target group size")
	fs.IntVar(&cfg.SelectionLimit, "selection-limit", 0, "Options each participant selects")
	fs.StringVar(&cfg.CompletionPolicy, "completion", "", "What happens after a full selection (revise or lock)")
	fs.Uint64Var(&cfg.GroupingSeed, "seed", 0, "Grouping random seed (0 = time based)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.Port == 0 {
		port, err := envInt("PORT", 3318)
		if err != nil {
			return Config{}, err
		}
		cfg.Port = port
	}

	if cfg.StoreType == "" {
		cfg.StoreType = envString("STORE_TYPE", StoreSQLite)
	}
	switch cfg.StoreType {
	case StoreSQLite, StorePostgres, StoreRedis, StoreFile, StoreMemory:
	default:
		return Config{}, fmt.Errorf("unknown store type %q", cfg.StoreType)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		switch cfg.StoreType {
		case StoreSQLite:
			cfg.DatabaseURL = "file:quizbot.db"
		case StorePostgres:
			return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
		}
	}

	if cfg.RedisAddr == "" {
		cfg.RedisAddr = envString("REDIS_ADDR", "localhost:6379")
	}
	cfg.RedisPass = os.Getenv("REDIS_PASSWORD")
	redisDB, err := envInt("REDIS_DB", 0)
	if err != nil {
		return Config{}, err
	}
	cfg.RedisDB = redisDB
	if cfg.RedisKey == "" {
		cfg.RedisKey = envString("REDIS_KEY", "quizbot:state")
	}
	if cfg.DataFile == "" {
		cfg.DataFile = envString("DATA_FILE", "data.json")
	}

	if cfg.Capacity == 0 {
		if cfg.Capacity, err = envInt("POLL_CAPACITY", DefaultCapacity); err != nil {
			return Config{}, err
		}
	}
	if cfg.GroupSize == 0 {
		if cfg.GroupSize, err = envInt("GROUP_SIZE", DefaultGroupSize); err != nil {
			return Config{}, err
		}
	}
	if cfg.SelectionLimit == 0 {
		if cfg.SelectionLimit, err = envInt("SELECTION_LIMIT", DefaultSelectionLimit); err != nil {
			return Config{}, err
		}
	}
	if cfg.CompletionPolicy == "" {
		cfg.CompletionPolicy = envString("COMPLETION_POLICY", models.CompletionRevise)
	}
	if cfg.GroupingSeed == 0 {
		if s := os.Getenv("GROUPING_SEED"); s != "" {
			seed, err := strconv.ParseUint(s, 10, 64)
			if err != nil {
				return Config{}, errors.New("invalid GROUPING_SEED env variable")
			}
			cfg.GroupingSeed = seed
		}
	}

	if cfg.Capacity < 1 {
		return Config{}, errors.New("capacity must be at least 1")
	}
	if cfg.GroupSize < 1 {
		return Config{}, errors.New("group size must be at least 1")
	}
	if cfg.SelectionLimit < 1 || cfg.SelectionLimit > models.OptionCount {
		return Config{}, fmt.Errorf("selection limit must be between 1 and %d", models.OptionCount)
	}
	if cfg.CompletionPolicy != models.CompletionRevise && cfg.CompletionPolicy != models.CompletionLock {
		return Config{}, fmt.Errorf("unknown completion policy %q", cfg.CompletionPolicy)
	}

	// Secrets - MUST be provided
	if cfg.AdminKeySalt == "" {
		cfg.AdminKeySalt = os.Getenv("ADMIN_KEY_SALT")
	}
	if cfg.AdminKeySalt == "" {
		return Config{}, errors.New("ADMIN_KEY_SALT required")
	}

	// Telegram is optional
	if cfg.TelegramToken == "" {
		cfg.TelegramToken = os.Getenv("TELEGRAM_TOKEN")
	}
	if cfg.TelegramSecret == "" {
		cfg.TelegramSecret = os.Getenv("TELEGRAM_WEBHOOK_SECRET")
	}
	if cfg.TelegramWebhookURL == "" {
		cfg.TelegramWebhookURL = os.Getenv("TELEGRAM_WEBHOOK_URL")
	}

	return cfg, nil
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s env variable", key)
	}
	return v, nil
}
