// Copyright (c) 2025 Kpacaychuk.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"

	"github.com/Kpacaychuk/type-quiz-bot/cliparse"
)

// Open builds the backend selected by cfg.StoreType
func Open(ctx context.Context, cfg cliparse.Config) (Store, error) {
	switch cfg.StoreType {
	case cliparse.StoreSQLite:
		return OpenSQLite(ctx, cfg.DatabaseURL)
	case cliparse.StorePostgres:
		return OpenPostgres(ctx, cfg.DatabaseURL)
	case cliparse.StoreRedis:
		return OpenRedis(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB, cfg.RedisKey)
	case cliparse.StoreFile:
		return NewFileStore(cfg.DataFile), nil
	case cliparse.StoreMemory:
		return NewMemoryStore(), nil
	}
	return nil, fmt.Errorf("unknown store type %q", cfg.StoreType)
}
