package storage

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"opsboard/internal/database"
)

// MemoryDSN selects the in-process store instead of a database.
const MemoryDSN = "memory"

// Open returns the store selected by dsn, migrating the table when it is SQL backed.
func Open(ctx context.Context, dsn string, log *zap.Logger) (Store, error) {
	if strings.EqualFold(strings.TrimSpace(dsn), MemoryDSN) {
		log.Warn("using in-memory store, state is lost on exit")
		return NewMemoryStore(), nil
	}

	db, err := database.Connect(dsn, log)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	s := NewGormStore(db)
	if err := s.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("migrate kv_entries: %w", err)
	}
	return s, nil
}
