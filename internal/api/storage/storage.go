package storage

import (
	"log/slog"

	"github.com/jmoiron/sqlx"

	"github.com/jobdeck/jobdeck/shared/postgresql"
)

// Storage handles all database operations for the API service
type Storage struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewStorage creates a new Storage instance
func NewStorage(pg *postgresql.Client, logger *slog.Logger) *Storage {
	return &Storage{
		db:     pg.GetDB(),
		logger: logger,
	}
}

// newStorageWithDB is used by tests to inject a mocked database handle.
func newStorageWithDB(db *sqlx.DB, logger *slog.Logger) *Storage {
	return &Storage{db: db, logger: logger}
}
