package mysql

import (
	"context"
	"database/sql"
	"fmt"
)

// Store is the explicit transaction handle the handlers are built against.
// Each call borrows one pooled connection for the duration of fn and returns
// it unconditionally: rollback is deferred on every path and becomes a no-op
// once the commit succeeds.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) WithinTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}
