// Package storage implements PostgreSQL persistence for the portfolio API.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/k1ngs/portfolio-api/internal/domain"
)

// defaultListLimit caps listings when the caller supplies no limit.
const defaultListLimit = 50

// uniqueViolation is the PostgreSQL error code for unique constraint violations.
const uniqueViolation = "23505"

// withTx runs fn inside a transaction, rolling back on error.
func withTx(ctx context.Context, db *sql.DB, fn func(*sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// mapConstraintError converts PostgreSQL unique violations to the
// domain-level duplicate key error. Other errors pass through unchanged.
func mapConstraintError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return domain.ErrDuplicateKey
	}
	return err
}

// nullable returns a sql.NullString for an optional text column.
func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
