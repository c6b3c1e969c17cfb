// Package db holds small helpers shared by the SQLite stores.
package db

import "database/sql"

// WithTx runs fn in a transaction. It commits when fn returns nil and
// rolls back otherwise.
func WithTx(db *sql.DB, fn func(tx *sql.Tx) error) (err error) {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()
	if err = fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

// Optional stores v, or NULL when v is the zero value.
func Optional[T comparable](v T) sql.Null[T] {
	var zero T
	return sql.Null[T]{V: v, Valid: v != zero}
}

// ValueOr returns the stored value, or def for NULL.
func ValueOr[T any](n sql.Null[T], def T) T {
	if !n.Valid {
		return def
	}
	return n.V
}
