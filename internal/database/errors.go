package database

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
)

var (
	// ErrNotFound is returned when a looked-up row does not exist
	ErrNotFound = errors.New("not found")
	// ErrStorageUnavailable wraps connection and I/O failures reported by the driver
	ErrStorageUnavailable = errors.New("storage unavailable")
	// ErrConstraint wraps unique, foreign key and NOT NULL violations
	ErrConstraint = errors.New("constraint violation")
	// ErrSchemaMismatch is returned when the store was created for the other variant
	ErrSchemaMismatch = errors.New("schema mismatch")
)

// storageError wraps a driver error with the sentinel matching its cause
func storageError(msg string, err error) error {
	if isConstraintViolation(err) {
		return fmt.Errorf("%s: %w: %w", msg, ErrConstraint, err)
	}
	return fmt.Errorf("%s: %w: %w", msg, ErrStorageUnavailable, err)
}

func isConstraintViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrConstraint
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		// Class 23: integrity constraint violation
		return pqErr.Code.Class() == "23"
	}
	return false
}
