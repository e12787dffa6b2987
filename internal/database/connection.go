package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/example/hindivocab/internal/logger"
	"github.com/example/hindivocab/pkg/models"
)

// Supported database drivers
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
)

// Options describes where the store lives and which schema it holds
type Options struct {
	Driver  string
	DSN     string
	Variant models.Variant
}

// Store owns the database connection for one schema variant.
// It is created by the process entry point and passed to every consumer.
type Store struct {
	db   *sqlx.DB
	spec schemaSpec
	log  *logger.Logger
}

// Open connects to the database and prepares the connection pool
func Open(ctx context.Context, opts Options, log *logger.Logger) (*Store, error) {
	spec, err := specFor(opts.Variant)
	if err != nil {
		return nil, err
	}

	switch opts.Driver {
	case DriverSQLite:
		// Create data directory if it doesn't exist
		if dir := sqliteDir(opts.DSN); dir != "" {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create data directory: %w", err)
			}
		}
	case DriverPostgres:
	default:
		return nil, fmt.Errorf("unsupported database driver %q", opts.Driver)
	}

	db, err := sqlx.ConnectContext(ctx, opts.Driver, opts.DSN)
	if err != nil {
		return nil, storageError("failed to connect to database", err)
	}

	if opts.Driver == DriverSQLite {
		// SQLite doesn't support multiple writers, and an in-memory
		// database only lives as long as its single connection
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)

		if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
			db.Close()
			return nil, storageError("failed to enable foreign keys", err)
		}
	}

	log.Info("database connected", "driver", opts.Driver, "dsn", opts.DSN, "variant", opts.Variant)

	return &Store{db: db, spec: spec, log: log}, nil
}

// sqliteDir returns the directory that must exist for a file-based DSN
func sqliteDir(dsn string) string {
	if dsn == "" || strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory") {
		return ""
	}
	path := strings.TrimPrefix(dsn, "file:")
	if i := strings.Index(path, "?"); i >= 0 {
		path = path[:i]
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return ""
	}
	return dir
}

// Close closes the database connection
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Ping checks that the database is still reachable
func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return storageError("database ping failed", err)
	}
	return nil
}

// Variant reports which schema variant the store holds
func (s *Store) Variant() models.Variant {
	return s.spec.variant
}

// InitSchema creates the variant's tables if they don't exist.
// A store already holding the other variant's tables is rejected with ErrSchemaMismatch.
func (s *Store) InitSchema(ctx context.Context) error {
	if err := s.checkVariant(ctx); err != nil {
		return err
	}
	for _, stmt := range s.spec.ddl(s.db.DriverName()) {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return storageError("failed to create schema", err)
		}
	}
	s.log.Debug("database schema ready", "variant", s.spec.variant)
	return nil
}

// checkVariant fails if the words table carries the other variant's parent column
func (s *Store) checkVariant(ctx context.Context) error {
	for _, other := range []schemaSpec{categorySpec, lessonSpec} {
		if other.variant == s.spec.variant {
			continue
		}
		// Fails when the table or the column is missing, which is the expected case
		query := fmt.Sprintf("SELECT %s FROM words LIMIT 0", other.parentFK)
		rows, err := s.db.QueryContext(ctx, query)
		if err != nil {
			continue
		}
		rows.Close()
		return fmt.Errorf("%w: store holds the %s variant, not %s", ErrSchemaMismatch, other.variant, s.spec.variant)
	}
	return nil
}
