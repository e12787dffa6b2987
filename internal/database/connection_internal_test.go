package database

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"

	"github.com/example/hindivocab/internal/logger"
	"github.com/example/hindivocab/pkg/models"
)

func TestSqliteDir(t *testing.T) {
	c := qt.New(t)

	tests := []struct {
		dsn  string
		want string
	}{
		{":memory:", ""},
		{"file::memory:?cache=shared", ""},
		{"file:test.db?mode=memory", ""},
		{"hindi.db", ""},
		{"data/hindi_learning.db", "data"},
		{"file:/tmp/vocab/hindi.db?_busy_timeout=5000", "/tmp/vocab"},
	}
	for _, tt := range tests {
		c.Check(sqliteDir(tt.dsn), qt.Equals, tt.want, qt.Commentf("dsn %q", tt.dsn))
	}
}

func TestSchemaSpecDDL(t *testing.T) {
	c := qt.New(t)

	lessonDDL := strings.Join(lessonSpec.ddl(DriverSQLite), "\n")
	c.Assert(lessonDDL, qt.Contains, "lesson_order INTEGER NOT NULL UNIQUE")
	c.Assert(lessonDDL, qt.Contains, "UNIQUE(hindi_word, lesson_id)")
	c.Assert(lessonDDL, qt.Not(qt.Contains), "image_url")

	categoryDDL := strings.Join(categorySpec.ddl(DriverPostgres), "\n")
	c.Assert(categoryDDL, qt.Contains, "id SERIAL PRIMARY KEY")
	c.Assert(categoryDDL, qt.Contains, "image_url TEXT")
	c.Assert(categoryDDL, qt.Contains, "category_id INTEGER NOT NULL REFERENCES categories(id)")
}

func TestOpen_UnknownVariant(t *testing.T) {
	c := qt.New(t)

	_, err := Open(context.Background(), Options{Driver: DriverSQLite, DSN: ":memory:", Variant: "chapter"}, logger.NewNop())
	c.Assert(err, qt.ErrorMatches, `unknown schema variant "chapter"`)
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	c := qt.New(t)

	_, err := Open(context.Background(), Options{Driver: "mysql", DSN: "x", Variant: models.VariantLesson}, logger.NewNop())
	c.Assert(err, qt.ErrorMatches, `unsupported database driver "mysql"`)
}

func TestOpen_CreatesDataDirectory(t *testing.T) {
	c := qt.New(t)

	dsn := filepath.Join(t.TempDir(), "nested", "hindi.db")
	store, err := Open(context.Background(), Options{Driver: DriverSQLite, DSN: dsn, Variant: models.VariantCategory}, logger.NewNop())
	c.Assert(err, qt.IsNil)
	defer store.Close()

	c.Assert(store.InitSchema(context.Background()), qt.IsNil)
	// Running it again is a no-op
	c.Assert(store.InitSchema(context.Background()), qt.IsNil)
	c.Assert(store.Variant(), qt.Equals, models.VariantCategory)
}

func TestClosedStoreIsUnavailable(t *testing.T) {
	c := qt.New(t)

	store, err := Open(context.Background(), Options{Driver: DriverSQLite, DSN: ":memory:", Variant: models.VariantLesson}, logger.NewNop())
	c.Assert(err, qt.IsNil)
	c.Assert(store.InitSchema(context.Background()), qt.IsNil)
	c.Assert(store.Close(), qt.IsNil)

	err = store.Ping(context.Background())
	c.Assert(errors.Is(err, ErrStorageUnavailable), qt.IsTrue)

	_, err = NewLessonRepository(store).ListAll(context.Background())
	c.Assert(errors.Is(err, ErrStorageUnavailable), qt.IsTrue)
}

func TestInitSchema_RejectsOtherVariant(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "hindi.db")

	store, err := Open(ctx, Options{Driver: DriverSQLite, DSN: dsn, Variant: models.VariantCategory}, logger.NewNop())
	c.Assert(err, qt.IsNil)
	c.Assert(store.InitSchema(ctx), qt.IsNil)
	c.Assert(store.Close(), qt.IsNil)

	store, err = Open(ctx, Options{Driver: DriverSQLite, DSN: dsn, Variant: models.VariantLesson}, logger.NewNop())
	c.Assert(err, qt.IsNil)
	defer store.Close()

	err = store.InitSchema(ctx)
	c.Assert(err, qt.ErrorIs, ErrSchemaMismatch)
	c.Assert(err, qt.ErrorMatches, `schema mismatch: store holds the category variant, not lesson`)
	c.Assert(errors.Is(err, ErrStorageUnavailable), qt.IsFalse)
}

func TestStorageError_Classification(t *testing.T) {
	c := qt.New(t)

	err := storageError("insert", sqlite3.Error{Code: sqlite3.ErrConstraint})
	c.Assert(err, qt.ErrorIs, ErrConstraint)
	c.Assert(errors.Is(err, ErrStorageUnavailable), qt.IsFalse)

	err = storageError("insert", &pq.Error{Code: "23505"})
	c.Assert(err, qt.ErrorIs, ErrConstraint)

	err = storageError("connect", &pq.Error{Code: "08006"})
	c.Assert(err, qt.ErrorIs, ErrStorageUnavailable)

	err = storageError("query", errors.New("sql: database is closed"))
	c.Assert(err, qt.ErrorIs, ErrStorageUnavailable)
}
