package testutil

import (
	"context"
	"testing"

	"github.com/example/hindivocab/internal/database"
	"github.com/example/hindivocab/internal/logger"
	"github.com/example/hindivocab/pkg/models"
)

// NewStore opens a fresh in-memory SQLite store with the variant's schema
func NewStore(t *testing.T, variant models.Variant) *database.Store {
	t.Helper()

	store, err := database.Open(context.Background(), database.Options{
		Driver:  database.DriverSQLite,
		DSN:     ":memory:",
		Variant: variant,
	}, logger.NewNop())
	if err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	if err := store.InitSchema(context.Background()); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return store
}

// CreateLesson inserts a lesson and returns its ID
func CreateLesson(t *testing.T, store *database.Store, name string, order int) int64 {
	t.Helper()

	lesson := &models.Lesson{Name: name, Order: order}
	if _, err := database.NewLessonRepository(store).Create(context.Background(), lesson); err != nil {
		t.Fatalf("Failed to create test lesson: %v", err)
	}
	return lesson.ID
}

// CreateCategory inserts a category and returns its ID
func CreateCategory(t *testing.T, store *database.Store, name string) int64 {
	t.Helper()

	category := &models.Category{Name: name}
	if err := database.NewCategoryRepository(store).Create(context.Background(), category); err != nil {
		t.Fatalf("Failed to create test category: %v", err)
	}
	return category.ID
}

// CreateWord inserts a word under the given parent and returns its ID
func CreateWord(t *testing.T, store *database.Store, parentID int64, hindi, english string, level int) int64 {
	t.Helper()

	word := &models.Word{
		HindiWord:      hindi,
		EnglishMeaning: english,
		ParentID:       parentID,
		Level:          level,
	}
	if _, err := database.NewWordRepository(store).Create(context.Background(), word); err != nil {
		t.Fatalf("Failed to create test word: %v", err)
	}
	return word.ID
}
