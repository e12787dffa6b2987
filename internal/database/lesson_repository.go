package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/example/hindivocab/pkg/models"
)

const lessonColumns = "id, name, description, lesson_order"

// LessonRepository handles database operations for lessons
type LessonRepository struct {
	store *Store
}

// NewLessonRepository creates a new repository instance
func NewLessonRepository(store *Store) *LessonRepository {
	return &LessonRepository{store: store}
}

// ListAll returns all lessons sorted by their display order
func (r *LessonRepository) ListAll(ctx context.Context) ([]models.Lesson, error) {
	lessons := []models.Lesson{}
	err := r.store.db.SelectContext(ctx, &lessons, "SELECT "+lessonColumns+" FROM lessons ORDER BY lesson_order")
	if err != nil {
		return nil, storageError("failed to get lessons", err)
	}
	return lessons, nil
}

// GetByID returns a lesson by ID
func (r *LessonRepository) GetByID(ctx context.Context, id int64) (*models.Lesson, error) {
	return r.getOne(ctx, "id", id)
}

// FindByName returns the lesson with the given name
func (r *LessonRepository) FindByName(ctx context.Context, name string) (*models.Lesson, error) {
	return r.getOne(ctx, "name", name)
}

func (r *LessonRepository) getOne(ctx context.Context, column string, value interface{}) (*models.Lesson, error) {
	var lesson models.Lesson
	query := r.store.db.Rebind("SELECT " + lessonColumns + " FROM lessons WHERE " + column + " = ?")
	err := r.store.db.GetContext(ctx, &lesson, query, value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("lesson %s=%v: %w", column, value, ErrNotFound)
	}
	if err != nil {
		return nil, storageError("failed to get lesson", err)
	}
	return &lesson, nil
}

// Create inserts a lesson unless one with the same name already exists.
// It reports whether a row was inserted; lesson.ID is set either way.
func (r *LessonRepository) Create(ctx context.Context, lesson *models.Lesson) (bool, error) {
	query := r.store.db.Rebind(`
		INSERT INTO lessons (name, description, lesson_order)
		VALUES (?, ?, ?)
		ON CONFLICT DO NOTHING
		RETURNING id
	`)
	err := r.store.db.QueryRowxContext(ctx, query, lesson.Name, lesson.Description, lesson.Order).Scan(&lesson.ID)
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return false, storageError("failed to create lesson", err)
	}

	// Another writer got there first
	existing, err := r.FindByName(ctx, lesson.Name)
	if errors.Is(err, ErrNotFound) {
		return false, fmt.Errorf("lesson %q: order %d is taken by another lesson", lesson.Name, lesson.Order)
	}
	if err != nil {
		return false, err
	}
	lesson.ID = existing.ID
	return false, nil
}

// Count returns the number of stored lessons
func (r *LessonRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.store.db.GetContext(ctx, &n, "SELECT COUNT(*) FROM lessons"); err != nil {
		return 0, storageError("failed to count lessons", err)
	}
	return n, nil
}
