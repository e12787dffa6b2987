package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/example/hindivocab/pkg/models"
)

// CategoryRepository handles database operations for categories
type CategoryRepository struct {
	store *Store
}

// NewCategoryRepository creates a new repository instance
func NewCategoryRepository(store *Store) *CategoryRepository {
	return &CategoryRepository{store: store}
}

// ListAll returns all categories in insertion order
func (r *CategoryRepository) ListAll(ctx context.Context) ([]models.Category, error) {
	categories := []models.Category{}
	err := r.store.db.SelectContext(ctx, &categories, "SELECT id, name, description FROM categories ORDER BY id")
	if err != nil {
		return nil, storageError("failed to get categories", err)
	}
	return categories, nil
}

// GetByID returns a category by ID
func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (*models.Category, error) {
	var category models.Category
	query := r.store.db.Rebind("SELECT id, name, description FROM categories WHERE id = ?")
	err := r.store.db.GetContext(ctx, &category, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("category %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, storageError("failed to get category", err)
	}
	return &category, nil
}

// FindByName returns the oldest category with the given name
func (r *CategoryRepository) FindByName(ctx context.Context, name string) (*models.Category, error) {
	var category models.Category
	query := r.store.db.Rebind("SELECT id, name, description FROM categories WHERE name = ? ORDER BY id LIMIT 1")
	err := r.store.db.GetContext(ctx, &category, query, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("category %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, storageError("failed to get category by name", err)
	}
	return &category, nil
}

// Create inserts a new category and sets its ID
func (r *CategoryRepository) Create(ctx context.Context, category *models.Category) error {
	query := r.store.db.Rebind("INSERT INTO categories (name, description) VALUES (?, ?) RETURNING id")
	err := r.store.db.QueryRowxContext(ctx, query, category.Name, category.Description).Scan(&category.ID)
	if err != nil {
		return storageError("failed to create category", err)
	}
	return nil
}

// Count returns the number of stored categories
func (r *CategoryRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.store.db.GetContext(ctx, &n, "SELECT COUNT(*) FROM categories"); err != nil {
		return 0, storageError("failed to count categories", err)
	}
	return n, nil
}
