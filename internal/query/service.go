// Package query implements the read-only lookups behind the HTTP API.
package query

import (
	"context"
	"fmt"

	"github.com/example/hindivocab/internal/database"
	"github.com/example/hindivocab/pkg/models"
)

// Service answers read queries against one store
type Service struct {
	store      *database.Store
	categories *database.CategoryRepository
	lessons    *database.LessonRepository
	words      *database.WordRepository
}

// NewService creates a query service over the store
func NewService(store *database.Store) *Service {
	return &Service{
		store:      store,
		categories: database.NewCategoryRepository(store),
		lessons:    database.NewLessonRepository(store),
		words:      database.NewWordRepository(store),
	}
}

// Variant reports which schema variant the service reads
func (s *Service) Variant() models.Variant {
	return s.store.Variant()
}

// Ping checks that the store is reachable
func (s *Service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

// ListParents returns lessons sorted by order, or categories in insertion order
func (s *Service) ListParents(ctx context.Context) ([]models.ParentSummary, error) {
	if s.Variant() == models.VariantLesson {
		lessons, err := s.lessons.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]models.ParentSummary, 0, len(lessons))
		for _, l := range lessons {
			order := l.Order
			out = append(out, models.ParentSummary{ID: l.ID, Name: l.Name, Description: l.Description, Order: &order})
		}
		return out, nil
	}

	categories, err := s.categories.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.ParentSummary, 0, len(categories))
	for _, c := range categories {
		out = append(out, models.ParentSummary{ID: c.ID, Name: c.Name, Description: c.Description})
	}
	return out, nil
}

// ListWordsByLevel returns every word of the given level with its parent's name.
// No match yields an empty slice.
func (s *Service) ListWordsByLevel(ctx context.Context, level int) ([]models.LevelWord, error) {
	return s.words.ListByLevel(ctx, level)
}

// ListWordsByParent returns the words of one category or lesson.
// An unknown lesson is database.ErrNotFound; an unknown category yields an empty slice.
func (s *Service) ListWordsByParent(ctx context.Context, parentID int64) ([]models.Word, error) {
	if s.Variant() == models.VariantLesson {
		if _, err := s.lessons.GetByID(ctx, parentID); err != nil {
			return nil, fmt.Errorf("failed to list lesson words: %w", err)
		}
	}
	return s.words.ListByParent(ctx, parentID)
}
