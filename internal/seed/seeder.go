package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/example/hindivocab/internal/database"
	"github.com/example/hindivocab/internal/logger"
	"github.com/example/hindivocab/pkg/models"
)

// Result counts what a seeding run inserted and what it found already present
type Result struct {
	ParentsCreated int
	ParentsSkipped int
	WordsCreated   int
	WordsSkipped   int
}

// Seeder brings a store up to a known catalog without creating duplicates
type Seeder struct {
	store      *database.Store
	categories *database.CategoryRepository
	lessons    *database.LessonRepository
	words      *database.WordRepository
	log        *logger.Logger
}

// New creates a seeder for the store's schema variant
func New(store *database.Store, log *logger.Logger) *Seeder {
	return &Seeder{
		store:      store,
		categories: database.NewCategoryRepository(store),
		lessons:    database.NewLessonRepository(store),
		words:      database.NewWordRepository(store),
		log:        log.With("component", "seeder"),
	}
}

// EnsureSeeded inserts the built-in catalog for the store's variant.
// Running it any number of times leaves one row per catalog entry.
func (s *Seeder) EnsureSeeded(ctx context.Context) (Result, error) {
	return s.EnsureEntries(ctx, CatalogFor(s.store.Variant()))
}

// EnsureEntries inserts every parent and word of the catalog that is not stored yet.
// Each insert commits on its own, so a failure leaves earlier rows in place.
func (s *Seeder) EnsureEntries(ctx context.Context, catalog Catalog) (Result, error) {
	var res Result

	parentIDs := make(map[string]int64, len(catalog.Parents))
	for _, p := range catalog.Parents {
		id, created, err := s.ensureParent(ctx, p)
		if err != nil {
			return res, fmt.Errorf("failed to seed %s %q: %w", s.store.Variant(), p.Name, err)
		}
		parentIDs[p.Name] = id
		if created {
			res.ParentsCreated++
		} else {
			res.ParentsSkipped++
		}
	}

	for _, w := range catalog.Words {
		parentID, ok := parentIDs[w.Parent]
		if !ok {
			id, err := s.findParent(ctx, w.Parent)
			if err != nil {
				return res, fmt.Errorf("failed to seed word %q: %w", w.HindiWord, err)
			}
			parentIDs[w.Parent] = id
			parentID = id
		}

		created, err := s.ensureWord(ctx, w, parentID)
		if err != nil {
			return res, fmt.Errorf("failed to seed word %q: %w", w.HindiWord, err)
		}
		if created {
			res.WordsCreated++
		} else {
			res.WordsSkipped++
		}
	}

	s.log.Info("seeding complete",
		"variant", s.store.Variant(),
		"parents_created", res.ParentsCreated,
		"parents_skipped", res.ParentsSkipped,
		"words_created", res.WordsCreated,
		"words_skipped", res.WordsSkipped,
	)
	return res, nil
}

// ensureParent looks the parent up by name and creates it if absent
func (s *Seeder) ensureParent(ctx context.Context, p ParentEntry) (int64, bool, error) {
	id, err := s.findParent(ctx, p.Name)
	if err == nil {
		return id, false, nil
	}
	if !errors.Is(err, database.ErrNotFound) {
		return 0, false, err
	}

	if s.store.Variant() == models.VariantLesson {
		lesson := &models.Lesson{Name: p.Name, Description: models.StringPtr(p.Description), Order: p.Order}
		created, err := s.lessons.Create(ctx, lesson)
		return lesson.ID, created, err
	}

	category := &models.Category{Name: p.Name, Description: models.StringPtr(p.Description)}
	if err := s.categories.Create(ctx, category); err != nil {
		return 0, false, err
	}
	return category.ID, true, nil
}

func (s *Seeder) findParent(ctx context.Context, name string) (int64, error) {
	if s.store.Variant() == models.VariantLesson {
		lesson, err := s.lessons.FindByName(ctx, name)
		if err != nil {
			return 0, err
		}
		return lesson.ID, nil
	}

	category, err := s.categories.FindByName(ctx, name)
	if err != nil {
		return 0, err
	}
	return category.ID, nil
}

// ensureWord looks the word up by (hindi_word, parent) and creates it if absent
func (s *Seeder) ensureWord(ctx context.Context, w WordEntry, parentID int64) (bool, error) {
	_, err := s.words.FindByParent(ctx, w.HindiWord, parentID)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, database.ErrNotFound) {
		return false, err
	}

	word := &models.Word{
		HindiWord:       w.HindiWord,
		EnglishMeaning:  w.EnglishMeaning,
		ParentID:        parentID,
		Level:           w.Level,
		Pronunciation:   models.StringPtr(w.Pronunciation),
		ExampleSentence: models.StringPtr(w.ExampleSentence),
		ImageURL:        models.StringPtr(w.ImageURL),
	}
	return s.words.Create(ctx, word)
}

// HasParent reports whether a category or lesson with the given name is stored
func (s *Seeder) HasParent(ctx context.Context, name string) (bool, error) {
	_, err := s.findParent(ctx, name)
	if errors.Is(err, database.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Variant reports the schema variant of the seeded store
func (s *Seeder) Variant() models.Variant {
	return s.store.Variant()
}
