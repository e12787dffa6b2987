package query_test

import (
	"context"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/example/hindivocab/internal/database"
	"github.com/example/hindivocab/internal/logger"
	"github.com/example/hindivocab/internal/query"
	"github.com/example/hindivocab/internal/seed"
	"github.com/example/hindivocab/internal/testutil"
	"github.com/example/hindivocab/pkg/models"
)

func seededService(t *testing.T, variant models.Variant) *query.Service {
	t.Helper()
	store := testutil.NewStore(t, variant)
	if _, err := seed.New(store, logger.NewNop()).EnsureSeeded(context.Background()); err != nil {
		t.Fatalf("Failed to seed: %v", err)
	}
	return query.NewService(store)
}

func TestListParents_Lessons(t *testing.T) {
	c := qt.New(t)
	svc := seededService(t, models.VariantLesson)

	parents, err := svc.ListParents(context.Background())
	c.Assert(err, qt.IsNil)
	c.Assert(parents, qt.HasLen, 3)
	c.Assert(parents[0].Name, qt.Equals, "Lesson 1: Single Words")
	for i, p := range parents {
		c.Assert(p.Order, qt.IsNotNil)
		c.Check(*p.Order, qt.Equals, i+1)
	}
}

func TestListParents_CategoriesInInsertionOrder(t *testing.T) {
	c := qt.New(t)
	svc := seededService(t, models.VariantCategory)

	parents, err := svc.ListParents(context.Background())
	c.Assert(err, qt.IsNil)

	var names []string
	for i, p := range parents {
		c.Check(p.Order, qt.IsNil)
		if i > 0 {
			c.Check(p.ID > parents[i-1].ID, qt.IsTrue)
		}
		names = append(names, p.Name)
	}
	c.Assert(names, qt.DeepEquals, []string{"Numbers", "Animals", "Colors", "Greetings", "Family"})
}

func TestListWordsByLevel_OnlyMatchingLevel(t *testing.T) {
	for _, variant := range []models.Variant{models.VariantCategory, models.VariantLesson} {
		t.Run(variant.String(), func(t *testing.T) {
			c := qt.New(t)
			svc := seededService(t, variant)

			expected := map[int]int{}
			for _, w := range seed.CatalogFor(variant).Words {
				expected[w.Level]++
			}
			for level, n := range expected {
				words, err := svc.ListWordsByLevel(context.Background(), level)
				c.Assert(err, qt.IsNil)
				c.Assert(words, qt.HasLen, n)
				for _, w := range words {
					c.Check(w.Level, qt.Equals, level)
					c.Check(w.ParentName, qt.Not(qt.Equals), "")
				}
			}

			words, err := svc.ListWordsByLevel(context.Background(), 99)
			c.Assert(err, qt.IsNil)
			c.Assert(words, qt.HasLen, 0)
		})
	}
}

func TestListWordsByParent_OnlyThatParent(t *testing.T) {
	for _, variant := range []models.Variant{models.VariantCategory, models.VariantLesson} {
		t.Run(variant.String(), func(t *testing.T) {
			c := qt.New(t)
			svc := seededService(t, variant)

			parents, err := svc.ListParents(context.Background())
			c.Assert(err, qt.IsNil)
			total := 0
			for _, p := range parents {
				words, err := svc.ListWordsByParent(context.Background(), p.ID)
				c.Assert(err, qt.IsNil)
				for _, w := range words {
					c.Check(w.ParentID, qt.Equals, p.ID)
				}
				total += len(words)
			}
			c.Assert(total, qt.Equals, len(seed.CatalogFor(variant).Words))
		})
	}
}

func TestListWordsByParent_UnknownParent(t *testing.T) {
	c := qt.New(t)

	_, err := seededService(t, models.VariantLesson).ListWordsByParent(context.Background(), 999)
	c.Assert(err, qt.ErrorIs, database.ErrNotFound)

	words, err := seededService(t, models.VariantCategory).ListWordsByParent(context.Background(), 999)
	c.Assert(err, qt.IsNil)
	c.Assert(words, qt.HasLen, 0)
}
