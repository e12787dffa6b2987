package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/example/hindivocab/pkg/models"
)

// WordRepository handles database operations for words
type WordRepository struct {
	store *Store
}

// NewWordRepository creates a new repository instance
func NewWordRepository(store *Store) *WordRepository {
	return &WordRepository{store: store}
}

// ListByLevel returns words of the given level joined with their parent's name
func (r *WordRepository) ListByLevel(ctx context.Context, level int) ([]models.LevelWord, error) {
	sp := r.store.spec
	query := r.store.db.Rebind(fmt.Sprintf(`
		SELECT %s, p.name AS parent_name
		FROM words w
		JOIN %s p ON p.id = w.%s
		WHERE w.level = ?
		ORDER BY w.id
	`, sp.wordColumns("w"), sp.parentTable, sp.parentFK))

	words := []models.LevelWord{}
	if err := r.store.db.SelectContext(ctx, &words, query, level); err != nil {
		return nil, storageError("failed to get words by level", err)
	}
	return words, nil
}

// ListByParent returns the words belonging to a category or lesson
func (r *WordRepository) ListByParent(ctx context.Context, parentID int64) ([]models.Word, error) {
	sp := r.store.spec
	query := r.store.db.Rebind(fmt.Sprintf(
		"SELECT %s FROM words w WHERE w.%s = ? ORDER BY w.id",
		sp.wordColumns("w"), sp.parentFK))

	words := []models.Word{}
	if err := r.store.db.SelectContext(ctx, &words, query, parentID); err != nil {
		return nil, storageError("failed to get words by parent", err)
	}
	return words, nil
}

// FindByParent looks a word up by its natural key
func (r *WordRepository) FindByParent(ctx context.Context, hindiWord string, parentID int64) (*models.Word, error) {
	sp := r.store.spec
	query := r.store.db.Rebind(fmt.Sprintf(
		"SELECT %s FROM words w WHERE w.hindi_word = ? AND w.%s = ?",
		sp.wordColumns("w"), sp.parentFK))

	var word models.Word
	err := r.store.db.GetContext(ctx, &word, query, hindiWord, parentID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("word %q in %s %d: %w", hindiWord, sp.variant, parentID, ErrNotFound)
	}
	if err != nil {
		return nil, storageError("failed to get word", err)
	}
	return &word, nil
}

// Create inserts a word unless (hindi_word, parent) already exists.
// It reports whether a row was inserted; word.ID is set either way.
func (r *WordRepository) Create(ctx context.Context, word *models.Word) (bool, error) {
	sp := r.store.spec
	columns := "hindi_word, english_meaning, " + sp.parentFK + ", level, pronunciation, example_sentence"
	placeholders := "?, ?, ?, ?, ?, ?"
	args := []interface{}{word.HindiWord, word.EnglishMeaning, word.ParentID, word.Level, word.Pronunciation, word.ExampleSentence}
	if sp.hasImageURL {
		columns += ", image_url"
		placeholders += ", ?"
		args = append(args, word.ImageURL)
	}

	query := r.store.db.Rebind(fmt.Sprintf(`
		INSERT INTO words (%s)
		VALUES (%s)
		ON CONFLICT (hindi_word, %s) DO NOTHING
		RETURNING id
	`, columns, placeholders, sp.parentFK))

	err := r.store.db.QueryRowxContext(ctx, query, args...).Scan(&word.ID)
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return false, storageError("failed to create word", err)
	}

	existing, err := r.FindByParent(ctx, word.HindiWord, word.ParentID)
	if err != nil {
		return false, err
	}
	word.ID = existing.ID
	return false, nil
}

// Count returns the number of stored words
func (r *WordRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.store.db.GetContext(ctx, &n, "SELECT COUNT(*) FROM words"); err != nil {
		return 0, storageError("failed to count words", err)
	}
	return n, nil
}
