package database

import (
	"fmt"

	"github.com/example/hindivocab/pkg/models"
)

// schemaSpec names the parent table and the words foreign key for a variant
type schemaSpec struct {
	variant     models.Variant
	parentTable string
	parentFK    string
	hasImageURL bool
}

var (
	categorySpec = schemaSpec{
		variant:     models.VariantCategory,
		parentTable: "categories",
		parentFK:    "category_id",
		hasImageURL: true,
	}
	lessonSpec = schemaSpec{
		variant:     models.VariantLesson,
		parentTable: "lessons",
		parentFK:    "lesson_id",
	}
)

func specFor(v models.Variant) (schemaSpec, error) {
	switch v {
	case models.VariantCategory:
		return categorySpec, nil
	case models.VariantLesson:
		return lessonSpec, nil
	default:
		return schemaSpec{}, fmt.Errorf("unknown schema variant %q", v)
	}
}

// ddl returns the CREATE statements for the variant on the given driver
func (sp schemaSpec) ddl(driver string) []string {
	idColumn := "id INTEGER PRIMARY KEY AUTOINCREMENT"
	if driver == DriverPostgres {
		idColumn = "id SERIAL PRIMARY KEY"
	}

	var parent string
	switch sp.variant {
	case models.VariantLesson:
		parent = fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS lessons (
			%s,
			name TEXT NOT NULL UNIQUE,
			description TEXT,
			lesson_order INTEGER NOT NULL UNIQUE
		)`, idColumn)
	default:
		// Category names are not unique
		parent = fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS categories (
			%s,
			name TEXT NOT NULL,
			description TEXT
		)`, idColumn)
	}

	imageColumn := ""
	if sp.hasImageURL {
		imageColumn = "image_url TEXT,"
	}

	words := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS words (
			%s,
			hindi_word TEXT NOT NULL,
			english_meaning TEXT NOT NULL,
			%s
			%s INTEGER NOT NULL REFERENCES %s(id),
			level INTEGER NOT NULL,
			pronunciation TEXT,
			example_sentence TEXT,
			UNIQUE(hindi_word, %s)
		)`, idColumn, imageColumn, sp.parentFK, sp.parentTable, sp.parentFK)

	return []string{
		parent,
		words,
		"CREATE INDEX IF NOT EXISTS idx_words_level ON words(level)",
		fmt.Sprintf("CREATE INDEX IF NOT EXISTS idx_words_%s ON words(%s)", sp.parentFK, sp.parentFK),
	}
}

// wordColumns is the select list mapping a words row onto models.Word
func (sp schemaSpec) wordColumns(alias string) string {
	cols := fmt.Sprintf("%[1]s.id, %[1]s.hindi_word, %[1]s.english_meaning, %[1]s.%[2]s AS parent_id, "+
		"%[1]s.level, %[1]s.pronunciation, %[1]s.example_sentence", alias, sp.parentFK)
	if sp.hasImageURL {
		cols += fmt.Sprintf(", %s.image_url", alias)
	}
	return cols
}
