package excel

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/xuri/excelize/v2"

	"github.com/example/hindivocab/internal/database"
	"github.com/example/hindivocab/internal/logger"
	"github.com/example/hindivocab/internal/seed"
	"github.com/example/hindivocab/internal/testutil"
	"github.com/example/hindivocab/pkg/models"
)

var header = []interface{}{"parent", "hindi_word", "english_meaning", "level", "pronunciation", "example_sentence", "image_url", "order"}

func writeWorkbook(c *qt.C, rows [][]interface{}) string {
	f := excelize.NewFile()
	defer f.Close()

	for i, row := range append([][]interface{}{header}, rows...) {
		cellName, err := excelize.CoordinatesToCellName(1, i+1)
		c.Assert(err, qt.IsNil)
		r := row
		c.Assert(f.SetSheetRow("Sheet1", cellName, &r), qt.IsNil)
	}

	path := filepath.Join(c.TempDir(), "words.xlsx")
	c.Assert(f.SaveAs(path), qt.IsNil)
	return path
}

func TestImportWords_ExcelLessons(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()
	store := testutil.NewStore(t, models.VariantLesson)
	importer := NewImporter(seed.New(store, logger.NewNop()))

	path := writeWorkbook(c, [][]interface{}{
		{"Lesson 4: Fruit", "सेब", "Apple", 1, "seb", "", "", 4},
		{"Lesson 4: Fruit", "केला", "Banana", 1, "kela", "केला पीला है।", "", ""},
		{"Lesson 5: Travel", "रेलगाड़ी", "Train", 2, "relgaadi", "", "", ""},
		{"Lesson 4: Fruit", "", "Mango", 1, "", "", "", ""},
		{"Lesson 4: Fruit", "आम", "Mango", "two", "", "", "", ""},
		{},
	})

	config := DefaultImportConfig()
	config.FilePath = path
	result, err := importer.ImportWords(ctx, config)
	c.Assert(err, qt.IsNil)
	c.Assert(result.TotalProcessed, qt.Equals, 5)
	c.Assert(result.Skipped, qt.Equals, 3)
	c.Assert(result.Errors, qt.DeepEquals, []string{
		`Row 4: lesson "Lesson 5: Travel" does not exist and has no order`,
		"Row 5: hindi word cannot be empty",
		`Row 6: invalid level "two"`,
	})
	c.Assert(result.Seed, qt.DeepEquals, seed.Result{ParentsCreated: 1, WordsCreated: 2})

	lesson, err := database.NewLessonRepository(store).FindByName(ctx, "Lesson 4: Fruit")
	c.Assert(err, qt.IsNil)
	c.Assert(lesson.Order, qt.Equals, 4)

	words, err := database.NewWordRepository(store).ListByParent(ctx, lesson.ID)
	c.Assert(err, qt.IsNil)
	c.Assert(words, qt.HasLen, 2)
	c.Assert(*words[1].ExampleSentence, qt.Equals, "केला पीला है।")

	// Importing the same file again adds nothing
	result, err = importer.ImportWords(ctx, config)
	c.Assert(err, qt.IsNil)
	c.Assert(result.Seed, qt.DeepEquals, seed.Result{ParentsSkipped: 1, WordsSkipped: 2})
}

func TestImportWords_CSVCategories(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()
	store := testutil.NewStore(t, models.VariantCategory)
	seeder := seed.New(store, logger.NewNop())
	_, err := seeder.EnsureSeeded(ctx)
	c.Assert(err, qt.IsNil)

	path := filepath.Join(t.TempDir(), "family.csv")
	data := "parent,hindi_word,english_meaning,level,pronunciation,example_sentence,image_url\n" +
		"Family,माँ,Mother,1,maa,,https://example.com/family/mother.jpg\n" +
		"Family,पिता,Father,1,pita\n" +
		"Numbers,एक,One,1,ek\n"
	c.Assert(os.WriteFile(path, []byte(data), 0600), qt.IsNil)

	config := DefaultImportConfig()
	config.FilePath = path
	result, err := NewImporter(seeder).ImportWords(ctx, config)
	c.Assert(err, qt.IsNil)
	c.Assert(result.Errors, qt.HasLen, 0)
	c.Assert(result.Seed, qt.DeepEquals, seed.Result{ParentsSkipped: 2, WordsCreated: 2, WordsSkipped: 1})

	family, err := database.NewCategoryRepository(store).FindByName(ctx, "Family")
	c.Assert(err, qt.IsNil)
	words, err := database.NewWordRepository(store).ListByParent(ctx, family.ID)
	c.Assert(err, qt.IsNil)
	c.Assert(words, qt.HasLen, 2)
	c.Assert(*words[0].ImageURL, qt.Equals, "https://example.com/family/mother.jpg")
	c.Assert(words[1].ImageURL, qt.IsNil)
}

func TestImportWords_MissingFile(t *testing.T) {
	c := qt.New(t)
	store := testutil.NewStore(t, models.VariantCategory)

	config := DefaultImportConfig()
	config.FilePath = filepath.Join(t.TempDir(), "missing.xlsx")
	_, err := NewImporter(seed.New(store, logger.NewNop())).ImportWords(context.Background(), config)
	c.Assert(err, qt.ErrorMatches, "failed to open Excel file: .*")
}

func TestColumnToIndex(t *testing.T) {
	c := qt.New(t)
	c.Assert(columnToIndex("A"), qt.Equals, 0)
	c.Assert(columnToIndex("h"), qt.Equals, 7)
	c.Assert(columnToIndex("AA"), qt.Equals, 26)
}
