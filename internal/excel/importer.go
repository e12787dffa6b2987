package excel

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/example/hindivocab/internal/seed"
	"github.com/example/hindivocab/pkg/models"
)

// ImportConfig defines the import configuration
type ImportConfig struct {
	FilePath              string // Path to the Excel or CSV file
	ParentColumn          string // Column with the category or lesson name
	HindiWordColumn       string // Column with the Hindi word
	EnglishMeaningColumn  string // Column with the English meaning
	LevelColumn           string // Column with the level
	PronunciationColumn   string // Column with the pronunciation
	ExampleSentenceColumn string // Column with the example sentence
	ImageURLColumn        string // Column with the image URL (category variant)
	ParentOrderColumn     string // Column with the lesson order (lesson variant)
	SheetName             string // Name of the sheet to import
	StartRow              int    // The row to start importing from (1-based index)
}

// DefaultImportConfig returns the default import configuration
func DefaultImportConfig() ImportConfig {
	return ImportConfig{
		ParentColumn:          "A",
		HindiWordColumn:       "B",
		EnglishMeaningColumn:  "C",
		LevelColumn:           "D",
		PronunciationColumn:   "E",
		ExampleSentenceColumn: "F",
		ImageURLColumn:        "G",
		ParentOrderColumn:     "H",
		SheetName:             "Sheet1",
		StartRow:              2, // By default, start from the second row (skip header)
	}
}

// ImportResult holds the result of an import operation
type ImportResult struct {
	TotalProcessed int
	Skipped        int
	Errors         []string
	Seed           seed.Result
}

// Importer loads spreadsheet rows into the store through the seeder
type Importer struct {
	seeder *seed.Seeder
}

func NewImporter(seeder *seed.Seeder) *Importer {
	return &Importer{seeder: seeder}
}

// ImportWords imports words from an Excel or CSV file.
// Invalid rows are reported in the result and skipped.
func (im *Importer) ImportWords(ctx context.Context, config ImportConfig) (*ImportResult, error) {
	var (
		rows [][]string
		err  error
	)
	// Check the file extension
	if strings.ToLower(filepath.Ext(config.FilePath)) == ".csv" {
		rows, err = readCSV(config.FilePath)
	} else {
		rows, err = readExcel(config.FilePath, config.SheetName)
	}
	if err != nil {
		return nil, err
	}

	result := &ImportResult{Errors: make([]string, 0)}
	catalog := seed.Catalog{}
	parents := map[string]bool{}

	for i, row := range rows {
		rowNum := i + 1
		// Skip header rows
		if rowNum < config.StartRow || isBlank(row) {
			continue
		}
		result.TotalProcessed++

		parent, word, err := parseRow(row, config)
		if err == nil && !parents[parent.Name] {
			err = im.checkParent(ctx, parent)
		}
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil, err
			}
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", rowNum, err))
			continue
		}

		if !parents[parent.Name] {
			parents[parent.Name] = true
			catalog.Parents = append(catalog.Parents, parent)
		}
		catalog.Words = append(catalog.Words, word)
	}

	res, err := im.seeder.EnsureEntries(ctx, catalog)
	result.Seed = res
	if err != nil {
		return result, fmt.Errorf("failed to store imported words: %w", err)
	}
	return result, nil
}

// checkParent rejects new lessons that have no display order
func (im *Importer) checkParent(ctx context.Context, parent seed.ParentEntry) error {
	if im.seeder.Variant() != models.VariantLesson || parent.Order > 0 {
		return nil
	}
	exists, err := im.seeder.HasParent(ctx, parent.Name)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("lesson %q does not exist and has no order", parent.Name)
	}
	return nil
}

// readExcel returns the rows of one sheet of an Excel file
func readExcel(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}
	return rows, nil
}

// readCSV returns all records of a CSV file
func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // Allow variable number of fields

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV: %w", err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// parseRow extracts a parent and a word from a spreadsheet row
func parseRow(row []string, config ImportConfig) (seed.ParentEntry, seed.WordEntry, error) {
	cell := func(column string) string {
		if column == "" {
			return ""
		}
		if idx := columnToIndex(column); idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	word := seed.WordEntry{
		Parent:          cell(config.ParentColumn),
		HindiWord:       cell(config.HindiWordColumn),
		EnglishMeaning:  cell(config.EnglishMeaningColumn),
		Pronunciation:   cell(config.PronunciationColumn),
		ExampleSentence: cell(config.ExampleSentenceColumn),
		ImageURL:        cell(config.ImageURLColumn),
	}
	parent := seed.ParentEntry{Name: word.Parent}

	switch {
	case word.Parent == "":
		return parent, word, errors.New("parent name cannot be empty")
	case word.HindiWord == "":
		return parent, word, errors.New("hindi word cannot be empty")
	case word.EnglishMeaning == "":
		return parent, word, errors.New("english meaning cannot be empty")
	}

	level, err := strconv.Atoi(cell(config.LevelColumn))
	if err != nil || level < 1 {
		return parent, word, fmt.Errorf("invalid level %q", cell(config.LevelColumn))
	}
	word.Level = level

	if raw := cell(config.ParentOrderColumn); raw != "" {
		order, err := strconv.Atoi(raw)
		if err != nil || order < 1 {
			return parent, word, fmt.Errorf("invalid lesson order %q", raw)
		}
		parent.Order = order
	}

	return parent, word, nil
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// Helper function to convert Excel column letter to index
func columnToIndex(column string) int {
	column = strings.ToUpper(column)
	index := 0
	for i := 0; i < len(column); i++ {
		index = index*26 + int(column[i]-'A'+1)
	}
	return index - 1
}
