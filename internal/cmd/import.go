package cmd

import (
	"errors"
	"fmt"

	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"

	"github.com/example/hindivocab/internal/excel"
	"github.com/example/hindivocab/internal/seed"
)

// Import flags
const (
	fileFlag  = "file"
	sheetFlag = "sheet"
)

var importFlags = map[string]cobraflags.Flag{
	fileFlag: &cobraflags.StringFlag{
		Name:  fileFlag,
		Value: "",
		Usage: "Excel (.xlsx) or CSV file to import (required)",
	},
	sheetFlag: &cobraflags.StringFlag{
		Name:  sheetFlag,
		Value: "Sheet1",
		Usage: "Sheet to read from an Excel file",
	},
}

func newImportCommand() *cobra.Command {
	importCmd := &cobra.Command{
		Use:   "import",
		Short: "Load words from an Excel or CSV file",
		Long: `Reads one word per row and inserts the words and their categories
or lessons that are not stored yet.

Columns: A parent name, B Hindi word, C English meaning, D level,
E pronunciation, F example sentence, G image URL, H lesson order.
The first row is treated as a header.`,
		RunE: importCommand,
	}

	registerFlags(importCmd, commonFlags, importFlags)
	return importCmd
}

func importCommand(cmd *cobra.Command, _ []string) error {
	file := importFlags[fileFlag].GetString()
	if file == "" {
		return errors.New("--file is required")
	}

	a, err := bootstrap(cmd.Context(), cmd)
	if err != nil {
		return err
	}
	defer a.close()

	importCfg := excel.DefaultImportConfig()
	importCfg.FilePath = file
	importCfg.SheetName = importFlags[sheetFlag].GetString()

	importer := excel.NewImporter(seed.New(a.store, a.log))
	result, err := importer.ImportWords(cmd.Context(), importCfg)
	if err != nil && result == nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Processed %d rows, skipped %d\n", result.TotalProcessed, result.Skipped)
	fmt.Fprintf(out, "Words: %d created, %d already present\n", result.Seed.WordsCreated, result.Seed.WordsSkipped)
	for _, e := range result.Errors {
		fmt.Fprintln(out, e)
	}
	return err
}
