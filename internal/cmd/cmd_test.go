package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	qt "github.com/frankban/quicktest"
)

func runCommand(args ...string) (string, error) {
	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestSeedCommand_Idempotent(t *testing.T) {
	c := qt.New(t)
	dbPath := filepath.Join(c.TempDir(), "nested", "vocab.db")

	out, err := runCommand("seed", "--schema-variant", "lesson", "--database-url", dbPath, "--log-mode", "prod")
	c.Assert(err, qt.IsNil)
	c.Assert(out, qt.Contains, "lesson: 3 created, 0 already present; words: 10 created, 0 already present")

	out, err = runCommand("seed", "--schema-variant", "lesson", "--database-url", dbPath, "--log-mode", "prod")
	c.Assert(err, qt.IsNil)
	c.Assert(out, qt.Contains, "lesson: 0 created, 3 already present; words: 0 created, 10 already present")
}

func TestSeedCommand_InvalidVariant(t *testing.T) {
	c := qt.New(t)
	dbPath := filepath.Join(c.TempDir(), "vocab.db")

	_, err := runCommand("seed", "--schema-variant", "topic", "--database-url", dbPath)
	c.Assert(err, qt.ErrorMatches, `unknown schema variant "topic".*`)
}

func TestImportCommand_RequiresFile(t *testing.T) {
	c := qt.New(t)

	_, err := runCommand("import")
	c.Assert(err, qt.ErrorMatches, `--file is required`)
}
