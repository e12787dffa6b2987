package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/hindivocab/internal/seed"
)

func newSeedCommand() *cobra.Command {
	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert the built-in vocabulary and exit",
		RunE:  seedCommand,
	}

	registerFlags(seedCmd, commonFlags)
	return seedCmd
}

func seedCommand(cmd *cobra.Command, _ []string) error {
	a, err := bootstrap(cmd.Context(), cmd)
	if err != nil {
		return err
	}
	defer a.close()

	res, err := seed.New(a.store, a.log).EnsureSeeded(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to seed store: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d created, %d already present; words: %d created, %d already present\n",
		a.cfg.Variant, res.ParentsCreated, res.ParentsSkipped, res.WordsCreated, res.WordsSkipped)
	return nil
}
