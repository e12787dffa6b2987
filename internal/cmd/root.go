package cmd

import (
	"strconv"

	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/example/hindivocab/internal/config"
)

// Flags shared by every command. Each one can also be set through the
// environment variable of the same name (DATABASE_URL for --database-url).
var commonFlags = map[string]cobraflags.Flag{
	config.KeySchemaVariant: &cobraflags.StringFlag{
		Name:  config.KeySchemaVariant,
		Value: config.DefaultSchemaVariant,
		Usage: "Schema variant to serve (category or lesson)",
	},
	config.KeyDatabaseDriver: &cobraflags.StringFlag{
		Name:  config.KeyDatabaseDriver,
		Value: config.DefaultDatabaseDriver,
		Usage: "Database driver (sqlite3 or postgres)",
	},
	config.KeyDatabaseURL: &cobraflags.StringFlag{
		Name:  config.KeyDatabaseURL,
		Value: "",
		Usage: "Database location: SQLite file path or PostgreSQL connection string (default data/hindi_learning_<variant>.db)",
	},
	config.KeyLogMode: &cobraflags.StringFlag{
		Name:  config.KeyLogMode,
		Value: config.DefaultLogMode,
		Usage: "Log mode (dev or prod)",
	},
}

// Flags of the HTTP server
var serveFlags = map[string]cobraflags.Flag{
	config.KeyPort: &cobraflags.StringFlag{
		Name:  config.KeyPort,
		Value: strconv.Itoa(config.DefaultPort),
		Usage: "HTTP port",
	},
	config.KeyReseedInterval: &cobraflags.StringFlag{
		Name:  config.KeyReseedInterval,
		Value: "0s",
		Usage: "Re-run seeding on this interval while serving (0 disables)",
	},
	config.KeyCORSOrigins: &cobraflags.StringFlag{
		Name:  config.KeyCORSOrigins,
		Value: config.DefaultCORSOrigins,
		Usage: "Comma separated list of allowed CORS origins",
	},
}

// NewRootCommand builds the hindivocab command tree.
// Running it without a subcommand starts the server.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hindivocab",
		Short: "Hindi vocabulary API",
		Long: `Serves a Hindi vocabulary dataset grouped by category or by lesson.

Available subcommands:
  serve   - Seed the store and start the HTTP API (default)
  seed    - Seed the store and exit
  import  - Load words from an Excel or CSV file`,
		SilenceUsage: true,
		RunE:         serveCommand,
	}

	registerFlags(rootCmd, commonFlags, serveFlags)

	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newSeedCommand())
	rootCmd.AddCommand(newImportCommand())
	return rootCmd
}

func registerFlags(cmd *cobra.Command, flagSets ...map[string]cobraflags.Flag) {
	for _, flags := range flagSets {
		cobraflags.RegisterMap(cmd, flags)
	}
}

// loadConfig reads .env, the environment and the command's flags
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	if err := config.LoadDotEnv(); err != nil {
		return config.Config{}, err
	}

	v := viper.New()
	config.Setup(v)
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return config.Config{}, err
	}
	return config.Load(v)
}
