package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/example/hindivocab/internal/database"
	"github.com/example/hindivocab/pkg/models"
)

// Configuration keys. Each key doubles as a command flag name and,
// upper-cased with dashes turned into underscores, as an environment variable.
const (
	KeySchemaVariant  = "schema-variant"
	KeyDatabaseDriver = "database-driver"
	KeyDatabaseURL    = "database-url"
	KeyPort           = "port"
	KeyLogMode        = "log-mode"
	KeyReseedInterval = "reseed-interval"
	KeyCORSOrigins    = "cors-origins"
)

// Default values
const (
	DefaultSchemaVariant  = "category"
	DefaultDatabaseDriver = database.DriverSQLite
	DefaultPort           = 5000
	DefaultLogMode        = "dev"
	DefaultCORSOrigins    = "*"
)

// DefaultDatabaseURL returns the SQLite file used when no database URL is set.
// Each variant gets its own file.
func DefaultDatabaseURL(v models.Variant) string {
	return fmt.Sprintf("data/hindi_learning_%s.db", v)
}

// Config holds the process configuration
type Config struct {
	Variant        models.Variant
	DatabaseDriver string
	DatabaseURL    string
	Port           int
	LogMode        string
	ReseedInterval time.Duration // zero disables periodic reseeding
	CORSOrigins    []string
}

// LoadDotEnv loads variables from .env style files into the environment.
// Missing files are ignored; variables already set are kept.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return nil
}

// Setup prepares v to read configuration from the environment with defaults
func Setup(v *viper.Viper) {
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeySchemaVariant, DefaultSchemaVariant)
	v.SetDefault(KeyDatabaseDriver, DefaultDatabaseDriver)
	v.SetDefault(KeyPort, DefaultPort)
	v.SetDefault(KeyLogMode, DefaultLogMode)
	v.SetDefault(KeyReseedInterval, "0s")
	v.SetDefault(KeyCORSOrigins, DefaultCORSOrigins)
}

// Load reads and validates the configuration from v
func Load(v *viper.Viper) (Config, error) {
	variant, err := models.ParseVariant(v.GetString(KeySchemaVariant))
	if err != nil {
		return Config{}, err
	}

	interval, err := time.ParseDuration(strings.TrimSpace(v.GetString(KeyReseedInterval)))
	if err != nil {
		return Config{}, fmt.Errorf("invalid %s: %w", KeyReseedInterval, err)
	}

	cfg := Config{
		Variant:        variant,
		DatabaseDriver: strings.ToLower(strings.TrimSpace(v.GetString(KeyDatabaseDriver))),
		DatabaseURL:    DefaultDatabaseURL(variant),
		Port:           v.GetInt(KeyPort),
		LogMode:        v.GetString(KeyLogMode),
		ReseedInterval: interval,
		CORSOrigins:    splitList(v.GetString(KeyCORSOrigins)),
	}
	// An explicitly empty URL is kept so that Validate rejects it
	if v.IsSet(KeyDatabaseURL) {
		cfg.DatabaseURL = strings.TrimSpace(v.GetString(KeyDatabaseURL))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the configuration can be used to start the service
func (c Config) Validate() error {
	switch c.DatabaseDriver {
	case database.DriverSQLite, database.DriverPostgres:
	default:
		return fmt.Errorf("unsupported database driver %q", c.DatabaseDriver)
	}
	if c.DatabaseURL == "" {
		return errors.New("database URL required (use --database-url or DATABASE_URL env)")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.ReseedInterval < 0 {
		return fmt.Errorf("invalid %s %s", KeyReseedInterval, c.ReseedInterval)
	}
	for _, origin := range c.CORSOrigins {
		if origin != "*" && !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return fmt.Errorf("invalid CORS origin %q", origin)
		}
	}
	return nil
}

// DatabaseOptions converts the configuration into store options
func (c Config) DatabaseOptions() database.Options {
	return database.Options{
		Driver:  c.DatabaseDriver,
		DSN:     c.DatabaseURL,
		Variant: c.Variant,
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
