package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	cerr "github.com/saeidalz13/battleship-placement/internal/error"
)

const (
	StageProd = "prod"
	StageDev  = "dev"
)

type Config struct {
	Stage                  string        `env:"STAGE" envDefault:"dev"`
	Port                   int           `env:"PORT" envDefault:"8000"`
	DatabaseURL            string        `env:"DATABASE_URL"`
	MigrationDir           string        `env:"MIGRATION_DIR" envDefault:"file://db/migration"`
	StrictShipLength       bool          `env:"STRICT_SHIP_LENGTH" envDefault:"false"`
	SessionCleanupInterval time.Duration `env:"SESSION_CLEANUP_INTERVAL" envDefault:"20m"`
}

// Load reads .env outside of prod, then the process environment.
func Load() (Config, error) {
	if os.Getenv("STAGE") != StageProd {
		if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load .env: %w", err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, cfg.validate()
}

// Parse builds a Config from environ only.
func Parse(environ map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.Stage != StageProd && c.Stage != StageDev {
		return cerr.ErrInvalidStage(c.Stage)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port out of range: %d", c.Port)
	}
	return nil
}

func (c Config) UsesDatabase() bool {
	return c.DatabaseURL != ""
}
