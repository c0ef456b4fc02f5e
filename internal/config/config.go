package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
	"ultimate-holdem-server/internal/util"
	"ultimate-holdem-server/pkg/handanalyzer"
	"ultimate-holdem-server/pkg/playable/ultimate"
)

// Config provides configuration for the Ultimate Texas Hold'em server and simulator
type Config struct {
	loaded         bool
	Addr           string     `yaml:"addr" envconfig:"addr"`
	PGDSN          string     `yaml:"pgDsn" envconfig:"pg_dsn"`
	MigrationsPath string     `yaml:"migrationsPath" envconfig:"migrations_path"`
	Table          Table      `yaml:"table"`
	Simulation     Simulation `yaml:"simulation"`
	Log            struct {
		Level             string `yaml:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`
}

// Table holds the table limits
type Table struct {
	StartingBankroll int    `yaml:"startingBankroll" envconfig:"starting_bankroll"`
	MinAnte          int    `yaml:"minAnte" envconfig:"min_ante"`
	MaxAnte          int    `yaml:"maxAnte" envconfig:"max_ante"`
	MinTrips         int    `yaml:"minTrips" envconfig:"min_trips"`
	MaxTrips         int    `yaml:"maxTrips" envconfig:"max_trips"`
	DealerQualifier  string `yaml:"dealerQualifier" envconfig:"dealer_qualifier"`
}

// Options returns validated game options
func (t Table) Options() (ultimate.Options, error) {
	qualifier, err := handanalyzer.CategoryFromString(t.DealerQualifier)
	if err != nil {
		return ultimate.Options{}, err
	}

	opts := ultimate.Options{
		StartingBankroll: t.StartingBankroll,
		MinAnte:          t.MinAnte,
		MaxAnte:          t.MaxAnte,
		MinTrips:         t.MinTrips,
		MaxTrips:         t.MaxTrips,
		DealerQualifier:  qualifier,
	}

	return opts, opts.Validate()
}

// Simulation holds the defaults for simulated sessions
type Simulation struct {
	Hands    int    `yaml:"hands" envconfig:"hands"`
	Ante     int    `yaml:"ante" envconfig:"ante"`
	Trips    int    `yaml:"trips" envconfig:"trips"`
	Seed     int64  `yaml:"seed" envconfig:"seed"`
	Sessions int    `yaml:"sessions" envconfig:"sessions"`
	Strategy string `yaml:"strategy" envconfig:"strategy"`
}

var config Config

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	opts := ultimate.DefaultOptions()

	c := Config{
		Addr:           ":5000",
		PGDSN:          "postgres://postgres@localhost:5432/postgres?sslmode=disable",
		MigrationsPath: "./sql",
		Table: Table{
			StartingBankroll: opts.StartingBankroll,
			MinAnte:          opts.MinAnte,
			MaxAnte:          opts.MaxAnte,
			MinTrips:         opts.MinTrips,
			MaxTrips:         opts.MaxTrips,
			DealerQualifier:  "pair",
		},
		Simulation: Simulation{
			Hands:    100,
			Ante:     10,
			Sessions: 1,
			Strategy: "basic",
		},
	}

	c.Log.Level = "info"
	return c
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// Values are read from the defaults, then the YAML file, then the environment.
// A missing config file or .env file is not an error
func Load() error {
	if err := godotenv.Load(util.Getenv("UTH_ENV_FILE", ".env")); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	cfg := DefaultConfig()

	file, err := os.Open(util.Getenv("UTH_CONFIG_FILE", "config.yaml"))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
	} else {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	}

	if err := envconfig.Process("uth", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}
