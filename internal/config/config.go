// Package config loads runtime settings from the environment and
// command-line flags.
package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the simulator's settings. Values come from MONTYHALL_*
// environment variables, with flags layered on top.
type Config struct {
	Rounds     int    `env:"MONTYHALL_ROUNDS"      envDefault:"100"`
	Mode       string `env:"MONTYHALL_MODE"        envDefault:"entropy"`
	ServerSeed string `env:"MONTYHALL_SERVER_SEED"`
	ClientSeed string `env:"MONTYHALL_CLIENT_SEED"`
	RoundStart uint64 `env:"MONTYHALL_ROUND_START" envDefault:"1"`
	JSON       bool   `env:"MONTYHALL_JSON"`
	Plain      bool   `env:"MONTYHALL_PLAIN"`
}

// Load reads an optional .env file, then parses the environment.
func Load() (Config, error) {
	// .env is optional; absence falls through to the real environment.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Parse loads the environment, then lets command-line flags override it.
func Parse(fs *flag.FlagSet, args []string) (Config, error) {
	cfg, err := Load()
	if err != nil {
		return Config{}, err
	}

	fs.IntVar(&cfg.Rounds, "n", cfg.Rounds, "number of rounds to play")
	fs.StringVar(&cfg.Mode, "mode", cfg.Mode, "randomness mode: entropy or seeded")
	fs.StringVar(&cfg.ServerSeed, "server-seed", cfg.ServerSeed, "server seed for seeded mode")
	fs.StringVar(&cfg.ClientSeed, "client-seed", cfg.ClientSeed, "client seed for seeded mode")
	fs.Uint64Var(&cfg.RoundStart, "start", cfg.RoundStart, "number of the first round")
	fs.BoolVar(&cfg.JSON, "json", cfg.JSON, "print the full result as JSON")
	fs.BoolVar(&cfg.Plain, "plain", cfg.Plain, "print the table without styling")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
