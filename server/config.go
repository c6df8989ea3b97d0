package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds server configuration. Environment variables are read first and
// command-line flags override them.
type Config struct {
	Port          int           `env:"BOWLING_PORT" envDefault:"8080"`
	Addr          string        `env:"BOWLING_ADDR"`
	GameTTL       time.Duration `env:"BOWLING_GAME_TTL" envDefault:"1h"`
	SweepInterval time.Duration `env:"BOWLING_SWEEP_INTERVAL" envDefault:"1m"`
}

func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The server port")
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "The server listen address (overrides -port)")
	fs.DurationVar(&cfg.GameTTL, "game-ttl", cfg.GameTTL, "How long an idle game is kept")
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}
	if cfg.GameTTL <= 0 || cfg.SweepInterval <= 0 {
		return Config{}, fmt.Errorf("game ttl and sweep interval must be positive")
	}
	return cfg, nil
}

func (c Config) ListenAddr() string {
	if c.Addr != "" {
		return c.Addr
	}
	return fmt.Sprintf(":%d", c.Port)
}
