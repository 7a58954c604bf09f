package config

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/AlenaMolokova/canteen/internal/constants"
	"github.com/caarlos0/env/v11"
)

type Config struct {
	RunAddr       string `env:"RUN_ADDRESS"`
	DatabaseURI   string `env:"DATABASE_URI"`
	TemplatesDir  string `env:"TEMPLATES_DIR"`
	StaticDir     string `env:"STATIC_DIR"`
	MigrationsDir string `env:"MIGRATIONS_DIR"`
}

// NewConfig reads flags first and then the environment, so env values win
// over flags.
func NewConfig() (*Config, error) {
	cfg := &Config{
		RunAddr:       constants.DefaultRunAddr,
		DatabaseURI:   "",
		TemplatesDir:  constants.DefaultTemplatesDir,
		StaticDir:     constants.DefaultStaticDir,
		MigrationsDir: constants.DefaultMigrationsDir,
	}

	flag.StringVar(&cfg.RunAddr, "a", cfg.RunAddr, "server address")
	flag.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "database URI")
	flag.StringVar(&cfg.TemplatesDir, "t", cfg.TemplatesDir, "templates directory")
	flag.StringVar(&cfg.StaticDir, "s", cfg.StaticDir, "static assets directory")
	flag.StringVar(&cfg.MigrationsDir, "m", cfg.MigrationsDir, "migrations directory")
	flag.Parse()

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if cfg.DatabaseURI == "" {
		log.Printf("Error: DATABASE_URI is empty")
		return nil, errors.New("DATABASE_URI is required")
	}

	log.Printf("Config loaded: RunAddr=%s, TemplatesDir=%s, StaticDir=%s, MigrationsDir=%s",
		cfg.RunAddr, cfg.TemplatesDir, cfg.StaticDir, cfg.MigrationsDir)
	return cfg, nil
}
