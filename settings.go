package digo

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Environments understood by Settings.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"
)

// Settings is the environment driven configuration of a Registry.
type Settings struct {
	Env               string // DIGO_ENV
	LogLevel          string // DIGO_LOG_LEVEL
	RuntimeCycleCheck bool   // DIGO_RUNTIME_CYCLE_CHECK
}

// LoadSettings reads the given .env files (".env" when none are given) and the
// process environment. Missing files are skipped; variables already set in the
// environment, or by an earlier file, take precedence over later values.
func LoadSettings(envFiles ...string) Settings {
	files := envFiles
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		// Non-fatal: each file is optional
		_ = godotenv.Load(file)
	}

	return Settings{
		Env:               env("DIGO_ENV", EnvTest),
		LogLevel:          env("DIGO_LOG_LEVEL", "info"),
		RuntimeCycleCheck: envBool("DIGO_RUNTIME_CYCLE_CHECK", true),
	}
}

// Options converts the settings into registry options.
func (s Settings) Options() ([]Option, error) {
	logger, err := s.logger()
	if err != nil {
		return nil, err
	}
	return []Option{
		WithLogger(logger),
		WithRuntimeCycleCheck(s.RuntimeCycleCheck),
	}, nil
}

func (s Settings) logger() (*zap.Logger, error) {
	var cfg zap.Config
	switch s.Env {
	case EnvProduction:
		cfg = zap.NewProductionConfig()
	case EnvDevelopment:
		cfg = zap.NewDevelopmentConfig()
	case EnvTest, "":
		return zap.NewNop(), nil
	default:
		return nil, fmt.Errorf("unknown environment %q", s.Env)
	}

	level, err := zap.ParseAtomicLevel(s.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", s.LogLevel, err)
	}
	cfg.Level = level

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return logger, nil
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
