package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Settings are the runtime knobs read from the environment.
type Settings struct {
	Theme         string        `env:"CAREBOOK_THEME"          envDefault:"default"`
	LogFile       string        `env:"CAREBOOK_LOG_FILE"`
	Mouse         bool          `env:"CAREBOOK_MOUSE"          envDefault:"true"`
	SubmitTimeout time.Duration `env:"CAREBOOK_SUBMIT_TIMEOUT"`
	BrochureDir   string        `env:"CAREBOOK_BROCHURE_DIR"`
}

// Load reads an optional .env file from the working directory and then
// parses Settings from the environment.
func Load(dotenvFiles ...string) (Settings, error) {
	if err := godotenv.Load(dotenvFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Settings{}, fmt.Errorf("load .env: %w", err)
	}
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	if s.SubmitTimeout <= 0 {
		s.SubmitTimeout = SubmitTimeout
	}
	return s, nil
}
