// Package config loads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/olivierh59500/dice-roll-go/dice"
)

// Config holds the settings shared by the game and the headless tools.
type Config struct {
	Width          int           `env:"DICE_WIDTH" envDefault:"800"`
	Height         int           `env:"DICE_HEIGHT" envDefault:"600"`
	TPS            int           `env:"DICE_TPS" envDefault:"60"`
	Seed           int64         `env:"DICE_SEED" envDefault:"0"`
	RollDuration   time.Duration `env:"DICE_ROLL_DURATION" envDefault:"3s"`
	DieSize        float64       `env:"DICE_SIZE" envDefault:"160"`
	WallPadding    float64       `env:"DICE_WALL_PADDING" envDefault:"10"`
	ReservedBottom float64       `env:"DICE_RESERVED_BOTTOM" envDefault:"100"`
	LogLevel       slog.Level    `env:"DICE_LOG_LEVEL" envDefault:"info"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses and validates the configuration.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the settings for values the simulation cannot use.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Width, c.Height))
	}
	if c.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps %d must be positive", c.TPS))
	}
	if c.RollDuration <= 0 {
		errs = append(errs, fmt.Errorf("roll duration %v must be positive", c.RollDuration))
	}
	if len(errs) == 0 {
		if err := c.Arena().Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}
	return nil
}

// Arena converts the window settings into simulation bounds.
func (c Config) Arena() dice.Arena {
	return dice.Arena{
		Width:          float64(c.Width),
		Height:         float64(c.Height),
		Padding:        c.WallPadding,
		ReservedBottom: c.ReservedBottom,
		Size:           c.DieSize,
	}
}

// Tick returns the frame length at the configured rate.
func (c Config) Tick() time.Duration {
	return time.Second / time.Duration(c.TPS)
}

// Logger builds a text logger on stderr at the configured level.
func (c Config) Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: c.LogLevel}))
}

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
