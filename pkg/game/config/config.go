// Package config loads player preferences: a YAML file overridden by
// BLACKOUT_* environment variables.
package config

import (
	"errors"
	"io/fs"
	"os"
	"sort"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/samber/oops"
	"gopkg.in/yaml.v3"

	engineinput "blackout/pkg/engine/input"
	"blackout/pkg/game/i18n"
	"blackout/pkg/game/probe"
)

// EnvPrefix is prepended to every environment variable name
const EnvPrefix = "BLACKOUT_"

// Frontends that main knows how to start
const (
	FrontendTUI      = "tui"
	FrontendWindow   = "window"
	FrontendHeadless = "headless"
)

// Config holds the player's preferences
type Config struct {
	Locale       string            `yaml:"locale" env:"LOCALE"`
	Frontend     string            `yaml:"frontend" env:"FRONTEND"`
	Scene        string            `yaml:"scene" env:"SCENE"`
	TickRate     int               `yaml:"tick_rate" env:"TICK_RATE"`
	ShortMessage time.Duration     `yaml:"short_message" env:"SHORT_MESSAGE"`
	LongMessage  time.Duration     `yaml:"long_message" env:"LONG_MESSAGE"`
	LogFile      string            `yaml:"log_file" env:"LOG_FILE"`
	Bindings     map[string]string `yaml:"bindings"`
}

// Default returns the preferences used when nothing is configured
func Default() Config {
	return Config{
		Locale:       i18n.DefaultLocale,
		Frontend:     FrontendTUI,
		TickRate:     30,
		ShortMessage: 2 * time.Second,
		LongMessage:  3 * time.Second,
		LogFile:      "blackout.log",
	}
}

var current = Default()

// Current returns the preferences most recently applied
func Current() Config {
	return current
}

// Load reads path (a missing file is not an error) and then applies
// environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()
	errs := oops.In("config").With("path", path)

	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return cfg, errs.Wrapf(err, "reading preferences")
		default:
			if err := yaml.Unmarshal(b, &cfg); err != nil {
				return cfg, errs.Wrapf(err, "decoding preferences")
			}
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return cfg, errs.Wrapf(err, "parsing environment")
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	errs := oops.In("config")
	switch c.Frontend {
	case FrontendTUI, FrontendWindow, FrontendHeadless:
	default:
		return errs.Errorf("unknown frontend %q", c.Frontend)
	}
	if c.TickRate <= 0 {
		return errs.Errorf("tick_rate must be positive, got %d", c.TickRate)
	}
	for name := range c.Bindings {
		if _, ok := engineinput.ActionFromName(name); !ok {
			return errs.Errorf("unknown action %q in bindings", name)
		}
	}
	return nil
}

// TickInterval is the duration of one simulation step
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}

// Apply pushes the preferences into the packages that use them and makes
// them the Current config. c is validated again since callers may have
// overridden fields after Load.
func Apply(c Config) error {
	if err := c.validate(); err != nil {
		return err
	}
	if err := i18n.SetLocale(c.Locale); err != nil {
		return oops.In("config").Wrapf(err, "setting locale")
	}
	if c.ShortMessage > 0 {
		probe.ShortMessage = c.ShortMessage
	}
	if c.LongMessage > 0 {
		probe.LongMessage = c.LongMessage
	}

	names := make([]string, 0, len(c.Bindings))
	for name := range c.Bindings {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		action, ok := engineinput.ActionFromName(name)
		if !ok {
			continue
		}
		engineinput.SetSingleBinding(action, c.Bindings[name])
	}

	current = c
	return nil
}
