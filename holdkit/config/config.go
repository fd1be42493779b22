// Package config loads demo settings from TOML files.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/mvaleri/go-holdkit/holdkit/clock"
	"github.com/mvaleri/go-holdkit/holdkit/input"
	"github.com/mvaleri/go-holdkit/holdkit/input/action"
)

// Config holds demo settings.
type Config struct {
	HoldDurationMS int               `koanf:"hold_duration_ms"` // 0 means the trigger default
	TickRateHz     int               `koanf:"tick_rate_hz"`     // 0 means clock.DefaultTickRate
	Action         string            `koanf:"action"`           // action name the hold trigger watches
	Keymap         map[string]string `koanf:"keymap"`           // key name -> action name overrides
}

// Load reads configuration from the given path, or from the default
// search path when path is empty. An explicit path must be loadable;
// default search-path entries are skipped when missing, so the zero
// config means defaults everywhere.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
	} else {
		// Later files win
		for _, p := range defaultPaths() {
			if _, err := os.Stat(p); err != nil {
				continue
			}
			if err := k.Load(file.Provider(p), toml.Parser()); err != nil {
				return nil, fmt.Errorf("loading %s: %w", p, err)
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaultPaths() []string {
	paths := []string{}
	if p, err := xdg.SearchConfigFile("holdkit/config.toml"); err == nil {
		paths = append(paths, p)
	}
	paths = append(paths, "holdkit.toml")
	return paths
}

// HoldDuration returns the configured hold duration, or zero to let
// the trigger apply its own default.
func (c *Config) HoldDuration() time.Duration {
	return time.Duration(c.HoldDurationMS) * time.Millisecond
}

// TickRate returns the configured tick rate with the default applied.
func (c *Config) TickRate() int {
	if c.TickRateHz <= 0 {
		return clock.DefaultTickRate
	}
	return c.TickRateHz
}

// ResolveAction returns the action the demo's hold trigger watches.
func (c *Config) ResolveAction() (action.Action, error) {
	if c.Action == "" {
		return action.ButtonA, nil
	}
	act, ok := action.Parse(c.Action)
	if !ok {
		return 0, fmt.Errorf("unknown action %q", c.Action)
	}
	return act, nil
}

// ResolveKeymap merges the configured key overrides over the default
// key mappings.
func (c *Config) ResolveKeymap() (map[string]action.Action, error) {
	keymap := make(map[string]action.Action, len(input.DefaultKeyMap)+len(c.Keymap))
	for key, act := range input.DefaultKeyMap {
		keymap[key] = act
	}
	for key, name := range c.Keymap {
		act, ok := action.Parse(name)
		if !ok {
			return nil, fmt.Errorf("keymap %q: unknown action %q", key, name)
		}
		keymap[key] = act
	}
	return keymap, nil
}
