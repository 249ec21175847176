package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/ink"
)

// loadConfig decodes a TOML brush file on top of the expressive preset.
// Unknown keys are rejected so typos do not silently fall back to defaults.
func loadConfig(path string) (ink.Config, error) {
	cfg := ink.ExpressiveConfig()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return ink.Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return ink.Config{}, fmt.Errorf("%w: unknown keys in %s: %s", ink.ErrInvalidConfig, path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return ink.Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}
