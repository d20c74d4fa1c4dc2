package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrUnknownConfigKey is returned for keys the config file does not define.
var ErrUnknownConfigKey = errors.New("cli: unknown config key")

// Config holds the knobs that may come from a TOML file. Command-line flags
// take precedence over values read from the file.
//
//	verbose           = true
//	lower_bound       = 3
//	upper_bound       = 10
//	pmc_only          = false
//	sterility_pruning = true
//	validate          = true
//	svg               = "out.svg"
type Config struct {
	Verbose          bool   `toml:"verbose"`
	LowerBound       int    `toml:"lower_bound"`
	UpperBound       int    `toml:"upper_bound"`
	PMCOnly          bool   `toml:"pmc_only"`
	SterilityPruning bool   `toml:"sterility_pruning"`
	Validate         bool   `toml:"validate"`
	SVG              string `toml:"svg"`
}

// defaultConfig leaves the upper bound open.
func defaultConfig() Config {
	return Config{UpperBound: -1}
}

// loadConfig reads path over the defaults. An empty path yields the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if extra := md.Undecoded(); len(extra) > 0 {
		keys := make([]string, len(extra))
		for i, k := range extra {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("config %s: %s: %w", path, strings.Join(keys, ", "), ErrUnknownConfigKey)
	}

	return cfg, nil
}

func withConfig(ctx context.Context, c Config) context.Context {
	return context.WithValue(ctx, configKey, c)
}

func configFromContext(ctx context.Context) Config {
	if c, ok := ctx.Value(configKey).(Config); ok {
		return c
	}
	return defaultConfig()
}
