// Package config loads the anchor CLI configuration.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// FileName is the configuration file looked up in the working directory.
const FileName = "anchor.yaml"

// Output modes.
const (
	OutputMarkup = "markup"
	OutputYAML   = "yaml"
)

// Config holds the CLI settings.
type Config struct {
	Verbose bool   `koanf:"verbose"`
	Output  string `koanf:"output"`
	Data    string `koanf:"data"`
}

// Load layers defaults, the config file, ANCHOR_ environment variables and
// explicitly set flags, in that order. An empty path means FileName when it
// exists.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]any{
		"verbose": false,
		"output":  OutputMarkup,
		"data":    "",
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	explicit := path != ""
	if !explicit {
		path = FileName
	}
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	} else if explicit {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}

	if err := k.Load(env.Provider("ANCHOR_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "ANCHOR_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the output mode.
func (c *Config) Validate() error {
	switch c.Output {
	case OutputMarkup, OutputYAML:
		return nil
	default:
		return fmt.Errorf("unknown output %q, want %s or %s", c.Output, OutputMarkup, OutputYAML)
	}
}
