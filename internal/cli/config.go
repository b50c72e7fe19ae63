package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// defaultConfigFile is read from the working directory when --config is not given.
const defaultConfigFile = "hillclimb.toml"

// Config is the optional TOML configuration. Command-line flags override it.
//
// Example:
//
//	input   = "input.txt"
//	mode    = "both"
//	verbose = false
//
//	[render]
//	shade = true
type Config struct {
	Input   string       `toml:"input"`
	Mode    string       `toml:"mode"`
	Verbose bool         `toml:"verbose"`
	Render  RenderConfig `toml:"render"`
}

// RenderConfig controls the render command.
type RenderConfig struct {
	// Shade colors cells by distance band; false prints plain letters.
	Shade bool `toml:"shade"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Mode:   "both",
		Render: RenderConfig{Shade: true},
	}
}

// LoadConfig reads path on top of DefaultConfig. An empty path tries
// defaultConfigFile and silently falls back to defaults when it is absent.
// Unknown keys are rejected so typos do not pass unnoticed.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}
