// Copyright (c) 2025 Greetcalc Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

// Package config loads the optional greetcalc configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the working directory when no
// explicit path is given.
const FileName = ".greetcalc.yaml"

var timePattern = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}$`)

// Config represents the complete greetcalc configuration
type Config struct {
	Greeter GreeterConfig `yaml:"greeter"`
	Output  OutputConfig  `yaml:"output"`
}

// GreeterConfig holds the default names and clock layout
type GreeterConfig struct {
	GreetName    string `yaml:"greet_name"`
	FarewellName string `yaml:"farewell_name"`
	TimeLayout   string `yaml:"time_layout"`
}

// OutputConfig controls console and log output
type OutputConfig struct {
	Color     bool   `yaml:"color"`
	LogFormat string `yaml:"log_format"`
	Debug     bool   `yaml:"debug"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Greeter: GreeterConfig{
			GreetName:    "World",
			FarewellName: "Alice",
			TimeLayout:   "15:04:05",
		},
		Output: OutputConfig{
			Color:     true,
			LogFormat: "text",
		},
	}
}

// Load loads the configuration from path, or from .greetcalc.yaml in the
// working directory when path is empty. A missing file is not an error:
// the defaults apply.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		path = filepath.Join(cwd, FileName)
	}

	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Greeter.GreetName == "" {
		return fmt.Errorf("greet name is required")
	}

	if c.Greeter.FarewellName == "" {
		return fmt.Errorf("farewell name is required")
	}

	if c.Greeter.TimeLayout == "" {
		return fmt.Errorf("time layout is required")
	}

	// The layout must render a zero-padded HH:MM:SS string.
	sample := time.Date(2000, 1, 2, 3, 4, 5, 0, time.UTC).Format(c.Greeter.TimeLayout)
	if !timePattern.MatchString(sample) {
		return fmt.Errorf("time layout %q does not produce HH:MM:SS output", c.Greeter.TimeLayout)
	}

	switch c.Output.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("log format must be \"text\" or \"json\", got %q", c.Output.LogFormat)
	}

	return nil
}
