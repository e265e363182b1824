// Package config holds the settings of the retro-embed command.
//
// Values are layered: defaults, then the YAML file, then RETRO_EMBED_*
// environment variables. Command line flags are applied last by the caller.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"retroembed/internal/image"
)

// DefaultPath is the config file looked up in the working directory.
const DefaultPath = ".retro-embed.yaml"

// EnvPrefix is prepended to every env tag.
const EnvPrefix = "RETRO_EMBED_"

// Config is the retro-embed configuration.
type Config struct {
	// Image is the path of the memory image to read.
	Image string `yaml:"image" env:"IMAGE"`

	// ByteOrder is one of little, big or native.
	ByteOrder string `yaml:"byte_order" env:"BYTE_ORDER"`

	// Verbose enables debug logging on stderr.
	Verbose bool `yaml:"verbose" env:"VERBOSE"`
}

// DefaultConfig reproduces the behaviour of running with no configuration at all.
func DefaultConfig() *Config {
	return &Config{
		Image:     image.DefaultPath,
		ByteOrder: string(image.LittleEndian),
	}
}

// Load reads the YAML file at path over the defaults and applies environment
// overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// defaults
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() error {
	if err := env.ParseWithOptions(c, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("failed to read environment: %w", err)
	}
	return nil
}

// Validate rejects an empty image path or an unknown byte order.
func (c *Config) Validate() error {
	if c.Image == "" {
		return fmt.Errorf("image path is empty")
	}
	if _, err := image.ParseByteOrder(c.ByteOrder); err != nil {
		return err
	}
	return nil
}

// Order returns the parsed byte order. Call Validate first.
func (c *Config) Order() image.ByteOrder {
	order, err := image.ParseByteOrder(c.ByteOrder)
	if err != nil {
		return image.LittleEndian
	}
	return order
}
