// Package config loads the configuration of the metro command from a YAML
// file.
package config

import (
	"errors"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/rhartert/metro-ls/metro"
)

// DefaultPath is the configuration file read when none is specified.
const DefaultPath = "metro.yml"

// Default returns the configuration used for keys absent from the file.
func Default() *Config {
	return &Config{
		DataFile:    "metro_data.txt",
		Interchange: metro.DefaultInterchange,
		Pricing: PricingConfig{
			AdjacentFare: metro.DefaultPricing.AdjacentFare,
			FarFare:      metro.DefaultPricing.FarFare,
		},
	}
}

// Load reads and validates the configuration file at path. Keys that are
// absent from the file keep their default value. If optional is true, a
// missing file is not an error and the default configuration is returned.
func Load(path string, optional bool) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration against its validation tags.
func Validate(cfg *Config) error {
	v := validator.New()
	return v.Struct(cfg)
}

// MetroPricing returns the pricing to use with metro.Editor.
func (c *Config) MetroPricing() metro.Pricing {
	return metro.Pricing{
		AdjacentFare: c.Pricing.AdjacentFare,
		FarFare:      c.Pricing.FarFare,
	}
}
