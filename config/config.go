package config

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Configuration structure which hold information for configuring the region peaks run
type Configuration struct {
	LogNamespace    string        `envconfig:"LOG_NAMESPACE"`
	RequestTimeout  time.Duration `envconfig:"REQUEST_TIMEOUT"`
	ExcludedRegions []string      `envconfig:"EXCLUDED_REGIONS"`
	OutputFormat    string        `envconfig:"OUTPUT_FORMAT"`
}

var cfg *Configuration

// Get returns the configuration, initialised with default values and overridden by the environment.
// The configuration is only kept once it has been validated.
func Get() (*Configuration, error) {
	if cfg != nil {
		return cfg, nil
	}

	c := &Configuration{
		LogNamespace:    "dp-region-peaks",
		RequestTimeout:  30 * time.Second,
		ExcludedRegions: []string{},
		OutputFormat:    FormatText,
	}

	if err := envconfig.Process("", c); err != nil {
		return c, err
	}

	c.ExcludedRegions = trimCodes(c.ExcludedRegions)

	if err := c.Validate(); err != nil {
		return c, err
	}

	cfg = c
	return cfg, nil
}

// trimCodes strips the whitespace envconfig leaves around comma separated values and drops empty entries
func trimCodes(codes []string) []string {
	trimmed := make([]string, 0, len(codes))
	for _, code := range codes {
		if code = strings.TrimSpace(code); code != "" {
			trimmed = append(trimmed, code)
		}
	}
	return trimmed
}

// Validate checks the values that cannot be expressed through envconfig types
func (config Configuration) Validate() error {
	if config.RequestTimeout <= 0 {
		return errors.Errorf("REQUEST_TIMEOUT must be positive, got %s", config.RequestTimeout)
	}

	switch config.OutputFormat {
	case FormatText, FormatJSON:
	default:
		return errors.Errorf("OUTPUT_FORMAT must be %q or %q, got %q", FormatText, FormatJSON, config.OutputFormat)
	}

	return nil
}

// String is implemented so the config can be logged as JSON.
func (config Configuration) String() string {
	b, _ := json.Marshal(config)
	return string(b)
}
