package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/imageseal/imageseal/internal/util/validate"
)

// Config holds the application configuration.
type Config struct {
	// Region is the EC2 region to operate in.
	Region string `yaml:"region"`

	// KeyPair is the name of an existing key pair injected into
	// instances launched during sealing.
	KeyPair string `yaml:"key_pair"`

	// RoleARN, when set, makes the tool assume the given cross-account
	// role instead of using the ambient credential chain.
	RoleARN     string `yaml:"role_arn"`
	SessionName string `yaml:"session_name"`

	// DefaultTags are applied to every resource the tool creates.
	DefaultTags map[string]string `yaml:"default_tags"`

	Verbose bool `yaml:"verbose"`
}

const defaultSessionName = "imageseal"

// Load reads the configuration from a YAML file, applies environment
// overrides and defaults, and validates the result. An empty path
// yields a config built from environment and defaults alone.
func Load(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
		}
	}

	// Environment wins over the file.
	if region := os.Getenv("IMAGESEAL_REGION"); region != "" {
		cfg.Region = region
	}
	if cfg.Region == "" {
		cfg.Region = os.Getenv("AWS_DEFAULT_REGION")
	}
	if role := os.Getenv("IMAGESEAL_ROLE_ARN"); role != "" {
		cfg.RoleARN = role
	}

	if cfg.SessionName == "" {
		cfg.SessionName = defaultSessionName
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration for errors that would otherwise
// surface mid-run as provider rejections.
func (c *Config) Validate() error {
	if c.Region == "" {
		return fmt.Errorf("region is required (set region in the config file or IMAGESEAL_REGION)")
	}
	for k, v := range c.DefaultTags {
		if _, err := validate.TagKey(k); err != nil {
			return fmt.Errorf("default tag %q: %w", k, err)
		}
		if _, err := validate.TagValue(v); err != nil {
			return fmt.Errorf("default tag %q value: %w", k, err)
		}
	}
	return nil
}
