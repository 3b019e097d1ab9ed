package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	ErrNoCredentials      = errors.New("no cloudflare credentials configured")
	ErrPartialCredentials = errors.New("api key and email must be set together")
)

// Credentials selects how the Cloudflare client authenticates. A token is
// preferred; the legacy key+email pair is accepted when both are present.
type Credentials struct {
	APIToken string `yaml:"api_token"`
	APIKey   string `yaml:"api_key"`
	Email    string `yaml:"email"`
}

type Config struct {
	Credentials Credentials `yaml:"credentials"`
}

// Load reads the optional YAML config file, then applies environment
// overrides. Environment variables always win over file values.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if v := os.Getenv("CLOUDFLARE_API_TOKEN"); v != "" {
		cfg.Credentials.APIToken = v
	}
	if v := os.Getenv("CLOUDFLARE_API_KEY"); v != "" {
		cfg.Credentials.APIKey = v
	}
	if v := os.Getenv("CLOUDFLARE_EMAIL"); v != "" {
		cfg.Credentials.Email = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	creds := c.Credentials
	if creds.APIToken != "" {
		return nil
	}
	if creds.APIKey == "" && creds.Email == "" {
		return ErrNoCredentials
	}
	if creds.APIKey == "" || creds.Email == "" {
		return ErrPartialCredentials
	}
	return nil
}
