package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variable names read by ApplyEnv.
const (
	EnvAPIKey       = "GOOGLE_API_KEY"
	EnvFallbackKeys = "GOOGLE_API_KEY_FALLBACKS"
	EnvModel        = "GEMINI_MODEL"
	EnvAddr         = "NOTESCRAFT_ADDR"
	EnvConfigPath   = "NOTESCRAFT_CONFIG"
)

// Default returns a validated Config with every default applied.
func Default() *Config {
	cfg := &Config{}
	_ = cfg.Validate()
	return cfg
}

// Load reads a YAML config file, overlays the environment and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

// ApplyEnv copies credentials and overrides from the process environment.
func (c *Config) ApplyEnv() {
	c.Gemini.APIKey = os.Getenv(EnvAPIKey)
	if v := os.Getenv(EnvFallbackKeys); v != "" {
		c.Gemini.FallbackKeys = strings.Split(v, ",")
	}
	if v := os.Getenv(EnvModel); v != "" {
		c.Gemini.Model = v
	}
	if v := os.Getenv(EnvAddr); v != "" {
		c.Server.Addr = v
	}
}

// LoadDotEnv loads variables from the given .env files (".env" when none are
// given) without overriding variables already set.
func LoadDotEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		return fmt.Errorf("load env: %w", err)
	}
	return nil
}
