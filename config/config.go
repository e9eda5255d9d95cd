// Package config loads jregister settings from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all user settings. Zero values in a file fall back to Default.
type Config struct {
	Normalize *bool  `yaml:"normalize"`
	TraceDir  string `yaml:"trace_dir"`
	CachePath string `yaml:"cache_path"`
	Server    Server `yaml:"server"`
}

// Server holds settings for the HTTP API.
type Server struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// Default returns the built-in settings.
func Default() *Config {
	off := false
	return &Config{
		Normalize: &off,
		Server: Server{
			Addr:           ":8080",
			AllowedOrigins: []string{"*"},
		},
	}
}

// NormalizeEnabled reports whether input text is NFC-normalized before
// tokenization. Normalization is opt-in.
func (c *Config) NormalizeEnabled() bool {
	return c.Normalize != nil && *c.Normalize
}

// Load reads path and fills unset fields from Default. An empty path returns
// the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	cfg.merge(&file)
	return cfg, nil
}

func (c *Config) merge(o *Config) {
	if o.Normalize != nil {
		c.Normalize = o.Normalize
	}
	if o.TraceDir != "" {
		c.TraceDir = o.TraceDir
	}
	if o.CachePath != "" {
		c.CachePath = o.CachePath
	}
	if o.Server.Addr != "" {
		c.Server.Addr = o.Server.Addr
	}
	if len(o.Server.AllowedOrigins) > 0 {
		c.Server.AllowedOrigins = o.Server.AllowedOrigins
	}
}

// Save writes cfg to path as YAML.
func Save(path string, cfg *Config) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
