package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

const ConfigFile = "boards.toml"

const (
	DefaultPort     = 4000
	DefaultIDLength = 6
)

// ID schemes for newly created boards.
const (
	IDSchemeSequence = "sequence"
	IDSchemeNanoID   = "nanoid"
	IDSchemeUUID     = "uuid"
)

// ValidIDSchemes lists the accepted values for ids.scheme.
var ValidIDSchemes = []string{IDSchemeSequence, IDSchemeNanoID, IDSchemeUUID}

// Config holds the server configuration.
type Config struct {
	Server ServerConfig `toml:"server"`
	Log    LogConfig    `toml:"log"`
	IDs    IDsConfig    `toml:"ids"`
	Seed   SeedConfig   `toml:"seed"`
}

// ServerConfig defines the HTTP listener.
type ServerConfig struct {
	Host string `toml:"host,omitempty"`
	Port int    `toml:"port"`
}

// LogConfig defines the logger level and encoding.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// IDsConfig defines how board IDs are generated.
type IDsConfig struct {
	Scheme string `toml:"scheme"`
	Prefix string `toml:"prefix,omitempty"`
	Length int    `toml:"length"`
}

// SeedConfig points at an optional YAML fixture file used instead of the built-in data.
type SeedConfig struct {
	File  string `toml:"file,omitempty"`
	Watch bool   `toml:"watch,omitempty"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Server: ServerConfig{Port: DefaultPort},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		IDs: IDsConfig{
			Scheme: IDSchemeSequence,
			Length: DefaultIDLength,
		},
	}
}

// Load reads configuration from the given file.
// Returns default config if the file doesn't exist.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	// Apply defaults for values explicitly zeroed in the file
	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultPort
	}
	if cfg.IDs.Length <= 0 {
		cfg.IDs.Length = DefaultIDLength
	}
	if cfg.IDs.Scheme == "" {
		cfg.IDs.Scheme = IDSchemeSequence
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Save writes the configuration to the given file.
func (c *Config) Save(path string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	if !c.IsValidIDScheme(c.IDs.Scheme) {
		return fmt.Errorf("invalid ids.scheme %q (must be one of: %s)", c.IDs.Scheme, strings.Join(ValidIDSchemes, ", "))
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d", c.Server.Port)
	}
	return nil
}

// IsValidIDScheme returns true if the scheme is a known ID scheme.
func (c *Config) IsValidIDScheme(scheme string) bool {
	for _, s := range ValidIDSchemes {
		if s == scheme {
			return true
		}
	}
	return false
}

// Addr returns the listen address in host:port form.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
