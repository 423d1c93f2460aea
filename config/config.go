// Package config loads and saves the YAML configuration of the matcipher
// command: alphabet, unmapped-symbol policy, key pair and logging.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/katalvlaran/matcipher/alphabet"
	"github.com/katalvlaran/matcipher/cipher"
	"github.com/katalvlaran/matcipher/numeral"
	"github.com/katalvlaran/matcipher/transform"
	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every Validate failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config represents the matcipher configuration.
type Config struct {
	// Alphabet lists the symbols in numeral order; empty means the 77-symbol default.
	Alphabet    string  `yaml:"alphabet,omitempty"`
	Policy      string  `yaml:"policy"`
	TrimPadding bool    `yaml:"trim_padding"`
	KeyCheck    bool    `yaml:"key_check"`
	Key         Key     `yaml:"key"`
	Logging     Logging `yaml:"logging"`
}

// Key holds the encoding key and its inverse as rows.
type Key struct {
	Encode [][]int `yaml:"encode,flow"`
	Decode [][]int `yaml:"decode,flow"`
}

// Logging contains logging configuration.
type Logging struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DefaultConfig returns a working configuration with a 4×4 unimodular key.
func DefaultConfig() *Config {
	return &Config{
		Policy:      numeral.DefaultPolicy.String(),
		TrimPadding: true,
		KeyCheck:    true,
		Key: Key{
			Encode: [][]int{
				{1, 1, 0, 0},
				{0, 1, 1, 0},
				{0, 0, 1, 1},
				{0, 0, 0, 1},
			},
			Decode: [][]int{
				{1, -1, 1, -1},
				{0, 1, -1, 1},
				{0, 0, 1, -1},
				{0, 0, 0, 1},
			},
		},
		Logging: Logging{
			Level:  "info",
			Format: "text",
		},
	}
}

// LoadConfig loads configuration from the specified path.
func LoadConfig(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SaveConfig writes cfg to configPath, creating parent directories.
func SaveConfig(cfg *Config, configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Keys are secrets; keep the file private.
	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks that every section can be turned into runtime values.
func (c *Config) Validate() error {
	if _, err := c.Table(); err != nil {
		return fmt.Errorf("%w: alphabet: %v", ErrInvalid, err)
	}
	if _, err := numeral.ParsePolicy(c.Policy); err != nil {
		return fmt.Errorf("%w: policy: %v", ErrInvalid, err)
	}
	if _, err := c.KeyPair(); err != nil {
		return fmt.Errorf("%w: key: %v", ErrInvalid, err)
	}

	return nil
}

// Table returns the configured correspondence table.
func (c *Config) Table() (*alphabet.Table, error) {
	if c.Alphabet == "" {
		return alphabet.Default(), nil
	}

	return alphabet.FromString(c.Alphabet)
}

// KeyPair builds the configured key pair.
func (c *Config) KeyPair() (*transform.KeyPair, error) {
	enc, err := transform.NewKeyRows(c.Key.Encode)
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	dec, err := transform.NewKeyRows(c.Key.Decode)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	return transform.NewKeyPair(enc, dec)
}

// Cipher builds a cipher from the configuration, logging through logger.
func (c *Config) Cipher(logger *slog.Logger) (*cipher.Cipher, error) {
	tbl, err := c.Table()
	if err != nil {
		return nil, err
	}
	policy, err := numeral.ParsePolicy(c.Policy)
	if err != nil {
		return nil, err
	}
	pair, err := c.KeyPair()
	if err != nil {
		return nil, err
	}

	opts := []cipher.Option{cipher.WithTable(tbl), cipher.WithPolicy(policy)}
	if logger != nil {
		opts = append(opts, cipher.WithLogger(logger))
	}
	if c.TrimPadding {
		opts = append(opts, cipher.WithTrimPadding())
	}
	if c.KeyCheck {
		opts = append(opts, cipher.WithKeyCheck())
	}

	return cipher.New(pair, opts...)
}
