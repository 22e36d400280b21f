package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Convert  ConvertConfig  `yaml:"convert"`
	Defaults DefaultsConfig `yaml:"defaults"`
}

// ConvertConfig holds the ffmpeg conversion parameters
type ConvertConfig struct {
	InputExt  string `yaml:"input_ext"`  // extension of files to discover
	OutputExt string `yaml:"output_ext"` // extension of the audio output
	Codec     string `yaml:"codec"`      // audio codec passed to -c:a
	Quality   string `yaml:"quality"`    // quality level passed to -q:a
}

// DefaultsConfig holds default values overridable per run
type DefaultsConfig struct {
	Concurrency   int  `yaml:"concurrency"`    // 0 means one worker per file
	KeepOriginals bool `yaml:"keep_originals"` // skip deleting sources on success
}

// DefaultConfig returns configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Convert: ConvertConfig{
			InputExt:  ".mp4",
			OutputExt: ".m4a",
			Codec:     "aac",
			Quality:   "2",
		},
		Defaults: DefaultsConfig{
			Concurrency:   0,
			KeepOriginals: false,
		},
	}
}

// Validate checks the loaded values for obvious mistakes.
func (c *Config) Validate() error {
	if c.Convert.InputExt == "" || c.Convert.InputExt[0] != '.' {
		return fmt.Errorf("convert.input_ext must start with a dot, got %q", c.Convert.InputExt)
	}
	if c.Convert.OutputExt == "" || c.Convert.OutputExt[0] != '.' {
		return fmt.Errorf("convert.output_ext must start with a dot, got %q", c.Convert.OutputExt)
	}
	if c.Convert.InputExt == c.Convert.OutputExt {
		return fmt.Errorf("input and output extensions are both %q", c.Convert.InputExt)
	}
	if c.Convert.Codec == "" {
		return fmt.Errorf("convert.codec must not be empty")
	}
	if c.Defaults.Concurrency < 0 {
		return fmt.Errorf("defaults.concurrency must be >= 0, got %d", c.Defaults.Concurrency)
	}
	return nil
}

// AppDir returns the application directory (~/.audiorip)
func AppDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".audiorip"
	}
	return filepath.Join(home, ".audiorip")
}

// ConfigPath returns the config file path
func ConfigPath() string {
	return filepath.Join(AppDir(), "config.yaml")
}

// Load reads config from file, returns default if not exists
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// LoadDefault loads config from default path
func LoadDefault() (*Config, error) {
	return Load(ConfigPath())
}

// Save writes config to file
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
