package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the configuration of an import run
type Config struct {
	Dataset DatasetConfig `yaml:"dataset"`
	Import  ImportConfig  `yaml:"import"`
}

// DatasetConfig locates the dataset on disk
type DatasetConfig struct {
	Dir           string `yaml:"dir"`
	RectangleFile string `yaml:"rectangle_file"`
}

// ImportConfig holds the import pipeline options
type ImportConfig struct {
	MaxImageSideLength int  `yaml:"max_image_side_length"`
	GenerateMirrored   bool `yaml:"generate_mirrored"`
}

// Default returns a configuration with default values
func Default() *Config {
	return &Config{
		Import: ImportConfig{
			MaxImageSideLength: 0, // unbounded
			GenerateMirrored:   false,
		},
	}
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(filename string) error {
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Dataset.Dir == "" {
		return fmt.Errorf("dataset.dir must be set")
	}

	if c.Import.MaxImageSideLength < 0 {
		return fmt.Errorf("import.max_image_side_length must not be negative")
	}

	return nil
}
