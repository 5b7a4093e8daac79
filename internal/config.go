package internal

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds optional overrides loaded from the config file.
type Config struct {
	// DataDir points at the Cursor User directory to analyze.
	DataDir string `yaml:"data_dir"`
	// RecentLimit caps the recently-opened projects listing.
	RecentLimit int `yaml:"recent_limit"`
}

// DefaultConfigPath returns the default config file location.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".config", "cursor-insight", "config.yaml"), nil
}

// LoadConfig loads the config file at path, or the default location when path
// is empty. A missing file is not an error: it returns (nil, nil).
func LoadConfig(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			return nil, err
		}
		path = defaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return nil, nil
		}
		return nil, &StorageError{Path: path, Op: "read", Err: err}
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &ParseError{Source: "config", Key: path, Err: err}
	}
	return &cfg, nil
}
