// Package config manages gvc configuration and the .gvc directory
// structure. It handles loading, saving, and initializing the
// repository configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

const (
	GVCDir       = ".gvc"
	ConfigFile   = "config"
	DatabaseFile = "gvc.db"

	// DefaultBranchName is the branch created by init.
	DefaultBranchName = "main"
)

// Config represents the gvc repository configuration.
type Config struct {
	DefaultBranch string   `toml:"default_branch"`
	LogLevel      string   `toml:"log_level"`
	Ignore        []string `toml:"ignore"` // extra ignore patterns for the working-tree scan
	path          string   // path to the .gvc directory
}

// FindGVCRoot finds the .gvc directory by walking up from the given
// directory (the current directory when start is empty).
func FindGVCRoot(start string) (string, error) {
	dir := start
	if dir == "" {
		var err error
		dir, err = os.Getwd()
		if err != nil {
			return "", err
		}
	}

	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	for {
		gvcPath := filepath.Join(dir, GVCDir)
		if info, err := os.Stat(gvcPath); err == nil && info.IsDir() {
			return gvcPath, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not a gvc repository (or any parent up to root)")
		}
		dir = parent
	}
}

// Load loads the configuration from the nearest .gvc directory.
func Load() (*Config, error) {
	gvcPath, err := FindGVCRoot("")
	if err != nil {
		return nil, err
	}
	return LoadFrom(gvcPath)
}

// LoadFrom loads the configuration from a specific .gvc directory.
func LoadFrom(gvcPath string) (*Config, error) {
	configPath := filepath.Join(gvcPath, ConfigFile)
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.DefaultBranch == "" {
		cfg.DefaultBranch = DefaultBranchName
	}
	cfg.path = gvcPath
	return &cfg, nil
}

// Save saves the configuration to disk.
func (c *Config) Save() error {
	configPath := filepath.Join(c.path, ConfigFile)
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(configPath, data, 0644)
}

// GVCPath returns the path to the .gvc directory.
func (c *Config) GVCPath() string {
	return c.path
}

// WorkTree returns the working directory root, the parent of .gvc.
func (c *Config) WorkTree() string {
	return filepath.Dir(c.path)
}

// DatabasePath returns the path to the bbolt database.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.path, DatabaseFile)
}

// Initialize creates a new .gvc directory with initial configuration
// in the given directory (the current directory when dir is empty).
func Initialize(dir string) (*Config, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		dir = cwd
	}

	gvcPath := filepath.Join(dir, GVCDir)

	// Check if already initialized
	if _, err := os.Stat(gvcPath); err == nil {
		return nil, fmt.Errorf("gvc repository already exists")
	}

	if err := os.MkdirAll(gvcPath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create .gvc directory: %w", err)
	}

	cfg := &Config{
		DefaultBranch: DefaultBranchName,
		path:          gvcPath,
	}

	if err := cfg.Save(); err != nil {
		// Cleanup on failure
		os.RemoveAll(gvcPath)
		return nil, err
	}

	return cfg, nil
}
