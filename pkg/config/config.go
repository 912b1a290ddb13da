// Package config loads bundlesize settings from a YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up in the working directory when none is given.
const DefaultPath = ".bundlesize.yaml"

// DefaultIgnoreFile holds block path patterns, one per line, when present.
const DefaultIgnoreFile = ".bundlesizeignore"

// EnvBundleFilesDir overrides BundleFilesDir when set.
const EnvBundleFilesDir = "BUNDLESIZE_DIR"

// Config holds all bundlesize configuration.
type Config struct {
	// Input
	BundleFilesDir string   `yaml:"bundle_files_dir"`
	IgnoreFiles    []string `yaml:"ignore_files,omitempty"` // patterns matched against report file names
	IgnorePaths    []string `yaml:"ignore_paths,omitempty"` // patterns matched against block paths
	IgnoreFrom     string   `yaml:"ignore_from"`            // ignore file with block path patterns

	// Parsing
	Workers          int    `yaml:"workers"`           // 0 uses one worker per CPU
	MalformedHeaders string `yaml:"malformed_headers"` // fail, skip

	// Output
	Format     string `yaml:"format"`           // text, tree, json, yaml
	Output     string `yaml:"output,omitempty"` // empty writes to stdout
	HumanSizes bool   `yaml:"human_sizes"`

	Debug bool `yaml:"debug"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		BundleFilesDir:   "tmp/bundleSizeDownloads",
		IgnoreFrom:       DefaultIgnoreFile,
		Workers:          1,
		MalformedHeaders: "fail",
		Format:           "text",
	}
}

// Load reads the config file at path over the defaults and applies
// environment overrides. An empty path tries DefaultPath and falls back to
// the defaults when it does not exist; an explicit path must exist.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		// defaults only
	default:
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the configuration to path as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) applyEnvOverrides() {
	if dir := os.Getenv(EnvBundleFilesDir); dir != "" {
		c.BundleFilesDir = dir
	}
}

// Validate checks the configuration for values the analyzer cannot use.
func (c *Config) Validate() error {
	if c.BundleFilesDir == "" {
		return errors.New("bundle_files_dir must not be empty")
	}
	switch c.Format {
	case "", "text", "tree", "json", "yaml":
	default:
		return fmt.Errorf("unknown format %q (want text, tree, json or yaml)", c.Format)
	}
	switch c.MalformedHeaders {
	case "", "fail", "skip":
	default:
		return fmt.Errorf("unknown malformed_headers policy %q (want fail or skip)", c.MalformedHeaders)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	return nil
}
