package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPrefix = "GoPro"
	appName       = "lapsecopy"
)

// Config is assembled from defaults, an optional YAML file, LAPSECOPY_*
// environment variables and finally command-line flags.
type Config struct {
	Mountpoint string `yaml:"-"`
	DestDir    string `yaml:"dest,omitempty"`
	Prefix     string `yaml:"prefix,omitempty"`
	DryRun     bool   `yaml:"-"`
	Verbose    bool   `yaml:"verbose,omitempty"`
	AssumeYes  bool   `yaml:"-"`
	Strict     bool   `yaml:"strict,omitempty"`
	Plain      bool   `yaml:"plain,omitempty"`
}

func Default() Config {
	dest, err := os.Getwd()
	if err != nil {
		dest = "."
	}
	return Config{
		DestDir: dest,
		Prefix:  DefaultPrefix,
	}
}

// DefaultPath returns the config file location used when --config is not given.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName, "config.yaml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", appName, "config.yaml")
}

// LoadFile overlays the YAML file at path onto cfg. A missing file is only
// an error when required is set.
func LoadFile(cfg *Config, path string, required bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return nil
		}
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func (c *Config) ApplyEnv() {
	if v := envOrEmpty("LAPSECOPY_DEST"); v != "" {
		c.DestDir = v
	}
	if v := envOrEmpty("LAPSECOPY_PREFIX"); v != "" {
		c.Prefix = v
	}
	if envTruthy("LAPSECOPY_VERBOSE") {
		c.Verbose = true
	}
	if envTruthy("LAPSECOPY_STRICT") {
		c.Strict = true
	}
	if envTruthy("LAPSECOPY_PLAIN") {
		c.Plain = true
	}
}

func (c Config) Validate() error {
	if c.Mountpoint == "" {
		return errors.New("mountpoint is required")
	}
	if c.DestDir == "" {
		return errors.New("destination is required")
	}
	if c.Prefix == "" {
		return errors.New("prefix must not be empty")
	}
	if strings.ContainsAny(c.Prefix, `/\`) || c.Prefix == "." || c.Prefix == ".." {
		return fmt.Errorf("invalid prefix %q", c.Prefix)
	}
	return nil
}

func envOrEmpty(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func envTruthy(key string) bool {
	val := strings.TrimSpace(strings.ToLower(os.Getenv(key)))
	return val == "1" || val == "true" || val == "yes" || val == "y"
}
