package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/pathkit/pkg/pathkit"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// Environment variables overlaid by ApplyEnv.
const (
	EnvSeparator  = "PATHKIT_SEPARATOR"
	EnvIgnoreCase = "PATHKIT_IGNORE_CASE"
	EnvVerbose    = "PATHKIT_VERBOSE"
)

type CopyConfig struct {
	Overwrite     bool `yaml:"overwrite"`
	CreateDstPath bool `yaml:"create_dst_path"`
	Verify        bool `yaml:"verify"`
}

type Config struct {
	Separator                 string     `yaml:"separator"`
	CaseInsensitiveExtensions bool       `yaml:"case_insensitive_extensions"`
	Copy                      CopyConfig `yaml:"copy"`
	DirMode                   string     `yaml:"dir_mode,omitempty"`
	Verbose                   bool       `yaml:"verbose"`
}

const ConfigFileName = "pathkit.yaml"

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{Separator: pathkit.StrategyAuto}
}

// Load reads ConfigFileName from dir.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads a config file from an explicit path. Keys missing from the
// file keep their Default values.
func LoadFile(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", pathkit.ErrInvalidConfig, configPath, err)
	}
	return cfg, nil
}

// LoadEnvFile loads variables from a .env file without overriding variables
// that are already set. An empty path means ".env" in the working directory,
// which may be absent.
func LoadEnvFile(path string) error {
	if path == "" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load .env: %w", err)
		}
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overlays environment variables onto c. lookup is usually os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvSeparator); ok && v != "" {
		c.Separator = v
	}
	if err := envBool(lookup, EnvIgnoreCase, &c.CaseInsensitiveExtensions); err != nil {
		return err
	}
	return envBool(lookup, EnvVerbose, &c.Verbose)
}

func envBool(lookup func(string) (string, bool), key string, dst *bool) error {
	v, ok := lookup(key)
	if !ok || v == "" {
		return nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return fmt.Errorf("%w: %s=%q is not a boolean", pathkit.ErrInvalidConfig, key, v)
	}
	*dst = b
	return nil
}

func (c *Config) dirPerm() (fs.FileMode, error) {
	if c.DirMode == "" {
		return pathkit.DefaultDirPerm, nil
	}
	mode, err := strconv.ParseUint(strings.TrimPrefix(c.DirMode, "0o"), 8, 32)
	if err != nil || mode == 0 || mode > 0o777 {
		return 0, fmt.Errorf("%w: dir_mode %q must be an octal permission such as 0755",
			pathkit.ErrInvalidConfig, c.DirMode)
	}
	return fs.FileMode(mode), nil
}

// Options converts c into pathkit.Options. FileSystem and Logger are left
// for the caller to set.
func (c *Config) Options() (pathkit.Options, error) {
	strategy, err := pathkit.StrategyByName(c.Separator)
	if err != nil {
		return pathkit.Options{}, fmt.Errorf("%w: separator: %w", pathkit.ErrInvalidConfig, err)
	}
	perm, err := c.dirPerm()
	if err != nil {
		return pathkit.Options{}, err
	}
	return pathkit.Options{
		Separator:                 strategy,
		CaseInsensitiveExtensions: c.CaseInsensitiveExtensions,
		DirPerm:                   perm,
	}, nil
}

// CopyOptions returns the configured copy defaults.
func (c *Config) CopyOptions() pathkit.CopyOptions {
	return pathkit.CopyOptions{
		CreateDstPath: c.Copy.CreateDstPath,
		Overwrite:     c.Copy.Overwrite,
		Verify:        c.Copy.Verify,
	}
}
