// Package config handles the configuration directory, file paths and
// environment settings.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// AppName is the application directory name.
	AppName = "taskctl"

	// TokenFile is the stored bearer token filename.
	TokenFile = "token.json"

	// CacheFile is the task snapshot database filename.
	CacheFile = "cache.db"

	// EnvFile is the optional dotenv file read from the config directory
	// and the working directory.
	EnvFile = ".env"

	// DefaultAPIURL is the backend base URL used when nothing else is set.
	DefaultAPIURL = "http://localhost:8080/api"
)

// Environment variables.
const (
	EnvConfigDir = "TASKCTL_CONFIG_DIR"
	EnvAPIURL    = "TASKCTL_API_URL"
	EnvPassword  = "TASKCTL_PASSWORD"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// APIURL is the backend base URL, without trailing slash.
	APIURL string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool
}

// New creates a new Config.
// If configDir is empty, uses TASKCTL_CONFIG_DIR, then XDG_CONFIG_HOME/taskctl
// or $HOME/.config/taskctl. Dotenv files are loaded from the config directory
// and the working directory; variables already set in the process win.
// If apiURL is empty, uses TASKCTL_API_URL or DefaultAPIURL.
func New(configDir, apiURL string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = os.Getenv(EnvConfigDir)
	}
	if dir == "" {
		dir = DefaultConfigDir()
	}

	if err := loadEnv(filepath.Join(dir, EnvFile), EnvFile); err != nil {
		return nil, err
	}

	if apiURL == "" {
		apiURL = os.Getenv(EnvAPIURL)
	}
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}

	return &Config{
		Dir:    dir,
		APIURL: strings.TrimRight(apiURL, "/"),
	}, nil
}

// loadEnv loads each existing dotenv file. Missing files are skipped.
func loadEnv(paths ...string) error {
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return err
		}
		// godotenv.Load never overrides variables already present.
		if err := godotenv.Load(p); err != nil {
			return err
		}
	}
	return nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// TokenPath returns the path to the stored token file.
func (c *Config) TokenPath() string {
	return filepath.Join(c.Dir, TokenFile)
}

// CachePath returns the path to the task snapshot database.
func (c *Config) CachePath() string {
	return filepath.Join(c.Dir, CacheFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}
