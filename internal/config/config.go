// Package config provides configuration management for tidymenu.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/AntoineGS/tidymenu/internal/menu"
)

const (
	appConfigDir  = ".config/tidymenu"
	appConfigFile = "config.yaml"

	// EnvAPIURL overrides api_url when set.
	EnvAPIURL = "TIDYMENU_API_URL"
	// EnvLogLevel overrides log_level when set.
	EnvLogLevel = "LOG_LEVEL"

	defaultAPIURL      = "https://complete-foodi-client-server-l9jv.onrender.com"
	defaultEndpoint    = "/menu"
	defaultTimeout     = 15 * time.Second
	defaultJournalPath = "~/.config/tidymenu/journal.db"
	defaultJournalKeep = 50
)

// Config is the main configuration structure
type Config struct {
	APIURL       string             `yaml:"api_url"`
	MenuEndpoint string             `yaml:"menu_endpoint"`
	LogLevel     string             `yaml:"log_level,omitempty"`
	CardTemplate string             `yaml:"card_template,omitempty"`
	JournalPath  string             `yaml:"journal_path"`
	Allergies    []menu.AllergyRule `yaml:"allergies"`
	Timeout      time.Duration      `yaml:"timeout"`
	JournalKeep  int                `yaml:"journal_keep"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		APIURL:       defaultAPIURL,
		MenuEndpoint: defaultEndpoint,
		Timeout:      defaultTimeout,
		LogLevel:     "info",
		JournalPath:  defaultJournalPath,
		JournalKeep:  defaultJournalKeep,
		Allergies:    menu.DefaultAllergyRules(),
	}
}

// Load reads the configuration file at path on top of the defaults. A
// missing file is not an error: the defaults are returned. Environment
// overrides are applied afterwards.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path) //nolint:gosec // path is from user config, intentional
	switch {
	case errors.Is(err, fs.ErrNotExist):
		slog.Debug("config file not found, using defaults", slog.String("path", path))
	case err != nil:
		return nil, fmt.Errorf("reading config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if len(cfg.Allergies) == 0 {
		cfg.Allergies = menu.DefaultAllergyRules()
	}

	cfg.ApplyEnv(os.Getenv)

	return cfg, nil
}

// ApplyEnv applies environment overrides using getenv.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := strings.TrimSpace(getenv(EnvAPIURL)); v != "" {
		c.APIURL = v
	}
	if v := strings.TrimSpace(getenv(EnvLogLevel)); v != "" {
		c.LogLevel = v
	}
}

// JournalFile returns the expanded journal path. An empty journal_path
// disables the journal and yields "".
func (c *Config) JournalFile() string {
	return ExpandPath(c.JournalPath)
}

// ExpandPath expands ~ and environment variables in a single path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	// Expand ~ to home directory
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home
		}
	}

	return os.ExpandEnv(path)
}

// AppConfigPath returns the path where the app config is stored.
// Returns an empty string if the home directory cannot be determined.
func AppConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, appConfigDir, appConfigFile)
}

// Save writes the config to the specified file path, creating the parent
// directory when needed.
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := marshalYAML(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	content := fmt.Sprintf("# tidymenu configuration\n# %s overrides api_url\n\n%s", EnvAPIURL, string(data))

	// Use 0600 permissions to restrict access to owner only
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// ParseLogLevel converts a level name into a slog.Level. Unknown names map
// to info.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// marshalYAML encodes a value to YAML with 2-space indentation.
func marshalYAML(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	if err := enc.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
