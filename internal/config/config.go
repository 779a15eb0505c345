package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the top-level ccguide configuration.
type Config struct {
	GeminiAPIKey       string `mapstructure:"gemini_api_key" json:"gemini_api_key"`
	EnableSuggestions  bool   `mapstructure:"enable_suggestions" json:"enable_suggestions"`
	MinSessionLength   int    `mapstructure:"min_session_length" json:"min_session_length"`
	SuggestionCooldown int    `mapstructure:"suggestion_cooldown" json:"suggestion_cooldown"`
	DecisionModel      string `mapstructure:"decision_model" json:"decision_model"`
	SuggestionModel    string `mapstructure:"suggestion_model" json:"suggestion_model"`
	LogLevel           string `mapstructure:"log_level" json:"log_level"`

	// Warning is set when the config file existed but could not be read;
	// the returned Config then carries pure defaults. Callers decide
	// whether to log it.
	Warning string `mapstructure:"-" json:"-"`
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default location)
// and returns a Config with all defaults applied. A missing or unreadable
// config file is never an error: suggestions must keep working on pure
// defaults, and only a missing API key is allowed to stop a run (enforced
// by the advisor constructor, not here). Unknown keys in the file are
// ignored.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	// Set defaults. The environment variable is the default for the API
	// key, so a key in the config file wins over the environment.
	v.SetDefault("gemini_api_key", os.Getenv("GEMINI_API_KEY"))
	v.SetDefault("enable_suggestions", true)
	v.SetDefault("min_session_length", DefaultMinSessionLength)
	v.SetDefault("suggestion_cooldown", DefaultSuggestionCooldown)
	v.SetDefault("decision_model", DefaultDecisionModel)
	v.SetDefault("suggestion_model", DefaultSuggestionModel)
	v.SetDefault("log_level", DefaultLogLevel)

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
		v.SetConfigType("json")
	} else {
		v.AddConfigPath(Dir())
		v.SetConfigName("config")
		v.SetConfigType("json")
	}

	var warning string
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			// File exists but is unreadable or malformed. Fall back to
			// defaults so the hook still runs.
			warning = fmt.Sprintf("config file ignored: %v", err)
			v = defaultsOnly()
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	cfg.Warning = warning

	return &cfg, nil
}

// defaultsOnly returns a viper instance carrying only the defaults.
func defaultsOnly() *viper.Viper {
	v := viper.New()
	v.SetDefault("gemini_api_key", os.Getenv("GEMINI_API_KEY"))
	v.SetDefault("enable_suggestions", true)
	v.SetDefault("min_session_length", DefaultMinSessionLength)
	v.SetDefault("suggestion_cooldown", DefaultSuggestionCooldown)
	v.SetDefault("decision_model", DefaultDecisionModel)
	v.SetDefault("suggestion_model", DefaultSuggestionModel)
	v.SetDefault("log_level", DefaultLogLevel)
	return v
}

// Save writes the config back as indented JSON, creating the directory if
// needed. An empty path targets the default config file. The file is
// written 0600 since it holds the API key.
func Save(cfg *Config, path string) error {
	if path == "" {
		path = File()
	} else {
		path = expandPath(path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// CooldownDuration returns the suggestion cooldown as a time.Duration.
func (c *Config) CooldownDuration() time.Duration {
	return time.Duration(c.SuggestionCooldown) * time.Second
}

// APIKeySet reports whether a non-blank Gemini API key is configured.
func (c *Config) APIKeySet() bool {
	return strings.TrimSpace(c.GeminiAPIKey) != ""
}

// Dir returns the expanded ccguide configuration directory.
func Dir() string {
	return expandPath(DefaultConfigDir)
}

// File returns the full path to the default JSON config file.
func File() string {
	return filepath.Join(Dir(), DefaultConfigFile)
}

// CooldownPath returns the full path to the cooldown timestamp file.
func CooldownPath() string {
	return filepath.Join(Dir(), DefaultCooldownFile)
}

// LogPath returns the full path to the log file.
func LogPath() string {
	return filepath.Join(Dir(), DefaultLogFile)
}

// DBPath returns the full path to the SQLite run-history database.
func DBPath() string {
	return filepath.Join(Dir(), DefaultDBName)
}
