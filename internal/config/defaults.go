// Package config provides configuration loading and defaults for ccguide.
package config

// DefaultConfigDir is the directory holding ccguide's config, cooldown
// marker, log file, and history database.
const DefaultConfigDir = "~/.ccguide"

// DefaultConfigFile is the filename for the JSON config.
const DefaultConfigFile = "config.json"

// DefaultCooldownFile is the filename for the last-suggestion timestamp.
const DefaultCooldownFile = "last_suggestion.txt"

// DefaultLogFile is the filename for the log.
const DefaultLogFile = "assistant.log"

// DefaultDBName is the filename for the SQLite run-history database.
const DefaultDBName = "history.db"

// DefaultDecisionModel is the Gemini model used for the suggest/no-suggest
// classification. Flash-Lite keeps the per-session cost of a "NO" small.
const DefaultDecisionModel = "gemini-2.5-flash-lite"

// DefaultSuggestionModel is the Gemini model used to generate suggestions.
const DefaultSuggestionModel = "gemini-2.5-flash"

// DefaultMinSessionLength is the minimum transcript size, in characters,
// before a session is considered worth analyzing.
const DefaultMinSessionLength = 100

// DefaultSuggestionCooldown is the minimum interval between two positive
// suggest decisions, in seconds.
const DefaultSuggestionCooldown = 300

// DefaultLogLevel is the log level when none is configured.
const DefaultLogLevel = "info"
