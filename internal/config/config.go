// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// Defaults applied to fields left empty by every source.
const (
	DefaultItemLabel     = "Coffee"
	DefaultPromptTitle   = "Are you sure you want to delete?"
	DefaultPromptMessage = "It will be gone for good"
	DefaultConfirmLabel  = "Yes"
	DefaultCancelLabel   = "Cancel"
	DefaultLogLevel      = "info"
	DefaultStatusTimeout = 3 * time.Second
)

// StructuredConfig is the top-level configuration container for the
// go-coffee-list client. It is populated by merging values from environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds what the main screen shows.
	App App `envPrefix:"APP_"`

	// Prompt holds the texts of the delete confirmation prompt.
	Prompt Prompt `envPrefix:"PROMPT_"`

	// Log holds the file logger settings.
	Log Log `envPrefix:"LOG_"`

	// UI holds terminal program settings.
	UI UI `envPrefix:"UI_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds main screen settings.
type App struct {
	// ItemLabel is the text of the single list row.
	// Env: APP_ITEM_LABEL
	ItemLabel string `env:"ITEM_LABEL"`
}

// Prompt holds the confirmation prompt texts.
type Prompt struct {
	// Title is the short imperative question.
	// Env: PROMPT_TITLE
	Title string `env:"TITLE"`

	// Message is the longer explanation below the title.
	// Env: PROMPT_MESSAGE
	Message string `env:"MESSAGE"`

	// ConfirmLabel is the label of the destructive option.
	// Env: PROMPT_CONFIRM_LABEL
	ConfirmLabel string `env:"CONFIRM_LABEL"`

	// CancelLabel is the label of the cancel option.
	// Env: PROMPT_CANCEL_LABEL
	CancelLabel string `env:"CANCEL_LABEL"`
}

// Log holds logger settings.
type Log struct {
	// File is the log file path. Empty means a file next to the executable.
	// Env: LOG_FILE
	File string `env:"FILE"`

	// Level is a zerolog level name (trace, debug, info, warn, error).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// UI holds terminal program settings.
type UI struct {
	// Inline renders in the normal screen buffer instead of the alternate
	// screen.
	// Env: UI_INLINE
	Inline bool `env:"INLINE"`

	// NoMouse disables mouse reporting; clicks outside the prompt then cannot
	// dismiss it.
	// Env: UI_NO_MOUSE
	NoMouse bool `env:"NO_MOUSE"`

	// StatusTimeout is how long the status line stays visible
	// (e.g. "3s"). Zero keeps the default.
	// Env: UI_STATUS_TIMEOUT
	StatusTimeout time.Duration `env:"STATUS_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Defaults fill whatever is still empty. Returns a fully populated
// *StructuredConfig or an error if any source fails to load or the final
// config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return getStructuredConfig(os.Args[1:])
}

func getStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.ItemLabel == "" {
		cfg.App.ItemLabel = DefaultItemLabel
	}
	if cfg.Prompt.Title == "" {
		cfg.Prompt.Title = DefaultPromptTitle
	}
	if cfg.Prompt.Message == "" {
		cfg.Prompt.Message = DefaultPromptMessage
	}
	if cfg.Prompt.ConfirmLabel == "" {
		cfg.Prompt.ConfirmLabel = DefaultConfirmLabel
	}
	if cfg.Prompt.CancelLabel == "" {
		cfg.Prompt.CancelLabel = DefaultCancelLabel
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.UI.StatusTimeout == 0 {
		cfg.UI.StatusTimeout = DefaultStatusTimeout
	}
}
