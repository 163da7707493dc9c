package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid main screen settings
	// (for example, a blank item label).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidPromptConfigs indicates unusable prompt texts
	// (for example, a blank title or identical option labels).
	ErrInvalidPromptConfigs = errors.New("invalid prompt configuration")
	// ErrInvalidLogConfigs indicates invalid logger settings
	// (for example, an unknown level name).
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrInvalidUIConfigs indicates invalid terminal settings
	// (for example, a negative status timeout).
	ErrInvalidUIConfigs = errors.New("invalid ui configuration")
)
