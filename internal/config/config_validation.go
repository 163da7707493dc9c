// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. It runs after
// defaults are applied, so only values explicitly set to something unusable
// fail here.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.App.ItemLabel) == "" {
		return fmt.Errorf("%w: empty item label", ErrInvalidAppConfigs)
	}

	if strings.TrimSpace(cfg.Prompt.Title) == "" ||
		strings.TrimSpace(cfg.Prompt.Message) == "" ||
		strings.TrimSpace(cfg.Prompt.ConfirmLabel) == "" ||
		strings.TrimSpace(cfg.Prompt.CancelLabel) == "" {
		return fmt.Errorf("%w: prompt texts must not be blank", ErrInvalidPromptConfigs)
	}
	if cfg.Prompt.ConfirmLabel == cfg.Prompt.CancelLabel {
		return fmt.Errorf("%w: confirm and cancel labels are identical", ErrInvalidPromptConfigs)
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	if cfg.UI.StatusTimeout < 0 {
		return fmt.Errorf("%w: negative status timeout", ErrInvalidUIConfigs)
	}

	return nil
}
