// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from the process environment using caarlos0/env.
// Fields are mapped via the `env` and `envPrefix` tags of
// [StructuredConfig]; unset variables leave zero values so that later
// sources and defaults can fill them.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.ParseWithOptions(cfg, env.Options{}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
