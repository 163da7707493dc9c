// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"time"
)

// parseFlags parses configuration flags from args.
//
// Flags:
//
//	-c/-config json file path with configs
//	-item item label
//	-title prompt title
//	-message prompt message
//	-confirm-label destructive option label
//	-cancel-label cancel option label
//	-log-file log file path
//	-log-level log level
//	-inline do not use the alternate screen
//	-no-mouse disable mouse reporting
//	-status-timeout status line timeout (e.g., "3s")
func parseFlags(args []string) (*StructuredConfig, error) {
	var cfg StructuredConfig
	var statusTimeout time.Duration

	fs := flag.NewFlagSet("coffee-list", flag.ContinueOnError)
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.App.ItemLabel, "item", "", "Item label")
	fs.StringVar(&cfg.Prompt.Title, "title", "", "Prompt title")
	fs.StringVar(&cfg.Prompt.Message, "message", "", "Prompt message")
	fs.StringVar(&cfg.Prompt.ConfirmLabel, "confirm-label", "", "Destructive option label")
	fs.StringVar(&cfg.Prompt.CancelLabel, "cancel-label", "", "Cancel option label")
	fs.StringVar(&cfg.Log.File, "log-file", "", "Log file path")
	fs.StringVar(&cfg.Log.Level, "log-level", "", "Log level (trace, debug, info, warn, error)")
	fs.BoolVar(&cfg.UI.Inline, "inline", false, "Render without the alternate screen")
	fs.BoolVar(&cfg.UI.NoMouse, "no-mouse", false, "Disable mouse reporting")
	fs.DurationVar(&statusTimeout, "status-timeout", 0, "Status line timeout (e.g., 3s)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}
	cfg.UI.StatusTimeout = statusTimeout

	return &cfg, nil
}
