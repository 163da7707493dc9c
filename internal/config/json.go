// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON layout of [StructuredConfig].
type StructuredJSONConfig struct {
	App struct {
		ItemLabel string `json:"item_label"`
	} `json:"app,omitempty"`

	Prompt struct {
		Title        string `json:"title"`
		Message      string `json:"message"`
		ConfirmLabel string `json:"confirm_label"`
		CancelLabel  string `json:"cancel_label"`
	} `json:"prompt,omitempty"`

	Log struct {
		File  string `json:"file"`
		Level string `json:"level"`
	} `json:"log,omitempty"`

	UI struct {
		Inline        bool     `json:"inline"`
		NoMouse       bool     `json:"no_mouse"`
		StatusTimeout Duration `json:"status_timeout"`
	} `json:"ui,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			ItemLabel: jsonCfg.App.ItemLabel,
		},
		Prompt: Prompt{
			Title:        jsonCfg.Prompt.Title,
			Message:      jsonCfg.Prompt.Message,
			ConfirmLabel: jsonCfg.Prompt.ConfirmLabel,
			CancelLabel:  jsonCfg.Prompt.CancelLabel,
		},
		Log: Log{
			File:  jsonCfg.Log.File,
			Level: jsonCfg.Log.Level,
		},
		UI: UI{
			Inline:        jsonCfg.UI.Inline,
			NoMouse:       jsonCfg.UI.NoMouse,
			StatusTimeout: time.Duration(jsonCfg.UI.StatusTimeout),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
