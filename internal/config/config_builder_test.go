// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs yields the
// defaults.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)

	assert.Equal(t, DefaultItemLabel, cfg.App.ItemLabel)
	assert.Equal(t, DefaultPromptTitle, cfg.Prompt.Title)
	assert.Equal(t, DefaultPromptMessage, cfg.Prompt.Message)
	assert.Equal(t, DefaultConfirmLabel, cfg.Prompt.ConfirmLabel)
	assert.Equal(t, DefaultCancelLabel, cfg.Prompt.CancelLabel)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.Equal(t, DefaultStatusTimeout, cfg.UI.StatusTimeout)
	assert.False(t, cfg.UI.Inline)
	assert.False(t, cfg.UI.NoMouse)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourceWins verifies that non-zero fields of later configs
// override earlier ones while zero fields keep earlier values.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{ItemLabel: "Tea"}, Log: Log{Level: "debug"}},
		&StructuredConfig{App: App{ItemLabel: "Milk"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "Milk", cfg.App.ItemLabel)
	assert.Equal(t, "debug", cfg.Log.Level)
}

// TestBuild_ValidationFailure verifies that an invalid merged config is
// rejected.
func TestBuild_ValidationFailure(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Log: Log{Level: "chatty"}})

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidLogConfigs)
}

// ── withEnv / withFlags ───────────────────────────────────────────────────────

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_ITEM_LABEL": "env-item"})

	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())

	require.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
	assert.Equal(t, "env-item", b.configs[0].App.ItemLabel)
}

// TestWithEnv_SetsErrorOnBadValue verifies that a bad variable is recorded.
func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	setEnvVars(t, map[string]string{"UI_NO_MOUSE": "perhaps"})

	b := newConfigBuilder().withEnv()
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// TestWithFlags_AppendsConfig verifies the fluent interface and parsing.
func TestWithFlags_AppendsConfig(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags([]string{"-item", "flag-item"}))

	require.Len(t, b.configs, 1)
	assert.Equal(t, "flag-item", b.configs[0].App.ItemLabel)
}

// TestWithFlags_SetsErrorOnUnknownFlag verifies that parse errors are kept.
func TestWithFlags_SetsErrorOnUnknownFlag(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-nope"})
	assert.Error(t, b.err)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoOp_WhenNoPathSet verifies that withJSON does nothing when
// no config has a JSONFilePath.
func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	assert.Same(t, b, b.withJSON())

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithJSON_UsesLastPath verifies that when multiple configs have a
// JSONFilePath, the last non-empty one wins.
func TestWithJSON_UsesLastPath(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.ItemLabel = "last-wins"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: "/nonexistent/first.json"},
		&StructuredConfig{JSONFilePath: path},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "last-wins", b.configs[2].App.ItemLabel)
}

// TestWithJSON_SetsError_WhenFileNotFound verifies that a missing file path
// sets b.err.
func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})
	b.withJSON()

	assert.Error(t, b.err)
}

// ── getStructuredConfig ───────────────────────────────────────────────────────

// TestGetStructuredConfig_Priority verifies env < flags < JSON.
func TestGetStructuredConfig_Priority(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Prompt.Title = "json-title"
	payload.UI.StatusTimeout = Duration(7 * time.Second)
	path := writeTempJSONConfig(t, payload)

	setEnvVars(t, map[string]string{
		"APP_ITEM_LABEL": "env-item",
		"PROMPT_TITLE":   "env-title",
		"PROMPT_MESSAGE": "env-message",
		"LOG_LEVEL":      "warn",
	})

	cfg, err := getStructuredConfig([]string{
		"-c", path,
		"-item", "flag-item",
		"-title", "flag-title",
	})
	require.NoError(t, err)

	assert.Equal(t, "flag-item", cfg.App.ItemLabel)
	assert.Equal(t, "json-title", cfg.Prompt.Title)
	assert.Equal(t, "env-message", cfg.Prompt.Message)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 7*time.Second, cfg.UI.StatusTimeout)
	assert.Equal(t, DefaultConfirmLabel, cfg.Prompt.ConfirmLabel)
}

// TestGetStructuredConfig_Defaults verifies the stock configuration.
func TestGetStructuredConfig_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, err := getStructuredConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, "Coffee", cfg.App.ItemLabel)
	assert.Equal(t, "Are you sure you want to delete?", cfg.Prompt.Title)
	assert.Equal(t, "It will be gone for good", cfg.Prompt.Message)
}
