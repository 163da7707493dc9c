// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPromptChoice(t *testing.T) {
	var zero PromptChoice
	assert.False(t, zero.Valid())
	assert.Equal(t, "unknown", zero.String())

	assert.True(t, Confirmed.Valid())
	assert.True(t, Cancelled.Valid())
	assert.NotEqual(t, Confirmed, Cancelled)
	assert.Equal(t, "confirmed", Confirmed.String())
	assert.Equal(t, "cancelled", Cancelled.String())
}

func TestPromptState_String(t *testing.T) {
	assert.Equal(t, "idle", PromptIdle.String())
	assert.Equal(t, "awaiting_response", PromptAwaitingResponse.String())
	assert.Equal(t, "resolved", PromptResolved.String())
	assert.Equal(t, "unknown", PromptState(42).String())
}

func TestOptionStyle_String(t *testing.T) {
	assert.Equal(t, "default", OptionDefault.String())
	assert.Equal(t, "destructive", OptionDestructive.String())
	assert.Equal(t, "cancel", OptionCancel.String())
}

func TestAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("v1.0.0", "", "abc123")

	assert.Equal(t, "v1.0.0", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "abc123", info.BuildCommit())
	assert.Equal(t, "Build version: v1.0.0\nBuild date: N/A\nBuild commit: abc123", info.String())

	assert.Equal(t, "Build version: N/A\nBuild date: N/A\nBuild commit: N/A", AppBuildInfo{}.String())
}
