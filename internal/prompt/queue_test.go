// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package prompt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-coffee-list/internal/prompt"
)

func TestQueue_Empty(t *testing.T) {
	var q prompt.Queue

	_, ok := q.Active()
	assert.False(t, ok)
	assert.Zero(t, q.Len())
	assert.Zero(t, q.DismissAll())
}

func TestQueue_IgnoresNilAndResolved(t *testing.T) {
	var q prompt.Queue
	p := newAwaitingPrompt(t, prompt.Hooks{})
	p.Dismiss()

	q.Push(nil)
	q.Push(p)

	assert.Zero(t, q.Len())
}

func TestQueue_FIFO(t *testing.T) {
	var q prompt.Queue
	first := newAwaitingPrompt(t, prompt.Hooks{})
	second := newAwaitingPrompt(t, prompt.Hooks{})
	third := newAwaitingPrompt(t, prompt.Hooks{})
	q.Push(first)
	q.Push(second)
	q.Push(third)

	require.Equal(t, 3, q.Len())

	active, _ := q.Active()
	assert.Same(t, first, active)

	// resolving a queued prompt out of order drops it without changing focus
	second.Dismiss()
	assert.Equal(t, 2, q.Len())
	active, _ = q.Active()
	assert.Same(t, first, active)

	first.Activate(0)
	active, _ = q.Active()
	assert.Same(t, third, active)
}

func TestQueue_DismissAll(t *testing.T) {
	var q prompt.Queue
	recA, recB := &hookRecorder{}, &hookRecorder{}
	a := newAwaitingPrompt(t, recA.hooks())
	b := newAwaitingPrompt(t, recB.hooks())
	q.Push(a)
	q.Push(b)

	assert.Equal(t, 2, q.DismissAll())
	assert.Zero(t, q.Len())
	assert.Equal(t, hookRecorder{cancelled: 1}, *recA)
	assert.Equal(t, hookRecorder{cancelled: 1}, *recB)
}
