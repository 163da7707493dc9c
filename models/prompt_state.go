// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PromptState is the lifecycle position of a single prompt instance.
//
// Idle -> AwaitingResponse -> Resolved. Resolved is terminal; a new prompt
// instance is created for every request. AwaitingResponse -> Idle happens
// only when the presentation surface fails to show the prompt; such a prompt
// is never returned to the caller and never resolves.
type PromptState int

const (
	// PromptIdle is the state of a prompt that has not been shown yet.
	PromptIdle PromptState = iota

	// PromptAwaitingResponse is the state of a prompt handed to the
	// presentation surface and waiting for user input.
	PromptAwaitingResponse

	// PromptResolved is the terminal state; the prompt carries a choice.
	PromptResolved
)

func (s PromptState) String() string {
	switch s {
	case PromptIdle:
		return "idle"
	case PromptAwaitingResponse:
		return "awaiting_response"
	case PromptResolved:
		return "resolved"
	default:
		return "unknown"
	}
}
