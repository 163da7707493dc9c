// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PromptChoice is the outcome of a confirmation prompt.
// The zero value is not a valid choice: a prompt that has not been answered
// yet has no choice at all.
type PromptChoice int

const (
	// Confirmed means the user explicitly activated the destructive option.
	Confirmed PromptChoice = 1

	// Cancelled means the user activated the cancel option or dismissed the
	// prompt any other way.
	Cancelled PromptChoice = 2
)

// Valid reports whether c is one of the two defined choices.
func (c PromptChoice) Valid() bool {
	return c == Confirmed || c == Cancelled
}

func (c PromptChoice) String() string {
	switch c {
	case Confirmed:
		return "confirmed"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}
