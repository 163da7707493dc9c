// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// OptionStyle tells the presentation layer how to render a prompt option.
type OptionStyle int

const (
	// OptionDefault is a neutral option.
	OptionDefault OptionStyle = iota

	// OptionDestructive marks an option that leads to an irreversible
	// action. It must be rendered with a warning affordance.
	OptionDestructive

	// OptionCancel marks the option that aborts the action.
	OptionCancel
)

func (s OptionStyle) String() string {
	switch s {
	case OptionDestructive:
		return "destructive"
	case OptionCancel:
		return "cancel"
	default:
		return "default"
	}
}

// PromptOption is a single selectable answer of a confirmation prompt.
type PromptOption struct {
	// Label is the text shown to the user (e.g. "Yes", "Cancel").
	Label string

	// Style drives rendering; see [OptionStyle].
	Style OptionStyle

	// Choice is the outcome produced when the option is activated.
	Choice PromptChoice
}
