// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// CoffeeList terminal screen and the delete hooks wired in main.
//
// The Msg* constants are the human-readable outcome strings that are both
// shown in the status line and written into log entries. Keeping them in one
// place keeps the wording identical on screen and in the log file.
package app

const (
	// MsgDeleting is reported when the user confirmed the delete prompt.
	MsgDeleting = "Ok, deleting"

	// MsgCanceling is reported when the user cancelled or dismissed the
	// delete prompt.
	MsgCanceling = "Ok, canceling the delete request"

	// MsgCopied is shown after the item label was copied to the clipboard.
	MsgCopied = "Copied"

	// MsgPromptUnavailable prefixes the status line when the confirmation
	// prompt could not be presented.
	MsgPromptUnavailable = "Cannot ask for confirmation"

	// MsgCopyFailed prefixes the status line when the clipboard write failed.
	MsgCopyFailed = "Copy failed"
)
