// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package prompt

import "errors"

var (
	// ErrPresentationUnavailable is returned by [Confirmer.Confirm] when the
	// prompt cannot be shown, e.g. there is no active terminal or the UI
	// program is not running. It is the only runtime failure of Confirm.
	ErrPresentationUnavailable = errors.New("presentation surface unavailable")

	// ErrInvalidPromptText is returned when the title or the message is
	// empty. The surface is not touched in that case.
	ErrInvalidPromptText = errors.New("prompt title and message must not be empty")
)
