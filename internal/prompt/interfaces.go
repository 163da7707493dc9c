// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=interfaces.go -destination=../mock/surface_mock.go -package=mock

package prompt

// Surface is the presentation side of a prompt: something able to display a
// modal to the user and route their input to it.
type Surface interface {
	// Show schedules p for display and returns without waiting for the user.
	// It returns an error (preferably wrapping [ErrPresentationUnavailable])
	// when nothing can be displayed.
	Show(p *Prompt) error
}
