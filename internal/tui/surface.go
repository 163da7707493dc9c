// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"sync"

	"github.com/MKhiriev/go-coffee-list/internal/prompt"
)

// modalSurface is the prompt.Surface backed by the running Bubble Tea
// program. Prompts are queued and the screen renders and feeds input to the
// oldest unresolved one.
type modalSurface struct {
	mu       sync.Mutex
	attached bool
	queue    prompt.Queue
}

var _ prompt.Surface = (*modalSurface)(nil)

func newModalSurface() *modalSurface {
	return &modalSurface{}
}

// Show implements prompt.Surface.
func (s *modalSurface) Show(p *prompt.Prompt) error {
	if s == nil {
		return prompt.ErrPresentationUnavailable
	}
	s.mu.Lock()
	attached := s.attached
	s.mu.Unlock()
	if !attached {
		return fmt.Errorf("%w: ui program is not running", prompt.ErrPresentationUnavailable)
	}

	s.queue.Push(p)
	return nil
}

// attach marks the surface as able to display prompts. The screen calls it
// from Init, once the program owns the terminal.
func (s *modalSurface) attach() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attached = true
}

// detach stops accepting prompts and cancels the ones still waiting: leaving
// the program is a dismissal.
func (s *modalSurface) detach() int {
	s.mu.Lock()
	s.attached = false
	s.mu.Unlock()
	return s.queue.DismissAll()
}

func (s *modalSurface) active() (*prompt.Prompt, bool) {
	return s.queue.Active()
}

func (s *modalSurface) pending() int {
	return s.queue.Len()
}
