// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package prompt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-coffee-list/internal/logger"
	"github.com/MKhiriev/go-coffee-list/models"
)

// Default option labels.
const (
	DefaultConfirmLabel = "Yes"
	DefaultCancelLabel  = "Cancel"
)

// Confirmer creates confirmation prompts on a single presentation surface.
type Confirmer struct {
	surface      Surface
	confirmLabel string
	cancelLabel  string
	log          *logger.Logger
}

// Option configures a [Confirmer].
type Option func(*Confirmer)

// WithLabels overrides the option labels. Empty values keep the defaults.
func WithLabels(confirm, cancel string) Option {
	return func(c *Confirmer) {
		if strings.TrimSpace(confirm) != "" {
			c.confirmLabel = confirm
		}
		if strings.TrimSpace(cancel) != "" {
			c.cancelLabel = cancel
		}
	}
}

// WithLogger sets the logger used at the callback boundary.
func WithLogger(log *logger.Logger) Option {
	return func(c *Confirmer) {
		if log != nil {
			c.log = log
		}
	}
}

// NewConfirmer returns a Confirmer bound to surface. A nil surface is
// accepted; every Confirm call then fails with [ErrPresentationUnavailable].
func NewConfirmer(surface Surface, opts ...Option) *Confirmer {
	c := &Confirmer{
		surface:      surface,
		confirmLabel: DefaultConfirmLabel,
		cancelLabel:  DefaultCancelLabel,
		log:          logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Confirm asks the user to confirm a destructive action.
//
// It creates a fresh prompt, moves it to awaiting-response and hands it to
// the surface. It does not wait for the answer: exactly one of hooks runs,
// once, when the user responds. The returned prompt is never resolved at the
// time Confirm returns unless the surface resolved it during Show.
//
// Errors:
//   - [ErrInvalidPromptText] if title or message is blank;
//   - [ErrPresentationUnavailable] if the surface cannot display the prompt.
//     No hook ever runs for a failed call.
func (c *Confirmer) Confirm(title, message string, hooks Hooks) (*Prompt, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(message) == "" {
		return nil, ErrInvalidPromptText
	}
	if c.surface == nil {
		return nil, ErrPresentationUnavailable
	}

	p := newPrompt(title, message, c.options(), hooks, c.log)
	p.await()

	if err := c.surface.Show(p); err != nil {
		p.detach()
		c.log.Warn().Err(err).Str("prompt_id", p.ID().String()).Msg("prompt not shown")
		if errors.Is(err, ErrPresentationUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrPresentationUnavailable, err)
	}

	c.log.Debug().
		Str("prompt_id", p.ID().String()).
		Str("title", title).
		Msg("prompt shown")

	return p, nil
}

func (c *Confirmer) options() []models.PromptOption {
	return []models.PromptOption{
		{Label: c.confirmLabel, Style: models.OptionDestructive, Choice: models.Confirmed},
		{Label: c.cancelLabel, Style: models.OptionCancel, Choice: models.Cancelled},
	}
}
