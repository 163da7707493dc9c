// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package prompt

import (
	"sync"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-coffee-list/internal/logger"
	"github.com/MKhiriev/go-coffee-list/models"
)

// Hooks are the two side effects bound to a prompt. Exactly one of them runs,
// once, after the user answers. Nil hooks are skipped.
type Hooks struct {
	OnConfirmed func()
	OnCancelled func()
}

func (h Hooks) forChoice(choice models.PromptChoice) func() {
	if choice == models.Confirmed {
		return h.OnConfirmed
	}
	return h.OnCancelled
}

// Prompt is a single confirmation request. It is created by
// [Confirmer.Confirm] and is safe for concurrent use.
type Prompt struct {
	mu sync.Mutex

	id      uuid.UUID
	title   string
	message string
	options []models.PromptOption
	hooks   Hooks
	log     *logger.Logger

	state  models.PromptState
	choice models.PromptChoice
}

func newPrompt(title, message string, options []models.PromptOption, hooks Hooks, log *logger.Logger) *Prompt {
	return &Prompt{
		id:      newPromptID(),
		title:   title,
		message: message,
		options: options,
		hooks:   hooks,
		log:     log,
		state:   models.PromptIdle,
	}
}

// newPromptID prefers time-ordered v7 ids so prompts sort by creation in logs.
func newPromptID() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}
	return id
}

// ID returns the identifier of this prompt instance.
func (p *Prompt) ID() uuid.UUID {
	return p.id
}

// Title returns the short imperative title.
func (p *Prompt) Title() string {
	return p.title
}

// Message returns the explanatory message.
func (p *Prompt) Message() string {
	return p.message
}

// Options returns a copy of the selectable options: the destructive confirm
// option first, the cancel option second.
func (p *Prompt) Options() []models.PromptOption {
	out := make([]models.PromptOption, len(p.options))
	copy(out, p.options)
	return out
}

// State returns the current lifecycle state.
func (p *Prompt) State() models.PromptState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Choice returns the resolved choice. ok is false until the prompt is
// resolved.
func (p *Prompt) Choice() (choice models.PromptChoice, ok bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != models.PromptResolved {
		return 0, false
	}
	return p.choice, true
}

// Resolved reports whether the prompt reached its terminal state.
func (p *Prompt) Resolved() bool {
	return p.State() == models.PromptResolved
}

// Resolve records the user's answer and runs the matching hook.
//
// Only the first call on an awaiting prompt has an effect; it returns true.
// Calls on an idle or already resolved prompt, or with an invalid choice,
// return false and run nothing.
func (p *Prompt) Resolve(choice models.PromptChoice) bool {
	if !choice.Valid() {
		return false
	}

	p.mu.Lock()
	if p.state != models.PromptAwaitingResponse {
		p.mu.Unlock()
		return false
	}
	p.state = models.PromptResolved
	p.choice = choice
	hook := p.hooks.forChoice(choice)
	p.mu.Unlock()

	p.log.Info().
		Str("prompt_id", p.id.String()).
		Stringer("choice", choice).
		Msg("prompt resolved")

	// hooks run outside the lock so they may inspect the prompt
	if hook != nil {
		hook()
	}
	return true
}

// Activate resolves the prompt with the choice of the option at index.
// Out of range indexes are ignored.
func (p *Prompt) Activate(index int) bool {
	if index < 0 || index >= len(p.options) {
		return false
	}
	return p.Resolve(p.options[index].Choice)
}

// Dismiss resolves the prompt as cancelled. Back actions, clicks outside the
// modal and any other non-confirm exit go through here.
func (p *Prompt) Dismiss() bool {
	return p.Resolve(models.Cancelled)
}

func (p *Prompt) await() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state == models.PromptIdle {
		p.state = models.PromptAwaitingResponse
	}
}

// detach rolls a prompt back from awaiting-response to idle when the surface
// refused to show it. An idle prompt cannot be resolved, so no hook fires for
// a failed Confirm. This is the only way back to idle.
func (p *Prompt) detach() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state == models.PromptAwaitingResponse {
		p.state = models.PromptIdle
	}
}
