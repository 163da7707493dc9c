// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package prompt

import "sync"

// Queue holds the prompts a surface has accepted, oldest first.
//
// Overlapping Confirm calls are not merged and not rejected: every prompt is
// queued, the oldest unresolved one is the active prompt and is the only one
// that should receive input. When it resolves the next one becomes active.
type Queue struct {
	mu    sync.Mutex
	items []*Prompt
}

// Push appends p. Nil and already resolved prompts are ignored.
func (q *Queue) Push(p *Prompt) {
	if p == nil || p.Resolved() {
		return
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = append(q.items, p)
}

// Active returns the oldest unresolved prompt.
func (q *Queue) Active() (*Prompt, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.prune()
	if len(q.items) == 0 {
		return nil, false
	}
	return q.items[0], true
}

// Len returns the number of unresolved prompts.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.prune()
	return len(q.items)
}

// DismissAll cancels every queued prompt, oldest first. It is used when the
// surface goes away, so that no prompt is left without an answer.
func (q *Queue) DismissAll() int {
	q.mu.Lock()
	items := q.items
	q.items = nil
	q.mu.Unlock()

	n := 0
	for _, p := range items {
		if p.Dismiss() {
			n++
		}
	}
	return n
}

func (q *Queue) prune() {
	kept := q.items[:0]
	for _, p := range q.items {
		if !p.Resolved() {
			kept = append(kept, p)
		}
	}
	for i := len(kept); i < len(q.items); i++ {
		q.items[i] = nil
	}
	q.items = kept
}
