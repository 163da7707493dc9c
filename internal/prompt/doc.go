// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package prompt implements the confirmation prompt that guards destructive
// actions.
//
// A [Confirmer] creates one independent [Prompt] per request, hands it to a
// presentation [Surface] and returns without waiting. The user's answer is
// delivered later through exactly one of the caller's [Hooks]. Every
// dismissal path other than the confirm option resolves to
// [models.Cancelled].
//
// Overlapping requests are queued (see [Queue]): each gets its own prompt and
// its own hooks, and only the oldest unresolved prompt receives input.
package prompt
