// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-coffee-list/internal/prompt"
	"github.com/MKhiriev/go-coffee-list/models"
)

const noFocus = -1

// renderPrompt draws the modal box for p with the option at focus
// highlighted. waiting is the number of prompts queued behind p.
func renderPrompt(p *prompt.Prompt, focus, waiting int) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(p.Title()))
	b.WriteString("\n\n")
	b.WriteString(promptMessageStyle.Render(p.Message()))
	b.WriteString("\n\n")

	opts := p.Options()
	rendered := make([]string, 0, len(opts))
	for i, opt := range opts {
		rendered = append(rendered, renderOption(opt, i == focus))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, joinWithGap(rendered, "   ")...))

	if waiting > 0 {
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render(pluralWaiting(waiting)))
	}

	return overlayBoxStyle.Render(b.String())
}

func renderOption(opt models.PromptOption, focused bool) string {
	var style lipgloss.Style
	label := opt.Label
	switch opt.Style {
	case models.OptionDestructive:
		style = destructiveStyle
		label = "⚠ " + label
	case models.OptionCancel:
		style = cancelStyle
	default:
		style = defaultOptionStyle
	}
	if focused {
		style = style.Reverse(true)
	}
	return style.Render(label)
}

func joinWithGap(items []string, gap string) []string {
	if len(items) < 2 {
		return items
	}
	out := make([]string, 0, len(items)*2-1)
	for i, item := range items {
		if i > 0 {
			out = append(out, gap)
		}
		out = append(out, item)
	}
	return out
}

func pluralWaiting(n int) string {
	if n == 1 {
		return "1 more prompt waiting"
	}
	return strconv.Itoa(n) + " more prompts waiting"
}

// optionIndex returns the index of the first option with choice, or noFocus.
func optionIndex(p *prompt.Prompt, choice models.PromptChoice) int {
	for i, opt := range p.Options() {
		if opt.Choice == choice {
			return i
		}
	}
	return noFocus
}

// stackPrompt puts the key help under the modal box. The box stays the
// top-left block of the result, which modalBounds relies on.
func stackPrompt(box, footer string) string {
	return lipgloss.JoinVertical(lipgloss.Left, box, footer)
}

// centerOffset mirrors lipgloss.Place for a centred block of size inside
// total cells: the odd cell of the gap goes to the trailing side.
func centerOffset(total, size int) int {
	gap := total - size
	if gap <= 0 {
		return 0
	}
	return gap - int(math.Round(float64(gap)*float64(lipgloss.Center)))
}

// modalBounds reports the cell rectangle box occupies once layout is centred
// on a screen of width x height.
func modalBounds(box, layout string, width, height int) (x0, y0, x1, y1 int) {
	x0 = centerOffset(width, lipgloss.Width(layout))
	y0 = centerOffset(height, lipgloss.Height(layout))
	return x0, y0, x0 + lipgloss.Width(box), y0 + lipgloss.Height(box)
}
