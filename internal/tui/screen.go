// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-coffee-list/internal/app"
	"github.com/MKhiriev/go-coffee-list/internal/logger"
	"github.com/MKhiriev/go-coffee-list/internal/prompt"
	"github.com/MKhiriev/go-coffee-list/models"
)

const deleteButton = "Delete"

// screenModel is the single item screen. It owns the modal surface and
// routes all input to the active prompt while one is shown.
type screenModel struct {
	item      models.Item
	title     string
	message   string
	hooks     func(models.Item) prompt.Hooks
	confirmer *prompt.Confirmer
	surface   *modalSurface
	log       *logger.Logger

	copyText      func(string) error
	statusTimeout time.Duration

	status    string
	statusErr bool
	statusSeq int

	focus    int
	focusFor uuid.UUID

	width  int
	height int
	help   help.Model
}

func newScreenModel(opts Options, log *logger.Logger) screenModel {
	surface := newModalSurface()
	confirmer := prompt.NewConfirmer(surface,
		prompt.WithLabels(opts.ConfirmLabel, opts.CancelLabel),
		prompt.WithLogger(log.WithComponent("prompt")),
	)

	onConfirmed, onCancelled := opts.OnConfirmed, opts.OnCancelled
	hooks := func(item models.Item) prompt.Hooks {
		var h prompt.Hooks
		if onConfirmed != nil {
			h.OnConfirmed = func() { onConfirmed(item) }
		}
		if onCancelled != nil {
			h.OnCancelled = func() { onCancelled(item) }
		}
		return h
	}

	return screenModel{
		item:          opts.Item,
		title:         opts.PromptTitle,
		message:       opts.PromptMessage,
		hooks:         hooks,
		confirmer:     confirmer,
		surface:       surface,
		log:           log,
		copyText:      clipboard.WriteAll,
		statusTimeout: opts.StatusTimeout,
		focus:         noFocus,
		help:          help.New(),
	}
}

func (m screenModel) Init() tea.Cmd {
	m.surface.attach()
	return nil
}

func (m screenModel) Update(msg tea.Msg) (screenModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil
	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
			m.statusErr = false
		}
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			return m.setStatus(fmt.Sprintf("%s: %v", app.MsgCopyFailed, msg.err), true)
		}
		return m.setStatus(app.MsgCopied, false)
	case tea.KeyMsg:
		if p, ok := m.activePrompt(); ok {
			return m.updatePromptKey(p, msg)
		}
		return m.updateScreenKey(msg)
	case tea.MouseMsg:
		if p, ok := m.activePrompt(); ok {
			return m.updatePromptMouse(p, msg)
		}
	}

	return m, nil
}

func (m screenModel) updateScreenKey(msg tea.KeyMsg) (screenModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.delete):
		return m.pressDelete()
	case key.Matches(msg, keys.copy):
		return m, m.cmdCopy(m.item.Label)
	}
	return m, nil
}

// pressDelete is the inbound "activate delete" event.
func (m screenModel) pressDelete() (screenModel, tea.Cmd) {
	p, err := m.confirmer.Confirm(m.title, m.message, m.hooks(m.item))
	if err != nil {
		m.log.Error().Err(err).Str("item", m.item.Label).Msg("cannot ask for delete confirmation")
		return m.setStatus(fmt.Sprintf("%s: %v", app.MsgPromptUnavailable, err), true)
	}

	m.log.Debug().Str("item", m.item.Label).Str("prompt_id", p.ID().String()).Msg("delete pressed")
	m.status = ""
	m.statusErr = false
	return m, nil
}

func (m screenModel) updatePromptKey(p *prompt.Prompt, msg tea.KeyMsg) (screenModel, tea.Cmd) {
	m.syncFocus(p)
	n := len(p.Options())

	switch {
	case key.Matches(msg, keys.yes):
		return m.resolve(p, p.Activate(optionIndex(p, models.Confirmed)))
	case key.Matches(msg, keys.no):
		return m.resolve(p, p.Activate(optionIndex(p, models.Cancelled)))
	case key.Matches(msg, keys.back):
		return m.resolve(p, p.Dismiss())
	case key.Matches(msg, keys.right, keys.tab):
		if m.focus == noFocus {
			m.focus = 0
		} else {
			m.focus = (m.focus + 1) % n
		}
	case key.Matches(msg, keys.left, keys.backtab):
		if m.focus == noFocus {
			m.focus = n - 1
		} else {
			m.focus = (m.focus - 1 + n) % n
		}
	case key.Matches(msg, keys.enter, keys.space):
		if m.focus == noFocus {
			return m, nil
		}
		return m.resolve(p, p.Activate(m.focus))
	}

	return m, nil
}

// updatePromptMouse treats a button press outside the modal box as a
// dismissal. Presses inside the box, wheel scrolls and motion are ignored.
func (m screenModel) updatePromptMouse(p *prompt.Prompt, msg tea.MouseMsg) (screenModel, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || !isClickButton(msg.Button) || m.width == 0 || m.height == 0 {
		return m, nil
	}
	m.syncFocus(p)

	box, layout := m.promptLayout(p, m.focus)
	x0, y0, x1, y1 := modalBounds(box, layout, m.width, m.height)
	if msg.X >= x0 && msg.X < x1 && msg.Y >= y0 && msg.Y < y1 {
		return m, nil
	}
	return m.resolve(p, p.Dismiss())
}

func isClickButton(b tea.MouseButton) bool {
	switch b {
	case tea.MouseButtonLeft, tea.MouseButtonMiddle, tea.MouseButtonRight:
		return true
	default:
		return false
	}
}

func (m screenModel) resolve(p *prompt.Prompt, resolved bool) (screenModel, tea.Cmd) {
	if !resolved {
		return m, nil
	}
	m.focus = noFocus

	choice, _ := p.Choice()
	if choice == models.Confirmed {
		return m.setStatus(app.MsgDeleting, false)
	}
	return m.setStatus(app.MsgCanceling, false)
}

// syncFocus resets the focus when a different prompt became active.
func (m *screenModel) syncFocus(p *prompt.Prompt) {
	if m.focusFor != p.ID() {
		m.focusFor = p.ID()
		m.focus = noFocus
	}
}

func (m screenModel) activePrompt() (*prompt.Prompt, bool) {
	return m.surface.active()
}

func (m screenModel) setStatus(text string, isErr bool) (screenModel, tea.Cmd) {
	m.statusSeq++
	m.status = text
	m.statusErr = isErr
	return m, cmdClearStatus(m.statusSeq, m.statusTimeout)
}

func cmdClearStatus(seq int, after time.Duration) tea.Cmd {
	if after <= 0 {
		return nil
	}
	return tea.Tick(after, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

func (m screenModel) cmdCopy(text string) tea.Cmd {
	copyText := m.copyText
	return func() tea.Msg {
		return copiedMsg{err: copyText(text)}
	}
}

// shutdown detaches the surface; prompts still waiting resolve as cancelled.
func (m screenModel) shutdown() {
	if n := m.surface.detach(); n > 0 {
		m.log.Info().Int("dismissed", n).Msg("pending prompts cancelled on exit")
	}
}

func (m screenModel) View() string {
	if p, ok := m.activePrompt(); ok {
		focus := m.focus
		if m.focusFor != p.ID() {
			focus = noFocus
		}
		_, layout := m.promptLayout(p, focus)
		if m.width == 0 || m.height == 0 {
			return layout
		}
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, layout)
	}

	return m.viewScreen()
}

// promptLayout renders the modal box and the same box stacked over its key
// help.
func (m screenModel) promptLayout(p *prompt.Prompt, focus int) (box, layout string) {
	box = renderPrompt(p, focus, m.surface.pending()-1)
	footer := helpStyle.Render(m.help.View(promptHelp))
	return box, stackPrompt(box, footer)
}

func (m screenModel) viewScreen() string {
	width := m.width
	if width == 0 {
		width = 40
	}

	button := buttonStyle.Render(deleteButton)
	inner := width - itemRowStyle.GetHorizontalFrameSize() - appStyle.GetHorizontalFrameSize()
	labelWidth := inner - lipgloss.Width(button)
	if labelWidth < lipgloss.Width(m.item.Label) {
		labelWidth = lipgloss.Width(m.item.Label) + 1
	}
	row := lipgloss.JoinHorizontal(lipgloss.Center,
		itemTextStyle.Width(labelWidth).Render(m.item.Label),
		button,
	)
	row = itemRowStyle.Render(row)

	var b strings.Builder
	b.WriteString(row)
	b.WriteString("\n\n")
	if m.status != "" {
		if m.statusErr {
			b.WriteString(errorStyle.Render(m.status))
		} else {
			b.WriteString(m.status)
		}
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(screenHelp)))

	body := appStyle.Render(b.String())
	if m.height == 0 {
		return body
	}
	return lipgloss.PlaceVertical(m.height, lipgloss.Center, body)
}
