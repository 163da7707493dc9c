// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal presentation layer: the single item screen, the
// confirmation modal and the Bubble Tea program that hosts them.
package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/MKhiriev/go-coffee-list/internal/logger"
	"github.com/MKhiriev/go-coffee-list/internal/prompt"
	"github.com/MKhiriev/go-coffee-list/models"
)

// Options configure the item screen.
type Options struct {
	Item          models.Item
	PromptTitle   string
	PromptMessage string
	ConfirmLabel  string
	CancelLabel   string

	// OnConfirmed and OnCancelled are bound to every delete prompt. Exactly
	// one of them runs per answered prompt.
	OnConfirmed func(models.Item)
	OnCancelled func(models.Item)

	AltScreen     bool
	Mouse         bool
	StatusTimeout time.Duration
}

// TUI runs the item screen as a Bubble Tea program.
type TUI struct {
	opts      Options
	buildInfo models.AppBuildInfo
	log       *logger.Logger

	isTerminal func() bool
}

// New validates opts and returns a TUI ready to run.
func New(opts Options, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	if log == nil {
		log = logger.Nop()
	}
	if opts.Item.Label == "" {
		return nil, errors.New("item label is empty")
	}

	return &TUI{
		opts:       opts,
		buildInfo:  buildInfo,
		log:        log,
		isTerminal: stdioIsTerminal,
	}, nil
}

// Run blocks until the user quits. It returns [ErrUserQuit] after ctrl+c and
// an error wrapping [prompt.ErrPresentationUnavailable] when there is no
// terminal to draw on.
func (t *TUI) Run(ctx context.Context) error {
	if !t.isTerminal() {
		return fmt.Errorf("%w: stdin/stdout is not a terminal", prompt.ErrPresentationUnavailable)
	}

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if t.opts.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	if t.opts.Mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}

	root := t.newRootModel()
	finalModel, err := tea.NewProgram(root, programOpts...).Run()
	// whatever ended the program, nothing may stay unanswered
	root.screen.shutdown()
	if err != nil {
		return fmt.Errorf("run ui program: %w", err)
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}

func (t *TUI) newRootModel() RootModel {
	return newRootModel(newScreenModel(t.opts, t.log.WithComponent("tui")), t.buildInfo)
}

func stdioIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
