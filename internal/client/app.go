// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-coffee-list/internal/logger"
	"github.com/MKhiriev/go-coffee-list/internal/tui"
)

// App runs the item screen for the lifetime of the process.
type App struct {
	ui UI
}

var _ Client = (*App)(nil)

// NewApp returns an App driving ui.
func NewApp(ui UI) (*App, error) {
	if ui == nil {
		return nil, errors.New("ui is nil")
	}

	return &App{ui: ui}, nil
}

// Run blocks until the UI exits.
//
// Leaving with q returns nil, as does cancellation of ctx (for example on
// SIGTERM). Ctrl+C returns [tui.ErrUserQuit] so main can exit with a
// non-zero status. Run logs through the logger attached to ctx with
// [logger.Logger.WithContext]; without one it stays silent.
func (a *App) Run(ctx context.Context) error {
	log := logger.FromContext(ctx).WithComponent("client")
	log.Info().Msg("client started")

	err := a.ui.Run(ctx)
	switch {
	case err == nil:
		log.Info().Msg("client stopped")
		return nil
	case errors.Is(err, tui.ErrUserQuit):
		log.Info().Msg("client interrupted by user")
		return err
	case ctx.Err() != nil:
		log.Info().Err(ctx.Err()).Msg("client stopped by context")
		return nil
	default:
		log.Error().Err(err).Msg("client run error")
		return fmt.Errorf("run ui: %w", err)
	}
}
