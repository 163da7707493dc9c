package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-coffee-list/internal/client"
	"github.com/MKhiriev/go-coffee-list/internal/config"
	"github.com/MKhiriev/go-coffee-list/internal/logger"
	"github.com/MKhiriev/go-coffee-list/internal/tui"
	"github.com/MKhiriev/go-coffee-list/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	cfg, err := config.GetStructuredConfig()
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(2)
	}

	log := logger.NewClientLogger("coffee-list", cfg.Log.File, cfg.Log.Level)
	os.Exit(run(cfg, buildInfo, log))
}

func run(cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, log *logger.Logger) int {
	defer log.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = log.WithContext(ctx)

	outcomes := client.NewDeleteOutcomeLogger(log)
	ui, err := tui.New(tui.Options{
		Item:          models.Item{Label: cfg.App.ItemLabel},
		PromptTitle:   cfg.Prompt.Title,
		PromptMessage: cfg.Prompt.Message,
		ConfirmLabel:  cfg.Prompt.ConfirmLabel,
		CancelLabel:   cfg.Prompt.CancelLabel,
		OnConfirmed:   outcomes.Confirmed,
		OnCancelled:   outcomes.Cancelled,
		AltScreen:     !cfg.UI.Inline,
		Mouse:         !cfg.UI.NoMouse,
		StatusTimeout: cfg.UI.StatusTimeout,
	}, buildInfo, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating ui")
		return 1
	}

	app, err := client.NewApp(ui)
	if err != nil {
		log.Error().Err(err).Msg("init client app error")
		return 1
	}

	if err = app.Run(ctx); err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			return 130
		}
		log.Error().Err(err).Msg("client run error")
		fmt.Fprintf(os.Stderr, "coffee-list: %v\n", err)
		return 1
	}
	return 0
}
