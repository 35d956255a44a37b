package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/Aayush01055/File-tracking-system/internal/core/service"
	"github.com/Aayush01055/File-tracking-system/internal/infrastructure/config"
	"github.com/Aayush01055/File-tracking-system/internal/infrastructure/gateway"
	"github.com/Aayush01055/File-tracking-system/internal/infrastructure/storage/boltkv"
	"github.com/Aayush01055/File-tracking-system/internal/tui"
	"github.com/Aayush01055/File-tracking-system/pkg/logger"
)

func main() {
	cfg := config.Load()

	// The shell owns the terminal, so logs go to a file.
	log, err := logger.InitFile(cfg.Client.LogFile, logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.LogPretty,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: cannot open log file %s, logging to stderr: %v\n", cfg.Client.LogFile, err)
	}

	if err := run(cfg, log); err != nil {
		log.Error().Err(err).Msg("client exited with error")
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	log.Info().Msg("client exited")
}

func run(cfg *config.Config, log zerolog.Logger) error {
	statePath, err := cfg.Client.StateFile()
	if err != nil {
		return err
	}
	store, err := boltkv.Open(statePath)
	if err != nil {
		return err
	}
	defer store.Close()

	sessions := service.NewSessionService(store, log)
	router := service.NewViewRouter()
	notifier := service.NewNotifier(cfg.Client.NotifyTTL)
	gw := gateway.New(cfg.Client.ServerURL, cfg.Client.HTTPTimeout, log)

	var opts tui.Options
	if term.IsTerminal(int(os.Stdin.Fd())) {
		opts.ReadPassword = func() (string, error) {
			b, err := term.ReadPassword(int(os.Stdin.Fd()))
			return string(b), err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sh := tui.New(sessions, router, notifier, gw, log, opts)
	if err := sh.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
