// Package main is the entry point for the banking agent prototype.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/vivekkutty-vibe/starter-bank-agent/internal/app"
	"github.com/vivekkutty-vibe/starter-bank-agent/internal/config"
	"github.com/vivekkutty-vibe/starter-bank-agent/internal/logger"
	"github.com/vivekkutty-vibe/starter-bank-agent/internal/store"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("bank-agent %s (commit: %s, built: %s)\n", version, commit, date)
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to load config")
	}

	logger.SetLevel(cfg.LogLevel)
	if cfg.LogFormat == "json" {
		logger.SetJSON()
	}

	st, err := store.Open(store.NewFileStorage(cfg.StatePath))
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to open state")
	}
	logger.Log.Info().Str("path", cfg.StatePath).Msg("State loaded")

	if cfg.UserName != "" {
		st.SetUserName(cfg.UserName)
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		logger.Log.Info().Msg("Shutting down...")
		cancel()
	}()

	a := app.New(cfg, st, os.Stdin, os.Stdout)
	if err := a.Run(ctx); err != nil && err != context.Canceled {
		logger.Log.Fatal().Err(err).Msg("REPL terminated")
	}
}
