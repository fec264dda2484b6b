package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/patrikhermansson/pairdist/cmd"
	"github.com/patrikhermansson/pairdist/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// main is the entry point of the application.
// The log level comes from DEBUG_PAIRDIST (see core), everything else from config.Load.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	if cfg.PrettyLogOutput {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	// This block sets up a go routine to listen for an interrupt signal which cancels the running trials
	ctx, cancel := context.WithCancel(context.Background())
	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, os.Interrupt)
	go listenForInterrupt(stopChan, cancel)

	// Program entry point
	err = cmd.Execute(ctx, cfg, os.Stdout)
	cancel()
	if errors.Is(err, cmd.ErrChecksFailed) {
		log.Error().Msg("Distance strategies disagree with the naive reference")
		os.Exit(1)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("Run failed")
	}
}

// listenForInterrupt waits for an interrupt signal and cancels the run when it is received.
func listenForInterrupt(stopChan chan os.Signal, cancel context.CancelFunc) {
	<-stopChan
	log.Warn().Msg("Interrupt signal received. Stopping...")
	cancel()
}
