package main

import (
	"context"
	"hash/maphash"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/lmittmann/tint"

	"github.com/vancomm/sweeper/internal/config"
	"github.com/vancomm/sweeper/internal/console"
	"github.com/vancomm/sweeper/internal/journal"
	"github.com/vancomm/sweeper/internal/mines"
)

func createRand(seed *config.Seed) *rand.Rand {
	if seed != nil {
		return rand.New(rand.NewPCG(seed.Hi, seed.Lo))
	}
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func newLogger() (*slog.Logger, error) {
	level, err := config.LogLevel()
	if err != nil {
		return nil, err
	}
	if config.Development() {
		return slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: level})), nil
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})), nil
}

func main() {
	logger, err := newLogger()
	if err != nil {
		slog.Error("failed to set up logging", slog.Any("error", err))
		os.Exit(1)
	}
	mines.Log = logger

	cfg, err := config.NewGame()
	if err != nil {
		logger.Error("failed to read game config", slog.Any("error", err))
		os.Exit(1)
	}

	j, err := journal.New(cfg.JournalFile)
	if err != nil {
		logger.Error("failed to open journal", slog.Any("error", err))
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	rnd := createRand(cfg.Seed)
	logger.Debug(
		"starting",
		slog.String("difficulty", cfg.Difficulty.String()),
		slog.String("params", cfg.Params.String()),
		slog.Duration("time limit", cfg.TimeLimit),
	)

	c := console.New(logger, j, os.Stdout, func() (*mines.Game, error) {
		return mines.NewGame(cfg.Params, rnd)
	}, cfg.TimeLimit)

	if err := c.Run(ctx, os.Stdin); err != nil {
		logger.Error("game aborted", slog.Any("error", err))
		os.Exit(1)
	}
}
