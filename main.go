package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"torus-snake/game"
	"torus-snake/game/types"
	"torus-snake/input"
	"torus-snake/remote"
	"torus-snake/terminal"
	"torus-snake/ui"
)

type options struct {
	ui       string
	speed    int
	grid     int
	seed     uint64
	httpAddr string
	logLevel string
	logFile  string
}

func main() {
	var opts options
	flag.StringVar(&opts.ui, "ui", "gui", "front end: gui|term|none")
	flag.IntVar(&opts.speed, "speed", types.DefaultSpeed, "Tick interval in milliseconds (lower = faster)")
	flag.IntVar(&opts.grid, "grid", types.GridSize, "Board width and height in cells")
	flag.Uint64Var(&opts.seed, "seed", 0, "Food placement seed (0 = time based)")
	flag.StringVar(&opts.httpAddr, "http", "", "Listen address for the remote API (empty = disabled)")
	flag.StringVar(&opts.logLevel, "log-level", "info", "debug|info|warn|error")
	flag.StringVar(&opts.logFile, "log-file", "", "Log file (default stderr, discarded with -ui term)")
	flag.Parse()

	if err := run(opts); err != nil {
		fmt.Fprintln(os.Stderr, "snake:", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	logger, closeLog, err := newLogger(opts)
	if err != nil {
		return err
	}
	defer closeLog()

	switch opts.ui {
	case "gui", "term", "none":
	default:
		return fmt.Errorf("unknown -ui %q", opts.ui)
	}

	cfg := game.Config{GridSize: opts.grid, Speed: opts.speed, Seed: opts.seed}
	g, err := game.NewGame(cfg, game.WithLogger(logger))
	if err != nil {
		logger.Error("invalid configuration", "err", err)
		return err
	}
	keys := input.NewHandler(g, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loop := game.NewLoop(g, logger)
	loop.Start(ctx)
	defer loop.Stop()

	remoteDone := make(chan error, 1)
	if opts.httpAddr != "" {
		srv := remote.New(g, keys, logger)
		go func() {
			err := srv.ListenAndServe(ctx, opts.httpAddr)
			if err != nil {
				logger.Error("remote server", "err", err)
				stop()
			}
			remoteDone <- err
		}()
	} else {
		remoteDone <- nil
	}

	var uiErr error
	switch opts.ui {
	case "gui":
		uiErr = ui.RunWindow(ctx, g, keys, logger)
	case "term":
		screen, err := tcell.NewScreen()
		if err != nil {
			uiErr = fmt.Errorf("open terminal: %w", err)
			break
		}
		uiErr = terminal.New(screen, logger).Run(ctx, g, keys)
	case "none":
		logger.Info("running headless", "run", g.RunID(), "http", opts.httpAddr)
		<-ctx.Done()
	}

	stop()
	remoteErr := <-remoteDone

	stats := g.Stats()
	logger.Info("session over", "games", stats.GamesPlayed, "best", stats.HighScore, "average", stats.AverageScore)
	return errors.Join(uiErr, remoteErr)
}

// newLogger builds the slog text logger. The terminal front end owns the
// screen, so its logs go nowhere unless a file is given.
func newLogger(opts options) (*slog.Logger, func(), error) {
	lvl := slog.LevelInfo
	switch strings.ToLower(opts.logLevel) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}

	var out io.Writer = os.Stderr
	closeFn := func() {}
	switch {
	case opts.logFile != "":
		f, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	case opts.ui == "term":
		out = io.Discard
	}
	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: lvl})), closeFn, nil
}
