package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Flappy Bird",
	Long: `Start a game.

Controls:
  Space/Up/W/Click  - Flap
  R/Enter/Click     - Restart (after game over)
  Ctrl+S            - Save a text screenshot
  Q/Ctrl+C          - Quit`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(flagLogFile, flagDebug)
	if err != nil {
		return err
	}
	defer closeLog()

	rc := core.DefaultConfig()
	rc.TickRate = cfg.Display.TickRate
	rc.Seed = flagSeed
	if flagFPS > 0 {
		rc.TickRate = flagFPS
	}
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW, rc.ScreenH = w, h
	} else {
		logger.Debug("terminal size unavailable, using defaults", "error", termErr, "width", rc.ScreenW, "height", rc.ScreenH)
	}

	game := flappy.New(cfg)
	return tui.Run(game, tui.Options{
		Runtime:       rc,
		ScorePoll:     cfg.Display.ScorePoll,
		MaxFrameDelta: cfg.Display.MaxFrameDelta,
		Logger:        logger,
	})
}

// newLogger returns a logger writing to path, or a silent one when path is
// empty. The alternate screen owns the terminal, so logs never go to stderr.
func newLogger(path string, debug bool) (*log.Logger, func(), error) {
	var w io.Writer = io.Discard
	closeFn := func() {}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappy",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}
