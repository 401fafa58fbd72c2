package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pong-arcade/internal/platform/gfx"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play Pong in a desktop window",
	Long: `Open Pong in a desktop window rendered with Ebitengine.
The paddle follows the mouse pointer.

Requires a build with the ebiten tag:
  go build -tags ebiten ./cmd/arcade

Controls:
  Mouse      - Move your paddle
  P          - Pause
  R/Enter    - Play again (after a win)
  Esc/Q      - Quit

Examples:
  arcade window
  arcade window --scale 1.5 --sound`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size relative to the playfield")
}

func runWindow(_ *cobra.Command, _ []string) error {
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger()
	if err != nil {
		return err
	}

	cues, closeSound := soundCues(logger)
	defer closeSound()

	opts := gfx.DefaultOptions()
	opts.Scale = flagScale
	opts.Seed = flagSeed
	opts.Cues = cues
	opts.Logger = logger

	err = gfx.Run(cfg, opts)
	if errors.Is(err, gfx.ErrNotBuilt) {
		logger.Error("this binary was built without window support", "hint", "go build -tags ebiten ./cmd/arcade")
	}
	return err
}
