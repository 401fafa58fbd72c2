package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pong-arcade/internal/core"
	"github.com/vovakirdan/pong-arcade/internal/platform/tui"
)

var flagDirect bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Pong in the terminal",
	Long: `Open the arcade in the terminal. The landing view lists the game;
press Enter to start.

Controls:
  Mouse      - Move your paddle
  Up/W       - Nudge paddle up
  Down/S     - Nudge paddle down
  P          - Pause
  R          - Play again (after a win)
  B/Esc      - Back to the landing view
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Slow computer paddle with a wide dead zone
  normal - Classic tracking speed
  hard   - Fast computer paddle with a narrow dead zone
  fixed  - Use the config file's cpu settings as-is

Examples:
  arcade play
  arcade play --direct
  arcade play --difficulty easy
  arcade play --config ./my-pong.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagDirect, "direct", false, "Skip the landing view")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	// Get terminal size early so the first frame fits
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// The alternate screen owns the terminal, so nothing is logged
	quiet := log.New(io.Discard)
	cues, closeSound := soundCues(quiet)
	defer closeSound()

	opts := []tui.Option{tui.WithCues(cues)}
	if flagDirect {
		opts = append(opts, tui.WithDirectStart())
	}
	return tui.Run(cfg, rt, opts...)
}
