package main

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pong-arcade/internal/config"
	"github.com/vovakirdan/pong-arcade/internal/pong"
)

var (
	flagMatches  int
	flagMaxTicks int
	flagReach    float64
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run headless matches against a scripted pointer",
	Long: `Run matches without a display. The player's pointer chases the
ball, moving at most --reach units per tick, so rallies are long but
not perfect.

Each match prints the final score, the tick count and a state hash.
Runs with the same seed and config always print the same lines.

Examples:
  arcade simulate --seed 42
  arcade simulate --seed 7 --matches 10 --difficulty hard
  arcade simulate --reach 3 --max-ticks 100000`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagMatches, "matches", 1, "Number of matches to run")
	simulateCmd.Flags().IntVar(&flagMaxTicks, "max-ticks", 200000, "Give up on a match after this many ticks")
	simulateCmd.Flags().Float64Var(&flagReach, "reach", 7, "Max pointer movement per tick")
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	if flagMatches < 1 {
		return fmt.Errorf("--matches must be at least 1, got %d", flagMatches)
	}
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger()
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
		logger.Info("no seed given", "seed", seed)
	}

	out := cmd.OutOrStdout()
	for i := range flagMatches {
		matchSeed := seed + int64(i)
		game, err := simulateMatch(cfg, matchSeed, flagReach, flagMaxTicks, logger)
		if err != nil {
			return err
		}
		printMatch(out, i+1, matchSeed, game)
	}
	return nil
}

// simulateMatch plays one match to completion or until maxTicks elapse.
func simulateMatch(cfg config.PongConfig, seed int64, reach float64, maxTicks int, logger *log.Logger) (*pong.Game, error) {
	game, err := pong.New(cfg, pong.WithSeed(seed), pong.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	pointer := cfg.Playfield.Height / 2
	for range maxTicks {
		target := game.Ball().Y
		switch {
		case target > pointer+reach:
			pointer += reach
		case target < pointer-reach:
			pointer -= reach
		default:
			pointer = target
		}
		game.SetPlayerPaddlePosition(pointer)

		if res := game.Advance(); res.State.Terminal() {
			break
		}
	}
	return game, nil
}

func printMatch(w io.Writer, n int, seed int64, game *pong.Game) {
	snap := game.Snapshot()
	result := "unfinished"
	switch game.Winner() {
	case pong.Player:
		result = "player wins"
	case pong.Computer:
		result = "computer wins"
	}
	fmt.Fprintf(w, "Match %d (seed %d): player %d - %d computer, %s after %d ticks [%016x]\n",
		n, seed, snap.Scores.Player, snap.Scores.Computer, result, snap.Tick, snap.Hash())
}
