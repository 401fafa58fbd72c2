// arcade is a small arcade: Pong against a computer paddle, played in the
// terminal, in a desktop window, or over SSH.
//
// Usage:
//
//	arcade play              - Play in the terminal (landing view first)
//	arcade window            - Play in a desktop window (build with -tags ebiten)
//	arcade serve             - Start SSH server for remote play
//	arcade simulate          - Run headless seeded matches
//	arcade config            - Print the effective game configuration
//
// Global flags default to ARCADE_* environment variables (a .env file in the
// working directory is honoured):
//
//	--fps <rate>          - Display frame rate (ARCADE_FPS, default 60)
//	--seed <value>        - RNG seed for reproducible serves (ARCADE_SEED)
//	--config <path>       - Custom game config YAML (ARCADE_CONFIG)
//	--difficulty <name>   - easy, normal, hard or fixed (ARCADE_DIFFICULTY)
//	--log-level <level>   - debug, info, warn, error (ARCADE_LOG_LEVEL)
//	--sound               - Play sound cues (ARCADE_SOUND, build with -tags sound)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pong-arcade/internal/audio"
	"github.com/vovakirdan/pong-arcade/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagSound      bool
)

// env supplies flag defaults; it is read before any init runs.
var env = config.LoadEnv()

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Pong Arcade - Pong against the computer",
	Long: `Pong Arcade is a small arcade with one game: Pong against a
computer-controlled paddle. Steer your paddle with the mouse (or the
arrow keys) and be the first to reach the winning score.

Available commands:
  play      - Play in the terminal
  window    - Play in a desktop window
  serve     - Start SSH server for remote play
  simulate  - Run headless matches
  config    - Print the effective configuration

Examples:
  arcade play
  arcade play --difficulty hard
  arcade window --sound
  arcade serve --ssh :2222
  arcade simulate --seed 42 --matches 3`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", env.FPS, "Display frame rate")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", env.Seed, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", env.ConfigPath, "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", env.Difficulty, "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", env.LogLevel, "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagSound, "sound", env.Sound, "Play sound cues (build with -tags sound)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// loadGameConfig loads the config file and applies the difficulty preset.
func loadGameConfig() (config.PongConfig, error) {
	cfg, err := config.LoadPong(flagConfig)
	if err != nil {
		return config.PongConfig{}, err
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.PongConfig{}, err
	}
	config.ApplyPongPreset(&cfg, preset)
	return cfg, nil
}

// newLogger builds the stderr logger from --log-level.
func newLogger() (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade",
		Level:           level,
	}), nil
}

// soundCues opens the speaker when --sound is set. Failure to open the
// device is logged and play continues silently.
func soundCues(logger *log.Logger) (*audio.Cues, func()) {
	if !flagSound {
		return nil, func() {}
	}
	spk, err := audio.NewSpeaker()
	if err != nil {
		logger.Warn("sound disabled", "error", err)
		return nil, func() {}
	}
	return audio.NewCues(spk, 0.3), spk.Close
}
