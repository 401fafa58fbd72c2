package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pong-arcade/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Print the configuration a match would start with, as YAML.

The output reflects the config search order (--config, then
~/.arcade/configs/pong.yaml, then ./configs/pong.yaml, then the
built-in defaults) with the --difficulty preset applied. It can be
saved and edited as a starting point for a custom config.

Examples:
  arcade config
  arcade config --difficulty hard > ~/.arcade/configs/pong.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}
	data, err := config.EncodePong(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
