//go:build !ebiten

package gfx

import "github.com/vovakirdan/pong-arcade/internal/config"

// Run reports that window support is missing from this build.
func Run(cfg config.PongConfig, _ Options) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	return ErrNotBuilt
}
