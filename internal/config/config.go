// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned when a configuration describes impossible geometry.
var ErrInvalid = errors.New("config: invalid configuration")

// PongConfig contains all configuration for the Pong game.
type PongConfig struct {
	Playfield  PongPlayfield  `yaml:"playfield"`
	Paddle     PongPaddle     `yaml:"paddle"`
	Ball       PongBall       `yaml:"ball"`
	CPU        PongCPU        `yaml:"cpu"`
	Match      PongMatch      `yaml:"match"`
	Loop       LoopConfig     `yaml:"loop"`
	Difficulty DifficultyInfo `yaml:"difficulty"`
}

// PongPlayfield defines the logical playfield size in pixel units.
type PongPlayfield struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PongPaddle defines paddle geometry.
type PongPaddle struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PongBall defines ball geometry and serve behaviour.
type PongBall struct {
	Radius     float64 `yaml:"radius"`
	ServeSpeed float64 `yaml:"serve_speed"` // Units per tick on each axis
	SpinFactor float64 `yaml:"spin_factor"` // Player paddle deflection per unit of offset
}

// PongCPU defines the computer paddle tracking controller.
type PongCPU struct {
	Step     float64 `yaml:"step"`      // Units per tick
	DeadZone float64 `yaml:"dead_zone"` // No movement while the ball is this close to center
}

// PongMatch defines match rules.
type PongMatch struct {
	WinScore int `yaml:"win_score"`
}

// LoopConfig defines the fixed-timestep driver.
type LoopConfig struct {
	TickRate   int `yaml:"tick_rate"`    // Logical ticks per second
	MaxCatchUp int `yaml:"max_catch_up"` // Max ticks run for one late frame
}

// DifficultyInfo records which preset produced the CPU settings.
type DifficultyInfo struct {
	Preset string `yaml:"preset"`
}

// Validate checks the geometric preconditions of the simulation.
func (c PongConfig) Validate() error {
	switch {
	case c.Playfield.Width <= 0 || c.Playfield.Height <= 0:
		return fmt.Errorf("%w: playfield must be positive, got %vx%v", ErrInvalid, c.Playfield.Width, c.Playfield.Height)
	case c.Paddle.Width <= 0 || c.Paddle.Height <= 0:
		return fmt.Errorf("%w: paddle must be positive, got %vx%v", ErrInvalid, c.Paddle.Width, c.Paddle.Height)
	case c.Paddle.Height > c.Playfield.Height:
		return fmt.Errorf("%w: paddle height %v exceeds playfield height %v", ErrInvalid, c.Paddle.Height, c.Playfield.Height)
	case 2*c.Paddle.Width >= c.Playfield.Width:
		return fmt.Errorf("%w: paddles (%v wide) do not fit playfield width %v", ErrInvalid, c.Paddle.Width, c.Playfield.Width)
	case c.Ball.Radius <= 0:
		return fmt.Errorf("%w: ball radius must be positive, got %v", ErrInvalid, c.Ball.Radius)
	case 2*c.Ball.Radius >= c.Playfield.Height:
		return fmt.Errorf("%w: ball radius %v does not fit playfield height %v", ErrInvalid, c.Ball.Radius, c.Playfield.Height)
	case c.Ball.ServeSpeed < 0 || c.CPU.Step < 0 || c.CPU.DeadZone < 0:
		return fmt.Errorf("%w: speeds and dead zone must not be negative", ErrInvalid)
	case c.Match.WinScore < 1:
		return fmt.Errorf("%w: win score must be at least 1, got %d", ErrInvalid, c.Match.WinScore)
	case c.Loop.TickRate < 1:
		return fmt.Errorf("%w: tick rate must be at least 1, got %d", ErrInvalid, c.Loop.TickRate)
	case c.Loop.MaxCatchUp < 1:
		return fmt.Errorf("%w: max catch-up must be at least 1, got %d", ErrInvalid, c.Loop.MaxCatchUp)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. An empty name means "fixed".
func ParsePreset(name string) (DifficultyPreset, error) {
	switch DifficultyPreset(name) {
	case "", DifficultyFixed:
		return DifficultyFixed, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(name), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}
