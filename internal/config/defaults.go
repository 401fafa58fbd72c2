package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultPongConfig returns the default Pong configuration.
// It mirrors defaults/pong.yaml and is the fallback if the embed cannot be parsed.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Playfield: PongPlayfield{
			Width:  800,
			Height: 600,
		},
		Paddle: PongPaddle{
			Width:  10,
			Height: 100,
		},
		Ball: PongBall{
			Radius:     8,
			ServeSpeed: 5,
			SpinFactor: 0.35,
		},
		CPU: PongCPU{
			Step:     6,
			DeadZone: 35,
		},
		Match: PongMatch{
			WinScore: 5,
		},
		Loop: LoopConfig{
			TickRate:   60,
			MaxCatchUp: 5,
		},
		Difficulty: DifficultyInfo{
			Preset: string(DifficultyFixed),
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultPongYAML
}
