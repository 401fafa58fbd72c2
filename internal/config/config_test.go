package config

import (
	"errors"
	"testing"
)

func TestDefaultPongConfigIsValid(t *testing.T) {
	if err := DefaultPongConfig().Validate(); err != nil {
		t.Fatalf("DefaultPongConfig().Validate() = %v, expected nil", err)
	}
}

func TestValidateRejectsBadGeometry(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PongConfig)
	}{
		{"zero width", func(c *PongConfig) { c.Playfield.Width = 0 }},
		{"negative height", func(c *PongConfig) { c.Playfield.Height = -1 }},
		{"zero paddle", func(c *PongConfig) { c.Paddle.Height = 0 }},
		{"paddle taller than field", func(c *PongConfig) { c.Paddle.Height = 601 }},
		{"paddles too wide", func(c *PongConfig) { c.Paddle.Width = 400 }},
		{"zero radius", func(c *PongConfig) { c.Ball.Radius = 0 }},
		{"ball too big", func(c *PongConfig) { c.Ball.Radius = 300 }},
		{"negative speed", func(c *PongConfig) { c.Ball.ServeSpeed = -5 }},
		{"negative cpu step", func(c *PongConfig) { c.CPU.Step = -1 }},
		{"win score zero", func(c *PongConfig) { c.Match.WinScore = 0 }},
		{"tick rate zero", func(c *PongConfig) { c.Loop.TickRate = 0 }},
		{"catch-up zero", func(c *PongConfig) { c.Loop.MaxCatchUp = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultPongConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in       string
		expected DifficultyPreset
		wantErr  bool
	}{
		{"", DifficultyFixed, false},
		{"fixed", DifficultyFixed, false},
		{"easy", DifficultyEasy, false},
		{"normal", DifficultyNormal, false},
		{"hard", DifficultyHard, false},
		{"nightmare", "", true},
	}

	for _, tt := range tests {
		got, err := ParsePreset(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.expected {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tt.in, got, tt.expected)
		}
	}
}

func TestApplyPongPreset(t *testing.T) {
	cfg := DefaultPongConfig()
	ApplyPongPreset(&cfg, DifficultyHard)
	if cfg.CPU.Step != 8 || cfg.CPU.DeadZone != 20 {
		t.Errorf("hard preset CPU = %+v, expected step 8 dead zone 20", cfg.CPU)
	}
	if cfg.Difficulty.Preset != "hard" {
		t.Errorf("Difficulty.Preset = %q, expected %q", cfg.Difficulty.Preset, "hard")
	}

	// Fixed leaves tuned values alone
	cfg.CPU.Step = 7.5
	ApplyPongPreset(&cfg, DifficultyFixed)
	if cfg.CPU.Step != 7.5 {
		t.Errorf("fixed preset changed CPU step to %v", cfg.CPU.Step)
	}
	if cfg.Difficulty.Preset != "fixed" {
		t.Errorf("Difficulty.Preset = %q, expected %q", cfg.Difficulty.Preset, "fixed")
	}
}

func TestNormalPresetMatchesDefaults(t *testing.T) {
	cfg := DefaultPongConfig()
	ApplyPongPreset(&cfg, DifficultyNormal)
	def := DefaultPongConfig()
	if cfg.CPU != def.CPU {
		t.Errorf("normal preset CPU = %+v, expected defaults %+v", cfg.CPU, def.CPU)
	}
}
