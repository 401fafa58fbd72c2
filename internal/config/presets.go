package config

// cpuTuning holds the tracking controller parameters for one preset.
type cpuTuning struct {
	step     float64
	deadZone float64
}

// presetTunings keeps the same bang-bang rule and only varies its speed and
// reaction band. Normal matches the classic arcade feel.
var presetTunings = map[DifficultyPreset]cpuTuning{
	DifficultyEasy:   {step: 4, deadZone: 50},
	DifficultyNormal: {step: 6, deadZone: 35},
	DifficultyHard:   {step: 8, deadZone: 20},
}

// ApplyPongPreset modifies the config based on a difficulty preset.
// The fixed preset keeps whatever the loaded config specifies.
func ApplyPongPreset(cfg *PongConfig, preset DifficultyPreset) {
	cfg.Difficulty.Preset = string(preset)
	tuning, ok := presetTunings[preset]
	if !ok {
		return
	}
	cfg.CPU.Step = tuning.step
	cfg.CPU.DeadZone = tuning.deadZone
}
