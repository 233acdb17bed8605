package config

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ValidPreset reports whether the given string names a known preset.
func ValidPreset(s string) bool {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return true
	}
	return false
}

// intervalDelta returns the move-interval adjustment for a preset,
// in ticks relative to the configured base.
func intervalDelta(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 3
	case DifficultyHard:
		return -3
	default:
		return 0
	}
}

// ApplySnakePreset adjusts the config for a difficulty preset.
// Easy and hard shift the base move interval; fixed disables the
// endless-mode speedup while keeping the normal interval.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	cfg.Speed.MoveEveryTicks += intervalDelta(preset)
	if cfg.Speed.MoveEveryTicks < 1 {
		cfg.Speed.MoveEveryTicks = 1
	}
	if preset == DifficultyFixed {
		// SpeedupEveryFood of 0 never triggers; Normalize is called
		// before presets, so this survives.
		cfg.Speed.SpeedupEveryFood = 0
	}
	if cfg.Speed.MinMoveEveryTicks > cfg.Speed.MoveEveryTicks {
		cfg.Speed.MinMoveEveryTicks = cfg.Speed.MoveEveryTicks
	}
}
