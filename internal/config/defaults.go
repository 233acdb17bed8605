package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
// Board and cadence match the classic setup: a 20x20 grid stepped
// every 150 ms, starting from a 3-segment snake.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			Width:  20,
			Height: 20,
		},
		Speed: SpeedConfig{
			MoveEveryTicks:    9,
			SpeedupEveryFood:  5,
			MinMoveEveryTicks: 3,
		},
		Rules: RulesConfig{
			InitialLength: 3,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
