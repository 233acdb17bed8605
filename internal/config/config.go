// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

// SnakeConfig contains all tunable parameters for the snake game.
type SnakeConfig struct {
	Board BoardConfig `yaml:"board"`
	Speed SpeedConfig `yaml:"speed"`
	Rules RulesConfig `yaml:"rules"`
}

// BoardConfig defines the logical grid the snake moves on.
// Dimensions are in grid cells, independent of terminal size; the
// platform centers the board on screen.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SpeedConfig defines the logical update cadence.
// The snake moves once every MoveEveryTicks simulation ticks; at the
// default 60 ticks/sec, 9 ticks is the classic 150 ms step.
type SpeedConfig struct {
	MoveEveryTicks    int `yaml:"move_every_ticks"`
	SpeedupEveryFood  int `yaml:"speedup_every_food"`   // endless mode: shorten interval after this many food
	MinMoveEveryTicks int `yaml:"min_move_every_ticks"` // floor for the interval
}

// RulesConfig defines gameplay rules.
type RulesConfig struct {
	InitialLength int `yaml:"initial_length"`
}

// Normalize clamps config values into playable ranges.
// A zero value (missing YAML key) falls back to the default.
func (c *SnakeConfig) Normalize() {
	def := DefaultSnakeConfig()

	if c.Board.Width < 5 {
		c.Board.Width = def.Board.Width
	}
	if c.Board.Height < 5 {
		c.Board.Height = def.Board.Height
	}
	if c.Speed.MoveEveryTicks < 1 {
		c.Speed.MoveEveryTicks = def.Speed.MoveEveryTicks
	}
	if c.Speed.SpeedupEveryFood < 1 {
		c.Speed.SpeedupEveryFood = def.Speed.SpeedupEveryFood
	}
	if c.Speed.MinMoveEveryTicks < 1 {
		c.Speed.MinMoveEveryTicks = def.Speed.MinMoveEveryTicks
	}
	if c.Speed.MinMoveEveryTicks > c.Speed.MoveEveryTicks {
		c.Speed.MinMoveEveryTicks = c.Speed.MoveEveryTicks
	}
	if c.Rules.InitialLength < 1 {
		c.Rules.InitialLength = def.Rules.InitialLength
	}
	// The snake must fit on its starting row
	if c.Rules.InitialLength > c.Board.Width-2 {
		c.Rules.InitialLength = c.Board.Width - 2
	}
}
