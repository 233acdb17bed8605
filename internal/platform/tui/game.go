package tui

import (
	"github.com/serpent-game/serpent/internal/core"
)

// Game is the interface the platform runs against. The snake package
// satisfies it; game logic stays pure (no Bubble Tea) while the
// platform supplies timing, input mapping, and display.
type Game interface {
	// ID returns a unique identifier, used for score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	// Called once at start and again when restarting after game over.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state (score, game over, paused).
	State() core.GameState
}
