package snake

// GameStateType represents the current phase of the state machine.
type GameStateType string

const (
	StateRunning     GameStateType = "running"
	StateGameOver    GameStateType = "game_over"
	StateWin         GameStateType = "win"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick           uint64
	Mode           string
	Score          int
	FoodEaten      int
	SnakeLen       int
	HeadX          int
	HeadY          int
	Dir            Direction
	PendingDir     Direction
	FoodX          int
	FoodY          int
	MoveEveryTicks int
	State          GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StateRunning
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWin
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	headX, headY := 0, 0
	if len(g.snake) > 0 {
		headX = g.snake[0].X
		headY = g.snake[0].Y
	}

	return Snapshot{
		Tick:           g.tick,
		Mode:           string(g.mode),
		Score:          g.score,
		FoodEaten:      g.foodEaten,
		SnakeLen:       len(g.snake),
		HeadX:          headX,
		HeadY:          headY,
		Dir:            g.direction,
		PendingDir:     g.nextDir,
		FoodX:          g.food.X,
		FoodY:          g.food.Y,
		MoveEveryTicks: g.moveEveryTicks,
		State:          state,
	}
}
