// Package snake implements the snake game state machine.
// All mutable state (body, direction, food, score) lives in the Game
// struct; the platform drives it through Reset/Step/Render, so the
// whole machine can be exercised in tests with a simulated clock.
package snake

import (
	"fmt"
	"math/rand"

	"github.com/serpent-game/serpent/internal/config"
	"github.com/serpent-game/serpent/internal/core"
)

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Opposite returns the exact reverse of the direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirRight:
		return DirLeft
	case DirLeft:
		return DirRight
	case DirUp:
		return DirDown
	default:
		return DirUp
	}
}

// Delta returns the per-move offset in grid cells.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirRight:
		return 1, 0
	case DirLeft:
		return -1, 0
	case DirUp:
		return 0, -1
	default:
		return 0, 1
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Mode represents the game mode.
type Mode string

const (
	// ModeClassic keeps a constant speed for the whole run.
	ModeClassic Mode = "classic"
	// ModeEndless shortens the move interval as food is eaten.
	ModeEndless Mode = "endless"
)

// Point represents a 2D grid coordinate.
type Point struct {
	X, Y int
}

// Game implements the snake game. The zero value is not usable;
// construct with New or NewEndless and call Reset before stepping.
type Game struct {
	mode Mode
	cfg  config.SnakeConfig
	rng  *rand.Rand
	tick uint64

	score          int
	foodEaten      int
	moveEveryTicks int
	moveTicker     int // Counts ticks until next move

	// Snake state
	snake     []Point // Head at index 0
	direction Direction
	nextDir   Direction // One-slot pending direction buffer, committed on the next move
	growing   bool      // If true, don't remove tail on next move

	// Board state
	boardW    int
	boardH    int
	food      Point
	hudHeight int
	boardOffX int
	boardOffY int

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	gameOver bool
	won      bool // Board filled completely
	paused   bool
	tooSmall bool
}

// Package-level variables set by the CLI before game creation (like the
// config/difficulty pattern the other knobs follow).
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets the config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset used on the next Reset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// New creates a new classic mode snake game.
func New() *Game {
	return &Game{
		mode: ModeClassic,
	}
}

// NewEndless creates a new endless mode snake game.
func NewEndless() *Game {
	return &Game{
		mode: ModeEndless,
	}
}

// ID returns the game identifier used for score storage.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "snake_endless"
	}
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Serpent (Endless)"
	}
	return "Serpent"
}

// Reset initializes or restarts the game. The whole state set is
// replaced as a unit; nothing survives from the previous run.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.LoadSnake(configPath)
	if err != nil {
		cfg = config.DefaultSnakeConfig()
	}
	if config.ValidPreset(difficultyPreset) {
		config.ApplySnakePreset(&cfg, config.DifficultyPreset(difficultyPreset))
	}
	g.cfg = cfg

	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tick = 0
	g.score = 0
	g.foodEaten = 0
	g.moveEveryTicks = cfg.Speed.MoveEveryTicks
	g.moveTicker = 0
	g.gameOver = false
	g.won = false
	g.paused = false
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.hudHeight = 2
	g.boardW = cfg.Board.Width
	g.boardH = cfg.Board.Height

	// The board plus border and HUD must fit on screen
	requiredW := g.boardW + 2
	requiredH := g.boardH + g.hudHeight + 2
	if g.screenW < requiredW || g.screenH < requiredH {
		g.tooSmall = true
		return
	}
	g.tooSmall = false

	// Center the board, leaving room for the border
	g.boardOffX = (g.screenW - g.boardW) / 2
	g.boardOffY = g.hudHeight + 1

	g.initSnake()
	g.spawnFood()
}

// initSnake places the starting snake mid-board, heading right.
func (g *Game) initSnake() {
	length := g.cfg.Rules.InitialLength
	startY := g.boardH / 2
	headX := (g.boardW-length)/2 + length - 1

	g.snake = make([]Point, length)
	for i := range g.snake {
		g.snake[i] = Point{X: headX - i, Y: startY}
	}
	g.direction = DirRight
	g.nextDir = DirRight
	g.growing = false
}

// spawnFood places food uniformly at random on a free cell.
// The free-cell set is enumerated directly, so placement is bounded and
// never lands on the body. A board with no free cells is complete.
func (g *Game) spawnFood() {
	free := make([]Point, 0, g.boardW*g.boardH-len(g.snake))
	for y := 0; y < g.boardH; y++ {
		for x := 0; x < g.boardW; x++ {
			p := Point{X: x, Y: y}
			if !g.isSnakeAt(p) {
				free = append(free, p)
			}
		}
	}

	if len(free) == 0 {
		g.food = Point{X: -1, Y: -1}
		g.won = true
		g.gameOver = true
		return
	}

	g.food = free[g.rng.Intn(len(free))]
}

// isSnakeAt checks if the snake occupies the given point.
func (g *Game) isSnakeAt(p Point) bool {
	for _, seg := range g.snake {
		if seg == p {
			return true
		}
	}
	return false
}

// Step advances the game by one simulation tick. The snake only moves
// once every moveEveryTicks ticks; rendering stays decoupled from the
// logical update rate.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	// Handle restart
	if input.Has(core.ActionRestart) && g.gameOver {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.gameOver || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Buffer direction input for the next move
	g.bufferInput(input)

	// Move snake on tick interval
	g.moveTicker++
	if g.moveTicker >= g.moveEveryTicks {
		g.moveTicker = 0
		g.move()
	}

	return core.StepResult{State: g.State()}
}

// bufferInput writes direction input into the one-slot pending buffer.
// Reversals of the live direction are rejected here, at input time;
// between moves the latest accepted input wins.
func (g *Game) bufferInput(input core.InputFrame) {
	newDir := g.nextDir

	switch {
	case input.Has(core.ActionUp):
		newDir = DirUp
	case input.Has(core.ActionDown):
		newDir = DirDown
	case input.Has(core.ActionLeft):
		newDir = DirLeft
	case input.Has(core.ActionRight):
		newDir = DirRight
	}

	if newDir != g.direction.Opposite() {
		g.nextDir = newDir
	}
}

// move advances the snake one cell in the committed direction.
func (g *Game) move() {
	if len(g.snake) == 0 {
		return
	}

	// Commit the pending direction
	g.direction = g.nextDir

	head := g.snake[0]
	dx, dy := g.direction.Delta()
	newHead := Point{X: head.X + dx, Y: head.Y + dy}

	// Wall collision
	if newHead.X < 0 || newHead.X >= g.boardW || newHead.Y < 0 || newHead.Y >= g.boardH {
		g.gameOver = true
		return
	}

	// Self collision. The tail cell is excluded when it will be vacated
	// this same move.
	checkLen := len(g.snake)
	if !g.growing {
		checkLen--
	}
	for i := 0; i < checkLen; i++ {
		if g.snake[i] == newHead {
			g.gameOver = true
			return
		}
	}

	// Prepend new head
	g.snake = append([]Point{newHead}, g.snake...)

	// Food consumption: keep the tail this move (net growth of 1)
	if newHead == g.food {
		g.score++
		g.foodEaten++
		g.growing = true
		g.applySpeedup()
		g.spawnFood()
	}

	if g.growing {
		g.growing = false
	} else {
		g.snake = g.snake[:len(g.snake)-1]
	}
}

// applySpeedup shortens the move interval in endless mode.
func (g *Game) applySpeedup() {
	if g.mode != ModeEndless {
		return
	}
	every := g.cfg.Speed.SpeedupEveryFood
	if every <= 0 || g.foodEaten%every != 0 {
		return
	}
	if g.moveEveryTicks > g.cfg.Speed.MinMoveEveryTicks {
		g.moveEveryTicks--
	}
}

// Render draws the current state into the screen buffer.
// It reads state and never mutates it.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	// Board border
	dst.DrawBox(core.NewRect(g.boardOffX-1, g.boardOffY-1, g.boardW+2, g.boardH+2))

	// Food
	if g.food.X >= 0 && g.food.Y >= 0 {
		dst.SetCell(g.boardOffX+g.food.X, g.boardOffY+g.food.Y, '*', core.ColorBrightRed)
	}

	// Snake
	for i, seg := range g.snake {
		sx := g.boardOffX + seg.X
		sy := g.boardOffY + seg.Y
		if i == 0 {
			dst.SetCell(sx, sy, 'O', core.ColorBrightGreen)
		} else {
			dst.SetCell(sx, sy, 'o', core.ColorGreen)
		}
	}

	switch {
	case g.won:
		g.renderOverlay(dst, "Board complete!", fmt.Sprintf("Final score: %d - press R to restart", g.score))
	case g.gameOver:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Final score: %d - press R to restart", g.score))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	var hud string
	if g.mode == ModeEndless {
		hud = fmt.Sprintf(" %s  Score: %d  Length: %d  Speed: 1/%d", g.Title(), g.score, len(g.snake), g.moveEveryTicks)
	} else {
		hud = fmt.Sprintf(" %s  Score: %d  Length: %d", g.Title(), g.score, len(g.snake))
	}
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderOverlay draws a centered boxed message over the board.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(line1), len(line2)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))
	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}
