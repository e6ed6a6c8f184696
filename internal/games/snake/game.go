package snake

import (
	"fmt"
	"math/rand"

	"github.com/ctrlsworld/arcade/internal/config"
	"github.com/ctrlsworld/arcade/internal/core"
	"github.com/ctrlsworld/arcade/internal/registry"
)

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// String returns a human-readable direction name.
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
	ModeCampaign Mode = "campaign"
	ModeEndless  Mode = "endless"
)

// Point represents a 2D arena coordinate.
type Point struct {
	X, Y int
}

// Game implements the snake game.
type Game struct {
	cfg  config.SnakeConfig
	mode Mode
	rng  *rand.Rand
	tick uint64

	score      int
	foodEaten  int
	totalFood  int
	levelIndex int
	moveTicks  int // Current movement interval
	moveTicker int

	snake     []Point // Head at index 0
	direction Direction
	nextDir   Direction
	growth    int // Pending tail segments

	mapWidth   int
	mapHeight  int
	walls      map[Point]bool
	food       Point
	mapOffsetX int
	mapOffsetY int

	screenW int
	screenH int

	gameOver     bool
	won          bool
	paused       bool
	tooSmall     bool
	levelCleared bool
	clearedTicks int

	pending []core.Event
}

// Package-level configuration applied on the next Reset.
var (
	configPath         string
	difficultyPreset   string
	selectedStartLevel int
)

// SetConfigPath sets the config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset used on the next Reset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetStartLevel sets the starting campaign level. 0 means the first.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// GetStartLevel returns the currently selected start level.
func GetStartLevel() int {
	return selectedStartLevel
}

// New creates a new campaign mode snake game.
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewEndless creates a new endless mode snake game.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
	registry.Register("snake_endless", func() registry.Game {
		return NewEndless()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "snake_endless"
	}
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Snake (Endless)"
	}
	return "Snake"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	loaded, err := config.LoadSnake(configPath)
	if err != nil {
		loaded = config.DefaultSnakeConfig()
	}
	if difficultyPreset != "" {
		config.ApplySnakePreset(&loaded, config.DifficultyPreset(difficultyPreset))
	}
	g.cfg = loaded

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.score = 0
	g.totalFood = 0
	g.gameOver = false
	g.won = false
	g.paused = false
	g.levelCleared = false
	g.clearedTicks = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.pending = g.pending[:0]

	if g.mode == ModeCampaign && selectedStartLevel > 0 && selectedStartLevel <= LevelCount() {
		g.levelIndex = selectedStartLevel - 1
		selectedStartLevel = 0
	} else {
		g.levelIndex = 0
	}

	g.loadLevel()
}

// loadLevel parses the current arena and places the snake and food.
func (g *Game) loadLevel() {
	level := GetLevel(g.levelIndex % LevelCount())
	if level == nil {
		return
	}

	g.moveTicks = g.cfg.MoveEveryTicks
	if g.mode == ModeEndless {
		// Each full cycle through the arenas shaves a tick off the interval.
		g.moveTicks = core.Max(g.cfg.MinMoveTicks, g.cfg.MoveEveryTicks-g.levelIndex/LevelCount())
	}
	g.moveTicker = 0
	g.foodEaten = 0
	g.levelCleared = false
	g.growth = 0

	g.walls = make(map[Point]bool)
	layout := level.Layout
	g.mapHeight = len(layout)
	g.mapWidth = 0
	for _, row := range layout {
		if len(row) > g.mapWidth {
			g.mapWidth = len(row)
		}
	}

	requiredW := g.mapWidth + 2
	requiredH := g.mapHeight + 3
	if g.screenW < requiredW || g.screenH < requiredH {
		g.tooSmall = true
		return
	}
	g.tooSmall = false

	g.mapOffsetX = (g.screenW - g.mapWidth) / 2
	g.mapOffsetY = 2

	for y, row := range layout {
		for x, ch := range row {
			if ch == '#' {
				g.walls[Point{X: x, Y: y}] = true
			}
		}
	}

	g.initSnake()
	g.spawnFood()
}

// initSnake places a 3-segment snake on a clear horizontal run.
func (g *Game) initSnake() {
	startX := g.mapWidth / 4
	startY := g.mapHeight / 2

	for range 100 {
		clear := true
		for i := range 3 {
			p := Point{X: startX + i, Y: startY}
			if g.walls[p] || p.X < 1 || p.X >= g.mapWidth-1 || p.Y < 1 || p.Y >= g.mapHeight-1 {
				clear = false
				break
			}
		}
		if clear {
			break
		}
		startX = 1 + g.rng.Intn(g.mapWidth/2)
		startY = 1 + g.rng.Intn(g.mapHeight-2)
	}

	g.snake = []Point{
		{X: startX + 2, Y: startY},
		{X: startX + 1, Y: startY},
		{X: startX, Y: startY},
	}
	g.direction = DirRight
	g.nextDir = DirRight
}

// spawnFood places food at a uniformly random empty cell.
func (g *Game) spawnFood() {
	var empty []Point
	for y := 1; y < g.mapHeight-1; y++ {
		for x := 1; x < g.mapWidth-1; x++ {
			p := Point{X: x, Y: y}
			if !g.walls[p] && !g.isSnakeAt(p) {
				empty = append(empty, p)
			}
		}
	}

	if len(empty) == 0 {
		g.food = Point{X: -1, Y: -1}
		return
	}
	g.food = empty[g.rng.Intn(len(empty))]
}

func (g *Game) isSnakeAt(p Point) bool {
	for _, seg := range g.snake {
		if seg == p {
			return true
		}
	}
	return false
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionRestart) && (g.gameOver || g.won) {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return g.result()
	}

	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.gameOver || g.won || g.paused || g.tooSmall {
		return g.result()
	}

	if g.levelCleared {
		g.clearedTicks++
		if g.clearedTicks >= 90 {
			g.advanceLevel()
		}
		return g.result()
	}

	g.processInput(input)

	g.moveTicker++
	if g.moveTicker >= g.moveTicks {
		g.moveTicker = 0
		g.moveSnake()
	}

	return g.result()
}

func (g *Game) result() core.StepResult {
	events := g.pending
	g.pending = nil
	return core.StepResult{State: g.State(), Events: events}
}

// processInput buffers a direction change, refusing instant reversals.
func (g *Game) processInput(input core.InputFrame) {
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

	if !isOpposite(newDir, g.direction) {
		g.nextDir = newDir
	}
}

func isOpposite(d1, d2 Direction) bool {
	return (d1 == DirUp && d2 == DirDown) ||
		(d1 == DirDown && d2 == DirUp) ||
		(d1 == DirLeft && d2 == DirRight) ||
		(d1 == DirRight && d2 == DirLeft)
}

// moveSnake advances the head one cell, handling walls, self-collision,
// food and growth.
func (g *Game) moveSnake() {
	if len(g.snake) == 0 {
		return
	}

	g.direction = g.nextDir

	head := g.snake[0]
	var newHead Point
	switch g.direction {
	case DirUp:
		newHead = Point{X: head.X, Y: head.Y - 1}
	case DirDown:
		newHead = Point{X: head.X, Y: head.Y + 1}
	case DirLeft:
		newHead = Point{X: head.X - 1, Y: head.Y}
	case DirRight:
		newHead = Point{X: head.X + 1, Y: head.Y}
	}

	if g.walls[newHead] || newHead.X < 0 || newHead.X >= g.mapWidth ||
		newHead.Y < 0 || newHead.Y >= g.mapHeight {
		g.die()
		return
	}

	// The tail cell vacates this move unless the snake is growing.
	checkLen := len(g.snake)
	if g.growth == 0 && checkLen > 0 {
		checkLen--
	}
	for i := range checkLen {
		if g.snake[i] == newHead {
			g.die()
			return
		}
	}

	g.snake = append([]Point{newHead}, g.snake...)

	if newHead == g.food {
		g.eat()
	}

	if g.growth > 0 {
		g.growth--
	} else if len(g.snake) > 1 {
		g.snake = g.snake[:len(g.snake)-1]
	}
}

func (g *Game) die() {
	g.gameOver = true
	g.pending = append(g.pending, core.Event{Type: core.EventGameOver})
}

func (g *Game) eat() {
	g.score++
	g.foodEaten++
	g.totalFood++
	g.growth += g.cfg.GrowthPerFood
	g.pending = append(g.pending, core.Event{Type: core.EventFoodEaten})

	// Speed up every few food, down to the configured floor.
	if g.cfg.SpeedUpEvery > 0 && g.totalFood%g.cfg.SpeedUpEvery == 0 {
		g.moveTicks = core.Max(g.cfg.MinMoveTicks, g.moveTicks-1)
	}

	g.spawnFood()
	g.checkLevelCompletion()
}

func (g *Game) checkLevelCompletion() {
	if g.mode == ModeCampaign {
		level := GetLevel(g.levelIndex)
		if level != nil && g.foodEaten >= level.TargetFood {
			g.levelCleared = true
			g.clearedTicks = 0
			g.pending = append(g.pending, core.Event{Type: core.EventLevelUp})
		}
		return
	}

	// Endless mode rotates arenas after every 10 food.
	if g.foodEaten >= 10 {
		g.levelIndex++
		g.loadLevel()
		g.pending = append(g.pending, core.Event{Type: core.EventLevelUp})
	}
}

func (g *Game) advanceLevel() {
	g.levelIndex++
	if g.mode == ModeCampaign && g.levelIndex >= LevelCount() {
		g.won = true
		g.pending = append(g.pending, core.Event{Type: core.EventGameOver})
	} else {
		g.loadLevel()
	}
}

// Render draws the arena, snake and food with any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	for wall := range g.walls {
		wx := g.mapOffsetX + wall.X
		wy := g.mapOffsetY + wall.Y
		dst.SetColored(wx, wy, '█', core.ColorGray)
	}

	for i, seg := range g.snake {
		sx := g.mapOffsetX + seg.X
		sy := g.mapOffsetY + seg.Y
		if i == 0 {
			dst.SetColored(sx, sy, '●', core.ColorBrightGreen)
		} else {
			dst.SetColored(sx, sy, 'o', core.ColorGreen)
		}
	}

	if g.food.X >= 0 && g.food.Y >= 0 {
		dst.SetColored(g.mapOffsetX+g.food.X, g.mapOffsetY+g.food.Y, '*', core.ColorBrightRed)
	}

	switch {
	case g.levelCleared:
		name := ""
		if level := GetLevel(g.levelIndex); level != nil {
			name = level.Name
		}
		g.renderOverlay(dst, fmt.Sprintf("Level %d cleared!", g.levelIndex+1), name)
	case g.won:
		g.renderOverlay(dst, "You Win!", fmt.Sprintf("Final Score: %d", g.score))
	case g.gameOver:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	var hud string
	if g.mode == ModeEndless {
		hud = fmt.Sprintf(" Snake (Endless) — Score: %d  Speed: %d", g.score, g.cfg.MoveEveryTicks-g.moveTicks+1)
	} else {
		target := 0
		if level := GetLevel(g.levelIndex); level != nil {
			target = level.TargetFood
		}
		hud = fmt.Sprintf(" Snake — Score: %d  Level: %d/%d  Food: %d/%d",
			g.score, g.levelIndex+1, LevelCount(), g.foodEaten, target)
	}
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

func (g *Game) renderOverlay(dst *core.Screen, title, subtitle string) {
	w := core.Max(len(title), len(subtitle)) + 6
	h := 5
	x := (dst.Width() - w) / 2
	y := (dst.Height() - h) / 2

	dst.DrawRect(core.NewRect(x, y, w, h), ' ')
	dst.DrawBox(core.NewRect(x, y, w, h))
	dst.DrawTextCentered(y+1, title)
	dst.DrawTextCentered(y+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Level:    g.levelIndex + 1,
		GameOver: g.gameOver || g.won,
		Paused:   g.paused,
	}
}
