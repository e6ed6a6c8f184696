package blocks

import (
	"github.com/ctrlsworld/arcade/internal/config"
	"github.com/ctrlsworld/arcade/internal/core"
	"github.com/ctrlsworld/arcade/internal/registry"
)

// Phase is the coarse lifecycle state of a session.
type Phase int

const (
	PhaseWaiting Phase = iota // Reset done, first piece not yet dropped
	PhasePlaying
	PhasePaused
	PhaseGameOver
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseWaiting:
		return "Waiting"
	case PhasePlaying:
		return "Playing"
	case PhasePaused:
		return "Paused"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// lineScores[n] is the base award for clearing n rows with one lock.
var lineScores = [5]int{0, 100, 300, 500, 800}

// kickOffsets are tried in order when a rotated piece collides in place:
// stay, nudge left, nudge right, far left, far right, then one row up.
// The first offset that resolves the collision wins; pieces are never
// kicked downward.
var kickOffsets = [][2]int{
	{0, 0}, {-1, 0}, {1, 0}, {-2, 0}, {2, 0}, {0, -1},
}

// meterMax is the bullet-time meter cap.
const meterMax = 100

// Game implements the falling-block game.
type Game struct {
	cfg   config.BlocksConfig
	phase Phase
	tick  uint64

	grid     Grid
	source   PieceSource
	active   *Piece
	next     PieceType
	held     *PieceType
	hasHeld  bool // A piece type is stashed
	holdUsed bool // Hold already consumed for the active piece

	score int
	lines int
	level int
	combo int

	// Gravity and input timing, all counted in simulation ticks.
	gravityCounter int
	softDrop       bool
	dasDir         int // -1 left, +1 right, 0 idle
	dasCounter     int

	// Bullet time.
	meter       int
	bulletTime  bool
	bulletTicks int // Remaining slowdown ticks

	clearFlash   int   // Ticks left on the row-clear highlight
	flashRows    []int // Rows being highlighted
	playingTicks uint64

	screenW  int
	screenH  int
	tooSmall bool

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

// SetStartLevel sets the starting level (1-10). 0 means level 1.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// GetStartLevel returns the currently selected start level.
func GetStartLevel() int {
	return selectedStartLevel
}

// New creates a new falling-block game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("blocks", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "blocks"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Block Storm"
}

// Reset initializes/restarts the game. The session starts in the waiting
// phase; the first Confirm or HardDrop begins play.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	loaded, err := config.LoadBlocks(configPath)
	if err != nil {
		loaded = config.DefaultBlocksConfig()
	}
	if difficultyPreset != "" {
		config.ApplyBlocksPreset(&loaded, config.DifficultyPreset(difficultyPreset))
	}
	g.cfg = loaded

	g.phase = PhaseWaiting
	g.tick = 0
	g.playingTicks = 0
	g.grid = Grid{}
	if g.source == nil {
		g.source = NewBag(cfg.Seed)
	}
	g.active = nil
	g.next = g.source.Next()
	g.held = nil
	g.hasHeld = false
	g.holdUsed = false

	g.score = 0
	g.lines = 0
	g.level = 1
	if selectedStartLevel > 1 {
		g.level = selectedStartLevel
		g.lines = (selectedStartLevel - 1) * g.cfg.Scoring.LinesPerLevel
		selectedStartLevel = 0
	}
	g.combo = 0

	g.gravityCounter = 0
	g.softDrop = false
	g.dasDir = 0
	g.dasCounter = 0

	g.meter = 0
	g.bulletTime = false
	g.bulletTicks = 0

	g.clearFlash = 0
	g.flashRows = nil

	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tooSmall = cfg.ScreenW < minScreenW || cfg.ScreenH < minScreenH

	g.pending = g.pending[:0]
}

// SetPieceSource replaces the piece randomizer. Must be called before
// Reset; a nil source restores the default seeded bag.
func (g *Game) SetPieceSource(src PieceSource) {
	g.source = src
}

// Step advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	switch g.phase {
	case PhaseWaiting:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionHardDrop) {
			g.Start()
		}
	case PhaseGameOver:
		if in.Has(core.ActionRestart) {
			g.Reset(core.RuntimeConfig{
				ScreenW: g.screenW,
				ScreenH: g.screenH,
				Seed:    int64(g.tick),
			})
		}
	case PhasePlaying, PhasePaused:
		if in.Has(core.ActionPause) {
			g.TogglePause()
		}
		if g.phase == PhasePlaying {
			g.stepPlaying(in)
		}
	}

	events := g.pending
	g.pending = nil
	return core.StepResult{State: g.State(), Events: events}
}

// stepPlaying runs one playing-phase tick: inputs, then gravity, then
// cosmetic timers.
func (g *Game) stepPlaying(in core.InputFrame) {
	g.playingTicks++

	if in.Has(core.ActionRotateCW) {
		g.RotateCW()
	}
	if in.Has(core.ActionRotateCCW) {
		g.RotateCCW()
	}
	if in.Has(core.ActionHold) {
		g.Hold()
	}
	if in.Has(core.ActionBulletTime) {
		g.ActivateBulletTime()
	}

	g.stepHorizontal(in)
	g.SetSoftDrop(in.Has(core.ActionSoftDrop))

	if in.Has(core.ActionHardDrop) {
		g.HardDrop()
	} else {
		g.stepGravity()
	}

	g.stepBulletTime()

	if g.clearFlash > 0 {
		g.clearFlash--
		if g.clearFlash == 0 {
			g.flashRows = nil
		}
	}
	g.grid.DecayGlow(0.05)
}

// stepHorizontal implements delayed auto-shift from the per-tick held
// left/right state: a fresh direction moves immediately and arms the
// delay; a direction held past the delay repeats at a fixed cadence.
func (g *Game) stepHorizontal(in core.InputFrame) {
	dir := 0
	if in.Has(core.ActionLeft) {
		dir = -1
	}
	if in.Has(core.ActionRight) {
		dir = 1 // Right wins when both are held
	}

	if dir == 0 {
		g.dasDir = 0
		return
	}

	if dir != g.dasDir {
		g.dasDir = dir
		g.dasCounter = g.cfg.DAS.DelayTicks
		g.shift(dir)
		return
	}

	g.dasCounter--
	if g.dasCounter <= 0 {
		g.dasCounter = g.cfg.DAS.RepeatTicks
		g.shift(dir)
	}
}

// stepGravity counts down to the next automatic descent. A piece that
// cannot descend locks immediately.
func (g *Game) stepGravity() {
	if g.active == nil {
		return
	}

	g.gravityCounter++
	if g.gravityCounter < g.gravityInterval() {
		return
	}
	g.gravityCounter = 0

	if !g.grid.Collides(g.active, 0, 1) {
		g.active.Row++
		return
	}
	g.lock()
}

// gravityInterval returns the current ticks-per-row descent interval:
// the level-scaled base, stretched by bullet time, overridden by the
// soft-drop interval when it is faster.
func (g *Game) gravityInterval() int {
	interval := g.cfg.Gravity.BaseTicks - (g.level-1)*g.cfg.Gravity.TicksPerLevel
	if interval < g.cfg.Gravity.MinTicks {
		interval = g.cfg.Gravity.MinTicks
	}
	if g.bulletTime {
		interval *= g.cfg.BulletTime.SlowFactor
	}
	if g.softDrop && g.cfg.Gravity.SoftDropTicks < interval {
		interval = g.cfg.Gravity.SoftDropTicks
	}
	return interval
}

// stepBulletTime counts down an active slowdown.
func (g *Game) stepBulletTime() {
	if !g.bulletTime {
		return
	}
	g.bulletTicks--
	if g.bulletTicks <= 0 {
		g.bulletTime = false
		g.bulletTicks = 0
		g.emit(core.Event{Type: core.EventBulletTimeEnded})
	}
}

// Start begins play from the waiting phase. No-op in any other phase.
func (g *Game) Start() {
	if g.phase != PhaseWaiting {
		return
	}
	g.phase = PhasePlaying
	g.spawn()
}

// TogglePause switches between playing and paused. Resuming restarts the
// current gravity interval from zero; time spent before the pause is
// discarded. No-op outside those phases.
func (g *Game) TogglePause() {
	switch g.phase {
	case PhasePlaying:
		g.phase = PhasePaused
	case PhasePaused:
		g.phase = PhasePlaying
		g.gravityCounter = 0
	}
}

// MoveLeft shifts the active piece one column left if the destination is
// free. Invalid moves are silently ignored.
func (g *Game) MoveLeft() bool {
	return g.shift(-1)
}

// MoveRight shifts the active piece one column right if the destination
// is free. Invalid moves are silently ignored.
func (g *Game) MoveRight() bool {
	return g.shift(1)
}

// Move translates the active piece by (dCol, dRow) if the destination is
// free, reporting whether the move happened.
func (g *Game) Move(dCol, dRow int) bool {
	if g.phase != PhasePlaying || g.active == nil {
		return false
	}
	if g.grid.Collides(g.active, dCol, dRow) {
		return false
	}
	g.active.Col += dCol
	g.active.Row += dRow
	return true
}

func (g *Game) shift(dir int) bool {
	return g.Move(dir, 0)
}

// SetSoftDrop sets whether accelerated descent is engaged.
func (g *Game) SetSoftDrop(on bool) {
	g.softDrop = on
}

// RotateCW rotates the active piece 90 degrees clockwise, trying wall
// kicks in order. On failure the piece is left untouched.
func (g *Game) RotateCW() bool {
	return g.rotate(rotatedCW, 1)
}

// RotateCCW rotates the active piece 90 degrees counterclockwise, trying
// wall kicks in order. On failure the piece is left untouched.
func (g *Game) RotateCCW() bool {
	return g.rotate(rotatedCCW, 3)
}

func (g *Game) rotate(fn func([][]bool) [][]bool, step int) bool {
	if g.phase != PhasePlaying || g.active == nil {
		return false
	}

	trial := g.active.Clone()
	trial.Shape = fn(trial.Shape)
	trial.Rot = (trial.Rot + step) % 4

	for _, k := range kickOffsets {
		if !g.grid.Collides(trial, k[0], k[1]) {
			trial.Col += k[0]
			trial.Row += k[1]
			g.active = trial
			return true
		}
	}
	return false
}

// HardDrop teleports the active piece straight down to its resting row,
// awards a distance bonus, and locks it immediately. A piece already
// grounded earns no bonus.
func (g *Game) HardDrop() bool {
	if g.phase != PhasePlaying || g.active == nil {
		return false
	}

	dist := 0
	for !g.grid.Collides(g.active, 0, dist+1) {
		dist++
	}
	g.active.Row += dist
	g.score += dist * g.cfg.Scoring.HardDropPerCell
	g.lock()
	return true
}

// Hold stashes the active piece for later, bringing in the previously
// held piece (or the next from the queue on first use). At most one hold
// per piece lifetime; a second call is a no-op. The swapped-in piece
// spawns at the top; if it cannot fit there the hold is refused and
// nothing changes.
func (g *Game) Hold() bool {
	if g.phase != PhasePlaying || g.active == nil || g.holdUsed {
		return false
	}

	var incoming PieceType
	if g.hasHeld {
		incoming = *g.held
	} else {
		incoming = g.next
	}

	trial := NewPiece(incoming)
	if g.grid.Collides(trial, 0, 0) {
		return false
	}

	stash := g.active.Type
	if g.hasHeld {
		g.held = &stash
	} else {
		g.held = &stash
		g.hasHeld = true
		g.next = g.source.Next()
	}
	g.active = trial
	g.holdUsed = true
	g.gravityCounter = 0
	return true
}

// ActivateBulletTime spends a full meter to slow gravity for a fixed
// duration. No-op when the meter is not full or a slowdown is already
// running.
func (g *Game) ActivateBulletTime() bool {
	if g.phase != PhasePlaying || g.bulletTime || g.meter < meterMax {
		return false
	}
	g.meter = 0
	g.bulletTime = true
	g.bulletTicks = g.cfg.BulletTime.DurationTicks
	g.emit(core.Event{Type: core.EventBulletTimeStarted})
	return true
}

// lock merges the active piece, settles cleared rows, scores, and spawns
// the next piece.
func (g *Game) lock() {
	g.grid.Merge(g.active)
	g.emit(core.Event{Type: core.EventPieceLocked})

	rows := g.grid.FullRows()
	if n := len(rows); n > 0 {
		g.combo++
		g.score += lineScores[n] * g.level * max(1, g.combo)
		g.lines += n

		g.meter += g.cfg.BulletTime.GainPerLine * n
		if g.meter >= meterMax {
			g.meter = meterMax
			g.ActivateBulletTime()
		}

		prevLevel := g.level
		g.level = g.lines/g.cfg.Scoring.LinesPerLevel + 1
		if g.level > prevLevel {
			g.emit(core.Event{Type: core.EventLevelUp})
		}

		g.flashRows = rows
		g.clearFlash = 6
		g.grid.ClearRows(rows)
		g.emit(core.Event{Type: core.EventLinesCleared, Lines: n, Combo: g.combo})
	} else {
		g.combo = 0
	}

	g.holdUsed = false
	g.softDrop = false
	g.spawn()
}

// spawn brings the next queued piece into play. A spawn position already
// blocked by settled cells ends the game.
func (g *Game) spawn() {
	p := NewPiece(g.next)
	g.next = g.source.Next()
	g.gravityCounter = 0

	if g.grid.Collides(p, 0, 0) {
		g.active = nil
		g.phase = PhaseGameOver
		g.emit(core.Event{Type: core.EventGameOver})
		return
	}
	g.active = p
}

// GhostRow returns the row the active piece would occupy after a hard
// drop, or -1 when no piece is active.
func (g *Game) GhostRow() int {
	if g.active == nil {
		return -1
	}
	dist := 0
	for !g.grid.Collides(g.active, 0, dist+1) {
		dist++
	}
	return g.active.Row + dist
}

func (g *Game) emit(e core.Event) {
	g.pending = append(g.pending, e)
}

// State returns the current platform-visible state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Level:    g.level,
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.phase == PhasePaused,
	}
}

// Phase returns the current lifecycle phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Meter returns the bullet-time fill, 0..100.
func (g *Game) Meter() int {
	return g.meter
}

// BulletTimeActive reports whether the slowdown is running.
func (g *Game) BulletTimeActive() bool {
	return g.bulletTime
}

// ActivePiece returns a copy of the falling piece, or nil between pieces.
func (g *Game) ActivePiece() *Piece {
	if g.active == nil {
		return nil
	}
	return g.active.Clone()
}

// PlayingTicks returns how many ticks the session has spent in the
// playing phase, for survival-time stats.
func (g *Game) PlayingTicks() uint64 {
	return g.playingTicks
}
