// Package duel implements a reaction combat game: the foe telegraphs
// each strike, and the player guards through it or trades hits between
// attacks. Rounds bring tougher foes with shorter telegraphs.
package duel

import (
	"fmt"

	"github.com/ctrlsworld/arcade/internal/config"
	"github.com/ctrlsworld/arcade/internal/core"
	"github.com/ctrlsworld/arcade/internal/registry"
)

// foeState is the foe's attack cycle position.
type foeState int

const (
	foeResting foeState = iota
	foeWindup
	foeStunned // Brief opening after a blocked strike
)

// Ticks between player attacks, and the stun window after a block.
const (
	attackCooldownTicks = 30
	stunTicks           = 45
	roundBreakTicks     = 90
)

// Game implements the duel game.
type Game struct {
	cfg  config.DuelConfig
	tick uint64

	round    int
	playerHP int
	foeHP    int
	foeMaxHP int

	foe        foeState
	stateTicks int // Ticks remaining in the current foe state
	guarding   bool
	cooldown   int // Ticks until the player may attack again

	roundBreak int // Intermission countdown between rounds

	score    int
	gameOver bool
	paused   bool

	screenW int
	screenH int

	pending []core.Event
}

// Package-level configuration applied on the next Reset.
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

// New creates a new duel game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("duel", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "duel"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Blade Duel"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	loaded, err := config.LoadDuel(configPath)
	if err != nil {
		loaded = config.DefaultDuelConfig()
	}
	if difficultyPreset != "" {
		config.ApplyDuelPreset(&loaded, config.DifficultyPreset(difficultyPreset))
	}
	g.cfg = loaded

	g.tick = 0
	g.round = 1
	g.playerHP = g.cfg.PlayerHP
	g.score = 0
	g.gameOver = false
	g.paused = false
	g.guarding = false
	g.cooldown = 0
	g.roundBreak = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.pending = g.pending[:0]

	g.spawnFoe()
}

// spawnFoe brings in the current round's foe at full health.
func (g *Game) spawnFoe() {
	g.foeMaxHP = g.cfg.FoeBaseHP + (g.round-1)*g.cfg.FoeHPPerRound
	g.foeHP = g.foeMaxHP
	g.foe = foeResting
	g.stateTicks = g.cfg.RestTicks
}

// windupTicks returns this round's telegraph length. Later rounds strike
// faster, down to the configured floor.
func (g *Game) windupTicks() int {
	return core.Max(g.cfg.WindupMinTicks, g.cfg.WindupTicks-(g.round-1)*5)
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionRestart) && g.gameOver {
		g.Reset(core.RuntimeConfig{ScreenW: g.screenW, ScreenH: g.screenH})
		return g.result()
	}
	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.gameOver || g.paused {
		return g.result()
	}

	if g.roundBreak > 0 {
		g.roundBreak--
		if g.roundBreak == 0 {
			g.spawnFoe()
		}
		return g.result()
	}

	g.guarding = input.Has(core.ActionGuard) || input.Has(core.ActionSoftDrop)

	if g.cooldown > 0 {
		g.cooldown--
	}
	if (input.Has(core.ActionAttack) || input.Has(core.ActionHardDrop)) && g.cooldown == 0 && !g.guarding {
		g.attack()
	}

	g.stepFoe()
	return g.result()
}

func (g *Game) result() core.StepResult {
	events := g.pending
	g.pending = nil
	return core.StepResult{State: g.State(), Events: events}
}

// attack lands a player strike and starts the swing cooldown.
func (g *Game) attack() {
	g.cooldown = attackCooldownTicks

	damage := g.cfg.StrikeDamage
	if g.foe == foeStunned {
		damage *= 2 // Punish window after a blocked strike
	}
	g.foeHP -= damage
	g.score += damage
	g.pending = append(g.pending, core.Event{Type: core.EventStruck})

	if g.foeHP <= 0 {
		g.winRound()
	}
}

// stepFoe runs the foe's rest/windup cycle.
func (g *Game) stepFoe() {
	g.stateTicks--
	if g.stateTicks > 0 {
		return
	}

	switch g.foe {
	case foeResting:
		g.foe = foeWindup
		g.stateTicks = g.windupTicks()
	case foeWindup:
		g.strike()
	case foeStunned:
		g.foe = foeResting
		g.stateTicks = g.cfg.RestTicks
	}
}

// strike resolves the foe's attack: a guarding player blocks and stuns
// the foe, anyone else takes the hit.
func (g *Game) strike() {
	if g.guarding {
		g.foe = foeStunned
		g.stateTicks = stunTicks
		g.score += 5
		return
	}

	g.playerHP -= g.cfg.FoeDamage
	g.pending = append(g.pending, core.Event{Type: core.EventStruck})
	g.foe = foeResting
	g.stateTicks = g.cfg.RestTicks

	if g.playerHP <= 0 {
		g.playerHP = 0
		g.gameOver = true
		g.pending = append(g.pending, core.Event{Type: core.EventGameOver})
	}
}

// winRound scores the kill and schedules the next foe.
func (g *Game) winRound() {
	g.score += 100 * g.round
	g.round++
	g.roundBreak = roundBreakTicks
	g.pending = append(g.pending, core.Event{Type: core.EventLevelUp})

	// A breather between rounds: recover a third of missing health.
	g.playerHP += (g.cfg.PlayerHP - g.playerHP) / 3
}

// Render draws the two fighters, their health bars and the telegraph.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	dst.DrawText(0, 0, fmt.Sprintf(" Blade Duel — Round %d  Score: %d", g.round, g.score))
	dst.DrawHLine(0, 1, dst.Width(), '─')

	midY := dst.Height() / 2
	playerX := dst.Width() / 4
	foeX := dst.Width() * 3 / 4

	g.renderBar(dst, 2, 3, "You", g.playerHP, g.cfg.PlayerHP, core.ColorGreen)
	g.renderBar(dst, dst.Width()-26, 3, "Foe", g.foeHP, g.foeMaxHP, core.ColorRed)

	playerGlyph := '@'
	if g.guarding {
		playerGlyph = 'Ø'
	}
	dst.SetColored(playerX, midY, playerGlyph, core.ColorBrightGreen)

	if g.roundBreak == 0 {
		foeColor := core.ColorRed
		if g.foe == foeStunned {
			foeColor = core.ColorGray
		}
		dst.SetColored(foeX, midY, '&', foeColor)

		switch g.foe {
		case foeWindup:
			dst.DrawTextColored(foeX-1, midY-2, "!!!", core.ColorBrightYellow)
		case foeStunned:
			dst.DrawTextColored(foeX-2, midY-2, "*dazed*", core.ColorGray)
		}
	}

	hint := "Space: attack  S: guard"
	if g.cooldown > 0 {
		hint = "recovering..."
	}
	dst.DrawTextColored(2, dst.Height()-2, hint, core.ColorGray)

	switch {
	case g.gameOver:
		g.renderOverlay(dst, "Defeated", fmt.Sprintf("Round %d  Score: %d  Press R", g.round, g.score))
	case g.roundBreak > 0:
		g.renderOverlay(dst, fmt.Sprintf("Round %d", g.round), "Get ready...")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderBar draws a labeled 20-cell health bar.
func (g *Game) renderBar(dst *core.Screen, x, y int, label string, hp, maxHP int, color core.Color) {
	dst.DrawText(x, y, label)
	const width = 20
	filled := 0
	if maxHP > 0 {
		filled = hp * width / maxHP
	}
	for i := 0; i < width; i++ {
		ch := '░'
		c := core.ColorGray
		if i < filled {
			ch = '█'
			c = color
		}
		dst.SetColored(x+len(label)+1+i, y, ch, c)
	}
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
		Level:    g.round,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}
