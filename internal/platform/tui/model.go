package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ctrlsworld/arcade/internal/audio"
	"github.com/ctrlsworld/arcade/internal/core"
	"github.com/ctrlsworld/arcade/internal/registry"
	"github.com/ctrlsworld/arcade/internal/storage"
)

// GameModel is the Bubble Tea model for running arcade games.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	sound      *audio.Player
	config     core.RuntimeConfig
	input      *inputTracker
	keymap     *KeyMapper
	gameState  core.GameState
	bestCombo  int
	aliveTicks uint64
	quitting   bool
	backToMenu bool
	standalone bool // True when running outside a session wrapper
	scoreSaved bool // Whether the run has been recorded for current game over
}

// NewGameModel creates a new Bubble Tea model for the given game.
func NewGameModel(game registry.Game, store *storage.Store, sound *audio.Player, cfg core.RuntimeConfig) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return GameModel{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		sound:  sound,
		config: cfg,
		input:  newInputTracker(),
		keymap: NewKeyMapper(),
	}
}

// Init initializes the model and starts the game.
func (m GameModel) Init() tea.Cmd {
	// Initialize the game
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	actions, isQuit := m.keymap.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	// Back returns to the menu only outside active play, so a stray
	// escape can't abandon a run in progress.
	for _, a := range actions {
		if a == core.ActionBack && (m.gameState.GameOver || m.gameState.Paused) {
			m.backToMenu = true
			if m.standalone {
				return m, tea.Quit
			}
			return m, nil
		}
	}

	m.input.Record(actions)
	return m, nil
}

// handleResize processes window resize events.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Reinitialize game with new dimensions if needed
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	frame := m.input.Frame()

	// Check for restart
	if frame.Has(core.ActionRestart) && m.gameState.GameOver {
		// Reset seed for new game
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.bestCombo = 0
		m.aliveTicks = 0
		m.scoreSaved = false
		m.input.Reset()
		return m, tickCmd(m.config.TickRate)
	}

	// Run game simulation
	wasOver := m.gameState.GameOver
	result := m.game.Step(frame)
	m.gameState = result.State

	if !m.gameState.GameOver && !m.gameState.Paused {
		m.aliveTicks++
	}
	for _, ev := range result.Events {
		if ev.Type == core.EventLinesCleared && ev.Combo > m.bestCombo {
			m.bestCombo = ev.Combo
		}
	}

	if m.sound != nil {
		m.sound.HandleEvents(result.Events)
	}

	// Record the run on game over (once)
	if m.gameState.GameOver && !wasOver && !m.scoreSaved {
		m.recordRun()
		m.scoreSaved = true
	}

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// recordRun persists the score and session stats. Best-effort: a broken
// database never interrupts play.
func (m *GameModel) recordRun() {
	if m.store == nil {
		return
	}
	if m.gameState.Score > 0 {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.store.SaveScore(m.game.ID(), m.gameState.Score)
	}
	survivalSecs := 0
	if m.config.TickRate > 0 {
		survivalSecs = int(m.aliveTicks / uint64(m.config.TickRate))
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.RecordSession(m.game.ID(), m.gameState.Score, m.bestCombo, survivalSecs)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	// Create screenshots directory
	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	// Convert screen to string
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, sound *audio.Player, cfg core.RuntimeConfig) error {
	model := NewGameModel(game, store, sound, cfg)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Enable mouse (for future use)
	)

	_, err := p.Run()
	return err
}
