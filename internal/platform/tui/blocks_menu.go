package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ctrlsworld/arcade/internal/core"
)

// maxStartLevel is the highest level the pre-game menu offers.
const maxStartLevel = 10

// BlocksSelection holds the user's choices from the Block Storm menu.
type BlocksSelection struct {
	Preset     string // "easy", "normal", "hard"
	StartLevel int    // 1-10
}

// BlocksModeModel lets users choose difficulty and starting level
// before a Block Storm run.
type BlocksModeModel struct {
	presetCursor  int
	levelCursor   int
	inLevelSelect bool
	width         int
	height        int
	keyMapper     *KeyMapper
	selection     BlocksSelection
	choosing      bool
	quitting      bool
	back          bool
}

var blocksPresets = []string{"easy", "normal", "hard"}

// NewBlocksModeModel creates a new Block Storm setup model.
func NewBlocksModeModel(width, height int) BlocksModeModel {
	return BlocksModeModel{
		presetCursor: 1, // default to normal
		width:        width,
		height:       height,
		keyMapper:    NewKeyMapper(),
		choosing:     true,
	}
}

// Init initializes the model.
func (m BlocksModeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m BlocksModeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m BlocksModeModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	if m.inLevelSelect {
		return m.handleLevelSelectKey(action)
	}
	return m.handlePresetKey(action)
}

func (m BlocksModeModel) handlePresetKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.presetCursor > 0 {
			m.presetCursor--
		}
	case MenuActionDown:
		if m.presetCursor < len(blocksPresets)-1 {
			m.presetCursor++
		}
	case MenuActionSelect:
		m.selection.Preset = blocksPresets[m.presetCursor]
		m.inLevelSelect = true
		m.levelCursor = 0
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

func (m BlocksModeModel) handleLevelSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.levelCursor > 0 {
			m.levelCursor--
		}
	case MenuActionDown:
		if m.levelCursor < maxStartLevel-1 {
			m.levelCursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection.StartLevel = m.levelCursor + 1 // 1-indexed
		return m, tea.Quit
	case MenuActionBack:
		m.inLevelSelect = false
	}

	return m, nil
}

// View renders the preset/level selection.
func (m BlocksModeModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inLevelSelect {
		return m.viewLevelSelect()
	}
	return m.viewPresetSelect()
}

func (m BlocksModeModel) viewPresetSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("B L O C K   S T O R M", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	labels := []string{
		"Easy   (slow gravity, generous bullet time)",
		"Normal (classic pacing)",
		"Hard   (fast gravity, stingy bullet time)",
	}

	for i, label := range labels {
		cursor := "  "
		if i == m.presetCursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s", cursor, label), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

func (m BlocksModeModel) viewLevelSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("STARTING LEVEL", m.width))
	b.WriteString("\n\n")

	for i := 0; i < maxStartLevel; i++ {
		cursor := "  "
		if i == m.levelCursor {
			cursor = "> "
		}

		line := fmt.Sprintf("%sLevel %2d", cursor, i+1)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m BlocksModeModel) Selected() *BlocksSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m BlocksModeModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m BlocksModeModel) WantsBack() bool {
	return m.back
}

// RunBlocksModeSelector runs the Block Storm setup menu and returns
// the selection, or nil if the user backed out.
func RunBlocksModeSelector(cfg core.RuntimeConfig) (*BlocksSelection, core.RuntimeConfig, error) {
	model := NewBlocksModeModel(cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, cfg, err
	}

	m, ok := finalModel.(BlocksModeModel)
	if !ok {
		return nil, cfg, nil
	}

	if m.IsQuitting() || m.WantsBack() {
		return nil, cfg, nil
	}

	return m.Selected(), cfg, nil
}
