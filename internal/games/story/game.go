package story

import (
	"fmt"
	"strings"

	"github.com/ctrlsworld/arcade/internal/core"
	"github.com/ctrlsworld/arcade/internal/registry"
)

// Game drives the chapter flow: pages advance on Confirm, choices are
// picked with Up/Down, and endings close the run.
type Game struct {
	chapters []Chapter
	index    map[string]int

	chapter  int
	page     int
	choosing bool
	selected int

	score    int
	visited  int
	finished bool
	paused   bool

	screenW int
	screenH int

	pending []core.Event
}

// New creates a new story game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("story", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "story"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "The Last Terminal"
}

// Reset loads the chapters and rewinds to the first page.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.chapters = loadChapters()
	g.index = chapterIndex(g.chapters)
	g.chapter = 0
	g.page = 0
	g.choosing = false
	g.selected = 0
	g.score = 0
	g.visited = 0
	g.finished = len(g.chapters) == 0
	g.paused = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.pending = g.pending[:0]
}

// Step advances the story on input. The story has no gravity of its own;
// nothing changes between key presses.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if input.Has(core.ActionRestart) && g.finished {
		g.Reset(core.RuntimeConfig{ScreenW: g.screenW, ScreenH: g.screenH})
		return g.result()
	}
	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.finished || g.paused {
		return g.result()
	}

	switch {
	case g.choosing:
		g.stepChoice(input)
	case input.Has(core.ActionConfirm) || input.Has(core.ActionHardDrop):
		g.advancePage()
	}

	return g.result()
}

func (g *Game) result() core.StepResult {
	events := g.pending
	g.pending = nil
	return core.StepResult{State: g.State(), Events: events}
}

func (g *Game) current() *Chapter {
	if g.chapter < 0 || g.chapter >= len(g.chapters) {
		return nil
	}
	return &g.chapters[g.chapter]
}

// advancePage turns to the next page, entering choice mode or moving on
// when the chapter runs out of pages.
func (g *Game) advancePage() {
	ch := g.current()
	if ch == nil {
		g.finish()
		return
	}

	if g.page < len(ch.Pages)-1 {
		g.page++
		return
	}

	if len(ch.Choices) > 0 {
		g.choosing = true
		g.selected = 0
		return
	}

	g.completeChapter()
	if ch.Ending {
		g.finish()
		return
	}
	g.goTo(g.chapter + 1)
}

// stepChoice handles selection among the current chapter's options.
func (g *Game) stepChoice(input core.InputFrame) {
	ch := g.current()
	if ch == nil {
		g.finish()
		return
	}

	switch {
	case input.Has(core.ActionUp):
		if g.selected > 0 {
			g.selected--
		}
	case input.Has(core.ActionDown):
		if g.selected < len(ch.Choices)-1 {
			g.selected++
		}
	case input.Has(core.ActionConfirm) || input.Has(core.ActionHardDrop):
		choice := ch.Choices[g.selected]
		g.score += choice.Score
		g.completeChapter()

		if next, ok := g.index[choice.Next]; ok {
			g.goTo(next)
		} else {
			// Unknown or missing target: fall through to the next chapter.
			g.goTo(g.chapter + 1)
		}
	}
}

func (g *Game) completeChapter() {
	g.visited++
	g.pending = append(g.pending, core.Event{Type: core.EventLevelUp})
}

// goTo jumps to a chapter by index, ending the run past the last one.
func (g *Game) goTo(index int) {
	g.choosing = false
	g.selected = 0
	g.page = 0
	if index < 0 || index >= len(g.chapters) {
		g.finish()
		return
	}
	g.chapter = index
}

func (g *Game) finish() {
	if g.finished {
		return
	}
	g.finished = true
	g.pending = append(g.pending, core.Event{Type: core.EventGameOver})
}

// Render draws the current page or choice list.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	ch := g.current()
	title := "The Last Terminal"
	if ch != nil {
		title = ch.Title
	}
	dst.DrawText(0, 0, fmt.Sprintf(" %s — Score: %d", title, g.score))
	dst.DrawHLine(0, 1, dst.Width(), '─')

	if g.finished {
		g.renderOverlay(dst, "The End", fmt.Sprintf("Score: %d  Press R to read again", g.score))
		return
	}
	if g.paused {
		g.renderOverlay(dst, "Paused", "Press P to continue")
		return
	}
	if ch == nil {
		return
	}

	textW := core.Min(dst.Width()-8, 64)
	x := (dst.Width() - textW) / 2
	y := 3

	for _, line := range wrapText(ch.Pages[g.page], textW) {
		dst.DrawText(x, y, line)
		y++
	}

	if g.choosing {
		y += 2
		for i, choice := range ch.Choices {
			marker := "  "
			color := core.ColorDefault
			if i == g.selected {
				marker = "> "
				color = core.ColorBrightCyan
			}
			dst.DrawTextColored(x, y, marker+choice.Text, color)
			y++
		}
		dst.DrawTextColored(x, y+1, "↑/↓ select, Enter confirm", core.ColorGray)
	} else {
		hint := "Enter to continue"
		if g.page == len(ch.Pages)-1 && len(ch.Choices) == 0 {
			hint = "Enter to turn the page"
		}
		dst.DrawTextColored(x, dst.Height()-2, hint, core.ColorGray)
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

// wrapText breaks a paragraph into lines no wider than width.
func wrapText(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}

	var lines []string
	var line strings.Builder
	for _, word := range strings.Fields(text) {
		if line.Len() > 0 && line.Len()+1+len(word) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Level:    g.visited,
		GameOver: g.finished,
		Paused:   g.paused,
	}
}
