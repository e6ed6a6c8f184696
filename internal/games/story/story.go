// Package story implements a branching text adventure driven by embedded
// YAML chapters. Chapters play in file order unless a choice redirects;
// a chapter that fails to parse is skipped rather than aborting the run.
package story

import (
	"embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed chapters/*.yaml
var chapterFS embed.FS

// Choice is one selectable option at the end of a chapter.
type Choice struct {
	Text  string `yaml:"text"`
	Next  string `yaml:"next"`  // Target chapter ID; unknown IDs fall through to the next chapter
	Score int    `yaml:"score"` // Points awarded for picking this option
}

// Chapter is one scene: a title, text pages shown one at a time, and
// optional choices. A chapter without choices advances sequentially.
type Chapter struct {
	ID      string   `yaml:"id"`
	Title   string   `yaml:"title"`
	Pages   []string `yaml:"pages"`
	Choices []Choice `yaml:"choices"`
	Ending  bool     `yaml:"ending"` // Terminal chapter; finishing it ends the run
}

// loadChapters parses every embedded chapter file in name order.
// Files that fail to read or parse, or that lack an ID or pages, are
// dropped; the rest of the story still plays.
func loadChapters() []Chapter {
	entries, err := chapterFS.ReadDir("chapters")
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var chapters []Chapter
	for _, name := range names {
		data, err := chapterFS.ReadFile("chapters/" + name)
		if err != nil {
			continue
		}
		var ch Chapter
		if err := yaml.Unmarshal(data, &ch); err != nil {
			continue
		}
		if ch.ID == "" || len(ch.Pages) == 0 {
			continue
		}
		chapters = append(chapters, ch)
	}
	return chapters
}

// chapterIndex maps chapter IDs to their position in play order.
func chapterIndex(chapters []Chapter) map[string]int {
	idx := make(map[string]int, len(chapters))
	for i, ch := range chapters {
		idx[ch.ID] = i
	}
	return idx
}

func (c *Chapter) String() string {
	return fmt.Sprintf("%s (%d pages, %d choices)", c.ID, len(c.Pages), len(c.Choices))
}
