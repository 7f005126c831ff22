package activity

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ameliastxne/druzhok/internal/timer"
	"github.com/ameliastxne/druzhok/internal/ui"
)

// Region is one numbered area of the picture.
type Region struct {
	ID     int
	Name   string
	Number int // colour printed in the region; only a hint
}

// PaletteColor is one paint pot.
type PaletteColor struct {
	Index int
	Name  string
	Hex   string
}

// Regions is the sunny-meadow picture.
var Regions = []Region{
	{ID: 1, Name: "Небо", Number: 1},
	{ID: 2, Name: "Сонце", Number: 2},
	{ID: 3, Name: "Хмаринка", Number: 3},
	{ID: 4, Name: "Трава", Number: 4},
	{ID: 5, Name: "Серединка квітки", Number: 2},
	{ID: 6, Name: "Пелюстка вгорі", Number: 5},
	{ID: 7, Name: "Пелюстка внизу", Number: 5},
	{ID: 8, Name: "Пелюстка ліворуч", Number: 5},
	{ID: 9, Name: "Пелюстка праворуч", Number: 5},
	{ID: 10, Name: "Стебло", Number: 6},
	{ID: 11, Name: "Маленька квітка ліворуч", Number: 7},
	{ID: 12, Name: "Стебельце ліворуч", Number: 6},
	{ID: 13, Name: "Маленька квітка праворуч", Number: 8},
	{ID: 14, Name: "Стебельце праворуч", Number: 6},
	{ID: 15, Name: "Метелик", Number: 9},
}

// Palette holds the nine paints.
var Palette = []PaletteColor{
	{Index: 1, Name: "Блакитний", Hex: "#87CEEB"},
	{Index: 2, Name: "Жовтий", Hex: "#FFD93D"},
	{Index: 3, Name: "Білий", Hex: "#FFFFFF"},
	{Index: 4, Name: "Зелений", Hex: "#90EE90"},
	{Index: 5, Name: "Червоний", Hex: "#FF6B6B"},
	{Index: 6, Name: "Темно-зелений", Hex: "#228B22"},
	{Index: 7, Name: "Рожевий", Hex: "#FF69B4"},
	{Index: 8, Name: "Помаранчевий", Hex: "#FFB347"},
	{Index: 9, Name: "Фіолетовий", Hex: "#DDA0DD"},
}

const (
	celebrateDelay = 300 * time.Millisecond

	kindCelebrate timer.Kind = "celebrate"
)

// Paint is paint-by-number with free colour choice.
type Paint struct {
	scope       timer.Scope
	active      int         // palette index, 0 when none picked
	fills       map[int]int // region ID -> palette index
	complete    bool
	celebrating bool
	cursor      int // index into Regions
}

// NewPaint returns an unpainted picture with no colour picked.
func NewPaint() *Paint {
	return &Paint{scope: timer.NewScope(), fills: make(map[int]int)}
}

func (p *Paint) Title() string { return "Розфарбуй картинку" }

func (p *Paint) Start() tea.Cmd { return nil }

// SelectColor picks the paint used by the next Apply.
func (p *Paint) SelectColor(index int) bool {
	if index < 1 || index > len(Palette) {
		return false
	}
	p.active = index
	return true
}

// ActiveColor is the picked palette index, or 0.
func (p *Paint) ActiveColor() int { return p.active }

// Apply paints a region with the active colour. Nothing happens without a
// colour, for unknown regions, or for regions already painted. The returned
// command is non-nil only for the stroke that completes the picture.
func (p *Paint) Apply(regionID int) tea.Cmd {
	if p.active == 0 || !knownRegion(regionID) {
		return nil
	}
	if _, done := p.fills[regionID]; done {
		return nil
	}
	p.fills[regionID] = p.active
	if len(p.fills) < len(Regions) || p.complete {
		return nil
	}
	p.complete = true
	return p.scope.After(celebrateDelay, kindCelebrate)
}

// Fill returns the palette index painted on a region.
func (p *Paint) Fill(regionID int) (int, bool) {
	c, ok := p.fills[regionID]
	return c, ok
}

// Filled is the number of painted regions.
func (p *Paint) Filled() int { return len(p.fills) }

func (p *Paint) Complete() bool { return p.complete }

// Celebrating reports whether the "well done" overlay is showing.
func (p *Paint) Celebrating() bool { return p.celebrating }

func (p *Paint) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case timer.FiredMsg:
		if p.scope.Owns(msg) && msg.Kind == kindCelebrate {
			p.celebrating = true
		}
	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "left", "h":
			p.cursor = (p.cursor + len(Regions) - 1) % len(Regions)
		case "right", "l":
			p.cursor = (p.cursor + 1) % len(Regions)
		case "enter", " ":
			return p.Apply(Regions[p.cursor].ID)
		case "r":
			return p.Reset()
		default:
			if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
				p.SelectColor(int(key[0] - '0'))
			}
		}
	}
	return nil
}

func (p *Paint) Reset() tea.Cmd {
	p.scope.Dispose()
	p.active = 0
	p.fills = make(map[int]int)
	p.complete = false
	p.celebrating = false
	p.cursor = 0
	return nil
}

func (p *Paint) Dispose() { p.scope.Dispose() }

func (p *Paint) View(width int) string {
	if p.celebrating {
		return ui.CelebrateStyle.Render("Яка гарна картина! Радість сяє, як сонечко.")
	}

	var sb strings.Builder
	for i, r := range Regions {
		cell := fmt.Sprintf("%2d %s", r.Number, r.Name)
		if c, ok := p.fills[r.ID]; ok {
			cell = lipgloss.NewStyle().Foreground(lipgloss.Color(Palette[c-1].Hex)).Render("██ " + r.Name)
		} else {
			cell = ui.DimStyle.Render(cell)
		}
		if i == p.cursor {
			cell = ui.SelectedStyle.Render("> ") + cell
		} else {
			cell = "  " + cell
		}
		sb.WriteString(cell)
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	for _, c := range Palette {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex)).Render(fmt.Sprintf("%d●", c.Index))
		if c.Index == p.active {
			swatch = "[" + swatch + "]"
		} else {
			swatch = " " + swatch + " "
		}
		sb.WriteString(swatch)
	}
	sb.WriteString("\n")
	sb.WriteString(ui.DimStyle.Render(fmt.Sprintf("Розфарбовано %d з %d", len(p.fills), len(Regions))))
	return sb.String()
}

func (p *Paint) Help() [][2]string {
	return [][2]string{{"1-9", "Фарба"}, {"←→", "Область"}, {"Enter", "Фарбувати"}, {"r", "Ще раз"}}
}

func knownRegion(id int) bool {
	for _, r := range Regions {
		if r.ID == id {
			return true
		}
	}
	return false
}
