package activity

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ameliastxne/druzhok/internal/timer"
	"github.com/ameliastxne/druzhok/internal/ui"
)

// Figure is someone (or something) the child can bring into the safe place.
type Figure struct {
	ID       string
	Emoji    string
	Name     string
	Selected bool
}

// Point is a position relative to the centre of the circle.
type Point struct {
	X, Y float64
}

const (
	// SafePlaceTarget is how many figures make the place feel safe.
	SafePlaceTarget = 3

	circleRadius = 70.0
	safeSettle   = 500 * time.Millisecond

	kindSafe timer.Kind = "safe"
)

func defaultFigures() []Figure {
	return []Figure{
		{ID: "parent", Emoji: "👨‍👩‍👧", Name: "Батьки"},
		{ID: "grandparent", Emoji: "👵", Name: "Бабуся/Дідусь"},
		{ID: "teacher", Emoji: "👩‍🏫", Name: "Вчитель"},
		{ID: "friend", Emoji: "👧", Name: "Друг"},
		{ID: "pet", Emoji: "🐕", Name: "Домашній улюбленець"},
		{ID: "blanket", Emoji: "🧸", Name: "Улюблена іграшка"},
	}
}

// SafePlace lets the child gather trusted figures around the tiger.
type SafePlace struct {
	scope     timer.Scope
	figures   []Figure
	scheduled bool
	complete  bool
}

// NewSafePlace returns a circle with nobody in it yet.
func NewSafePlace() *SafePlace {
	return &SafePlace{scope: timer.NewScope(), figures: defaultFigures()}
}

func (s *SafePlace) Title() string { return "Моє безпечне місце" }

func (s *SafePlace) Start() tea.Cmd { return nil }

// Toggle adds or removes a figure. Reaching the target schedules completion
// once; removing figures afterwards does not undo it.
func (s *SafePlace) Toggle(id string) tea.Cmd {
	for i := range s.figures {
		if s.figures[i].ID != id {
			continue
		}
		s.figures[i].Selected = !s.figures[i].Selected
		if s.complete || s.scheduled || s.SelectedCount() < SafePlaceTarget {
			return nil
		}
		s.scheduled = true
		return s.scope.After(safeSettle, kindSafe)
	}
	return nil
}

// Figures returns a copy of the figures with their selection state.
func (s *SafePlace) Figures() []Figure {
	return append([]Figure(nil), s.figures...)
}

// SelectedCount is how many figures are in the circle.
func (s *SafePlace) SelectedCount() int {
	n := 0
	for _, f := range s.figures {
		if f.Selected {
			n++
		}
	}
	return n
}

// Positions places the figures evenly on the circle, the first one at the top.
func (s *SafePlace) Positions() []Point {
	pts := make([]Point, len(s.figures))
	for i := range s.figures {
		deg := float64(i)*360/float64(len(s.figures)) - 90
		rad := deg * math.Pi / 180
		pts[i] = Point{X: circleRadius * math.Cos(rad), Y: circleRadius * math.Sin(rad)}
	}
	return pts
}

func (s *SafePlace) Complete() bool { return s.complete }

func (s *SafePlace) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case timer.FiredMsg:
		if s.scope.Owns(msg) && msg.Kind == kindSafe {
			s.complete = true
		}
	case tea.KeyMsg:
		key := msg.String()
		if key == "r" {
			return s.Reset()
		}
		if len(key) == 1 && key[0] >= '1' && int(key[0]-'0') <= len(s.figures) {
			return s.Toggle(s.figures[key[0]-'1'].ID)
		}
	}
	return nil
}

func (s *SafePlace) Reset() tea.Cmd {
	s.scope.Dispose()
	s.figures = defaultFigures()
	s.scheduled = false
	s.complete = false
	return nil
}

func (s *SafePlace) Dispose() { s.scope.Dispose() }

func (s *SafePlace) View(width int) string {
	var sb strings.Builder
	if s.complete {
		sb.WriteString(ui.CelebrateStyle.Render("Тепер твоє місце безпечне. Тут тебе люблять і захищають."))
		sb.WriteString("\n\n")
	}

	sb.WriteString(ui.TigerStyle.Render("🐯"))
	sb.WriteString("\n\n")
	for i, f := range s.figures {
		line := fmt.Sprintf("%d %s %s", i+1, f.Emoji, f.Name)
		if f.Selected {
			sb.WriteString(ui.DoneStyle.Render("✓ " + line))
		} else {
			sb.WriteString(ui.DimStyle.Render("  " + line))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(ui.DimStyle.Render(fmt.Sprintf("Поруч %d, потрібно %d", s.SelectedCount(), SafePlaceTarget)))
	return sb.String()
}

func (s *SafePlace) Help() [][2]string {
	return [][2]string{{"1-6", "Запросити"}, {"r", "Ще раз"}}
}
