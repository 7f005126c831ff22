package activity

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ameliastxne/druzhok/internal/timer"
	"github.com/ameliastxne/druzhok/internal/ui"
)

// SpotKind is the sort of mess a spot is.
type SpotKind int

const (
	Mud SpotKind = iota
	Splash
	Cloud
)

var spotKinds = []SpotKind{Mud, Splash, Cloud}

// Emoji is how the spot is drawn.
func (k SpotKind) Emoji() string {
	switch k {
	case Splash:
		return "💧"
	case Cloud:
		return "☁️"
	}
	return "🟤"
}

// Spot is one mess to wipe away. X and Y are percentages of the play area.
type Spot struct {
	ID      int
	X, Y    float64
	Size    float64
	Kind    SpotKind
	Cleaned bool
}

// Pulse is the sparkle shown where a spot was wiped.
type Pulse struct {
	X, Y float64
	Tag  int
}

const (
	// SpotCount is how many spots each round has.
	SpotCount = 12

	spotMargin   = 10.0
	spotSpan     = 80.0
	minSpotSize  = 30.0
	spotSizeSpan = 40.0

	pulseDuration = 500 * time.Millisecond
	cleanSettle   = 500 * time.Millisecond

	kindPulse     timer.Kind = "pulse"
	kindCleanDone timer.Kind = "clean-done"
)

// GenerateSpots lays out a fresh set of spots using r.
func GenerateSpots(r Rand) []Spot {
	spots := make([]Spot, SpotCount)
	for i := range spots {
		spots[i] = Spot{
			ID:   i,
			X:    spotMargin + r.Float64()*spotSpan,
			Y:    spotMargin + r.Float64()*spotSpan,
			Size: minSpotSize + r.Float64()*spotSizeSpan,
			Kind: spotKinds[r.IntN(len(spotKinds))],
		}
	}
	return spots
}

// Clean is the wipe-the-mess-away game.
type Clean struct {
	scope    timer.Scope
	rand     Rand
	spots    []Spot
	cleaned  int
	pulse    *Pulse
	pulses   int
	complete bool
	cursor   int
}

// NewClean returns a round with freshly generated spots. A nil r uses an
// unseeded source.
func NewClean(r Rand) *Clean {
	if r == nil {
		r = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	c := &Clean{scope: timer.NewScope(), rand: r}
	c.spots = GenerateSpots(r)
	return c
}

func (c *Clean) Title() string { return "Прибираємо бруд" }

func (c *Clean) Start() tea.Cmd { return nil }

// Wipe cleans one spot. Unknown or already cleaned spots are ignored.
// The pulse clears itself after a short while, and the round completes a
// moment after the last spot so the final sparkle can play.
func (c *Clean) Wipe(id int) tea.Cmd {
	if id < 0 || id >= len(c.spots) || c.spots[id].Cleaned {
		return nil
	}
	spot := &c.spots[id]
	spot.Cleaned = true
	c.cleaned++

	c.pulses++
	c.pulse = &Pulse{X: spot.X, Y: spot.Y, Tag: c.pulses}
	cmds := []tea.Cmd{c.scope.AfterTagged(pulseDuration, kindPulse, c.pulses)}

	if c.cleaned == len(c.spots) {
		cmds = append(cmds, c.scope.After(cleanSettle, kindCleanDone))
	}
	return tea.Batch(cmds...)
}

// Spots returns a copy of the current layout.
func (c *Clean) Spots() []Spot {
	return append([]Spot(nil), c.spots...)
}

// Cleaned is the number of spots wiped this round.
func (c *Clean) Cleaned() int { return c.cleaned }

// Pulse is the sparkle currently showing, if any.
func (c *Clean) Pulse() (Pulse, bool) {
	if c.pulse == nil {
		return Pulse{}, false
	}
	return *c.pulse, true
}

func (c *Clean) Complete() bool { return c.complete }

func (c *Clean) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case timer.FiredMsg:
		if !c.scope.Owns(msg) {
			return nil
		}
		switch msg.Kind {
		case kindPulse:
			if c.pulse != nil && c.pulse.Tag == msg.Tag {
				c.pulse = nil
			}
		case kindCleanDone:
			c.complete = true
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h":
			c.cursor = (c.cursor + len(c.spots) - 1) % len(c.spots)
		case "right", "l":
			c.cursor = (c.cursor + 1) % len(c.spots)
		case "enter", " ":
			return c.Wipe(c.cursor)
		case "r":
			return c.Reset()
		}
	}
	return nil
}

func (c *Clean) Reset() tea.Cmd {
	c.scope.Dispose()
	c.spots = GenerateSpots(c.rand)
	c.cleaned = 0
	c.pulse = nil
	c.complete = false
	c.cursor = 0
	return nil
}

func (c *Clean) Dispose() { c.scope.Dispose() }

func (c *Clean) View(width int) string {
	if c.complete {
		return ui.CelebrateStyle.Render("Все чисто! Як світло і свіжо стало навколо.")
	}

	var sb strings.Builder
	for i, s := range c.spots {
		cell := s.Kind.Emoji()
		if s.Cleaned {
			cell = "  "
			if p, ok := c.Pulse(); ok && p.X == s.X && p.Y == s.Y {
				cell = "✨"
			}
		}
		if i == c.cursor {
			sb.WriteString(ui.SelectedStyle.Render("[") + cell + ui.SelectedStyle.Render("]"))
		} else {
			sb.WriteString(" " + cell + " ")
		}
		if i%6 == 5 {
			sb.WriteString("\n")
		}
	}
	sb.WriteString("\n")
	sb.WriteString(ui.DimStyle.Render(fmt.Sprintf("Прибрано %d з %d", c.cleaned, len(c.spots))))
	return sb.String()
}

func (c *Clean) Help() [][2]string {
	return [][2]string{{"←→", "Пляма"}, {"Enter", "Витерти"}, {"r", "Ще раз"}}
}
