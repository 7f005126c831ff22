package activity

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ameliastxne/druzhok/internal/timer"
	"github.com/ameliastxne/druzhok/internal/ui"
)

// Phase is one step of box breathing.
type Phase int

const (
	Inhale Phase = iota
	Hold1
	Exhale
	Hold2
)

func (p Phase) String() string {
	return [...]string{"inhale", "hold1", "exhale", "hold2"}[p]
}

// Label is the instruction shown to the child.
func (p Phase) Label() string {
	return [...]string{"Вдихай", "Затримай подих", "Видихай", "Затримай подих"}[p]
}

func (p Phase) next() Phase { return (p + 1) % 4 }

const (
	phaseDuration = 4 * time.Second
	breathTick    = 50 * time.Millisecond

	kindBreath timer.Kind = "breath"

	minTigerScale = 1.0
	maxTigerScale = 1.15
)

// Breathing walks through inhale, hold, exhale, hold once and then stops.
type Breathing struct {
	scope    timer.Scope
	phase    Phase
	elapsed  time.Duration
	complete bool
	bar      progress.Model
}

// NewBreathing returns the exercise at the start of an inhale.
func NewBreathing() *Breathing {
	return &Breathing{
		scope: timer.NewScope(),
		bar:   progress.New(progress.WithSolidFill(string(ui.ColorBlue)), progress.WithoutPercentage()),
	}
}

func (b *Breathing) Title() string { return "Дихаємо разом" }

func (b *Breathing) Start() tea.Cmd {
	if b.complete {
		return nil
	}
	return b.scope.After(breathTick, kindBreath)
}

// Tick advances the exercise by one timer period and reports whether it
// should keep ticking.
func (b *Breathing) Tick() bool {
	if b.complete {
		return false
	}
	b.elapsed += breathTick
	if b.elapsed >= phaseDuration {
		b.elapsed = 0
		b.phase = b.phase.next()
		if b.phase == Inhale {
			b.complete = true
		}
	}
	return !b.complete
}

func (b *Breathing) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case timer.FiredMsg:
		if !b.scope.Owns(msg) || msg.Kind != kindBreath {
			return nil
		}
		if b.Tick() {
			return b.scope.After(breathTick, kindBreath)
		}
	case tea.KeyMsg:
		if msg.String() == "r" {
			return b.Reset()
		}
	}
	return nil
}

// Phase is the current step.
func (b *Breathing) Phase() Phase { return b.phase }

// Progress is how far through the current phase the exercise is, 0 to 100.
func (b *Breathing) Progress() float64 {
	return float64(b.elapsed) * 100 / float64(phaseDuration)
}

// Countdown is the whole seconds left in the phase, never below 1.
func (b *Breathing) Countdown() int {
	remaining := (phaseDuration - b.elapsed).Seconds()
	return max(1, int(math.Ceil(remaining)))
}

// TigerScale is how big the tiger is drawn: it grows while inhaling and
// shrinks while exhaling.
func (b *Breathing) TigerScale() float64 {
	p := b.Progress() / 100
	switch b.phase {
	case Inhale:
		return minTigerScale + (maxTigerScale-minTigerScale)*p
	case Hold1:
		return maxTigerScale
	case Exhale:
		return maxTigerScale - (maxTigerScale-minTigerScale)*p
	}
	return minTigerScale
}

func (b *Breathing) Complete() bool { return b.complete }

func (b *Breathing) Reset() tea.Cmd {
	b.scope.Dispose()
	b.phase = Inhale
	b.elapsed = 0
	b.complete = false
	return b.Start()
}

func (b *Breathing) Dispose() { b.scope.Dispose() }

func (b *Breathing) View(width int) string {
	if b.complete {
		return ui.CelebrateStyle.Render("Молодець! Ти спокійний, як тигреня після сну.")
	}

	// Scale 1.0..1.15 maps onto one to four tiger faces.
	faces := 1 + int(math.Round((b.TigerScale()-minTigerScale)/(maxTigerScale-minTigerScale)*3))
	b.bar.Width = max(10, min(40, width-4))

	var sb strings.Builder
	sb.WriteString(ui.TigerStyle.Render(strings.Repeat("🐯", faces)))
	sb.WriteString("\n\n")
	sb.WriteString(ui.HeadingStyle.Render(b.phase.Label()))
	sb.WriteString("  ")
	sb.WriteString(ui.SelectedStyle.Render(fmt.Sprintf("%d", b.Countdown())))
	sb.WriteString("\n")
	sb.WriteString(b.bar.ViewAs(b.Progress() / 100))
	return sb.String()
}

func (b *Breathing) Help() [][2]string {
	return [][2]string{{"r", "Ще раз"}}
}
