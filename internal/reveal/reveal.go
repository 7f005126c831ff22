// Package reveal discloses an ordered run of units on a fixed-period timer.
// The loading bar counts percentage points with it and the typing effect
// counts runes.
package reveal

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ameliastxne/druzhok/internal/timer"
)

// Kind is the timer kind every reveal tick is scheduled under.
const Kind timer.Kind = "reveal"

// Reveal tracks how many of total units are visible.
type Reveal struct {
	total    int
	step     int
	pos      int
	interval time.Duration
}

// Counter reveals total units, step at a time, one step per interval.
func Counter(total, step int, interval time.Duration) Reveal {
	if step < 1 {
		step = 1
	}
	return Reveal{total: total, step: step, interval: interval}
}

// Advance discloses one more step and reports whether the reveal is done.
func (r *Reveal) Advance() bool {
	r.pos = min(r.pos+r.step, r.total)
	return r.Done()
}

// Done reports whether every unit is visible.
func (r Reveal) Done() bool { return r.pos >= r.total }

// Pos is the number of visible units.
func (r Reveal) Pos() int { return r.pos }

// Total is the number of units being revealed.
func (r Reveal) Total() int { return r.total }

// Fraction is Pos/Total in [0, 1]. An empty reveal is complete.
func (r Reveal) Fraction() float64 {
	if r.total == 0 {
		return 1
	}
	return float64(r.pos) / float64(r.total)
}

// Next schedules the following step on s, or returns nil once done.
func (r Reveal) Next(s timer.Scope) tea.Cmd {
	if r.Done() {
		return nil
	}
	return s.After(r.interval, Kind)
}

// Text reveals a string one rune per step.
type Text struct {
	Reveal
	runes []rune
}

// NewText starts an empty reveal of s.
func NewText(s string, interval time.Duration) Text {
	runes := []rune(s)
	return Text{Reveal: Counter(len(runes), 1, interval), runes: runes}
}

// Shown is the part of the text disclosed so far.
func (t Text) Shown() string { return string(t.runes[:t.pos]) }

// Full is the whole text.
func (t Text) Full() string { return string(t.runes) }
