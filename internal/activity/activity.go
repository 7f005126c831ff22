// Package activity holds the five calming mini-games, one per emotion. Each
// one is a small state machine that owns its timers through a timer.Scope and
// drops them on Reset or Dispose.
package activity

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ameliastxne/druzhok/internal/emotion"
	"github.com/ameliastxne/druzhok/internal/speech"
)

// Activity is the screen-local model shown on the activity screen.
type Activity interface {
	// Title is the heading shown above the activity.
	Title() string
	// Start schedules whatever timers the activity needs on entry.
	Start() tea.Cmd
	// Update handles the activity's own timer ticks and key presses.
	Update(msg tea.Msg) tea.Cmd
	// Complete reports whether the completion condition has been met.
	Complete() bool
	// Reset puts the activity back to its initial state and restarts it.
	Reset() tea.Cmd
	// Dispose drops every pending timer. The activity must not be used after.
	Dispose()
	View(width int) string
	// Help lists footer hints as key/description pairs.
	Help() [][2]string
}

// Rand is the random source used for layouts and reply picks.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// Deps are the collaborators an activity may need.
type Deps struct {
	Rand    Rand
	Speaker speech.Speaker
	Locale  string
}

// For returns the activity tied to e. Anything unrecognised, including no
// emotion at all, gets the breathing exercise.
func For(e emotion.Emotion, deps Deps) Activity {
	switch e {
	case emotion.Joy:
		return NewPaint()
	case emotion.Sadness:
		return NewStory(deps.Speaker, deps.Locale)
	case emotion.Disgust:
		return NewClean(deps.Rand)
	case emotion.Fear:
		return NewSafePlace()
	default:
		return NewBreathing()
	}
}
