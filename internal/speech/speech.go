// Package speech reads text aloud through whatever speech synthesiser the
// machine has. Speaking is fire-and-forget: callers never learn whether it
// worked.
package speech

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultLocale is the language every script in the app is written in.
const DefaultLocale = "uk-UA"

const speakTimeout = 30 * time.Second

// Utterance is one piece of text to read aloud. Rate is relative to the
// synthesiser's normal speed; zero means 1.
type Utterance struct {
	Text   string
	Locale string
	Rate   float64
}

// Speaker produces spoken audio for an utterance.
type Speaker interface {
	Speak(ctx context.Context, u Utterance) error
}

// Nop is a Speaker for machines without speech support.
type Nop struct{}

// Speak does nothing.
func (Nop) Speak(context.Context, Utterance) error { return nil }

// Say returns a command that speaks u in the background. The command never
// produces a message, and errors are dropped.
func Say(s Speaker, u Utterance) tea.Cmd {
	if s == nil || strings.TrimSpace(u.Text) == "" {
		return nil
	}
	if u.Locale == "" {
		u.Locale = DefaultLocale
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), speakTimeout)
		defer cancel()
		_ = s.Speak(ctx, u)
		return nil
	}
}
