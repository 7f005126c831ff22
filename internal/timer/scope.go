// Package timer issues tea.Tick commands that belong to a Scope. A tick only
// counts while the scope that scheduled it is still live, which is how screens
// drop their pending timers when they are reset or left.
package timer

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var lastID atomic.Int64

// Kind tells the owner of a scope which of its timers fired.
type Kind string

// FiredMsg is delivered when a scoped tick elapses.
type FiredMsg struct {
	Kind Kind
	Tag  int

	scope int64
	gen   int
}

// Scope groups the timers of one screen-local component.
type Scope struct {
	id  int64
	gen int
}

// NewScope returns a live scope with a process-unique ID.
func NewScope() Scope {
	return Scope{id: lastID.Add(1)}
}

// After schedules a one-shot tick of the given kind.
func (s Scope) After(d time.Duration, kind Kind) tea.Cmd {
	return s.AfterTagged(d, kind, 0)
}

// AfterTagged schedules a one-shot tick carrying tag, so an owner can tell
// two outstanding timers of the same kind apart.
func (s Scope) AfterTagged(d time.Duration, kind Kind, tag int) tea.Cmd {
	msg := s.Fire(kind, tag)
	return tea.Tick(d, func(time.Time) tea.Msg {
		return msg
	})
}

// Fire builds the message a tick scheduled now would deliver. Owners use it
// to drive their state machines synchronously.
func (s Scope) Fire(kind Kind, tag int) FiredMsg {
	return FiredMsg{Kind: kind, Tag: tag, scope: s.id, gen: s.gen}
}

// Owns reports whether msg was scheduled by this scope since its last Dispose.
func (s Scope) Owns(msg FiredMsg) bool {
	return s.id != 0 && msg.scope == s.id && msg.gen == s.gen
}

// Dispose invalidates every tick scheduled so far. The scope stays usable
// for new timers.
func (s *Scope) Dispose() {
	s.gen++
}
