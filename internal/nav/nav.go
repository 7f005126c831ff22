// Package nav owns which screen is visible and the session state shared
// between screens.
package nav

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ameliastxne/druzhok/internal/emotion"
)

// Screen is one of the mutually exclusive top-level views.
type Screen int

const (
	Loading Screen = iota
	Emotions
	Reflection
	Response
	Activity
	Account
	ParentalSettings
)

var screenNames = [...]string{
	Loading:          "loading",
	Emotions:         "emotions",
	Reflection:       "reflection",
	Response:         "response",
	Activity:         "activity",
	Account:          "account",
	ParentalSettings: "parental-settings",
}

func (s Screen) String() string {
	if s < 0 || int(s) >= len(screenNames) {
		return "unknown"
	}
	return screenNames[s]
}

// needsEmotion reports whether the screen only makes sense for a chosen emotion.
func (s Screen) needsEmotion() bool {
	return s == Reflection || s == Response || s == Activity
}

// Choice is what the child picks after the scripted reply.
type Choice int

const (
	ChoiceActivity Choice = iota
	ChoiceContinue
	ChoiceDone
)

func (c Choice) String() string {
	switch c {
	case ChoiceActivity:
		return "activity"
	case ChoiceContinue:
		return "continue"
	case ChoiceDone:
		return "done"
	}
	return "unknown"
}

// Session is the state carried from one screen to the next.
type Session struct {
	ID             string
	Emotion        emotion.Emotion
	ReflectionText string
	StartedAt      time.Time
}

// Controller is the screen state machine. Every operation returns true when
// it caused a transition; anything else is a silent no-op.
type Controller struct {
	screen  Screen
	session Session
	logger  zerolog.Logger
	now     func() time.Time
}

// New returns a controller on the loading screen.
func New(logger zerolog.Logger) *Controller {
	return &Controller{
		screen: Loading,
		logger: logger.With().Str("component", "nav").Logger(),
		now:    time.Now,
	}
}

// Screen is the visible screen.
func (c *Controller) Screen() Screen { return c.screen }

// Session is a copy of the current session state.
func (c *Controller) Session() Session { return c.session }

// Emotion is the chosen emotion, or emotion.None.
func (c *Controller) Emotion() emotion.Emotion { return c.session.Emotion }

// ReflectionText is what the child wrote on the reflection screen.
func (c *Controller) ReflectionText() string { return c.session.ReflectionText }

// CompleteLoading leaves the loading screen.
func (c *Controller) CompleteLoading() bool {
	if c.screen != Loading {
		return false
	}
	return c.moveTo(Emotions)
}

// ChooseEmotion starts a session for e and opens the reflection screen.
func (c *Controller) ChooseEmotion(e emotion.Emotion) bool {
	if c.screen != Emotions || !e.Valid() {
		return false
	}
	c.session = Session{
		ID:        uuid.NewString(),
		Emotion:   e,
		StartedAt: c.now(),
	}
	c.logger.Info().
		Str("session", c.session.ID).
		Str("emotion", e.String()).
		Msg("emotion chosen")
	return c.moveTo(Reflection)
}

// SubmitReflection records text and shows the scripted reply. Blank text is
// ignored.
func (c *Controller) SubmitReflection(text string) bool {
	if c.screen != Reflection || strings.TrimSpace(text) == "" {
		return false
	}
	c.session.ReflectionText = text
	return c.moveTo(Response)
}

// Back returns from the reflection screen to the emotion picker.
func (c *Controller) Back() bool {
	if c.screen != Reflection {
		return false
	}
	return c.moveTo(Emotions)
}

// Choose applies the child's choice on the response screen. Continue keeps
// the response screen and reports true so the caller can switch it to chat.
func (c *Controller) Choose(ch Choice) bool {
	if c.screen != Response {
		return false
	}
	switch ch {
	case ChoiceActivity:
		return c.moveTo(Activity)
	case ChoiceContinue:
		c.logger.Debug().Str("session", c.session.ID).Msg("continue chat")
		return true
	case ChoiceDone:
		return c.home()
	}
	return false
}

// GoHome ends the session and shows the emotion picker.
func (c *Controller) GoHome() bool {
	if c.screen == Loading || c.screen == Emotions {
		return false
	}
	return c.home()
}

// Navigate opens one of the caregiver pages.
func (c *Controller) Navigate(page Screen) bool {
	if page != Account && page != ParentalSettings {
		return false
	}
	if c.screen == Loading || c.screen == page {
		return false
	}
	return c.moveTo(page)
}

func (c *Controller) home() bool {
	c.session = Session{}
	return c.moveTo(Emotions)
}

func (c *Controller) moveTo(to Screen) bool {
	if to.needsEmotion() && !c.session.Emotion.Valid() {
		return false
	}
	from := c.screen
	c.screen = to
	c.logger.Debug().
		Str("from", from.String()).
		Str("to", to.String()).
		Str("session", c.session.ID).
		Msg("screen transition")
	return true
}
