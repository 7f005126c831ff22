package app

import (
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/ameliastxne/druzhok/internal/activity"
	"github.com/ameliastxne/druzhok/internal/conversation"
	"github.com/ameliastxne/druzhok/internal/emotion"
	"github.com/ameliastxne/druzhok/internal/logging"
	"github.com/ameliastxne/druzhok/internal/nav"
	"github.com/ameliastxne/druzhok/internal/reveal"
	"github.com/ameliastxne/druzhok/internal/settings"
	"github.com/ameliastxne/druzhok/internal/speech"
	"github.com/ameliastxne/druzhok/internal/timer"
	"github.com/ameliastxne/druzhok/internal/ui"
)

const (
	loadingStep     = 2
	loadingInterval = 50 * time.Millisecond
	loadingSettle   = 500 * time.Millisecond
)

// Options are the collaborators the TUI is built from.
type Options struct {
	Logger  zerolog.Logger
	Speaker speech.Speaker
	Locale  string
	Rand    activity.Rand
	Store   settings.JournalStore
	Scripts conversation.Scripts
}

// Model is the root bubbletea model for the druzhok TUI.
type Model struct {
	logger  zerolog.Logger
	speaker speech.Speaker
	locale  string
	rand    activity.Rand
	scripts conversation.Scripts

	nav *nav.Controller

	// Loading
	scope   timer.Scope
	loading reveal.Reveal
	bar     progress.Model

	// Screen-local state, created on entry and dropped on exit
	emotionCursor int
	reflection    *conversation.Reflection
	response      *conversation.Response
	activity      activity.Activity

	// Caregiver pages keep their state for the whole run
	account *settings.Account
	journal *settings.Journal

	// UI state
	width  int
	height int
}

// New creates a Model on the loading screen.
func New(opts Options) Model {
	if opts.Speaker == nil {
		opts.Speaker = speech.Nop{}
	}
	if opts.Locale == "" {
		opts.Locale = speech.DefaultLocale
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if opts.Scripts.FollowUps == nil {
		opts.Scripts = conversation.DefaultScripts
	}

	m := Model{
		logger:  logging.Component(opts.Logger, "app"),
		speaker: opts.Speaker,
		locale:  opts.Locale,
		rand:    opts.Rand,
		scripts: opts.Scripts,
		nav:     nav.New(opts.Logger),
		scope:   timer.NewScope(),
		loading: reveal.Counter(100, loadingStep, loadingInterval),
		bar:     progress.New(progress.WithGradient(string(ui.ColorSun), string(ui.ColorOrange)), progress.WithoutPercentage()),
		account: settings.NewAccount(),
	}
	if opts.Store != nil {
		m.journal = settings.NewJournal(opts.Store, opts.Logger)
	}
	return m
}

// Init starts the loading bar.
func (m Model) Init() tea.Cmd {
	return m.loading.Next(m.scope)
}

// Screen is the screen currently shown.
func (m Model) Screen() nav.Screen { return m.nav.Screen() }

func loadingCompleteCmd() tea.Cmd {
	return tea.Tick(loadingSettle, func(time.Time) tea.Msg {
		return LoadingCompleteMsg{}
	})
}

// Update processes messages and returns the updated model and any commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case LoadingCompleteMsg:
		return m.transition(m.nav.CompleteLoading())

	case timer.FiredMsg:
		if m.scope.Owns(msg) {
			if msg.Kind != reveal.Kind || m.loading.Done() {
				return m, nil
			}
			if m.loading.Advance() {
				return m, loadingCompleteCmd()
			}
			return m, m.loading.Next(m.scope)
		}
	}

	return m, m.updateScreen(msg)
}

// updateScreen hands msg to the component that owns the current screen.
func (m *Model) updateScreen(msg tea.Msg) tea.Cmd {
	switch m.nav.Screen() {
	case nav.Reflection:
		if m.reflection != nil {
			return m.reflection.Update(msg)
		}
	case nav.Response:
		if m.response != nil {
			return m.response.Update(msg)
		}
	case nav.Activity:
		if m.activity != nil {
			return m.activity.Update(msg)
		}
	case nav.Account:
		return m.account.Update(msg)
	case nav.ParentalSettings:
		if m.journal != nil {
			return m.journal.Update(msg)
		}
	}
	return nil
}

// transition swaps the screen-local state after a navigation operation.
// Components of the screen being left are disposed so their timers die.
func (m Model) transition(moved bool) (tea.Model, tea.Cmd) {
	if !moved {
		return m, nil
	}
	m.leave()
	return m, m.enter()
}

func (m *Model) leave() {
	if m.response != nil {
		m.response.Dispose()
		m.response = nil
	}
	if m.activity != nil {
		m.activity.Dispose()
		m.activity = nil
	}
	m.reflection = nil
}

func (m *Model) enter() tea.Cmd {
	e := m.nav.Emotion()
	switch m.nav.Screen() {
	case nav.Emotions:
		m.emotionCursor = 0
	case nav.Reflection:
		m.reflection = conversation.NewReflection(e, m.speaker, m.locale)
	case nav.Response:
		m.response = conversation.NewResponse(e, m.scripts, m.rand, m.speaker, m.locale)
		return m.response.Start()
	case nav.Activity:
		m.activity = activity.For(e, activity.Deps{Rand: m.rand, Speaker: m.speaker, Locale: m.locale})
		m.logger.Info().
			Str("session", m.nav.Session().ID).
			Str("emotion", e.String()).
			Str("activity", m.activity.Title()).
			Msg("activity started")
		return m.activity.Start()
	case nav.ParentalSettings:
		if m.journal != nil {
			m.journal.Reload()
		}
	}
	return nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	screen := m.nav.Screen()

	switch key {
	case KeyCtrlC:
		return m, tea.Quit
	case KeyQuit:
		if !m.typing() {
			return m, tea.Quit
		}
	case KeyHome:
		if screen == nav.Reflection {
			return m.transition(m.nav.Back())
		}
		return m.transition(m.nav.GoHome())
	case KeyAccount:
		return m.transition(m.nav.Navigate(nav.Account))
	case KeyParental:
		return m.transition(m.nav.Navigate(nav.ParentalSettings))
	}

	switch screen {
	case nav.Emotions:
		return m.handleEmotionsKey(key)
	case nav.Reflection:
		return m.handleReflectionKey(msg)
	case nav.Response:
		return m.handleResponseKey(msg)
	}
	return m, m.updateScreen(msg)
}

// typing reports whether keys go to a text input, so letters must not act
// as shortcuts.
func (m Model) typing() bool {
	switch m.nav.Screen() {
	case nav.Reflection:
		return true
	case nav.Response:
		return m.response != nil && m.response.Chatting()
	}
	return false
}

func (m Model) handleEmotionsKey(key string) (tea.Model, tea.Cmd) {
	n := len(emotion.All)
	switch key {
	case KeyLeft, KeyH:
		m.emotionCursor = (m.emotionCursor + n - 1) % n
	case KeyRight, KeyL, KeyTab:
		m.emotionCursor = (m.emotionCursor + 1) % n
	case KeyEnter:
		return m.transition(m.nav.ChooseEmotion(emotion.All[m.emotionCursor]))
	default:
		if len(key) == 1 && key[0] >= '1' && int(key[0]-'0') <= n {
			return m.transition(m.nav.ChooseEmotion(emotion.All[key[0]-'1']))
		}
	}
	return m, nil
}

func (m Model) handleReflectionKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.reflection == nil {
		return m, nil
	}
	switch msg.String() {
	case KeyEnter:
		text, ok := m.reflection.Submit()
		if !ok {
			return m, nil
		}
		return m.transition(m.nav.SubmitReflection(text))
	case KeyRecord:
		m.reflection.ToggleRecording()
		return m, nil
	case KeySpeak:
		return m, m.reflection.SpeakQuestion()
	}
	return m, m.reflection.Update(msg)
}

func (m Model) handleResponseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	r := m.response
	if r == nil {
		return m, nil
	}
	key := msg.String()
	if key == KeySpeak {
		return m, r.SpeakLast()
	}
	if r.Typing() {
		return m, nil
	}

	if r.Chatting() {
		switch key {
		case KeyEnter:
			return m, r.SendInput()
		case KeyChatPlay:
			return m.transition(m.nav.Choose(nav.ChoiceActivity))
		case KeyChatFinish:
			return m.transition(m.nav.Choose(nav.ChoiceDone))
		}
		return m, r.Update(msg)
	}

	switch key {
	case KeyContinue:
		if m.nav.Choose(nav.ChoiceContinue) {
			return m, r.ContinueChat()
		}
	case KeyActivity:
		return m.transition(m.nav.Choose(nav.ChoiceActivity))
	case KeyDone:
		return m.transition(m.nav.Choose(nav.ChoiceDone))
	}
	return m, nil
}
