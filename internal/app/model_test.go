package app

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/ameliastxne/druzhok/internal/activity"
	"github.com/ameliastxne/druzhok/internal/db"
	"github.com/ameliastxne/druzhok/internal/emotion"
	"github.com/ameliastxne/druzhok/internal/nav"
	"github.com/ameliastxne/druzhok/internal/reveal"
)

type fixedRand struct{}

func (fixedRand) Float64() float64 { return 0.5 }
func (fixedRand) IntN(int) int     { return 0 }

func newTestModel(t *testing.T) Model {
	t.Helper()
	store, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	m := New(Options{Logger: zerolog.Nop(), Rand: fixedRand{}, Store: store})
	m.width = 80
	m.height = 24
	return m
}

// ready returns a model on the emotions screen.
func ready(t *testing.T) Model {
	t.Helper()
	return send(t, newTestModel(t), LoadingCompleteMsg{})
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	updated, _ := m.Update(msg)
	return updated.(Model)
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func finishResponse(t *testing.T, m Model) {
	t.Helper()
	for i := 0; m.response.Typing(); i++ {
		if i > 10000 {
			t.Fatal("response never finished typing")
		}
		m.response.Tick()
	}
}

// onResponse walks to the response screen for anger, whose reflection is
// pre-filled.
func onResponse(t *testing.T) Model {
	t.Helper()
	m := send(t, ready(t), runeKey('5'))
	if m.nav.Emotion() != emotion.Anger {
		t.Fatalf("emotion = %v, want anger", m.nav.Emotion())
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Screen() != nav.Response {
		t.Fatalf("screen = %v, want response", m.Screen())
	}
	return m
}

func TestNewModel(t *testing.T) {
	m := newTestModel(t)
	if m.Screen() != nav.Loading {
		t.Errorf("screen = %v, want loading", m.Screen())
	}
	if m.Init() == nil {
		t.Error("Init should start the loading bar")
	}
}

func TestLoadingCountsToHundredOnce(t *testing.T) {
	m := newTestModel(t)

	var last tea.Cmd
	for i := 0; i < 50; i++ {
		updated, cmd := m.Update(m.scope.Fire(reveal.Kind, 0))
		m = updated.(Model)
		if cmd == nil {
			t.Fatalf("tick %d: no follow-up command", i)
		}
		last = cmd
	}
	if m.loading.Pos() != 100 {
		t.Fatalf("loading = %d, want 100", m.loading.Pos())
	}
	if last == nil {
		t.Fatal("expected completion signal")
	}

	_, cmd := m.Update(m.scope.Fire(reveal.Kind, 0))
	if cmd != nil {
		t.Error("no more ticks once full")
	}
	if m.Screen() != nav.Loading {
		t.Error("screen should wait for the completion signal")
	}

	m = send(t, m, LoadingCompleteMsg{})
	if m.Screen() != nav.Emotions {
		t.Errorf("screen = %v, want emotions", m.Screen())
	}
	m = send(t, m, LoadingCompleteMsg{})
	if m.Screen() != nav.Emotions {
		t.Errorf("second signal moved screen to %v", m.Screen())
	}
}

func TestChooseEmotionByCursor(t *testing.T) {
	m := ready(t)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.Screen() != nav.Reflection {
		t.Fatalf("screen = %v, want reflection", m.Screen())
	}
	if m.nav.Emotion() != emotion.Sadness {
		t.Errorf("emotion = %v, want sadness", m.nav.Emotion())
	}
	if m.reflection == nil || m.reflection.Value() != "" {
		t.Error("sadness reflection should start empty")
	}
}

func TestBlankReflectionStays(t *testing.T) {
	m := send(t, ready(t), runeKey('1'))
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Screen() != nav.Reflection {
		t.Errorf("screen = %v, want reflection", m.Screen())
	}
}

func TestTypingInReflectionDoesNotQuit(t *testing.T) {
	m := send(t, ready(t), runeKey('1'))
	m = send(t, m, runeKey('q'))
	if m.Screen() != nav.Reflection {
		t.Fatalf("screen = %v, want reflection", m.Screen())
	}
	if !strings.Contains(m.reflection.Value(), "q") {
		t.Errorf("reflection = %q, want it to contain q", m.reflection.Value())
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Screen() != nav.Response {
		t.Errorf("screen = %v, want response", m.Screen())
	}
	if m.nav.ReflectionText() != "q" {
		t.Errorf("reflection text = %q", m.nav.ReflectionText())
	}
}

func TestQuitOnEmotions(t *testing.T) {
	m := ready(t)
	_, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit on the emotions screen")
	}
}

func TestRecordingToggle(t *testing.T) {
	m := send(t, ready(t), runeKey('2'))
	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	if !m.reflection.Recording() {
		t.Error("ctrl+r should start recording")
	}
	if !strings.Contains(m.View(), "Записую") {
		t.Error("view should show the recording indicator")
	}
}

func TestEscOnReflectionGoesBack(t *testing.T) {
	m := send(t, ready(t), runeKey('3'))
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.Screen() != nav.Emotions {
		t.Errorf("screen = %v, want emotions", m.Screen())
	}
	if m.reflection != nil {
		t.Error("reflection state should be dropped")
	}
}

func TestResponseChoicesWaitForReveal(t *testing.T) {
	m := onResponse(t)
	if !m.response.Typing() {
		t.Fatal("response should start typing")
	}

	m = send(t, m, runeKey('a'))
	if m.Screen() != nav.Response {
		t.Fatalf("choice during reveal moved to %v", m.Screen())
	}

	finishResponse(t, m)
	m = send(t, m, runeKey('a'))
	if m.Screen() != nav.Activity {
		t.Fatalf("screen = %v, want activity", m.Screen())
	}
	if _, ok := m.activity.(*activity.Breathing); !ok {
		t.Errorf("anger activity = %T, want breathing", m.activity)
	}
	if m.response != nil {
		t.Error("response should be disposed on leaving")
	}
}

func TestResponseDoneGoesHome(t *testing.T) {
	m := onResponse(t)
	finishResponse(t, m)

	m = send(t, m, runeKey('d'))
	if m.Screen() != nav.Emotions {
		t.Fatalf("screen = %v, want emotions", m.Screen())
	}
	if m.nav.Emotion() != emotion.None || m.nav.ReflectionText() != "" {
		t.Error("session should be cleared")
	}
}

func TestContinueChat(t *testing.T) {
	m := onResponse(t)
	finishResponse(t, m)

	m = send(t, m, runeKey('c'))
	if m.Screen() != nav.Response || !m.response.Chatting() {
		t.Fatal("c should switch to chat mode")
	}
	if got := len(m.response.Transcript()); got != 1 {
		t.Fatalf("transcript = %d messages, want 1", got)
	}

	for _, r := range "дякую" {
		m = send(t, m, runeKey(r))
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	tr := m.response.Transcript()
	if len(tr) != 2 || tr[1].Text != "дякую" {
		t.Fatalf("transcript = %+v", tr)
	}

	finishResponse(t, m)
	if got := len(m.response.Transcript()); got != 3 {
		t.Fatalf("transcript = %d messages, want 3", got)
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlG})
	if m.Screen() != nav.Activity {
		t.Errorf("screen = %v, want activity", m.Screen())
	}
}

func TestEscFromActivityClearsSession(t *testing.T) {
	m := onResponse(t)
	finishResponse(t, m)
	m = send(t, m, runeKey('a'))

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.Screen() != nav.Emotions {
		t.Fatalf("screen = %v, want emotions", m.Screen())
	}
	if m.activity != nil {
		t.Error("activity should be disposed")
	}
	if m.nav.Emotion() != emotion.None {
		t.Error("emotion should be cleared")
	}
}

func TestCaregiverPages(t *testing.T) {
	m := ready(t)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyF2})
	if m.Screen() != nav.Account {
		t.Fatalf("screen = %v, want account", m.Screen())
	}
	if !strings.Contains(m.View(), "Борис Петров") {
		t.Error("account view should show the profile")
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyF3})
	if m.Screen() != nav.ParentalSettings {
		t.Fatalf("screen = %v, want parental settings", m.Screen())
	}
	if !strings.Contains(m.View(), "Журнал активності дитини") {
		t.Error("parental view should show the journal")
	}

	m = send(t, m, runeKey('D'))
	if !strings.Contains(m.View(), "Завантаження всіх журналів розмов") {
		t.Error("download all should show a notice")
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.Screen() != nav.Emotions {
		t.Errorf("screen = %v, want emotions", m.Screen())
	}
}

func TestCaregiverPagesBlockedWhileLoading(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyF2})
	if m.Screen() != nav.Loading {
		t.Errorf("screen = %v, want loading", m.Screen())
	}
}

func TestViewRendersWithSize(t *testing.T) {
	m := ready(t)

	view := m.View()
	if view == "" {
		t.Error("view should not be empty")
	}
	if view == "Initializing..." {
		t.Error("view should not show initializing with size set")
	}
	if !strings.Contains(view, "Як ти себе почуваєш сьогодні?") {
		t.Error("emotions view should ask how the child feels")
	}
}

func TestViewWithoutSize(t *testing.T) {
	m := newTestModel(t)
	m.width = 0
	view := m.View()
	if view != "Initializing..." {
		t.Errorf("view without size = %q, want 'Initializing...'", view)
	}
}
