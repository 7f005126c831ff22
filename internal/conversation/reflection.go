package conversation

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ameliastxne/druzhok/internal/emotion"
	"github.com/ameliastxne/druzhok/internal/speech"
	"github.com/ameliastxne/druzhok/internal/ui"
)

const reflectionPlaceholder = "Напиши або розкажи, як ти почуваєшся..."

// Reflection is the screen where the child says what happened.
type Reflection struct {
	emotion   emotion.Emotion
	input     textarea.Model
	recording bool
	speaker   speech.Speaker
	locale    string
}

// NewReflection prepares the prompt for e. Anger comes with a pre-written
// example answer the child can edit.
func NewReflection(e emotion.Emotion, speaker speech.Speaker, locale string) *Reflection {
	input := textarea.New()
	input.Placeholder = reflectionPlaceholder
	input.SetHeight(4)
	input.ShowLineNumbers = false
	input.Prompt = "┃ "
	input.FocusedStyle.CursorLine = lipgloss.NewStyle()
	input.KeyMap.InsertNewline.SetEnabled(false)
	input.SetValue(e.DefaultReflection())
	input.Focus()

	return &Reflection{emotion: e, input: input, speaker: speaker, locale: locale}
}

// Question is the prompt shown above the input.
func (r *Reflection) Question() string { return r.emotion.Question() }

// Value is what the child has typed so far.
func (r *Reflection) Value() string { return r.input.Value() }

// SetValue replaces the typed text.
func (r *Reflection) SetValue(s string) { r.input.SetValue(s) }

// ToggleRecording flips the microphone indicator. No audio is captured.
func (r *Reflection) ToggleRecording() bool {
	r.recording = !r.recording
	return r.recording
}

// Recording reports whether the microphone indicator is on.
func (r *Reflection) Recording() bool { return r.recording }

// Submit returns the reflection when it holds more than whitespace.
func (r *Reflection) Submit() (string, bool) {
	text := r.input.Value()
	if strings.TrimSpace(text) == "" {
		return "", false
	}
	return text, true
}

// SpeakQuestion reads the prompt aloud.
func (r *Reflection) SpeakQuestion() tea.Cmd {
	return speech.Say(r.speaker, speech.Utterance{Text: r.Question(), Locale: r.locale})
}

// Update feeds key presses to the text input.
func (r *Reflection) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	r.input, cmd = r.input.Update(msg)
	return cmd
}

func (r *Reflection) View(width int) string {
	r.input.SetWidth(max(20, width-4))

	var sb strings.Builder
	sb.WriteString(ui.HeadingStyle.Render(r.Question()))
	sb.WriteString("\n\n")
	sb.WriteString(r.input.View())
	sb.WriteString("\n")
	if r.recording {
		sb.WriteString(ui.RecordingStyle.Render("● Записую... натисни ctrl+r, щоб зупинити"))
		sb.WriteString("\n")
	}
	return sb.String()
}
