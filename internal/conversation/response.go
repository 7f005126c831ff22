package conversation

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ameliastxne/druzhok/internal/emotion"
	"github.com/ameliastxne/druzhok/internal/reveal"
	"github.com/ameliastxne/druzhok/internal/speech"
	"github.com/ameliastxne/druzhok/internal/timer"
	"github.com/ameliastxne/druzhok/internal/ui"
)

// TypingInterval is how long the tiger takes per character.
const TypingInterval = 25 * time.Millisecond

// Sender says who wrote a message.
type Sender int

const (
	Assistant Sender = iota
	Child
)

func (s Sender) String() string {
	if s == Child {
		return "child"
	}
	return "assistant"
}

// Message is one line of the chat transcript.
type Message struct {
	Sender Sender
	Text   string
}

// Chooser picks a follow-up. *math/rand/v2.Rand satisfies it.
type Chooser interface {
	IntN(n int) int
}

// Response shows the tiger's reply with a typing effect and, on request,
// turns into a short chat.
type Response struct {
	scope      timer.Scope
	scripts    Scripts
	reply      string
	typing     reveal.Text
	chat       bool
	pending    bool // a follow-up is being typed
	transcript []Message
	chooser    Chooser
	speaker    speech.Speaker
	locale     string
	input      textarea.Model
}

// NewResponse prepares the reply to a reflection on e. Nothing is shown
// until Start.
func NewResponse(e emotion.Emotion, scripts Scripts, chooser Chooser, speaker speech.Speaker, locale string) *Response {
	input := textarea.New()
	input.Placeholder = "Напиши відповідь..."
	input.SetHeight(2)
	input.ShowLineNumbers = false
	input.Prompt = "> "
	input.FocusedStyle.CursorLine = lipgloss.NewStyle()
	input.KeyMap.InsertNewline.SetEnabled(false)

	reply := scripts.Reply(e)
	return &Response{
		scope:   timer.NewScope(),
		scripts: scripts,
		reply:   reply,
		typing:  reveal.NewText(reply, TypingInterval),
		chooser: chooser,
		speaker: speaker,
		locale:  locale,
		input:   input,
	}
}

// Start begins typing the scripted reply.
func (r *Response) Start() tea.Cmd {
	return r.typing.Next(r.scope)
}

// Reply is the full scripted reply.
func (r *Response) Reply() string { return r.reply }

// Typing reports whether a reveal is in progress. Input and choices are
// disabled meanwhile.
func (r *Response) Typing() bool { return !r.typing.Done() }

// Displayed is the part of the text being typed that is visible so far.
func (r *Response) Displayed() string { return r.typing.Shown() }

// Chatting reports whether the response turned into a chat.
func (r *Response) Chatting() bool { return r.chat }

// Transcript returns a copy of the chat so far.
func (r *Response) Transcript() []Message {
	return append([]Message(nil), r.transcript...)
}

// ContinueChat switches to chat mode with the scripted reply as the first
// message.
func (r *Response) ContinueChat() tea.Cmd {
	if r.chat || r.Typing() {
		return nil
	}
	r.chat = true
	r.transcript = []Message{{Sender: Assistant, Text: r.reply}}
	return r.input.Focus()
}

// Send adds the child's message and starts typing a follow-up. Blank
// messages and messages sent while the tiger is typing are ignored.
func (r *Response) Send(text string) tea.Cmd {
	text = strings.TrimSpace(text)
	if !r.chat || r.Typing() || text == "" {
		return nil
	}
	r.transcript = append(r.transcript, Message{Sender: Child, Text: text})

	followUps := r.scripts.FollowUps
	next := followUps[r.chooser.IntN(len(followUps))]
	r.typing = reveal.NewText(next, TypingInterval)
	r.pending = true
	return r.typing.Next(r.scope)
}

// SendInput sends whatever is in the chat input and clears it.
func (r *Response) SendInput() tea.Cmd {
	cmd := r.Send(r.input.Value())
	if cmd != nil {
		r.input.Reset()
	}
	return cmd
}

// Tick reveals one more character.
func (r *Response) Tick() tea.Cmd {
	if !r.typing.Advance() {
		return r.typing.Next(r.scope)
	}
	if r.pending {
		r.pending = false
		r.transcript = append(r.transcript, Message{Sender: Assistant, Text: r.typing.Full()})
	}
	return nil
}

// Speak reads the i-th transcript message aloud. Before chat mode the only
// message is the scripted reply.
func (r *Response) Speak(i int) tea.Cmd {
	if !r.chat {
		if i != 0 {
			return nil
		}
		return speech.Say(r.speaker, speech.Utterance{Text: r.reply, Locale: r.locale})
	}
	if i < 0 || i >= len(r.transcript) {
		return nil
	}
	return speech.Say(r.speaker, speech.Utterance{Text: r.transcript[i].Text, Locale: r.locale})
}

// SpeakLast reads the newest tiger message aloud.
func (r *Response) SpeakLast() tea.Cmd {
	for i := len(r.transcript) - 1; i >= 0; i-- {
		if r.transcript[i].Sender == Assistant {
			return r.Speak(i)
		}
	}
	return r.Speak(0)
}

// Update handles typing ticks and, in chat mode, key presses for the input.
func (r *Response) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case timer.FiredMsg:
		if r.scope.Owns(msg) && msg.Kind == reveal.Kind {
			return r.Tick()
		}
		return nil
	case tea.KeyMsg:
		if !r.chat {
			return nil
		}
	}
	var cmd tea.Cmd
	r.input, cmd = r.input.Update(msg)
	return cmd
}

// Dispose stops the typing effect.
func (r *Response) Dispose() { r.scope.Dispose() }

func (r *Response) View(width int) string {
	bubbleWidth := max(20, min(70, width-6))
	r.input.SetWidth(max(20, width-4))

	var sb strings.Builder
	if !r.chat {
		sb.WriteString(ui.TigerStyle.Render("🐯 Дружок"))
		sb.WriteString("\n")
		sb.WriteString(ui.BubbleStyle.Width(bubbleWidth).Render(r.Displayed() + r.cursor()))
		sb.WriteString("\n")
		return sb.String()
	}

	for _, m := range r.transcript {
		if m.Sender == Child {
			sb.WriteString(ui.ChildStyle.Render("🌻 " + m.Text))
		} else {
			sb.WriteString(ui.TigerStyle.Render("🐯 "))
			sb.WriteString(ui.BubbleStyle.Width(bubbleWidth).Render(m.Text))
		}
		sb.WriteString("\n")
	}
	if r.pending {
		sb.WriteString(ui.TigerStyle.Render("🐯 "))
		sb.WriteString(ui.BubbleStyle.Width(bubbleWidth).Render(r.Displayed() + r.cursor()))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(r.input.View())
	return sb.String()
}

func (r *Response) cursor() string {
	if r.Typing() {
		return ui.SelectedStyle.Render("|")
	}
	return ""
}
