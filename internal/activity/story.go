package activity

import (
	_ "embed"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"gopkg.in/yaml.v3"

	"github.com/ameliastxne/druzhok/internal/speech"
	"github.com/ameliastxne/druzhok/internal/timer"
	"github.com/ameliastxne/druzhok/internal/ui"
)

//go:embed story.yaml
var storyYAML []byte

// StoryChoice is a button under a page.
type StoryChoice struct {
	Text string `yaml:"text"`
	Next int    `yaml:"next"`
}

// Page is one card of the story.
type Page struct {
	Image   string        `yaml:"image"`
	Text    string        `yaml:"text"`
	Choices []StoryChoice `yaml:"choices"`
}

// Terminal reports whether the page ends the story.
func (p Page) Terminal() bool { return len(p.Choices) == 0 }

// Book is the whole story graph.
type Book struct {
	Title string `yaml:"title"`
	Pages []Page `yaml:"pages"`
}

// LoadStory parses a story graph and checks that every choice leads to an
// existing page.
func LoadStory(data []byte) (Book, error) {
	var b Book
	if err := yaml.Unmarshal(data, &b); err != nil {
		return Book{}, fmt.Errorf("parse story: %w", err)
	}
	if len(b.Pages) == 0 {
		return Book{}, fmt.Errorf("parse story: no pages")
	}
	for i, p := range b.Pages {
		for _, c := range p.Choices {
			if c.Next < 0 || c.Next >= len(b.Pages) {
				return Book{}, fmt.Errorf("parse story: page %d choice %q leads to missing page %d", i, c.Text, c.Next)
			}
		}
	}
	return b, nil
}

var defaultBook = mustLoadStory(storyYAML)

func mustLoadStory(data []byte) Book {
	b, err := LoadStory(data)
	if err != nil {
		panic(err)
	}
	return b
}

const (
	turnDuration = 300 * time.Millisecond
	storyRate    = 0.9

	kindTurn timer.Kind = "turn"
)

// Story is the branching picture book about the tiger cub.
type Story struct {
	scope   timer.Scope
	book    Book
	page    int
	turning bool
	next    int
	speaker speech.Speaker
	locale  string
}

// NewStory opens the built-in book at the first page.
func NewStory(speaker speech.Speaker, locale string) *Story {
	return newStoryFrom(defaultBook, speaker, locale)
}

func newStoryFrom(book Book, speaker speech.Speaker, locale string) *Story {
	if locale == "" {
		locale = speech.DefaultLocale
	}
	return &Story{scope: timer.NewScope(), book: book, speaker: speaker, locale: locale}
}

func (s *Story) Title() string { return s.book.Title }

func (s *Story) Start() tea.Cmd { return nil }

// Index is the current page number.
func (s *Story) Index() int { return s.page }

// Page is the current page.
func (s *Story) Page() Page { return s.book.Pages[s.page] }

// Turning reports whether a page transition is in progress.
func (s *Story) Turning() bool { return s.turning }

// Terminal reports whether the story has reached its last page.
func (s *Story) Terminal() bool { return s.Page().Terminal() }

// Choose follows the i-th choice of the current page. The page changes when
// the returned transition timer fires; choices made meanwhile are ignored.
func (s *Story) Choose(i int) tea.Cmd {
	choices := s.Page().Choices
	if s.turning || i < 0 || i >= len(choices) {
		return nil
	}
	s.turning = true
	s.next = choices[i].Next
	return s.scope.After(turnDuration, kindTurn)
}

// Restart goes back to the first page. Only the last page offers it.
func (s *Story) Restart() bool {
	if !s.Terminal() || s.turning {
		return false
	}
	s.page = 0
	return true
}

// Speak reads the current page aloud.
func (s *Story) Speak() tea.Cmd {
	return speech.Say(s.speaker, speech.Utterance{Text: s.Page().Text, Locale: s.locale, Rate: storyRate})
}

func (s *Story) Complete() bool { return s.Terminal() }

func (s *Story) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case timer.FiredMsg:
		if s.scope.Owns(msg) && msg.Kind == kindTurn && s.turning {
			s.page = s.next
			s.turning = false
		}
	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "s":
			return s.Speak()
		case "r":
			s.Restart()
		case "enter", " ":
			return s.Choose(0)
		default:
			if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
				return s.Choose(int(key[0] - '1'))
			}
		}
	}
	return nil
}

func (s *Story) Reset() tea.Cmd {
	s.scope.Dispose()
	s.page = 0
	s.turning = false
	return nil
}

func (s *Story) Dispose() { s.scope.Dispose() }

func (s *Story) View(width int) string {
	if s.turning {
		return ui.DimStyle.Render("…")
	}

	p := s.Page()
	var sb strings.Builder
	sb.WriteString(p.Image)
	sb.WriteString("\n\n")
	sb.WriteString(ui.BubbleStyle.Width(max(20, min(60, width-4))).Render(p.Text))
	sb.WriteString("\n\n")
	if p.Terminal() {
		sb.WriteString(ui.DoneStyle.Render("Кінець"))
		return sb.String()
	}
	for i, c := range p.Choices {
		sb.WriteString(fmt.Sprintf("%s %s\n", ui.SelectedStyle.Render(fmt.Sprintf("%d", i+1)), c.Text))
	}
	return sb.String()
}

func (s *Story) Help() [][2]string {
	if s.Terminal() {
		return [][2]string{{"s", "Прослухати"}, {"r", "Читати знову"}}
	}
	return [][2]string{{"1-2", "Вибір"}, {"s", "Прослухати"}}
}
