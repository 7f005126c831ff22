package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ameliastxne/druzhok/internal/emotion"
	"github.com/ameliastxne/druzhok/internal/nav"
	"github.com/ameliastxne/druzhok/internal/settings"
	"github.com/ameliastxne/druzhok/internal/ui"
)

var emotionFaces = map[emotion.Emotion]string{
	emotion.Joy:     "😊",
	emotion.Sadness: "😢",
	emotion.Fear:    "😨",
	emotion.Disgust: "🤢",
	emotion.Anger:   "😠",
}

// View renders the full TUI.
func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	if m.nav.Screen() == nav.Loading {
		return m.renderLoading()
	}

	var sections []string
	sections = append(sections, m.renderHeader())
	sections = append(sections, ui.DividerStyle.Render(strings.Repeat("─", m.width)))
	sections = append(sections, m.renderBody())
	sections = append(sections, ui.DividerStyle.Render(strings.Repeat("─", m.width)))
	sections = append(sections, m.renderFooter())

	return strings.Join(sections, "\n")
}

func (m Model) renderLoading() string {
	m.bar.Width = max(10, min(50, m.width-4))

	var sb strings.Builder
	sb.WriteString(ui.TigerStyle.Render("🐯"))
	sb.WriteString("\n\n")
	sb.WriteString(ui.TitleStyle.Render("Дружок"))
	sb.WriteString("\n")
	sb.WriteString(ui.DimStyle.Render("Твій друг для емоцій"))
	sb.WriteString("\n\n")
	sb.WriteString(m.bar.ViewAs(m.loading.Fraction()))
	sb.WriteString(" ")
	sb.WriteString(ui.DimStyle.Render(fmt.Sprintf("%d%%", m.loading.Pos())))
	return sb.String()
}

func (m Model) renderHeader() string {
	title := ui.TitleStyle.Render("ДРУЖОК 🐯")
	profile := ui.ProfileStyle.Render("🌻 " + settings.DefaultProfile.Name)

	var crumb string
	if e := m.nav.Emotion(); e.Valid() {
		crumb = ui.DimStyle.Render(" · " + emotionFaces[e] + " " + e.Label())
	}

	left := title + crumb
	gap := max(1, m.width-lipgloss.Width(left)-lipgloss.Width(profile))
	return left + strings.Repeat(" ", gap) + profile
}

func (m Model) renderBody() string {
	switch m.nav.Screen() {
	case nav.Emotions:
		return m.renderEmotions()
	case nav.Reflection:
		if m.reflection != nil {
			return m.reflection.View(m.width)
		}
	case nav.Response:
		if m.response != nil {
			return m.renderResponse()
		}
	case nav.Activity:
		if m.activity != nil {
			return ui.HeadingStyle.Render(m.activity.Title()) + "\n\n" + m.activity.View(m.width)
		}
	case nav.Account:
		return m.account.View(m.width)
	case nav.ParentalSettings:
		if m.journal != nil {
			return m.journal.View(m.width)
		}
		return ui.ErrorStyle.Render("Журнал недоступний")
	}
	return ""
}

func (m Model) renderEmotions() string {
	var sb strings.Builder
	sb.WriteString(ui.HeadingStyle.Render("Як ти себе почуваєш сьогодні?"))
	sb.WriteString("\n\n")

	for i, e := range emotion.All {
		cell := fmt.Sprintf("%d %s %s", i+1, emotionFaces[e], e.Label())
		if i == m.emotionCursor {
			cell = ui.SelectedStyle.Render("[" + cell + "]")
		} else {
			cell = " " + cell + " "
		}
		sb.WriteString(ui.PadRight(cell, 16))
		// three on the top row, two below
		if i == 2 {
			sb.WriteString("\n\n")
		}
	}
	sb.WriteString("\n")
	return sb.String()
}

func (m Model) renderResponse() string {
	r := m.response
	var sb strings.Builder
	sb.WriteString(r.View(m.width))
	sb.WriteString("\n")
	if r.Typing() {
		return sb.String()
	}
	if r.Chatting() {
		sb.WriteString(ui.Key("ctrl+g", "🎮 Пограймо разом") + "  " + ui.Key("ctrl+d", "🏠 На сьогодні досить"))
		return sb.String()
	}
	sb.WriteString(ui.Key("c", "💬 Продовжити розмову") + "  " +
		ui.Key("a", "🎮 Пограймо разом") + "  " +
		ui.Key("d", "🏠 На сьогодні досить"))
	return sb.String()
}

func (m Model) renderFooter() string {
	var parts []string

	switch m.nav.Screen() {
	case nav.Emotions:
		parts = append(parts, ui.Key("←→", "Вибір"), ui.Key("Enter", "Обрати"))
	case nav.Reflection:
		parts = append(parts, ui.Key("Enter", "Надіслати"), ui.Key("ctrl+r", "Мікрофон"), ui.Key("ctrl+t", "Прослухати"), ui.Key("Esc", "Назад"))
	case nav.Response:
		parts = append(parts, ui.Key("ctrl+t", "Прослухати"))
		if m.response != nil && m.response.Chatting() {
			parts = append(parts, ui.Key("Enter", "Надіслати"))
		}
	case nav.Activity:
		if m.activity != nil {
			for _, h := range m.activity.Help() {
				parts = append(parts, ui.Key(h[0], h[1]))
			}
		}
	case nav.Account:
		for _, h := range m.account.Help() {
			parts = append(parts, ui.Key(h[0], h[1]))
		}
	case nav.ParentalSettings:
		if m.journal != nil {
			for _, h := range m.journal.Help() {
				parts = append(parts, ui.Key(h[0], h[1]))
			}
		}
	}

	if m.nav.Screen() != nav.Emotions && m.nav.Screen() != nav.Reflection {
		parts = append(parts, ui.Key("Esc", "Додому"))
	}
	parts = append(parts, ui.Key("F2", "Акаунт"), ui.Key("F3", "Батькам"))
	if m.typing() {
		parts = append(parts, ui.Key("ctrl+c", "Вихід"))
	} else {
		parts = append(parts, ui.Key("q", "Вихід"))
	}

	return strings.Join(parts, "  ")
}
