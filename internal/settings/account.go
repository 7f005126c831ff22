// Package settings holds the caregiver pages: account preferences and the
// child's activity journal. Everything here lives in memory only.
package settings

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ameliastxne/druzhok/internal/ui"
)

// Profile describes the child.
type Profile struct {
	Name     string
	Age      string
	Language string
}

// DefaultProfile is the sample child.
var DefaultProfile = Profile{Name: "Борис Петров", Age: "7 років", Language: "Російська"}

// Frequency is how often the summary e-mail is sent.
type Frequency int

const (
	Daily Frequency = iota
	Weekly
	Monthly
)

var frequencies = []Frequency{Daily, Weekly, Monthly}

func (f Frequency) String() string {
	return [...]string{"daily", "weekly", "monthly"}[f]
}

// Label is the Ukrainian name of the frequency.
func (f Frequency) Label() string {
	return [...]string{"Щодня", "Щотижня", "Щомісяця"}[f]
}

// Switch is one on/off notification preference.
type Switch int

const (
	PushNotifications Switch = iota
	SafetyAlerts
	ActivityLogging
	QuietHours
	SummaryCharts
)

// Switches lists every preference in display order.
var Switches = []Switch{PushNotifications, SafetyAlerts, ActivityLogging, QuietHours, SummaryCharts}

var switchText = map[Switch][2]string{
	PushNotifications: {"Push-сповіщення", "Емоція дитини щодня"},
	SafetyAlerts:      {"Сповіщення про безпеку", "Автоматичні сповіщення при виявленні занепокоєння"},
	ActivityLogging:   {"Журнал активності", "Записувати всі дії в додатку"},
	QuietHours:        {"Тихі години", "Вимкнути сповіщення вночі"},
	SummaryCharts:     {"Підсумкові графіки", "Візуальний огляд емоцій та вправ"},
}

// Title is the switch's name.
func (s Switch) Title() string { return switchText[s][0] }

// Description explains what the switch does.
func (s Switch) Description() string { return switchText[s][1] }

// Account is the caregiver's account page.
type Account struct {
	Profile   Profile
	frequency Frequency
	switches  map[Switch]bool
	cursor    int // 0 is the e-mail frequency, then one row per switch
}

// NewAccount returns the page with its default preferences.
func NewAccount() *Account {
	return &Account{
		Profile:   DefaultProfile,
		frequency: Weekly,
		switches: map[Switch]bool{
			PushNotifications: true,
			SafetyAlerts:      true,
			ActivityLogging:   true,
			QuietHours:        false,
			SummaryCharts:     true,
		},
	}
}

// Frequency is the chosen summary e-mail frequency.
func (a *Account) Frequency() Frequency { return a.frequency }

// SetFrequency picks the summary e-mail frequency.
func (a *Account) SetFrequency(f Frequency) bool {
	if f < Daily || f > Monthly {
		return false
	}
	a.frequency = f
	return true
}

// Enabled reports whether a switch is on.
func (a *Account) Enabled(s Switch) bool { return a.switches[s] }

// Toggle flips a switch and returns its new state.
func (a *Account) Toggle(s Switch) bool {
	if _, ok := a.switches[s]; !ok {
		return false
	}
	a.switches[s] = !a.switches[s]
	return a.switches[s]
}

func (a *Account) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	rows := 1 + len(Switches)
	switch key.String() {
	case "up", "k":
		a.cursor = (a.cursor + rows - 1) % rows
	case "down", "j":
		a.cursor = (a.cursor + 1) % rows
	case "left", "h":
		if a.cursor == 0 {
			a.SetFrequency(frequencies[(int(a.frequency)+len(frequencies)-1)%len(frequencies)])
		}
	case "right", "l":
		if a.cursor == 0 {
			a.SetFrequency(frequencies[(int(a.frequency)+1)%len(frequencies)])
		}
	case "enter", " ":
		if a.cursor > 0 {
			a.Toggle(Switches[a.cursor-1])
		}
	}
	return nil
}

func (a *Account) View(width int) string {
	var sb strings.Builder
	sb.WriteString(ui.TitleStyle.Render("Обліковий запис"))
	sb.WriteString("\n\n")

	sb.WriteString(ui.HeadingStyle.Render("Профіль дитини"))
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "  %s %s\n", ui.DimStyle.Render("Ім'я:"), a.Profile.Name)
	fmt.Fprintf(&sb, "  %s %s\n", ui.DimStyle.Render("Вік: "), a.Profile.Age)
	fmt.Fprintf(&sb, "  %s %s\n\n", ui.DimStyle.Render("Мова:"), a.Profile.Language)

	sb.WriteString(ui.HeadingStyle.Render("Налаштування сповіщень"))
	sb.WriteString("\n")

	var freqs []string
	for _, f := range frequencies {
		if f == a.frequency {
			freqs = append(freqs, ui.SelectedStyle.Render("["+f.Label()+"]"))
		} else {
			freqs = append(freqs, ui.DimStyle.Render(f.Label()))
		}
	}
	sb.WriteString(a.row(0, "Надсилати підсумкові листи  "+strings.Join(freqs, " ")))

	for i, s := range Switches {
		mark := ui.DimStyle.Render("○ вимк")
		if a.switches[s] {
			mark = ui.DoneStyle.Render("● увімк")
		}
		line := fmt.Sprintf("%s  %s\n    %s", mark, s.Title(), ui.DimStyle.Render(s.Description()))
		sb.WriteString(a.row(i+1, line))
	}
	return sb.String()
}

func (a *Account) row(i int, line string) string {
	if i == a.cursor {
		return ui.SelectedStyle.Render("> ") + line + "\n"
	}
	return "  " + line + "\n"
}

func (a *Account) Help() [][2]string {
	return [][2]string{{"↑↓", "Рядок"}, {"←→", "Частота"}, {"Enter", "Перемкнути"}}
}
