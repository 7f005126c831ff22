package settings

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/rs/zerolog"

	"github.com/ameliastxne/druzhok/internal/db"
	"github.com/ameliastxne/druzhok/internal/emotion"
	"github.com/ameliastxne/druzhok/internal/ui"
)

// JournalStore is the read side of the activity journal.
type JournalStore interface {
	ActivityLog(q db.Query) ([]db.Entry, error)
}

// Filters lists the journal filter options in the order they are offered.
// None stands for all emotions.
var Filters = []emotion.Emotion{emotion.None, emotion.Joy, emotion.Sadness, emotion.Anger, emotion.Fear, emotion.Disgust}

// FilterLabel names a filter option.
func FilterLabel(e emotion.Emotion) string {
	if e == emotion.None {
		return "Усі емоції"
	}
	return e.Label()
}

// Journal is the parental settings page listing past sessions.
type Journal struct {
	store   JournalStore
	logger  zerolog.Logger
	filter  emotion.Emotion
	sortBy  db.Column
	desc    bool
	entries []db.Entry
	err     error
	notice  string
	cursor  int
}

// NewJournal returns the page sorted newest first and loads it.
func NewJournal(store JournalStore, logger zerolog.Logger) *Journal {
	j := &Journal{
		store:  store,
		logger: logger.With().Str("component", "journal").Logger(),
		sortBy: db.ColumnDate,
		desc:   true,
	}
	j.Reload()
	return j
}

// Query is the selection currently shown.
func (j *Journal) Query() db.Query {
	return db.Query{Emotion: j.filter, OrderBy: j.sortBy, Desc: j.desc}
}

// Reload re-reads the rows for the current query.
func (j *Journal) Reload() error {
	j.entries, j.err = j.store.ActivityLog(j.Query())
	if j.err != nil {
		j.logger.Error().Err(j.err).Msg("load journal")
	}
	j.cursor = min(j.cursor, max(0, len(j.entries)-1))
	return j.err
}

// Entries are the rows currently shown.
func (j *Journal) Entries() []db.Entry { return j.entries }

// Err is the error from the last load, if any.
func (j *Journal) Err() error { return j.err }

// Filter is the emotion rows are limited to, or None for all.
func (j *Journal) Filter() emotion.Emotion { return j.filter }

// SetFilter limits the rows to one emotion, or all of them for None.
func (j *Journal) SetFilter(e emotion.Emotion) {
	j.filter = e
	j.Reload()
}

// CycleFilter moves to the next filter option.
func (j *Journal) CycleFilter() {
	for i, f := range Filters {
		if f == j.filter {
			j.SetFilter(Filters[(i+1)%len(Filters)])
			return
		}
	}
	j.SetFilter(emotion.None)
}

// Sort is the current sort column and direction.
func (j *Journal) Sort() (db.Column, bool) { return j.sortBy, j.desc }

// SortBy sorts by col. Picking the current column flips the direction; a new
// column starts descending.
func (j *Journal) SortBy(col db.Column) {
	if col == j.sortBy {
		j.desc = !j.desc
	} else {
		j.sortBy = col
		j.desc = true
	}
	j.Reload()
}

// Download acknowledges a request for the i-th row's log. No file is written.
func (j *Journal) Download(i int) (string, bool) {
	if i < 0 || i >= len(j.entries) {
		return "", false
	}
	j.notice = "Завантаження журналу за " + db.FormatDate(j.entries[i].StartedAt)
	j.logger.Info().Int64("entry", j.entries[i].ID).Msg("download requested")
	return j.notice, true
}

// DownloadAll acknowledges a request for every log. No file is written.
func (j *Journal) DownloadAll() string {
	j.notice = "Завантаження всіх журналів розмов"
	j.logger.Info().Msg("download all requested")
	return j.notice
}

// Notice is the last acknowledgement shown to the caregiver.
func (j *Journal) Notice() string { return j.notice }

func (j *Journal) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch k := key.String(); k {
	case "up", "k":
		j.cursor = max(0, j.cursor-1)
	case "down", "j":
		j.cursor = min(max(0, len(j.entries)-1), j.cursor+1)
	case "f":
		j.CycleFilter()
	case "d":
		j.Download(j.cursor)
	case "D":
		j.DownloadAll()
	default:
		if len(k) == 1 && k[0] >= '1' && int(k[0]-'0') <= len(db.Columns) {
			j.SortBy(db.Columns[k[0]-'1'])
		}
	}
	return nil
}

func (j *Journal) View(width int) string {
	var sb strings.Builder
	sb.WriteString(ui.TitleStyle.Render("Батьківські налаштування"))
	sb.WriteString("\n")
	sb.WriteString(ui.HeadingStyle.Render("Журнал активності дитини"))
	sb.WriteString("\n\n")
	sb.WriteString(ui.DimStyle.Render("Фільтр: "))
	sb.WriteString(ui.SelectedStyle.Render(FilterLabel(j.filter)))
	sb.WriteString("\n\n")

	switch {
	case j.err != nil:
		sb.WriteString(ui.ErrorStyle.Render(fmt.Sprintf("Не вдалося завантажити журнал: %v", j.err)))
	case len(j.entries) == 0:
		sb.WriteString(ui.DimStyle.Render("Немає даних для відображення"))
	default:
		sb.WriteString(RenderTable(j.entries, j.sortBy, j.desc, j.cursor))
	}
	sb.WriteString("\n")

	if j.notice != "" {
		sb.WriteString("\n")
		sb.WriteString(ui.NoticeStyle.Render(j.notice))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (j *Journal) Help() [][2]string {
	return [][2]string{{"↑↓", "Рядок"}, {"f", "Фільтр"}, {"1-4", "Сортувати"}, {"d", "Завантажити"}, {"D", "Завантажити все"}}
}

// RenderTable draws journal rows as a table. The sorted column carries an
// arrow, and the row at selected is highlighted; pass -1 for none.
func RenderTable(entries []db.Entry, sortBy db.Column, desc bool, selected int) string {
	headers := make([]string, len(db.Columns))
	for i, c := range db.Columns {
		h := c.Label()
		if c == sortBy {
			if desc {
				h += " ↓"
			} else {
				h += " ↑"
			}
		}
		headers[i] = h
	}

	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{
			db.FormatDate(e.StartedAt),
			e.Emotion.Label(),
			db.FormatDuration(e.Duration),
			fmt.Sprintf("%d раз(и)", e.Activities),
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(ui.DividerStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == table.HeaderRow:
				return style.Inherit(ui.HeadingStyle)
			case row == selected:
				return style.Inherit(ui.SelectedStyle)
			}
			return style
		})
	return t.Render()
}
