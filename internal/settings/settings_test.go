package settings

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ameliastxne/druzhok/internal/db"
	"github.com/ameliastxne/druzhok/internal/emotion"
)

func openJournal(t *testing.T) *Journal {
	t.Helper()
	store, err := db.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return NewJournal(store, zerolog.Nop())
}

type failingStore struct{}

func (failingStore) ActivityLog(db.Query) ([]db.Entry, error) {
	return nil, errors.New("disk on fire")
}

func TestAccountDefaults(t *testing.T) {
	a := NewAccount()
	assert.Equal(t, "Борис Петров", a.Profile.Name)
	assert.Equal(t, Weekly, a.Frequency())

	want := map[Switch]bool{
		PushNotifications: true,
		SafetyAlerts:      true,
		ActivityLogging:   true,
		QuietHours:        false,
		SummaryCharts:     true,
	}
	for s, on := range want {
		assert.Equal(t, on, a.Enabled(s), s.Title())
	}
}

func TestAccountToggleAndFrequency(t *testing.T) {
	a := NewAccount()
	assert.True(t, a.Toggle(QuietHours))
	assert.False(t, a.Toggle(QuietHours))
	assert.False(t, a.Toggle(Switch(42)))

	assert.True(t, a.SetFrequency(Monthly))
	assert.Equal(t, Monthly, a.Frequency())
	assert.False(t, a.SetFrequency(Frequency(7)))
	assert.Equal(t, Monthly, a.Frequency())
}

func TestAccountKeys(t *testing.T) {
	a := NewAccount()
	a.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, Monthly, a.Frequency())
	a.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, Daily, a.Frequency())

	a.Update(tea.KeyMsg{Type: tea.KeyDown})
	a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, a.Enabled(PushNotifications))
}

func TestJournalDefaultsToNewestFirst(t *testing.T) {
	j := openJournal(t)
	col, desc := j.Sort()
	assert.Equal(t, db.ColumnDate, col)
	assert.True(t, desc)

	entries := j.Entries()
	require.Len(t, entries, 5)
	assert.Equal(t, int64(5), entries[0].ID)
	assert.Equal(t, emotion.None, j.Filter())
}

func TestJournalSortToggles(t *testing.T) {
	j := openJournal(t)

	j.SortBy(db.ColumnDuration)
	col, desc := j.Sort()
	assert.Equal(t, db.ColumnDuration, col)
	assert.True(t, desc, "new column starts descending")
	assert.Equal(t, int64(3), j.Entries()[0].ID)

	j.SortBy(db.ColumnDuration)
	_, desc = j.Sort()
	assert.False(t, desc)
	assert.Equal(t, int64(4), j.Entries()[0].ID)

	j.SortBy(db.ColumnDate)
	col, desc = j.Sort()
	assert.Equal(t, db.ColumnDate, col)
	assert.True(t, desc)
}

func TestJournalFilter(t *testing.T) {
	j := openJournal(t)

	j.SetFilter(emotion.Anger)
	require.Len(t, j.Entries(), 2)
	for _, e := range j.Entries() {
		assert.Equal(t, emotion.Anger, e.Emotion)
	}

	j.SetFilter(emotion.Disgust)
	assert.Empty(t, j.Entries())
	assert.Contains(t, j.View(80), "Немає даних для відображення")

	j.SetFilter(emotion.None)
	assert.Len(t, j.Entries(), 5)
}

func TestJournalCycleFilter(t *testing.T) {
	j := openJournal(t)
	for _, want := range append(Filters[1:], emotion.None) {
		j.CycleFilter()
		assert.Equal(t, want, j.Filter())
	}
}

func TestJournalDownloadNotices(t *testing.T) {
	j := openJournal(t)
	j.SortBy(db.ColumnDate) // oldest first

	notice, ok := j.Download(0)
	require.True(t, ok)
	assert.Equal(t, "Завантаження журналу за 5 жовтня 2025 р. о 14:30", notice)

	_, ok = j.Download(99)
	assert.False(t, ok)

	assert.Equal(t, "Завантаження всіх журналів розмов", j.DownloadAll())
	assert.Equal(t, "Завантаження всіх журналів розмов", j.Notice())
}

func TestJournalKeys(t *testing.T) {
	j := openJournal(t)
	j.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'4'}})
	col, _ := j.Sort()
	assert.Equal(t, db.ColumnActivities, col)

	j.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'D'}})
	assert.Equal(t, "Завантаження всіх журналів розмов", j.Notice())
}

func TestJournalShowsLoadError(t *testing.T) {
	j := NewJournal(failingStore{}, zerolog.Nop())
	assert.Error(t, j.Err())
	assert.Contains(t, j.View(80), "disk on fire")
}

func TestRenderTableMarksSortColumn(t *testing.T) {
	out := RenderTable(db.Fixtures, db.ColumnEmotion, false, -1)
	assert.Contains(t, out, "Емоція ↑")
	assert.Contains(t, out, "7хв 0с")
	assert.Contains(t, out, "2 раз(и)")
}
