package db

import (
	"testing"
	"time"

	"github.com/ameliastxne/druzhok/internal/emotion"
)

// openTestStore opens a seeded in-memory journal.
func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func ids(entries []Entry) []int64 {
	out := make([]int64, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}

func equalIDs(t *testing.T, got []Entry, want ...int64) {
	t.Helper()
	g := ids(got)
	if len(g) != len(want) {
		t.Fatalf("got ids %v, want %v", g, want)
	}
	for i := range want {
		if g[i] != want[i] {
			t.Fatalf("got ids %v, want %v", g, want)
		}
	}
}

func TestActivityLogDefaultOrder(t *testing.T) {
	store := openTestStore(t)

	entries, err := store.ActivityLog(Query{Desc: true})
	if err != nil {
		t.Fatalf("ActivityLog: %v", err)
	}
	equalIDs(t, entries, 5, 4, 3, 2, 1)

	first := entries[4]
	if first.Emotion != emotion.Anger {
		t.Errorf("emotion = %v, want anger", first.Emotion)
	}
	if first.Duration != 7*time.Minute {
		t.Errorf("duration = %v, want 7m", first.Duration)
	}
	if first.Activities != 2 {
		t.Errorf("activities = %d, want 2", first.Activities)
	}
	if !first.StartedAt.Equal(Fixtures[0].StartedAt) {
		t.Errorf("startedAt = %v, want %v", first.StartedAt, Fixtures[0].StartedAt)
	}
}

func TestActivityLogFilter(t *testing.T) {
	store := openTestStore(t)

	entries, err := store.ActivityLog(Query{Emotion: emotion.Anger, Desc: true})
	if err != nil {
		t.Fatalf("ActivityLog: %v", err)
	}
	equalIDs(t, entries, 5, 1)

	entries, err = store.ActivityLog(Query{Emotion: emotion.Disgust})
	if err != nil {
		t.Fatalf("ActivityLog: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("got %d entries, want 0", len(entries))
	}
}

func TestActivityLogSortColumns(t *testing.T) {
	store := openTestStore(t)

	tests := []struct {
		q    Query
		want []int64
	}{
		{Query{OrderBy: ColumnDate}, []int64{1, 2, 3, 4, 5}},
		{Query{OrderBy: ColumnDuration}, []int64{4, 2, 5, 1, 3}},
		{Query{OrderBy: ColumnDuration, Desc: true}, []int64{3, 1, 5, 2, 4}},
		{Query{OrderBy: ColumnActivities, Desc: true}, []int64{3, 1, 2, 5, 4}},
		{Query{OrderBy: ColumnEmotion}, []int64{1, 5, 2, 4, 3}},
	}
	for _, tt := range tests {
		entries, err := store.ActivityLog(tt.q)
		if err != nil {
			t.Fatalf("ActivityLog(%+v): %v", tt.q, err)
		}
		equalIDs(t, entries, tt.want...)
	}
}

func TestActivityLogUnknownColumn(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.ActivityLog(Query{OrderBy: "startedAt; DROP TABLE journal"}); err == nil {
		t.Fatal("expected error for unknown column")
	}
}

func TestAddEntry(t *testing.T) {
	store := openTestStore(t)

	id, err := store.Add(Entry{
		StartedAt:  time.Date(2025, time.November, 1, 9, 0, 0, 0, time.UTC),
		Emotion:    emotion.Disgust,
		Duration:   90 * time.Second,
		Activities: 1,
	})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if id != 6 {
		t.Errorf("id = %d, want 6", id)
	}

	entries, err := store.ActivityLog(Query{Emotion: emotion.Disgust})
	if err != nil {
		t.Fatalf("ActivityLog: %v", err)
	}
	equalIDs(t, entries, 6)
	if entries[0].Duration != 90*time.Second {
		t.Errorf("duration = %v, want 1m30s", entries[0].Duration)
	}
}

func TestEmotionCounts(t *testing.T) {
	store := openTestStore(t)

	counts, err := store.EmotionCounts()
	if err != nil {
		t.Fatalf("EmotionCounts: %v", err)
	}
	if len(counts) != 4 {
		t.Fatalf("got %d counts, want 4", len(counts))
	}
	if counts[0].Emotion != emotion.Anger || counts[0].Count != 2 {
		t.Errorf("counts[0] = %+v, want anger x2", counts[0])
	}
}

func TestFormatDate(t *testing.T) {
	got := FormatDate(Fixtures[0].StartedAt)
	if want := "5 жовтня 2025 р. о 14:30"; got != want {
		t.Errorf("FormatDate = %q, want %q", got, want)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{7 * time.Minute, "7хв 0с"},
		{5*time.Minute + 15*time.Second, "5хв 15с"},
		{45 * time.Second, "0хв 45с"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.d); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestOpenMemoryIsPrivate(t *testing.T) {
	a := openTestStore(t)
	b := openTestStore(t)

	if _, err := a.Add(Entry{StartedAt: time.Now(), Emotion: emotion.Joy}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	entries, err := b.ActivityLog(Query{})
	if err != nil {
		t.Fatalf("ActivityLog: %v", err)
	}
	if len(entries) != len(Fixtures) {
		t.Errorf("got %d entries, want %d", len(entries), len(Fixtures))
	}
}
