// Package db keeps the caregiver's activity journal in an in-memory SQLite
// database seeded with sample records.
package db

import (
	"time"

	"github.com/ameliastxne/druzhok/internal/emotion"
)

// Entry is one row of the activity journal.
type Entry struct {
	ID         int64
	StartedAt  time.Time
	Emotion    emotion.Emotion
	Duration   time.Duration
	Activities int
}

// Column is a journal column that can be sorted on.
type Column string

const (
	ColumnDate       Column = "date"
	ColumnEmotion    Column = "emotion"
	ColumnDuration   Column = "duration"
	ColumnActivities Column = "activities"
)

// Columns lists the sortable columns in display order.
var Columns = []Column{ColumnDate, ColumnEmotion, ColumnDuration, ColumnActivities}

// Label is the column heading.
func (c Column) Label() string {
	switch c {
	case ColumnEmotion:
		return "Емоція"
	case ColumnDuration:
		return "Тривалість"
	case ColumnActivities:
		return "Активності"
	}
	return "Дата"
}

// ParseColumn maps a column name back to its Column.
func ParseColumn(s string) (Column, bool) {
	for _, c := range Columns {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// Query selects and orders journal rows. A zero Emotion means all of them;
// an empty OrderBy means by date.
type Query struct {
	Emotion emotion.Emotion
	OrderBy Column
	Desc    bool
}

// EmotionCount is how many journal rows carry an emotion.
type EmotionCount struct {
	Emotion emotion.Emotion
	Count   int
}
