package db

import (
	"fmt"
	"time"
)

var months = [...]string{
	"січня", "лютого", "березня", "квітня", "травня", "червня",
	"липня", "серпня", "вересня", "жовтня", "листопада", "грудня",
}

// FormatDate renders t the way the journal shows it, e.g.
// "5 жовтня 2025 р. о 14:30".
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%d %s %d р. о %02d:%02d", t.Day(), months[t.Month()-1], t.Year(), t.Hour(), t.Minute())
}

// FormatDuration renders d as minutes and seconds, e.g. "7хв 0с".
func FormatDuration(d time.Duration) string {
	total := int(d.Round(time.Second) / time.Second)
	return fmt.Sprintf("%dхв %dс", total/60, total%60)
}
