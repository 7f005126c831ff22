package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PadRight pads s with spaces to width visible cells.
func PadRight(s string, width int) string {
	visible := lipgloss.Width(s)
	if visible >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visible)
}

// Truncate shortens an unstyled string to width cells, ending it with "…".
func Truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	if width < 1 {
		return ""
	}
	if len(runes) > width-1 {
		return string(runes[:width-1]) + "…"
	}
	return s
}

// Wrap breaks text into lines of at most width cells at word boundaries.
// Words longer than width get a line of their own.
func Wrap(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}

	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		var current string
		for _, word := range strings.Fields(paragraph) {
			if current == "" {
				current = word
			} else if lipgloss.Width(current)+1+lipgloss.Width(word) <= width {
				current += " " + word
			} else {
				lines = append(lines, current)
				current = word
			}
		}
		lines = append(lines, current)
	}
	return lines
}
