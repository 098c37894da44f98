package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Status classifies a table cell for styling.
type Status uint8

const (
	StatusNone Status = iota
	StatusOK
	StatusInvalid
	StatusMismatch
)

// Cell is one table entry.
type Cell struct {
	Text   string
	Status Status
}

// Table is a titled grid with a header row and a header column.
type Table struct {
	Title  string
	Corner string
	Header []string
	Rows   []Row
}

type Row struct {
	Label string
	Cells []Cell
}

// maxLabelWidth caps the width of the header column.
const maxLabelWidth = 24

var titleCaser = cases.Title(language.English)

// Title renders snake_case or lower-case words as a title: "invalid_op" → "Invalid Op".
func Title(s string) string {
	return titleCaser.String(strings.ReplaceAll(s, "_", " "))
}

// Render lays the table out in fixed-width columns. With styled false no
// escape sequences are written.
func Render(t Table, styled bool) string {
	labelWidth := runewidth.StringWidth(t.Corner)
	for _, r := range t.Rows {
		labelWidth = max(labelWidth, runewidth.StringWidth(r.Label))
	}
	labelWidth = min(labelWidth, maxLabelWidth)

	widths := make([]int, len(t.Header))
	for i, h := range t.Header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, r := range t.Rows {
		for i, c := range r.Cells {
			if i < len(widths) {
				widths[i] = max(widths[i], runewidth.StringWidth(c.Text))
			}
		}
	}

	render := func(st lipgloss.Style, s string) string {
		if !styled {
			return s
		}
		return st.Render(s)
	}
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))

	var b strings.Builder
	if t.Title != "" {
		b.WriteString(render(headerStyle, t.Title))
		b.WriteString("\n\n")
	}
	b.WriteString(render(headerStyle, runewidth.FillRight(truncate(t.Corner, labelWidth), labelWidth)))
	for i, h := range t.Header {
		b.WriteString("  ")
		b.WriteString(render(headerStyle, runewidth.FillLeft(h, widths[i])))
	}
	b.WriteString("\n")
	for _, r := range t.Rows {
		b.WriteString(runewidth.FillRight(truncate(r.Label, labelWidth), labelWidth))
		for i := range t.Header {
			var c Cell
			if i < len(r.Cells) {
				c = r.Cells[i]
			}
			b.WriteString("  ")
			b.WriteString(render(styleStatus(c.Status), runewidth.FillLeft(c.Text, widths[i])))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func styleStatus(status Status) lipgloss.Style {
	switch status {
	case StatusOK:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	case StatusInvalid:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	case StatusMismatch:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	}
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width, "...")
}
