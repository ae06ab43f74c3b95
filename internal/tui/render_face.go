package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const fontHeight = 5

// bigFont is the banner face for the time line. Only ASCII digits and
// the colon have drawn glyphs; every other rune (AM/PM markers,
// localized digit scripts) falls back to a single oversized cell so
// the row stays aligned.
var bigFont = map[rune][fontHeight]string{
	'0': {"█████", "█   █", "█   █", "█   █", "█████"},
	'1': {"  █  ", " ██  ", "  █  ", "  █  ", "█████"},
	'2': {"█████", "    █", "█████", "█    ", "█████"},
	'3': {"█████", "    █", " ████", "    █", "█████"},
	'4': {"█   █", "█   █", "█████", "    █", "    █"},
	'5': {"█████", "█    ", "█████", "    █", "█████"},
	'6': {"█████", "█    ", "█████", "█   █", "█████"},
	'7': {"█████", "    █", "   █ ", "  █  ", "  █  "},
	'8': {"█████", "█   █", "█████", "█   █", "█████"},
	'9': {"█████", "█   █", "█████", "    █", "█████"},
	':': {"     ", "  █  ", "     ", "  █  ", "     "},
	' ': {"  ", "  ", "  ", "  ", "  "},
}

// bigText renders s as a fontHeight-row banner.
func bigText(s string) string {
	var rows [fontHeight][]string
	for _, r := range s {
		if glyph, ok := bigFont[r]; ok {
			for i := range rows {
				rows[i] = append(rows[i], glyph[i])
			}
			continue
		}
		cell := string(r)
		blank := strings.Repeat(" ", ansi.StringWidth(cell))
		for i := range rows {
			if i == fontHeight/2 {
				rows[i] = append(rows[i], cell)
			} else {
				rows[i] = append(rows[i], blank)
			}
		}
	}
	lines := make([]string, fontHeight)
	for i, cols := range rows {
		lines[i] = strings.Join(cols, " ")
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderFace() string {
	cfg := m.handle.Get()

	gear := m.theme.Gear.Render("⚙")
	if cfg.TouchMode {
		gear = m.theme.Gear.Padding(1, 3).Render("⚙")
	}
	top := lipgloss.PlaceHorizontal(m.width, lipgloss.Right, gear)

	var parts []string
	parts = append(parts, m.theme.Time.Render(bigText(m.frame.Time)))
	if m.frame.TimeOfDay != "" {
		parts = append(parts, m.theme.TimeOfDay.Render(m.frame.TimeOfDay))
	}
	parts = append(parts, m.theme.Weekday.Render(m.frame.Weekday))
	parts = append(parts, m.theme.Date.Render(m.frame.Date))

	gap := "\n"
	if cfg.TVMode {
		gap = "\n\n"
	}
	content := strings.Join(parts, gap)

	footer := m.theme.Dim.Render(m.help.View(m.keys))
	middleHeight := m.height - lipgloss.Height(top) - lipgloss.Height(footer)
	if middleHeight < 1 {
		middleHeight = 1
	}
	middle := lipgloss.Place(m.width, middleHeight, lipgloss.Center, lipgloss.Center, content)

	return top + "\n" + middle + "\n" + footer
}
