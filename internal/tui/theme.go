package tui

import (
	"github.com/charmbracelet/lipgloss"

	"bigclock/internal/theme"
)

type Theme struct {
	Name       string
	Base       lipgloss.Style
	Border     lipgloss.Color
	Time       lipgloss.Style
	TimeOfDay  lipgloss.Style
	Weekday    lipgloss.Style
	Date       lipgloss.Style
	Gear       lipgloss.Style
	Dim        lipgloss.Style
	SheetFrame lipgloss.Style
	SheetTitle lipgloss.Style
	Row        lipgloss.Style
	RowFocused lipgloss.Style
	Value      lipgloss.Style
	Danger     lipgloss.Style
}

var Themes = map[theme.Decision]Theme{
	theme.Light: {
		Name:       "Light",
		Base:       lipgloss.NewStyle().Foreground(lipgloss.Color("235")).Background(lipgloss.Color("255")),
		Border:     lipgloss.Color("240"),
		Time:       lipgloss.NewStyle().Foreground(lipgloss.Color("232")).Bold(true),
		TimeOfDay:  lipgloss.NewStyle().Foreground(lipgloss.Color("130")).Bold(true),
		Weekday:    lipgloss.NewStyle().Foreground(lipgloss.Color("235")),
		Date:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Gear:       lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Dim:        lipgloss.NewStyle().Foreground(lipgloss.Color("248")),
		SheetFrame: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(1, 3),
		SheetTitle: lipgloss.NewStyle().Foreground(lipgloss.Color("232")).Bold(true).Align(lipgloss.Center),
		Row:        lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		RowFocused: lipgloss.NewStyle().Foreground(lipgloss.Color("26")).Bold(true),
		Value:      lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
		Danger:     lipgloss.NewStyle().Foreground(lipgloss.Color("124")).Bold(true),
	},
	theme.Dark: {
		Name:       "Dark",
		Base:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Border:     lipgloss.Color("60"),
		Time:       lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		TimeOfDay:  lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Bold(true),
		Weekday:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Date:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Gear:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Dim:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		SheetFrame: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("60")).Padding(1, 3),
		SheetTitle: lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true).Align(lipgloss.Center),
		Row:        lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		RowFocused: lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true),
		Value:      lipgloss.NewStyle().Foreground(lipgloss.Color("120")),
		Danger:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
	},
}

// ThemeFor maps a resolver decision to its style set, defaulting to
// dark so a missing entry never blanks the display.
func ThemeFor(d theme.Decision) Theme {
	if t, ok := Themes[d]; ok {
		return t
	}
	return Themes[theme.Dark]
}
