package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"bigclock/internal/config"
	"bigclock/internal/i18n"
)

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

func (m Model) rowValue(row sheetRow, cfg config.Config) string {
	switch row {
	case rowTimeFormat:
		if cfg.TimeFormat == config.TimeFormat24 {
			return m.loc.T("settings.option.24h")
		}
		return m.loc.T("settings.option.12h")
	case rowLanguage:
		for _, lang := range i18n.Catalog {
			if lang.Code == cfg.Language {
				return m.loc.DisplayName(lang)
			}
		}
		return cfg.Language
	case rowShowSeconds:
		return checkbox(cfg.ShowSeconds)
	case rowShowTimeOfDay:
		return checkbox(cfg.ShowTimeOfDay)
	case rowTVMode:
		return checkbox(cfg.TVMode)
	case rowTheme:
		switch cfg.ThemeMode {
		case config.ThemeLight:
			return m.loc.T("settings.option.light")
		case config.ThemeDark:
			return m.loc.T("settings.option.dark")
		}
		return m.loc.T("settings.option.auto")
	case rowUseLocation:
		return checkbox(cfg.UseLocationForTheme)
	case rowTouchMode:
		return checkbox(cfg.TouchMode)
	case rowLock:
		return checkbox(cfg.SettingsLocked)
	}
	return ""
}

func (m Model) renderSheet() string {
	if m.sheet.ConfirmingReset {
		return m.renderResetConfirm()
	}

	cfg := m.handle.Get()

	labelWidth := 0
	for row := sheetRow(0); row < rowCount; row++ {
		if w := lipgloss.Width(m.loc.T(labelKeys[row])); w > labelWidth {
			labelWidth = w
		}
	}

	var b strings.Builder
	for row := sheetRow(0); row < rowCount; row++ {
		label := m.loc.T(labelKeys[row])
		pad := strings.Repeat(" ", labelWidth-lipgloss.Width(label)+2)

		style := m.theme.Row
		marker := "  "
		if row == m.sheet.Cursor {
			style = m.theme.RowFocused
			marker = "❯ "
		}
		if row == rowReset {
			line := marker + label
			if row == m.sheet.Cursor {
				b.WriteString(m.theme.Danger.Render(line))
			} else {
				b.WriteString(style.Render(line))
			}
		} else {
			b.WriteString(style.Render(marker+label) + pad + m.theme.Value.Render(m.rowValue(row, cfg)))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n" + m.theme.Dim.Render(m.loc.T("settings.hint")))
	if cfg.SettingsLocked {
		b.WriteString("\n" + m.theme.Dim.Render(m.loc.T("settings.lockHint")))
	}

	title := m.theme.SheetTitle.Width(lipgloss.Width(b.String())).Render(m.loc.T("settings.title"))
	box := m.theme.SheetFrame.Render(title + "\n\n" + b.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m Model) renderResetConfirm() string {
	prompt := m.theme.Danger.Render(m.loc.T("settings.confirmReset"))
	keysLine := m.theme.Dim.Render("[y] / [esc]")
	box := m.theme.SheetFrame.Render(prompt + "\n\n" + keysLine)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
