package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"bigclock/internal/config"
	"bigclock/internal/i18n"
	"bigclock/internal/util"
)

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.sheet.Open {
		return m.handleSheetKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Open):
		if m.guard.Tap(m.handle.Get().SettingsLocked) == GuardOpen {
			m.openSheet(rowTimeFormat)
		}
	case key.Matches(msg, m.keys.Language):
		if m.guard.Tap(m.handle.Get().SettingsLocked) == GuardOpen {
			m.openSheet(rowLanguage)
		}
	}
	return m, nil
}

func (m Model) handleSheetKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.sheet.ConfirmingReset {
		switch {
		case key.Matches(msg, m.keys.Confirm):
			return m.applyReset()
		default:
			m.sheet.ConfirmingReset = false
			return m, nil
		}
	}

	switch {
	case key.Matches(msg, m.keys.Quit) && msg.String() == "ctrl+c":
		return m.quit()
	case key.Matches(msg, m.keys.Close):
		m.sheet = SheetState{}
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.sheet.moveCursor(-1)
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.sheet.moveCursor(1)
		return m, nil
	case key.Matches(msg, m.keys.Left):
		return m.adjustRow(-1)
	case key.Matches(msg, m.keys.Right):
		return m.adjustRow(1)
	case key.Matches(msg, m.keys.Select):
		return m.adjustRow(1)
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || m.sheet.Open || !m.inGearZone(msg.X, msg.Y) {
			return m, nil
		}
		if m.guard.Press(m.handle.Get().SettingsLocked, m.now()) == GuardOpen {
			m.openSheet(rowTimeFormat)
			return m, nil
		}
		return m, holdTimeoutCmd(m.guard.Hold)
	case tea.MouseActionRelease:
		m.guard.Release()
	case tea.MouseActionMotion:
		// Dragging off the gear cancels the hold, same as letting go.
		if m.guard.Holding() && !m.inGearZone(msg.X, msg.Y) {
			m.guard.Release()
		}
	}
	return m, nil
}

func (m Model) handleHoldExpired(now time.Time) (tea.Model, tea.Cmd) {
	if m.guard.Expire(now) != GuardUnlockAndOpen {
		return m, nil
	}
	cfg := m.handle.Get()
	cfg.SettingsLocked = false
	if err := m.handle.Set(cfg); err != nil {
		util.LogError("persisting unlock", err)
	}
	m.openSheet(rowTimeFormat)
	return m, nil
}

func (m *Model) openSheet(row sheetRow) {
	m.sheet = SheetState{Open: true, Cursor: row}
}

// inGearZone reports whether a cell lies on the gear hit target in the
// top-right corner. Touch mode widens the target considerably.
func (m Model) inGearZone(x, y int) bool {
	w, h := 4, 1
	if m.handle.Get().TouchMode {
		w, h = 9, 3
	}
	return x >= m.width-w && y < h
}

func (m Model) adjustRow(delta int) (tea.Model, tea.Cmd) {
	cfg := m.handle.Get()

	switch m.sheet.Cursor {
	case rowTimeFormat:
		if cfg.TimeFormat == config.TimeFormat12 {
			cfg.TimeFormat = config.TimeFormat24
		} else {
			cfg.TimeFormat = config.TimeFormat12
		}
		return m.saveAndRender(cfg)
	case rowLanguage:
		return m.cycleLanguage(delta)
	case rowShowSeconds:
		cfg.ShowSeconds = !cfg.ShowSeconds
		return m.saveAndRender(cfg)
	case rowShowTimeOfDay:
		cfg.ShowTimeOfDay = !cfg.ShowTimeOfDay
		return m.saveAndRender(cfg)
	case rowTVMode:
		cfg.TVMode = !cfg.TVMode
		return m.saveAndRender(cfg)
	case rowTheme:
		cfg.ThemeMode = nextThemeMode(cfg.ThemeMode, delta)
		return m.saveAndResolve(cfg)
	case rowUseLocation:
		cfg.UseLocationForTheme = !cfg.UseLocationForTheme
		return m.saveAndResolve(cfg)
	case rowTouchMode:
		cfg.TouchMode = !cfg.TouchMode
		return m.saveAndRender(cfg)
	case rowLock:
		// Takes effect the next time the sheet is opened; the current
		// session keeps editing.
		cfg.SettingsLocked = !cfg.SettingsLocked
		if err := m.handle.Set(cfg); err != nil {
			util.LogError("persisting settings", err)
		}
		return m, nil
	case rowReset:
		m.sheet.ConfirmingReset = true
		return m, nil
	}
	return m, nil
}

func (m Model) saveAndRender(cfg config.Config) (tea.Model, tea.Cmd) {
	if err := m.handle.Set(cfg); err != nil {
		util.LogError("persisting settings", err)
	}
	m.sched.TickOnce()
	return m, nil
}

func (m Model) saveAndResolve(cfg config.Config) (tea.Model, tea.Cmd) {
	if err := m.handle.Set(cfg); err != nil {
		util.LogError("persisting settings", err)
	}
	m.sched.TickOnce()
	return m, m.resolveThemeCmd()
}

func (m Model) cycleLanguage(delta int) (tea.Model, tea.Cmd) {
	cur := 0
	for i, lang := range i18n.Catalog {
		if lang.Code == m.loc.Language() {
			cur = i
			break
		}
	}
	next := (cur + delta + len(i18n.Catalog)) % len(i18n.Catalog)
	code := i18n.Catalog[next].Code

	if err := m.loc.SetLanguage(code); err != nil {
		util.LogError("switching language", err)
		return m, nil
	}
	cfg := m.handle.Get()
	cfg.Language = code
	if err := m.handle.Set(cfg); err != nil {
		util.LogError("persisting settings", err)
	}
	return m, nil
}

func (m Model) applyReset() (tea.Model, tea.Cmd) {
	cfg, err := m.handle.Reset()
	if err != nil {
		util.LogError("resetting settings", err)
		m.sheet.ConfirmingReset = false
		return m, nil
	}
	if err := m.loc.SetLanguage(cfg.Language); err != nil {
		util.LogError("switching language", err)
	}
	m.sheet.ConfirmingReset = false
	m.sched.TickOnce()
	return m, m.resolveThemeCmd()
}

func nextThemeMode(mode string, delta int) string {
	order := []string{config.ThemeAuto, config.ThemeLight, config.ThemeDark}
	cur := 0
	for i, v := range order {
		if v == mode {
			cur = i
			break
		}
	}
	return order[(cur+delta+len(order))%len(order)]
}
