package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"bigclock/internal/clock"
	"bigclock/internal/theme"
)

// --- Messages ---
type FrameMsg clock.Frame
type ThemeMsg theme.Decision
type holdExpiredMsg time.Time

// waitForFrame relays the next rendered frame from the scheduler
// goroutine into the update loop. The handler re-issues it, so the
// channel stays drained for the lifetime of the program.
func waitForFrame(frames <-chan clock.Frame) tea.Cmd {
	return func() tea.Msg { return FrameMsg(<-frames) }
}

func waitForTheme(decisions <-chan theme.Decision) tea.Cmd {
	return func() tea.Msg { return ThemeMsg(<-decisions) }
}

func holdTimeoutCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return holdExpiredMsg(t) })
}

// resolveThemeCmd re-runs theme resolution off the update loop. The
// resolver may touch the network, so it must not run inline.
func (m Model) resolveThemeCmd() tea.Cmd {
	cfg := m.handle.Get()
	resolver := m.resolver
	return func() tea.Msg {
		return ThemeMsg(resolver.Resolve(context.Background(), cfg))
	}
}
