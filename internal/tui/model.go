package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"bigclock/internal/clock"
	"bigclock/internal/config"
	"bigclock/internal/i18n"
	"bigclock/internal/theme"
)

// FrameScheduler is the slice of the clock scheduler the display
// needs: an immediate re-render after a setting changes, and shutdown.
type FrameScheduler interface {
	TickOnce()
	Stop()
}

// Resolver decides light or dark for the current configuration.
type Resolver interface {
	Resolve(ctx context.Context, cfg config.Config) theme.Decision
}

type Stopper interface {
	Stop()
}

// Deps carries everything the display model depends on. The
// configuration handle is passed explicitly rather than held in a
// package variable, so tests can wire their own.
type Deps struct {
	Handle    *config.Handle
	Localizer *i18n.Localizer
	Resolver  Resolver
	Scheduler FrameScheduler
	Ticker    Stopper
	Frames    <-chan clock.Frame
	Decisions <-chan theme.Decision
	Initial   theme.Decision
}

// Model is the root bubbletea model: a full-screen clock face with a
// settings sheet overlay behind a hold-to-unlock guard.
type Model struct {
	handle    *config.Handle
	loc       *i18n.Localizer
	resolver  Resolver
	sched     FrameScheduler
	ticker    Stopper
	frames    <-chan clock.Frame
	decisions <-chan theme.Decision

	frame  clock.Frame
	theme  Theme
	guard  SettingsGuard
	sheet  SheetState
	keys   KeyMap
	help   help.Model
	width  int
	height int

	now func() time.Time // injectable for tests
}

func NewModel(deps Deps) Model {
	m := Model{
		handle:    deps.Handle,
		loc:       deps.Localizer,
		resolver:  deps.Resolver,
		sched:     deps.Scheduler,
		ticker:    deps.Ticker,
		frames:    deps.Frames,
		decisions: deps.Decisions,
		theme:     ThemeFor(deps.Initial),
		guard:     NewSettingsGuard(),
		keys:      DefaultKeyMap,
		help:      help.New(),
		now:       time.Now,
	}
	// A language change re-renders the face so the new script shows up
	// on the very next frame, not at the next minute boundary.
	deps.Localizer.OnLanguageChanged(func(string) {
		deps.Scheduler.TickOnce()
	})
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		waitForFrame(m.frames),
		waitForTheme(m.decisions),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil
	case FrameMsg:
		m.frame = clock.Frame(msg)
		return m, waitForFrame(m.frames)
	case ThemeMsg:
		m.theme = ThemeFor(theme.Decision(msg))
		return m, waitForTheme(m.decisions)
	case holdExpiredMsg:
		return m.handleHoldExpired(time.Time(msg))
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) View() string {
	if m.width == 0 {
		return ""
	}
	if m.sheet.Open {
		return m.renderSheet()
	}
	return m.renderFace()
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.sched.Stop()
	m.ticker.Stop()
	return m, tea.Quit
}
