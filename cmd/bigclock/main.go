package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"bigclock/internal/clock"
	"bigclock/internal/config"
	"bigclock/internal/database"
	"bigclock/internal/i18n"
	"bigclock/internal/theme"
	"bigclock/internal/tui"
	"bigclock/internal/util"
)

func main() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "bigclock needs a terminal to run")
		os.Exit(1)
	}

	// 1. Storage and logging under the data directory
	root := util.DataDir("bigclock")
	_ = os.MkdirAll(root, 0o755)
	closeLogs := util.RouteLogsToFile(root, "bigclock.log")
	defer closeLogs()

	db, err := database.Open(filepath.Join(root, "settings.db"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "opening settings store: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	// 2. Configuration and localization
	handle, err := config.NewHandle(config.NewStore(db))
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading configuration: %v\n", err)
		os.Exit(1)
	}
	loc, err := i18n.New(handle.Get().Language)
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading dictionaries: %v\n", err)
		os.Exit(1)
	}

	// 3. Theme resolution: one pass now for the first paint, then the
	// periodic re-evaluation in the background
	resolver := theme.NewResolver(theme.NewIPLocator(), theme.NewSunClient())
	initial := resolver.Resolve(context.Background(), handle.Get())

	decisions := make(chan theme.Decision, 1)
	ticker := theme.StartTicker(theme.ReevalInterval, handle.Reload, resolver, func(d theme.Decision) {
		offer(decisions, d)
	})

	// 4. The per-second clock scheduler feeding the display
	frames := make(chan clock.Frame, 1)
	sched := clock.Start(func(f clock.Frame) {
		offer(frames, f)
	}, handle.Get, loc)

	// 5. Run the program with mouse support for the gear control
	model := tui.NewModel(tui.Deps{
		Handle:    handle,
		Localizer: loc,
		Resolver:  resolver,
		Scheduler: sched,
		Ticker:    ticker,
		Frames:    frames,
		Decisions: decisions,
		Initial:   initial,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		sched.Stop()
		ticker.Stop()
		fmt.Fprintf(os.Stderr, "running display: %v\n", err)
		os.Exit(1)
	}
	sched.Stop()
	ticker.Stop()
}

// offer hands v to the display without ever blocking a producer. A
// value the display has not picked up yet is stale and gets displaced.
func offer[T any](ch chan T, v T) {
	select {
	case ch <- v:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- v:
	default:
	}
}
