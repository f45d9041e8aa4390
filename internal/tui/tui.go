package tui

import (
	"todolist/internal/tasks"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

// Options carries the presentation preferences resolved by the CLI.
type Options struct {
	Logger  *log.Logger
	Theme   string
	Glyphs  string
	Profile string
	// Mouse enables click and drag handling.
	Mouse bool
}

// Run shows the to-do list until the user quits. st is mutated in place so the
// caller can read the final list afterwards.
func Run(st *tasks.State, opts Options) error {
	applyColorProfilePreference()
	applyThemePreference(opts.Theme)
	applyGlyphPreference(opts.Glyphs)
	applyAppearancePreference(opts.Profile)

	m := newAppModel(st, opts.Logger)
	progOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Mouse {
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}
	m.log.Info("start", "tasks", st.Len(), "mouse", opts.Mouse)
	_, err := tea.NewProgram(m, progOpts...).Run()
	if err != nil {
		m.log.Error("tui", "err", err)
		return err
	}
	m.log.Info("exit", "tasks", st.Len())
	return nil
}
