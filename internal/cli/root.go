package cli

import (
	"fmt"
	"os"
	"strings"

	"todolist/internal/config"
	"todolist/internal/format"
	"todolist/internal/logging"
	"todolist/internal/tasks"
	"todolist/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	ConfigPath string
	Theme      string
	Glyphs     string
	Profile    string

	LogFile   string
	LogLevel  string
	LogFormat string

	Print      bool
	Format     string
	PrettyJSON bool
	NoMouse    bool
}

// runFunc shows the list UI. Tests swap it for a headless stand-in.
type runFunc func(st *tasks.State, opts tui.Options) error

func NewRootCmd() *cobra.Command {
	return newRootCmd(tui.Run)
}

func newRootCmd(run runFunc) *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "todolist [task...]",
		Short:        "A small interactive to-do list",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start with an empty list
  todolist

  # Seed a few tasks and print the final list as JSON on exit
  todolist --print "Buy milk" "Water plants"

  # Plain glyphs, no mouse, debug log to a file
  todolist --glyphs ascii --no-mouse --log-file ~/todolist.log --log-level debug
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd, app, args, run)
		},
	}

	f := cmd.Flags()
	f.StringVar(&app.ConfigPath, "config", envOr("TODOLIST_CONFIG", ""), "Path to config.toml (default: <user config dir>/todolist/config.toml)")
	f.StringVar(&app.Theme, "theme", "", "Color theme (auto|light|dark)")
	f.StringVar(&app.Glyphs, "glyphs", "", "Glyph set (unicode|ascii)")
	f.StringVar(&app.Profile, "profile", "", "Appearance profile (default|alabaster|mono)")
	f.StringVar(&app.LogFile, "log-file", "", "Write a debug log to this file")
	f.StringVar(&app.LogLevel, "log-level", "", "Log level (debug|info|warn|error)")
	f.StringVar(&app.LogFormat, "log-format", "", "Log format (text|json|logfmt)")
	f.BoolVar(&app.Print, "print", false, "Print the final list to stdout on exit")
	f.StringVar(&app.Format, "format", envOr("TODOLIST_FORMAT", "json"), "Output format for --print (json|edn)")
	f.BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print --print output")
	f.BoolVar(&app.NoMouse, "no-mouse", false, "Disable mouse clicks and drag-and-drop")

	return cmd
}

func runApp(cmd *cobra.Command, app *App, args []string, run runFunc) error {
	outFormat, err := format.Normalize(app.Format)
	if err != nil {
		return writeErr(cmd, flagError{flag: "format", value: app.Format, err: err})
	}

	cfg, err := config.Load(app.ConfigPath)
	if err != nil {
		return writeErr(cmd, err)
	}
	cfg.Override(config.Overrides{
		Theme:     app.Theme,
		Glyphs:    app.Glyphs,
		Profile:   app.Profile,
		LogFile:   app.LogFile,
		LogLevel:  app.LogLevel,
		LogFormat: app.LogFormat,
	})

	logger, closer, err := logging.New(logging.Options{
		File:   cfg.Log.File,
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
	if err != nil {
		return writeErr(cmd, err)
	}
	defer closer.Close()
	logger.Debug("config", "path", cfg.Path, "theme", cfg.Theme, "glyphs", cfg.Glyphs, "profile", cfg.Profile)

	st := tasks.NewState()
	for _, a := range args {
		if _, ok := st.Add(a); !ok {
			logger.Warn("skipping blank task argument")
		}
	}

	err = run(st, tui.Options{
		Logger:  logger,
		Theme:   cfg.Theme,
		Glyphs:  cfg.Glyphs,
		Profile: cfg.Profile,
		Mouse:   !app.NoMouse,
	})
	if err != nil {
		return writeErr(cmd, err)
	}

	if !app.Print {
		return nil
	}
	return format.WriteTasks(cmd.OutOrStdout(), st.Tasks, outFormat, app.PrettyJSON)
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
