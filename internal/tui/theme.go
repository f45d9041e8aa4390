package tui

import (
	"context"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme/palette helpers.
//
// The list must stay readable on both light and dark terminal backgrounds, so
// colors are lipgloss.AdaptiveColor pairs and faint styling is only used on
// dark backgrounds.

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

var (
	defaultColorMuted lipgloss.TerminalColor = ac("240", "243")
	colorMuted                               = defaultColorMuted

	defaultColorHeadingFg lipgloss.TerminalColor = ac("#333333", "#e4e4e4")
	colorHeadingFg                               = defaultColorHeadingFg

	defaultColorSelectedBg lipgloss.TerminalColor = ac("#e9e9e9", "#262626")
	colorSelectedBg                               = defaultColorSelectedBg
	defaultColorSelectedFg lipgloss.TerminalColor = ac("235", "255")
	colorSelectedFg                               = defaultColorSelectedFg

	// Row being dragged: lifted off the surface.
	defaultColorDragBg lipgloss.TerminalColor = ac("#e0e0e0", "#3a3a3a")
	colorDragBg                               = defaultColorDragBg
	defaultColorDragFg lipgloss.TerminalColor = ac("#1f1f1f", "#ffffff")
	colorDragFg                               = defaultColorDragFg

	defaultColorInputBg lipgloss.TerminalColor = ac("254", "234")
	colorInputBg                               = defaultColorInputBg

	// Button faces.
	defaultColorButtonFg lipgloss.TerminalColor = ac("#ffffff", "#ffffff")
	colorButtonFg                               = defaultColorButtonFg
	defaultColorAddBg    lipgloss.TerminalColor = ac("#4caf50", "#45a049")
	colorAddBg                                  = defaultColorAddBg
	defaultColorEditBg   lipgloss.TerminalColor = ac("#ffa500", "#e68900")
	colorEditBg                                 = defaultColorEditBg
	defaultColorRemoveBg lipgloss.TerminalColor = ac("#f44336", "#e53935")
	colorRemoveBg                               = defaultColorRemoveBg
)

func styleMuted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
}

func styleHeading() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(colorHeadingFg)
}

func styleButton(bg lipgloss.TerminalColor) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorButtonFg).Background(bg).Bold(true)
}

// applyColorProfilePreference sets Lip Gloss's color profile for the TUI.
//
// termenv.EnvColorProfile honors CLICOLOR/CLICOLOR_FORCE, which can disable
// colors in a TUI. Only NO_COLOR is honored here.
func applyColorProfilePreference() {
	lipgloss.SetColorProfile(pickColorProfile(
		termenv.ColorProfile(),
		os.Getenv("TERM"),
		os.Getenv("COLORTERM"),
		strings.TrimSpace(os.Getenv("NO_COLOR")) != "",
	))
}

// pickColorProfile upgrades the detected profile when TERM/COLORTERM claim
// more than the probe found (macOS Terminal.app under-reports).
func pickColorProfile(detected termenv.Profile, term, colorterm string, noColor bool) termenv.Profile {
	if noColor {
		return termenv.Ascii
	}
	term = strings.ToLower(strings.TrimSpace(term))
	colorterm = strings.ToLower(strings.TrimSpace(colorterm))
	switch {
	case strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit"):
		if detected != termenv.Ascii {
			return termenv.TrueColor
		}
	case strings.Contains(term, "256color"):
		if detected == termenv.Ascii || detected == termenv.ANSI {
			return termenv.ANSI256
		}
	}
	return detected
}

// applyThemePreference configures Lip Gloss's background detection.
//
// Priority:
// 1) theme = light|dark (config file, TODOLIST_THEME or --theme)
// 2) COLORFGBG heuristic ("fg;bg")
// 3) macOS appearance
func applyThemePreference(theme string) {
	switch strings.ToLower(strings.TrimSpace(theme)) {
	case "light":
		lipgloss.SetHasDarkBackground(false)
		return
	case "dark":
		lipgloss.SetHasDarkBackground(true)
		return
	}

	if dark, ok := darkFromColorFGBG(os.Getenv("COLORFGBG")); ok {
		lipgloss.SetHasDarkBackground(dark)
		return
	}

	if runtime.GOOS == "darwin" {
		if dark, ok := macOSHasDarkAppearance(); ok {
			lipgloss.SetHasDarkBackground(dark)
		}
	}
}

// darkFromColorFGBG reads the last segment of COLORFGBG as the background color index.
func darkFromColorFGBG(v string) (dark bool, ok bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return false, false
	}
	parts := strings.Split(v, ";")
	bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1]))
	if err != nil {
		return false, false
	}
	return bg < 7, true
}

func macOSHasDarkAppearance() (dark bool, ok bool) {
	// Prints "Dark" in dark mode; exits 1 in light mode (key missing).
	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	out, err := exec.CommandContext(ctx, "defaults", "read", "-g", "AppleInterfaceStyle").CombinedOutput()
	if ctx.Err() != nil {
		return false, false
	}
	if err == nil {
		return strings.Contains(strings.ToLower(string(out)), "dark"), true
	}
	if ee, ok := err.(*exec.ExitError); ok && ee.ExitCode() == 1 {
		return false, true
	}
	return false, false
}
