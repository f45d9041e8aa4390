package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

type appearanceProfileID string

const (
	appearanceDefault   appearanceProfileID = "default"
	appearanceAlabaster appearanceProfileID = "alabaster"
	appearanceMono      appearanceProfileID = "mono"
)

var (
	appearanceMu      sync.RWMutex
	currentAppearance = appearanceDefault
)

func resetAppearancePaletteToDefaults() {
	colorMuted = defaultColorMuted
	colorHeadingFg = defaultColorHeadingFg
	colorSelectedBg = defaultColorSelectedBg
	colorSelectedFg = defaultColorSelectedFg
	colorDragBg = defaultColorDragBg
	colorDragFg = defaultColorDragFg
	colorInputBg = defaultColorInputBg
	colorButtonFg = defaultColorButtonFg
	colorAddBg = defaultColorAddBg
	colorEditBg = defaultColorEditBg
	colorRemoveBg = defaultColorRemoveBg
}

// applyAppearancePreference selects a profile by name. Unknown names are ignored.
func applyAppearancePreference(name string) {
	v := appearanceProfileID(strings.ToLower(strings.TrimSpace(name)))
	switch v {
	case "":
		setAppearanceProfile(appearanceDefault)
	case appearanceDefault, appearanceAlabaster, appearanceMono:
		setAppearanceProfile(v)
	}
}

func setAppearanceProfile(id appearanceProfileID) {
	appearanceMu.Lock()
	defer appearanceMu.Unlock()

	resetAppearancePaletteToDefaults()
	switch id {
	case appearanceAlabaster:
		// Light-first, low-chroma.
		colorHeadingFg = ac("#434343", "#cecece")
		colorSelectedBg = ac("#e9e9e9", "#262626")
		colorSelectedFg = ac("#1f1f1f", "#f8f8f8")
		colorDragBg = ac("#dbe4f7", "#1d2a44")
		colorDragFg = ac("#325cc0", "#9fbaf0")
		colorInputBg = ac("#ffffff", "#111111")
		colorMuted = ac("#777777", "#7a7a7a")
		colorAddBg = ac("#325cc0", "#5f87d7")
		colorEditBg = ac("#777777", "#5a5a5a")
		colorRemoveBg = ac("#aa3731", "#c05050")
	case appearanceMono:
		none := lipgloss.NoColor{}
		colorMuted = none
		colorHeadingFg = none
		colorSelectedBg = none
		colorSelectedFg = none
		colorDragBg = none
		colorDragFg = none
		colorInputBg = none
		colorButtonFg = none
		colorAddBg = none
		colorEditBg = none
		colorRemoveBg = none
	default:
		id = appearanceDefault
	}
	currentAppearance = id
}

func appearanceProfile() appearanceProfileID {
	appearanceMu.RLock()
	defer appearanceMu.RUnlock()
	return currentAppearance
}
