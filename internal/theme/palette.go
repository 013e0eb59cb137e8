package theme

import "github.com/charmbracelet/lipgloss"

// Palette is the concrete style set for one rendered appearance. Switching
// the active palette is the terminal analog of flipping the root class
// marker on a web page.
type Palette struct {
	Name         string
	GlamourStyle string

	Header     lipgloss.Style
	Heading    lipgloss.Style
	Body       lipgloss.Style
	Faint      lipgloss.Style
	Link       lipgloss.Style
	LinkFocus  lipgloss.Style
	CodeFrame  lipgloss.Style
	CodeFocus  lipgloss.Style
	CardFrame  lipgloss.Style
	AlertFrame lipgloss.Style
	Hero       lipgloss.Style
	SkipLink   lipgloss.Style
	LiveRegion lipgloss.Style
	Footer     lipgloss.Style
	Toast      lipgloss.Style

	ToggleIcon string
}

// Dark palette colors.
const (
	dBase    = lipgloss.Color("235")
	dText    = lipgloss.Color("252")
	dMuted   = lipgloss.Color("243")
	dAccent  = lipgloss.Color("111")
	dFocus   = lipgloss.Color("183")
	dBorder  = lipgloss.Color("240")
	dWarn    = lipgloss.Color("214")
	dSuccess = lipgloss.Color("114")
)

// Light palette colors.
const (
	lBase    = lipgloss.Color("255")
	lText    = lipgloss.Color("235")
	lMuted   = lipgloss.Color("245")
	lAccent  = lipgloss.Color("26")
	lFocus   = lipgloss.Color("91")
	lBorder  = lipgloss.Color("250")
	lWarn    = lipgloss.Color("166")
	lSuccess = lipgloss.Color("28")
)

// DarkPalette returns the dark appearance styles.
func DarkPalette() Palette {
	return Palette{
		Name:         "dark",
		GlamourStyle: "dark",

		Header:     lipgloss.NewStyle().Foreground(dText).Background(lipgloss.Color("60")).Bold(true).Padding(0, 1),
		Heading:    lipgloss.NewStyle().Foreground(dAccent).Bold(true),
		Body:       lipgloss.NewStyle().Foreground(dText),
		Faint:      lipgloss.NewStyle().Foreground(dMuted).Faint(true),
		Link:       lipgloss.NewStyle().Foreground(dAccent).Underline(true),
		LinkFocus:  lipgloss.NewStyle().Foreground(dBase).Background(dFocus).Bold(true),
		CodeFrame:  lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(dBorder),
		CodeFocus:  lipgloss.NewStyle().Border(lipgloss.ThickBorder()).BorderForeground(dFocus),
		CardFrame:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(dBorder).Padding(0, 1),
		AlertFrame: lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(dWarn).PaddingLeft(1),
		Hero:       lipgloss.NewStyle().Foreground(dAccent).Bold(true).Italic(true),
		SkipLink:   lipgloss.NewStyle().Foreground(dBase).Background(dAccent).Padding(0, 1),
		LiveRegion: lipgloss.NewStyle().Foreground(dSuccess),
		Footer:     lipgloss.NewStyle().Foreground(dMuted),
		Toast:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(dSuccess).Foreground(dSuccess).Padding(0, 1),

		ToggleIcon: "☾",
	}
}

// LightPalette returns the light appearance styles.
func LightPalette() Palette {
	return Palette{
		Name:         "light",
		GlamourStyle: "light",

		Header:     lipgloss.NewStyle().Foreground(lBase).Background(lAccent).Bold(true).Padding(0, 1),
		Heading:    lipgloss.NewStyle().Foreground(lAccent).Bold(true),
		Body:       lipgloss.NewStyle().Foreground(lText),
		Faint:      lipgloss.NewStyle().Foreground(lMuted).Faint(true),
		Link:       lipgloss.NewStyle().Foreground(lAccent).Underline(true),
		LinkFocus:  lipgloss.NewStyle().Foreground(lBase).Background(lFocus).Bold(true),
		CodeFrame:  lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lBorder),
		CodeFocus:  lipgloss.NewStyle().Border(lipgloss.ThickBorder()).BorderForeground(lFocus),
		CardFrame:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lBorder).Padding(0, 1),
		AlertFrame: lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lWarn).PaddingLeft(1),
		Hero:       lipgloss.NewStyle().Foreground(lAccent).Bold(true).Italic(true),
		SkipLink:   lipgloss.NewStyle().Foreground(lBase).Background(lAccent).Padding(0, 1),
		LiveRegion: lipgloss.NewStyle().Foreground(lSuccess),
		Footer:     lipgloss.NewStyle().Foreground(lMuted),
		Toast:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lSuccess).Foreground(lSuccess).Padding(0, 1),

		ToggleIcon: "☀",
	}
}
