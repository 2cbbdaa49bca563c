package theme

import (
	"fmt"
	"image/color"

	"charm.land/lipgloss/v2"
)

// Palette is a named set of colors the styles below are built from.
type Palette struct {
	Name      string
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	Bg        color.Color
	BgCard    color.Color
	Border    color.Color
}

// Dark is the default palette.
var Dark = Palette{
	Name:      "dark",
	Primary:   lipgloss.Color("#60A5FA"), // Sky
	Secondary: lipgloss.Color("#14B8A6"), // Teal
	Accent:    lipgloss.Color("#F59E0B"), // Amber
	Success:   lipgloss.Color("#22C55E"), // Green
	Error:     lipgloss.Color("#F43F5E"), // Rose
	Text:      lipgloss.Color("#F8FAFC"), // White
	TextDim:   lipgloss.Color("#94A3B8"), // Slate
	Bg:        lipgloss.Color("#0F172A"), // Deep Navy
	BgCard:    lipgloss.Color("#1E293B"), // Dark Slate
	Border:    lipgloss.Color("#334155"), // Slate
}

// Light is the palette selected by the dark mode toggle.
var Light = Palette{
	Name:      "light",
	Primary:   lipgloss.Color("#1D4ED8"), // Blue
	Secondary: lipgloss.Color("#0F766E"), // Dark Teal
	Accent:    lipgloss.Color("#B45309"), // Dark Amber
	Success:   lipgloss.Color("#15803D"), // Dark Green
	Error:     lipgloss.Color("#BE123C"), // Dark Rose
	Text:      lipgloss.Color("#0F172A"), // Navy
	TextDim:   lipgloss.Color("#475569"), // Slate
	Bg:        lipgloss.Color("#F8FAFC"), // Off White
	BgCard:    lipgloss.Color("#E2E8F0"), // Light Slate
	Border:    lipgloss.Color("#CBD5E1"), // Slate
}

// Colors of the current palette.
var (
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	BgDark    color.Color
	BgCard    color.Color
	Border    color.Color
)

// Typography
var (
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Hint     lipgloss.Style
)

// Layout
var (
	Header lipgloss.Style
	Footer lipgloss.Style
	Card   lipgloss.Style
)

// States
var (
	Selected   lipgloss.Style
	Unselected lipgloss.Style
	Correct    lipgloss.Style
	Incorrect  lipgloss.Style
)

// Components
var (
	ProgressFilled lipgloss.Style
	ProgressEmpty  lipgloss.Style
	ButtonActive   lipgloss.Style
	ButtonInactive lipgloss.Style
	ButtonDisabled lipgloss.Style
)

var current Palette

func init() {
	Apply(Dark)
}

// Current returns the palette in effect.
func Current() Palette {
	return current
}

// ByName returns the palette called name.
func ByName(name string) (Palette, error) {
	switch name {
	case Dark.Name:
		return Dark, nil
	case Light.Name:
		return Light, nil
	}
	return Palette{}, fmt.Errorf("unknown theme %q", name)
}

// Toggle switches between the dark and light palettes and returns the new one.
func Toggle() Palette {
	if current.Name == Dark.Name {
		Apply(Light)
	} else {
		Apply(Dark)
	}
	return current
}

// Apply makes p the current palette and rebuilds every style from it.
// Call it from the UI goroutine only.
func Apply(p Palette) {
	current = p

	Primary = p.Primary
	Secondary = p.Secondary
	Accent = p.Accent
	Success = p.Success
	Error = p.Error
	Text = p.Text
	TextDim = p.TextDim
	BgDark = p.Bg
	BgCard = p.BgCard
	Border = p.Border

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
		Foreground(TextDim).
		Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	Selected = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	Unselected = lipgloss.NewStyle().
		Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	ProgressFilled = lipgloss.NewStyle().
		Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
		Background(Border)

	ButtonActive = lipgloss.NewStyle().
		Background(Primary).
		Foreground(BgDark).
		Bold(true).
		Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
		Foreground(Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 2)

	ButtonDisabled = lipgloss.NewStyle().
		Foreground(Border).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 2)
}
