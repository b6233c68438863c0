package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	LogoLetters      []lipgloss.Style
	SearchBox        lipgloss.Style
	SearchBoxFocused lipgloss.Style
	Dropdown         lipgloss.Style
	Suggestion       lipgloss.Style
	SuggestionActive lipgloss.Style
	Section          lipgloss.Style
	Chip             lipgloss.Style
	ChipFocused      lipgloss.Style
	Dim              lipgloss.Style
	Status           lipgloss.Style
	StatusError      lipgloss.Style
	StatusSuccess    lipgloss.Style
	Help             lipgloss.Style
	Main             lipgloss.Style
}

// Logo colours follow the page: red, yellow, blue, green, red, yellow.
var logoColors = []string{"#ea4335", "#fbbc05", "#4285f4", "#34a853", "#ea4335", "#fbbc05"}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	letters := make([]lipgloss.Style, len(logoColors))
	for i, c := range logoColors {
		letters[i] = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(c))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#dadce0")).
		Padding(0, 1)

	return &Styles{
		LogoLetters:      letters,
		SearchBox:        box,
		SearchBoxFocused: box.BorderForeground(lipgloss.Color("#4285f4")),
		Dropdown: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, true, true).
			BorderForeground(lipgloss.Color("#dadce0")),
		Suggestion:       lipgloss.NewStyle().Padding(0, 1),
		SuggestionActive: lipgloss.NewStyle().Padding(0, 1).Background(lipgloss.Color("238")).Bold(true),
		Section:          lipgloss.NewStyle().Bold(true).MarginTop(1),
		Chip: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		ChipFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4285f4")).
			Bold(true).
			Padding(0, 1),
		Dim:           lipgloss.NewStyle().Faint(true),
		Status:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		Help:          lipgloss.NewStyle().Faint(true),
		Main:          lipgloss.NewStyle().Padding(1, 2),
	}
}
