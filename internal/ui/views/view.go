package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StatusKind selects the status line colour
type StatusKind int

const (
	StatusInfo StatusKind = iota
	StatusSuccess
	StatusError
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width        int
	Height       int
	Input        string // rendered text input
	InputFocused bool
	Suggestions  []string
	Active       int
	DropdownOpen bool
	History      []string
	ChipIndex    int // -1 when the chips row is not focused
	Status       string
	StatusKind   StatusKind
	HelpView     string
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Styles exposes the style set.
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	width := state.Width
	if width <= 0 {
		width = 80
	}
	boxWidth := max(min(72, width-6), 10)

	var b strings.Builder
	b.WriteString(r.RenderLogo())
	b.WriteString("\n\n")

	box := r.styles.SearchBox
	if state.InputFocused {
		box = r.styles.SearchBoxFocused
	}
	b.WriteString(box.Width(boxWidth).Render(state.Input))
	b.WriteString("\n")

	if state.DropdownOpen && len(state.Suggestions) > 0 {
		b.WriteString(r.renderDropdown(state.Suggestions, state.Active, boxWidth))
		b.WriteString("\n")
	}

	b.WriteString(r.styles.Section.Render("Historial"))
	b.WriteString("\n")
	b.WriteString(r.renderChips(state.History, state.ChipIndex, width-4))
	b.WriteString("\n")

	if state.Status != "" {
		b.WriteString("\n")
		b.WriteString(r.statusStyle(state.StatusKind).Render(state.Status))
		b.WriteString("\n")
	}

	if state.HelpView != "" {
		b.WriteString("\n")
		b.WriteString(state.HelpView)
	}

	return r.styles.Main.Render(b.String())
}

// RenderLogo renders the coloured wordmark.
func (r *Renderer) RenderLogo() string {
	parts := []string{"R", "o", "d", "r", "i", "err"}
	var b strings.Builder
	for i, p := range parts {
		b.WriteString(r.styles.LogoLetters[i%len(r.styles.LogoLetters)].Render(p))
	}
	return b.String()
}

func (r *Renderer) renderDropdown(items []string, active, width int) string {
	rows := make([]string, len(items))
	for i, item := range items {
		style := r.styles.Suggestion
		if i == active {
			style = r.styles.SuggestionActive
		}
		rows[i] = style.Width(width).Render(item)
	}
	return r.styles.Dropdown.Render(strings.Join(rows, "\n"))
}

// renderChips lays chips out left to right, wrapping at width.
func (r *Renderer) renderChips(history []string, focused, width int) string {
	if len(history) == 0 {
		return r.styles.Dim.Render("Sin búsquedas todavía")
	}

	var lines []string
	var row []string
	rowWidth := 0
	for i, q := range history {
		style := r.styles.Chip
		if i == focused {
			style = r.styles.ChipFocused
		}
		chip := style.Render(q)
		w := lipgloss.Width(chip)
		if rowWidth > 0 && rowWidth+w > width {
			lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row, rowWidth = nil, 0
		}
		row = append(row, chip)
		rowWidth += w
	}
	if len(row) > 0 {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) statusStyle(kind StatusKind) lipgloss.Style {
	switch kind {
	case StatusError:
		return r.styles.StatusError
	case StatusSuccess:
		return r.styles.StatusSuccess
	default:
		return r.styles.Status
	}
}
