package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

// historyPagerMsg contains the result of a history pager command
type historyPagerMsg struct {
	err error
}

// RenderHistoryDocument renders the full history for the pager, one
// numbered entry per line, most recent first.
func RenderHistoryDocument(entries []string) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99"))
	numStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	var doc strings.Builder
	doc.WriteString(titleStyle.Render(fmt.Sprintf("Historial (%d)", len(entries))))
	doc.WriteString("\n\n")
	if len(entries) == 0 {
		doc.WriteString("  (vacío)\n")
		return doc.String()
	}
	for i, q := range entries {
		doc.WriteString(fmt.Sprintf("%s  %s\n", numStyle.Render(fmt.Sprintf("%3d", i+1)), q))
	}
	return doc.String()
}

// HistoryPager shows text in the ov pager, handing the terminal over while
// it runs.
type HistoryPager struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHistoryPager creates a pager bound to program.
func NewHistoryPager(program *tea.Program) *HistoryPager {
	return &HistoryPager{program: program}
}

// Show pages content until the user quits ov.
func (h *HistoryPager) Show(content string) error {
	if h == nil || h.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
