// Package ui is the terminal shell over the search widget.
package ui

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"rodrierr/internal/dispatch"
	"rodrierr/internal/eventbus"
	"rodrierr/internal/ui/input"
	inputtypes "rodrierr/internal/ui/input/types"
	"rodrierr/internal/ui/views"
	"rodrierr/internal/widget"
)

// Model represents the UI state
type Model struct {
	widget *widget.Widget
	logger *slog.Logger

	width  int
	height int
	help   help.Model

	chip       int // focused history chip, -1 when none
	status     string
	statusKind views.StatusKind
	quitting   bool

	inputHandler *input.Handler
	renderer     *views.Renderer
	pager        *HistoryPager

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model over w.
func NewModel(w *widget.Widget, logger *slog.Logger) *Model {
	if logger == nil {
		logger = slog.Default()
	}
	m := &Model{
		widget:       w,
		logger:       logger.With("component", "ui"),
		help:         help.New(),
		chip:         -1,
		inputHandler: input.New(nil),
		renderer:     views.NewRenderer(),
	}
	m.inputHandler.SetText(w.Input())
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager = NewHistoryPager(p)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		actions, cmd := m.inputHandler.HandleKey(msg, m)
		cmds := []tea.Cmd{cmd}
		for _, action := range actions {
			cmds = append(cmds, m.apply(action))
		}
		// arrow keys preview rows into the query
		m.inputHandler.SetText(m.widget.Input())
		return m, tea.Batch(cmds...)

	case historyPagerMsg:
		if msg.err != nil {
			m.logger.Warn("history pager failed", "error", msg.err)
			m.setStatus(views.StatusError, "No se pudo abrir el historial: %v", msg.err)
		}
		return m, nil

	case EventMsg:
		m.handleEvent(msg.Event)
		return m, nil
	}

	return m, m.inputHandler.Update(msg)
}

func (m *Model) apply(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.UpdateTextAction:
		m.widget.SetInput(a.Text)

	case inputtypes.DropdownKeyAction:
		m.report(m.widget.HandleKey(a.Key))

	case inputtypes.FocusChipAction:
		m.chip = a.Index
		if m.chip >= m.HistoryLen() {
			m.chip = m.HistoryLen() - 1
		}

	case inputtypes.MoveChipAction:
		n := m.HistoryLen()
		if n == 0 {
			m.chip = -1
			break
		}
		m.chip = ((m.chip+a.Delta)%n + n) % n

	case inputtypes.SelectChipAction:
		m.report(m.widget.SelectHistory(a.Index))

	case inputtypes.ClearHistoryAction:
		if err := m.widget.ClearHistory(); err != nil {
			m.logger.Error("clear history", "error", err)
			m.setStatus(views.StatusError, "No se pudo borrar el historial: %v", err)
			break
		}
		m.chip = -1
		m.setStatus(views.StatusInfo, "Historial borrado")

	case inputtypes.ShowHistoryPagerAction:
		return m.showHistoryPager()

	case inputtypes.ToggleHelpAction:
		m.help.ShowAll = !m.help.ShowAll

	case inputtypes.QuitAction:
		m.quitting = true
		return tea.Quit
	}
	return nil
}

// report turns a confirm outcome into the status line.
func (m *Model) report(res dispatch.Result, err error) {
	if err != nil {
		m.logger.Error("search dispatched but history not saved", "query", res.Query, "error", err)
		m.setStatus(views.StatusError, "Búsqueda abierta, pero no se guardó el historial: %v", err)
		return
	}
	if res.Dispatched {
		m.setStatus(views.StatusSuccess, "Abriendo %s", res.URL)
	}
}

func (m *Model) handleEvent(e eventbus.DomainEvent) {
	switch e := e.(type) {
	case eventbus.SearchDispatchedEvent:
		// a save error for the same search stays on screen
		if m.statusKind == views.StatusError {
			return
		}
		m.setStatus(views.StatusSuccess, "Abriendo %s", e.URL)
	case eventbus.HistoryClearedEvent:
		m.chip = -1
		m.setStatus(views.StatusInfo, "Historial borrado")
	case eventbus.ErrorEvent:
		m.setStatus(views.StatusError, "Error: %s: %v", e.Message, e.Err)
	}
}

func (m *Model) setStatus(kind views.StatusKind, format string, args ...any) {
	m.statusKind = kind
	m.status = fmt.Sprintf(format, args...)
}

func (m *Model) showHistoryPager() tea.Cmd {
	content := RenderHistoryDocument(m.widget.History())
	pager := m.pager
	return func() tea.Msg {
		return historyPagerMsg{err: pager.Show(content)}
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.widget.Snapshot()
	chip := -1
	if m.inputHandler.CurrentMode() == inputtypes.ModeChips {
		chip = m.chip
	}

	return m.renderer.Render(views.ViewState{
		Width:        m.width,
		Height:       m.height,
		Input:        m.inputHandler.TextInput().View(),
		InputFocused: m.inputHandler.CurrentMode() == inputtypes.ModeSearch,
		Suggestions:  snap.Suggestions,
		Active:       snap.Active,
		DropdownOpen: snap.DropdownOpen,
		History:      snap.History,
		ChipIndex:    chip,
		Status:       m.status,
		StatusKind:   m.statusKind,
		HelpView:     m.help.View(m.inputHandler.Keys()),
	})
}

// DropdownOpen implements types.Context.
func (m *Model) DropdownOpen() bool { return m.widget.DropdownOpen() }

// InputEmpty implements types.Context.
func (m *Model) InputEmpty() bool { return m.inputHandler.TextInput().Value() == "" }

// HistoryLen implements types.Context.
func (m *Model) HistoryLen() int { return len(m.widget.History()) }

// ChipIndex implements types.Context.
func (m *Model) ChipIndex() int { return m.chip }

// Mode returns the active input mode.
func (m *Model) Mode() inputtypes.Mode { return m.inputHandler.CurrentMode() }

// Status returns the status line text.
func (m *Model) Status() string { return m.status }

// Query returns the text shown in the query input.
func (m *Model) Query() string { return m.inputHandler.TextInput().Value() }
