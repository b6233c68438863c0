// Package widget is the search box view-model: input text, suggestion
// dropdown and history, driven by discrete user events.
//
// A Widget is not safe for concurrent use. Shells deliver events one at a
// time and each handler runs to completion, including the history write.
package widget

import (
	"rodrierr/internal/dispatch"
	"rodrierr/internal/dropdown"
	"rodrierr/internal/eventbus"
	"rodrierr/internal/history"
	"rodrierr/internal/suggest"
)

// Key is a navigation key understood by the dropdown.
type Key int

const (
	KeyArrowDown Key = iota + 1
	KeyArrowUp
	KeyEscape
	KeyEnter
)

func (k Key) String() string {
	switch k {
	case KeyArrowDown:
		return "ArrowDown"
	case KeyArrowUp:
		return "ArrowUp"
	case KeyEscape:
		return "Escape"
	case KeyEnter:
		return "Enter"
	default:
		return "Unknown"
	}
}

// Snapshot is everything a shell needs to render the widget.
type Snapshot struct {
	Input        string
	Suggestions  []string
	Active       int
	DropdownOpen bool
	History      []string
	LastURL      string
}

// Widget owns the interactive state.
type Widget struct {
	input      string
	engine     *suggest.Engine
	history    *history.Manager
	dispatcher *dispatch.Dispatcher
	dropdown   dropdown.State
	last       dispatch.Result
	bus        eventbus.EventBus
}

// New builds a widget. The history manager should already be loaded. When
// bus is non-nil, history changes are published on it.
func New(e *suggest.Engine, h *history.Manager, d *dispatch.Dispatcher, bus eventbus.EventBus) *Widget {
	w := &Widget{
		engine:     e,
		history:    h,
		dispatcher: d,
		dropdown:   dropdown.New(),
		bus:        bus,
	}
	if bus != nil {
		h.OnChange(func(entries history.SearchHistory) {
			if len(entries) == 0 {
				bus.Publish(eventbus.HistoryClearedEvent{})
				return
			}
			bus.Publish(eventbus.HistoryChangedEvent{Entries: entries})
		})
	}
	return w
}

// SetInput handles a keystroke that changed the input text. The dropdown is
// recomputed from scratch.
func (w *Widget) SetInput(text string) {
	w.input = text
	w.dropdown.Show(w.engine.Suggest(text, w.history.Entries()))
}

// HandleKey applies a navigation key. Arrow keys preview the active row in
// the input; Enter closes the dropdown and confirms the current input.
func (w *Widget) HandleKey(k Key) (dispatch.Result, error) {
	switch k {
	case KeyArrowDown:
		if text, ok := w.dropdown.Down(); ok {
			w.input = text
		}
	case KeyArrowUp:
		if text, ok := w.dropdown.Up(); ok {
			w.input = text
		}
	case KeyEscape:
		w.dropdown.Hide()
	case KeyEnter:
		w.dropdown.Hide()
		return w.confirm()
	}
	return dispatch.Result{}, nil
}

// SelectSuggestion handles a pointer activation of dropdown row i: the row
// text replaces the input and is confirmed at once.
func (w *Widget) SelectSuggestion(i int) (dispatch.Result, error) {
	text, ok := w.dropdown.Row(i)
	if !ok {
		return dispatch.Result{}, nil
	}
	w.input = text
	return w.confirm()
}

// SelectHistory handles a click on history chip i.
func (w *Widget) SelectHistory(i int) (dispatch.Result, error) {
	entries := w.history.Entries()
	if i < 0 || i >= len(entries) {
		return dispatch.Result{}, nil
	}
	w.input = entries[i]
	return w.confirm()
}

// Submit handles the search button.
func (w *Widget) Submit() (dispatch.Result, error) {
	return w.confirm()
}

// ClickOutside closes the dropdown without confirming.
func (w *Widget) ClickOutside() {
	w.dropdown.Hide()
}

// ClearHistory empties the history without confirmation. The dropdown is
// closed so no row from the old history can be confirmed again.
func (w *Widget) ClearHistory() error {
	w.dropdown.Hide()
	err := w.history.Clear()
	if err != nil && w.bus != nil {
		w.bus.Publish(eventbus.ErrorEvent{Message: "history not cleared", Err: err})
	}
	return err
}

func (w *Widget) confirm() (dispatch.Result, error) {
	res, err := w.dispatcher.Confirm(w.input)
	if res.Dispatched {
		w.dropdown.Hide()
		w.last = res
	}
	return res, err
}

// Input returns the current input text.
func (w *Widget) Input() string { return w.input }

// Suggestions returns the rows currently shown.
func (w *Widget) Suggestions() []string { return w.dropdown.Items() }

// ActiveIndex returns the highlighted row or dropdown.None.
func (w *Widget) ActiveIndex() int { return w.dropdown.Active() }

// DropdownOpen reports whether the dropdown is visible.
func (w *Widget) DropdownOpen() bool { return w.dropdown.IsOpen() }

// History returns a copy of the history, most recent first.
func (w *Widget) History() []string { return w.history.Entries() }

// Snapshot captures the render state.
func (w *Widget) Snapshot() Snapshot {
	return Snapshot{
		Input:        w.input,
		Suggestions:  w.dropdown.Items(),
		Active:       w.dropdown.Active(),
		DropdownOpen: w.dropdown.IsOpen(),
		History:      w.history.Entries(),
		LastURL:      w.last.URL,
	}
}
