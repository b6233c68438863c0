package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"rodrierr/internal/ui/input/types"
	"rodrierr/internal/widget"
)

// SearchMode edits the query. Keys it does not consume go to the text input.
type SearchMode struct {
	keys *types.KeyMap
}

func NewSearchMode(keys *types.KeyMap) *SearchMode {
	return &SearchMode{keys: keys}
}

func (m *SearchMode) Name() string {
	return types.ModeSearch.String()
}

func (m *SearchMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *SearchMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *SearchMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{}}, true
	case key.Matches(msg, m.keys.Down):
		return []types.Action{types.DropdownKeyAction{Key: widget.KeyArrowDown}}, true
	case key.Matches(msg, m.keys.Up):
		return []types.Action{types.DropdownKeyAction{Key: widget.KeyArrowUp}}, true
	case key.Matches(msg, m.keys.Close):
		return []types.Action{types.DropdownKeyAction{Key: widget.KeyEscape}}, true
	case key.Matches(msg, m.keys.Confirm):
		return []types.Action{types.DropdownKeyAction{Key: widget.KeyEnter}}, true
	case key.Matches(msg, m.keys.Chips):
		if ctx.HistoryLen() == 0 {
			return nil, true
		}
		return []types.Action{types.ChangeModeAction{Mode: types.ModeChips}}, true
	case key.Matches(msg, m.keys.Clear):
		return []types.Action{types.ClearHistoryAction{}}, true
	case key.Matches(msg, m.keys.Pager):
		return []types.Action{types.ShowHistoryPagerAction{}}, true
	case key.Matches(msg, m.keys.Help) && ctx.InputEmpty():
		// "?" is only a shortcut on an empty query; otherwise it is typed
		return []types.Action{types.ToggleHelpAction{}}, true
	}
	return nil, false
}
