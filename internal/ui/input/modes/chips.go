package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"rodrierr/internal/ui/input/types"
)

// ChipsMode moves a focus marker across the history chips. Enter searches
// the focused entry.
type ChipsMode struct {
	keys *types.KeyMap
}

func NewChipsMode(keys *types.KeyMap) *ChipsMode {
	return &ChipsMode{keys: keys}
}

func (m *ChipsMode) Name() string {
	return types.ModeChips.String()
}

func (m *ChipsMode) Enter(ctx types.Context) []types.Action {
	return []types.Action{types.FocusChipAction{Index: 0}}
}

func (m *ChipsMode) Exit(ctx types.Context) []types.Action {
	return []types.Action{types.FocusChipAction{Index: -1}}
}

func (m *ChipsMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	back := types.ChangeModeAction{Mode: types.ModeSearch}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{}}, true
	case key.Matches(msg, m.keys.Left):
		return []types.Action{types.MoveChipAction{Delta: -1}}, true
	case key.Matches(msg, m.keys.Right):
		return []types.Action{types.MoveChipAction{Delta: 1}}, true
	case key.Matches(msg, m.keys.Confirm):
		return []types.Action{types.SelectChipAction{Index: ctx.ChipIndex()}, back}, true
	case key.Matches(msg, m.keys.Back):
		return []types.Action{back}, true
	case key.Matches(msg, m.keys.Clear):
		return []types.Action{types.ClearHistoryAction{}, back}, true
	case key.Matches(msg, m.keys.Pager):
		return []types.Action{types.ShowHistoryPagerAction{}}, true
	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	}
	// swallow everything else so stray keys do not edit the query
	return nil, true
}
