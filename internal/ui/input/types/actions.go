package types

import "rodrierr/internal/widget"

// Dropdown actions
type DropdownKeyAction struct {
	Key widget.Key
}

func (a DropdownKeyAction) Type() string { return "dropdown_key" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

// History chip actions
type MoveChipAction struct {
	Delta int
}

func (a MoveChipAction) Type() string { return "move_chip" }

type SelectChipAction struct {
	Index int
}

func (a SelectChipAction) Type() string { return "select_chip" }

type FocusChipAction struct {
	Index int
}

func (a FocusChipAction) Type() string { return "focus_chip" }

type ClearHistoryAction struct{}

func (a ClearHistoryAction) Type() string { return "clear_history" }

type ShowHistoryPagerAction struct{}

func (a ShowHistoryPagerAction) Type() string { return "show_history_pager" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct{}

func (a QuitAction) Type() string { return "quit" }
