package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"rodrierr/internal/ui/input/modes"
	"rodrierr/internal/ui/input/types"
)

// Handler routes key messages to the active mode and owns the query input.
type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	keys        *types.KeyMap
	textInput   *textinput.Model
}

func New(keys *types.KeyMap) *Handler {
	if keys == nil {
		keys = types.DefaultKeyMap()
	}
	ti := textinput.New()
	ti.Prompt = "› "
	ti.Placeholder = "Busca con Rodrierr..."
	ti.CharLimit = 0
	ti.Focus()

	h := &Handler{
		currentMode: types.ModeSearch,
		keys:        keys,
		textInput:   &ti,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	h.modes[types.ModeSearch] = modes.NewSearchMode(keys)
	h.modes[types.ModeChips] = modes.NewChipsMode(keys)

	return h
}

// HandleKey returns the actions for msg. In search mode, keys the mode does
// not consume edit the text input; an UpdateTextAction follows only when the
// text actually changed.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)
	if !consumed {
		if h.currentMode != types.ModeSearch {
			return nil, nil
		}
		before := h.textInput.Value()
		var cmd tea.Cmd
		*h.textInput, cmd = h.textInput.Update(msg)
		if after := h.textInput.Value(); after != before {
			return []types.Action{types.UpdateTextAction{Text: after}}, cmd
		}
		return nil, cmd
	}

	var cmd tea.Cmd
	var allActions []types.Action
	for _, action := range actions {
		changeMode, ok := action.(types.ChangeModeAction)
		if !ok {
			allActions = append(allActions, action)
			continue
		}
		if changeMode.Mode == h.currentMode {
			continue
		}
		allActions = append(allActions, h.modes[h.currentMode].Exit(ctx)...)
		h.currentMode = changeMode.Mode
		allActions = append(allActions, h.modes[h.currentMode].Enter(ctx)...)

		if h.currentMode == types.ModeSearch {
			cmd = h.textInput.Focus()
		} else {
			h.textInput.Blur()
		}
	}
	return allActions, cmd
}

// Update handles non-keyboard messages for the text input (cursor blink).
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	*h.textInput, cmd = h.textInput.Update(msg)
	return cmd
}

// SetText replaces the query text without emitting actions, e.g. when an
// arrow key previews a suggestion.
func (h *Handler) SetText(s string) {
	if h.textInput.Value() == s {
		return
	}
	h.textInput.SetValue(s)
	h.textInput.CursorEnd()
}

// CurrentMode returns the active mode.
func (h *Handler) CurrentMode() types.Mode {
	return h.currentMode
}

// TextInput returns the query input model.
func (h *Handler) TextInput() *textinput.Model {
	return h.textInput
}

// Keys returns the key map shared by all modes.
func (h *Handler) Keys() *types.KeyMap {
	return h.keys
}
