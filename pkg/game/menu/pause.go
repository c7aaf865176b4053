package menu

import "blackout/pkg/game/i18n"

// PauseAction identifies an entry in the pause menu
type PauseAction int

const (
	PauseActionResume PauseAction = iota
	PauseActionQuit
)

// PauseMenuItem represents a menu item in the pause menu.
type PauseMenuItem struct {
	Label  string
	Action PauseAction
}

// GetLabel returns the display label for this menu item.
func (m *PauseMenuItem) GetLabel() string {
	return m.Label
}

// IsSelectable returns whether this item can be selected.
func (m *PauseMenuItem) IsSelectable() bool {
	return true
}

// GetHelpText returns help text for this menu item.
func (m *PauseMenuItem) GetHelpText() string {
	return ""
}

// PauseMenuHandler handles the pause menu.
type PauseMenuHandler struct {
	quitRequested bool
}

// NewPauseMenuHandler creates a new pause menu handler.
func NewPauseMenuHandler() *PauseMenuHandler {
	return &PauseMenuHandler{}
}

// GetTitle returns the menu title.
func (h *PauseMenuHandler) GetTitle() string {
	return i18n.T("MENU_PAUSE")
}

// GetInstructions returns the menu instructions.
func (h *PauseMenuHandler) GetInstructions(selected MenuItem) string {
	return "Use up/down to select, Enter to activate, Escape to close"
}

// GetMenuItems returns resume and quit followed by the current key bindings.
func (h *PauseMenuHandler) GetMenuItems() []MenuItem {
	items := []MenuItem{
		&PauseMenuItem{Label: i18n.T("MENU_RESUME"), Action: PauseActionResume},
		&PauseMenuItem{Label: i18n.T("MENU_QUIT"), Action: PauseActionQuit},
	}
	return append(items, bindingItems()...)
}

// OnActivate is called when an item is activated.
func (h *PauseMenuHandler) OnActivate(item MenuItem, index int) (bool, string) {
	pauseItem, ok := item.(*PauseMenuItem)
	if !ok {
		return false, ""
	}
	if pauseItem.Action == PauseActionQuit {
		h.quitRequested = true
	}
	return true, ""
}

// QuitRequested returns true once the player has chosen Quit
func (h *PauseMenuHandler) QuitRequested() bool {
	return h.quitRequested
}
