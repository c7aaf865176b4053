package menu

import (
	"fmt"
	"strings"

	engineinput "blackout/pkg/engine/input"
)

// BindingMenuItem shows the keys bound to one action.
type BindingMenuItem struct {
	Action engineinput.Action
}

// GetLabel returns the display label for this binding menu item.
func (b *BindingMenuItem) GetLabel() string {
	name := engineinput.ActionName(b.Action)
	codes := engineinput.GetBindingsByAction()[b.Action]
	codeText := strings.Join(codes, ", ")
	if codeText == "" {
		codeText = "(unbound)"
	}
	return fmt.Sprintf("%s: %s", name, codeText)
}

// IsSelectable returns false; bindings are changed in the config file.
func (b *BindingMenuItem) IsSelectable() bool {
	return false
}

// GetHelpText returns help text for this binding.
func (b *BindingMenuItem) GetHelpText() string {
	return ""
}

var boundActions = []engineinput.Action{
	engineinput.ActionMoveNorth,
	engineinput.ActionMoveSouth,
	engineinput.ActionMoveWest,
	engineinput.ActionMoveEast,
	engineinput.ActionInteract,
	engineinput.ActionPrimary,
	engineinput.ActionToggleFlashlight,
	engineinput.ActionSprint,
	engineinput.ActionToggleInventory,
	engineinput.ActionToggleMenu,
}

func bindingItems() []MenuItem {
	items := make([]MenuItem, len(boundActions))
	for i, action := range boundActions {
		items[i] = &BindingMenuItem{Action: action}
	}
	return items
}
