package menu

import (
	"fmt"
	"strings"

	"blackout/pkg/engine/world"
	"blackout/pkg/game/i18n"
	"blackout/pkg/game/inventory"
)

// SlotMenuItem is one inventory slot
type SlotMenuItem struct {
	Item  *world.ItemDefinition
	Count int
}

// GetLabel returns the item name with its count when stacked
func (s *SlotMenuItem) GetLabel() string {
	label := s.Item.Name
	if s.Item.Icon != "" {
		label = s.Item.Icon + " " + label
	}
	if s.Count > 1 {
		label = fmt.Sprintf("%s ×%d", label, s.Count)
	}
	return label
}

// IsSelectable returns true
func (s *SlotMenuItem) IsSelectable() bool { return true }

// GetHelpText returns the item's description followed by any document text
func (s *SlotMenuItem) GetHelpText() string {
	parts := make([]string, 0, 2)
	if s.Item.ShortDescription != "" {
		parts = append(parts, s.Item.ShortDescription)
	}
	if s.Item.IsDocument() {
		parts = append(parts, s.Item.DocumentContent)
	}
	return strings.Join(parts, "\n\n")
}

type emptyMenuItem struct{}

func (emptyMenuItem) GetLabel() string    { return i18n.T("INVENTORY_EMPTY") }
func (emptyMenuItem) IsSelectable() bool  { return false }
func (emptyMenuItem) GetHelpText() string { return "" }

// InventoryMenuHandler lists what the player carries.
type InventoryMenuHandler struct {
	store *inventory.Store
}

// NewInventoryMenuHandler creates a handler reading from store
func NewInventoryMenuHandler(store *inventory.Store) *InventoryMenuHandler {
	return &InventoryMenuHandler{store: store}
}

// GetTitle returns the menu title.
func (h *InventoryMenuHandler) GetTitle() string {
	return i18n.T("INVENTORY")
}

// GetInstructions returns the menu instructions.
func (h *InventoryMenuHandler) GetInstructions(selected MenuItem) string {
	return i18n.T("INVENTORY_HINT")
}

// GetMenuItems returns one item per slot in pickup order
func (h *InventoryMenuHandler) GetMenuItems() []MenuItem {
	slots := h.store.Slots()
	if len(slots) == 0 {
		return []MenuItem{emptyMenuItem{}}
	}
	items := make([]MenuItem, len(slots))
	for i, slot := range slots {
		items[i] = &SlotMenuItem{Item: slot.Item, Count: slot.Count}
	}
	return items
}

// OnActivate shows the selected item's text as help without closing
func (h *InventoryMenuHandler) OnActivate(item MenuItem, index int) (bool, string) {
	return false, item.GetHelpText()
}
