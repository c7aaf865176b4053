package probe

import (
	engineinput "blackout/pkg/engine/input"
	"blackout/pkg/engine/world"
	"blackout/pkg/game/access"
	"blackout/pkg/game/gate"
	"blackout/pkg/game/i18n"
)

// PromptFor returns the look prompt for target given what the player holds.
// It reads state only, so calling it every tick is safe and the prompt can
// never drift from the object it describes. items names required items and
// may be nil.
func PromptFor(t Target, store gate.Counter, items *world.Catalog) string {
	interact := engineinput.KeyLabel(engineinput.ActionInteract)
	primary := engineinput.KeyLabel(engineinput.ActionPrimary)

	switch t.Kind {
	case KindPickup:
		return i18n.T("PROMPT_PICKUP", t.Pickup.Item.Name, interact)
	case KindAccess:
	default:
		return ""
	}

	switch p := t.Access.(type) {
	case *access.CardReader:
		switch {
		case p.IsActivated():
			return i18n.T("PROMPT_CARD_READER_DONE")
		case gate.CanSatisfy(store, p.Requirement()):
			return i18n.T("PROMPT_CARD_READER_READY", interact)
		default:
			return i18n.T("PROMPT_CARD_READER_NEED")
		}

	case *access.FuseBox:
		req := p.Requirement()
		switch {
		case p.IsActivated():
			return i18n.T("PROMPT_FUSEBOX_DONE")
		case gate.CanSatisfy(store, req):
			return i18n.T("PROMPT_FUSEBOX_READY", interact)
		default:
			return i18n.T("PROMPT_FUSEBOX_NEED", req.Count, req.Count-gate.Missing(store, req))
		}

	case *access.Drawer:
		if p.IsLocked() {
			return lockedPrompt(p.Name(), p.Requirement(), store, items, interact)
		}
		if item := p.Contents(); item != nil {
			return i18n.T("PROMPT_DRAWER_TAKE", item.Name, interact)
		}
		return openClosePrompt(p.Name(), p.IsOpen(), primary)

	case *access.Door:
		if p.IsLocked() {
			return lockedPrompt(p.Name(), p.Requirement(), store, items, interact)
		}
		return openClosePrompt(p.Name(), p.IsOpen(), primary)
	}
	return ""
}

func lockedPrompt(name string, req gate.Requirement, store gate.Counter, items *world.Catalog, key string) string {
	switch {
	case req.IsNone():
		return i18n.T("PROMPT_DOOR_SEALED", name)
	case gate.CanSatisfy(store, req):
		return i18n.T("PROMPT_DOOR_UNLOCK", name, key)
	default:
		return i18n.T("PROMPT_DOOR_NEED_KEY", name, ItemName(items, req.Item))
	}
}

// ItemName returns the display name for id, or the ID itself when the
// catalog does not know it.
func ItemName(items *world.Catalog, id world.ItemID) string {
	if def := items.Get(id); def != nil {
		return def.Name
	}
	return string(id)
}

func openClosePrompt(name string, open bool, key string) string {
	if open {
		return i18n.T("PROMPT_DOOR_OPEN", name, key)
	}
	return i18n.T("PROMPT_DOOR_CLOSED", name, key)
}
