package input

import (
	"sort"
	"strings"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceMouse
	DeviceTerminal
	DeviceScript
)

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveNorth
	ActionMoveSouth
	ActionMoveWest
	ActionMoveEast

	// Interaction
	ActionInteract         // Use / pick up the looked-at object (F, E)
	ActionPrimary          // Open or close the looked-at door/drawer (click, Space)
	ActionToggleFlashlight // T
	ActionSprint           // Shift, R: toggle sprinting

	// Meta / UI
	ActionToggleMenu      // Pause menu (Escape)
	ActionToggleInventory // I, Tab
	ActionQuit
	ActionDumpMap // F9

	actionCount
)

// Intent is the 4th‑layer, high‑level description of what the player wants to do.
type Intent struct {
	Action Action
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "f", "arrow_up", "mouse_left").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation after debouncing/deduplication.
// Key-repeat events for a code that is still held are dropped by EdgeTracker,
// so everything reaching this layer is a discrete press.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   strings.ToLower(raw.Code),
	}
}

// defaultBindings is the binding table restored by ResetBindings.
var defaultBindings = map[string]Action{
	// Movement (arrows, WASD-free compass letters, Vim)
	"arrow_up":    ActionMoveNorth,
	"north":       ActionMoveNorth,
	"k":           ActionMoveNorth,
	"w":           ActionMoveNorth,
	"arrow_down":  ActionMoveSouth,
	"south":       ActionMoveSouth,
	"j":           ActionMoveSouth,
	"s":           ActionMoveSouth,
	"arrow_left":  ActionMoveWest,
	"west":        ActionMoveWest,
	"h":           ActionMoveWest,
	"a":           ActionMoveWest,
	"arrow_right": ActionMoveEast,
	"east":        ActionMoveEast,
	"l":           ActionMoveEast,
	"d":           ActionMoveEast,

	// Interaction
	"f":          ActionInteract,
	"e":          ActionInteract,
	"interact":   ActionInteract,
	"mouse_left": ActionPrimary,
	"space":      ActionPrimary,
	"click":      ActionPrimary,
	"t":          ActionToggleFlashlight,
	"flashlight": ActionToggleFlashlight,
	"shift":      ActionSprint,
	"r":          ActionSprint,
	"sprint":     ActionSprint,

	// Menus
	"escape":    ActionToggleMenu,
	"menu":      ActionToggleMenu,
	"p":         ActionToggleMenu,
	"i":         ActionToggleInventory,
	"tab":       ActionToggleInventory,
	"inventory": ActionToggleInventory,

	"q":    ActionQuit,
	"quit": ActionQuit,
	"f9":   ActionDumpMap,
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = copyBindings(defaultBindings)

func copyBindings(src map[string]Action) map[string]Action {
	dst := make(map[string]Action, len(src))
	for code, act := range src {
		dst[code] = act
	}
	return dst
}

// ResetBindings restores the default binding table.
func ResetBindings() {
	bindings = copyBindings(defaultBindings)
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high‑level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

var actionNames = map[Action]string{
	ActionMoveNorth:        "Move North",
	ActionMoveSouth:        "Move South",
	ActionMoveWest:         "Move West",
	ActionMoveEast:         "Move East",
	ActionInteract:         "Interact",
	ActionPrimary:          "Primary Action",
	ActionToggleFlashlight: "Flashlight",
	ActionSprint:           "Sprint",
	ActionToggleMenu:       "Menu",
	ActionToggleInventory:  "Inventory",
	ActionQuit:             "Quit",
	ActionDumpMap:          "Dump Map",
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "None"
}

// ActionFromName resolves a name as written in config files ("interact",
// "primary_action", "Move North"). Matching ignores case, spaces and underscores.
func ActionFromName(name string) (Action, bool) {
	key := normalizeName(name)
	for act, n := range actionNames {
		if normalizeName(n) == key {
			return act, true
		}
	}
	if key == "primaryaction" || key == "primary" {
		return ActionPrimary, true
	}
	return ActionNone, false
}

func normalizeName(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	return strings.ReplaceAll(s, "_", "")
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Ensure stable ordering of codes within each action so UI doesn't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// reservedCodes can never be rebound away from their default action.
var reservedCodes = map[string]bool{
	"arrow_up": true, "arrow_down": true, "arrow_left": true, "arrow_right": true,
	"escape": true, "f": true,
}

// SetSingleBinding replaces all non-reserved bindings for the given action with a single code.
func SetSingleBinding(action Action, code string) {
	code = strings.ToLower(code)
	for c, a := range bindings {
		if reservedCodes[c] {
			continue
		}
		if a == action {
			delete(bindings, c)
		}
	}
	if code != "" && !reservedCodes[code] {
		bindings[code] = action
	}
}

// Frame is the set of discrete input edges observed during one tick.
// An action appears at most once per frame regardless of how many events produced it.
type Frame struct {
	pressed [actionCount]bool
}

// NewFrame builds a frame from a list of actions.
func NewFrame(actions ...Action) Frame {
	var f Frame
	for _, a := range actions {
		f.Press(a)
	}
	return f
}

// Press records an edge for the action.
func (f *Frame) Press(a Action) {
	if a > ActionNone && a < actionCount {
		f.pressed[a] = true
	}
}

// Pressed reports whether the action had an edge this frame.
func (f Frame) Pressed(a Action) bool {
	if a <= ActionNone || a >= actionCount {
		return false
	}
	return f.pressed[a]
}

// Empty reports whether no action was pressed.
func (f Frame) Empty() bool {
	for _, p := range f.pressed {
		if p {
			return false
		}
	}
	return true
}

// Actions returns the pressed actions in declaration order.
func (f Frame) Actions() []Action {
	var out []Action
	for a := ActionNone + 1; a < actionCount; a++ {
		if f.pressed[a] {
			out = append(out, a)
		}
	}
	return out
}

// EdgeTracker turns level-triggered "is held" samples into press edges.
// A held code produces one edge on the tick it goes down and none while it stays down.
type EdgeTracker struct {
	held map[string]bool
}

// NewEdgeTracker creates an empty tracker.
func NewEdgeTracker() *EdgeTracker {
	return &EdgeTracker{held: make(map[string]bool)}
}

// Sample takes the set of codes currently held and returns the frame of new presses.
func (t *EdgeTracker) Sample(device Device, down []string) Frame {
	var f Frame
	now := make(map[string]bool, len(down))
	for _, code := range down {
		ev := NewDebouncedInput(RawInput{Device: device, Code: code})
		now[ev.Code] = true
		if t.held[ev.Code] {
			continue
		}
		f.Press(MapToIntent(ev).Action)
	}
	t.held = now
	return f
}

// keyDisplayNames are the on-screen labels for codes that are not a single character.
var keyDisplayNames = map[string]string{
	"arrow_up": "↑", "arrow_down": "↓", "arrow_left": "←", "arrow_right": "→",
	"escape": "Esc", "space": "Space", "tab": "Tab", "mouse_left": "Click", "shift": "Shift",
}

// KeyLabel returns a short label for the key bound to action, for use in
// prompts like "Open (F)". Reserved codes win, then named keys, then single
// characters. Returns "" when the action is unbound.
func KeyLabel(action Action) string {
	codes := GetBindingsByAction()[action]
	best, bestRank := "", 0
	for _, code := range codes {
		rank := 0
		switch {
		case reservedCodes[code]:
			rank = 3
		case keyDisplayNames[code] != "":
			rank = 2
		case len([]rune(code)) == 1:
			rank = 1
		}
		if rank > bestRank {
			best, bestRank = code, rank
		}
	}
	if name, ok := keyDisplayNames[best]; ok {
		return name
	}
	return strings.ToUpper(best)
}

// windowKeyCodes maps window-system key names that are not a single
// character to binding codes.
var windowKeyCodes = map[string]string{
	"ArrowUp": "arrow_up", "ArrowDown": "arrow_down", "ArrowLeft": "arrow_left", "ArrowRight": "arrow_right",
	"Space": "space", "Tab": "tab", "Escape": "escape", "Enter": "interact", "NumpadEnter": "interact",
	"ShiftLeft": "shift", "ShiftRight": "shift",
}

// CodeForKeyName turns a window key name ("A", "Digit1", "ArrowUp", "F9")
// into the binding code the terminal frontends produce for the same key.
func CodeForKeyName(name string) string {
	if code, ok := windowKeyCodes[name]; ok {
		return code
	}
	return strings.ToLower(strings.TrimPrefix(name, "Digit"))
}
