// Package menu provides the modal overlays (pause, inventory) that take
// over input while open. Modals are driven one input frame at a time by the
// game tick; they never block.
package menu

import (
	engineinput "blackout/pkg/engine/input"
)

// MenuItem represents a single item in a menu.
type MenuItem interface {
	// GetLabel returns the display label for this menu item.
	GetLabel() string
	// IsSelectable returns whether this item can be selected.
	IsSelectable() bool
	// GetHelpText returns optional help text for this item.
	GetHelpText() string
}

// MenuHandler supplies a modal's content and reacts to activation.
type MenuHandler interface {
	// GetTitle returns the menu title.
	GetTitle() string
	// GetInstructions returns the menu instructions.
	GetInstructions(selected MenuItem) string
	// GetMenuItems is called every frame so the content can change while open.
	GetMenuItems() []MenuItem
	// OnActivate is called when an item is activated.
	// Returns true if the menu should close, and any help text to display.
	OnActivate(item MenuItem, index int) (shouldClose bool, helpText string)
}

// View is everything a frontend needs to draw an open modal
type View struct {
	Title        string
	Instructions string
	Labels       []string
	Selectable   []bool
	Selected     int
	HelpText     string
}

// Modal is an open/closed overlay wrapping a handler.
type Modal struct {
	handler  MenuHandler
	toggle   engineinput.Action
	open     bool
	selected int
	helpText string
}

// NewModal creates a closed modal. toggle is the action that opens and
// closes it.
func NewModal(handler MenuHandler, toggle engineinput.Action) *Modal {
	return &Modal{handler: handler, toggle: toggle}
}

// Handler returns the modal's content handler
func (m *Modal) Handler() MenuHandler { return m.handler }

// IsOpen reports whether the modal is showing
func (m *Modal) IsOpen() bool { return m.open }

// Open shows the modal with the first selectable item selected
func (m *Modal) Open() {
	m.open = true
	m.selected = firstSelectable(m.handler.GetMenuItems())
	m.helpText = ""
}

// Close hides the modal
func (m *Modal) Close() {
	m.open = false
	m.helpText = ""
}

// Update applies one input frame to the modal. It returns true if the frame
// was consumed, which is always the case while the modal is open or when
// the frame opened it.
func (m *Modal) Update(frame engineinput.Frame) bool {
	if !m.open {
		if frame.Pressed(m.toggle) {
			m.Open()
			return true
		}
		return false
	}

	if frame.Pressed(m.toggle) || (frame.Pressed(engineinput.ActionToggleMenu) && m.toggle != engineinput.ActionToggleMenu) {
		m.Close()
		return true
	}

	items := m.handler.GetMenuItems()
	if m.selected >= len(items) || (len(items) > 0 && !items[m.selected].IsSelectable()) {
		m.selected = firstSelectable(items)
	}

	switch {
	case frame.Pressed(engineinput.ActionMoveNorth):
		m.move(items, -1)
	case frame.Pressed(engineinput.ActionMoveSouth):
		m.move(items, 1)
	case frame.Pressed(engineinput.ActionInteract), frame.Pressed(engineinput.ActionPrimary):
		if m.selected >= 0 && m.selected < len(items) && items[m.selected].IsSelectable() {
			shouldClose, helpText := m.handler.OnActivate(items[m.selected], m.selected)
			m.helpText = helpText
			if shouldClose {
				m.Close()
			}
		}
	}
	return true
}

// move steps the selection by dir, skipping unselectable items and
// wrapping around at either end.
func (m *Modal) move(items []MenuItem, dir int) {
	n := len(items)
	if n == 0 {
		return
	}
	for step := 1; step < n; step++ {
		i := ((m.selected+dir*step)%n + n) % n
		if items[i].IsSelectable() {
			m.selected = i
			m.helpText = ""
			return
		}
	}
}

// Selected returns the selected index
func (m *Modal) Selected() int { return m.selected }

// View snapshots the modal for drawing
func (m *Modal) View() View {
	items := m.handler.GetMenuItems()
	v := View{
		Title:      m.handler.GetTitle(),
		Selected:   m.selected,
		HelpText:   m.helpText,
		Labels:     make([]string, len(items)),
		Selectable: make([]bool, len(items)),
	}
	var selected MenuItem
	for i, item := range items {
		v.Labels[i] = item.GetLabel()
		v.Selectable[i] = item.IsSelectable()
		if i == m.selected {
			selected = item
		}
	}
	v.Instructions = m.handler.GetInstructions(selected)
	if v.HelpText == "" && selected != nil {
		v.HelpText = selected.GetHelpText()
	}
	return v
}

func firstSelectable(items []MenuItem) int {
	for i, item := range items {
		if item.IsSelectable() {
			return i
		}
	}
	return 0
}

// Stack holds every modal in priority order. At most one is open at a time.
type Stack struct {
	modals []*Modal
}

// NewStack creates a stack of modals; earlier modals get first look at input
func NewStack(modals ...*Modal) *Stack {
	return &Stack{modals: modals}
}

// AnyOpen reports whether any modal is showing
func (s *Stack) AnyOpen() bool {
	return s.Active() != nil
}

// Active returns the open modal, or nil
func (s *Stack) Active() *Modal {
	if s == nil {
		return nil
	}
	for _, m := range s.modals {
		if m.IsOpen() {
			return m
		}
	}
	return nil
}

// Update routes the frame to the open modal, or lets each closed modal
// check for its toggle. Returns true if a modal consumed the frame.
func (s *Stack) Update(frame engineinput.Frame) bool {
	if s == nil {
		return false
	}
	if m := s.Active(); m != nil {
		return m.Update(frame)
	}
	for _, m := range s.modals {
		if m.Update(frame) {
			return true
		}
	}
	return false
}
