// Package menu provides a generic list menu driven one input at a time.
package menu

// MenuItem represents a single item in a menu.
type MenuItem interface {
	// GetLabel returns the display label for this menu item.
	GetLabel() string
	// IsSelectable returns whether this item can be selected.
	IsSelectable() bool
	// GetHelpText returns optional help text for this item.
	GetHelpText() string
}

// MenuHandler handles menu item selection and activation.
type MenuHandler interface {
	// OnSelect is called when an item is selected (navigated to).
	OnSelect(item MenuItem, index int)
	// OnActivate is called when an item is activated.
	// Returns true if the menu should close, and any help text to display.
	OnActivate(item MenuItem, index int) (shouldClose bool, helpText string)
	// OnExit is called when the menu is closed, by activation or by backing out.
	OnExit()
	// GetTitle returns the menu title.
	GetTitle() string
}

// Item is a plain labelled menu item.
type Item struct {
	Label    string
	Help     string
	Disabled bool
}

func (i *Item) GetLabel() string    { return i.Label }
func (i *Item) IsSelectable() bool  { return !i.Disabled }
func (i *Item) GetHelpText() string { return i.Help }

// Menu is the navigation state of one open menu.
type Menu struct {
	Items    []MenuItem
	Selected int
	HelpText string
	Closed   bool

	handler MenuHandler
}

// New opens a menu with the first selectable item selected.
func New(items []MenuItem, handler MenuHandler) *Menu {
	m := &Menu{Items: items, handler: handler}
	for i, item := range items {
		if item.IsSelectable() {
			m.Selected = i
			break
		}
	}
	return m
}

// Title returns the handler's title.
func (m *Menu) Title() string {
	return m.handler.GetTitle()
}

// Current returns the selected item, or nil for an empty menu.
func (m *Menu) Current() MenuItem {
	if m.Selected < 0 || m.Selected >= len(m.Items) {
		return nil
	}
	return m.Items[m.Selected]
}

// Help returns the message from the last activation, or the selected
// item's help text when there is none.
func (m *Menu) Help() string {
	if m.HelpText != "" {
		return m.HelpText
	}
	if item := m.Current(); item != nil {
		return item.GetHelpText()
	}
	return ""
}

func (m *Menu) selectIndex(i int) {
	m.Selected = i
	m.HelpText = ""
	m.handler.OnSelect(m.Items[i], i)
}

// MoveUp selects the previous selectable item, wrapping to the bottom.
func (m *Menu) MoveUp() {
	for i := m.Selected - 1; i >= 0; i-- {
		if m.Items[i].IsSelectable() {
			m.selectIndex(i)
			return
		}
	}
	for i := len(m.Items) - 1; i > m.Selected; i-- {
		if m.Items[i].IsSelectable() {
			m.selectIndex(i)
			return
		}
	}
}

// MoveDown selects the next selectable item, wrapping to the top.
func (m *Menu) MoveDown() {
	for i := m.Selected + 1; i < len(m.Items); i++ {
		if m.Items[i].IsSelectable() {
			m.selectIndex(i)
			return
		}
	}
	for i := 0; i < m.Selected; i++ {
		if m.Items[i].IsSelectable() {
			m.selectIndex(i)
			return
		}
	}
}

// Activate triggers the selected item. It reports whether the menu closed.
func (m *Menu) Activate() bool {
	if m.Closed {
		return true
	}
	item := m.Current()
	if item == nil || !item.IsSelectable() {
		return false
	}
	shouldClose, help := m.handler.OnActivate(item, m.Selected)
	m.HelpText = help
	if shouldClose {
		m.Exit()
	}
	return m.Closed
}

// Exit closes the menu without activating anything.
func (m *Menu) Exit() {
	if m.Closed {
		return
	}
	m.Closed = true
	m.handler.OnExit()
}
