package menu

import "testing"

type recordingHandler struct {
	selected  []int
	activated []int
	exits     int
	closeOn   int
}

func (h *recordingHandler) OnSelect(_ MenuItem, index int) {
	h.selected = append(h.selected, index)
}

func (h *recordingHandler) OnActivate(_ MenuItem, index int) (bool, string) {
	h.activated = append(h.activated, index)
	return index == h.closeOn, "activated"
}

func (h *recordingHandler) OnExit()          { h.exits++ }
func (h *recordingHandler) GetTitle() string { return "Test" }

func testItems() []MenuItem {
	return []MenuItem{
		&Item{Label: "Heading", Disabled: true},
		&Item{Label: "A"},
		&Item{Label: "B"},
		&Item{Label: "Off", Disabled: true},
		&Item{Label: "C"},
	}
}

func TestNewSkipsUnselectable(t *testing.T) {
	m := New(testItems(), &recordingHandler{})
	if m.Selected != 1 {
		t.Errorf("Selected = %d, want 1", m.Selected)
	}
	if m.Title() != "Test" {
		t.Errorf("Title() = %q", m.Title())
	}
}

func TestNavigationWraps(t *testing.T) {
	h := &recordingHandler{}
	m := New(testItems(), h)

	steps := []struct {
		move func()
		want int
	}{
		{m.MoveDown, 2},
		{m.MoveDown, 4},
		{m.MoveDown, 1},
		{m.MoveUp, 4},
		{m.MoveUp, 2},
	}
	for i, s := range steps {
		s.move()
		if m.Selected != s.want {
			t.Errorf("step %d: Selected = %d, want %d", i, m.Selected, s.want)
		}
	}
	if len(h.selected) != len(steps) {
		t.Errorf("OnSelect called %d times, want %d", len(h.selected), len(steps))
	}
}

func TestActivate(t *testing.T) {
	h := &recordingHandler{closeOn: 2}
	m := New(testItems(), h)

	if m.Activate() {
		t.Errorf("Activate(A) closed the menu")
	}
	if m.HelpText != "activated" {
		t.Errorf("HelpText = %q", m.HelpText)
	}
	m.MoveDown()
	if m.HelpText != "" {
		t.Errorf("HelpText kept after navigation: %q", m.HelpText)
	}
	if !m.Activate() {
		t.Errorf("Activate(B) did not close the menu")
	}
	if h.exits != 1 {
		t.Errorf("OnExit called %d times, want 1", h.exits)
	}
	m.Exit()
	if h.exits != 1 {
		t.Errorf("Exit on a closed menu called OnExit again")
	}
}

func TestEmptyMenu(t *testing.T) {
	m := New(nil, &recordingHandler{})
	m.MoveUp()
	m.MoveDown()
	if m.Current() != nil || m.Activate() {
		t.Errorf("empty menu has a current item or activated")
	}
}

func TestHelp(t *testing.T) {
	items := []MenuItem{
		&Item{Label: "A", Help: "help a"},
		&Item{Label: "B"},
	}
	m := New(items, &recordingHandler{closeOn: -1})
	if got := m.Help(); got != "help a" {
		t.Errorf("Help() = %q, want %q", got, "help a")
	}

	m.Activate()
	if got := m.Help(); got != "activated" {
		t.Errorf("Help() after activation = %q, want %q", got, "activated")
	}

	m.MoveDown()
	if got := m.Help(); got != "" {
		t.Errorf("Help() on item without help = %q, want empty", got)
	}
}
