package input

import (
	"fmt"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// physicalKind discriminates the physical inputs a Binding can be keyed by.
type physicalKind uint8

const (
	physicalKey physicalKind = iota
	physicalMouseButton
	physicalMouseMotion
)

// physical identifies one physical input. It is only used as a map key.
type physical struct {
	kind   physicalKind
	key    ebiten.Key
	button ebiten.MouseButton
}

func keyInput(key ebiten.Key) physical {
	return physical{kind: physicalKey, key: key}
}

func mouseInput(button ebiten.MouseButton) physical {
	return physical{kind: physicalMouseButton, button: button}
}

var motionInput = physical{kind: physicalMouseMotion}

// Binding maps physical inputs (keys, mouse buttons, mouse motion) to the
// application's logical axes and buttons.
//
// A Binding is built once at startup with the chained Bind* methods and is
// read-only afterwards. Binding the same physical input twice keeps the last
// binding.
type Binding[A comparable, B comparable] struct {
	bindings map[physical]Effect[A, B]
}

// NewBinding returns an empty binding table.
func NewBinding[A comparable, B comparable]() *Binding[A, B] {
	return &Binding[A, B]{
		bindings: make(map[physical]Effect[A, B]),
	}
}

// BindKeyToAxis connects a key to one direction of a logical axis.
func (b *Binding[A, B]) BindKeyToAxis(key ebiten.Key, axis A, positive bool) *Binding[A, B] {
	b.bindings[keyInput(key)] = AxisEffect[A, B](axis, positive)
	return b
}

// BindKeyToButton connects a key to a logical button.
func (b *Binding[A, B]) BindKeyToButton(key ebiten.Key, button B) *Binding[A, B] {
	b.bindings[keyInput(key)] = ButtonEffect[A, B](button)
	return b
}

// BindMouseToButton connects a mouse button to a logical button.
func (b *Binding[A, B]) BindMouseToButton(mouse ebiten.MouseButton, button B) *Binding[A, B] {
	b.bindings[mouseInput(mouse)] = ButtonEffect[A, B](button)
	return b
}

// BindMouseMotion enables reporting of raw mouse motion.
func (b *Binding[A, B]) BindMouseMotion() *Binding[A, B] {
	b.bindings[motionInput] = MotionEffect[A, B](0, 0, 0, 0)
	return b
}

// ResolveKey turns a key into its logical effect.
func (b *Binding[A, B]) ResolveKey(key ebiten.Key) (Effect[A, B], bool) {
	ev, ok := b.bindings[keyInput(key)]
	return ev, ok
}

// ResolveMouse turns a mouse button press at (x, y) into a button effect
// carrying that position. Coordinates are passed through untouched.
func (b *Binding[A, B]) ResolveMouse(mouse ebiten.MouseButton, x, y int) (Effect[A, B], bool) {
	ev, ok := b.bindings[mouseInput(mouse)]
	if !ok {
		return Effect[A, B]{}, false
	}
	button, ok := ev.Button()
	if !ok {
		return Effect[A, B]{}, false
	}
	return PointerButtonEffect[A, B](button, x, y), true
}

// ResolveMouseMotion reports the motion if mouse motion has been bound.
func (b *Binding[A, B]) ResolveMouseMotion(x, y, dx, dy int) (Effect[A, B], bool) {
	if _, ok := b.bindings[motionInput]; !ok {
		return Effect[A, B]{}, false
	}
	return MotionEffect[A, B](x, y, dx, dy), true
}

// Resolve applies the binding to a raw host event.
func (b *Binding[A, B]) Resolve(ev Event) (Effect[A, B], bool) {
	switch {
	case ev.Motion:
		return b.ResolveMouseMotion(ev.X, ev.Y, ev.DX, ev.DY)
	case ev.Device == DeviceMouse:
		return b.ResolveMouse(ev.Button, ev.X, ev.Y)
	case ev.Device == DeviceKeyboard:
		return b.ResolveKey(ev.Key)
	}
	return Effect[A, B]{}, false
}

// Len returns the number of bound physical inputs.
func (b *Binding[A, B]) Len() int {
	return len(b.bindings)
}

// Entry is one row of a binding table listing.
type Entry[A comparable, B comparable] struct {
	Source string
	Effect Effect[A, B]

	kind physicalKind
	code int
}

// Entries lists every binding, keys first then mouse buttons then motion,
// each group ordered by code so listings don't reshuffle between runs.
func (b *Binding[A, B]) Entries() []Entry[A, B] {
	entries := make([]Entry[A, B], 0, len(b.bindings))
	for in, ev := range b.bindings {
		e := Entry[A, B]{Effect: ev, kind: in.kind}
		switch in.kind {
		case physicalKey:
			e.Source = in.key.String()
			e.code = int(in.key)
		case physicalMouseButton:
			e.Source = MouseButtonName(in.button)
			e.code = int(in.button)
		case physicalMouseMotion:
			e.Source = "MouseMotion"
		}
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].kind != entries[j].kind {
			return entries[i].kind < entries[j].kind
		}
		return entries[i].code < entries[j].code
	})
	return entries
}

// MouseButtonName returns a human-friendly name for a mouse button.
func MouseButtonName(button ebiten.MouseButton) string {
	switch button {
	case ebiten.MouseButtonLeft:
		return "MouseLeft"
	case ebiten.MouseButtonRight:
		return "MouseRight"
	case ebiten.MouseButtonMiddle:
		return "MouseMiddle"
	default:
		return fmt.Sprintf("Mouse%d", int(button))
	}
}
