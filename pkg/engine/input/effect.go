package input

import "fmt"

// EffectKind discriminates the logical effect a physical input resolves to.
type EffectKind uint8

const (
	EffectNone EffectKind = iota
	EffectAxis
	EffectButton
	EffectMouseMotion
)

// Effect is the logical event produced by resolving a physical input through
// a Binding. A and B are the application's axis and button identities.
//
// Effects are plain values. Fields are unexported so an Effect cannot change
// after it has been built; use the constructors and accessors.
type Effect[A comparable, B comparable] struct {
	kind EffectKind

	axis     A
	positive bool

	button     B
	hasPointer bool

	// Pointer position for buttons and motion, plus relative motion.
	x, y   int
	dx, dy int
}

// AxisEffect builds an axis deflection in the given direction.
func AxisEffect[A comparable, B comparable](axis A, positive bool) Effect[A, B] {
	return Effect[A, B]{kind: EffectAxis, axis: axis, positive: positive}
}

// ButtonEffect builds a button effect that carries no pointer position.
func ButtonEffect[A comparable, B comparable](button B) Effect[A, B] {
	return Effect[A, B]{kind: EffectButton, button: button}
}

// PointerButtonEffect builds a button effect carrying the pointer position of
// the mouse press that triggered it.
func PointerButtonEffect[A comparable, B comparable](button B, x, y int) Effect[A, B] {
	return Effect[A, B]{kind: EffectButton, button: button, hasPointer: true, x: x, y: y}
}

// MotionEffect builds a raw mouse motion effect.
func MotionEffect[A comparable, B comparable](x, y, dx, dy int) Effect[A, B] {
	return Effect[A, B]{kind: EffectMouseMotion, x: x, y: y, dx: dx, dy: dy}
}

// Kind returns which variant this effect is.
func (e Effect[A, B]) Kind() EffectKind {
	return e.kind
}

// Axis returns the axis and direction. ok is false for non-axis effects.
func (e Effect[A, B]) Axis() (axis A, positive bool, ok bool) {
	if e.kind != EffectAxis {
		return axis, false, false
	}
	return e.axis, e.positive, true
}

// Button returns the button. ok is false for non-button effects.
func (e Effect[A, B]) Button() (button B, ok bool) {
	if e.kind != EffectButton {
		return button, false
	}
	return e.button, true
}

// Pointer returns the pointer position attached to a button effect.
// Key-triggered buttons have no position.
func (e Effect[A, B]) Pointer() (x, y int, ok bool) {
	if e.kind != EffectButton || !e.hasPointer {
		return 0, 0, false
	}
	return e.x, e.y, true
}

// Motion returns the absolute and relative pointer movement.
func (e Effect[A, B]) Motion() (x, y, dx, dy int, ok bool) {
	if e.kind != EffectMouseMotion {
		return 0, 0, 0, 0, false
	}
	return e.x, e.y, e.dx, e.dy, true
}

func (e Effect[A, B]) String() string {
	switch e.kind {
	case EffectAxis:
		return fmt.Sprintf("Axis(%v, %t)", e.axis, e.positive)
	case EffectButton:
		if e.hasPointer {
			return fmt.Sprintf("Button(%v, (%d, %d))", e.button, e.x, e.y)
		}
		return fmt.Sprintf("Button(%v)", e.button)
	case EffectMouseMotion:
		return fmt.Sprintf("MouseMotion(%d, %d, %d, %d)", e.x, e.y, e.dx, e.dy)
	default:
		return "None"
	}
}
