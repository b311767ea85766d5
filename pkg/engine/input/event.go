package input

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceMouse
)

// Event is a raw signal emitted by the host windowing layer: a key going
// down or up, a mouse button going down or up, or the pointer moving.
// It is the first layer; a Binding turns it into a logical Effect.
type Event struct {
	Device Device

	Key    ebiten.Key
	Button ebiten.MouseButton
	Motion bool

	// Down is true for key and button presses, false for releases.
	Down bool

	X, Y   int
	DX, DY int
}

// KeyEvent builds a keyboard event.
func KeyEvent(key ebiten.Key, down bool) Event {
	return Event{
		Device: DeviceKeyboard,
		Key:    key,
		Down:   down,
	}
}

// MouseButtonEvent builds a mouse button event at the given pointer position.
func MouseButtonEvent(button ebiten.MouseButton, x, y int, down bool) Event {
	return Event{
		Device: DeviceMouse,
		Button: button,
		Down:   down,
		X:      x,
		Y:      y,
	}
}

// MouseMotionEvent builds a pointer motion event with absolute and relative
// coordinates.
func MouseMotionEvent(x, y, dx, dy int) Event {
	return Event{
		Device: DeviceMouse,
		Motion: true,
		X:      x,
		Y:      y,
		DX:     dx,
		DY:     dy,
	}
}
