// Package controls defines the logical axes and buttons of the game and the
// default physical bindings for them.
package controls

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"sudokubattle/pkg/engine/input"
)

// Axis is a logical analogue axis.
type Axis uint8

const (
	Vert Axis = iota
	Horz
)

func (a Axis) String() string {
	switch a {
	case Vert:
		return "Vert"
	case Horz:
		return "Horz"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Button is a logical button.
type Button uint8

const (
	Num1 Button = iota
	Num2
	Num3
	Num4
	Num5
	Num6
	Num7
	Num8
	Num9
	Select
	Exit
	Delete
	Ability
	Quit
	// Dump writes the board state to a debug file.
	Dump
)

var buttonNames = [...]string{
	Num1:    "Num1",
	Num2:    "Num2",
	Num3:    "Num3",
	Num4:    "Num4",
	Num5:    "Num5",
	Num6:    "Num6",
	Num7:    "Num7",
	Num8:    "Num8",
	Num9:    "Num9",
	Select:  "Select",
	Exit:    "Exit",
	Delete:  "Delete",
	Ability: "Ability",
	Quit:    "Quit",
	Dump:    "Dump",
}

func (b Button) String() string {
	if int(b) < len(buttonNames) {
		return buttonNames[b]
	}
	return fmt.Sprintf("Button(%d)", int(b))
}

// Digit returns the number a Num button enters.
func (b Button) Digit() (uint8, bool) {
	if b > Num9 {
		return 0, false
	}
	return uint8(b-Num1) + 1, true
}

// DigitButton is the inverse of Digit.
func DigitButton(d uint8) (Button, bool) {
	if d < 1 || d > 9 {
		return 0, false
	}
	return Num1 + Button(d-1), true
}

// Engine types instantiated for this game.
type (
	Binding = input.Binding[Axis, Button]
	Event   = input.Effect[Axis, Button]
	State   = input.State[Axis, Button]
	Entry   = input.Entry[Axis, Button]
)

// NewState returns an empty input state.
func NewState() *State {
	return input.NewState[Axis, Button]()
}

// DefaultBinding returns the stock keyboard and mouse layout.
func DefaultBinding() *Binding {
	b := input.NewBinding[Axis, Button]().
		BindKeyToAxis(ebiten.KeyArrowUp, Vert, true).
		BindKeyToAxis(ebiten.KeyArrowDown, Vert, false).
		BindKeyToAxis(ebiten.KeyArrowLeft, Horz, false).
		BindKeyToAxis(ebiten.KeyArrowRight, Horz, true).
		BindKeyToAxis(ebiten.KeyW, Vert, true).
		BindKeyToAxis(ebiten.KeyS, Vert, false).
		BindKeyToAxis(ebiten.KeyA, Horz, false).
		BindKeyToAxis(ebiten.KeyD, Horz, true)

	digits := [9]ebiten.Key{
		ebiten.Key1, ebiten.Key2, ebiten.Key3,
		ebiten.Key4, ebiten.Key5, ebiten.Key6,
		ebiten.Key7, ebiten.Key8, ebiten.Key9,
	}
	numpad := [9]ebiten.Key{
		ebiten.KeyNumpad1, ebiten.KeyNumpad2, ebiten.KeyNumpad3,
		ebiten.KeyNumpad4, ebiten.KeyNumpad5, ebiten.KeyNumpad6,
		ebiten.KeyNumpad7, ebiten.KeyNumpad8, ebiten.KeyNumpad9,
	}
	for i := range digits {
		btn := Num1 + Button(i)
		b.BindKeyToButton(digits[i], btn).BindKeyToButton(numpad[i], btn)
	}

	return b.
		BindKeyToButton(ebiten.KeyBackspace, Delete).
		BindKeyToButton(ebiten.KeyDelete, Delete).
		BindKeyToButton(ebiten.Key0, Delete).
		BindKeyToButton(ebiten.KeyNumpad0, Delete).
		BindKeyToButton(ebiten.KeyEscape, Exit).
		BindKeyToButton(ebiten.KeyEnter, Select).
		BindKeyToButton(ebiten.KeyNumpadEnter, Select).
		BindKeyToButton(ebiten.KeySpace, Select).
		BindKeyToButton(ebiten.KeyR, Ability).
		BindKeyToButton(ebiten.KeyQ, Quit).
		BindKeyToButton(ebiten.KeyF8, Dump).
		BindMouseToButton(ebiten.MouseButtonLeft, Select).
		BindMouseMotion()
}

// Describe names the logical side of an event, e.g. "Vert +" or "Select".
func Describe(ev Event) string {
	switch ev.Kind() {
	case input.EffectAxis:
		a, positive, _ := ev.Axis()
		if positive {
			return a.String() + " +"
		}
		return a.String() + " -"
	case input.EffectButton:
		b, _ := ev.Button()
		return b.String()
	case input.EffectMouseMotion:
		return "Pointer"
	}
	return "None"
}
