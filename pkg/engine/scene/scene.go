// Package scene provides a stack of game scenes driven by the game loop.
//
// Only the scene on top of the stack is active: it alone receives updates,
// input and draw calls. A scene changes the stack by returning a Switch from
// Update.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one pushable game state. W is the shared world every scene
// receives, E is the input event type.
type Scene[W any, E any] interface {
	// Update advances the scene one tick and says how the stack should change.
	Update(world W) Switch[W, E]
	// Draw renders the scene. An error ends the game loop.
	Draw(world W, screen *ebiten.Image) error
	// Input delivers an input event; started is false for releases.
	Input(world W, ev E, started bool)
	// Name identifies the scene in logs.
	Name() string
}

// SwitchKind is the stack operation requested by a scene.
type SwitchKind uint8

const (
	SwitchNone SwitchKind = iota
	SwitchPush
	SwitchPop
	SwitchReplace
)

func (k SwitchKind) String() string {
	switch k {
	case SwitchPush:
		return "Push"
	case SwitchPop:
		return "Pop"
	case SwitchReplace:
		return "Replace"
	default:
		return "None"
	}
}

// Switch is the directive returned from Scene.Update.
type Switch[W any, E any] struct {
	Kind SwitchKind
	// Next is the scene to push for SwitchPush and SwitchReplace.
	Next Scene[W, E]
}

// None leaves the stack unchanged.
func None[W any, E any]() Switch[W, E] {
	return Switch[W, E]{Kind: SwitchNone}
}

// Push suspends the current scene under next.
func Push[W any, E any](next Scene[W, E]) Switch[W, E] {
	return Switch[W, E]{Kind: SwitchPush, Next: next}
}

// Pop removes the current scene and resumes the one beneath it.
func Pop[W any, E any]() Switch[W, E] {
	return Switch[W, E]{Kind: SwitchPop}
}

// Replace swaps the current scene for next.
func Replace[W any, E any](next Scene[W, E]) Switch[W, E] {
	return Switch[W, E]{Kind: SwitchReplace, Next: next}
}
