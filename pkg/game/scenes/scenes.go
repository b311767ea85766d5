// Package scenes contains the game's scenes: the battle board, the pause
// menu and the result screen.
package scenes

import (
	"time"

	"sudokubattle/pkg/engine/scene"
	"sudokubattle/pkg/game/config"
	"sudokubattle/pkg/game/controls"
	"sudokubattle/pkg/game/world"
)

// Scene types instantiated for this game.
type (
	Scene  = scene.Scene[*world.World, controls.Event]
	Switch = scene.Switch[*world.World, controls.Event]
	Stack  = scene.Stack[*world.World, controls.Event]
)

// NewStack creates an empty scene stack around w.
func NewStack(w *world.World) *Stack {
	return scene.NewStack[*world.World, controls.Event](w)
}

func none() Switch {
	return scene.None[*world.World, controls.Event]()
}

func push(next Scene) Switch {
	return scene.Push[*world.World, controls.Event](next)
}

func pop() Switch {
	return scene.Pop[*world.World, controls.Event]()
}

func replace(next Scene) Switch {
	return scene.Replace[*world.World, controls.Event](next)
}

// tick returns the length of one update at the configured rate.
func tick() time.Duration {
	tps := 60
	if cfg := config.Current(); cfg != nil && cfg.TPS > 0 {
		tps = cfg.TPS
	}
	return time.Second / time.Duration(tps)
}

// fontPath is the UI font; the Go font stands in when it is missing.
const fontPath = "/fonts/Multicolore.ttf"
