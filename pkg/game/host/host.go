// Package host runs the scene stack inside an Ebiten window. Each tick it
// turns the window's raw input into events, feeds them through the binding
// into the input state and the active scene, then updates the stack.
package host

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/kataras/golog"

	"sudokubattle/pkg/engine/input"
	"sudokubattle/pkg/game/config"
	"sudokubattle/pkg/game/controls"
	"sudokubattle/pkg/game/scenes"
	"sudokubattle/pkg/game/views"
	"sudokubattle/pkg/game/world"
)

// mouseButtons are the buttons polled every tick.
var mouseButtons = []ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonRight,
	ebiten.MouseButtonMiddle,
}

// Game implements ebiten.Game around a scene stack.
type Game struct {
	stack   *scenes.Stack
	binding *controls.Binding
	world   *world.World

	width, height int

	keys   []ebiten.Key
	events []input.Event

	cursorX, cursorY int
	cursorKnown      bool

	// drawErr is returned from the Update after the Draw that failed.
	drawErr error

	windowOpenedLogged bool
	log                *golog.Logger
}

// New wraps stack. The logical screen size comes from the world's config.
func New(stack *scenes.Stack, binding *controls.Binding) *Game {
	g := &Game{
		stack:   stack,
		binding: binding,
		world:   stack.World,
		width:   800,
		height:  600,
		log:     golog.Child("[host]"),
	}
	if cfg := g.world.Config; cfg != nil && cfg.Width > 0 && cfg.Height > 0 {
		g.width, g.height = cfg.Width, cfg.Height
	}
	return g
}

// Dispatch resolves a raw event through the binding, applies it to the
// input state and hands it to the active scene. Unbound events are dropped;
// the return value reports whether the event was bound.
func (g *Game) Dispatch(ev input.Event) bool {
	effect, ok := g.binding.Resolve(ev)
	if !ok {
		return false
	}
	started := ev.Down || ev.Motion
	g.world.Input.Apply(effect, started)
	g.stack.Input(effect, started)
	return true
}

// Step runs the rest of a tick once input has been dispatched: update the
// active scene, integrate the input state, pick up changed resources and
// decide whether the game is over.
func (g *Game) Step() error {
	g.stack.Update()
	g.world.Input.Tick(g.dt())
	if g.world.Assets != nil {
		if n := g.world.Assets.Sync(); n > 0 {
			g.log.Infof("reloaded %d changed resources", n)
		}
	}

	switch {
	case g.world.QuitRequested:
		g.log.Info("quit requested")
		return ebiten.Termination
	case g.stack.Empty():
		g.log.Info("no scenes left")
		return ebiten.Termination
	}
	return nil
}

func (g *Game) dt() float32 {
	tps := ebiten.DefaultTPS
	if cfg := config.Current(); cfg != nil && cfg.TPS > 0 {
		tps = cfg.TPS
	}
	return 1 / float32(tps)
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if g.drawErr != nil {
		return g.drawErr
	}
	if !g.windowOpenedLogged {
		g.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		g.log.Infof("window opened (%dx%d)", w, h)
	}

	for _, ev := range g.poll() {
		g.Dispatch(ev)
	}
	return g.Step()
}

// poll collects the input that changed since the last tick.
func (g *Game) poll() []input.Event {
	g.events = g.events[:0]

	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		g.events = append(g.events, input.KeyEvent(k, true))
	}
	g.keys = inpututil.AppendJustReleasedKeys(g.keys[:0])
	for _, k := range g.keys {
		g.events = append(g.events, input.KeyEvent(k, false))
	}

	x, y := ebiten.CursorPosition()
	if g.cursorKnown && (x != g.cursorX || y != g.cursorY) {
		g.events = append(g.events, input.MouseMotionEvent(x, y, x-g.cursorX, y-g.cursorY))
	}
	g.cursorX, g.cursorY, g.cursorKnown = x, y, true

	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b) {
			g.events = append(g.events, input.MouseButtonEvent(b, x, y, true))
		}
		if inpututil.IsMouseButtonJustReleased(b) {
			g.events = append(g.events, input.MouseButtonEvent(b, x, y, false))
		}
	}
	return g.events
}

// Draw implements ebiten.Game. A failing scene stops the game on the next
// Update since Draw cannot return an error itself.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(views.ColorBackground)
	if err := g.stack.Draw(screen); err != nil && g.drawErr == nil {
		g.log.Errorf("draw failed: %v", err)
		g.drawErr = err
	}
}

// Layout implements ebiten.Game with a fixed logical screen that Ebiten
// scales to the window.
func (g *Game) Layout(int, int) (int, int) {
	return g.width, g.height
}

// Run opens the window and blocks until the game ends.
func Run(g *Game) error {
	cfg := g.world.Config
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg != nil {
		ebiten.SetWindowTitle(cfg.Title)
		if cfg.TPS > 0 {
			ebiten.SetTPS(cfg.TPS)
		}
	}

	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
