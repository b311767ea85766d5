package scene

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kataras/golog"
	"github.com/zyedidia/generic/stack"
)

// Stack owns an ordered stack of scenes and the world they share.
// The top scene is the active one; scenes beneath it are suspended and
// receive nothing until everything above them has been popped.
//
// An empty stack means the game is over; the host decides what to do with
// that.
type Stack[W any, E any] struct {
	World W

	scenes *stack.Stack[Scene[W, E]]
	log    *golog.Logger
}

// NewStack creates an empty stack around the given world.
func NewStack[W any, E any](world W) *Stack[W, E] {
	return &Stack[W, E]{
		World:  world,
		scenes: stack.New[Scene[W, E]](),
		log:    golog.Child("[scene]"),
	}
}

// Push places a scene on top of the stack, suspending the previous top.
func (s *Stack[W, E]) Push(sc Scene[W, E]) {
	if sc == nil {
		s.log.Warnf("ignoring push of nil scene")
		return
	}
	s.scenes.Push(sc)
	s.log.Debugf("push %q (depth %d)", sc.Name(), s.scenes.Size())
}

// Pop removes and returns the top scene, or nil if the stack is empty.
func (s *Stack[W, E]) Pop() Scene[W, E] {
	if s.scenes.Size() == 0 {
		return nil
	}
	sc := s.scenes.Pop()
	s.log.Debugf("pop %q (depth %d)", sc.Name(), s.scenes.Size())
	return sc
}

// Current returns the active scene.
func (s *Stack[W, E]) Current() (Scene[W, E], bool) {
	if s.scenes.Size() == 0 {
		return nil, false
	}
	return s.scenes.Peek(), true
}

// Len returns the number of scenes on the stack.
func (s *Stack[W, E]) Len() int {
	return s.scenes.Size()
}

// Empty reports whether the last scene has been popped.
func (s *Stack[W, E]) Empty() bool {
	return s.scenes.Size() == 0
}

// Update ticks the active scene and applies the switch it returns.
func (s *Stack[W, E]) Update() {
	cur, ok := s.Current()
	if !ok {
		return
	}
	s.Switch(cur.Update(s.World))
}

// Switch applies a scene switch to the stack. Replace pops and pushes
// without any update in between.
func (s *Stack[W, E]) Switch(sw Switch[W, E]) {
	switch sw.Kind {
	case SwitchNone:
	case SwitchPush:
		s.Push(sw.Next)
	case SwitchPop:
		s.Pop()
	case SwitchReplace:
		if sw.Next == nil {
			s.log.Warnf("ignoring replace with nil scene")
			return
		}
		s.Pop()
		s.Push(sw.Next)
	default:
		s.log.Warnf("unknown scene switch %d", sw.Kind)
	}
}

// Draw renders the active scene.
func (s *Stack[W, E]) Draw(screen *ebiten.Image) error {
	cur, ok := s.Current()
	if !ok {
		return nil
	}
	if err := cur.Draw(s.World, screen); err != nil {
		return fmt.Errorf("draw %s: %w", cur.Name(), err)
	}
	return nil
}

// Input forwards an input event to the active scene.
func (s *Stack[W, E]) Input(ev E, started bool) {
	cur, ok := s.Current()
	if !ok {
		return
	}
	cur.Input(s.World, ev, started)
}
