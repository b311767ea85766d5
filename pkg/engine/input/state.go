package input

// Default axis tuning, in units per second.
const (
	DefaultAcceleration float32 = 4.0
	DefaultGravity      float32 = 3.0
)

// AxisState is the continuous state of one logical axis.
type AxisState struct {
	// Where the axis currently is, in [-1, 1].
	Position float32
	// Where the axis is moving towards. -1, 0 or +1 for keys.
	Direction float32
	// Speed at which Position moves toward Direction while driven.
	Acceleration float32
	// Speed at which Position falls back to 0 once released.
	Gravity float32
}

func newAxisState() *AxisState {
	return &AxisState{
		Acceleration: DefaultAcceleration,
		Gravity:      DefaultGravity,
	}
}

// ButtonState is the discrete state of one logical button.
type ButtonState struct {
	Pressed          bool
	PressedLastFrame bool
}

// State integrates logical input over time: axes accelerate toward the
// direction their keys assert and fall back to rest when released, buttons
// remember the previous tick so presses and releases can be edge detected.
//
// State is not safe for concurrent use; it belongs to the game loop.
type State[A comparable, B comparable] struct {
	axes    map[A]*AxisState
	buttons map[B]*ButtonState
}

// NewState returns a State with no tracked axes or buttons.
func NewState[A comparable, B comparable]() *State[A, B] {
	return &State[A, B]{
		axes:    make(map[A]*AxisState),
		buttons: make(map[B]*ButtonState),
	}
}

func (s *State[A, B]) axis(a A) *AxisState {
	st, ok := s.axes[a]
	if !ok {
		st = newAxisState()
		s.axes[a] = st
	}
	return st
}

func (s *State[A, B]) button(b B) *ButtonState {
	st, ok := s.buttons[b]
	if !ok {
		st = &ButtonState{}
		s.buttons[b] = st
	}
	return st
}

// Apply feeds one resolved effect into the state. started is true when the
// physical input went down and false when it was released.
//
// Releasing an axis key only stops the axis if the axis is still heading in
// that key's direction, so letting go of Left while Right is held keeps the
// axis moving right.
func (s *State[A, B]) Apply(ev Effect[A, B], started bool) {
	switch ev.Kind() {
	case EffectAxis:
		a, positive, _ := ev.Axis()
		st := s.axis(a)
		dir := float32(-1)
		if positive {
			dir = 1
		}
		if started {
			st.Direction = dir
		} else if st.Direction == dir {
			st.Direction = 0
		}
	case EffectButton:
		b, _ := ev.Button()
		s.button(b).Pressed = started
	}
}

// Tick advances every axis by dt seconds and then rolls the button states
// over to the next frame. Call it once per update, after the scenes have
// read the state for that tick.
func (s *State[A, B]) Tick(dt float32) {
	for _, st := range s.axes {
		st.integrate(dt)
	}
	for _, st := range s.buttons {
		st.PressedLastFrame = st.Pressed
	}
}

func (st *AxisState) integrate(dt float32) {
	if st.Direction != 0 {
		st.Position = approach(st.Position, clamp(st.Direction), st.Acceleration*dt)
	} else {
		st.Position = approach(st.Position, 0, st.Gravity*dt)
	}
}

// approach moves from toward target by at most step without overshooting.
func approach(from, target, step float32) float32 {
	if step <= 0 {
		return from
	}
	if from < target {
		from += step
		if from > target {
			from = target
		}
	} else if from > target {
		from -= step
		if from < target {
			from = target
		}
	}
	return from
}

func clamp(v float32) float32 {
	switch {
	case v > 1:
		return 1
	case v < -1:
		return -1
	}
	return v
}

// SetAxisTuning overrides the acceleration and gravity of one axis.
func (s *State[A, B]) SetAxisTuning(a A, acceleration, gravity float32) {
	st := s.axis(a)
	st.Acceleration = acceleration
	st.Gravity = gravity
}

// Axis returns the current position of an axis in [-1, 1].
func (s *State[A, B]) Axis(a A) float32 {
	return s.axis(a).Position
}

// AxisState returns a copy of an axis's state.
func (s *State[A, B]) AxisState(a A) AxisState {
	return *s.axis(a)
}

// ButtonState returns a copy of a button's state.
func (s *State[A, B]) ButtonState(b B) ButtonState {
	return *s.button(b)
}

// Pressed reports whether a button is currently held.
func (s *State[A, B]) Pressed(b B) bool {
	return s.button(b).Pressed
}

// JustPressed reports whether a button went down since the last Tick.
func (s *State[A, B]) JustPressed(b B) bool {
	st := s.button(b)
	return st.Pressed && !st.PressedLastFrame
}

// JustReleased reports whether a button went up since the last Tick.
func (s *State[A, B]) JustReleased(b B) bool {
	st := s.button(b)
	return !st.Pressed && st.PressedLastFrame
}

// Reset forgets every tracked axis and button.
func (s *State[A, B]) Reset() {
	s.axes = make(map[A]*AxisState)
	s.buttons = make(map[B]*ButtonState)
}
