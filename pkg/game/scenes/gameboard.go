package scenes

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kataras/golog"
	"github.com/leonelquinteros/gotext"
	"github.com/zyedidia/generic/mapset"

	"sudokubattle/pkg/engine/input"
	"sudokubattle/pkg/engine/scene"
	"sudokubattle/pkg/game/controls"
	"sudokubattle/pkg/game/devtools"
	"sudokubattle/pkg/game/models"
	"sudokubattle/pkg/game/puzzle"
	"sudokubattle/pkg/game/views"
	"sudokubattle/pkg/game/world"
)

const (
	// MistakeDamage is the health a wrong digit costs the player.
	MistakeDamage = 10
	// repeatInterval is the pause between selection moves while an axis is
	// held fully deflected.
	repeatInterval = 100 * time.Millisecond
	// abilityActive is how long a used ability shows as active.
	abilityActive = time.Second
)

// GameboardScene is the battle: the player fills the board, every correct
// digit wounds the opponent and every wrong one wounds the player.
type GameboardScene struct {
	board     *models.Gameboard
	character *models.Character
	opponent  *models.Character

	background        *views.BackgroundView
	boardView         *views.GameboardView
	abilitiesView     *views.AbilitiesView
	timerView         *views.TimerView
	characterPortrait *views.PortraitView
	opponentPortrait  *views.PortraitView
	logView           *views.LogView
	fonts             *views.Fonts

	// hitDamage is chosen so that filling every open cell finishes the
	// opponent.
	hitDamage int
	// scored holds cells that have already dealt damage.
	scored mapset.Set[models.Point]

	elapsed      time.Duration
	repeatWait   map[controls.Axis]time.Duration
	abilityTimer time.Duration

	// dumpDir receives board dumps.
	dumpDir string

	pending Switch
	log     *golog.Logger
}

// NewGameboardScene sets up a battle over the given puzzle.
func NewGameboardScene(w *world.World, p puzzle.Puzzle) (*GameboardScene, error) {
	fonts, err := views.LoadFonts(w.Assets, fontPath)
	if err != nil {
		return nil, fmt.Errorf("load fonts: %w", err)
	}

	board := models.NewGameboard(p)
	character := models.NewCharacter("Main", models.KindCharacter, "placeholder.png").
		AddAbility(models.NewAbility("Reveal Numbers", "placeholder", 3))
	opponent := models.NewCharacter("Opponent", models.KindOpponent, "placeholder.png")

	open := len(board.EmptyCells())
	hit := opponent.MaxHealth
	if open > 0 {
		hit = (opponent.MaxHealth + open - 1) / open
	}

	s := &GameboardScene{
		board:     board,
		character: character,
		opponent:  opponent,

		background:        views.NewBackgroundView(w.Assets, "area-1.png"),
		boardView:         views.NewGameboardView(views.DefaultGameboardSettings(), w.Assets, "area-1-board.png", fonts),
		abilitiesView:     views.NewAbilitiesView(views.DefaultAbilitiesSettings(), w.Assets, fonts),
		timerView:         views.NewTimerView(w.Assets, fonts),
		characterPortrait: views.NewPortraitView(character, 500, 75, w.Assets, fonts),
		opponentPortrait:  views.NewPortraitView(opponent, 640, 75, w.Assets, fonts),
		logView:           views.NewLogView(fonts),
		fonts:             fonts,

		hitDamage:  hit,
		scored:     mapset.New[models.Point](),
		repeatWait: make(map[controls.Axis]time.Duration),
		dumpDir:    ".",
		pending:    none(),
		log:        golog.Child("[battle]"),
	}
	s.log.Debugf("battle started: %d open cells, %d damage per hit", open, hit)
	return s, nil
}

func (s *GameboardScene) Name() string {
	return "Game Board"
}

// Board exposes the board being played.
func (s *GameboardScene) Board() *models.Gameboard {
	return s.board
}

func (s *GameboardScene) Update(w *world.World) Switch {
	dt := tick()
	s.elapsed += dt

	s.repeatAxis(w, controls.Horz, dt)
	s.repeatAxis(w, controls.Vert, dt)

	if s.abilityTimer > 0 {
		s.abilityTimer -= dt
		if s.abilityTimer <= 0 {
			for _, a := range s.character.Abilities {
				a.Refresh()
			}
		}
	}

	secs := float32(dt.Seconds())
	s.boardView.Update(secs, s.board)
	s.characterPortrait.Update(secs, s.character)
	s.opponentPortrait.Update(secs, s.opponent)

	if sw := s.pending; sw.Kind != scene.SwitchNone {
		s.pending = none()
		return sw
	}

	switch {
	case s.character.Defeated():
		return replace(NewResultScene(false, s.board.Moves, s.elapsed, s.fonts))
	case s.board.Solved || s.opponent.Defeated():
		return replace(NewResultScene(true, s.board.Moves, s.elapsed, s.fonts))
	}
	return none()
}

// repeatAxis keeps the selection moving while an axis is held all the way
// over. The axis reaches full deflection a short while after the key goes
// down, which doubles as the initial repeat delay.
func (s *GameboardScene) repeatAxis(w *world.World, axis controls.Axis, dt time.Duration) {
	st := w.Input.AxisState(axis)
	if st.Direction == 0 || st.Position*st.Direction < 1 {
		s.repeatWait[axis] = 0
		return
	}
	s.repeatWait[axis] -= dt
	if s.repeatWait[axis] > 0 {
		return
	}
	s.repeatWait[axis] = repeatInterval
	s.moveSelection(axis, st.Direction > 0)
}

func (s *GameboardScene) moveSelection(axis controls.Axis, positive bool) {
	step := -1
	if positive {
		step = 1
	}
	switch axis {
	case controls.Horz:
		s.board.MoveSelection(step, 0)
	case controls.Vert:
		// Up is positive; rows count downwards.
		s.board.MoveSelection(0, -step)
	}
}

func (s *GameboardScene) Input(w *world.World, ev controls.Event, started bool) {
	switch ev.Kind() {
	case input.EffectAxis:
		axis, positive, _ := ev.Axis()
		if started {
			s.moveSelection(axis, positive)
		}
	case input.EffectMouseMotion:
		x, y, _, _, _ := ev.Motion()
		p, ok := s.boardView.CellAt(x, y)
		s.boardView.SetHover(p, ok)
	case input.EffectButton:
		if started {
			s.button(w, ev)
		}
	}
}

func (s *GameboardScene) button(w *world.World, ev controls.Event) {
	btn, _ := ev.Button()
	_, _, fromPointer := ev.Pointer()

	if d, ok := btn.Digit(); ok {
		if p, selected := s.board.Selected(); selected && !fromPointer {
			s.place(w, p, d)
		}
		return
	}

	switch btn {
	case controls.Delete:
		if p, ok := s.board.Selected(); ok {
			s.board.Clear(p)
		}
	case controls.Select:
		if x, y, ok := ev.Pointer(); ok {
			s.click(w, x, y)
		}
	case controls.Ability:
		s.useAbility(w, 0)
	case controls.Exit:
		s.pending = push(NewPauseScene(w, s.fonts))
	case controls.Quit:
		w.QuitRequested = true
	case controls.Dump:
		s.dump(w)
	}
}

func (s *GameboardScene) dump(w *world.World) {
	snap := devtools.Snapshot{
		Board:     s.board,
		Character: s.character,
		Opponent:  s.opponent,
		Elapsed:   s.elapsed,
	}
	if w.Config != nil {
		snap.Difficulty = w.Config.Difficulty
	}
	path, err := devtools.DumpBoardToFile(s.dumpDir, snap)
	if err != nil {
		s.log.Errorf("board dump failed: %v", err)
		return
	}
	s.log.Infof("board dumped to %s", path)
}

func (s *GameboardScene) click(w *world.World, x, y int) {
	if p, ok := s.boardView.CellAt(x, y); ok {
		s.board.Select(p)
		return
	}
	if i, ok := s.abilitiesView.IconAt(x, y, len(s.character.Abilities)); ok {
		s.useAbility(w, i)
		return
	}
	s.board.Deselect()
}

// place writes a digit and settles the consequences.
func (s *GameboardScene) place(w *world.World, p models.Point, d uint8) {
	switch s.board.Set(p, d) {
	case models.OutcomeCorrect:
		s.hit(w, p)
	case models.OutcomeIncorrect:
		s.character.Damage(MistakeDamage)
		w.Audio.Buzz()
		w.AddMessage(fmt.Sprintf(gotext.Get("MSG_MISS"), d, MistakeDamage))
	case models.OutcomeRefused:
		w.Audio.Buzz()
	}
}

// hit damages the opponent the first time p is filled correctly.
func (s *GameboardScene) hit(w *world.World, p models.Point) {
	w.Audio.Chime()
	if s.scored.Has(p) {
		return
	}
	s.scored.Put(p)
	s.opponent.Damage(s.hitDamage)
	w.AddMessage(fmt.Sprintf(gotext.Get("MSG_HIT"), s.opponent.Name, s.hitDamage))
}

func (s *GameboardScene) useAbility(w *world.World, i int) {
	if i < 0 || i >= len(s.character.Abilities) {
		return
	}
	a := s.character.Abilities[i]
	empty := s.board.EmptyCells()
	if len(empty) == 0 || !a.Activate() {
		w.Audio.Buzz()
		return
	}
	p := empty[0]
	if w.Rand != nil {
		p = empty[w.Rand.Intn(len(empty))]
	}
	s.board.Reveal(p)
	s.abilityTimer = abilityActive
	w.AddMessage(fmt.Sprintf(gotext.Get("MSG_REVEAL"), s.board.Solution(p), p.X+1, p.Y+1))
	s.hit(w, p)
}

func (s *GameboardScene) Draw(w *world.World, screen *ebiten.Image) error {
	s.background.Draw(screen)
	s.boardView.Draw(screen, s.board)
	s.abilitiesView.Draw(screen, s.character.Abilities)
	s.timerView.Draw(screen, s.elapsed)
	s.characterPortrait.Draw(screen, s.character)
	s.opponentPortrait.Draw(screen, s.opponent)
	s.logView.Draw(screen, w.Messages)
	return nil
}
