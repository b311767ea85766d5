package scenes

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"
	"time"

	"sudokubattle/pkg/engine/assets"
	"sudokubattle/pkg/engine/input"
	"sudokubattle/pkg/engine/scene"
	"sudokubattle/pkg/game/config"
	"sudokubattle/pkg/game/controls"
	"sudokubattle/pkg/game/models"
	"sudokubattle/pkg/game/puzzle"
	"sudokubattle/pkg/game/views"
	"sudokubattle/pkg/game/world"
)

// countingPlayer records which sounds were played.
type countingPlayer struct {
	chimes, buzzes int
}

func (p *countingPlayer) Chime() { p.chimes++ }
func (p *countingPlayer) Buzz()  { p.buzzes++ }
func (p *countingPlayer) Close() {}

// testPuzzle has (2, 3) open with solution 5 and (0, 0) given.
func testPuzzle(t *testing.T) puzzle.Puzzle {
	t.Helper()
	solution, err := puzzle.Parse(`
		934678512
		672159348
		158342967
		895761423
		426893751
		713524896
		561937284
		287415639
		349286175`)
	if err != nil {
		t.Fatal(err)
	}
	given := solution
	given[3][2] = 0
	given[4][4] = 0
	return puzzle.Puzzle{Given: given, Solution: solution}
}

func newTestWorld(t *testing.T) (*world.World, *countingPlayer) {
	t.Helper()
	player := &countingPlayer{}
	w := world.New(config.Default(), assets.NewStore(t.TempDir()), player, rand.New(rand.NewSource(1)))
	return w, player
}

func newTestBoard(t *testing.T, w *world.World) *GameboardScene {
	t.Helper()
	s, err := NewGameboardScene(w, testPuzzle(t))
	if err != nil {
		t.Fatalf("NewGameboardScene() = %v", err)
	}
	return s
}

func testFonts(t *testing.T, w *world.World) *views.Fonts {
	t.Helper()
	fonts, err := views.LoadFonts(w.Assets, fontPath)
	if err != nil {
		t.Fatalf("LoadFonts() = %v", err)
	}
	return fonts
}

func key(b controls.Button) controls.Event {
	return input.ButtonEffect[controls.Axis, controls.Button](b)
}

func axis(a controls.Axis, positive bool) controls.Event {
	return input.AxisEffect[controls.Axis, controls.Button](a, positive)
}

func click(x, y int) controls.Event {
	return input.PointerButtonEffect[controls.Axis, controls.Button](controls.Select, x, y)
}

func TestDigitOnMutableCell(t *testing.T) {
	w, player := newTestWorld(t)
	s := newTestBoard(t, w)
	p := models.Point{X: 2, Y: 3}
	s.board.Select(p)

	s.Input(w, key(controls.Num5), true)
	if v, _ := s.board.Get(p); v != 5 {
		t.Errorf("cell %v = %d, want 5", p, v)
	}
	if s.board.Moves != 1 {
		t.Errorf("Moves = %d, want 1", s.board.Moves)
	}
	if s.opponent.Health >= s.opponent.MaxHealth {
		t.Errorf("opponent not damaged by a correct digit")
	}
	if player.chimes != 1 {
		t.Errorf("chimes = %d, want 1", player.chimes)
	}

	// Releases are ignored.
	s.Input(w, key(controls.Num4), false)
	if v, _ := s.board.Get(p); v != 5 || s.board.Moves != 1 {
		t.Errorf("release changed the board: cell = %d, Moves = %d", v, s.board.Moves)
	}
}

func TestDigitOnFixedCell(t *testing.T) {
	w, player := newTestWorld(t)
	s := newTestBoard(t, w)
	p := models.Point{X: 0, Y: 0}
	s.board.Select(p)

	s.Input(w, key(controls.Num5), true)
	if v, _ := s.board.Get(p); v != 9 {
		t.Errorf("fixed cell = %d, want 9", v)
	}
	if s.board.Moves != 0 {
		t.Errorf("Moves = %d, want 0", s.board.Moves)
	}
	if player.buzzes != 1 {
		t.Errorf("buzzes = %d, want 1", player.buzzes)
	}
}

func TestWrongDigitHurtsPlayer(t *testing.T) {
	w, _ := newTestWorld(t)
	s := newTestBoard(t, w)
	s.board.Select(models.Point{X: 2, Y: 3})

	s.Input(w, key(controls.Num1), true)
	if want := s.character.MaxHealth - MistakeDamage; s.character.Health != want {
		t.Errorf("player health = %d, want %d", s.character.Health, want)
	}
	if len(w.Messages) != 1 {
		t.Errorf("Messages = %v, want one entry", w.Messages)
	}
}

func TestDigitWithoutSelection(t *testing.T) {
	w, _ := newTestWorld(t)
	s := newTestBoard(t, w)
	s.Input(w, key(controls.Num5), true)
	if s.board.Moves != 0 {
		t.Errorf("digit with no selection counted a move")
	}
}

func TestAxisMovesSelection(t *testing.T) {
	w, _ := newTestWorld(t)
	s := newTestBoard(t, w)

	s.Input(w, axis(controls.Horz, true), true)
	if p, _ := s.board.Selected(); p != (models.Point{X: 4, Y: 4}) {
		t.Fatalf("first move selected %v, want centre", p)
	}
	s.Input(w, axis(controls.Horz, true), false)
	s.Input(w, axis(controls.Vert, true), true)
	if p, _ := s.board.Selected(); p != (models.Point{X: 4, Y: 3}) {
		t.Errorf("up moved to %v, want (4, 3)", p)
	}
	s.Input(w, axis(controls.Horz, false), true)
	if p, _ := s.board.Selected(); p != (models.Point{X: 3, Y: 3}) {
		t.Errorf("left moved to %v, want (3, 3)", p)
	}
}

func TestHeldAxisRepeats(t *testing.T) {
	w, _ := newTestWorld(t)
	s := newTestBoard(t, w)
	s.board.Select(models.Point{X: 0, Y: 0})

	ev := axis(controls.Horz, true)
	w.Input.Apply(ev, true)
	s.Input(w, ev, true)

	// One second at 60 ticks: 0.25s to full deflection, then a move every
	// 0.1s.
	for i := 0; i < 60; i++ {
		s.Update(w)
		w.Input.Tick(1.0 / 60)
	}
	p, _ := s.board.Selected()
	if p.X < 6 || p.X > 9 {
		t.Errorf("after holding right for 1s selection is at column %d, want 6 to 9", p.X)
	}

	w.Input.Apply(ev, false)
	s.Update(w)
	before, _ := s.board.Selected()
	for i := 0; i < 30; i++ {
		w.Input.Tick(1.0 / 60)
		s.Update(w)
	}
	if after, _ := s.board.Selected(); after != before {
		t.Errorf("selection kept moving after release: %v -> %v", before, after)
	}
}

func TestClickSelectsCell(t *testing.T) {
	w, _ := newTestWorld(t)
	s := newTestBoard(t, w)
	r := s.boardView.CellRect(models.Point{X: 2, Y: 3})

	s.Input(w, click(int(r.X+r.W/2), int(r.Y+r.H/2)), true)
	if p, ok := s.board.Selected(); !ok || p != (models.Point{X: 2, Y: 3}) {
		t.Errorf("click selected %v, %t, want (2, 3)", p, ok)
	}
	s.Input(w, click(5, 5), true)
	if _, ok := s.board.Selected(); ok {
		t.Errorf("click outside the board kept the selection")
	}
}

func TestAbilityRevealsCell(t *testing.T) {
	w, _ := newTestWorld(t)
	s := newTestBoard(t, w)

	s.Input(w, key(controls.Ability), true)
	if got := len(s.board.EmptyCells()); got != 1 {
		t.Errorf("EmptyCells() after reveal = %d, want 1", got)
	}
	a := s.character.Abilities[0]
	if a.Status != models.Active {
		t.Errorf("ability status = %v, want active", a.Status)
	}
	for i := 0; i < 61; i++ {
		s.Update(w)
	}
	if a.Status != models.InStock {
		t.Errorf("ability status after a second = %v, want in stock", a.Status)
	}
}

func TestSolvingEndsInVictory(t *testing.T) {
	w, _ := newTestWorld(t)
	s := newTestBoard(t, w)
	for _, p := range s.board.EmptyCells() {
		s.board.Select(p)
		d := s.board.Solution(p)
		btn, _ := controls.DigitButton(d)
		s.Input(w, key(btn), true)
	}
	if !s.opponent.Defeated() {
		t.Errorf("opponent health = %d after solving, want 0", s.opponent.Health)
	}

	sw := s.Update(w)
	if sw.Kind != scene.SwitchReplace {
		t.Fatalf("Update() = %v, want Replace", sw.Kind)
	}
	res, ok := sw.Next.(*ResultScene)
	if !ok || !res.Victory || res.Moves != 2 {
		t.Errorf("next scene = %#v, want victory after 2 moves", sw.Next)
	}
}

func TestDefeat(t *testing.T) {
	w, _ := newTestWorld(t)
	s := newTestBoard(t, w)
	s.board.Select(models.Point{X: 2, Y: 3})
	for i := 0; i < s.character.MaxHealth/MistakeDamage; i++ {
		s.Input(w, key(controls.Num1), true)
	}
	sw := s.Update(w)
	res, ok := sw.Next.(*ResultScene)
	if sw.Kind != scene.SwitchReplace || !ok || res.Victory {
		t.Errorf("Update() = %v %#v, want Replace with defeat", sw.Kind, sw.Next)
	}
}

func TestPauseFlow(t *testing.T) {
	w, _ := newTestWorld(t)
	stack := NewStack(w)
	board := newTestBoard(t, w)
	stack.Push(board)

	stack.Input(key(controls.Exit), true)
	stack.Update()
	pause, ok := stack.Current()
	if !ok || pause.Name() != "Pause" || stack.Len() != 2 {
		t.Fatalf("after Exit top = %v, depth %d, want Pause over the board", pause, stack.Len())
	}

	// Digits go nowhere while paused.
	board.board.Select(models.Point{X: 2, Y: 3})
	stack.Input(key(controls.Num5), true)
	if board.board.Moves != 0 {
		t.Errorf("paused board accepted a digit")
	}

	stack.Input(key(controls.Select), true)
	stack.Update()
	if top, _ := stack.Current(); top != Scene(board) {
		t.Errorf("Resume left %v on top, want the board", top.Name())
	}
	if w.QuitRequested {
		t.Errorf("Resume requested quit")
	}
}

func TestPauseQuitAndBack(t *testing.T) {
	w, _ := newTestWorld(t)
	p := NewPauseScene(w, testFonts(t, w))

	p.Input(w, axis(controls.Vert, false), true)
	if p.Menu().Selected != 1 {
		t.Fatalf("Selected = %d after moving down, want 1", p.Menu().Selected)
	}
	p.Input(w, key(controls.Select), true)
	if !w.QuitRequested {
		t.Errorf("Quit did not request quit")
	}
	if sw := p.Update(w); sw.Kind != scene.SwitchPop {
		t.Errorf("Update() = %v, want Pop", sw.Kind)
	}

	w2, _ := newTestWorld(t)
	back := NewPauseScene(w2, testFonts(t, w2))
	back.Input(w2, key(controls.Exit), true)
	if sw := back.Update(w2); sw.Kind != scene.SwitchPop {
		t.Errorf("Exit: Update() = %v, want Pop", sw.Kind)
	}
	if w2.QuitRequested {
		t.Errorf("Exit requested quit")
	}
}

func TestResultDismissedByPolling(t *testing.T) {
	w, _ := newTestWorld(t)
	r := NewResultScene(true, 10, 0, testFonts(t, w))

	press := key(controls.Select)
	w.Input.Apply(press, true)
	if sw := r.Update(w); sw.Kind != scene.SwitchNone {
		t.Fatalf("result dismissed during grace period")
	}
	w.Input.Apply(press, false)
	w.Input.Tick(1.0 / 60)

	for i := 0; i < 60; i++ {
		if sw := r.Update(w); sw.Kind != scene.SwitchNone {
			t.Fatalf("result dismissed with no input at tick %d", i)
		}
		w.Input.Tick(1.0 / 60)
	}

	w.Input.Apply(press, true)
	if sw := r.Update(w); sw.Kind != scene.SwitchPop {
		t.Errorf("Update() after Select = %v, want Pop", sw.Kind)
	}
}

func TestQuitButton(t *testing.T) {
	w, _ := newTestWorld(t)
	s := newTestBoard(t, w)
	s.Input(w, key(controls.Quit), true)
	if !w.QuitRequested {
		t.Errorf("Quit button did not request quit")
	}
}

func TestDumpButton(t *testing.T) {
	w, _ := newTestWorld(t)
	s := newTestBoard(t, w)
	s.dumpDir = t.TempDir()

	s.Input(w, key(controls.Dump), true)
	if _, err := os.Stat(filepath.Join(s.dumpDir, "board.txt")); err != nil {
		t.Errorf("no dump written: %v", err)
	}
}

func TestBrokenFontFailsConstruction(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, filepath.FromSlash(fontPath))
	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(file, []byte("not a font"), 0o644); err != nil {
		t.Fatal(err)
	}
	w := world.New(config.Default(), assets.NewStore(root), nil, rand.New(rand.NewSource(1)))

	if s, err := NewGameboardScene(w, testPuzzle(t)); err == nil {
		t.Errorf("NewGameboardScene() with a broken font = %v, nil, want error", s)
	}
}

func TestScenesShareBoardFonts(t *testing.T) {
	w, _ := newTestWorld(t)
	s := newTestBoard(t, w)

	s.Input(w, key(controls.Exit), true)
	sw := s.Update(w)
	pause, ok := sw.Next.(*PauseScene)
	if !ok {
		t.Fatalf("Exit switched to %#v, want the pause scene", sw.Next)
	}
	if pause.fonts != s.fonts {
		t.Errorf("pause scene has its own fonts")
	}

	s.character.Damage(s.character.MaxHealth)
	res, ok := s.Update(w).Next.(*ResultScene)
	if !ok || res.fonts != s.fonts {
		t.Errorf("result scene fonts = %v, want the board's", res)
	}
}

func TestPauseHelp(t *testing.T) {
	w, _ := newTestWorld(t)
	p := NewPauseScene(w, testFonts(t, w))
	if got := p.Menu().Help(); got != "RESUME_HELP" {
		t.Errorf("Help() = %q, want RESUME_HELP", got)
	}
	p.Input(w, axis(controls.Vert, false), true)
	if got := p.Menu().Help(); got != "QUIT_HELP" {
		t.Errorf("Help() after moving down = %q, want QUIT_HELP", got)
	}
}

func TestTickFollowsCurrentConfig(t *testing.T) {
	prev := config.Current()
	defer config.SetCurrent(prev)

	cfg := config.Default()
	cfg.TPS = 30
	config.SetCurrent(cfg)
	if got, want := tick(), time.Second/30; got != want {
		t.Errorf("tick() = %v, want %v", got, want)
	}
}
