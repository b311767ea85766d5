package scenes

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leonelquinteros/gotext"

	"sudokubattle/pkg/game/controls"
	"sudokubattle/pkg/game/views"
	"sudokubattle/pkg/game/world"
)

// resultGrace is how long the result ignores input, so a key held from the
// last move does not dismiss it straight away.
const resultGrace = 500 * time.Millisecond

// ResultScene shows how the battle ended until the player dismisses it.
type ResultScene struct {
	Victory bool
	Moves   int
	Elapsed time.Duration

	shown time.Duration
	fonts *views.Fonts
}

// NewResultScene creates the closing screen for a battle, drawn with fonts.
func NewResultScene(victory bool, moves int, elapsed time.Duration, fonts *views.Fonts) *ResultScene {
	return &ResultScene{Victory: victory, Moves: moves, Elapsed: elapsed, fonts: fonts}
}

func (s *ResultScene) Name() string {
	return "Result"
}

// Input is unused; the result polls the input state instead.
func (s *ResultScene) Input(*world.World, controls.Event, bool) {}

func (s *ResultScene) Update(w *world.World) Switch {
	s.shown += tick()
	if s.shown < resultGrace {
		return none()
	}
	if w.Input.JustPressed(controls.Select) || w.Input.JustPressed(controls.Exit) {
		return pop()
	}
	return none()
}

func (s *ResultScene) Draw(_ *world.World, screen *ebiten.Image) error {
	b := screen.Bounds()
	w, h := float32(b.Dx()), float32(b.Dy())
	vector.DrawFilledRect(screen, 0, 0, w, h, views.ColorBackground, false)

	title, col := "DEFEAT", views.ColorDenied
	if s.Victory {
		title, col = "VICTORY", views.ColorSuccess
	}
	cx := float64(w) / 2
	y := float64(h)/2 - 70
	views.DrawCentered(screen, title, s.fonts.Face(40), cx, y, col)
	summary := fmt.Sprintf(gotext.Get("RESULT_SUMMARY"), s.Moves, views.FormatClock(s.Elapsed))
	views.DrawCentered(screen, summary, s.fonts.Face(20), cx, y+70, views.ColorText)
	views.DrawCentered(screen, "PRESS_TO_CONTINUE", s.fonts.Face(16), cx, y+110, views.ColorSubtle)
	return nil
}
