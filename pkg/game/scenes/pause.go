package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"sudokubattle/pkg/engine/input"
	"sudokubattle/pkg/engine/scene"
	"sudokubattle/pkg/game/controls"
	"sudokubattle/pkg/game/menu"
	"sudokubattle/pkg/game/views"
	"sudokubattle/pkg/game/world"
)

// Pause menu labels, looked up in the translation catalogue when drawn.
const (
	labelResume = "RESUME"
	labelQuit   = "QUIT"
)

// PauseScene is the menu shown over the battle. Backing out or choosing
// Resume returns to the board; Quit ends the game.
type PauseScene struct {
	menu  *menu.Menu
	world *world.World
	fonts *views.Fonts

	pending Switch
}

// NewPauseScene opens the pause menu, drawn with fonts.
func NewPauseScene(w *world.World, fonts *views.Fonts) *PauseScene {
	s := &PauseScene{world: w, fonts: fonts, pending: none()}
	s.menu = menu.New([]menu.MenuItem{
		&menu.Item{Label: labelResume, Help: "RESUME_HELP"},
		&menu.Item{Label: labelQuit, Help: "QUIT_HELP"},
	}, s)
	return s
}

func (s *PauseScene) Name() string {
	return "Pause"
}

// Menu exposes the menu state.
func (s *PauseScene) Menu() *menu.Menu {
	return s.menu
}

func (s *PauseScene) OnSelect(menu.MenuItem, int) {}

func (s *PauseScene) OnActivate(item menu.MenuItem, _ int) (bool, string) {
	if item.GetLabel() == labelQuit {
		s.world.QuitRequested = true
	}
	return true, ""
}

func (s *PauseScene) OnExit() {
	s.pending = pop()
}

func (s *PauseScene) GetTitle() string {
	return "PAUSED"
}

func (s *PauseScene) Input(_ *world.World, ev controls.Event, started bool) {
	if !started {
		return
	}
	switch ev.Kind() {
	case input.EffectAxis:
		axis, positive, _ := ev.Axis()
		if axis != controls.Vert {
			return
		}
		if positive {
			s.menu.MoveUp()
		} else {
			s.menu.MoveDown()
		}
	case input.EffectButton:
		btn, _ := ev.Button()
		switch btn {
		case controls.Select:
			s.menu.Activate()
		case controls.Exit:
			s.menu.Exit()
		case controls.Quit:
			s.world.QuitRequested = true
		}
	}
}

func (s *PauseScene) Update(_ *world.World) Switch {
	if sw := s.pending; sw.Kind != scene.SwitchNone {
		s.pending = none()
		return sw
	}
	return none()
}

func (s *PauseScene) Draw(_ *world.World, screen *ebiten.Image) error {
	b := screen.Bounds()
	w, h := float32(b.Dx()), float32(b.Dy())
	vector.DrawFilledRect(screen, 0, 0, w, h, views.ColorOverlay, false)

	cx := float64(w) / 2
	y := float64(h)/2 - 80
	views.DrawCentered(screen, s.menu.Title(), s.fonts.Face(32), cx, y, views.ColorAction)
	y += 60
	for i, item := range s.menu.Items {
		col := views.ColorSubtle
		label := item.GetLabel()
		if i == s.menu.Selected {
			col = views.ColorText
		}
		views.DrawCentered(screen, label, s.fonts.Face(22), cx, y, col)
		y += 34
	}
	if help := s.menu.Help(); help != "" {
		views.DrawCentered(screen, help, s.fonts.Face(16), cx, y+16, views.ColorSubtle)
	}
	return nil
}
