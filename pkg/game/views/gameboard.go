package views

import (
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"sudokubattle/pkg/engine/assets"
	"sudokubattle/pkg/game/models"
)

// selectionSlide is how long the highlight takes to reach a new cell.
const selectionSlide float32 = 0.08

// GameboardViewSettings is the board layout.
type GameboardViewSettings struct {
	X, Y float32
	// Size is the side length of the whole grid.
	Size              float32
	CellEdgeWidth     float32
	SectionEdgeWidth  float32
	BackgroundPadding float32
	NumberSize        float64
}

// DefaultGameboardSettings places a 400px board in the left of an 800x600
// screen.
func DefaultGameboardSettings() GameboardViewSettings {
	return GameboardViewSettings{
		X:                 55,
		Y:                 100,
		Size:              400,
		CellEdgeWidth:     1,
		SectionEdgeWidth:  4,
		BackgroundPadding: 25,
		NumberSize:        30,
	}
}

// GameboardView draws the sudoku grid, its digits and the selection.
type GameboardView struct {
	Settings GameboardViewSettings

	background *assets.Handle[*ebiten.Image]
	fonts      *Fonts

	// Drawn position of the selection highlight, which slides between cells.
	selX, selY     float32
	target         models.Point
	hasTarget      bool
	tweenX, tweenY *gween.Tween

	hover    models.Point
	hasHover bool
}

// NewGameboardView loads /images/backgrounds/<image> as the board frame.
func NewGameboardView(settings GameboardViewSettings, store *assets.Store, image string, fonts *Fonts) *GameboardView {
	return &GameboardView{
		Settings:   settings,
		background: loadImage(store, "/images/backgrounds/"+image),
		fonts:      fonts,
	}
}

// CellSize returns the side length of one cell.
func (v *GameboardView) CellSize() float32 {
	return v.Settings.Size / models.Size
}

// Bounds returns the grid rectangle.
func (v *GameboardView) Bounds() Rect {
	s := v.Settings
	return Rect{s.X, s.Y, s.Size, s.Size}
}

// CellAt maps a screen position to the cell under it.
func (v *GameboardView) CellAt(x, y int) (models.Point, bool) {
	fx, fy := float32(x)-v.Settings.X, float32(y)-v.Settings.Y
	if fx < 0 || fy < 0 || fx >= v.Settings.Size || fy >= v.Settings.Size {
		return models.Point{}, false
	}
	cell := v.CellSize()
	return models.Point{X: int(fx / cell), Y: int(fy / cell)}, true
}

// CellRect returns the screen rectangle of a cell.
func (v *GameboardView) CellRect(p models.Point) Rect {
	cell := v.CellSize()
	return Rect{v.Settings.X + float32(p.X)*cell, v.Settings.Y + float32(p.Y)*cell, cell, cell}
}

// SetHover marks the cell under the pointer.
func (v *GameboardView) SetHover(p models.Point, ok bool) {
	v.hover, v.hasHover = p, ok
}

// Update advances the selection slide by dt seconds.
func (v *GameboardView) Update(dt float32, board *models.Gameboard) {
	p, ok := board.Selected()
	if !ok {
		v.hasTarget = false
		v.tweenX, v.tweenY = nil, nil
		return
	}
	r := v.CellRect(p)
	if !v.hasTarget {
		// First selection appears in place.
		v.selX, v.selY = r.X, r.Y
	} else if p != v.target {
		v.tweenX = gween.New(v.selX, r.X, selectionSlide, ease.OutQuad)
		v.tweenY = gween.New(v.selY, r.Y, selectionSlide, ease.OutQuad)
	}
	v.target, v.hasTarget = p, true

	if v.tweenX != nil {
		x, doneX := v.tweenX.Update(dt)
		y, doneY := v.tweenY.Update(dt)
		v.selX, v.selY = x, y
		if doneX && doneY {
			v.tweenX, v.tweenY = nil, nil
		}
	}
}

// SelectionPosition returns where the highlight is currently drawn.
func (v *GameboardView) SelectionPosition() (x, y float32, ok bool) {
	return v.selX, v.selY, v.hasTarget
}

func (v *GameboardView) Draw(screen *ebiten.Image, board *models.Gameboard) {
	s := v.Settings
	cell := v.CellSize()
	pad := s.BackgroundPadding

	if !drawImageAt(screen, v.background, s.X-pad, s.Y-pad, 0, 0) {
		vector.DrawFilledRect(screen, s.X-pad, s.Y-pad, s.Size+2*pad, s.Size+2*pad, colorPanelBackground, false)
	}
	vector.DrawFilledRect(screen, s.X, s.Y, s.Size, s.Size, colorBoard, false)

	for y := 0; y < models.Size; y++ {
		for x := 0; x < models.Size; x++ {
			p := models.Point{X: x, Y: y}
			if board.IsGiven(p) {
				r := v.CellRect(p)
				vector.DrawFilledRect(screen, r.X, r.Y, r.W, r.H, colorGiven, false)
			}
		}
	}

	if v.hasHover {
		r := v.CellRect(v.hover)
		vector.DrawFilledRect(screen, r.X, r.Y, r.W, r.H, colorHover, false)
	}
	if v.hasTarget {
		vector.DrawFilledRect(screen, v.selX, v.selY, cell, cell, colorSelected, false)
	}

	face := v.fonts.Face(s.NumberSize)
	for y := 0; y < models.Size; y++ {
		for x := 0; x < models.Size; x++ {
			p := models.Point{X: x, Y: y}
			d, ok := board.Get(p)
			if !ok {
				continue
			}
			label := strconv.Itoa(int(d))
			w, h := text.Measure(label, face, 0)
			tx, ty := CenterRectInRect(Rect{W: float32(w), H: float32(h)}, v.CellRect(p))
			drawRaw(screen, label, face, float64(tx), float64(ty), NumberColor(d))
		}
	}

	v.drawGrid(screen)
}

func (v *GameboardView) drawGrid(screen *ebiten.Image) {
	s := v.Settings
	right, bottom := s.X+s.Size, s.Y+s.Size
	for i := 1; i < models.Size; i++ {
		if i%3 == 0 {
			continue
		}
		off := float32(i) / models.Size * s.Size
		vector.StrokeLine(screen, s.X+off, s.Y, s.X+off, bottom, s.CellEdgeWidth, colorBorder, true)
		vector.StrokeLine(screen, s.X, s.Y+off, right, s.Y+off, s.CellEdgeWidth, colorBorder, true)
	}
	for i := 1; i < 3; i++ {
		off := float32(i) / 3 * s.Size
		vector.StrokeLine(screen, s.X+off, s.Y, s.X+off, bottom, s.SectionEdgeWidth, colorBorder, true)
		vector.StrokeLine(screen, s.X, s.Y+off, right, s.Y+off, s.SectionEdgeWidth, colorBorder, true)
	}
	vector.StrokeRect(screen, s.X, s.Y, s.Size, s.Size, s.SectionEdgeWidth, colorBorder, true)
}
