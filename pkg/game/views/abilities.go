package views

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"sudokubattle/pkg/engine/assets"
	"sudokubattle/pkg/game/models"
)

// AbilitiesViewSettings is the layout of the ability panel.
type AbilitiesViewSettings struct {
	X, Y, W, H  float32
	BorderWidth float32
	IconSize    float32
	IconSpacing float32
	LabelSize   float64
}

func DefaultAbilitiesSettings() AbilitiesViewSettings {
	return AbilitiesViewSettings{
		X: 500, Y: 215, W: 270, H: 100,
		BorderWidth: 4,
		IconSize:    64,
		IconSpacing: 12,
		LabelSize:   12,
	}
}

// AbilitiesView draws a character's ability badges in a panel.
type AbilitiesView struct {
	Settings AbilitiesViewSettings

	store *assets.Store
	fonts *Fonts
	// Badge handles by path; nil records a badge that failed to load.
	icons map[string]*assets.Handle[*ebiten.Image]
}

func NewAbilitiesView(settings AbilitiesViewSettings, store *assets.Store, fonts *Fonts) *AbilitiesView {
	return &AbilitiesView{
		Settings: settings,
		store:    store,
		fonts:    fonts,
		icons:    make(map[string]*assets.Handle[*ebiten.Image]),
	}
}

func (v *AbilitiesView) icon(path string) *assets.Handle[*ebiten.Image] {
	h, ok := v.icons[path]
	if !ok {
		h = loadImage(v.store, path)
		v.icons[path] = h
	}
	return h
}

// IconRect returns the rectangle of the i-th badge.
func (v *AbilitiesView) IconRect(i int) Rect {
	s := v.Settings
	x := s.X + s.IconSpacing + float32(i)*(s.IconSize+s.IconSpacing)
	_, y := CenterRectVertically(Rect{X: x, Y: s.Y, W: s.IconSize, H: s.IconSize}, s.H)
	return Rect{x, y, s.IconSize, s.IconSize}
}

// IconAt returns the index of the badge under (x, y), given n badges.
func (v *AbilitiesView) IconAt(x, y, n int) (int, bool) {
	for i := 0; i < n; i++ {
		if v.IconRect(i).Contains(float32(x), float32(y)) {
			return i, true
		}
	}
	return 0, false
}

func (v *AbilitiesView) Draw(screen *ebiten.Image, abilities []*models.Ability) {
	s := v.Settings
	vector.DrawFilledRect(screen, s.X, s.Y, s.W, s.H, colorPanelBackground, false)
	vector.StrokeRect(screen, s.X, s.Y, s.W, s.H, s.BorderWidth, colorBorder, false)

	face := v.fonts.Face(s.LabelSize)
	for i, a := range abilities {
		r := v.IconRect(i)
		if r.X+r.W > s.X+s.W {
			break
		}
		if !drawImageAt(screen, v.icon(a.IconPath()), r.X, r.Y, r.W, r.H) {
			col := colorAction
			if a.Status != models.InStock {
				col = colorSubtle
			}
			vector.DrawFilledRect(screen, r.X, r.Y, r.W, r.H, col, false)
		}
		drawRaw(screen, fmt.Sprintf("x%d", a.Charges), face, float64(r.X+r.W-14), float64(r.Y+r.H-14), colorBoardText)
	}
}
