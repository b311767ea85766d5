package views

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"sudokubattle/pkg/engine/assets"
	"sudokubattle/pkg/game/models"
)

// healthDrain is how long the health bar takes to catch up with damage.
const healthDrain float32 = 0.4

// PortraitView draws a character portrait with a name and health bar.
type PortraitView struct {
	Kind        models.CharacterKind
	X, Y        float32
	Size        float32
	BorderWidth float32

	portrait *assets.Handle[*ebiten.Image]
	fonts    *Fonts

	shown   float32
	target  float32
	tween   *gween.Tween
	started bool
}

// NewPortraitView creates a portrait of character at (x, y).
func NewPortraitView(character *models.Character, x, y float32, store *assets.Store, fonts *Fonts) *PortraitView {
	return &PortraitView{
		Kind:        character.Kind,
		X:           x,
		Y:           y,
		Size:        130,
		BorderWidth: 4,
		portrait:    loadImage(store, character.Portrait),
		fonts:       fonts,
	}
}

// Update eases the displayed health toward the character's health.
func (v *PortraitView) Update(dt float32, c *models.Character) {
	frac := float32(c.HealthFraction())
	if !v.started {
		v.shown, v.target, v.started = frac, frac, true
	}
	if frac != v.target {
		v.tween = gween.New(v.shown, frac, healthDrain, ease.OutCubic)
		v.target = frac
	}
	if v.tween != nil {
		val, done := v.tween.Update(dt)
		v.shown = val
		if done {
			v.tween = nil
		}
	}
}

// ShownHealth returns the health fraction currently drawn.
func (v *PortraitView) ShownHealth() float32 {
	return v.shown
}

func (v *PortraitView) Draw(screen *ebiten.Image, c *models.Character) {
	if !drawImageAt(screen, v.portrait, v.X, v.Y, v.Size, v.Size) {
		vector.DrawFilledRect(screen, v.X, v.Y, v.Size, v.Size, colorPanelBackground, false)
	}
	vector.StrokeRect(screen, v.X, v.Y, v.Size, v.Size, v.BorderWidth, colorBorder, false)

	barY := v.Y + v.Size + 8
	vector.DrawFilledRect(screen, v.X, barY, v.Size, 10, colorHealthTrack, false)
	col := colorHealth
	if v.shown < 0.3 {
		col = colorHealthLow
	}
	vector.DrawFilledRect(screen, v.X, barY, v.Size*v.shown, 10, col, false)

	face := v.fonts.Face(14)
	drawText(screen, c.Name, face, float64(v.X), float64(v.Y-20), colorText)
	drawRaw(screen, fmt.Sprintf("%d/%d", c.Health, c.MaxHealth), v.fonts.Face(11), float64(v.X), float64(barY+12), colorSubtle)
}
