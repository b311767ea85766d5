package views

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"sudokubattle/pkg/engine/assets"
)

// BackgroundView fills the screen with an area backdrop.
type BackgroundView struct {
	image *assets.Handle[*ebiten.Image]
}

// NewBackgroundView loads /images/backgrounds/<image>.
func NewBackgroundView(store *assets.Store, image string) *BackgroundView {
	return &BackgroundView{image: loadImage(store, "/images/backgrounds/"+image)}
}

func (v *BackgroundView) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	w, h := float32(b.Dx()), float32(b.Dy())
	if !drawImageAt(screen, v.image, 0, 0, w, h) {
		vector.DrawFilledRect(screen, 0, 0, w, h, colorBackground, false)
	}
}
