package views

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kataras/golog"

	"sudokubattle/pkg/engine/assets"
)

// Rect is an axis-aligned rectangle in screen pixels.
type Rect struct {
	X, Y, W, H float32
}

// Contains reports whether (x, y) is inside r. The right and bottom edges
// are exclusive.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// CenterRectInRect returns where inner's top-left corner goes to sit in the
// middle of outer.
func CenterRectInRect(inner, outer Rect) (x, y float32) {
	return outer.X + (outer.W-inner.W)/2, outer.Y + (outer.H-inner.H)/2
}

// CenterRectVertically centres r within a band of the given height starting
// at r.Y, keeping r.X.
func CenterRectVertically(r Rect, height float32) (x, y float32) {
	return r.X, r.Y + (height-r.H)/2
}

// loadImage fetches an image, logging and returning nil when it cannot be
// loaded. Views draw a flat placeholder for nil images.
func loadImage(store *assets.Store, path string) *assets.Handle[*ebiten.Image] {
	if store == nil {
		return nil
	}
	h, err := store.Image(path)
	if err != nil {
		golog.Child("[views]").Warnf("%v", err)
		return nil
	}
	return h
}

// drawImageAt draws an image handle with its top-left corner at (x, y),
// scaled to w by h when both are positive.
func drawImageAt(screen *ebiten.Image, h *assets.Handle[*ebiten.Image], x, y, w, hgt float32) bool {
	if h == nil {
		return false
	}
	h.Borrow(func(img *ebiten.Image) {
		op := &ebiten.DrawImageOptions{}
		if w > 0 && hgt > 0 {
			b := img.Bounds()
			if b.Dx() > 0 && b.Dy() > 0 {
				op.GeoM.Scale(float64(w)/float64(b.Dx()), float64(hgt)/float64(b.Dy()))
			}
		}
		op.GeoM.Translate(float64(x), float64(y))
		screen.DrawImage(img, op)
	})
	return true
}
