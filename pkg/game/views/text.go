package views

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/leonelquinteros/gotext"

	"sudokubattle/pkg/engine/assets"
)

// lookup is the catalogue lookup used for text drawn by the views.
var lookup func(string, ...interface{}) string = gotext.Get

// translate returns the catalogue entry for key, or key itself when the
// catalogue has none.
func translate(key string) string {
	return lookup(key)
}

// Fonts hands out cached faces of one font source at any size. The cache is
// dropped when the source is reloaded.
type Fonts struct {
	source *assets.Handle[*text.GoTextFaceSource]
	cached *text.GoTextFaceSource
	faces  map[float64]*text.GoTextFace
}

// NewFonts wraps a font handle.
func NewFonts(source *assets.Handle[*text.GoTextFaceSource]) *Fonts {
	return &Fonts{source: source, faces: make(map[float64]*text.GoTextFace)}
}

// LoadFonts loads the UI font from the store, falling back to Go Regular.
func LoadFonts(store *assets.Store, path string) (*Fonts, error) {
	h, err := store.Font(path)
	if err != nil {
		return nil, err
	}
	return NewFonts(h), nil
}

// Face returns the face at the given size.
func (f *Fonts) Face(size float64) *text.GoTextFace {
	src := f.source.Get()
	if src != f.cached {
		f.cached = src
		f.faces = make(map[float64]*text.GoTextFace)
	}
	face, ok := f.faces[size]
	if !ok {
		face = &text.GoTextFace{Source: src, Size: size}
		f.faces[size] = face
	}
	return face
}

// drawText draws str with its top-left corner at (x, y). str is looked up
// in the translation catalogue first; untranslated strings are drawn as-is.
func drawText(screen *ebiten.Image, str string, face *text.GoTextFace, x, y float64, col color.Color) {
	drawRaw(screen, translate(str), face, x, y, col)
}

// drawRaw draws str without translation.
func drawRaw(screen *ebiten.Image, str string, face *text.GoTextFace, x, y float64, col color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, str, face, op)
}

// DrawCentered draws translated text centred on the point (cx, y).
func DrawCentered(screen *ebiten.Image, str string, face *text.GoTextFace, cx, y float64, col color.Color) {
	translated := translate(str)
	w, _ := text.Measure(translated, face, 0)
	drawRaw(screen, translated, face, cx-w/2, y, col)
}
