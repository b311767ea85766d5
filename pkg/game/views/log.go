package views

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// LogView draws the battle log, newest line last.
type LogView struct {
	X, Y       float64
	LineHeight float64
	TextSize   float64

	fonts *Fonts
}

func NewLogView(fonts *Fonts) *LogView {
	return &LogView{X: 500, Y: 510, LineHeight: 16, TextSize: 13, fonts: fonts}
}

func (v *LogView) Draw(screen *ebiten.Image, messages []string) {
	face := v.fonts.Face(v.TextSize)
	for i, msg := range messages {
		col := colorSubtle
		if i == len(messages)-1 {
			col = colorText
		}
		drawRaw(screen, msg, face, v.X, v.Y+float64(i)*v.LineHeight, col)
	}
}
