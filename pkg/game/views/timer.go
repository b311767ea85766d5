package views

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"sudokubattle/pkg/engine/assets"
)

// TimerView shows the elapsed battle time over a container image.
type TimerView struct {
	X, Y     float32
	W, H     float32
	TextSize float64

	background *assets.Handle[*ebiten.Image]
	fonts      *Fonts
}

func NewTimerView(store *assets.Store, fonts *Fonts) *TimerView {
	return &TimerView{
		X: 500, Y: 435, W: 270, H: 60,
		TextSize:   28,
		background: loadImage(store, "/images/ui/timer-container.png"),
		fonts:      fonts,
	}
}

// FormatClock renders a duration as mm:ss. Minutes keep counting past 59.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

func (v *TimerView) Draw(screen *ebiten.Image, elapsed time.Duration) {
	if !drawImageAt(screen, v.background, v.X, v.Y, v.W, v.H) {
		vector.DrawFilledRect(screen, v.X, v.Y, v.W, v.H, colorPanelBackground, false)
		vector.StrokeRect(screen, v.X, v.Y, v.W, v.H, 4, colorBorder, false)
	}
	label := FormatClock(elapsed)
	face := v.fonts.Face(v.TextSize)
	w, h := text.Measure(label, face, 0)
	x, y := CenterRectInRect(Rect{W: float32(w), H: float32(h)}, Rect{v.X, v.Y, v.W, v.H})
	drawRaw(screen, label, face, float64(x), float64(y), colorBoardText)
}
