package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Tone is a finite sine tone with a linear fade out.
type Tone struct {
	sr     beep.SampleRate
	freq   float64
	volume float64
	pos    int
	total  int
}

// NewTone creates a tone of the given frequency, length and volume in [0, 1].
func NewTone(sr beep.SampleRate, freq float64, d time.Duration, volume float64) *Tone {
	return &Tone{
		sr:     sr,
		freq:   freq,
		volume: math.Max(0, math.Min(volume, 1)),
		total:  sr.N(d),
	}
}

func (g *Tone) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.total {
			break
		}
		t := float64(g.pos) / float64(g.sr)
		envelope := 1 - float64(g.pos)/float64(g.total)
		v := g.volume * envelope * math.Sin(2*math.Pi*g.freq*t)
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
		n++
	}
	return n, true
}

func (g *Tone) Err() error {
	return nil
}

// Len returns the total number of samples in the tone.
func (g *Tone) Len() int {
	return g.total
}
