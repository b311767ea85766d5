// Package audio plays the game's short synthesized sound effects.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/kataras/golog"
)

const sampleRate = beep.SampleRate(44100)

// Player plays feedback sounds. Implementations must not block the caller.
type Player interface {
	// Chime is played for a correct move.
	Chime()
	// Buzz is played for a refused or incorrect move.
	Buzz()
	Close()
}

// Nop is a Player that stays silent.
type Nop struct{}

func (Nop) Chime() {}
func (Nop) Buzz()  {}
func (Nop) Close() {}

// Speaker plays sounds through the system audio device.
type Speaker struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	closed bool
	log    *golog.Logger
}

// NewSpeaker opens the audio device. Callers that can live without sound
// should fall back to Nop when this fails.
func NewSpeaker() (*Speaker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return nil, err
	}
	s := &Speaker{
		mixer: &beep.Mixer{},
		log:   golog.Child("[audio]"),
	}
	speaker.Play(s.mixer)
	s.log.Debugf("speaker ready at %d Hz", sampleRate)
	return s, nil
}

func (s *Speaker) play(st beep.Streamer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Chime plays a rising two-note chime.
func (s *Speaker) Chime() {
	s.play(beep.Seq(
		NewTone(sampleRate, 880, 80*time.Millisecond, 0.25),
		NewTone(sampleRate, 1320, 120*time.Millisecond, 0.25),
	))
}

// Buzz plays a short low buzz.
func (s *Speaker) Buzz() {
	s.play(NewTone(sampleRate, 110, 180*time.Millisecond, 0.3))
}

// Close silences anything still playing.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
}
