package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func TestToneLength(t *testing.T) {
	rate := beep.SampleRate(1000)
	tone := NewTone(rate, 50, 100*time.Millisecond, 0.5)
	if tone.Len() != 100 {
		t.Fatalf("Len() = %d, want 100", tone.Len())
	}

	buf := make([][2]float64, 64)
	total := 0
	for {
		n, ok := tone.Stream(buf)
		if !ok {
			break
		}
		total += n
	}
	if total != 100 {
		t.Errorf("streamed %d samples, want 100", total)
	}
	if tone.Err() != nil {
		t.Errorf("Err() = %v", tone.Err())
	}
}

func TestToneStaysInVolume(t *testing.T) {
	rate := beep.SampleRate(8000)
	tone := NewTone(rate, 440, 50*time.Millisecond, 2)
	buf := make([][2]float64, 400)
	n, _ := tone.Stream(buf)
	for i := 0; i < n; i++ {
		if buf[i][0] < -1 || buf[i][0] > 1 || buf[i][0] != buf[i][1] {
			t.Fatalf("sample %d = %v, want equal channels within [-1, 1]", i, buf[i])
		}
	}
}

func TestNopIsPlayer(t *testing.T) {
	var p Player = Nop{}
	p.Chime()
	p.Buzz()
	p.Close()
}
