package terminal

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsTerminalRegularFile(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if IsTerminal(f) {
		t.Errorf("IsTerminal(regular file) = true, want false")
	}
	if IsTerminal(nil) {
		t.Errorf("IsTerminal(nil) = true, want false")
	}
}

func TestGetWidthPositive(t *testing.T) {
	if w := GetWidth(); w <= 0 {
		t.Errorf("GetWidth() = %d, want > 0", w)
	}
}
