package assets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func loadString(data []byte) (string, error) {
	return string(data), nil
}

var errBad = errors.New("bad")

func loadStrict(data []byte) (string, error) {
	if string(data) == "bad" {
		return "", errBad
	}
	return string(data), nil
}

func writeResource(t *testing.T, root, path, content string) string {
	t.Helper()
	file := filepath.Join(root, filepath.FromSlash(path))
	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(file, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return file
}

// touch moves a file's mtime forward so Sync sees it as changed even on
// filesystems with coarse timestamps.
func touch(t *testing.T, file string, step int) {
	t.Helper()
	ts := time.Now().Add(time.Duration(step) * time.Hour)
	if err := os.Chtimes(file, ts, ts); err != nil {
		t.Fatal(err)
	}
}

func TestResolve(t *testing.T) {
	s := NewStore("res")
	tests := []struct {
		path string
		want string
	}{
		{"/images/a.png", filepath.Join("res", "images", "a.png")},
		{"images/a.png", filepath.Join("res", "images", "a.png")},
	}
	for _, tt := range tests {
		if got := s.Resolve(tt.path); got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestLoadMissing(t *testing.T) {
	s := NewStore(t.TempDir())
	_, err := Load(s, "/nope.txt", loadString)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Load(missing) = %v, want ErrNotFound", err)
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d after failed load, want 0", s.Len())
	}
}

func TestLoadCachesHandle(t *testing.T) {
	root := t.TempDir()
	writeResource(t, root, "text/a.txt", "alpha")
	s := NewStore(root)

	h1, err := Load(s, "/text/a.txt", loadString)
	if err != nil {
		t.Fatal(err)
	}
	h2, err := Load(s, "/text/a.txt", loadString)
	if err != nil {
		t.Fatal(err)
	}
	if h1 != h2 {
		t.Errorf("second Load returned a different handle")
	}
	if got := h1.Get(); got != "alpha" {
		t.Errorf("Get() = %q, want %q", got, "alpha")
	}

	if _, err := Load(s, "/text/a.txt", func(b []byte) (int, error) { return len(b), nil }); err == nil {
		t.Errorf("Load with another type succeeded")
	}
}

func TestSyncReloadsChangedFiles(t *testing.T) {
	root := t.TempDir()
	a := writeResource(t, root, "a.txt", "one")
	writeResource(t, root, "b.txt", "static")
	s := NewStore(root)

	ha, err := Load(s, "a.txt", loadString)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Load(s, "b.txt", loadString); err != nil {
		t.Fatal(err)
	}

	if n := s.Sync(); n != 0 {
		t.Errorf("Sync() with no changes = %d, want 0", n)
	}

	writeResource(t, root, "a.txt", "two")
	touch(t, a, 1)
	if n := s.Sync(); n != 1 {
		t.Errorf("Sync() = %d, want 1", n)
	}
	var seen string
	ha.Borrow(func(v string) { seen = v })
	if seen != "two" {
		t.Errorf("Borrow saw %q after reload, want %q", seen, "two")
	}
}

func TestSyncKeepsValueOnFailure(t *testing.T) {
	root := t.TempDir()
	file := writeResource(t, root, "a.txt", "good")
	s := NewStore(root)
	h, err := Load(s, "a.txt", loadStrict)
	if err != nil {
		t.Fatal(err)
	}

	writeResource(t, root, "a.txt", "bad")
	touch(t, file, 1)
	if n := s.Sync(); n != 0 {
		t.Errorf("Sync() = %d, want 0", n)
	}
	if got := h.Get(); got != "good" {
		t.Errorf("Get() = %q after failed reload, want %q", got, "good")
	}

	if err := os.Remove(file); err != nil {
		t.Fatal(err)
	}
	if n := s.Sync(); n != 0 {
		t.Errorf("Sync() with file removed = %d, want 0", n)
	}
}

func TestFontFallback(t *testing.T) {
	s := NewStore(t.TempDir())
	h, err := s.Font("/fonts/missing.ttf")
	if err != nil {
		t.Fatalf("Font(missing) = %v, want fallback", err)
	}
	if h.Get() == nil {
		t.Errorf("fallback font is nil")
	}
}

func TestOpen(t *testing.T) {
	root := t.TempDir()
	s, err := Open(root)
	if err != nil {
		t.Fatalf("Open(%s) = %v", root, err)
	}
	if s.Root() != root {
		t.Errorf("Root() = %s, want %s", s.Root(), root)
	}

	missing := filepath.Join(root, "nope")
	if _, err := Open(missing); !errors.Is(err, ErrNotFound) {
		t.Errorf("Open(%s) = %v, want ErrNotFound", missing, err)
	}
}
