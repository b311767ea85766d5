// Package assets loads game resources from a directory and keeps them
// cached behind shared handles. Sync reloads any file that changed on disk,
// so artwork can be edited while the game runs.
package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/kataras/golog"
)

// ErrNotFound is returned when a resource does not exist under the root.
var ErrNotFound = errors.New("asset not found")

// Loader decodes the raw bytes of a file into an asset.
type Loader[T any] func(data []byte) (T, error)

// Handle is a shared reference to a loaded asset. The value behind it is
// swapped in place when the file is reloaded, so holders always see the
// latest version.
type Handle[T any] struct {
	mu      sync.RWMutex
	path    string
	value   T
	modTime time.Time
	load    Loader[T]
}

// Path returns the resource path the handle was loaded from.
func (h *Handle[T]) Path() string {
	return h.path
}

// Get returns the current value.
func (h *Handle[T]) Get() T {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.value
}

// Borrow calls fn with the current value while holding the read lock. fn
// must not keep the value past its return.
func (h *Handle[T]) Borrow(fn func(T)) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	fn(h.value)
}

func (h *Handle[T]) reload(file string) (bool, error) {
	info, err := os.Stat(file)
	if err != nil {
		return false, err
	}
	h.mu.RLock()
	unchanged := info.ModTime().Equal(h.modTime)
	h.mu.RUnlock()
	if unchanged {
		return false, nil
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return false, err
	}
	v, err := h.load(data)
	if err != nil {
		return false, err
	}
	h.mu.Lock()
	h.value = v
	h.modTime = info.ModTime()
	h.mu.Unlock()
	return true, nil
}

type entry interface {
	reload(file string) (bool, error)
}

// Store caches assets by resource path. Resource paths use forward slashes
// and are relative to the root; a leading slash is allowed.
//
// A Store is safe for concurrent use.
type Store struct {
	root string

	mu      sync.Mutex
	entries map[string]entry
	log     *golog.Logger
}

// NewStore creates a store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{
		root:    dir,
		entries: make(map[string]entry),
		log:     golog.Child("[assets]"),
	}
}

// Open creates a store over an existing resource directory.
func Open(dir string) (*Store, error) {
	s := NewStore(dir)
	if !s.Exists("/") {
		return nil, fmt.Errorf("resource directory %s: %w", s.Root(), ErrNotFound)
	}
	s.log.Debugf("resources at %s", s.Root())
	return s, nil
}

// Root returns the resource directory.
func (s *Store) Root() string {
	return s.root
}

// Resolve maps a resource path to a file path under the root.
func (s *Store) Resolve(path string) string {
	clean := filepath.FromSlash(strings.TrimPrefix(path, "/"))
	return filepath.Join(s.root, clean)
}

// Exists reports whether a resource is present on disk.
func (s *Store) Exists(path string) bool {
	_, err := os.Stat(s.Resolve(path))
	return err == nil
}

// Load returns the cached handle for path, loading the file with load on
// first use. Asking for the same path with a different asset type is an
// error.
func Load[T any](s *Store, path string, load Loader[T]) (*Handle[T], error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[path]; ok {
		h, ok := e.(*Handle[T])
		if !ok {
			return nil, fmt.Errorf("asset %s: cached with a different type", path)
		}
		return h, nil
	}

	h := &Handle[T]{path: path, load: load}
	if _, err := h.reload(s.Resolve(path)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("asset %s: %w", path, ErrNotFound)
		}
		return nil, fmt.Errorf("asset %s: %w", path, err)
	}
	s.entries[path] = h
	s.log.Debugf("loaded %s", path)
	return h, nil
}

// Len returns the number of cached assets.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Sync reloads every cached asset whose file changed since it was last
// read and returns how many were reloaded. A file that fails to reload keeps
// its previous value.
func (s *Store) Sync() int {
	s.mu.Lock()
	paths := make([]string, 0, len(s.entries))
	for p := range s.entries {
		paths = append(paths, p)
	}
	s.mu.Unlock()
	sort.Strings(paths)

	reloaded := 0
	for _, p := range paths {
		s.mu.Lock()
		e := s.entries[p]
		s.mu.Unlock()

		changed, err := e.reload(s.Resolve(p))
		if err != nil {
			s.log.Warnf("reload %s: %v", p, err)
			continue
		}
		if changed {
			s.log.Infof("reloaded %s", p)
			reloaded++
		}
	}
	return reloaded
}
