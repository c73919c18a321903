// Package assets resolves the few files the demo reads at startup: the two
// shader sources and the mesh model. Files come from layered sources; an
// on-disk directory added later overrides the embedded defaults.
package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
)

// ErrNotFound is returned when no source provides the requested file.
var ErrNotFound = errors.New("asset not found")

// source is one layer of the lookup.
type source struct {
	name string
	fsys fs.FS
	dir  string // non-empty for on-disk sources
}

// Manager handles asset lookup across sources.
type Manager struct {
	sources []source
	cache   *cache
	mu      sync.RWMutex
}

// NewManager creates a manager with no sources.
func NewManager() *Manager {
	return &Manager{
		cache: newCache(),
	}
}

// NewDefaultManager creates a manager backed by the embedded defaults.
func NewDefaultManager() *Manager {
	m := NewManager()
	m.AddFS("embedded", Embedded())
	return m
}

// NewOverlayManager creates a default manager with dir layered on top.
// An empty dir yields the embedded defaults only.
func NewOverlayManager(dir string) (*Manager, error) {
	m := NewDefaultManager()
	if dir == "" {
		return m, nil
	}
	if err := m.AddDir(dir); err != nil {
		return nil, err
	}
	return m, nil
}

// AddFS adds a filesystem source. Sources are searched in reverse order
// (last added = highest priority).
func (m *Manager) AddFS(name string, fsys fs.FS) {
	m.mu.Lock()
	m.sources = append(m.sources, source{name: name, fsys: fsys})
	m.mu.Unlock()
	m.cache.Clear()
}

// AddDir adds an on-disk directory as the highest-priority source.
func (m *Manager) AddDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("asset dir %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("asset dir %s: not a directory", dir)
	}

	m.mu.Lock()
	m.sources = append(m.sources, source{name: dir, fsys: os.DirFS(dir), dir: dir})
	m.mu.Unlock()
	m.cache.Clear()
	return nil
}

// Dirs returns the on-disk directories, highest priority first.
func (m *Manager) Dirs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var dirs []string
	for i := len(m.sources) - 1; i >= 0; i-- {
		if m.sources[i].dir != "" {
			dirs = append(dirs, m.sources[i].dir)
		}
	}
	return dirs
}

// Load returns the contents of name from the highest-priority source that
// has it.
func (m *Manager) Load(name string) ([]byte, error) {
	data, _, err := m.LoadWithSource(name)
	return data, err
}

// LoadWithSource is like Load and also reports which source served the file.
func (m *Manager) LoadWithSource(name string) ([]byte, string, error) {
	if e, ok := m.cache.Get(name); ok {
		return e.data, e.source, nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := len(m.sources) - 1; i >= 0; i-- {
		src := m.sources[i]
		data, err := fs.ReadFile(src.fsys, name)
		if err == nil {
			m.cache.Set(name, entry{data: data, source: src.name})
			return data, src.name, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, "", fmt.Errorf("reading %s from %s: %w", name, src.name, err)
		}
	}

	return nil, "", fmt.Errorf("%w: %s", ErrNotFound, name)
}

// Invalidate drops a cached file so the next Load reads it again.
func (m *Manager) Invalidate(name string) {
	m.cache.Delete(name)
}

// Close drops all sources and cached data.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sources = nil
	m.cache.Clear()
}

type entry struct {
	data   []byte
	source string
}

// cache is a simple in-memory cache for loaded assets.
type cache struct {
	data map[string]entry
	mu   sync.Mutex
}

// newCache creates a new cache.
func newCache() *cache {
	return &cache{
		data: make(map[string]entry),
	}
}

// Get retrieves an item from cache.
func (c *cache) Get(key string) (entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.data[key]
	return e, ok
}

// Set stores an item in cache.
func (c *cache) Set(key string, e entry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = e
}

// Delete removes an item from cache.
func (c *cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
}

// Clear clears the cache.
func (c *cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string]entry)
}
