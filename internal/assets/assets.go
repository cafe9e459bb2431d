// Package assets resolves model files and their companions (materials,
// textures) from zip archives and the local file system.
package assets

import (
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/Faultbox/goassimp/pkg/assimp"
	"github.com/Faultbox/goassimp/pkg/assimp/vfs"
)

// Manager handles asset loading from archives, falling back to a base
// file system. It implements assimp.FileSystem, so an importer can read a
// model and its companion files through it.
type Manager struct {
	archives []*vfs.Archive
	paths    []string
	base     assimp.FileSystem
	cache    *Cache
	mu       sync.RWMutex
}

// NewManager creates a new asset manager. base may be nil, in which case
// only archives are searched and writes fail.
func NewManager(base assimp.FileSystem) *Manager {
	return &Manager{
		base:  base,
		cache: NewCache(),
	}
}

// ForModel returns a manager over archives for importing the model at
// path, and the name to import it under. A model found in an archive is
// read from there; otherwise the model and its companions are read from
// the model's directory.
func ForModel(path string, archives []string) (*Manager, string, error) {
	m := NewManager(vfs.Dir(filepath.Dir(path)))
	for _, a := range archives {
		if err := m.AddArchive(a); err != nil {
			m.Close()
			return nil, "", err
		}
	}
	if name := filepath.ToSlash(path); m.Contains(name) {
		m.base = vfs.Dir(".")
		return m, name, nil
	}
	return m, filepath.Base(path), nil
}

// AddArchive adds a zip archive to the manager.
// Archives are searched in reverse order (last added = highest priority).
func (m *Manager) AddArchive(path string) error {
	archive, err := vfs.OpenArchive(path)
	if err != nil {
		return fmt.Errorf("opening archive %s: %w", path, err)
	}

	m.mu.Lock()
	m.archives = append(m.archives, archive)
	m.paths = append(m.paths, path)
	m.mu.Unlock()

	return nil
}

// Archives returns the paths of the added archives in search order.
func (m *Manager) Archives() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := slices.Clone(m.paths)
	slices.Reverse(out)
	return out
}

// Load loads a file from the archives.
func (m *Manager) Load(path string) ([]byte, error) {
	// Check cache first
	if data, ok := m.cache.Get(path); ok {
		return data, nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	// Search archives in reverse order
	for i := len(m.archives) - 1; i >= 0; i-- {
		data, err := m.archives[i].Read(path)
		if err == nil {
			m.cache.Set(path, data)
			return data, nil
		}
	}

	return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
}

// Contains reports whether any archive holds path.
func (m *Manager) Contains(path string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, a := range m.archives {
		if a.Contains(path) {
			return true
		}
	}
	return false
}

// Open implements assimp.FileSystem. Reads come from the archives first
// and then from the base file system; writes always go to the base.
func (m *Manager) Open(name, mode string) (assimp.File, error) {
	readOnly := strings.HasPrefix(mode, "r") && !strings.Contains(mode, "+")
	if readOnly {
		if data, err := m.Load(name); err == nil {
			return vfs.ReadOnly(name, data), nil
		}
	}
	if m.base != nil {
		return m.base.Open(name, mode)
	}
	if readOnly {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return nil, &fs.PathError{Op: "open", Path: name, Err: vfs.ErrReadOnly}
}

// ReadFile reads name from the archives or, failing that, the base file
// system.
func (m *Manager) ReadFile(name string) ([]byte, error) {
	if data, err := m.Load(name); err == nil {
		return data, nil
	}
	if m.base == nil {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	f, err := m.base.Open(name, "rb")
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// CacheStats reports how many archive reads were served from the cache.
func (m *Manager) CacheStats() (hits, misses int) {
	return m.cache.Stats()
}

// Close closes all archives.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, archive := range m.archives {
		archive.Close()
	}
	m.archives = nil
	m.paths = nil
	m.cache.Clear()
}

// Cache is a simple in-memory cache for loaded assets.
type Cache struct {
	data map[string][]byte
	mu   sync.RWMutex

	// Stats
	hits   int
	misses int
}

// NewCache creates a new cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string][]byte),
	}
}

// Get retrieves an item from cache.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return data, ok
}

// Set stores an item in cache.
func (c *Cache) Set(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
}

// Clear clears the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string][]byte)
	c.hits = 0
	c.misses = 0
}

// Stats returns cache statistics.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}
