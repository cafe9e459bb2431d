package vfs

import (
	"io"
	"io/fs"
	"maps"
	"slices"
	"sync"

	"github.com/Faultbox/goassimp/pkg/assimp"
)

// MemFS is an in-memory file system. Files written through it become
// visible when they are closed. It is safe for concurrent use.
type MemFS struct {
	mu    sync.RWMutex
	files map[string][]byte
}

// NewMemFS returns an empty MemFS.
func NewMemFS() *MemFS {
	return &MemFS{files: make(map[string][]byte)}
}

// Add stores a copy of data under name, replacing any previous file.
func (m *MemFS) Add(name string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[normalizePath(name)] = slices.Clone(data)
}

// ReadFile returns a copy of the named file.
func (m *MemFS) ReadFile(name string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.files[normalizePath(name)]
	return slices.Clone(data), ok
}

// List returns the stored names in sorted order.
func (m *MemFS) List() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Sorted(maps.Keys(m.files))
}

// Open opens name with a C stdio mode. Modes starting with 'r' require
// the file to exist.
func (m *MemFS) Open(name, mode string) (assimp.File, error) {
	om, err := parseMode(mode)
	if err != nil {
		return nil, err
	}
	clean := normalizePath(name)

	m.mu.RLock()
	data, ok := m.files[clean]
	m.mu.RUnlock()

	if !ok && (!om.write || mode[0] == 'r') {
		return nil, &fs.PathError{Op: "open", Path: clean, Err: fs.ErrNotExist}
	}
	if !om.write {
		return newReadFile(clean, data), nil
	}
	f := &memFile{fs: m, name: clean}
	if om.append || mode[0] == 'r' {
		f.buf = slices.Clone(data)
	}
	if om.append {
		f.pos = int64(len(f.buf))
	}
	return f, nil
}

// memFile is a writable file that is committed to its MemFS on Close.
type memFile struct {
	fs     *MemFS
	name   string
	buf    []byte
	pos    int64
	closed bool
}

func (f *memFile) Read(p []byte) (int, error) {
	if f.closed {
		return 0, fs.ErrClosed
	}
	if f.pos >= int64(len(f.buf)) {
		return 0, io.EOF
	}
	n := copy(p, f.buf[f.pos:])
	f.pos += int64(n)
	return n, nil
}

func (f *memFile) Write(p []byte) (int, error) {
	if f.closed {
		return 0, fs.ErrClosed
	}
	end := f.pos + int64(len(p))
	if end > int64(len(f.buf)) {
		f.buf = append(f.buf, make([]byte, end-int64(len(f.buf)))...)
	}
	copy(f.buf[f.pos:], p)
	f.pos = end
	return len(p), nil
}

func (f *memFile) Seek(offset int64, whence int) (int64, error) {
	abs, err := seekOffset(f.pos, int64(len(f.buf)), offset, whence)
	if err != nil {
		return 0, &fs.PathError{Op: "seek", Path: f.name, Err: err}
	}
	f.pos = abs
	return abs, nil
}

func (f *memFile) Close() error {
	if f.closed {
		return fs.ErrClosed
	}
	f.closed = true
	f.fs.mu.Lock()
	f.fs.files[f.name] = f.buf
	f.fs.mu.Unlock()
	return nil
}
