// Package vfs provides file systems the importer and exporter can work
// through instead of the operating system: an in-memory store, adapters
// for io/fs and OS directories, and read-only zip archives.
package vfs

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/Faultbox/goassimp/pkg/assimp"
)

// ErrReadOnly is returned when a write mode is requested from a read-only
// file system.
var ErrReadOnly = errors.New("read-only file system")

type openMode struct {
	write  bool
	append bool
}

// parseMode interprets a C fopen mode ("rb", "wt", "a+", ...).
func parseMode(mode string) (openMode, error) {
	if mode == "" {
		return openMode{}, nil
	}
	var m openMode
	switch mode[0] {
	case 'r':
		m.write = strings.ContainsRune(mode, '+')
	case 'w':
		m.write = true
	case 'a':
		m.write = true
		m.append = true
	default:
		return openMode{}, fmt.Errorf("invalid open mode %q", mode)
	}
	return m, nil
}

// normalizePath turns a name handed out by the native library into a
// clean slash-separated relative path.
func normalizePath(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = path.Clean("/" + name)
	return strings.TrimPrefix(name, "/")
}

// readFile serves an immutable byte slice.
type readFile struct {
	*bytes.Reader
	name string
}

func newReadFile(name string, data []byte) *readFile {
	return &readFile{Reader: bytes.NewReader(data), name: name}
}

// ReadOnly returns a read-only file serving data. Writes fail with
// ErrReadOnly.
func ReadOnly(name string, data []byte) assimp.File {
	return newReadFile(normalizePath(name), data)
}

func (f *readFile) Write([]byte) (int, error) {
	return 0, &fs.PathError{Op: "write", Path: f.name, Err: ErrReadOnly}
}

func (f *readFile) Close() error { return nil }

var _ assimp.File = (*readFile)(nil)

// fsAdapter serves an fs.FS read-only.
type fsAdapter struct {
	fsys fs.FS
}

// FromFS exposes fsys, for instance an embed.FS or os.DirFS, to the
// importer. Every file is read into memory when opened.
func FromFS(fsys fs.FS) assimp.FileSystem {
	return fsAdapter{fsys: fsys}
}

func (a fsAdapter) Open(name, mode string) (assimp.File, error) {
	m, err := parseMode(mode)
	if err != nil {
		return nil, err
	}
	clean := normalizePath(name)
	if m.write {
		return nil, &fs.PathError{Op: "open", Path: clean, Err: ErrReadOnly}
	}
	data, err := fs.ReadFile(a.fsys, clean)
	if err != nil {
		return nil, err
	}
	return newReadFile(clean, data), nil
}

// seekOffset resolves a Seek request against a file of the given size.
func seekOffset(pos, size, offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = pos + offset
	case io.SeekEnd:
		abs = size + offset
	default:
		return 0, errors.New("invalid whence")
	}
	if abs < 0 {
		return 0, errors.New("negative position")
	}
	return abs, nil
}
