package vfs

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"slices"
	"strings"

	"github.com/Faultbox/goassimp/pkg/assimp"
)

// Archive is a read-only zip archive of model files. Lookups fall back to
// a case-insensitive match, since models authored on Windows often
// reference companion files with the wrong case.
type Archive struct {
	zr    *zip.ReadCloser
	files map[string]*zip.File
	fold  map[string]*zip.File
}

// OpenArchive opens the zip file at path.
func OpenArchive(path string) (*Archive, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("opening archive: %w", err)
	}
	a := &Archive{
		zr:    zr,
		files: make(map[string]*zip.File, len(zr.File)),
		fold:  make(map[string]*zip.File, len(zr.File)),
	}
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		name := normalizePath(f.Name)
		a.files[name] = f
		a.fold[strings.ToLower(name)] = f
	}
	return a, nil
}

// Close closes the underlying archive file.
func (a *Archive) Close() error {
	return a.zr.Close()
}

// List returns all file paths in the archive, sorted.
func (a *Archive) List() []string {
	result := make([]string, 0, len(a.files))
	for name := range a.files {
		result = append(result, name)
	}
	slices.Sort(result)
	return result
}

// Contains checks if a file exists.
func (a *Archive) Contains(name string) bool {
	_, ok := a.lookup(name)
	return ok
}

func (a *Archive) lookup(name string) (*zip.File, bool) {
	clean := normalizePath(name)
	if f, ok := a.files[clean]; ok {
		return f, true
	}
	f, ok := a.fold[strings.ToLower(clean)]
	return f, ok
}

// Read decompresses a file from the archive.
func (a *Archive) Read(name string) ([]byte, error) {
	f, ok := a.lookup(name)
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// Open serves archive members for reading; write modes fail with
// ErrReadOnly.
func (a *Archive) Open(name, mode string) (assimp.File, error) {
	m, err := parseMode(mode)
	if err != nil {
		return nil, err
	}
	if m.write {
		return nil, &fs.PathError{Op: "open", Path: name, Err: ErrReadOnly}
	}
	data, err := a.Read(name)
	if err != nil {
		return nil, err
	}
	return newReadFile(normalizePath(name), data), nil
}
