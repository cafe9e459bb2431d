package vfs

import (
	"os"
	"path/filepath"

	"github.com/Faultbox/goassimp/pkg/assimp"
)

// Dir is an OS directory. Relative names are resolved against it;
// absolute names are used as they are. Missing parent directories are
// created for files opened for writing.
type Dir string

// Open opens name with a C stdio mode mapped onto os.OpenFile flags.
func (d Dir) Open(name, mode string) (assimp.File, error) {
	m, err := parseMode(mode)
	if err != nil {
		return nil, err
	}
	p := filepath.FromSlash(name)
	if !filepath.IsAbs(p) {
		p = filepath.Join(string(d), p)
	}

	var f *os.File
	switch {
	case m.append:
		f, err = os.OpenFile(p, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o644)
	case m.write && mode[0] == 'r':
		f, err = os.OpenFile(p, os.O_RDWR, 0)
	case m.write:
		if err = os.MkdirAll(filepath.Dir(p), 0o755); err == nil {
			f, err = os.Create(p)
		}
	default:
		f, err = os.Open(p)
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}
