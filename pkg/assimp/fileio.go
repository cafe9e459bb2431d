package assimp

/*
#include "bridge.h"
*/
import "C"

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"runtime/cgo"
	"unsafe"
)

// FileSystem supplies the files the native library reads during an
// import and writes during an export. mode is a C fopen mode such as
// "rb" or "wb".
type FileSystem interface {
	Open(name, mode string) (File, error)
}

// File is a file handed out by a FileSystem. If it also implements
// Stat() (fs.FileInfo, error) the size is taken from there; otherwise it
// is found by seeking. Flush() error or Sync() error, when present, back
// the native flush call.
type File interface {
	io.Reader
	io.Writer
	io.Seeker
	io.Closer
}

type flusher interface{ Flush() error }
type syncer interface{ Sync() error }
type statter interface {
	Stat() (fs.FileInfo, error)
}

// fsBridge is the Go side of one aiFileIO table. It lives for a single
// import or export call and keeps the first callback error so that it can
// be reported alongside the native diagnostic.
type fsBridge struct {
	fsys FileSystem
	err  error

	// openErr is kept apart: failing to open an optional companion file
	// is routine and must not mask a later read or write error.
	openErr error
}

func (b *fsBridge) record(err error) {
	if b.err == nil && err != nil {
		b.err = err
	}
}

func (b *fsBridge) firstErr() error {
	if b == nil {
		return nil
	}
	if b.err != nil {
		return b.err
	}
	return b.openErr
}

// bridgeFile is the Go side of one aiFile table.
type bridgeFile struct {
	b    *fsBridge
	f    File
	name string
}

func (bf *bridgeFile) fail(op string, err error) {
	bf.b.record(fmt.Errorf("%s %s: %w", op, bf.name, err))
}

func fileFor(h C.uintptr_t) *bridgeFile {
	return cgo.Handle(h).Value().(*bridgeFile)
}

//export goFileOpen
func goFileOpen(h C.uintptr_t, name, mode *C.char) C.uintptr_t {
	b := cgo.Handle(h).Value().(*fsBridge)
	n := C.GoString(name)
	f, err := b.fsys.Open(n, C.GoString(mode))
	if err != nil {
		if b.openErr == nil {
			b.openErr = fmt.Errorf("open %s: %w", n, err)
		}
		return 0
	}
	return C.uintptr_t(cgo.NewHandle(&bridgeFile{b: b, f: f, name: n}))
}

//export goFileClose
func goFileClose(h C.uintptr_t) {
	bf := fileFor(h)
	if err := bf.f.Close(); err != nil {
		bf.fail("close", err)
	}
	cgo.Handle(h).Delete()
}

//export goFileRead
func goFileRead(h C.uintptr_t, buf *C.char, size, count C.size_t) C.size_t {
	if size == 0 || count == 0 {
		return 0
	}
	bf := fileFor(h)
	dst := unsafe.Slice((*byte)(unsafe.Pointer(buf)), int(size*count))
	n, err := io.ReadFull(bf.f, dst)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		bf.fail("read", err)
	}
	return C.size_t(n) / size
}

//export goFileWrite
func goFileWrite(h C.uintptr_t, buf *C.char, size, count C.size_t) C.size_t {
	if size == 0 || count == 0 {
		return 0
	}
	bf := fileFor(h)
	src := unsafe.Slice((*byte)(unsafe.Pointer(buf)), int(size*count))
	n, err := bf.f.Write(src)
	if err != nil {
		bf.fail("write", err)
	}
	return C.size_t(n) / size
}

//export goFileTell
func goFileTell(h C.uintptr_t) C.size_t {
	bf := fileFor(h)
	pos, err := bf.f.Seek(0, io.SeekCurrent)
	if err != nil {
		bf.fail("tell", err)
		return 0
	}
	return C.size_t(pos)
}

//export goFileSize
func goFileSize(h C.uintptr_t) C.size_t {
	bf := fileFor(h)
	size, err := fileSize(bf.f)
	if err != nil {
		bf.fail("size", err)
		return 0
	}
	return C.size_t(size)
}

func fileSize(f File) (int64, error) {
	if st, ok := f.(statter); ok {
		if fi, err := st.Stat(); err == nil {
			return fi.Size(), nil
		}
	}
	cur, err := f.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, err
	}
	end, err := f.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, err
	}
	if _, err := f.Seek(cur, io.SeekStart); err != nil {
		return 0, err
	}
	return end, nil
}

// goFileSeek returns 0 on success. aiOrigin matches io.Seek* whence
// values; offset is unsigned on the C side and wraps for backward seeks.
//
//export goFileSeek
func goFileSeek(h C.uintptr_t, offset C.size_t, origin C.int) C.int {
	bf := fileFor(h)
	if _, err := bf.f.Seek(int64(int(offset)), int(origin)); err != nil {
		bf.fail("seek", err)
		return -1
	}
	return 0
}

//export goFileFlush
func goFileFlush(h C.uintptr_t) {
	bf := fileFor(h)
	var err error
	switch f := bf.f.(type) {
	case flusher:
		err = f.Flush()
	case syncer:
		err = f.Sync()
	}
	if err != nil {
		bf.fail("flush", err)
	}
}
