package assimp

/*
#include "bridge.h"
*/
import "C"

import (
	"iter"
	"runtime/cgo"
	"sync"
	"unsafe"

	"github.com/Faultbox/goassimp/pkg/assimp/abi"
)

// ExportFormat describes one export format offered by the library.
type ExportFormat struct {
	ID          string
	Description string
	Extension   string
}

// ExportFormats lists the available export formats in library order.
func ExportFormats() []ExportFormat {
	n := int(C.aiGetExportFormatCount())
	out := make([]ExportFormat, 0, n)
	for i := range n {
		p := C.aiGetExportFormatDescription(C.size_t(i))
		if p == nil {
			continue
		}
		d := (*abi.ExportFormatDesc)(unsafe.Pointer(p))
		out = append(out, ExportFormat{
			ID:          cstring(d.ID),
			Description: cstring(d.Description),
			Extension:   cstring(d.FileExtension),
		})
	}
	return out
}

// LookupExportFormat returns the export format with the given id.
func LookupExportFormat(id string) (ExportFormat, bool) {
	for _, f := range ExportFormats() {
		if f.ID == id {
			return f, true
		}
	}
	return ExportFormat{}, false
}

func checkFormat(format, target string) error {
	if _, ok := LookupExportFormat(format); !ok {
		return &ExportError{Format: format, Target: target, Msg: "no such format", Cause: ErrUnknownFormat}
	}
	return nil
}

// Export writes s to path in the format with id format ("obj", "collada",
// "stl", ...). steps are post-processing steps run on a temporary copy
// before writing; the scene itself is not modified. A failed export may
// leave a partial file behind.
func Export(s SceneReader, format, path string, steps PostProcessSteps) error {
	if err := checkFormat(format, path); err != nil {
		return err
	}
	return export(s, format, path, nil, steps, nil)
}

// ExportTo is Export with every output file created through fsys.
func ExportTo(s SceneReader, fsys FileSystem, format, path string, steps PostProcessSteps) error {
	if err := checkFormat(format, path); err != nil {
		return err
	}
	b := &fsBridge{fsys: fsys}
	h := cgo.NewHandle(b)
	defer h.Delete()

	io := C.newBridgeFileIO(C.uintptr_t(h))
	if io == nil {
		return &ExportError{Format: format, Target: path, Msg: "out of memory"}
	}
	defer C.freeBridgeFileIO(io)
	return export(s, format, path, io, steps, b)
}

func export(s SceneReader, format, path string, io *C.struct_aiFileIO, steps PostProcessSteps, b *fsBridge) error {
	raw := s.core().o.cscene()
	cf := C.CString(format)
	defer C.free(unsafe.Pointer(cf))
	cp := C.CString(path)
	defer C.free(unsafe.Pointer(cp))

	switch ret := C.exportScene(raw, cf, cp, io, C.uint(steps)); int32(ret) {
	case abi.ReturnSuccess:
		return nil
	case abi.ReturnOutOfMemory:
		return &ExportError{Format: format, Target: path, Msg: "out of memory", Cause: b.firstErr()}
	default:
		return &ExportError{Format: format, Target: path, Msg: "exporter failed", Cause: b.firstErr()}
	}
}

// ExportBlob exports s to memory. The result may hold several named parts
// (a model and its material library, for instance) and must be released.
func ExportBlob(s SceneReader, format string, steps PostProcessSteps) (*Blob, error) {
	if err := checkFormat(format, "<memory>"); err != nil {
		return nil, err
	}
	raw := s.core().o.cscene()
	cf := C.CString(format)
	defer C.free(unsafe.Pointer(cf))

	p := C.aiExportSceneToBlob(raw, cf, C.uint(steps))
	if p == nil {
		return nil, &ExportError{Format: format, Target: "<memory>", Msg: "exporter failed"}
	}
	return &Blob{head: (*abi.ExportDataBlob)(unsafe.Pointer(p))}, nil
}

// BlobPart is one named buffer of a Blob. The first part is unnamed; the
// others carry the file extension they would have on disk.
type BlobPart struct {
	Name string
	Data []byte
}

// Blob is the in-memory result of ExportBlob.
type Blob struct {
	once sync.Once
	head *abi.ExportDataBlob
}

func (b *Blob) check() *abi.ExportDataBlob {
	if b.head == nil {
		panic(ErrReleased)
	}
	return b.head
}

// Data returns a copy of the first part.
func (b *Blob) Data() []byte {
	return blobData(b.check())
}

// Parts iterates over every part of the blob, copying each buffer.
func (b *Blob) Parts() iter.Seq2[int, BlobPart] {
	return func(yield func(int, BlobPart) bool) {
		i := 0
		for p := b.check(); p != nil; p = p.Next {
			if !yield(i, BlobPart{Name: p.Name.String(), Data: blobData(p)}) {
				return
			}
			b.check()
			i++
		}
	}
}

func blobData(p *abi.ExportDataBlob) []byte {
	if p.Data == nil || p.Size == 0 {
		return nil
	}
	return C.GoBytes(p.Data, C.int(p.Size))
}

// Release frees the native blob. Calling it again is a no-op.
func (b *Blob) Release() {
	b.once.Do(func() {
		if b.head != nil {
			C.aiReleaseExportBlob((*C.struct_aiExportDataBlob)(unsafe.Pointer(b.head)))
			b.head = nil
		}
	})
}
