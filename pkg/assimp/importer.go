package assimp

/*
#include "bridge.h"
*/
import "C"

import (
	"fmt"
	"runtime/cgo"
	"unsafe"

	"github.com/Faultbox/goassimp/pkg/assimp/abi"
)

// Importer accumulates post-processing flags and typed properties and
// runs imports with them. An Importer is not safe for concurrent use.
type Importer struct {
	store *C.struct_aiPropertyStore
	flags PostProcessSteps
}

// NewImporter creates an importer with an empty property store and no
// post-processing steps.
func NewImporter() *Importer {
	return &Importer{store: C.aiCreatePropertyStore()}
}

// Close releases the property store. Calling Close more than once is a
// no-op. Scenes imported earlier stay valid.
func (imp *Importer) Close() {
	if imp.store == nil {
		return
	}
	C.aiReleasePropertyStore(imp.store)
	imp.store = nil
}

func (imp *Importer) mustStore() *C.struct_aiPropertyStore {
	if imp.store == nil {
		panic(ErrClosed)
	}
	return imp.store
}

// Flags returns the accumulated post-processing mask.
func (imp *Importer) Flags() PostProcessSteps {
	return imp.flags
}

// Enable sets steps in the mask without touching any property.
func (imp *Importer) Enable(steps PostProcessSteps) {
	imp.flags |= steps
}

// Disable clears steps from the mask. Properties written for them are
// left in place.
func (imp *Importer) Disable(steps PostProcessSteps) {
	imp.flags &^= steps
}

func (imp *Importer) setStep(step PostProcessSteps, enable bool) {
	if enable {
		imp.Enable(step)
	} else {
		imp.Disable(step)
	}
}

// Set writes each property into the store.
func (imp *Importer) Set(props ...Property) {
	for _, p := range props {
		p.apply(imp)
	}
}

// SetBool writes a boolean property (stored as 0 or 1).
func (imp *Importer) SetBool(name BoolProperty, v bool) {
	var i int32
	if v {
		i = 1
	}
	imp.setInt(string(name), i)
}

// SetInt writes an integer property.
func (imp *Importer) SetInt(name IntProperty, v int32) {
	imp.setInt(string(name), v)
}

func (imp *Importer) setInt(name string, v int32) {
	cs := C.CString(name)
	defer C.free(unsafe.Pointer(cs))
	C.aiSetImportPropertyInteger(imp.mustStore(), cs, C.int(v))
}

// SetFloat writes a float property.
func (imp *Importer) SetFloat(name FloatProperty, v float32) {
	cs := C.CString(string(name))
	defer C.free(unsafe.Pointer(cs))
	C.setPropertyFloat(imp.mustStore(), cs, C.float(v))
}

// SetString writes a string property. It panics if v is 1024 bytes or
// longer.
func (imp *Importer) SetString(name StringProperty, v string) {
	store := imp.mustStore()
	s := abi.NewString(v)
	cs := C.CString(string(name))
	defer C.free(unsafe.Pointer(cs))
	C.aiSetImportPropertyString(store, cs, (*C.struct_aiString)(unsafe.Pointer(&s)))
}

// SetMatrix writes a matrix property.
func (imp *Importer) SetMatrix(name MatrixProperty, m abi.Matrix4x4) {
	cs := C.CString(string(name))
	defer C.free(unsafe.Pointer(cs))
	C.aiSetImportPropertyMatrix(imp.mustStore(), cs, (*C.struct_aiMatrix4x4)(unsafe.Pointer(&m)))
}

// ReadFile imports the file at path with the accumulated configuration.
func (imp *Importer) ReadFile(path string) (*Scene, error) {
	store := imp.mustStore()
	cs := C.CString(path)
	defer C.free(unsafe.Pointer(cs))

	p := C.aiImportFileExWithProperties(cs, C.uint(imp.flags), nil, store)
	if p == nil {
		return nil, &ImportError{Source: path, Msg: lastError()}
	}
	return newScene(p), nil
}

// ReadMemory imports a model held in data. hint is the file extension
// (without dot) used to pick the format when it cannot be detected from
// the content; it may be empty.
func (imp *Importer) ReadMemory(data []byte, hint string) (*Scene, error) {
	store := imp.mustStore()
	if len(data) == 0 {
		return nil, &ImportError{Source: "<memory>", Msg: "empty buffer"}
	}
	if uint64(len(data)) > uint64(^uint32(0)) {
		return nil, &ImportError{Source: "<memory>", Msg: fmt.Sprintf("buffer of %d bytes exceeds 4 GiB", len(data))}
	}

	buf := C.CBytes(data)
	defer C.free(buf)
	ch := C.CString(hint)
	defer C.free(unsafe.Pointer(ch))

	p := C.aiImportFileFromMemoryWithProperties((*C.char)(buf), C.uint(len(data)), C.uint(imp.flags), ch, store)
	if p == nil {
		return nil, &ImportError{Source: "<memory>", Msg: lastError()}
	}
	return newScene(p), nil
}

// ReadFileFrom imports path through fsys. Every file the importer opens,
// including companion files such as .mtl, is requested from fsys.
func (imp *Importer) ReadFileFrom(fsys FileSystem, path string) (*Scene, error) {
	store := imp.mustStore()
	b := &fsBridge{fsys: fsys}
	h := cgo.NewHandle(b)
	defer h.Delete()

	io := C.newBridgeFileIO(C.uintptr_t(h))
	if io == nil {
		return nil, &ImportError{Source: path, Msg: "out of memory"}
	}
	defer C.freeBridgeFileIO(io)

	cs := C.CString(path)
	defer C.free(unsafe.Pointer(cs))

	p := C.aiImportFileExWithProperties(cs, C.uint(imp.flags), io, store)
	if p == nil {
		return nil, &ImportError{Source: path, Msg: lastError(), Cause: b.firstErr()}
	}
	return newScene(p), nil
}

// ApplyPostProcessing runs the importer's current flags on an already
// imported scene.
//
// On success the same *Scene is returned and stays owned by the caller.
// On failure the native library has already freed the scene: s is
// disarmed (Release becomes a no-op, views panic) and a *PostProcessError
// with Released set is returned.
//
// Only flags reach the native call. A property changed after the scene
// was imported takes effect only if its step was not part of the import
// flags; to re-run a step with new parameters, disable it before the
// import and enable it here.
func (imp *Importer) ApplyPostProcessing(s *Scene) (*Scene, error) {
	raw := s.o.cscene()
	if p := C.aiApplyPostProcessing(raw, C.uint(imp.flags)); p != nil {
		return s, nil
	}
	s.o.disarm()
	return nil, &PostProcessError{Steps: imp.flags, Released: true}
}
