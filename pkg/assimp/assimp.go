// Package assimp binds the Open Asset Import Library (Assimp 3.x) C API.
//
// Importing goes through an Importer, which accumulates post-processing
// steps and typed properties and hands back a *Scene. The scene and every
// view obtained from it (Node, Mesh, Material, ...) borrow memory owned by
// the native library; they stay valid until the scene is released and
// panic on access afterwards.
//
// A *Scene returned by an import is read-only. Copy produces a
// *MutableScene that is released through a different native call. Both
// satisfy SceneReader.
//
// All calls block until the native library returns. The package starts no
// goroutines.
package assimp

/*
#cgo LDFLAGS: -lassimp
#include "bridge.h"
*/
import "C"

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/Faultbox/goassimp/pkg/assimp/abi"
)

// VersionInfo describes the linked native library.
type VersionInfo struct {
	Major    uint32
	Minor    uint32
	Revision uint32
	Flags    uint32
}

// String returns "major.minor.revision".
func (v VersionInfo) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Revision)
}

// Version reports the version of the linked libassimp.
func Version() VersionInfo {
	return VersionInfo{
		Major:    uint32(C.aiGetVersionMajor()),
		Minor:    uint32(C.aiGetVersionMinor()),
		Revision: uint32(C.aiGetVersionRevision()),
		Flags:    uint32(C.aiGetCompileFlags()),
	}
}

// LegalString returns the library's copyright notice.
func LegalString() string {
	return C.GoString(C.aiGetLegalString())
}

// Extensions lists the file extensions the library can import, lower-case
// and without the leading "*." (e.g. "obj", "fbx").
func Extensions() []string {
	var list abi.String
	C.aiGetExtensionList((*C.struct_aiString)(unsafe.Pointer(&list)))
	return splitExtensionList(list.String())
}

func splitExtensionList(s string) []string {
	var exts []string
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		part = strings.TrimLeft(part, "*.")
		if part != "" {
			exts = append(exts, part)
		}
	}
	return exts
}

// IsExtensionSupported reports whether a file with the given extension
// can be imported. The leading dot is optional.
func IsExtensionSupported(ext string) bool {
	cs := C.CString(normalizeExt(ext))
	defer C.free(unsafe.Pointer(cs))
	return C.aiIsExtensionSupported(cs) != 0
}

func normalizeExt(ext string) string {
	ext = strings.TrimPrefix(strings.TrimSpace(ext), "*")
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return strings.ToLower(ext)
}

// ImporterInfo describes the importer responsible for one extension.
type ImporterInfo struct {
	Name       string
	Author     string
	Maintainer string
	Comments   string
	Flags      uint32
	MinVersion [2]uint32
	MaxVersion [2]uint32
	Extensions []string
}

// LookupImporter returns the description of the importer handling ext.
func LookupImporter(ext string) (ImporterInfo, bool) {
	cs := C.CString(strings.TrimPrefix(normalizeExt(ext), "."))
	defer C.free(unsafe.Pointer(cs))

	p := C.aiGetImporterDesc(cs)
	if p == nil {
		return ImporterInfo{}, false
	}
	d := (*abi.ImporterDesc)(unsafe.Pointer(p))
	return ImporterInfo{
		Name:       cstring(d.Name),
		Author:     cstring(d.Author),
		Maintainer: cstring(d.Maintainer),
		Comments:   cstring(d.Comments),
		Flags:      d.Flags,
		MinVersion: [2]uint32{d.MinMajor, d.MinMinor},
		MaxVersion: [2]uint32{d.MaxMajor, d.MaxMinor},
		Extensions: strings.Fields(cstring(d.FileExtensions)),
	}, true
}

// lastError returns the library's last error string, or "unknown error"
// when it has none.
func lastError() string {
	if msg := cstring((*byte)(unsafe.Pointer(C.aiGetErrorString()))); msg != "" {
		return msg
	}
	return "unknown error"
}

func cstring(p *byte) string {
	if p == nil {
		return ""
	}
	return C.GoString((*C.char)(unsafe.Pointer(p)))
}

// DecomposeMatrix splits a transformation into scaling, rotation and
// translation using the native implementation.
func DecomposeMatrix(m abi.Matrix4x4) (scaling abi.Vector3D, rotation abi.Quaternion, position abi.Vector3D) {
	C.aiDecomposeMatrix(
		(*C.struct_aiMatrix4x4)(unsafe.Pointer(&m)),
		(*C.struct_aiVector3D)(unsafe.Pointer(&scaling)),
		(*C.struct_aiQuaternion)(unsafe.Pointer(&rotation)),
		(*C.struct_aiVector3D)(unsafe.Pointer(&position)),
	)
	return scaling, rotation, position
}
