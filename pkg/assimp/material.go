package assimp

/*
#include "bridge.h"
*/
import "C"

import (
	"fmt"
	"iter"
	"unsafe"

	"github.com/Faultbox/goassimp/pkg/assimp/abi"
	"github.com/Faultbox/goassimp/pkg/math"
)

// TextureType is the aiTextureType semantic of a material texture slot.
type TextureType uint32

const (
	TextureNone TextureType = iota
	TextureDiffuse
	TextureSpecular
	TextureAmbient
	TextureEmissive
	TextureHeight
	TextureNormals
	TextureShininess
	TextureOpacity
	TextureDisplacement
	TextureLightmap
	TextureReflection
	TextureUnknown
)

var textureTypeNames = [...]string{
	"None", "Diffuse", "Specular", "Ambient", "Emissive", "Height", "Normals",
	"Shininess", "Opacity", "Displacement", "Lightmap", "Reflection", "Unknown",
}

func (t TextureType) String() string {
	if int(t) < len(textureTypeNames) {
		return textureTypeNames[t]
	}
	return fmt.Sprintf("Unknown(%d)", uint32(t))
}

// MaterialKey identifies a material property by name, texture semantic and
// texture index. Non-texture keys leave Semantic and Index zero.
type MaterialKey struct {
	Name     string
	Semantic TextureType
	Index    uint32
}

// Common material keys (AI_MATKEY_*).
var (
	MatKeyName              = MaterialKey{Name: "?mat.name"}
	MatKeyTwoSided          = MaterialKey{Name: "$mat.twosided"}
	MatKeyShadingModel      = MaterialKey{Name: "$mat.shadingm"}
	MatKeyEnableWireframe   = MaterialKey{Name: "$mat.wireframe"}
	MatKeyBlendFunc         = MaterialKey{Name: "$mat.blend"}
	MatKeyOpacity           = MaterialKey{Name: "$mat.opacity"}
	MatKeyBumpScaling       = MaterialKey{Name: "$mat.bumpscaling"}
	MatKeyShininess         = MaterialKey{Name: "$mat.shininess"}
	MatKeyReflectivity      = MaterialKey{Name: "$mat.reflectivity"}
	MatKeyShininessStrength = MaterialKey{Name: "$mat.shinpercent"}
	MatKeyRefracti          = MaterialKey{Name: "$mat.refracti"}
	MatKeyColorDiffuse      = MaterialKey{Name: "$clr.diffuse"}
	MatKeyColorAmbient      = MaterialKey{Name: "$clr.ambient"}
	MatKeyColorSpecular     = MaterialKey{Name: "$clr.specular"}
	MatKeyColorEmissive     = MaterialKey{Name: "$clr.emissive"}
	MatKeyColorTransparent  = MaterialKey{Name: "$clr.transparent"}
	MatKeyColorReflective   = MaterialKey{Name: "$clr.reflective"}
)

// Material is a view of one material. Keyed lookups are answered by the
// native library.
type Material struct {
	o *owner
	p *abi.Material
}

func (m Material) raw() *abi.Material {
	m.o.check()
	return m.p
}

func (m Material) cmat() *C.struct_aiMaterial {
	return (*C.struct_aiMaterial)(unsafe.Pointer(m.raw()))
}

// Name returns the material name, or "" when it has none.
func (m Material) Name() string {
	s, _ := m.GetString(MatKeyName)
	return s
}

// MaterialProperty is a copied raw material property.
type MaterialProperty struct {
	Key      string
	Semantic TextureType
	Index    uint32
	Type     int32 // abi.Property*
	Data     []byte
}

// NumProperties returns the number of raw properties.
func (m Material) NumProperties() int {
	return int(m.raw().NumProperties)
}

// Property returns a copy of raw property i.
func (m Material) Property(i int) MaterialProperty {
	r := m.raw()
	return copyProperty(index(r.Properties, r.NumProperties, i))
}

// Properties iterates over the raw properties in storage order.
func (m Material) Properties() iter.Seq2[int, MaterialProperty] {
	return each(m.o, func() (**abi.MaterialProperty, uint32) { r := m.raw(); return r.Properties, r.NumProperties },
		copyProperty)
}

func copyProperty(p *abi.MaterialProperty) MaterialProperty {
	mp := MaterialProperty{
		Key:      p.Key.String(),
		Semantic: TextureType(p.Semantic),
		Index:    p.Index,
		Type:     p.Type,
	}
	if p.Data != nil && p.DataLength > 0 {
		mp.Data = append([]byte(nil), unsafe.Slice(p.Data, p.DataLength)...)
	}
	return mp
}

func keyError(key MaterialKey) error {
	return fmt.Errorf("%w: %s[%s,%d]", ErrMaterialKey, key.Name, key.Semantic, key.Index)
}

// GetString looks up a string property.
func (m Material) GetString(key MaterialKey) (string, error) {
	cm := m.cmat()
	var out abi.String
	ck := C.CString(key.Name)
	defer C.free(unsafe.Pointer(ck))
	if C.materialString(cm, ck, C.uint(key.Semantic), C.uint(key.Index), (*C.struct_aiString)(unsafe.Pointer(&out))) != 0 {
		return "", keyError(key)
	}
	return out.String(), nil
}

// GetColor looks up a color property. Three-component colors come back
// with alpha 1.
func (m Material) GetColor(key MaterialKey) (math.Vec4, error) {
	cm := m.cmat()
	var out abi.Color4D
	ck := C.CString(key.Name)
	defer C.free(unsafe.Pointer(ck))
	if C.materialColor(cm, ck, C.uint(key.Semantic), C.uint(key.Index), (*C.struct_aiColor4D)(unsafe.Pointer(&out))) != 0 {
		return math.Vec4{}, keyError(key)
	}
	return out.Vec4(), nil
}

// GetFloats reads up to limit floats of a property.
func (m Material) GetFloats(key MaterialKey, limit int) ([]float32, error) {
	if limit <= 0 {
		return nil, nil
	}
	cm := m.cmat()
	out := make([]float32, limit)
	n := C.uint(limit)
	ck := C.CString(key.Name)
	defer C.free(unsafe.Pointer(ck))
	if C.materialFloatArray(cm, ck, C.uint(key.Semantic), C.uint(key.Index), (*C.float)(unsafe.Pointer(&out[0])), &n) != 0 {
		return nil, keyError(key)
	}
	return out[:n], nil
}

// GetFloat reads a single float property.
func (m Material) GetFloat(key MaterialKey) (float32, error) {
	v, err := m.GetFloats(key, 1)
	if err != nil {
		return 0, err
	}
	if len(v) == 0 {
		return 0, keyError(key)
	}
	return v[0], nil
}

// GetInts reads up to limit integers of a property.
func (m Material) GetInts(key MaterialKey, limit int) ([]int32, error) {
	if limit <= 0 {
		return nil, nil
	}
	cm := m.cmat()
	out := make([]int32, limit)
	n := C.uint(limit)
	ck := C.CString(key.Name)
	defer C.free(unsafe.Pointer(ck))
	if C.materialIntegerArray(cm, ck, C.uint(key.Semantic), C.uint(key.Index), (*C.int)(unsafe.Pointer(&out[0])), &n) != 0 {
		return nil, keyError(key)
	}
	return out[:n], nil
}

// GetInt reads a single integer property.
func (m Material) GetInt(key MaterialKey) (int32, error) {
	v, err := m.GetInts(key, 1)
	if err != nil {
		return 0, err
	}
	if len(v) == 0 {
		return 0, keyError(key)
	}
	return v[0], nil
}

// TextureCount returns how many textures of type t the material has.
func (m Material) TextureCount(t TextureType) int {
	return int(C.materialTextureCount(m.cmat(), C.int(t)))
}

// TextureMapMode is aiTextureMapMode.
type TextureMapMode int32

const (
	MapModeWrap   TextureMapMode = 0
	MapModeClamp  TextureMapMode = 1
	MapModeMirror TextureMapMode = 2
	MapModeDecal  TextureMapMode = 3
)

// TextureInfo describes one texture slot of a material.
type TextureInfo struct {
	Path     string // file path, or "*N" for embedded texture N
	Mapping  int32  // aiTextureMapping
	UVIndex  uint32
	Blend    float32
	Op       int32  // aiTextureOp
	MapModes [2]TextureMapMode
	Flags    uint32
}

// Embedded reports whether Path refers to an embedded texture and
// returns its index in the scene's texture array.
func (ti TextureInfo) Embedded() (int, bool) {
	if len(ti.Path) < 2 || ti.Path[0] != '*' {
		return 0, false
	}
	var i int
	if _, err := fmt.Sscanf(ti.Path[1:], "%d", &i); err != nil {
		return 0, false
	}
	return i, true
}

// Texture returns texture slot i of type t.
func (m Material) Texture(t TextureType, i int) (TextureInfo, error) {
	cm := m.cmat()
	var (
		path    abi.String
		mapping C.int
		uv      C.uint
		blend   C.float
		op      C.int
		modes   [2]C.int
		flags   C.uint
	)
	ret := C.materialTexture(cm, C.int(t), C.uint(i), (*C.struct_aiString)(unsafe.Pointer(&path)),
		&mapping, &uv, &blend, &op, &modes[0], &flags)
	if ret != 0 {
		return TextureInfo{}, keyError(MaterialKey{Name: "$tex.file", Semantic: t, Index: uint32(i)})
	}
	return TextureInfo{
		Path:     path.String(),
		Mapping:  int32(mapping),
		UVIndex:  uint32(uv),
		Blend:    float32(blend),
		Op:       int32(op),
		MapModes: [2]TextureMapMode{TextureMapMode(modes[0]), TextureMapMode(modes[1])},
		Flags:    uint32(flags),
	}, nil
}
