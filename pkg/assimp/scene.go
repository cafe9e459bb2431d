package assimp

/*
#include "bridge.h"
*/
import "C"

import (
	"iter"
	"unsafe"

	"github.com/Faultbox/goassimp/pkg/assimp/abi"
)

// owner tracks the lifetime of one native scene. Every view carries a
// pointer to its owner and checks it before touching native memory.
type owner struct {
	scene *abi.Scene
	live  bool
	// armed is false once the native library freed the scene itself.
	armed bool
}

func newOwner(p *C.struct_aiScene) *owner {
	return &owner{scene: (*abi.Scene)(unsafe.Pointer(p)), live: true, armed: true}
}

func (o *owner) check() {
	if !o.live {
		panic(ErrReleased)
	}
}

func (o *owner) cscene() *C.struct_aiScene {
	o.check()
	return (*C.struct_aiScene)(unsafe.Pointer(o.scene))
}

// disarm marks the scene as freed by the native library.
func (o *owner) disarm() {
	o.live = false
	o.armed = false
}

// release runs free once and marks the scene dead.
func (o *owner) release(free func(*C.struct_aiScene)) {
	if !o.live || !o.armed {
		o.live = false
		return
	}
	p := (*C.struct_aiScene)(unsafe.Pointer(o.scene))
	o.live = false
	o.armed = false
	free(p)
}

// SceneReader is the read-only view shared by *Scene and *MutableScene.
type SceneReader interface {
	Flags() SceneFlags
	RootNode() Node
	FindNode(name string) (Node, bool)

	NumMeshes() int
	Mesh(i int) Mesh
	Meshes() iter.Seq2[int, Mesh]
	NumMaterials() int
	Material(i int) Material
	Materials() iter.Seq2[int, Material]
	NumAnimations() int
	Animation(i int) Animation
	Animations() iter.Seq2[int, Animation]
	NumTextures() int
	Texture(i int) Texture
	Textures() iter.Seq2[int, Texture]
	NumLights() int
	Light(i int) Light
	Lights() iter.Seq2[int, Light]
	NumCameras() int
	Camera(i int) Camera
	Cameras() iter.Seq2[int, Camera]

	MemoryRequirements() MemoryInfo
	Copy() (*MutableScene, error)
	Released() bool

	core() *sceneCore
}

// sceneCore implements SceneReader for both scene kinds.
type sceneCore struct {
	o *owner
}

func (s *sceneCore) core() *sceneCore { return s }

func (s *sceneCore) raw() *abi.Scene {
	s.o.check()
	return s.o.scene
}

// Released reports whether the scene can no longer be accessed.
func (s *sceneCore) Released() bool {
	return !s.o.live
}

// Flags returns the AI_SCENE_FLAGS_* set by the importer.
func (s *sceneCore) Flags() SceneFlags {
	return SceneFlags(s.raw().Flags)
}

// RootNode returns the root of the node hierarchy.
func (s *sceneCore) RootNode() Node {
	return Node{o: s.o, p: s.raw().RootNode}
}

// FindNode returns the first node named name in depth-first order.
func (s *sceneCore) FindNode(name string) (Node, bool) {
	for n := range s.RootNode().Walk() {
		if n.Name() == name {
			return n, true
		}
	}
	return Node{}, false
}

// NumMeshes returns the number of meshes in the scene.
func (s *sceneCore) NumMeshes() int { return int(s.raw().NumMeshes) }

// Mesh returns mesh i and panics if i is out of range.
func (s *sceneCore) Mesh(i int) Mesh {
	r := s.raw()
	return Mesh{o: s.o, p: index(r.Meshes, r.NumMeshes, i)}
}

// Meshes iterates over the meshes in index order.
func (s *sceneCore) Meshes() iter.Seq2[int, Mesh] {
	return each(s.o, func() (**abi.Mesh, uint32) { r := s.raw(); return r.Meshes, r.NumMeshes },
		func(p *abi.Mesh) Mesh { return Mesh{o: s.o, p: p} })
}

// NumMaterials returns the number of materials. Importers add a default
// material when the file has none, so it is at least 1 for meshes.
func (s *sceneCore) NumMaterials() int { return int(s.raw().NumMaterials) }

// Material returns material i and panics if i is out of range.
func (s *sceneCore) Material(i int) Material {
	r := s.raw()
	return Material{o: s.o, p: index(r.Materials, r.NumMaterials, i)}
}

// Materials iterates over the materials in index order.
func (s *sceneCore) Materials() iter.Seq2[int, Material] {
	return each(s.o, func() (**abi.Material, uint32) { r := s.raw(); return r.Materials, r.NumMaterials },
		func(p *abi.Material) Material { return Material{o: s.o, p: p} })
}

// NumAnimations returns the number of animations.
func (s *sceneCore) NumAnimations() int { return int(s.raw().NumAnimations) }

// Animation returns animation i and panics if i is out of range.
func (s *sceneCore) Animation(i int) Animation {
	r := s.raw()
	return Animation{o: s.o, p: index(r.Animations, r.NumAnimations, i)}
}

// Animations iterates over the animations in index order.
func (s *sceneCore) Animations() iter.Seq2[int, Animation] {
	return each(s.o, func() (**abi.Animation, uint32) { r := s.raw(); return r.Animations, r.NumAnimations },
		func(p *abi.Animation) Animation { return Animation{o: s.o, p: p} })
}

// NumTextures returns the number of embedded textures.
func (s *sceneCore) NumTextures() int { return int(s.raw().NumTextures) }

// Texture returns embedded texture i, referenced by materials as "*i".
// It panics if i is out of range.
func (s *sceneCore) Texture(i int) Texture {
	r := s.raw()
	return Texture{o: s.o, p: index(r.Textures, r.NumTextures, i)}
}

// Textures iterates over the embedded textures in index order.
func (s *sceneCore) Textures() iter.Seq2[int, Texture] {
	return each(s.o, func() (**abi.Texture, uint32) { r := s.raw(); return r.Textures, r.NumTextures },
		func(p *abi.Texture) Texture { return Texture{o: s.o, p: p} })
}

// NumLights returns the number of light sources.
func (s *sceneCore) NumLights() int { return int(s.raw().NumLights) }

// Light returns light i and panics if i is out of range.
func (s *sceneCore) Light(i int) Light {
	r := s.raw()
	return Light{o: s.o, p: index(r.Lights, r.NumLights, i)}
}

// Lights iterates over the light sources in index order.
func (s *sceneCore) Lights() iter.Seq2[int, Light] {
	return each(s.o, func() (**abi.Light, uint32) { r := s.raw(); return r.Lights, r.NumLights },
		func(p *abi.Light) Light { return Light{o: s.o, p: p} })
}

// NumCameras returns the number of cameras.
func (s *sceneCore) NumCameras() int { return int(s.raw().NumCameras) }

// Camera returns camera i and panics if i is out of range.
func (s *sceneCore) Camera(i int) Camera {
	r := s.raw()
	return Camera{o: s.o, p: index(r.Cameras, r.NumCameras, i)}
}

// Cameras iterates over the cameras in index order.
func (s *sceneCore) Cameras() iter.Seq2[int, Camera] {
	return each(s.o, func() (**abi.Camera, uint32) { r := s.raw(); return r.Cameras, r.NumCameras },
		func(p *abi.Camera) Camera { return Camera{o: s.o, p: p} })
}

// MemoryInfo is the memory footprint of a scene in bytes.
type MemoryInfo abi.MemoryInfo

// MemoryRequirements asks the native library how much memory the scene
// occupies.
func (s *sceneCore) MemoryRequirements() MemoryInfo {
	var info abi.MemoryInfo
	C.aiGetMemoryRequirements(s.o.cscene(), (*C.struct_aiMemoryInfo)(unsafe.Pointer(&info)))
	return MemoryInfo(info)
}

// Copy deep-copies the scene into a *MutableScene. The source stays live
// and must still be released on its own.
func (s *sceneCore) Copy() (*MutableScene, error) {
	var out *C.struct_aiScene
	C.aiCopyScene(s.o.cscene(), &out)
	if out == nil {
		return nil, ErrCopyFailed
	}
	return &MutableScene{sceneCore{o: newOwner(out)}}, nil
}

// Scene is a read-only scene produced by an import. Release it with
// Release once it is no longer needed.
type Scene struct {
	sceneCore
}

func newScene(p *C.struct_aiScene) *Scene {
	return &Scene{sceneCore{o: newOwner(p)}}
}

// Release frees the imported scene. Calling it again, or on a scene whose
// post-processing failed, is a no-op.
func (s *Scene) Release() {
	s.o.release(func(p *C.struct_aiScene) { C.aiReleaseImport(p) })
}

// MutableScene is an owned deep copy that may be edited in place.
type MutableScene struct {
	sceneCore
}

// Release frees the copy. Calling it again is a no-op.
func (s *MutableScene) Release() {
	s.o.release(func(p *C.struct_aiScene) { C.aiFreeScene(p) })
}

// MutableMesh returns mesh i with write access.
func (s *MutableScene) MutableMesh(i int) MutableMesh {
	return MutableMesh{s.Mesh(i)}
}

// MutableRootNode returns the root node with write access.
func (s *MutableScene) MutableRootNode() MutableNode {
	return MutableNode{s.RootNode()}
}

// MutableNode looks up a node by name with write access.
func (s *MutableScene) MutableNode(name string) (MutableNode, bool) {
	n, ok := s.FindNode(name)
	return MutableNode{n}, ok
}

// index resolves element i of a pointer-to-pointer array, panicking when
// i is out of range.
func index[T any](base **T, n uint32, i int) *T {
	if i < 0 || i >= int(n) {
		panic(indexError(i, int(n)))
	}
	return unsafe.Slice(base, n)[i]
}

func each[T, V any](o *owner, load func() (**T, uint32), wrap func(*T) V) iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		base, n := load()
		if base == nil || n == 0 {
			return
		}
		items := unsafe.Slice(base, n)
		for i := range items {
			o.check()
			if !yield(i, wrap(items[i])) {
				return
			}
		}
	}
}
