// Package abi mirrors the Assimp 3.x C structures field for field.
//
// Every type here has the exact size and alignment of its C counterpart so
// that a pointer returned by the native library can be reinterpreted as a
// pointer to the Go mirror. The package has no cgo dependency; the
// conversion of C pointers happens in package assimp.
//
// Pointer fields point into memory owned by the native library. They are
// only valid while the owning scene, blob or stream is alive.
package abi

// Limits baked into the C ABI.
const (
	MaxStringLen     = 1024       // MAXLEN, capacity of String.Data
	MaxColorSets     = 8          // AI_MAX_NUMBER_OF_COLOR_SETS
	MaxTextureCoords = 8          // AI_MAX_NUMBER_OF_TEXTURECOORDS
	MaxFaceIndices   = 0x7fff     // AI_MAX_FACE_INDICES
	MaxBoneWeights   = 0x7fffffff // AI_MAX_BONE_WEIGHTS
	MaxVertices      = 0x7fffffff // AI_MAX_VERTICES
	MaxFaces         = 0x7fffffff // AI_MAX_FACES
)

// Return codes (aiReturn).
const (
	ReturnSuccess     int32 = 0
	ReturnFailure     int32 = -1
	ReturnOutOfMemory int32 = -3
)

// Seek origins (aiOrigin).
const (
	OriginSet int32 = 0
	OriginCur int32 = 1
	OriginEnd int32 = 2
)

// Bool values (aiBool).
const (
	False int32 = 0
	True  int32 = 1
)

// PropertyStore is the opaque property container (aiPropertyStore).
type PropertyStore struct {
	Sentinel byte
}

// MemoryInfo reports the memory used by an imported scene (aiMemoryInfo).
type MemoryInfo struct {
	Textures   uint32
	Materials  uint32
	Meshes     uint32
	Nodes      uint32
	Animations uint32
	Cameras    uint32
	Lights     uint32
	Total      uint32
}
