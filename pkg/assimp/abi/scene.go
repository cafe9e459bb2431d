package abi

import "unsafe"

// Scene flags (AI_SCENE_FLAGS_*).
const (
	SceneFlagsIncomplete        uint32 = 0x1
	SceneFlagsValidated         uint32 = 0x2
	SceneFlagsValidationWarning uint32 = 0x4
	SceneFlagsNonVerboseFormat  uint32 = 0x8
	SceneFlagsTerrain           uint32 = 0x10
)

// Metadata value types (aiMetadataType).
const (
	MetaBool     int32 = 0
	MetaInt32    int32 = 1
	MetaUint64   int32 = 2
	MetaFloat    int32 = 3
	MetaString   int32 = 4
	MetaVector3D int32 = 5
)

// Scene mirrors aiScene.
type Scene struct {
	Flags         uint32
	RootNode      *Node
	NumMeshes     uint32
	Meshes        **Mesh
	NumMaterials  uint32
	Materials     **Material
	NumAnimations uint32
	Animations    **Animation
	NumTextures   uint32
	Textures      **Texture
	NumLights     uint32
	Lights        **Light
	NumCameras    uint32
	Cameras       **Camera
	Private       unsafe.Pointer
}

// Node mirrors aiNode.
type Node struct {
	Name           String
	Transformation Matrix4x4
	Parent         *Node
	NumChildren    uint32
	Children       **Node
	NumMeshes      uint32
	Meshes         *uint32
	MetaData       *Metadata
}

// Metadata mirrors aiMetadata: parallel arrays of keys and values.
type Metadata struct {
	NumProperties uint32
	Keys          *String
	Values        *MetadataEntry
}

// MetadataEntry mirrors aiMetadataEntry.
type MetadataEntry struct {
	Type int32
	Data unsafe.Pointer
}
