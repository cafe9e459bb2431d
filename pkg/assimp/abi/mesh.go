package abi

// Primitive type bits (aiPrimitiveType).
const (
	PrimitivePoint    uint32 = 0x1
	PrimitiveLine     uint32 = 0x2
	PrimitiveTriangle uint32 = 0x4
	PrimitivePolygon  uint32 = 0x8
)

// Face mirrors aiFace.
type Face struct {
	NumIndices uint32
	Indices    *uint32
}

// VertexWeight mirrors aiVertexWeight.
type VertexWeight struct {
	VertexID uint32
	Weight   float32
}

// Bone mirrors aiBone.
type Bone struct {
	Name         String
	NumWeights   uint32
	Weights      *VertexWeight
	OffsetMatrix Matrix4x4
}

// AnimMesh mirrors aiAnimMesh.
type AnimMesh struct {
	Vertices      *Vector3D
	Normals       *Vector3D
	Tangents      *Vector3D
	Bitangents    *Vector3D
	Colors        [MaxColorSets]*Color4D
	TextureCoords [MaxTextureCoords]*Vector3D
	NumVertices   uint32
}

// Mesh mirrors aiMesh. The vertex arrays are parallel and NumVertices
// long; a nil array means the component is absent.
type Mesh struct {
	PrimitiveTypes  uint32
	NumVertices     uint32
	NumFaces        uint32
	Vertices        *Vector3D
	Normals         *Vector3D
	Tangents        *Vector3D
	Bitangents      *Vector3D
	Colors          [MaxColorSets]*Color4D
	TextureCoords   [MaxTextureCoords]*Vector3D
	NumUVComponents [MaxTextureCoords]uint32
	Faces           *Face
	NumBones        uint32
	Bones           **Bone
	MaterialIndex   uint32
	Name            String
	NumAnimMeshes   uint32
	AnimMeshes      **AnimMesh
}
