package assimp

import (
	"iter"
	"unsafe"

	"github.com/Faultbox/goassimp/pkg/assimp/abi"
	"github.com/Faultbox/goassimp/pkg/math"
)

// Mesh is a view of one mesh. Per-vertex accessors return false for an
// index outside [0, NumVertices) or a channel the mesh does not have.
type Mesh struct {
	o *owner
	p *abi.Mesh
}

func (m Mesh) raw() *abi.Mesh {
	m.o.check()
	return m.p
}

// Name returns the mesh name, often empty.
func (m Mesh) Name() string {
	return m.raw().Name.String()
}

// PrimitiveTypes returns the kinds of primitive the faces use.
func (m Mesh) PrimitiveTypes() PrimitiveType {
	return PrimitiveType(m.raw().PrimitiveTypes)
}

// NumVertices returns the size of every per-vertex channel.
func (m Mesh) NumVertices() int {
	return int(m.raw().NumVertices)
}

// NumFaces returns the number of faces.
func (m Mesh) NumFaces() int {
	return int(m.raw().NumFaces)
}

// MaterialIndex is the index into the scene's material array.
func (m Mesh) MaterialIndex() int {
	return int(m.raw().MaterialIndex)
}

// HasPositions reports whether the mesh has vertex positions. Meshes
// from a successful import always do.
func (m Mesh) HasPositions() bool {
	r := m.raw()
	return r.Vertices != nil && r.NumVertices > 0
}

// HasFaces reports whether the mesh has any faces.
func (m Mesh) HasFaces() bool {
	r := m.raw()
	return r.Faces != nil && r.NumFaces > 0
}

// HasNormals reports whether the mesh has a normal per vertex. Normals
// of points and lines may be NaN.
func (m Mesh) HasNormals() bool {
	r := m.raw()
	return r.Normals != nil && r.NumVertices > 0
}

// HasTangentsAndBitangents reports whether both tangent channels are
// present; CalcTangentSpace produces them.
func (m Mesh) HasTangentsAndBitangents() bool {
	r := m.raw()
	return r.Tangents != nil && r.Bitangents != nil && r.NumVertices > 0
}

// HasVertexColors reports whether color channel ch is present.
func (m Mesh) HasVertexColors(ch int) bool {
	r := m.raw()
	return ch >= 0 && ch < abi.MaxColorSets && r.Colors[ch] != nil && r.NumVertices > 0
}

// HasTextureCoords reports whether UV channel ch is present.
func (m Mesh) HasTextureCoords(ch int) bool {
	r := m.raw()
	return ch >= 0 && ch < abi.MaxTextureCoords && r.TextureCoords[ch] != nil && r.NumVertices > 0
}

// NumColorChannels counts the leading present color channels.
func (m Mesh) NumColorChannels() int {
	n := 0
	for n < abi.MaxColorSets && m.HasVertexColors(n) {
		n++
	}
	return n
}

// NumUVChannels counts the leading present UV channels.
func (m Mesh) NumUVChannels() int {
	n := 0
	for n < abi.MaxTextureCoords && m.HasTextureCoords(n) {
		n++
	}
	return n
}

// NumUVComponents returns how many components (1 to 3) of UV channel ch
// are meaningful, or 0 for a missing channel.
func (m Mesh) NumUVComponents(ch int) int {
	if !m.HasTextureCoords(ch) {
		return 0
	}
	return int(m.raw().NumUVComponents[ch])
}

// Vertex returns the position of vertex i.
func (m Mesh) Vertex(i int) (math.Vec3, bool) {
	r := m.raw()
	return vec3At(r.Vertices, r.NumVertices, i)
}

// Normal returns the normal of vertex i.
func (m Mesh) Normal(i int) (math.Vec3, bool) {
	r := m.raw()
	return vec3At(r.Normals, r.NumVertices, i)
}

// Tangent returns the tangent of vertex i.
func (m Mesh) Tangent(i int) (math.Vec3, bool) {
	r := m.raw()
	return vec3At(r.Tangents, r.NumVertices, i)
}

// Bitangent returns the bitangent of vertex i.
func (m Mesh) Bitangent(i int) (math.Vec3, bool) {
	r := m.raw()
	return vec3At(r.Bitangents, r.NumVertices, i)
}

// TextureCoord returns vertex i of UV channel ch.
func (m Mesh) TextureCoord(ch, i int) (math.Vec3, bool) {
	if ch < 0 || ch >= abi.MaxTextureCoords {
		return math.Vec3{}, false
	}
	r := m.raw()
	return vec3At(r.TextureCoords[ch], r.NumVertices, i)
}

// Color returns vertex i of color channel ch.
func (m Mesh) Color(ch, i int) (math.Vec4, bool) {
	if ch < 0 || ch >= abi.MaxColorSets {
		return math.Vec4{}, false
	}
	r := m.raw()
	c, ok := at(r.Colors[ch], r.NumVertices, i)
	return c.Vec4(), ok
}

// Vertices iterates over the vertex positions.
func (m Mesh) Vertices() iter.Seq2[int, math.Vec3] {
	return m.vec3s(func(r *abi.Mesh) *abi.Vector3D { return r.Vertices })
}

// Normals iterates over the normals; it yields nothing without them.
func (m Mesh) Normals() iter.Seq2[int, math.Vec3] {
	return m.vec3s(func(r *abi.Mesh) *abi.Vector3D { return r.Normals })
}

// Tangents iterates over the tangents; it yields nothing without them.
func (m Mesh) Tangents() iter.Seq2[int, math.Vec3] {
	return m.vec3s(func(r *abi.Mesh) *abi.Vector3D { return r.Tangents })
}

// Bitangents iterates over the bitangents; it yields nothing without
// them.
func (m Mesh) Bitangents() iter.Seq2[int, math.Vec3] {
	return m.vec3s(func(r *abi.Mesh) *abi.Vector3D { return r.Bitangents })
}

// TextureCoords iterates over UV channel ch; it yields nothing for a
// missing channel.
func (m Mesh) TextureCoords(ch int) iter.Seq2[int, math.Vec3] {
	if ch < 0 || ch >= abi.MaxTextureCoords {
		return func(func(int, math.Vec3) bool) {}
	}
	return m.vec3s(func(r *abi.Mesh) *abi.Vector3D { return r.TextureCoords[ch] })
}

// Colors iterates over color channel ch; it yields nothing for a missing
// channel.
func (m Mesh) Colors(ch int) iter.Seq2[int, math.Vec4] {
	return func(yield func(int, math.Vec4) bool) {
		if ch < 0 || ch >= abi.MaxColorSets {
			return
		}
		for i := 0; ; i++ {
			r := m.raw()
			c, ok := at(r.Colors[ch], r.NumVertices, i)
			if !ok || !yield(i, c.Vec4()) {
				return
			}
		}
	}
}

func (m Mesh) vec3s(field func(*abi.Mesh) *abi.Vector3D) iter.Seq2[int, math.Vec3] {
	return func(yield func(int, math.Vec3) bool) {
		for i := 0; ; i++ {
			r := m.raw()
			v, ok := vec3At(field(r), r.NumVertices, i)
			if !ok || !yield(i, v) {
				return
			}
		}
	}
}

// Face returns face i and panics if i is out of range.
func (m Mesh) Face(i int) Face {
	r := m.raw()
	if i < 0 || i >= int(r.NumFaces) || r.Faces == nil {
		panic(indexError(i, int(r.NumFaces)))
	}
	return Face{o: m.o, p: &unsafe.Slice(r.Faces, r.NumFaces)[i]}
}

// Faces iterates over the faces in index order.
func (m Mesh) Faces() iter.Seq2[int, Face] {
	return func(yield func(int, Face) bool) {
		for i := range m.NumFaces() {
			if !yield(i, m.Face(i)) {
				return
			}
		}
	}
}

// AppendIndices appends the indices of every face to dst.
func (m Mesh) AppendIndices(dst []uint32) []uint32 {
	for _, f := range m.Faces() {
		dst = f.AppendIndices(dst)
	}
	return dst
}

// NumBones returns the number of bones deforming the mesh.
func (m Mesh) NumBones() int {
	return int(m.raw().NumBones)
}

// Bone returns bone i and panics if i is out of range.
func (m Mesh) Bone(i int) Bone {
	r := m.raw()
	return Bone{o: m.o, p: index(r.Bones, r.NumBones, i)}
}

// Bones iterates over the bones in index order.
func (m Mesh) Bones() iter.Seq2[int, Bone] {
	return each(m.o, func() (**abi.Bone, uint32) { r := m.raw(); return r.Bones, r.NumBones },
		func(p *abi.Bone) Bone { return Bone{o: m.o, p: p} })
}

// NumAnimMeshes returns the number of morph targets attached to the
// mesh.
func (m Mesh) NumAnimMeshes() int {
	return int(m.raw().NumAnimMeshes)
}

// Bounds returns the axis-aligned box around the mesh's positions, empty
// when it has none.
func (m Mesh) Bounds() math.AABB {
	b := math.EmptyAABB()
	for _, v := range m.Vertices() {
		b = b.Extend(v)
	}
	return b
}

// Face is a view of one polygon's index list.
type Face struct {
	o *owner
	p *abi.Face
}

func (f Face) raw() *abi.Face {
	f.o.check()
	return f.p
}

// NumIndices returns 1 for a point, 2 for a line, 3 for a triangle and
// more for a polygon.
func (f Face) NumIndices() int {
	return int(f.raw().NumIndices)
}

// Index returns vertex index i and panics if i is out of range.
func (f Face) Index(i int) uint32 {
	r := f.raw()
	if i < 0 || i >= int(r.NumIndices) {
		panic(indexError(i, int(r.NumIndices)))
	}
	return unsafe.Slice(r.Indices, r.NumIndices)[i]
}

// Indices returns a copy of the face's vertex indices.
func (f Face) Indices() []uint32 {
	return f.AppendIndices(nil)
}

// AppendIndices appends the face's vertex indices to dst.
func (f Face) AppendIndices(dst []uint32) []uint32 {
	r := f.raw()
	if r.NumIndices == 0 || r.Indices == nil {
		return dst
	}
	return append(dst, unsafe.Slice(r.Indices, r.NumIndices)...)
}

// Bone is a view of one bone of a mesh.
type Bone struct {
	o *owner
	p *abi.Bone
}

func (b Bone) raw() *abi.Bone {
	b.o.check()
	return b.p
}

// Name is the name of the node the bone is attached to.
func (b Bone) Name() string {
	return b.raw().Name.String()
}

// OffsetMatrix transforms from mesh space to bone space in bind pose.
func (b Bone) OffsetMatrix() math.Mat4 {
	return b.raw().OffsetMatrix.Mat4()
}

// NumWeights returns the number of vertices the bone influences.
func (b Bone) NumWeights() int {
	return int(b.raw().NumWeights)
}

// Weights iterates over the (vertex, weight) pairs of the bone.
func (b Bone) Weights() iter.Seq2[int, abi.VertexWeight] {
	return func(yield func(int, abi.VertexWeight) bool) {
		for i := 0; ; i++ {
			r := b.raw()
			w, ok := at(r.Weights, r.NumWeights, i)
			if !ok || !yield(i, w) {
				return
			}
		}
	}
}

// MutableMesh is a Mesh of a *MutableScene with write access. The slices
// it returns alias native memory and are valid until the scene is
// released.
type MutableMesh struct {
	Mesh
}

// PositionData returns the vertex positions for in-place editing.
func (m MutableMesh) PositionData() []abi.Vector3D {
	r := m.raw()
	return slice(r.Vertices, r.NumVertices)
}

// NormalData returns the normals for in-place editing, or nil.
func (m MutableMesh) NormalData() []abi.Vector3D {
	r := m.raw()
	return slice(r.Normals, r.NumVertices)
}

// SetMaterialIndex points the mesh at another material. It panics if i is
// not a valid index in scene.
func (m MutableMesh) SetMaterialIndex(scene *MutableScene, i int) {
	if n := scene.NumMaterials(); i < 0 || i >= n {
		panic(indexError(i, n))
	}
	m.raw().MaterialIndex = uint32(i)
}

// SetName renames the mesh. It panics if name is 1024 bytes or longer.
func (m MutableMesh) SetName(name string) {
	m.raw().Name.Set(name)
}

func slice[T any](base *T, n uint32) []T {
	if base == nil || n == 0 {
		return nil
	}
	return unsafe.Slice(base, n)
}

// at reads element i of a native array, reporting false for a nil array
// or an index outside [0, n).
func at[T any](base *T, n uint32, i int) (T, bool) {
	var zero T
	if base == nil || i < 0 || i >= int(n) {
		return zero, false
	}
	return unsafe.Slice(base, n)[i], true
}

func vec3At(base *abi.Vector3D, n uint32, i int) (math.Vec3, bool) {
	v, ok := at(base, n, i)
	return v.Vec3(), ok
}
