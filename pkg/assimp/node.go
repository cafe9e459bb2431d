package assimp

import (
	"fmt"
	"iter"
	"unsafe"

	"github.com/Faultbox/goassimp/pkg/assimp/abi"
	"github.com/Faultbox/goassimp/pkg/math"
)

// Node is a view of one node of the scene hierarchy.
type Node struct {
	o *owner
	p *abi.Node
}

func (n Node) raw() *abi.Node {
	n.o.check()
	return n.p
}

// Valid reports whether n refers to a node.
func (n Node) Valid() bool {
	return n.o != nil && n.p != nil
}

// Name returns the node name. Bones, animation channels, cameras and
// lights refer to nodes by it.
func (n Node) Name() string {
	return n.raw().Name.String()
}

// Transformation returns the transform relative to the parent node.
func (n Node) Transformation() math.Mat4 {
	return n.raw().Transformation.Mat4()
}

// GlobalTransformation returns the transform relative to the root.
func (n Node) GlobalTransformation() math.Mat4 {
	m := n.Transformation()
	for p, ok := n.Parent(); ok; p, ok = p.Parent() {
		m = p.Transformation().Mul(m)
	}
	return m
}

// Parent returns the parent node; the root has none.
func (n Node) Parent() (Node, bool) {
	p := n.raw().Parent
	if p == nil {
		return Node{}, false
	}
	return Node{o: n.o, p: p}, true
}

// NumChildren returns the number of child nodes.
func (n Node) NumChildren() int {
	return int(n.raw().NumChildren)
}

// Child returns child i and panics if i is out of range.
func (n Node) Child(i int) Node {
	r := n.raw()
	return Node{o: n.o, p: index(r.Children, r.NumChildren, i)}
}

// Children iterates over the direct children.
func (n Node) Children() iter.Seq2[int, Node] {
	return each(n.o, func() (**abi.Node, uint32) { r := n.raw(); return r.Children, r.NumChildren },
		func(p *abi.Node) Node { return Node{o: n.o, p: p} })
}

// NumMeshes returns how many scene meshes the node instances.
func (n Node) NumMeshes() int {
	return int(n.raw().NumMeshes)
}

// MeshIndex returns the i-th index into the scene's mesh array.
func (n Node) MeshIndex(i int) int {
	r := n.raw()
	if i < 0 || i >= int(r.NumMeshes) {
		panic(indexError(i, int(r.NumMeshes)))
	}
	return int(unsafe.Slice(r.Meshes, r.NumMeshes)[i])
}

// MeshIndices returns a copy of the node's mesh indices.
func (n Node) MeshIndices() []int {
	r := n.raw()
	if r.NumMeshes == 0 {
		return nil
	}
	out := make([]int, r.NumMeshes)
	for i, m := range unsafe.Slice(r.Meshes, r.NumMeshes) {
		out[i] = int(m)
	}
	return out
}

// Walk visits n and its descendants depth first, parents before children.
func (n Node) Walk() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		n.walk(yield)
	}
}

func (n Node) walk(yield func(Node) bool) bool {
	if !yield(n) {
		return false
	}
	for _, c := range n.Children() {
		if !c.walk(yield) {
			return false
		}
	}
	return true
}

// WalkGlobal is Walk with each node's transform relative to the node
// Walk started from (n's own transform included).
func (n Node) WalkGlobal() iter.Seq2[Node, math.Mat4] {
	return func(yield func(Node, math.Mat4) bool) {
		n.walkGlobal(n.Transformation(), yield)
	}
}

func (n Node) walkGlobal(m math.Mat4, yield func(Node, math.Mat4) bool) bool {
	if !yield(n, m) {
		return false
	}
	for _, c := range n.Children() {
		if !c.walkGlobal(m.Mul(c.Transformation()), yield) {
			return false
		}
	}
	return true
}

// MetadataType tags the value of a metadata entry.
type MetadataType int32

const (
	MetaBool     MetadataType = MetadataType(abi.MetaBool)
	MetaInt32    MetadataType = MetadataType(abi.MetaInt32)
	MetaUint64   MetadataType = MetadataType(abi.MetaUint64)
	MetaFloat    MetadataType = MetadataType(abi.MetaFloat)
	MetaString   MetadataType = MetadataType(abi.MetaString)
	MetaVector3D MetadataType = MetadataType(abi.MetaVector3D)
)

func (t MetadataType) String() string {
	switch t {
	case MetaBool:
		return "Bool"
	case MetaInt32:
		return "Int32"
	case MetaUint64:
		return "Uint64"
	case MetaFloat:
		return "Float"
	case MetaString:
		return "String"
	case MetaVector3D:
		return "Vector3D"
	default:
		return fmt.Sprintf("Unknown(%d)", int32(t))
	}
}

// MetadataEntry is one copied key/value pair. Value holds a bool, int32,
// uint64, float32, string or math.Vec3 depending on Type, or nil for an
// unknown type.
type MetadataEntry struct {
	Key   string
	Type  MetadataType
	Value any
}

// Metadata returns a copy of the node's metadata entries.
func (n Node) Metadata() []MetadataEntry {
	md := n.raw().MetaData
	if md == nil || md.NumProperties == 0 {
		return nil
	}
	keys := unsafe.Slice(md.Keys, md.NumProperties)
	vals := unsafe.Slice(md.Values, md.NumProperties)
	out := make([]MetadataEntry, md.NumProperties)
	for i := range out {
		out[i] = MetadataEntry{
			Key:   keys[i].String(),
			Type:  MetadataType(vals[i].Type),
			Value: metadataValue(vals[i]),
		}
	}
	return out
}

// MetadataValue returns the value stored under key.
func (n Node) MetadataValue(key string) (any, bool) {
	for _, e := range n.Metadata() {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

func metadataValue(e abi.MetadataEntry) any {
	if e.Data == nil {
		return nil
	}
	switch MetadataType(e.Type) {
	case MetaBool:
		return *(*byte)(e.Data) != 0
	case MetaInt32:
		return *(*int32)(e.Data)
	case MetaUint64:
		return *(*uint64)(e.Data)
	case MetaFloat:
		return *(*float32)(e.Data)
	case MetaString:
		return (*abi.String)(e.Data).String()
	case MetaVector3D:
		return (*abi.Vector3D)(e.Data).Vec3()
	default:
		return nil
	}
}

// MutableNode is a Node of a *MutableScene with write access.
type MutableNode struct {
	Node
}

// SetName renames the node. It panics if name is 1024 bytes or longer.
func (n MutableNode) SetName(name string) {
	n.raw().Name.Set(name)
}

// SetTransformation replaces the node's local transform.
func (n MutableNode) SetTransformation(m math.Mat4) {
	n.raw().Transformation = abi.Matrix4x4FromMat4(m)
}
