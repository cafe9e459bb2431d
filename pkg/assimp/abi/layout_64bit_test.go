//go:build amd64 || arm64

package abi

import (
	"testing"
	"unsafe"
)

func TestLayout64(t *testing.T) {
	tests := []struct {
		name string
		size uintptr
		want uintptr
	}{
		{"AnimMesh", unsafe.Sizeof(AnimMesh{}), 168},
		{"Animation", unsafe.Sizeof(Animation{}), 1080},
		{"Bone", unsafe.Sizeof(Bone{}), 1112},
		{"Camera", unsafe.Sizeof(Camera{}), 1088},
		{"Color3D", unsafe.Sizeof(Color3D{}), 12},
		{"Color4D", unsafe.Sizeof(Color4D{}), 16},
		{"ExportDataBlob", unsafe.Sizeof(ExportDataBlob{}), 1056},
		{"ExportFormatDesc", unsafe.Sizeof(ExportFormatDesc{}), 24},
		{"Face", unsafe.Sizeof(Face{}), 16},
		{"File", unsafe.Sizeof(File{}), 56},
		{"FileIO", unsafe.Sizeof(FileIO{}), 24},
		{"ImporterDesc", unsafe.Sizeof(ImporterDesc{}), 64},
		{"Light", unsafe.Sizeof(Light{}), 1120},
		{"LogStream", unsafe.Sizeof(LogStream{}), 16},
		{"Material", unsafe.Sizeof(Material{}), 16},
		{"MaterialProperty", unsafe.Sizeof(MaterialProperty{}), 1056},
		{"Matrix3x3", unsafe.Sizeof(Matrix3x3{}), 36},
		{"Matrix4x4", unsafe.Sizeof(Matrix4x4{}), 64},
		{"MemoryInfo", unsafe.Sizeof(MemoryInfo{}), 32},
		{"Mesh", unsafe.Sizeof(Mesh{}), 1288},
		{"MeshAnim", unsafe.Sizeof(MeshAnim{}), 1048},
		{"MeshKey", unsafe.Sizeof(MeshKey{}), 16},
		{"Metadata", unsafe.Sizeof(Metadata{}), 24},
		{"MetadataEntry", unsafe.Sizeof(MetadataEntry{}), 16},
		{"Node", unsafe.Sizeof(Node{}), 1144},
		{"NodeAnim", unsafe.Sizeof(NodeAnim{}), 1088},
		{"Plane", unsafe.Sizeof(Plane{}), 16},
		{"PropertyStore", unsafe.Sizeof(PropertyStore{}), 1},
		{"QuatKey", unsafe.Sizeof(QuatKey{}), 24},
		{"Quaternion", unsafe.Sizeof(Quaternion{}), 16},
		{"Ray", unsafe.Sizeof(Ray{}), 24},
		{"Scene", unsafe.Sizeof(Scene{}), 120},
		{"String", unsafe.Sizeof(String{}), 1032},
		{"Texel", unsafe.Sizeof(Texel{}), 4},
		{"Texture", unsafe.Sizeof(Texture{}), 24},
		{"UVTransform", unsafe.Sizeof(UVTransform{}), 20},
		{"Vector2D", unsafe.Sizeof(Vector2D{}), 8},
		{"Vector3D", unsafe.Sizeof(Vector3D{}), 12},
		{"VectorKey", unsafe.Sizeof(VectorKey{}), 24},
		{"VertexWeight", unsafe.Sizeof(VertexWeight{}), 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.size != tt.want {
				t.Errorf("sizeof(%s) = %d, want %d", tt.name, tt.size, tt.want)
			}
		})
	}
}

func TestFieldOffsets64(t *testing.T) {
	var m Mesh
	var s Scene
	var n Node

	tests := []struct {
		name string
		got  uintptr
		want uintptr
	}{
		{"Mesh.Vertices", unsafe.Offsetof(m.Vertices), 16},
		{"Mesh.Colors", unsafe.Offsetof(m.Colors), 48},
		{"Mesh.NumUVComponents", unsafe.Offsetof(m.NumUVComponents), 176},
		{"Mesh.Faces", unsafe.Offsetof(m.Faces), 208},
		{"Mesh.Name", unsafe.Offsetof(m.Name), 240},
		{"Scene.RootNode", unsafe.Offsetof(s.RootNode), 8},
		{"Scene.Private", unsafe.Offsetof(s.Private), 112},
		{"Node.Transformation", unsafe.Offsetof(n.Transformation), 1032},
		{"Node.Parent", unsafe.Offsetof(n.Parent), 1096},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("offsetof(%s) = %d, want %d", tt.name, tt.got, tt.want)
		}
	}
}
