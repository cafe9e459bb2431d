// Package model flattens an imported scene into vertex and index buffers
// ready for GPU upload.
package model

import "github.com/Faultbox/goassimp/pkg/math"

// Vertex represents a model mesh vertex with position, normal, and texture coordinates.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// MaterialGroup is a run of indices drawn with one material.
type MaterialGroup struct {
	Material   int
	StartIndex int32
	IndexCount int32
}

// Material holds the shading inputs the viewer uses.
type Material struct {
	Name     string
	Diffuse  [4]float32
	TwoSided bool

	// Texture is the diffuse texture path, "*N" for an embedded one,
	// or empty.
	Texture string
}

// Mesh holds the complete model mesh data ready for GPU upload.
type Mesh struct {
	Vertices  []Vertex
	Indices   []uint32
	Groups    []MaterialGroup
	Materials []Material
	Bounds    math.AABB
}

// BuildOptions contains options for mesh building.
type BuildOptions struct {
	// UVChannel selects the texture coordinate set copied into TexCoord.
	UVChannel int
	// SkipLinesAndPoints drops faces with fewer than three indices.
	SkipLinesAndPoints bool
}

// Stats summarises a built mesh.
type Stats struct {
	Vertices  int
	Triangles int
	Groups    int
}
