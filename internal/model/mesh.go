package model

import (
	"cmp"
	"slices"

	"github.com/Faultbox/goassimp/pkg/assimp"
	"github.com/Faultbox/goassimp/pkg/math"
)

// RequiredSteps returns the steps to add to flags so that a scene can be
// built: triangulated faces and normals on every mesh. GenSmoothNormals is
// only requested when flat normals are not already enabled, since the
// library rejects both at once.
func RequiredSteps(flags assimp.PostProcessSteps) assimp.PostProcessSteps {
	steps := assimp.Triangulate
	if !flags.Has(assimp.GenNormals) {
		steps |= assimp.GenSmoothNormals
	}
	return steps
}

// Build flattens every mesh instance of the scene's node graph into one
// vertex buffer in world space. Faces are grouped by material so each
// group can be drawn with one call. Build expects a scene imported with
// RequiredSteps: faces with more than three indices are skipped and
// vertices without a normal keep a zero one.
// Build returns nil when the scene has no triangles.
func Build(s assimp.SceneReader, opts BuildOptions) *Mesh {
	var vertices []Vertex
	groups := make(map[int][]uint32)
	bounds := math.EmptyAABB()

	for node, global := range s.RootNode().WalkGlobal() {
		normalMat := math.FromMat3x3(global.NormalMatrix())

		for _, mi := range node.MeshIndices() {
			m := s.Mesh(mi)
			if !m.HasPositions() || !m.HasFaces() {
				continue
			}

			base := uint32(len(vertices))
			for i, p := range m.Vertices() {
				pos := global.TransformPoint(p)
				bounds = bounds.Extend(pos)

				v := Vertex{Position: pos.Array()}
				if n, ok := m.Normal(i); ok {
					v.Normal = normalMat.TransformDirection(n).Normalize().Array()
				}
				if uv, ok := m.TextureCoord(opts.UVChannel, i); ok {
					v.TexCoord = [2]float32{uv.X, uv.Y}
				}
				vertices = append(vertices, v)
			}

			var idx []uint32
			for _, f := range m.Faces() {
				face := f.Indices()
				if len(face) < 3 {
					if opts.SkipLinesAndPoints {
						continue
					}
					// Degenerate triangles keep points and lines visible in
					// wireframe mode.
					for len(face) < 3 && len(face) > 0 {
						face = append(face, face[len(face)-1])
					}
				}
				if len(face) == 0 || len(face) > 3 {
					continue
				}
				idx = append(idx, base+face[0], base+face[1], base+face[2])
			}

			groups[m.MaterialIndex()] = append(groups[m.MaterialIndex()], idx...)
		}
	}

	if len(vertices) == 0 {
		return nil
	}

	mesh := &Mesh{
		Vertices:  vertices,
		Materials: Materials(s),
		Bounds:    bounds,
	}

	// Build material groups and final index buffer
	keys := make([]int, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, mat := range keys {
		idxs := groups[mat]
		if len(idxs) == 0 {
			continue
		}
		mesh.Groups = append(mesh.Groups, MaterialGroup{
			Material:   mat,
			StartIndex: int32(len(mesh.Indices)),
			IndexCount: int32(len(idxs)),
		})
		mesh.Indices = append(mesh.Indices, idxs...)
	}
	if len(mesh.Indices) == 0 {
		return nil
	}
	return mesh
}

// Materials extracts the shading inputs of every material. Missing keys
// fall back to a light grey, one-sided, untextured material.
func Materials(s assimp.SceneReader) []Material {
	out := make([]Material, 0, s.NumMaterials())
	for _, m := range s.Materials() {
		mat := Material{Name: m.Name(), Diffuse: [4]float32{0.8, 0.8, 0.8, 1}}
		if c, err := m.GetColor(assimp.MatKeyColorDiffuse); err == nil {
			mat.Diffuse = c
		}
		if op, err := m.GetFloat(assimp.MatKeyOpacity); err == nil {
			mat.Diffuse[3] = op
		}
		if ts, err := m.GetInt(assimp.MatKeyTwoSided); err == nil {
			mat.TwoSided = ts != 0
		}
		if m.TextureCount(assimp.TextureDiffuse) > 0 {
			if info, err := m.Texture(assimp.TextureDiffuse, 0); err == nil {
				mat.Texture = info.Path
			}
		}
		out = append(out, mat)
	}
	return out
}

// CountTriangles returns vertex and triangle totals.
func (m *Mesh) CountTriangles() Stats {
	return Stats{
		Vertices:  len(m.Vertices),
		Triangles: len(m.Indices) / 3,
		Groups:    len(m.Groups),
	}
}

// SortGroupsByOpacity orders groups so that opaque materials are drawn
// before translucent ones.
func (m *Mesh) SortGroupsByOpacity() {
	alpha := func(g MaterialGroup) float32 {
		if g.Material >= 0 && g.Material < len(m.Materials) {
			return m.Materials[g.Material].Diffuse[3]
		}
		return 1
	}
	slices.SortStableFunc(m.Groups, func(a, b MaterialGroup) int {
		return cmp.Compare(alpha(b), alpha(a))
	})
}
