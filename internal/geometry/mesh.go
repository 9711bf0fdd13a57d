// Package geometry builds triangle meshes for tree parts.
package geometry

import "github.com/fernseed/treegen/pkg/math"

// Mesh is an indexed triangle mesh. Normals and UVs are per-vertex, so
// the three attribute slices always have equal length.
type Mesh struct {
	Vertices  []math.Vec3
	Triangles [][3]uint32
	Normals   []math.Vec3
	UVs       []math.Vec2
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Triangles)
}

// IsEmpty reports whether the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}

func (m *Mesh) addVertex(pos, normal math.Vec3, uv math.Vec2) uint32 {
	idx := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices, pos)
	m.Normals = append(m.Normals, normal)
	m.UVs = append(m.UVs, uv)
	return idx
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
