// Package geometry generates parametric surface meshes on the CPU. The
// generators are pure functions of their parameters: the same inputs always
// produce bit-identical vertex and index buffers, so a mesh can be built
// once at startup, uploaded once, and drawn read-only for the life of the
// program.
//
// Vertices use the interleaved core.Vertex layout (position, normal, texture
// coordinate) and indices are 16-bit, so a single generated mesh may hold at
// most 65536 vertices. Out-of-range parameters are clamped, never rejected.
package geometry

import (
	"github.com/ChadNetwig/OpenGL-3DScene/core"
	"github.com/ChadNetwig/OpenGL-3DScene/math"
)

// Parameter clamp thresholds. Counts below the minimums cannot form a
// closed surface; counts above the maximums could overflow the 16-bit
// index space in faceted mode (6*MaxSectorCount*MaxStackCount side
// vertices plus two caps stays under 65536).
const (
	MinSectorCount    = 3
	MaxSectorCount    = 256
	MinCylinderStacks = 1
	MinSphereStacks   = 2
	MaxStackCount     = 40

	// MinDimension is the floor applied to non-positive heights and
	// sphere radii so that a degenerate surface still normalizes.
	MinDimension = 1e-3
)

// MaxVertexCount is the hard ceiling imposed by 16-bit indices.
const MaxVertexCount = 1 << 16

// Mesh is a generated primitive: immutable CPU-side buffers plus the byte
// sizes the GL upload path needs.
type Mesh struct {
	vertices []core.Vertex
	indices  []uint16
}

// Vertices returns the vertex buffer. Callers must not mutate it.
func (m *Mesh) Vertices() []core.Vertex { return m.vertices }

// Indices returns the triangle index buffer, three entries per triangle.
func (m *Mesh) Indices() []uint16 { return m.indices }

func (m *Mesh) VertexCount() int   { return len(m.vertices) }
func (m *Mesh) TriangleCount() int { return len(m.indices) / 3 }

// VertexByteSize is the size of the interleaved vertex buffer in bytes.
func (m *Mesh) VertexByteSize() int { return len(m.vertices) * core.VertexStride }

// IndexByteSize is the size of the index buffer in bytes.
func (m *Mesh) IndexByteSize() int { return len(m.indices) * 2 }

// InterleavedVertices flattens the vertex buffer into the 8-float-per-vertex
// stream the vertex array attributes expect.
func (m *Mesh) InterleavedVertices() []float32 {
	out := make([]float32, 0, len(m.vertices)*8)
	for _, v := range m.vertices {
		out = append(out,
			v.Position.X, v.Position.Y, v.Position.Z,
			v.Normal.X, v.Normal.Y, v.Normal.Z,
			v.UV.X, v.UV.Y)
	}
	return out
}

// Data copies the buffers into a core.MeshData for the scene layer.
func (m *Mesh) Data() core.MeshData {
	return core.MeshData{Vertices: m.vertices, Indices: m.indices}
}

// builder accumulates vertices and indices during generation.
type builder struct {
	vertices []core.Vertex
	indices  []uint16
}

func (b *builder) addVertex(pos, normal math.Vec3, uv math.Vec2) uint16 {
	idx := uint16(len(b.vertices))
	b.vertices = append(b.vertices, core.Vertex{Position: pos, Normal: normal, UV: uv})
	return idx
}

func (b *builder) addTriangle(i0, i1, i2 uint16) {
	b.indices = append(b.indices, i0, i1, i2)
}

// addFacetTriangle duplicates three vertices under a shared face normal
// computed from the winding. Degenerate triangles keep a zero normal rather
// than dividing by zero.
func (b *builder) addFacetTriangle(p0, p1, p2 math.Vec3, uv0, uv1, uv2 math.Vec2) {
	normal := p1.Sub(p0).Cross(p2.Sub(p0)).Normalize()
	i0 := b.addVertex(p0, normal, uv0)
	i1 := b.addVertex(p1, normal, uv1)
	i2 := b.addVertex(p2, normal, uv2)
	b.addTriangle(i0, i1, i2)
}

func (b *builder) mesh() *Mesh {
	return &Mesh{vertices: b.vertices, indices: b.indices}
}

func clampSectors(sectors int) int {
	if sectors < MinSectorCount {
		return MinSectorCount
	}
	if sectors > MaxSectorCount {
		return MaxSectorCount
	}
	return sectors
}

func clampStacks(stacks, min int) int {
	if stacks < min {
		return min
	}
	if stacks > MaxStackCount {
		return MaxStackCount
	}
	return stacks
}
