package scene

import (
	"github.com/ChadNetwig/OpenGL-3DScene/core"
	"github.com/ChadNetwig/OpenGL-3DScene/math"
)

// Mesh holds CPU-side vertex/index data plus its world transform and
// material. GPU upload is managed by the renderer backend. Indices are
// 16-bit; a mesh may hold at most 65536 vertices.
type Mesh struct {
	Name      string
	Vertices  []core.Vertex
	Indices   []uint16
	Transform core.Transform

	// Material holds surface shading properties. If nil, DefaultMaterial() is used.
	Material *Material

	// GPUData is set by the renderer backend (e.g. *opengl.GPUMesh).
	// Do not access directly; use the renderer's API.
	GPUData interface{}
}

// CreateMeshFromData builds a Mesh around existing buffers.
func CreateMeshFromData(name string, vertices []core.Vertex, indices []uint16) *Mesh {
	return &Mesh{
		Name:      name,
		Vertices:  vertices,
		Indices:   indices,
		Transform: core.NewTransform(),
	}
}

// FromMeshData wraps generator output.
func FromMeshData(name string, data core.MeshData) *Mesh {
	return CreateMeshFromData(name, data.Vertices, data.Indices)
}

func (m *Mesh) IndexCount() int { return len(m.Indices) }

// CreateQuad builds a unit quad in the XY plane facing +Z.
func CreateQuad() *Mesh {
	vertices := []core.Vertex{
		{Position: math.Vec3{X: -0.5, Y: -0.5, Z: 0}, Normal: math.Vec3{Z: 1}, UV: math.Vec2{X: 0, Y: 0}},
		{Position: math.Vec3{X: 0.5, Y: -0.5, Z: 0}, Normal: math.Vec3{Z: 1}, UV: math.Vec2{X: 1, Y: 0}},
		{Position: math.Vec3{X: 0.5, Y: 0.5, Z: 0}, Normal: math.Vec3{Z: 1}, UV: math.Vec2{X: 1, Y: 1}},
		{Position: math.Vec3{X: -0.5, Y: 0.5, Z: 0}, Normal: math.Vec3{Z: 1}, UV: math.Vec2{X: 0, Y: 1}},
	}
	indices := []uint16{0, 1, 2, 2, 3, 0}
	return CreateMeshFromData("Quad", vertices, indices)
}

// CreateCube builds an axis-aligned cube with per-face normals and full
// 0..1 texture coordinates on every face.
func CreateCube(size float32) *Mesh {
	s := size / 2

	vertices := []core.Vertex{
		// Front face
		{Position: math.Vec3{X: -s, Y: -s, Z: s}, Normal: math.Vec3{Z: 1}, UV: math.Vec2{X: 0, Y: 0}},
		{Position: math.Vec3{X: s, Y: -s, Z: s}, Normal: math.Vec3{Z: 1}, UV: math.Vec2{X: 1, Y: 0}},
		{Position: math.Vec3{X: s, Y: s, Z: s}, Normal: math.Vec3{Z: 1}, UV: math.Vec2{X: 1, Y: 1}},
		{Position: math.Vec3{X: -s, Y: s, Z: s}, Normal: math.Vec3{Z: 1}, UV: math.Vec2{X: 0, Y: 1}},
		// Back face
		{Position: math.Vec3{X: -s, Y: -s, Z: -s}, Normal: math.Vec3{Z: -1}, UV: math.Vec2{X: 1, Y: 0}},
		{Position: math.Vec3{X: s, Y: -s, Z: -s}, Normal: math.Vec3{Z: -1}, UV: math.Vec2{X: 0, Y: 0}},
		{Position: math.Vec3{X: s, Y: s, Z: -s}, Normal: math.Vec3{Z: -1}, UV: math.Vec2{X: 0, Y: 1}},
		{Position: math.Vec3{X: -s, Y: s, Z: -s}, Normal: math.Vec3{Z: -1}, UV: math.Vec2{X: 1, Y: 1}},
		// Top face
		{Position: math.Vec3{X: -s, Y: s, Z: -s}, Normal: math.Vec3{Y: 1}, UV: math.Vec2{X: 0, Y: 0}},
		{Position: math.Vec3{X: s, Y: s, Z: -s}, Normal: math.Vec3{Y: 1}, UV: math.Vec2{X: 1, Y: 0}},
		{Position: math.Vec3{X: s, Y: s, Z: s}, Normal: math.Vec3{Y: 1}, UV: math.Vec2{X: 1, Y: 1}},
		{Position: math.Vec3{X: -s, Y: s, Z: s}, Normal: math.Vec3{Y: 1}, UV: math.Vec2{X: 0, Y: 1}},
		// Bottom face
		{Position: math.Vec3{X: -s, Y: -s, Z: -s}, Normal: math.Vec3{Y: -1}, UV: math.Vec2{X: 0, Y: 1}},
		{Position: math.Vec3{X: s, Y: -s, Z: -s}, Normal: math.Vec3{Y: -1}, UV: math.Vec2{X: 1, Y: 1}},
		{Position: math.Vec3{X: s, Y: -s, Z: s}, Normal: math.Vec3{Y: -1}, UV: math.Vec2{X: 1, Y: 0}},
		{Position: math.Vec3{X: -s, Y: -s, Z: s}, Normal: math.Vec3{Y: -1}, UV: math.Vec2{X: 0, Y: 0}},
		// Right face
		{Position: math.Vec3{X: s, Y: -s, Z: -s}, Normal: math.Vec3{X: 1}, UV: math.Vec2{X: 0, Y: 0}},
		{Position: math.Vec3{X: s, Y: -s, Z: s}, Normal: math.Vec3{X: 1}, UV: math.Vec2{X: 1, Y: 0}},
		{Position: math.Vec3{X: s, Y: s, Z: s}, Normal: math.Vec3{X: 1}, UV: math.Vec2{X: 1, Y: 1}},
		{Position: math.Vec3{X: s, Y: s, Z: -s}, Normal: math.Vec3{X: 1}, UV: math.Vec2{X: 0, Y: 1}},
		// Left face
		{Position: math.Vec3{X: -s, Y: -s, Z: -s}, Normal: math.Vec3{X: -1}, UV: math.Vec2{X: 1, Y: 0}},
		{Position: math.Vec3{X: -s, Y: -s, Z: s}, Normal: math.Vec3{X: -1}, UV: math.Vec2{X: 0, Y: 0}},
		{Position: math.Vec3{X: -s, Y: s, Z: s}, Normal: math.Vec3{X: -1}, UV: math.Vec2{X: 0, Y: 1}},
		{Position: math.Vec3{X: -s, Y: s, Z: -s}, Normal: math.Vec3{X: -1}, UV: math.Vec2{X: 1, Y: 1}},
	}

	indices := []uint16{
		0, 1, 2, 2, 3, 0,
		4, 5, 6, 6, 7, 4,
		8, 9, 10, 10, 11, 8,
		12, 13, 14, 14, 15, 12,
		16, 17, 18, 18, 19, 16,
		20, 21, 22, 22, 23, 20,
	}

	return CreateMeshFromData("Cube", vertices, indices)
}
