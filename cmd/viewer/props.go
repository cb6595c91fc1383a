package main

import (
	"github.com/ChadNetwig/OpenGL-3DScene/core"
	"github.com/ChadNetwig/OpenGL-3DScene/math"
	"github.com/ChadNetwig/OpenGL-3DScene/scene"
)

// Hand-authored prop meshes. The generated primitives (cylinder, sphere)
// come from the geometry package; everything else in the scene is small
// enough to write out directly.

// planeMesh is the tabletop surface under the scene.
func planeMesh() *scene.Mesh {
	vertices := []core.Vertex{
		{Position: math.Vec3{X: -2, Y: 0, Z: 2}, Normal: math.Vec3{Z: 1}, UV: math.Vec2{X: 0, Y: 1}},
		{Position: math.Vec3{X: 2, Y: 0, Z: 2}, Normal: math.Vec3{Z: 1}, UV: math.Vec2{X: 1, Y: 1}},
		{Position: math.Vec3{X: -2, Y: 0, Z: -2}, Normal: math.Vec3{Z: 1}, UV: math.Vec2{X: 0, Y: 0}},
		{Position: math.Vec3{X: 2, Y: 0, Z: -2}, Normal: math.Vec3{Z: 1}, UV: math.Vec2{X: 1, Y: 0}},
	}
	indices := []uint16{
		0, 1, 2,
		1, 2, 3,
	}
	return scene.CreateMeshFromData("Plane", vertices, indices)
}

// triCaseMesh is a triangular prism: front and rear triangles, a base quad
// and two slanted faces, all drawn from six shared vertices.
func triCaseMesh() *scene.Mesh {
	vertices := []core.Vertex{
		// front triangle
		{Position: math.Vec3{X: 0, Y: 0.5, Z: 0}, Normal: math.Vec3{Z: 1}, UV: math.Vec2{X: 0.5, Y: 1}},
		{Position: math.Vec3{X: -0.3, Y: 0, Z: 0}, Normal: math.Vec3{Z: 1}, UV: math.Vec2{X: 0, Y: 0}},
		{Position: math.Vec3{X: 0.3, Y: 0, Z: 0}, Normal: math.Vec3{Z: 1}, UV: math.Vec2{X: 1, Y: 0}},
		// rear triangle
		{Position: math.Vec3{X: 0, Y: 0.5, Z: -1}, Normal: math.Vec3{Y: -1}, UV: math.Vec2{X: 0, Y: 0}},
		{Position: math.Vec3{X: -0.3, Y: 0, Z: -1}, Normal: math.Vec3{Y: -1}, UV: math.Vec2{X: 1, Y: 0}},
		{Position: math.Vec3{X: 0.3, Y: 0, Z: -1}, Normal: math.Vec3{Y: -1}, UV: math.Vec2{X: 1, Y: 1}},
	}
	indices := []uint16{
		// base
		1, 2, 4,
		2, 4, 5,
		// front and rear triangles
		0, 1, 2,
		3, 4, 5,
		// left slanted face
		0, 1, 4,
		0, 3, 4,
		// right slanted face
		0, 2, 3,
		2, 3, 5,
	}
	return scene.CreateMeshFromData("TriCase", vertices, indices)
}

// triCaseLogoMesh is a decal quad floating just off the right face of the
// tri-case so the logo renders over the case texture without z-fighting.
func triCaseLogoMesh() *scene.Mesh {
	vertices := []core.Vertex{
		{Position: math.Vec3{X: 0.001, Y: 0.5, Z: -0.5}, Normal: math.Vec3{Z: 1}, UV: math.Vec2{X: 0, Y: 1}},
		{Position: math.Vec3{X: 0.001, Y: 0.5, Z: -1}, Normal: math.Vec3{Z: 1}, UV: math.Vec2{X: 1, Y: 1}},
		{Position: math.Vec3{X: 0.301, Y: 0, Z: -0.5}, Normal: math.Vec3{Z: 1}, UV: math.Vec2{X: 0, Y: 0}},
		{Position: math.Vec3{X: 0.301, Y: 0, Z: -1}, Normal: math.Vec3{Z: 1}, UV: math.Vec2{X: 1, Y: 0}},
	}
	indices := []uint16{
		0, 1, 2,
		1, 2, 3,
	}
	return scene.CreateMeshFromData("TriCaseLogo", vertices, indices)
}
