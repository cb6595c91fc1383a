package geometry

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChadNetwig/OpenGL-3DScene/math"
)

const tolerance = 1e-5

func assertVec3Near(t *testing.T, expected, actual math.Vec3, msgAndArgs ...any) {
	t.Helper()
	assert.InDelta(t, expected.X, actual.X, tolerance, msgAndArgs...)
	assert.InDelta(t, expected.Y, actual.Y, tolerance, msgAndArgs...)
	assert.InDelta(t, expected.Z, actual.Z, tolerance, msgAndArgs...)
}

func checkIndexInvariants(t *testing.T, m *Mesh) {
	t.Helper()
	require.Zero(t, len(m.Indices())%3, "index count must be a multiple of 3")
	for _, idx := range m.Indices() {
		assert.Less(t, int(idx), m.VertexCount(), "index out of range")
	}
}

func TestIndexInvariants(t *testing.T) {
	meshes := map[string]*Mesh{
		"cylinder smooth":  NewCylinder(0.27, 0.27, 0.9, 36, 1, true),
		"cylinder faceted": NewCylinder(0.27, 0.27, 0.9, 36, 3, false),
		"frustum":          NewCylinder(0.5, 0.2, 1.2, 24, 4, true),
		"cone":             NewCylinder(0.5, 0, 1, 16, 2, true),
		"sphere smooth":    NewSphere(0.4, 36, 18, true),
		"sphere faceted":   NewSphere(0.4, 12, 6, false),
	}
	for name, m := range meshes {
		t.Run(name, func(t *testing.T) {
			checkIndexInvariants(t, m)
		})
	}
}

func TestCylinderVertexCount(t *testing.T) {
	// 36 sectors, 1 stack, smooth: two side rings of 37, plus one center
	// and 37 rim vertices per cap.
	m := NewCylinder(0.27, 0.27, 0.9, 36, 1, true)
	assert.Equal(t, 2*37+2*(1+37), m.VertexCount())
	assert.Equal(t, m.VertexCount()*32, m.VertexByteSize())
	assert.Equal(t, len(m.Indices())*2, m.IndexByteSize())
}

func TestCylinderSideWindingOutward(t *testing.T) {
	m := NewCylinder(0.27, 0.27, 0.9, 36, 1, true)
	verts := m.Vertices()
	sideTriangles := 0
	for i := 0; i+2 < len(m.Indices()); i += 3 {
		p0 := verts[m.Indices()[i]].Position
		p1 := verts[m.Indices()[i+1]].Position
		p2 := verts[m.Indices()[i+2]].Position
		face := p1.Sub(p0).Cross(p2.Sub(p0))
		if math32.Abs(face.Z) > 0.9*face.Length() {
			continue // cap triangle
		}
		sideTriangles++
		centroid := p0.Add(p1).Add(p2).Mul(1.0 / 3.0)
		outward := math.Vec3{X: centroid.X, Y: centroid.Y}
		assert.Positive(t, face.Dot(outward), "side triangle must face away from the axis")
	}
	assert.Equal(t, 36*2, sideTriangles)
}

func TestCylinderSmoothNormalsIndependentOfStack(t *testing.T) {
	const sectors, stacks = 24, 5
	m := NewCylinder(0.5, 0.2, 1.3, sectors, stacks, true)
	verts := m.Vertices()
	for j := 0; j <= sectors; j++ {
		base := verts[j].Normal
		assert.InDelta(t, 1, base.Length(), tolerance)
		for i := 1; i <= stacks; i++ {
			assertVec3Near(t, base, verts[i*(sectors+1)+j].Normal,
				"sector %d stack %d", j, i)
		}
	}
}

func TestCylinderSlantNormal(t *testing.T) {
	// For a frustum the side normal tilts by atan2(base-top, height)
	// toward +Z when the cone narrows upward.
	base, top, height := float32(0.6), float32(0.2), float32(1.0)
	m := NewCylinder(base, top, height, 8, 1, true)
	zAngle := math32.Atan2(base-top, height)
	n0 := m.Vertices()[0].Normal
	assertVec3Near(t, math.Vec3{X: math32.Cos(zAngle), Z: math32.Sin(zAngle)}, n0)
}

func TestCylinderSeamDuplicate(t *testing.T) {
	const sectors, stacks = 36, 2
	m := NewCylinder(0.3, 0.3, 1, sectors, stacks, true)
	verts := m.Vertices()
	for i := 0; i <= stacks; i++ {
		first := verts[i*(sectors+1)]
		last := verts[i*(sectors+1)+sectors]
		assertVec3Near(t, first.Position, last.Position, "row %d", i)
		assert.Equal(t, float32(0), first.UV.X)
		assert.Equal(t, float32(1), last.UV.X)
	}
}

func TestConeApex(t *testing.T) {
	m := NewCylinder(0.5, 0, 1, 12, 3, true)
	for _, v := range m.Vertices() {
		assert.False(t, math32.IsNaN(v.Normal.X) || math32.IsNaN(v.Normal.Y) || math32.IsNaN(v.Normal.Z),
			"apex normals must stay finite")
	}
	// a zero top radius has no top cap
	smooth := NewCylinder(0.5, 0, 1, 12, 1, true)
	assert.Equal(t, 2*13+1+13, smooth.VertexCount())
}

func TestCylinderFacetedNormals(t *testing.T) {
	const sectors, stacks = 12, 2
	m := NewCylinder(0.4, 0.4, 1, sectors, stacks, false)
	verts := m.Vertices()
	// each side triangle owns three vertices sharing one unit face normal
	sideVerts := 6 * sectors * stacks
	assert.Equal(t, sideVerts+2*(1+sectors+1), m.VertexCount())
	for i := 0; i < sideVerts; i += 3 {
		n := verts[i].Normal
		assert.InDelta(t, 1, n.Length(), tolerance)
		assertVec3Near(t, n, verts[i+1].Normal)
		assertVec3Near(t, n, verts[i+2].Normal)
	}
}

func TestSphereTriangleCount(t *testing.T) {
	// 36 sectors, 18 stacks: one triangle per sector at each pole row,
	// two per cell in the 16 body rows.
	m := NewSphere(0.4, 36, 18, true)
	assert.Equal(t, 36+36+16*36*2, m.TriangleCount())
}

func TestSpherePoleRowsSingleTriangles(t *testing.T) {
	const sectors, stacks = 36, 18
	m := NewSphere(0.4, sectors, stacks, true)
	verts := m.Vertices()

	poleTop := 0
	poleBottom := 0
	for i := 0; i+2 < len(m.Indices()); i += 3 {
		touchesTop := false
		touchesBottom := false
		for k := 0; k < 3; k++ {
			idx := int(m.Indices()[i+k])
			if idx <= sectors {
				touchesTop = true
			}
			if idx >= (stacks)*(sectors+1) {
				touchesBottom = true
			}
		}
		if touchesTop {
			poleTop++
		}
		if touchesBottom {
			poleBottom++
		}
		_ = verts
	}
	assert.Equal(t, sectors, poleTop)
	assert.Equal(t, sectors, poleBottom)
}

func TestSphereNormals(t *testing.T) {
	const radius = 0.4
	m := NewSphere(radius, 12, 6, true)
	for _, v := range m.Vertices() {
		assertVec3Near(t, v.Position.Mul(1.0/radius), v.Normal)
		assert.InDelta(t, radius, v.Position.Length(), tolerance)
	}
}

func TestSpherePoleVerticesShareDistinctUVs(t *testing.T) {
	const sectors, stacks = 10, 4
	m := NewSphere(1, sectors, stacks, true)
	verts := m.Vertices()
	pole := verts[0].Position
	for j := 0; j <= sectors; j++ {
		v := verts[j]
		assertVec3Near(t, pole, v.Position)
		assert.InDelta(t, float32(j)/float32(sectors), v.UV.X, tolerance)
		assert.Equal(t, float32(0), v.UV.Y)
	}
}

func TestSphereSeamDuplicate(t *testing.T) {
	const sectors, stacks = 16, 8
	m := NewSphere(1, sectors, stacks, true)
	verts := m.Vertices()
	for i := 0; i <= stacks; i++ {
		first := verts[i*(sectors+1)]
		last := verts[i*(sectors+1)+sectors]
		assertVec3Near(t, first.Position, last.Position, "row %d", i)
		assert.InDelta(t, 1, last.UV.X-first.UV.X, tolerance)
	}
}

func TestSphereFaceted(t *testing.T) {
	const sectors, stacks = 12, 6
	m := NewSphere(0.5, sectors, stacks, false)
	wantTriangles := sectors + sectors + (stacks-2)*sectors*2
	assert.Equal(t, wantTriangles, m.TriangleCount())
	assert.Equal(t, wantTriangles*3, m.VertexCount())
	for i := 0; i < m.VertexCount(); i += 3 {
		n := m.Vertices()[i].Normal
		assert.InDelta(t, 1, n.Length(), tolerance)
	}
}

func TestParameterClamping(t *testing.T) {
	// counts below the minimums snap up, never error
	m := NewCylinder(0.3, 0.3, 1, 1, 0, true)
	assert.Equal(t, 2*(MinSectorCount+1)+2*(1+MinSectorCount+1), m.VertexCount())

	s := NewSphere(1, 2, 1, true)
	assert.Equal(t, (MinSphereStacks+1)*(MinSectorCount+1), s.VertexCount())

	// negative radii collapse to zero, dropping the corresponding cap
	cone := NewCylinder(0.5, -1, 1, 8, 1, true)
	assert.Equal(t, 2*9+1+9, cone.VertexCount())

	// a non-positive height still produces a valid surface
	flat := NewCylinder(0.5, 0.5, 0, 8, 1, true)
	for _, v := range flat.Vertices() {
		assert.False(t, math32.IsNaN(v.Normal.X))
	}
}

func TestVertexCeiling(t *testing.T) {
	// the worst cases at the upper clamps must still fit 16-bit indices
	cyl := NewCylinder(1, 1, 2, 100000, 100000, false)
	assert.Less(t, cyl.VertexCount(), MaxVertexCount)
	sph := NewSphere(1, 100000, 100000, false)
	assert.Less(t, sph.VertexCount(), MaxVertexCount)
	checkIndexInvariants(t, cyl)
	checkIndexInvariants(t, sph)
}

func TestDeterminism(t *testing.T) {
	a := NewCylinder(0.27, 0.27, 0.9, 36, 1, true)
	b := NewCylinder(0.27, 0.27, 0.9, 36, 1, true)
	assert.Equal(t, a.Vertices(), b.Vertices())
	assert.Equal(t, a.Indices(), b.Indices())

	sa := NewSphere(0.4, 36, 18, true)
	sb := NewSphere(0.4, 36, 18, true)
	assert.Equal(t, sa.Vertices(), sb.Vertices())
	assert.Equal(t, sa.Indices(), sb.Indices())
}

func TestInterleavedVertices(t *testing.T) {
	m := NewSphere(1, 4, 2, true)
	flat := m.InterleavedVertices()
	require.Equal(t, m.VertexCount()*8, len(flat))
	v0 := m.Vertices()[1]
	assert.Equal(t, v0.Position.X, flat[8])
	assert.Equal(t, v0.Normal.X, flat[11])
	assert.Equal(t, v0.UV.X, flat[14])
	assert.Equal(t, v0.UV.Y, flat[15])
}
