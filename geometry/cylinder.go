package geometry

import (
	"github.com/chewxy/math32"

	"github.com/ChadNetwig/OpenGL-3DScene/math"
)

// NewCylinder generates a cylinder or cone frustum centered on the origin
// with its axis along +Z, spanning z in [-height/2, +height/2]. baseRadius
// and topRadius may differ (a zero topRadius yields a capped cone). The
// side surface is split into sectorCount angular wedges and stackCount
// vertical bands; each end with a positive radius is closed by a triangle
// fan cap with its own rim vertices so the flat cap normal never blends
// with the side shading.
//
// With smooth set, side normals are derived from the cone slant angle and
// shared along each vertical column; otherwise every side triangle carries
// its own face normal with duplicated vertices. Winding is seen
// counter-clockwise from outside.
//
// Out-of-range parameters are clamped (see the package constants) and
// negative radii are treated as zero. The result is deterministic for a
// given parameter set.
func NewCylinder(baseRadius, topRadius, height float32, sectorCount, stackCount int, smooth bool) *Mesh {
	sectorCount = clampSectors(sectorCount)
	stackCount = clampStacks(stackCount, MinCylinderStacks)
	if baseRadius < 0 {
		baseRadius = 0
	}
	if topRadius < 0 {
		topRadius = 0
	}
	if height <= 0 {
		height = MinDimension
	}

	b := &builder{}
	if smooth {
		buildCylinderSideSmooth(b, baseRadius, topRadius, height, sectorCount, stackCount)
	} else {
		buildCylinderSideFaceted(b, baseRadius, topRadius, height, sectorCount, stackCount)
	}
	if baseRadius > 0 {
		buildCylinderCap(b, baseRadius, -height/2, sectorCount, false)
	}
	if topRadius > 0 {
		buildCylinderCap(b, topRadius, height/2, sectorCount, true)
	}
	return b.mesh()
}

// sideNormals returns one unit normal per sector column. The normal tilts
// by the slant angle of the cone in the z direction, so it depends only on
// the sector, not on the stack.
func sideNormals(baseRadius, topRadius, height float32, sectorCount int) []math.Vec3 {
	zAngle := math32.Atan2(baseRadius-topRadius, height)
	cosA := math32.Cos(zAngle)
	sinA := math32.Sin(zAngle)

	normals := make([]math.Vec3, sectorCount+1)
	for j := 0; j <= sectorCount; j++ {
		theta := float32(j) * 2 * math32.Pi / float32(sectorCount)
		normals[j] = math.Vec3{
			X: math32.Cos(theta) * cosA,
			Y: math32.Sin(theta) * cosA,
			Z: sinA,
		}
	}
	return normals
}

func buildCylinderSideSmooth(b *builder, baseRadius, topRadius, height float32, sectorCount, stackCount int) {
	normals := sideNormals(baseRadius, topRadius, height, sectorCount)

	for i := 0; i <= stackCount; i++ {
		f := float32(i) / float32(stackCount)
		z := -height/2 + f*height
		radius := baseRadius + f*(topRadius-baseRadius)
		t := 1 - f

		for j := 0; j <= sectorCount; j++ {
			theta := float32(j) * 2 * math32.Pi / float32(sectorCount)
			pos := math.Vec3{
				X: radius * math32.Cos(theta),
				Y: radius * math32.Sin(theta),
				Z: z,
			}
			uv := math.Vec2{X: float32(j) / float32(sectorCount), Y: t}
			b.addVertex(pos, normals[j], uv)
		}
	}

	for i := 0; i < stackCount; i++ {
		k1 := uint16(i * (sectorCount + 1))
		k2 := k1 + uint16(sectorCount) + 1
		for j := 0; j < sectorCount; j++ {
			b.addTriangle(k1, k1+1, k2)
			b.addTriangle(k2, k1+1, k2+1)
			k1++
			k2++
		}
	}
}

func buildCylinderSideFaceted(b *builder, baseRadius, topRadius, height float32, sectorCount, stackCount int) {
	ring := func(f float32) ([]math.Vec3, []math.Vec2) {
		z := -height/2 + f*height
		radius := baseRadius + f*(topRadius-baseRadius)
		t := 1 - f
		positions := make([]math.Vec3, sectorCount+1)
		uvs := make([]math.Vec2, sectorCount+1)
		for j := 0; j <= sectorCount; j++ {
			theta := float32(j) * 2 * math32.Pi / float32(sectorCount)
			positions[j] = math.Vec3{
				X: radius * math32.Cos(theta),
				Y: radius * math32.Sin(theta),
				Z: z,
			}
			uvs[j] = math.Vec2{X: float32(j) / float32(sectorCount), Y: t}
		}
		return positions, uvs
	}

	lowerPos, lowerUV := ring(0)
	for i := 0; i < stackCount; i++ {
		upperPos, upperUV := ring(float32(i+1) / float32(stackCount))
		for j := 0; j < sectorCount; j++ {
			b.addFacetTriangle(lowerPos[j], lowerPos[j+1], upperPos[j],
				lowerUV[j], lowerUV[j+1], upperUV[j])
			b.addFacetTriangle(upperPos[j], lowerPos[j+1], upperPos[j+1],
				upperUV[j], lowerUV[j+1], upperUV[j+1])
		}
		lowerPos, lowerUV = upperPos, upperUV
	}
}

// buildCylinderCap closes one end of the cylinder with a triangle fan. The
// rim duplicates the side ring so the cap keeps its flat normal, and the
// disk is UV-mapped by projecting the rim onto the unit circle.
func buildCylinderCap(b *builder, radius, z float32, sectorCount int, top bool) {
	normal := math.Vec3{Z: -1}
	if top {
		normal = math.Vec3{Z: 1}
	}

	center := b.addVertex(math.Vec3{Z: z}, normal, math.Vec2{X: 0.5, Y: 0.5})
	for j := 0; j <= sectorCount; j++ {
		theta := float32(j) * 2 * math32.Pi / float32(sectorCount)
		ux := math32.Cos(theta)
		uy := math32.Sin(theta)
		pos := math.Vec3{X: radius * ux, Y: radius * uy, Z: z}
		var uv math.Vec2
		if top {
			uv = math.Vec2{X: ux*0.5 + 0.5, Y: uy*0.5 + 0.5}
		} else {
			uv = math.Vec2{X: -ux*0.5 + 0.5, Y: -uy*0.5 + 0.5}
		}
		b.addVertex(pos, normal, uv)
	}

	rim := center + 1
	for j := uint16(0); j < uint16(sectorCount); j++ {
		if top {
			b.addTriangle(center, rim+j, rim+j+1)
		} else {
			b.addTriangle(center, rim+j+1, rim+j)
		}
	}
}
