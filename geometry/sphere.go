package geometry

import (
	"github.com/chewxy/math32"

	"github.com/ChadNetwig/OpenGL-3DScene/math"
)

// NewSphere generates a UV sphere centered on the origin. Latitude runs
// from the +Z pole (stack 0) to the -Z pole (stack stackCount), longitude
// wraps counter-clockwise around +Z. Every stack row carries sectorCount+1
// vertices so the texture seam and the poles get one vertex per sector
// with distinct texture coordinates; the rows adjacent to each pole form
// single triangles instead of quads.
//
// With smooth set the normal of every vertex is exactly its position
// divided by the radius; otherwise each triangle is emitted with its own
// face normal and duplicated vertices. Out-of-range parameters are clamped
// (see the package constants) and a non-positive radius is raised to
// MinDimension.
func NewSphere(radius float32, sectorCount, stackCount int, smooth bool) *Mesh {
	sectorCount = clampSectors(sectorCount)
	stackCount = clampStacks(stackCount, MinSphereStacks)
	if radius <= 0 {
		radius = MinDimension
	}

	b := &builder{}
	if smooth {
		buildSphereSmooth(b, radius, sectorCount, stackCount)
	} else {
		buildSphereFaceted(b, radius, sectorCount, stackCount)
	}
	return b.mesh()
}

func spherePoint(radius float32, sectorCount, stackCount, i, j int) (math.Vec3, math.Vec2) {
	phi := math32.Pi/2 - float32(i)*math32.Pi/float32(stackCount)
	theta := float32(j) * 2 * math32.Pi / float32(sectorCount)
	rCosPhi := radius * math32.Cos(phi)

	pos := math.Vec3{
		X: rCosPhi * math32.Cos(theta),
		Y: rCosPhi * math32.Sin(theta),
		Z: radius * math32.Sin(phi),
	}
	uv := math.Vec2{
		X: float32(j) / float32(sectorCount),
		Y: float32(i) / float32(stackCount),
	}
	return pos, uv
}

func buildSphereSmooth(b *builder, radius float32, sectorCount, stackCount int) {
	invRadius := 1 / radius
	for i := 0; i <= stackCount; i++ {
		for j := 0; j <= sectorCount; j++ {
			pos, uv := spherePoint(radius, sectorCount, stackCount, i, j)
			b.addVertex(pos, pos.Mul(invRadius), uv)
		}
	}

	for i := 0; i < stackCount; i++ {
		k1 := uint16(i * (sectorCount + 1))
		k2 := k1 + uint16(sectorCount) + 1
		for j := 0; j < sectorCount; j++ {
			// the cells touching a pole collapse to one triangle
			if i != 0 {
				b.addTriangle(k1, k2, k1+1)
			}
			if i != stackCount-1 {
				b.addTriangle(k1+1, k2, k2+1)
			}
			k1++
			k2++
		}
	}
}

func buildSphereFaceted(b *builder, radius float32, sectorCount, stackCount int) {
	for i := 0; i < stackCount; i++ {
		for j := 0; j < sectorCount; j++ {
			p00, uv00 := spherePoint(radius, sectorCount, stackCount, i, j)
			p01, uv01 := spherePoint(radius, sectorCount, stackCount, i, j+1)
			p10, uv10 := spherePoint(radius, sectorCount, stackCount, i+1, j)
			p11, uv11 := spherePoint(radius, sectorCount, stackCount, i+1, j+1)

			if i != 0 {
				b.addFacetTriangle(p00, p10, p01, uv00, uv10, uv01)
			}
			if i != stackCount-1 {
				b.addFacetTriangle(p01, p10, p11, uv01, uv10, uv11)
			}
		}
	}
}
