package scene

import (
	"github.com/ChadNetwig/OpenGL-3DScene/core"
	"github.com/ChadNetwig/OpenGL-3DScene/math"
)

// Light is a point light source. Intensity scales the color before it
// enters the shading model, so a dim fill light keeps its hue.
type Light struct {
	Position  math.Vec3
	Color     core.Color
	Intensity float32
}

// ScaledColor returns the light color premultiplied by intensity.
func (l Light) ScaledColor() core.Color {
	return core.Color{
		R: l.Color.R * l.Intensity,
		G: l.Color.G * l.Intensity,
		B: l.Color.B * l.Intensity,
		A: 1,
	}
}
