package scene

import "github.com/ChadNetwig/OpenGL-3DScene/core"

// Material describes Phong surface properties for a mesh.
type Material struct {
	Name string
	// Diffuse is the base color, multiplied with the texture if one is set.
	Diffuse core.Color
	// SpecularIntensity scales the specular highlight term.
	SpecularIntensity float32
	// Shininess is the Phong highlight exponent.
	Shininess float32
	// Unlit skips the lighting model and outputs the raw color. Used for
	// the lamp markers.
	Unlit bool

	// Optional diffuse texture; upload via opengl.UploadTexture before
	// rendering.
	Texture *Texture
}

// DefaultMaterial returns a plain white Phong material with the standard
// highlight settings.
func DefaultMaterial() *Material {
	return &Material{
		Name:              "Default",
		Diffuse:           core.ColorWhite,
		SpecularIntensity: 0.8,
		Shininess:         16,
	}
}

// NewTexturedMaterial creates a Phong material bound to a texture.
func NewTexturedMaterial(name string, tex *Texture) *Material {
	m := DefaultMaterial()
	m.Name = name
	m.Texture = tex
	return m
}

// NewUnlitMaterial creates a flat-colored material that ignores lighting.
func NewUnlitMaterial(name string, color core.Color) *Material {
	return &Material{
		Name:    name,
		Diffuse: color,
		Unlit:   true,
	}
}
