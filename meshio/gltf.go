// Package meshio writes generated meshes to disk as glTF 2.0 documents.
// Only mesh data leaves the process: positions, normals, texture
// coordinates and indices. Camera, lighting and transforms are runtime
// state and are never written.
package meshio

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/ChadNetwig/OpenGL-3DScene/scene"
)

// BuildDocument assembles a glTF document holding one node per mesh.
func BuildDocument(meshes ...*scene.Mesh) *gltf.Document {
	doc := gltf.NewDocument()

	for _, m := range meshes {
		positions := make([][3]float32, len(m.Vertices))
		normals := make([][3]float32, len(m.Vertices))
		uvs := make([][2]float32, len(m.Vertices))
		for i, v := range m.Vertices {
			positions[i] = [3]float32{v.Position.X, v.Position.Y, v.Position.Z}
			normals[i] = [3]float32{v.Normal.X, v.Normal.Y, v.Normal.Z}
			uvs[i] = [2]float32{v.UV.X, v.UV.Y}
		}

		attributes := map[string]int{
			gltf.POSITION:   modeler.WritePosition(doc, positions),
			gltf.NORMAL:     modeler.WriteNormal(doc, normals),
			gltf.TEXCOORD_0: modeler.WriteTextureCoord(doc, uvs),
		}
		indicesAccessor := modeler.WriteIndices(doc, m.Indices)

		doc.Meshes = append(doc.Meshes, &gltf.Mesh{
			Name: m.Name,
			Primitives: []*gltf.Primitive{{
				Indices:    gltf.Index(indicesAccessor),
				Attributes: attributes,
			}},
		})
		doc.Nodes = append(doc.Nodes, &gltf.Node{
			Name: m.Name,
			Mesh: gltf.Index(len(doc.Meshes) - 1),
		})
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, len(doc.Nodes)-1)
	}

	return doc
}

// ExportGLTF writes the meshes to path as a .gltf file.
func ExportGLTF(path string, meshes ...*scene.Mesh) error {
	if len(meshes) == 0 {
		return fmt.Errorf("export %q: no meshes", path)
	}
	doc := BuildDocument(meshes...)
	if err := gltf.Save(doc, path); err != nil {
		return fmt.Errorf("save gltf %q: %w", path, err)
	}
	return nil
}
