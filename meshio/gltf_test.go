package meshio

import (
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChadNetwig/OpenGL-3DScene/geometry"
	"github.com/ChadNetwig/OpenGL-3DScene/scene"
)

func TestBuildDocument(t *testing.T) {
	cyl := scene.FromMeshData("can", geometry.NewCylinder(0.27, 0.27, 0.9, 36, 1, true).Data())
	sph := scene.FromMeshData("ball", geometry.NewSphere(0.4, 36, 18, true).Data())

	doc := BuildDocument(cyl, sph)

	require.Len(t, doc.Meshes, 2)
	require.Len(t, doc.Nodes, 2)
	require.Len(t, doc.Scenes[0].Nodes, 2)
	assert.Equal(t, "can", doc.Meshes[0].Name)
	assert.Equal(t, "ball", doc.Meshes[1].Name)

	for i, mesh := range doc.Meshes {
		require.Len(t, mesh.Primitives, 1)
		prim := mesh.Primitives[0]
		require.NotNil(t, prim.Indices)
		assert.Contains(t, prim.Attributes, gltf.POSITION)
		assert.Contains(t, prim.Attributes, gltf.NORMAL)
		assert.Contains(t, prim.Attributes, gltf.TEXCOORD_0)
		assert.Equal(t, i, *doc.Nodes[i].Mesh)
	}
}

func TestExportGLTFRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "meshes.gltf")
	cyl := scene.FromMeshData("can", geometry.NewCylinder(0.27, 0.27, 0.9, 36, 1, true).Data())

	require.NoError(t, ExportGLTF(path, cyl))

	doc, err := gltf.Open(path)
	require.NoError(t, err)
	require.Len(t, doc.Meshes, 1)

	prim := doc.Meshes[0].Primitives[0]
	posAccessor := doc.Accessors[prim.Attributes[gltf.POSITION]]
	assert.Equal(t, 150, int(posAccessor.Count))
	idxAccessor := doc.Accessors[*prim.Indices]
	assert.Equal(t, len(cyl.Indices), int(idxAccessor.Count))
}

func TestExportGLTFRejectsEmpty(t *testing.T) {
	assert.Error(t, ExportGLTF(filepath.Join(t.TempDir(), "x.gltf")))
}
