package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/primscene/internal/assets"
)

func TestBuildDefaultModel(t *testing.T) {
	meshes, err := Build(assets.NewDefaultManager(), "")
	require.NoError(t, err)

	for _, kind := range Kinds {
		m, ok := meshes[kind]
		require.True(t, ok, kind.String())
		assert.NotEmpty(t, m.Indices, kind.String())
		assert.NotEmpty(t, m.Edges, kind.String())
	}

	size := meshes[KindModel].Bounds.Size()
	largest := max(size[0], size[1], size[2])
	assert.InDelta(t, ModelExtent, largest, 1e-5)
	assert.InDelta(t, 0, meshes[KindModel].Bounds.Min[1], 1e-6)
}

func TestBuildFromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tri.obj")
	obj := "v 0 0 0\nv 2 0 0\nv 0 4 0\nf 1 2 3\n"
	require.NoError(t, os.WriteFile(path, []byte(obj), 0o644))

	meshes, err := Build(assets.NewDefaultManager(), path)
	require.NoError(t, err)
	m := meshes[KindModel]
	assert.Equal(t, 1, m.TriangleCount())
	assert.Equal(t, "model", m.Name)
	assert.InDelta(t, ModelExtent, m.Bounds.Size()[1], 1e-5)
}

func TestBuildMissingFile(t *testing.T) {
	_, err := Build(assets.NewDefaultManager(), filepath.Join(t.TempDir(), "nope.obj"))
	assert.Error(t, err)
}

func TestLoadModelRejectsFacelessOBJ(t *testing.T) {
	path := filepath.Join(t.TempDir(), "points.obj")
	require.NoError(t, os.WriteFile(path, []byte("v 0 0 0\nv 1 0 0\n"), 0o644))

	_, err := LoadModel(assets.NewDefaultManager(), path)
	assert.ErrorIs(t, err, ErrNoFaces)
}

func TestBoundsOf(t *testing.T) {
	meshes := Primitives()
	bounds := BoundsOf(meshes)
	require.Len(t, bounds, len(meshes))
	assert.Equal(t, meshes[KindCube].Bounds, bounds[KindCube])
}
