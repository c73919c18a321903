package model

import (
	"bytes"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/primscene/internal/assets"
	"github.com/Faultbox/primscene/internal/logger"
)

// Build generates the primitives and loads the model: from modelPath
// when set, otherwise the embedded default.
func Build(mgr *assets.Manager, modelPath string) (map[Kind]*Mesh, error) {
	meshes := Primitives()

	mdl, err := LoadModel(mgr, modelPath)
	if err != nil {
		return nil, err
	}
	meshes[KindModel] = mdl
	return meshes, nil
}

// LoadModel loads the mesh model from path, or the embedded default when
// path is empty, and normalizes it to ModelExtent.
func LoadModel(mgr *assets.Manager, path string) (*Mesh, error) {
	var (
		mdl    *Mesh
		err    error
		source = path
	)
	if path != "" {
		mdl, err = LoadOBJ(path)
	} else {
		source = assets.DefaultModel
		var data []byte
		data, err = mgr.Load(assets.DefaultModel)
		if err == nil {
			mdl, err = ParseOBJ(bytes.NewReader(data))
		}
	}
	if err != nil {
		return nil, fmt.Errorf("loading model %s: %w", source, err)
	}
	FitToExtent(mdl, ModelExtent)
	mdl.Name = KindModel.String()

	logger.Info("model loaded",
		zap.String("source", source),
		zap.Int("vertices", len(mdl.Vertices)),
		zap.Int("triangles", mdl.TriangleCount()))
	return mdl, nil
}

// BoundsOf returns the local bounds of each mesh.
func BoundsOf(meshes map[Kind]*Mesh) map[Kind]Bounds {
	out := make(map[Kind]Bounds, len(meshes))
	for kind, m := range meshes {
		out[kind] = m.Bounds
	}
	return out
}
