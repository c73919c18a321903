package demo

import (
	"errors"

	"github.com/sqweek/dialog"
	"go.uber.org/zap"

	"github.com/Faultbox/primscene/internal/engine/model"
	"github.com/Faultbox/primscene/internal/logger"
)

// openModelDialog asks for an OBJ file without blocking the frame loop.
// The chosen path is picked up by pollModelPath on the main thread.
func (a *App) openModelDialog() {
	go func() {
		filename, err := dialog.File().
			Filter("Wavefront OBJ", "obj").
			Filter("All Files", "*").
			Title("Open Model").
			Load()
		if err != nil {
			if !errors.Is(err, dialog.ErrCancelled) {
				logger.Warn("file dialog", zap.Error(err))
			}
			return
		}

		select {
		case a.modelPaths <- filename:
		default:
		}
	}()
}

func (a *App) pollModelPath() {
	select {
	case path := <-a.modelPaths:
		if err := a.replaceModel(path); err != nil {
			logger.Error("loading model", zap.String("path", path), zap.Error(err))
		}
	default:
	}
}

// replaceModel swaps the mesh model for the OBJ at path.
func (a *App) replaceModel(path string) error {
	mdl, err := model.LoadModel(a.assets, path)
	if err != nil {
		return err
	}
	if err := a.scene.SetMesh(model.KindModel, mdl); err != nil {
		return err
	}
	a.bounds[model.KindModel] = mdl.Bounds
	a.cfg.Scene.ModelPath = path
	return nil
}
