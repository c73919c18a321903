package demo

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"go.uber.org/zap"

	"github.com/Faultbox/primscene/internal/demo/preset/names"
	"github.com/Faultbox/primscene/internal/demo/world"
	"github.com/Faultbox/primscene/internal/engine/ui"
	"github.com/Faultbox/primscene/internal/logger"
)

var keyActions = []struct {
	key    imgui.Key
	action world.Action
}{
	{imgui.KeyW, world.ActionWireframe},
	{imgui.KeyS, world.ActionSolid},
	{imgui.KeyLeftArrow, world.ActionOrbitLeft},
	{imgui.KeyRightArrow, world.ActionOrbitRight},
	{imgui.KeyUpArrow, world.ActionOrbitUp},
	{imgui.KeyDownArrow, world.ActionOrbitDown},
	{imgui.KeyEqual, world.ActionZoomIn},
	{imgui.KeyKeypadAdd, world.ActionZoomIn},
	{imgui.KeyMinus, world.ActionZoomOut},
	{imgui.KeyKeypadSubtract, world.ActionZoomOut},
	{imgui.KeySpace, world.ActionToggleAnimate},
	{imgui.KeyL, world.ActionToggleLights},
}

var presetKeys = []imgui.Key{imgui.Key1, imgui.Key2, imgui.Key3, imgui.Key4, imgui.Key5}

func (a *App) handleKeys() {
	if ui.IsKeyPressed(imgui.KeyF12) {
		a.screenshotRequested = true
	}
	if ui.IsKeyPressed(imgui.KeyF1) {
		a.showOverlay = !a.showOverlay
	}

	// Sliders keep keyboard focus while edited.
	if imgui.IsAnyItemActive() {
		return
	}

	for _, ka := range keyActions {
		if ui.IsKeyPressed(ka.key) {
			a.world.Apply(ka.action)
		}
	}
	for i, key := range presetKeys {
		if ui.IsKeyPressed(key) && i < len(names.All) {
			if err := a.loadPreset(names.All[i]); err != nil {
				logger.Error("switching preset", zap.Error(err))
			}
		}
	}
}
