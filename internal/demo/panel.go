package demo

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"go.uber.org/zap"

	"github.com/Faultbox/primscene/internal/demo/preset"
	"github.com/Faultbox/primscene/internal/demo/preset/names"
	"github.com/Faultbox/primscene/internal/engine/camera"
	"github.com/Faultbox/primscene/internal/engine/lighting"
	"github.com/Faultbox/primscene/internal/engine/ui"
	"github.com/Faultbox/primscene/internal/logger"
	"github.com/Faultbox/primscene/pkg/math"
)

const panelWidth = 340

// renderPanel draws the debug panel docked to the right edge.
func (a *App) renderPanel() {
	x, y, w, h := ui.Viewport()
	imgui.SetNextWindowPos(imgui.NewVec2(x+w-panelWidth-10, y+10))
	imgui.SetNextWindowSize(imgui.NewVec2(panelWidth, h-20))
	imgui.SetNextWindowBgAlpha(0.85)

	flags := imgui.WindowFlagsNoMove | imgui.WindowFlagsNoResize |
		imgui.WindowFlagsNoCollapse | imgui.WindowFlagsNoSavedSettings

	if imgui.BeginV("Debug", nil, flags) {
		a.renderPresetCombo()
		imgui.Separator()

		if imgui.CollapsingHeaderTreeNodeFlagsV("Camera", imgui.TreeNodeFlagsDefaultOpen) {
			a.renderCameraSection()
		}
		if imgui.CollapsingHeaderTreeNodeFlagsV("Options", imgui.TreeNodeFlagsDefaultOpen) {
			a.renderOptionsSection()
		}
		if imgui.CollapsingHeaderTreeNodeFlagsV("Lights", imgui.TreeNodeFlagsNone) {
			a.renderLightsSection()
		}
		if imgui.CollapsingHeaderTreeNodeFlagsV("Materials", imgui.TreeNodeFlagsNone) {
			a.renderMaterialsSection()
		}
		if imgui.CollapsingHeaderTreeNodeFlagsV("Files", imgui.TreeNodeFlagsNone) {
			a.renderFilesSection()
		}

		imgui.Separator()
		imgui.TextDisabled("W/S wireframe/solid, 1-5 presets, F12 screenshot")
	}
	imgui.End()
}

func (a *App) renderPresetCombo() {
	imgui.SetNextItemWidth(-1)
	if imgui.BeginCombo("##Preset", "Preset: "+a.world.Preset) {
		for _, name := range names.All {
			if imgui.SelectableBoolV(name, name == a.world.Preset, 0, imgui.NewVec2(0, 0)) {
				if err := a.loadPreset(name); err != nil {
					logger.Error("switching preset", zap.Error(err))
				}
			}
		}
		imgui.EndCombo()
	}
}

func (a *App) renderCameraSection() {
	cam := a.world.Camera

	if imgui.BeginCombo("Projection", cam.Projection.String()) {
		for _, p := range []camera.Projection{camera.Ortho, camera.Perspective} {
			if imgui.SelectableBoolV(p.String(), p == cam.Projection, 0, imgui.NewVec2(0, 0)) {
				cam.Projection = p
			}
		}
		imgui.EndCombo()
	}

	if cam.Projection == camera.Perspective {
		imgui.SliderFloatV("Fovy", &cam.Fovy, 10, 120, "%.0f deg", imgui.SliderFlagsNone)
		imgui.SliderFloatV("Near", &cam.Near, 0.01, 5, "%.2f", imgui.SliderFlagsNone)
		imgui.SliderFloatV("Far", &cam.Far, cam.Near+1, 500, "%.0f", imgui.SliderFlagsNone)
	} else {
		imgui.SliderFloatV("VP distance", &cam.VPDistance, 0.5, 40, "%.1f", imgui.SliderFlagsNone)
	}

	imgui.SliderFloatV("Distance", &cam.Distance, cam.MinDistance, cam.MaxDistance, "%.1f", imgui.SliderFlagsNone)
	imgui.SliderFloatV("Theta", &cam.Theta, -360, 360, "%.0f deg", imgui.SliderFlagsNone)
	imgui.SliderFloatV("Phi", &cam.Phi, cam.MinPhi, cam.MaxPhi, "%.0f deg", imgui.SliderFlagsNone)

	at := cam.At.Array()
	if imgui.SliderFloat3V("At", &at, -10, 10, "%.2f", imgui.SliderFlagsNone) {
		cam.At = math.Vec3From(at)
	}
	up := cam.Up.Array()
	if imgui.SliderFloat3V("Up", &up, -1, 1, "%.2f", imgui.SliderFlagsNone) {
		if v := math.Vec3From(up); v.Length() > 0 {
			cam.Up = v
		}
	}

	if imgui.Button("Reset camera") {
		if fresh, err := preset.New(a.world.Preset); err == nil {
			a.world.Camera = fresh.Camera
		}
	}
	if err := cam.Validate(); err != nil {
		imgui.TextColored(imgui.NewVec4(1, 0.4, 0.4, 1), err.Error())
	}
}

func (a *App) renderOptionsSection() {
	opts := &a.world.Options
	imgui.Checkbox("Wireframe", &opts.Wireframe)
	imgui.Checkbox("Depth test", &opts.DepthTest)
	imgui.Checkbox("Backface culling", &opts.BackfaceCulling)
	imgui.Checkbox("Show lights", &opts.ShowLights)
	imgui.Checkbox("Animate", &opts.Animate)
	imgui.SameLine()
	imgui.TextDisabled(fmt.Sprintf("t=%d", a.world.Time))
}

func (a *App) renderLightsSection() {
	rig := a.world.Lights
	remove := -1

	for i := range rig.Lights {
		l := &rig.Lights[i]
		label := fmt.Sprintf("Light %d: %s (%s)###light%d", i, l.Name, l.Kind(), i)
		if !imgui.TreeNodeExStrV(label, imgui.TreeNodeFlagsNone) {
			continue
		}
		imgui.PushIDInt(int32(i))

		imgui.Checkbox("Enabled", &l.Enabled)
		directional := l.Position.IsDirectional()
		if imgui.Checkbox("Directional", &directional) {
			if directional {
				l.Position[3] = 0
			} else {
				l.Position[3] = 1
			}
		}
		pos := [3]float32{l.Position[0], l.Position[1], l.Position[2]}
		if imgui.SliderFloat3V("Position", &pos, -20, 20, "%.1f", imgui.SliderFlagsNone) {
			l.Position[0], l.Position[1], l.Position[2] = pos[0], pos[1], pos[2]
		}
		imgui.ColorEdit3("Ambient", &l.Ambient)
		imgui.ColorEdit3("Diffuse", &l.Diffuse)
		imgui.ColorEdit3("Specular", &l.Specular)

		if !directional {
			axis := l.Axis.Array()
			if imgui.SliderFloat3V("Axis", &axis, -1, 1, "%.2f", imgui.SliderFlagsNone) {
				l.Axis = math.Vec3From(axis)
			}
			imgui.SliderFloatV("Aperture", &l.Aperture, 0, lighting.NoSpot, "%.0f deg", imgui.SliderFlagsNone)
			imgui.SliderFloatV("Cutoff", &l.Cutoff, 0, 100, "%.1f", imgui.SliderFlagsNone)
		}
		l.Clamp()

		imgui.BeginDisabledV(rig.Len() <= 1)
		if imgui.Button("Remove") {
			remove = i
		}
		imgui.EndDisabled()

		imgui.PopID()
		imgui.TreePop()
	}

	if remove >= 0 {
		rig.Remove(remove)
	}

	imgui.BeginDisabledV(rig.Len() >= lighting.MaxLights)
	if imgui.Button("Add light") {
		l := lighting.White(math.Vec4{0, 5, 5, 1})
		l.Name = fmt.Sprintf("light %d", rig.Len())
		if err := rig.Add(l); err != nil {
			logger.Warn("add light", zap.Error(err))
		}
	}
	imgui.EndDisabled()
	imgui.SameLine()
	imgui.TextDisabled(fmt.Sprintf("%d/%d", rig.Len(), lighting.MaxLights))
}

func (a *App) renderMaterialsSection() {
	if a.selected >= 0 {
		imgui.Text("Picked: " + a.world.Objects[a.selected].Name)
	} else {
		imgui.TextDisabled("Click an object to pick it")
	}
	for i := range a.world.Objects {
		obj := &a.world.Objects[i]
		flags := imgui.TreeNodeFlagsNone
		if i == a.selected {
			flags |= imgui.TreeNodeFlagsSelected
		}
		if !imgui.TreeNodeExStrV(obj.Name, flags) {
			continue
		}
		imgui.PushIDInt(int32(i))

		imgui.ColorEdit3("Color", &obj.Color)
		imgui.ColorEdit3("Ka", &obj.Material.Ka)
		imgui.ColorEdit3("Kd", &obj.Material.Kd)
		imgui.ColorEdit3("Ks", &obj.Material.Ks)
		imgui.SliderFloatV("Shininess", &obj.Material.Shininess, 0, 128, "%.1f", imgui.SliderFlagsNone)
		obj.Material.Clamp()

		imgui.PopID()
		imgui.TreePop()
	}
}

func (a *App) renderFilesSection() {
	modelPath := a.cfg.Scene.ModelPath
	if modelPath == "" {
		modelPath = "(built-in)"
	}
	imgui.Text("Model: " + modelPath)
	if imgui.Button("Open model...") {
		a.openModelDialog()
	}

	imgui.Separator()
	if imgui.Button("Save config") {
		a.cfg.Scene.Preset = a.world.Preset
		a.cfg.Scene.Wireframe = a.world.Options.Wireframe
		if err := a.cfg.Save(); err != nil {
			logger.Error("saving config", zap.Error(err))
		} else {
			logger.Info("config saved", zap.String("path", a.cfg.Path()))
		}
	}
}
