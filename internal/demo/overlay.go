package demo

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/Faultbox/primscene/internal/engine/ui"
)

// renderOverlay draws the stats box in the bottom-left corner.
func (a *App) renderOverlay() {
	x, y, _, h := ui.Viewport()
	lines := a.stats.Lines()
	lineHeight := imgui.TextLineHeightWithSpacing()

	imgui.SetNextWindowPos(imgui.NewVec2(x+10, y+h-10-float32(len(lines))*lineHeight-16))
	imgui.SetNextWindowSize(imgui.NewVec2(220, 0)) // Auto height

	flags := imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoResize |
		imgui.WindowFlagsNoMove | imgui.WindowFlagsNoScrollbar |
		imgui.WindowFlagsNoSavedSettings | imgui.WindowFlagsNoFocusOnAppearing |
		imgui.WindowFlagsNoInputs

	imgui.PushStyleVarVec2(imgui.StyleVarWindowPadding, imgui.NewVec2(8, 8))
	imgui.SetNextWindowBgAlpha(0.6)

	if imgui.BeginV("##StatsOverlay", nil, flags) {
		fps := a.stats.FPS()
		color := imgui.NewVec4(0.4, 1, 0.4, 1)
		switch {
		case fps < 30:
			color = imgui.NewVec4(1, 0.4, 0.4, 1)
		case fps < 55:
			color = imgui.NewVec4(1, 1, 0.4, 1)
		}
		for i, line := range lines {
			if i == 0 {
				imgui.TextColored(color, line)
				continue
			}
			imgui.Text(line)
		}
	}
	imgui.End()
	imgui.PopStyleVar()
}
