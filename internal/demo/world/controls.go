package world

// Action is a keyboard command shared by both front ends.
type Action int

const (
	ActionNone Action = iota
	ActionWireframe
	ActionSolid
	ActionOrbitLeft
	ActionOrbitRight
	ActionOrbitUp
	ActionOrbitDown
	ActionZoomIn
	ActionZoomOut
	ActionToggleAnimate
	ActionToggleLights
)

// Degrees per orbit key press.
const orbitKeyStep = 5

// Apply mutates the world for a, returning false for actions it does not
// handle.
func (w *World) Apply(a Action) bool {
	switch a {
	case ActionWireframe:
		w.Options.Wireframe = true
	case ActionSolid:
		w.Options.Wireframe = false
	case ActionOrbitLeft:
		w.Camera.HandleDrag(orbitKeyStep/w.Camera.DragSensitivity, 0)
	case ActionOrbitRight:
		w.Camera.HandleDrag(-orbitKeyStep/w.Camera.DragSensitivity, 0)
	case ActionOrbitUp:
		w.Camera.HandleDrag(0, orbitKeyStep/w.Camera.DragSensitivity)
	case ActionOrbitDown:
		w.Camera.HandleDrag(0, -orbitKeyStep/w.Camera.DragSensitivity)
	case ActionZoomIn:
		w.Camera.HandleZoom(1)
	case ActionZoomOut:
		w.Camera.HandleZoom(-1)
	case ActionToggleAnimate:
		w.Options.Animate = !w.Options.Animate
	case ActionToggleLights:
		w.Options.ShowLights = !w.Options.ShowLights
	default:
		return false
	}
	return true
}
