// Package ui wraps the cimgui-go SDL backend that hosts the debug panel.
package ui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/backend"
	"github.com/AllenDang/cimgui-go/backend/sdlbackend"
	"github.com/AllenDang/cimgui-go/imgui"
	"go.uber.org/zap"

	"github.com/Faultbox/primscene/internal/logger"
)

// Config holds backend window settings.
type Config struct {
	Title  string
	Width  int
	Height int
}

// Backend wraps the ImGui SDL backend. The backend owns the window and the
// GL context; its loop clears the window after each frame callback, so the
// scene is rendered offscreen and shown as an image.
type Backend struct {
	backend backend.Backend[sdlbackend.SDLWindowFlags]
}

// NewBackend creates the window and GUI context.
func NewBackend(cfg Config) (*Backend, error) {
	b := &Backend{}

	var err error
	b.backend, err = backend.CreateBackend(sdlbackend.NewSDLBackend())
	if err != nil {
		return nil, fmt.Errorf("create backend: %w", err)
	}

	b.backend.SetAfterCreateContextHook(func() {
		imgui.StyleColorsDark()
	})
	b.backend.SetBgColor(imgui.NewVec4(0, 0, 0, 1.0))
	b.backend.CreateWindow(cfg.Title, cfg.Width, cfg.Height)

	logger.Info("gui window created",
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height))
	return b, nil
}

// Run starts the main render loop.
func (b *Backend) Run(renderFunc func()) {
	b.backend.Run(renderFunc)
}

// SetWindowTitle updates the window title.
func (b *Backend) SetWindowTitle(title string) {
	b.backend.SetWindowTitle(title)
}

// Viewport returns the main viewport work area.
func Viewport() (posX, posY, width, height float32) {
	viewport := imgui.MainViewport()
	workPos := viewport.WorkPos()
	workSize := viewport.WorkSize()
	return workPos.X, workPos.Y, workSize.X, workSize.Y
}

// FramebufferScale returns the ratio of framebuffer pixels to window points.
func FramebufferScale() (float32, float32) {
	s := imgui.CurrentIO().DisplayFramebufferScale()
	if s.X <= 0 || s.Y <= 0 {
		return 1, 1
	}
	return s.X, s.Y
}

// IsKeyPressed checks if a key was pressed this frame.
func IsKeyPressed(key imgui.Key) bool {
	return imgui.IsKeyChordPressed(imgui.KeyChord(key))
}
