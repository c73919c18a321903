// Package hud tracks frame timing and formats the stats overlay text.
package hud

import (
	"fmt"
	"runtime"
)

// RenderStats are the per-frame counters reported by the renderer.
type RenderStats struct {
	DrawCalls int
	Triangles int
	Lines     int
}

// Stats accumulates frame timing and the latest render counters.
type Stats struct {
	frameCount    uint64
	fps           float64
	frameTime     float64 // ms
	fpsUpdateTime float64 // seconds since last FPS update
	frameAccum    int

	memStats      runtime.MemStats
	memUpdateTime float64
	readMem       func(*runtime.MemStats)

	Render RenderStats
	Preset string
	Mode   string
}

// New creates a stats tracker.
func New() *Stats {
	return &Stats{readMem: runtime.ReadMemStats}
}

// Update records one frame that took deltaMs milliseconds.
func (s *Stats) Update(deltaMs float64) {
	s.frameCount++
	s.frameTime = deltaMs
	s.frameAccum++
	s.fpsUpdateTime += deltaMs / 1000.0

	// FPS is averaged over half a second.
	if s.fpsUpdateTime >= 0.5 {
		s.fps = float64(s.frameAccum) / s.fpsUpdateTime
		s.frameAccum = 0
		s.fpsUpdateTime = 0
	}

	s.memUpdateTime += deltaMs / 1000.0
	if s.memUpdateTime >= 2.0 {
		s.readMem(&s.memStats)
		s.memUpdateTime = 0
	}
}

// FPS returns the last averaged frames per second.
func (s *Stats) FPS() float64 {
	return s.fps
}

// Lines returns the overlay text, one entry per line.
func (s *Stats) Lines() []string {
	lines := []string{
		fmt.Sprintf("FPS: %.0f (%.2f ms)", s.fps, s.frameTime),
		fmt.Sprintf("Draw calls: %d", s.Render.DrawCalls),
	}
	if s.Render.Lines > 0 {
		lines = append(lines, fmt.Sprintf("Lines: %d", s.Render.Lines))
	} else {
		lines = append(lines, fmt.Sprintf("Triangles: %d", s.Render.Triangles))
	}
	if s.Preset != "" {
		lines = append(lines, fmt.Sprintf("Preset: %s (%s)", s.Preset, s.Mode))
	}
	if s.memStats.HeapAlloc > 0 {
		lines = append(lines, fmt.Sprintf("Heap: %.1f MB", float64(s.memStats.HeapAlloc)/(1<<20)))
	}
	return lines
}
