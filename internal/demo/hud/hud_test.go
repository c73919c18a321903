package hud

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFPSAveraging(t *testing.T) {
	s := New()
	for i := 0; i < 40; i++ {
		s.Update(1000.0 / 60.0)
	}
	assert.InDelta(t, 60, s.FPS(), 0.5)
	assert.Equal(t, uint64(40), s.frameCount)
}

func TestFPSNotReadyBeforeHalfSecond(t *testing.T) {
	s := New()
	s.Update(10)
	assert.Zero(t, s.FPS())
}

func TestMemoryRefresh(t *testing.T) {
	s := New()
	calls := 0
	s.readMem = func(m *runtime.MemStats) {
		calls++
		m.HeapAlloc = 3 << 20
	}
	s.Update(1999)
	assert.Zero(t, calls)
	s.Update(1)
	assert.Equal(t, 1, calls)
	assert.Contains(t, s.Lines(), "Heap: 3.0 MB")
}

func TestLines(t *testing.T) {
	s := New()
	s.Render = RenderStats{DrawCalls: 6, Triangles: 1200}
	s.Preset, s.Mode = "classic", "solid"

	lines := s.Lines()
	assert.Contains(t, lines, "Draw calls: 6")
	assert.Contains(t, lines, "Triangles: 1200")
	assert.Contains(t, lines, "Preset: classic (solid)")

	s.Render = RenderStats{DrawCalls: 6, Lines: 900}
	assert.Contains(t, s.Lines(), "Lines: 900")
}
