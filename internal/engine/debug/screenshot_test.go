package debug

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// twoRows returns a 1x2 image: bottom row red, top row blue.
func twoRows() []byte {
	return []byte{
		255, 0, 0, 255, // bottom (first in GL order)
		0, 0, 255, 255, // top
	}
}

func TestFlipRows(t *testing.T) {
	img, err := FlipRows(twoRows(), 1, 2)
	require.NoError(t, err)

	top := img.RGBAAt(0, 0)
	bottom := img.RGBAAt(0, 1)
	assert.Equal(t, uint8(255), top.B)
	assert.Equal(t, uint8(255), bottom.R)
}

func TestFlipRowsSizeMismatch(t *testing.T) {
	_, err := FlipRows([]byte{1, 2, 3}, 1, 1)
	assert.Error(t, err)
}

func TestSaveTagged(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	sc := NewScreenshotCapture(dir, "primscene")

	path, err := sc.SaveTagged(twoRows(), 1, 2, "classic")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "primscene_classic.png"), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 1, img.Bounds().Dx())
	assert.Equal(t, 2, img.Bounds().Dy())
	_, _, b, _ := img.At(0, 0).RGBA()
	assert.Equal(t, uint32(0xffff), b)
}

func TestCaptureFromPixelsTimestamp(t *testing.T) {
	dir := t.TempDir()
	sc := NewScreenshotCapture(dir, "shot")
	sc.now = func() time.Time { return time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC) }

	path, err := sc.CaptureFromPixels(twoRows(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "shot_2024-05-01_12-30-00.000.png"), path)
	assert.FileExists(t, path)
}
