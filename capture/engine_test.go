// This file is part of WearCapture.
//
// WearCapture is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// WearCapture is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with WearCapture.  If not, see <https://www.gnu.org/licenses/>.

package capture_test

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jetsetilly/wearcapture/capture"
	"github.com/jetsetilly/wearcapture/wcerrors"
)

// fakeBridge serves a fixed sequence of frames: the first CaptureScreen
// call returns frames[0], and every swipe advances to the next frame,
// repeating the last frame once the sequence is exhausted.
type fakeBridge struct {
	serials   []string
	available bool
	frames    []image.Image
	idx       int
	swipes    int
}

func (f *fakeBridge) IsAvailable() bool { return f.available }

func (f *fakeBridge) ListOnlineSerials() ([]string, error) { return f.serials, nil }

func (f *fakeBridge) CaptureScreen(serial string) (image.Image, error) {
	i := f.idx
	if i >= len(f.frames) {
		i = len(f.frames) - 1
	}
	return f.frames[i], nil
}

func (f *fakeBridge) Swipe(serial string, x1, y1, x2, y2, durationMs int) error {
	f.swipes++
	if f.idx < len(f.frames)-1 {
		f.idx++
	}
	return nil
}

func (f *fakeBridge) DisplaySize(serial string) (int, int, bool) { return 0, 0, false }

func solidFrame(w, h int, v uint8) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{v, v, v, 255})
		}
	}
	return img
}

func patternFrame(w, h, yOffset int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			gy := y + yOffset
			r := uint8((3*x + 5*gy) % 256)
			g := uint8((7*x + 2*gy) % 256)
			b := uint8((11*x + 13*gy) % 256)
			img.Set(x, y, color.RGBA{r, g, b, 255})
		}
	}
	return img
}

func fastClock() capture.Option {
	return capture.WithClock(time.Now, func(time.Duration) {})
}

func TestCaptureDeviceNotFound(t *testing.T) {
	b := &fakeBridge{available: true}
	e := capture.NewEngine(b, fastClock())

	cfg := capture.DefaultConfig()
	cfg.OutputPath = filepath.Join(t.TempDir(), "out.png")

	_, err := e.Capture(cfg, nil, nil, nil)
	require.Error(t, err)
	require.True(t, wcerrors.Is(err, wcerrors.DeviceNotFound))
}

func TestCaptureMultipleDevices(t *testing.T) {
	b := &fakeBridge{available: true, serials: []string{"a", "b"}}
	e := capture.NewEngine(b, fastClock())

	cfg := capture.DefaultConfig()
	cfg.OutputPath = filepath.Join(t.TempDir(), "out.png")

	_, err := e.Capture(cfg, nil, nil, nil)
	require.Error(t, err)
	require.True(t, wcerrors.Is(err, wcerrors.MultipleDevices))
}

func TestCaptureBridgeUnavailable(t *testing.T) {
	b := &fakeBridge{available: false, serials: []string{"a"}, frames: []image.Image{solidFrame(20, 40, 0)}}
	e := capture.NewEngine(b, fastClock())

	cfg := capture.DefaultConfig()
	cfg.OutputPath = filepath.Join(t.TempDir(), "out.png")

	_, err := e.Capture(cfg, nil, nil, nil)
	require.Error(t, err)
	require.True(t, wcerrors.Is(err, wcerrors.BridgeUnavailable))
}

func TestCaptureStopsOnDuplicateFrame(t *testing.T) {
	var frames []image.Image
	for i := 0; i < 6; i++ {
		frames = append(frames, patternFrame(40, 80, i*20))
	}
	frames = append(frames, frames[len(frames)-1])

	b := &fakeBridge{available: true, serials: []string{"only"}, frames: frames}
	e := capture.NewEngine(b, fastClock())

	out := filepath.Join(t.TempDir(), "out.png")
	cfg := capture.DefaultConfig()
	cfg.OutputPath = out
	cfg.DownscaleWidth = 64

	var progressed []capture.Progress
	result, err := e.Capture(cfg, nil, nil, func(p capture.Progress) {
		progressed = append(progressed, p)
	})
	require.NoError(t, err)
	require.GreaterOrEqual(t, result.FramesCaptured, 1)
	require.LessOrEqual(t, result.FramesCaptured, 7)
	require.NotEmpty(t, progressed)

	_, statErr := os.Stat(out)
	require.NoError(t, statErr)
}

func TestCaptureCancellationSavesPartial(t *testing.T) {
	var frames []image.Image
	for i := 0; i < 10; i++ {
		frames = append(frames, patternFrame(40, 80, i*30))
	}

	b := &fakeBridge{available: true, serials: []string{"only"}, frames: frames}
	e := capture.NewEngine(b, fastClock())

	out := filepath.Join(t.TempDir(), "out.png")
	cfg := capture.DefaultConfig()
	cfg.OutputPath = out
	cfg.DownscaleWidth = 64

	var cancel capture.CancelFlag
	cancel.Request()

	result, err := e.Capture(cfg, nil, &cancel, nil)
	require.NoError(t, err)
	require.Equal(t, "user requested stop", result.StopReason)
	require.Equal(t, 1, result.FramesCaptured)
	require.Equal(t, 0, result.SwipesPerformed)
}

func TestCaptureMaxSwipesReached(t *testing.T) {
	var frames []image.Image
	for i := 0; i < 50; i++ {
		frames = append(frames, patternFrame(40, 80, i*5))
	}

	b := &fakeBridge{available: true, serials: []string{"only"}, frames: frames}
	e := capture.NewEngine(b, fastClock())

	out := filepath.Join(t.TempDir(), "out.png")
	cfg := capture.DefaultConfig()
	cfg.OutputPath = out
	cfg.MaxSwipes = 3
	cfg.LowMotionConsecutive = 100 // never reached within MaxSwipes
	cfg.DownscaleWidth = 64

	result, err := e.Capture(cfg, nil, nil, nil)
	require.NoError(t, err)
	require.Equal(t, "max swipes reached", result.StopReason)
	require.Equal(t, 3, result.SwipesPerformed)
}
