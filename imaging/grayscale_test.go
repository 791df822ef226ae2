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

package imaging_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jetsetilly/wearcapture/imaging"
)

func solidImage(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestDownscaleUnchangedWhenNarrow(t *testing.T) {
	img := solidImage(100, 200, color.White)
	m := imaging.Downscale(img, 320)
	require.Equal(t, 100, m.Width)
	require.Equal(t, 200, m.Height)
}

func TestDownscaleResamplesWhenWide(t *testing.T) {
	img := solidImage(640, 1280, color.White)
	m := imaging.Downscale(img, 320)
	require.Equal(t, 320, m.Width)
	require.Equal(t, 640, m.Height)
}

func TestDownscaleLuminanceOfWhiteIsMax(t *testing.T) {
	img := solidImage(8, 8, color.White)
	m := imaging.Downscale(img, 320)
	require.InDelta(t, 255.0, m.At(0, 0), 1e-6)
}

func TestDownscaleLuminanceOfBlackIsMin(t *testing.T) {
	img := solidImage(8, 8, color.Black)
	m := imaging.Downscale(img, 320)
	require.InDelta(t, 0.0, m.At(0, 0), 1e-6)
}

func TestCropTopAndBottom(t *testing.T) {
	img := solidImage(4, 10, color.White)
	m := imaging.Downscale(img, 320)

	top := m.CropTop(3)
	require.Equal(t, 3, top.Height)

	bottom := m.CropBottom(3)
	require.Equal(t, 3, bottom.Height)
}

func TestResample(t *testing.T) {
	img := solidImage(10, 20, color.White)
	out := imaging.Resample(img, 5, 5)
	require.Equal(t, 5, out.Bounds().Dx())
	require.Equal(t, 5, out.Bounds().Dy())
}
