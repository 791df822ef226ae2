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

package scroll_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jetsetilly/wearcapture/scroll"
)

func defaultParams() scroll.Params {
	return scroll.Params{
		DownscaleWidth:      320,
		StopRegionRatio:     0.12,
		SimilarityThreshold: 0.995,
		UseSSIM:             true,
		LowMotionSimilarity: 0.93,
		LowMotionPx:         6,
	}
}

func solid(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestDetectStopsOnIdenticalFrames(t *testing.T) {
	img := solid(180, 400, color.White)
	result, err := scroll.Detect(img, img, defaultParams())
	require.NoError(t, err)
	require.True(t, result.ShouldStop)
	require.Equal(t, scroll.ReasonBottomTop, result.Reason)
}

func TestDetectContinuesOnDistinctFrames(t *testing.T) {
	a := solid(180, 400, color.Black)
	b := solid(180, 400, color.White)
	result, err := scroll.Detect(a, b, defaultParams())
	require.NoError(t, err)
	require.False(t, result.ShouldStop)
}

func TestDetectMotionNonNegative(t *testing.T) {
	a := solid(180, 400, color.Black)
	b := solid(180, 400, color.White)
	result, err := scroll.Detect(a, b, defaultParams())
	require.NoError(t, err)
	require.GreaterOrEqual(t, result.EstimatedMotionPx, 0)
}
