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

// Package scroll implements the motion estimator and stop-check
// detector that drive the capture loop's decision of whether to keep
// scrolling.
package scroll

import (
	"github.com/jetsetilly/wearcapture/imaging"
)

// MotionResult is the outcome of the motion estimator: the estimated
// on-device scroll distance in source pixels, and the overlap similarity
// that produced it.
type MotionResult struct {
	MotionPx   int
	OverlapSim imaging.Similarity
	OverlapPx  int
}

// EstimateMotion searches for the best-aligning overlap between prev and
// curr (already downscaled to grayscale matrices P, C, cropped to a
// common height h by the caller) and scales the winning overlap back to
// prevHeight source pixels.
//
// Search range [max(8, floor(h*0.55)), h], step max(1, floor(h/240)).
// Pixel-diff similarity only. Ties keep the first k to reach the current
// best (strictly-greater updates only).
func EstimateMotion(p, c *imaging.Matrix, prevHeight int) (MotionResult, error) {
	h := p.Height
	if c.Height < h {
		h = c.Height
	}

	lo := int(float64(h) * 0.55)
	if lo < 8 {
		lo = 8
	}
	step := h / 240
	if step < 1 {
		step = 1
	}

	bestSim := imaging.Similarity(-1)
	bestK := lo

	for k := lo; k <= h; k += step {
		a := p.CropBottom(k)
		b := c.CropTop(k)
		sim, err := imaging.PixelDiffSimilarity(a, b)
		if err != nil {
			return MotionResult{}, err
		}
		if sim > bestSim {
			bestSim = sim
			bestK = k
		}
	}

	scale := float64(prevHeight) / float64(p.Height)
	overlapPx := int(float64(bestK)*scale + 0.5)
	if overlapPx < 1 {
		overlapPx = 1
	}

	motionPx := prevHeight - overlapPx
	if motionPx < 0 {
		motionPx = 0
	}

	return MotionResult{
		MotionPx:   motionPx,
		OverlapSim: bestSim,
		OverlapPx:  overlapPx,
	}, nil
}
