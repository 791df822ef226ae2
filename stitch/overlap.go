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

// Package stitch finds the vertical overlap between consecutive frames
// and concatenates a frame sequence into one tall image, with an
// optional circular alpha mask for round watch faces.
package stitch

import (
	"image"

	"github.com/jetsetilly/wearcapture/imaging"
)

// OverlapResult is the outcome of FindOverlap: the overlap in
// source-pixel rows, and the pixel-diff similarity that produced it.
type OverlapResult struct {
	OverlapPx  int
	Similarity imaging.Similarity
}

// Ratios bundles the two ratios FindOverlap needs from capture.Config.
type Ratios struct {
	MinOverlapRatio float64
	MaxOverlapRatio float64
}

// FindOverlap searches for the best-aligning seam between prev and curr
// (full-resolution source images) over a downscaled grayscale pair: range
// [max(8, floor(h*minRatio)), min(h-1, floor(h*maxRatio))], step
// max(1, floor(h/220)), pixel-diff similarity only.
func FindOverlap(prev, curr image.Image, downscaleWidth int, ratios Ratios) (OverlapResult, error) {
	p := imaging.Downscale(prev, downscaleWidth)
	c := imaging.Downscale(curr, downscaleWidth)

	h := p.Height
	if c.Height < h {
		h = c.Height
	}
	p = p.CropTop(h)
	c = c.CropTop(h)

	lo := int(float64(h) * ratios.MinOverlapRatio)
	if lo < 8 {
		lo = 8
	}
	hi := int(float64(h) * ratios.MaxOverlapRatio)
	if hi > h-1 {
		hi = h - 1
	}
	if hi < lo {
		hi = lo
	}

	step := h / 220
	if step < 1 {
		step = 1
	}

	bestSim := imaging.Similarity(-1)
	bestK := lo

	for k := lo; k <= hi; k += step {
		a := p.CropBottom(k)
		b := c.CropTop(k)
		sim, err := imaging.PixelDiffSimilarity(a, b)
		if err != nil {
			return OverlapResult{}, err
		}
		if sim > bestSim {
			bestSim = sim
			bestK = k
		}
	}

	scale := float64(prev.Bounds().Dy()) / float64(p.Height)
	overlapPx := int(float64(bestK)*scale + 0.5)
	if overlapPx < 1 {
		overlapPx = 1
	}

	return OverlapResult{OverlapPx: overlapPx, Similarity: bestSim}, nil
}
