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

package scroll

import (
	"image"

	"github.com/jetsetilly/wearcapture/imaging"
)

// reasons used by the detector's stop rules. The engine has its own
// additional reasons (cancellation, low motion, max swipes) layered on
// top of these.
const (
	ReasonBottomTop = "bottom/top region similarity threshold reached"
	ReasonFullFrame = "frame-to-frame similarity indicates no further scrolling"
)

// StopCheckResult is the decision record produced by Detect for a single
// (prev, curr) pair.
type StopCheckResult struct {
	ShouldStop          bool
	Reason              string
	BottomTopSimilarity imaging.Similarity
	FullSimilarity      imaging.Similarity
	EstimatedMotionPx   int
	OverlapSimilarity   imaging.Similarity
	LowMotionCandidate  bool
}

// Params is the subset of capture.Config the detector needs.
// capture.Config is converted to this locally to avoid an import cycle
// between capture and scroll.
type Params struct {
	DownscaleWidth      int
	StopRegionRatio     float64
	SimilarityThreshold float64
	UseSSIM             bool
	LowMotionSimilarity float64
	LowMotionPx         int
}

// Detect compares two same-orientation frames and decides whether
// scrolling has produced enough new content to continue, reporting
// bottom/top-strip similarity, full-frame similarity, estimated motion,
// and overlap similarity along the way.
func Detect(prev, curr image.Image, params Params) (StopCheckResult, error) {
	p := imaging.Downscale(prev, params.DownscaleWidth)
	c := imaging.Downscale(curr, params.DownscaleWidth)

	h := p.Height
	if c.Height < h {
		h = c.Height
	}
	p = p.CropTop(h)
	c = c.CropTop(h)

	strip := int(float64(h)*params.StopRegionRatio + 0.5)
	if strip < 8 {
		strip = 8
	}
	if strip > h {
		strip = h
	}

	bottomTopSim, err := similarity(p.CropBottom(strip), c.CropTop(strip), params.UseSSIM)
	if err != nil {
		return StopCheckResult{}, err
	}

	fullSim, err := similarity(p, c, params.UseSSIM)
	if err != nil {
		return StopCheckResult{}, err
	}

	motion, err := EstimateMotion(p, c, prev.Bounds().Dy())
	if err != nil {
		return StopCheckResult{}, err
	}

	lowMotion := float64(motion.OverlapSim) >= params.LowMotionSimilarity && motion.MotionPx <= params.LowMotionPx

	result := StopCheckResult{
		BottomTopSimilarity: bottomTopSim,
		FullSimilarity:      fullSim,
		EstimatedMotionPx:   motion.MotionPx,
		OverlapSimilarity:   motion.OverlapSim,
		LowMotionCandidate:  lowMotion,
	}

	fullThreshold := params.SimilarityThreshold - 0.01
	if fullThreshold < 0.98 {
		fullThreshold = 0.98
	}

	switch {
	case float64(bottomTopSim) >= params.SimilarityThreshold:
		result.ShouldStop = true
		result.Reason = ReasonBottomTop
	case float64(fullSim) >= fullThreshold:
		result.ShouldStop = true
		result.Reason = ReasonFullFrame
	}

	return result, nil
}

func similarity(a, b *imaging.Matrix, useSSIM bool) (imaging.Similarity, error) {
	if useSSIM {
		return imaging.SSIM(a, b)
	}
	return imaging.PixelDiffSimilarity(a, b)
}
