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

package stitch

import (
	"image"
	"image/draw"

	"github.com/jetsetilly/wearcapture/imaging"
	"github.com/jetsetilly/wearcapture/wcerrors"
)

// Config is the subset of capture.Config the stitcher needs.
type Config struct {
	DownscaleWidth       int
	MinOverlapRatio      float64
	MaxOverlapRatio      float64
	OverlapMinSimilarity float64
}

// Frames stitches an ordered, non-empty list of frames into one tall RGB
// image: frame[0]'s size is the normalization target, every subsequent
// frame is resampled to match it if its size differs, and is either
// appended whole (low-similarity seam) or cropped to the detected overlap
// and appended.
func Frames(frames []image.Image, cfg Config) (image.Image, error) {
	if len(frames) == 0 {
		return nil, wcerrors.Errorf(wcerrors.InvalidArgument, "no frames to stitch")
	}

	b0 := frames[0].Bounds()
	w, h0 := b0.Dx(), b0.Dy()

	normalized := make([]image.Image, len(frames))
	normalized[0] = frames[0]

	for i := 1; i < len(frames); i++ {
		b := frames[i].Bounds()
		if b.Dx() == w && b.Dy() == h0 {
			normalized[i] = frames[i]
		} else {
			normalized[i] = imaging.Resample(frames[i], w, h0)
		}
	}

	strips := [][]image.Image{{normalized[0]}}
	totalHeight := h0

	ratios := Ratios{MinOverlapRatio: cfg.MinOverlapRatio, MaxOverlapRatio: cfg.MaxOverlapRatio}

	for i := 1; i < len(normalized); i++ {
		prev := normalized[i-1]
		curr := normalized[i]

		overlap, err := FindOverlap(prev, curr, cfg.DownscaleWidth, ratios)
		if err != nil {
			return nil, err
		}

		var cropStart int
		if float64(overlap.Similarity) < cfg.OverlapMinSimilarity {
			cropStart = 0
		} else {
			cropStart = overlap.OverlapPx
			rows := curr.Bounds().Dy()
			if cropStart < 1 {
				cropStart = 1
			}
			if cropStart > rows-1 {
				cropStart = rows - 1
			}
		}

		stripHeight := curr.Bounds().Dy() - cropStart
		strips = append(strips, []image.Image{cropTop(curr, cropStart)})
		totalHeight += stripHeight
	}

	out := image.NewRGBA(image.Rect(0, 0, w, totalHeight))
	y := 0
	for _, s := range strips {
		img := s[0]
		b := img.Bounds()
		draw.Draw(out, image.Rect(0, y, w, y+b.Dy()), img, b.Min, draw.Src)
		y += b.Dy()
	}

	return out, nil
}

// cropTop returns the sub-image of img starting at row y0 (inclusive) to
// its bottom.
func cropTop(img image.Image, y0 int) image.Image {
	b := img.Bounds()
	if y0 <= 0 {
		return img
	}

	type subImager interface {
		SubImage(r image.Rectangle) image.Image
	}
	if si, ok := img.(subImager); ok {
		return si.SubImage(image.Rect(b.Min.X, b.Min.Y+y0, b.Max.X, b.Max.Y))
	}

	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()-y0))
	draw.Draw(dst, dst.Bounds(), img, image.Pt(b.Min.X, b.Min.Y+y0), draw.Src)
	return dst
}
