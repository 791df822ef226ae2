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

// Package imaging holds the grayscale/resize primitives and the two
// similarity metrics (pixel-diff, global SSIM) that the scroll detector
// and stitcher build on.
package imaging

import (
	"image"

	"golang.org/x/image/draw"
)

// Matrix is a 2-D grayscale image in row-major order, values in [0,255].
type Matrix struct {
	Width  int
	Height int
	Pix    []float64
}

// At returns the value at (x, y).
func (m *Matrix) At(x, y int) float64 {
	return m.Pix[y*m.Width+x]
}

func newMatrix(w, h int) *Matrix {
	return &Matrix{Width: w, Height: h, Pix: make([]float64, w*h)}
}

// Downscale converts img to a grayscale matrix using ITU-R BT.601
// luminance coefficients, then bilinearly resamples it to width
// targetWidth (preserving aspect ratio, height floor 1) unless the
// source is no wider than targetWidth, in which case it is left
// unchanged.
func Downscale(img image.Image, targetWidth int) *Matrix {
	b := img.Bounds()
	srcW, srcH := b.Dx(), b.Dy()

	if srcW <= targetWidth {
		return toMatrix(img)
	}

	dstH := int(float64(srcH)*float64(targetWidth)/float64(srcW) + 0.5)
	if dstH < 1 {
		dstH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, targetWidth, dstH))
	draw.BiLinear.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)

	return toMatrix(dst)
}

// Resample resamples img to exactly (w, h) via bilinear interpolation.
func Resample(img image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.BiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	return dst
}

func toMatrix(img image.Image) *Matrix {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	m := newMatrix(w, h)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			// RGBA() returns 16-bit channels; scale down to 8-bit before
			// applying the luminance coefficients.
			rf := float64(r >> 8)
			gf := float64(g >> 8)
			bf := float64(bl >> 8)
			m.Pix[y*w+x] = 0.299*rf + 0.587*gf + 0.114*bf
		}
	}

	return m
}

// Crop returns the rows [y0, y1) of m as a new Matrix.
func (m *Matrix) Crop(y0, y1 int) *Matrix {
	h := y1 - y0
	out := newMatrix(m.Width, h)
	copy(out.Pix, m.Pix[y0*m.Width:y1*m.Width])
	return out
}

// CropTop returns the first h rows.
func (m *Matrix) CropTop(h int) *Matrix {
	return m.Crop(0, h)
}

// CropBottom returns the last h rows.
func (m *Matrix) CropBottom(h int) *Matrix {
	return m.Crop(m.Height-h, m.Height)
}
