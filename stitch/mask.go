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
	"image/color"
	"image/draw"
)

// ApplyCircularMask crops img to its largest centered square, converts
// it to RGBA, and applies a filled-ellipse alpha mask (opaque inside the
// circle, transparent outside). Used for round watch faces.
func ApplyCircularMask(img image.Image) *image.RGBA {
	b := img.Bounds()
	side := b.Dx()
	if b.Dy() < side {
		side = b.Dy()
	}

	cx := b.Min.X + b.Dx()/2
	cy := b.Min.Y + b.Dy()/2
	sq := image.Rect(cx-side/2, cy-side/2, cx-side/2+side, cy-side/2+side)

	out := image.NewRGBA(image.Rect(0, 0, side, side))
	draw.Draw(out, out.Bounds(), img, sq.Min, draw.Src)

	r := float64(side) / 2
	cxf, cyf := r, r

	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			dx := float64(x) + 0.5 - cxf
			dy := float64(y) + 0.5 - cyf
			if dx*dx+dy*dy > r*r {
				out.Set(x, y, color.RGBA{})
			}
		}
	}

	return out
}
