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

package imaging

import "github.com/jetsetilly/wearcapture/wcerrors"

// Similarity is a pixel-diff or SSIM score in [0,1] (SSIM can in theory
// dip to -1, see SSIM below).
type Similarity float64

// PixelDiffSimilarity computes max(0, 1 - mean(|a-b|)/255) over two
// equal-shape grayscale matrices.
func PixelDiffSimilarity(a, b *Matrix) (Similarity, error) {
	if a.Width != b.Width || a.Height != b.Height {
		return 0, wcerrors.Errorf(wcerrors.InvalidArgument, "mismatched matrix shape")
	}

	var sum float64
	for i := range a.Pix {
		d := a.Pix[i] - b.Pix[i]
		if d < 0 {
			d = -d
		}
		sum += d
	}

	mean := sum / float64(len(a.Pix))
	s := 1 - mean/255
	if s < 0 {
		s = 0
	}

	return Similarity(s), nil
}
