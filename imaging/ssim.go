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

// global SSIM constants, per the usual (0.01*255)^2 / (0.03*255)^2 form.
const (
	ssimC1 = (0.01 * 255) * (0.01 * 255)
	ssimC2 = (0.03 * 255) * (0.03 * 255)
)

// SSIM computes a single global-statistics structural similarity score
// (population mean/variance/covariance over the whole matrix, not a
// windowed map) for two equal-shape grayscale matrices. den == 0 returns
// exactly 1.0. Result is clamped to [-1, 1].
func SSIM(a, b *Matrix) (Similarity, error) {
	if a.Width != b.Width || a.Height != b.Height {
		return 0, wcerrors.Errorf(wcerrors.InvalidArgument, "mismatched matrix shape")
	}

	n := float64(len(a.Pix))
	if n == 0 {
		return 0, wcerrors.Errorf(wcerrors.InvalidArgument, "empty matrix")
	}

	var sumA, sumB float64
	for i := range a.Pix {
		sumA += a.Pix[i]
		sumB += b.Pix[i]
	}
	meanA := sumA / n
	meanB := sumB / n

	var varA, varB, covAB float64
	for i := range a.Pix {
		da := a.Pix[i] - meanA
		db := b.Pix[i] - meanB
		varA += da * da
		varB += db * db
		covAB += da * db
	}
	varA /= n
	varB /= n
	covAB /= n

	num := (2*meanA*meanB + ssimC1) * (2*covAB + ssimC2)
	den := (meanA*meanA + meanB*meanB + ssimC1) * (varA + varB + ssimC2)

	if den == 0 {
		return 1.0, nil
	}

	s := num / den
	if s > 1 {
		s = 1
	} else if s < -1 {
		s = -1
	}

	return Similarity(s), nil
}
