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

package capture

// SwipeSpec is the swipe gesture derived once per capture from the first
// frame's dimensions.
type SwipeSpec struct {
	X1, Y1, X2, Y2 int
	DurationMs     int
}

// deriveSwipeSpec derives the swipe geometry from the first frame's
// dimensions: in simple mode, geometry comes entirely from frame size;
// in advanced mode, each coordinate falls back to the simple-mode value
// when the config override is absent.
func deriveSwipeSpec(cfg Config, w, h int) SwipeSpec {
	x := w / 2
	y1 := int(0.78*float64(h) + 0.5)
	y2 := int(0.24*float64(h) + 0.5)

	if cfg.SimpleMode {
		return SwipeSpec{X1: x, Y1: y1, X2: x, Y2: y2, DurationMs: 300}
	}

	spec := SwipeSpec{X1: x, Y1: y1, X2: x, Y2: y2, DurationMs: cfg.SwipeDurationMs}
	if cfg.SwipeX1 != nil {
		spec.X1 = *cfg.SwipeX1
	}
	if cfg.SwipeY1 != nil {
		spec.Y1 = *cfg.SwipeY1
	}
	if cfg.SwipeX2 != nil {
		spec.X2 = *cfg.SwipeX2
	}
	if cfg.SwipeY2 != nil {
		spec.Y2 = *cfg.SwipeY2
	}

	return spec
}
