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

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeriveSwipeSpecSimpleMode(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SimpleMode = true

	spec := deriveSwipeSpec(cfg, 200, 400)
	require.Equal(t, 100, spec.X1)
	require.Equal(t, 100, spec.X2)
	require.Equal(t, 312, spec.Y1)
	require.Equal(t, 96, spec.Y2)
	require.Equal(t, 300, spec.DurationMs)
}

func TestDeriveSwipeSpecAdvancedOverrides(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SimpleMode = false
	cfg.SwipeDurationMs = 500
	x1 := 10
	cfg.SwipeX1 = &x1

	spec := deriveSwipeSpec(cfg, 200, 400)
	require.Equal(t, 10, spec.X1)
	require.Equal(t, 100, spec.X2) // not overridden, falls back to simple-mode value
	require.Equal(t, 500, spec.DurationMs)
}

func TestDeriveSwipeSpecAdvancedNoOverridesMatchesSimple(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SimpleMode = false
	cfg.SwipeDurationMs = 300

	simple := deriveSwipeSpec(Config{SimpleMode: true}, 200, 400)
	advanced := deriveSwipeSpec(cfg, 200, 400)

	require.Equal(t, simple.X1, advanced.X1)
	require.Equal(t, simple.Y1, advanced.Y1)
	require.Equal(t, simple.X2, advanced.X2)
	require.Equal(t, simple.Y2, advanced.Y2)
}
