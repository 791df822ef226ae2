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

import "time"

// Phase identifies where in the state machine a Progress event was
// emitted.
type Phase string

const (
	PhaseInitial   Phase = "initial"
	PhaseIteration Phase = "iteration"
	PhaseStopping  Phase = "stopping"
	PhaseComplete  Phase = "complete"
)

// Progress is one event in the strictly monotonic sequence emitted
// during a capture. At is wall-clock capture time; ElapsedSec is
// measured from a single start timestamp recorded at the beginning of
// Capture.
type Progress struct {
	Phase           Phase
	Message         string
	At              time.Time
	ElapsedSec      float64
	SwipesPerformed int
	FramesCaptured  int
	MaxSwipes       int

	// Metrics is populated on PhaseIteration with the detector's
	// StopCheckResult fields, encoded as a plain map so this package
	// doesn't need to expose scroll.StopCheckResult on its public API.
	Metrics map[string]float64

	// Thumbnail is an optional preview PNG, long side <= 240px.
	Thumbnail []byte
}

// ProgressFunc receives Progress events synchronously on the engine's
// goroutine; it must not block on slow work (push onto a queue drained
// elsewhere if the sink needs to do slow UI work).
type ProgressFunc func(Progress)

// LogFunc receives human-readable log lines synchronously.
type LogFunc func(tag string, detail interface{})
