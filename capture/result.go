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

import "github.com/google/uuid"

// Result is the outcome of a completed (or cancelled-but-saved) capture.
type Result struct {
	SessionID       string
	OutputPath      string
	DeviceSerial    string
	FramesCaptured  int
	SwipesPerformed int
	StopReason      string
	ImageWidth      int
	ImageHeight     int
}

func newSessionID() string {
	return uuid.NewString()
}
