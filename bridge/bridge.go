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

// Package bridge abstracts the external device-debug bridge (ADB) that
// the capture engine drives: availability checks, device enumeration,
// screenshots, and swipe gestures.
package bridge

import "image"

// Bridge is the collaborator the capture engine consumes. Implementations
// must bound every call with a timeout (default 15s) at the adapter
// layer; the engine itself applies no timeout.
type Bridge interface {
	// IsAvailable reports whether the bridge binary is reachable.
	IsAvailable() bool

	// ListOnlineSerials returns device IDs in state "device" (online).
	ListOnlineSerials() ([]string, error)

	// CaptureScreen returns a decoded RGB frame from the given serial.
	CaptureScreen(serial string) (image.Image, error)

	// Swipe fires a swipe gesture. Fire-and-forget: errors are reported
	// but the gesture is not retried.
	Swipe(serial string, x1, y1, x2, y2, durationMs int) error

	// DisplaySize returns the device's reported (width, height), or ok=false
	// if it could not be determined.
	DisplaySize(serial string) (w, h int, ok bool)
}
