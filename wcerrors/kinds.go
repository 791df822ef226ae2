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

package wcerrors

// error kinds surfaced by the capture core. each is a pattern suitable for
// use with Errorf(), Is() and Has().
const (
	// InvalidConfig is returned on validation failure of any
	// capture.Config field.
	InvalidConfig = "invalid config: %v"

	// BridgeUnavailable is returned when the device bridge binary cannot
	// be reached.
	BridgeUnavailable = "bridge unavailable: %v"

	// DeviceNotFound is returned when no online device is found, or a
	// requested serial is not online.
	DeviceNotFound = "device not found: %v"

	// MultipleDevices is returned when more than one device is online
	// and no preferred serial was given.
	MultipleDevices = "multiple devices: %v"

	// CaptureFailed is returned when a screenshot payload is missing or
	// cannot be decoded after all fallbacks.
	CaptureFailed = "capture failed: %v"

	// InvalidArgument indicates an internal contract violation (mismatched
	// similarity shapes, empty stitch input): a programming bug, not a
	// runtime condition a caller can recover from by retrying.
	InvalidArgument = "invalid argument: %v"
)
