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

// Package wcerrors is a helper package for the plain Go language error
// type. We think of these errors as curated errors. External to this
// package, curated errors are referenced as plain errors (ie. they
// implement the error interface).
//
// Curated errors are created with the Errorf() function, which takes a
// pattern string (one of the consts in kinds.go) and placeholder values,
// returning an error. The Is() function checks whether an error was
// created with a particular pattern:
//
//	err := wcerrors.Errorf(wcerrors.DeviceNotFound, "no online devices")
//	if wcerrors.Is(err, wcerrors.DeviceNotFound) {
//		...
//	}
//
// The Has() function is similar but checks for the pattern anywhere in a
// chain of wrapped curated errors, and IsAny() reports whether an error
// was produced by this package at all (as opposed to some unrelated,
// uncurated error).
//
// The Error() function normalises the message chain so that wrapping a
// curated error with another curated error doesn't duplicate adjacent
// parts of the message.
package wcerrors
