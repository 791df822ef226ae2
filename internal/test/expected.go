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

// Package test provides small assertion helpers in the style of the
// standard library's testing package. The logger tests use these;
// newer domain packages use testify instead.
package test

import (
	"reflect"
	"testing"
)

// ExpectSuccess fails the test if v is a non-nil error or false.
func ExpectSuccess(t *testing.T, v interface{}) {
	t.Helper()

	switch w := v.(type) {
	case error:
		if w != nil {
			t.Errorf("expected success but got error: %v", w)
		}
	case bool:
		if !w {
			t.Errorf("expected success but got false")
		}
	case nil:
		// nil is success
	default:
		t.Errorf("unsupported type for ExpectSuccess: %T", v)
	}
}

// ExpectFailure fails the test if v is nil or true.
func ExpectFailure(t *testing.T, v interface{}) {
	t.Helper()

	switch w := v.(type) {
	case error:
		if w == nil {
			t.Errorf("expected failure but got nil error")
		}
	case bool:
		if w {
			t.Errorf("expected failure but got true")
		}
	default:
		t.Errorf("unsupported type for ExpectFailure: %T", v)
	}
}

// ExpectEquality fails the test if a and b are not deeply equal.
func ExpectEquality(t *testing.T, a, b interface{}) {
	t.Helper()

	if !reflect.DeepEqual(a, b) {
		t.Errorf("expected equality: %v != %v", a, b)
	}
}

// ExpectInequality fails the test if a and b are deeply equal.
func ExpectInequality(t *testing.T, a, b interface{}) {
	t.Helper()

	if reflect.DeepEqual(a, b) {
		t.Errorf("expected inequality: %v == %v", a, b)
	}
}

// ExpectApproximate fails the test if a and b differ by more than
// tolerance.
func ExpectApproximate(t *testing.T, a, b float64, tolerance float64) {
	t.Helper()

	d := a - b
	if d < 0 {
		d = -d
	}
	if d > tolerance {
		t.Errorf("expected %v to be within %v of %v", a, tolerance, b)
	}
}
