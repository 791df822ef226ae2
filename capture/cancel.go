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

import "sync/atomic"

// CancelFlag is a cooperative cancellation signal: any goroutine may
// Request(), and the engine polls Requested() at fixed checkpoints
// (before each iteration, during the post-swipe sleep, after each
// screenshot). It never aborts an in-flight bridge call.
type CancelFlag struct {
	flag atomic.Bool
}

// Request signals that the engine should stop at its next checkpoint.
func (c *CancelFlag) Request() {
	if c == nil {
		return
	}
	c.flag.Store(true)
}

// Requested reports whether Request has been called. A nil CancelFlag
// is never requested, so callers may omit cancellation entirely.
func (c *CancelFlag) Requested() bool {
	if c == nil {
		return false
	}
	return c.flag.Load()
}
