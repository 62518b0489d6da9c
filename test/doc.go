// This file is part of Regplay.
//
// Regplay is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Regplay is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Regplay.  If not, see <https://www.gnu.org/licenses/>.

// Package test bundles a set of helper functions that remove common
// boilerplate from tests. It is intended to be used in conjunction with the
// standard go test harness.
//
// The Expect functions report a failure and allow the test to continue. The
// Demand functions stop the test immediately and should be used when the
// value being tested is required by later parts of the test. For example,
// testing that the length of a slice is correct before indexing into it.
//
// ExpectSuccess() and ExpectFailure() interpret their argument according to
// type:
//
//	bool  -> true is success
//	error -> nil is success
//	nil   -> success
//
// The nil type is considered a success because of how errors are usually
// returned (nil to indicate no error).
//
// The Writer type implements the io.Writer interface and should be used to
// capture output. The Writer.Compare() function can then be used to test for
// equality. RingWriter keeps only the tail of what is written to it.
// SinkWriter stands in for an audio device that has a limited amount of
// buffer space and refuses part of a write when it is full.
package test
