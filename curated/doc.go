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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. It takes a formatting
// pattern and placeholder values in the same way as fmt.Errorf(), but the
// pattern is remembered so that the error can later be identified by it:
//
//	const EndOfTrack = "codec: end of track (%s)"
//
//	e := curated.Errorf(EndOfTrack, "tune.dmp")
//	if curated.Is(e, EndOfTrack) {
//		...
//	}
//
// Has() is similar to Is() but searches the whole error chain. An error is
// part of the chain when it is used as a placeholder value:
//
//	f := curated.Errorf("player: %v", e)
//	curated.Has(f, EndOfTrack) // true
//	curated.Is(f, EndOfTrack)  // false
//
// Patterns that are used as sentinels should be declared as constants by the
// package that creates them. Every package in Regplay that returns errors
// which callers are expected to act on does this.
//
// The Error() implementation normalises the error chain by removing
// duplicate adjacent parts. A chain is composed of parts separated by the
// sub-string ": ". For example, the following:
//
//	curated.Errorf("tracks: %v", curated.Errorf("tracks: %v", "no tracks found"))
//
// will print as
//
//	tracks: no tracks found
//
// and not
//
//	tracks: tracks: no tracks found
package curated
