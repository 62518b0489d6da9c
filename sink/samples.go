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

package sink

import "encoding/binary"

// Samples converts interleaved 16-bit little-endian PCM into sample values.
// The values are appended to the dst slice, which is returned. An odd byte at
// the end of the data is ignored.
func Samples(dst []int, p []byte) []int {
	for i := 0; i+1 < len(p); i += 2 {
		dst = append(dst, int(int16(binary.LittleEndian.Uint16(p[i:]))))
	}
	return dst
}
