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


package test

import (
	"fmt"
)

// RingWriter is an implementation of io.Writer that keeps only the most recent
// bytes written to it. Older bytes are discarded as new bytes arrive.
type RingWriter struct {
	size int
	tail []byte
}

// NewRingWriter is the preferred method of initialisation for the RingWriter
// type.
func NewRingWriter(size int) (*RingWriter, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid size for RingWriter (%d)", size)
	}
	return &RingWriter{
		size: size,
		tail: make([]byte, 0, size),
	}, nil
}

func (r *RingWriter) String() string {
	return string(r.tail)
}

// Reset forgets everything written so far.
func (r *RingWriter) Reset() {
	r.tail = r.tail[:0]
}

// Write implements io.Writer
func (r *RingWriter) Write(p []byte) (int, error) {
	if len(p) >= r.size {
		r.tail = append(r.tail[:0], p[len(p)-r.size:]...)
		return len(p), nil
	}

	if over := len(r.tail) + len(p) - r.size; over > 0 {
		r.tail = append(r.tail[:0], r.tail[over:]...)
	}
	r.tail = append(r.tail, p...)

	return len(p), nil
}
