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

// SinkWriter is an implementation of io.Writer that behaves like an audio
// device with a fixed amount of buffer space. Only whole sample frames are
// accepted. When there is not enough room for all of a write the remainder is
// refused and the write is counted as short. Drain() frees space as if the
// device had played some of the buffered audio.
type SinkWriter struct {
	frameSize int
	capacity  int
	buffered  []byte

	writes      int
	shortWrites int
}

// NewSinkWriter is the preferred method of initialisation for the SinkWriter
// type. The capacity and the frame size are in bytes.
func NewSinkWriter(capacity int, frameSize int) (*SinkWriter, error) {
	if frameSize <= 0 {
		return nil, fmt.Errorf("invalid frame size for SinkWriter (%d)", frameSize)
	}
	if capacity < frameSize {
		return nil, fmt.Errorf("invalid capacity for SinkWriter (%d)", capacity)
	}
	return &SinkWriter{
		frameSize: frameSize,
		capacity:  capacity - capacity%frameSize,
	}, nil
}

// Write implements io.Writer. A short write is not an error.
func (s *SinkWriter) Write(p []byte) (int, error) {
	s.writes++

	n := min(len(p), s.capacity-len(s.buffered))
	n -= n % s.frameSize
	s.buffered = append(s.buffered, p[:n]...)

	if n < len(p) {
		s.shortWrites++
	}

	return n, nil
}

// Drain removes up to n bytes from the front of the buffer.
func (s *SinkWriter) Drain(n int) {
	n = min(n, len(s.buffered))
	s.buffered = append(s.buffered[:0], s.buffered[n:]...)
}

// Len returns the number of bytes currently buffered.
func (s *SinkWriter) Len() int {
	return len(s.buffered)
}

// Bytes returns the buffered data.
func (s *SinkWriter) Bytes() []byte {
	return s.buffered
}

// Writes returns the number of calls to Write().
func (s *SinkWriter) Writes() int {
	return s.writes
}

// ShortWrites returns the number of writes that were not accepted in full.
func (s *SinkWriter) ShortWrites() int {
	return s.shortWrites
}
