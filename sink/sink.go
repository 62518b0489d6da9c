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

// Package sink contains the audio sinks that the player writes rendered
// frames to. Every sink implements io.WriteCloser and accepts interleaved
// stereo 16-bit little-endian PCM.
//
// The sub-packages write to a WAV file (wavsink), to an audio device through
// SDL (sdlaudio) or oto (otoaudio), or to a running SHA-1 digest (digest).
// Null is the sink used when no audio output is wanted.
package sink

// Null is an audio sink that discards everything written to it.
type Null struct {
	written int64
}

// Write implements the io.Writer interface.
func (s *Null) Write(p []byte) (int, error) {
	s.written += int64(len(p))
	return len(p), nil
}

// Close implements the io.Closer interface.
func (s *Null) Close() error {
	return nil
}

// Written returns the number of bytes written to the sink.
func (s *Null) Written() int64 {
	return s.written
}
