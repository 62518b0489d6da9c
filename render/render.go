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

// Package render produces the sample window for each frame. The samples
// themselves are generated by the sound chip, which is reached through the
// Generator interface.
//
// The output buffer has a fixed capacity. A frame that needs more samples
// than the buffer can hold is an overrun and nothing is rendered. There is
// no partial output. Because the frame period can change on any frame, the
// capacity is checked on every call to Render().
package render

import (
	"github.com/jetsetilly/regplay/curated"
)

// Overrun is returned by Render() when the number of samples for a frame
// will not fit in the output buffer.
const Overrun = "render: overrun: %d sample frames needed, capacity %d"

// InvalidCapacity is returned by NewRenderer().
const InvalidCapacity = "render: invalid capacity (%d bytes)"

// BytesPerSample is the size of one stereo 16-bit sample frame.
const BytesPerSample = 4

// Generator is the capability that produces audio samples. Generate() must
// fill the entire buffer with interleaved stereo 16-bit little-endian PCM.
// The length of the buffer will always be a multiple of BytesPerSample.
type Generator interface {
	Generate(buf []byte)
}

// SamplesPerFrame returns the number of sample frames needed to fill a frame
// period (in microseconds) at the sample rate. The result is rounded to the
// nearest sample.
func SamplesPerFrame(sampleRate int, period int64) int {
	if sampleRate <= 0 || period <= 0 {
		return 0
	}
	return int((int64(sampleRate)*period + 500000) / 1000000)
}

// Renderer owns the output buffer.
type Renderer struct {
	buf []byte
}

// NewRenderer is the preferred method of initialisation for the Renderer
// type. The capacity is in bytes and should be a multiple of BytesPerSample.
// Any remainder is unused.
func NewRenderer(capacity int) (*Renderer, error) {
	if capacity < BytesPerSample {
		return nil, curated.Errorf(InvalidCapacity, capacity)
	}
	return &Renderer{
		buf: make([]byte, capacity-capacity%BytesPerSample),
	}, nil
}

// Capacity returns the capacity of the output buffer in sample frames.
func (rnd *Renderer) Capacity() int {
	return len(rnd.buf) / BytesPerSample
}

// Fits returns true if the number of sample frames will fit in the output
// buffer.
func (rnd *Renderer) Fits(n int) bool {
	return n*BytesPerSample <= len(rnd.buf)
}

// Render n sample frames with the generator. The returned slice is exactly
// n*BytesPerSample bytes long and is only valid until the next call to
// Render().
func (rnd *Renderer) Render(gen Generator, n int) ([]byte, error) {
	if !rnd.Fits(n) {
		return nil, curated.Errorf(Overrun, n, rnd.Capacity())
	}
	if n <= 0 {
		return rnd.buf[:0], nil
	}

	out := rnd.buf[:n*BytesPerSample]
	gen.Generate(out)
	return out, nil
}
