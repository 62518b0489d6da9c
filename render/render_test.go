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

package render_test

import (
	"testing"

	"github.com/jetsetilly/regplay/curated"
	"github.com/jetsetilly/regplay/render"
	"github.com/jetsetilly/regplay/test"
)

type countingGenerator struct {
	calls int
	size  int
}

func (gen *countingGenerator) Generate(buf []byte) {
	gen.calls++
	gen.size = len(buf)
	for i := range buf {
		buf[i] = 0x55
	}
}

func TestSamplesPerFrame(t *testing.T) {
	test.ExpectEquality(t, render.SamplesPerFrame(44100, 20000), 882)
	test.ExpectEquality(t, render.SamplesPerFrame(44100, 50000), 2205)
	test.ExpectEquality(t, render.SamplesPerFrame(48000, 20000), 960)

	// 22050 * 0.019656 = 433.4148
	test.ExpectEquality(t, render.SamplesPerFrame(22050, 19656), 433)

	// 44100 * 0.0001 = 4.41 and 44100 * 0.00015 = 6.615
	test.ExpectEquality(t, render.SamplesPerFrame(44100, 100), 4)
	test.ExpectEquality(t, render.SamplesPerFrame(44100, 150), 7)

	test.ExpectEquality(t, render.SamplesPerFrame(44100, 0), 0)
}

func TestCapacityBoundary(t *testing.T) {
	rnd, err := render.NewRenderer(8192)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, rnd.Capacity(), 2048)

	gen := &countingGenerator{}

	out, err := rnd.Render(gen, render.SamplesPerFrame(44100, 20000))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(out), 882*4)
	test.ExpectEquality(t, gen.size, 882*4)

	out, err = rnd.Render(gen, 2048)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(out), 8192)

	_, err = rnd.Render(gen, render.SamplesPerFrame(44100, 50000))
	test.ExpectSuccess(t, curated.Is(err, render.Overrun))

	// the generator is not called on overrun
	test.ExpectEquality(t, gen.calls, 2)
}

func TestInvalidCapacity(t *testing.T) {
	_, err := render.NewRenderer(3)
	test.ExpectSuccess(t, curated.Is(err, render.InvalidCapacity))

	rnd, err := render.NewRenderer(4*882 + 3)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, rnd.Capacity(), 882)
}
