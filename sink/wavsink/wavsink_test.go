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

package wavsink_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/jetsetilly/regplay/sink/wavsink"
	"github.com/jetsetilly/regplay/test"
)

func TestWavSink(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "out.wav")

	ws, err := wavsink.New(fn, 44100)
	test.DemandSuccess(t, err)

	// two sample frames
	n, err := ws.Write([]byte{0x01, 0x00, 0xff, 0xff, 0x00, 0x80, 0xff, 0x7f})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 8)

	// partial sample frames are not written
	n, err = ws.Write([]byte{0x10, 0x00, 0x20, 0x00, 0x30})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 4)

	test.ExpectEquality(t, ws.Frames(), 3)
	test.DemandSuccess(t, ws.Close())

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	test.DemandSuccess(t, dec.IsValidFile())

	buf, err := dec.FullPCMBuffer()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, int(dec.NumChans), 2)
	test.ExpectEquality(t, int(dec.SampleRate), 44100)
	test.ExpectEquality(t, int(dec.BitDepth), 16)

	expected := []int{1, -1, -32768, 32767, 16, 32}
	test.DemandEquality(t, len(buf.Data), len(expected))
	for i := range expected {
		test.ExpectEquality(t, buf.Data[i], expected[i], i)
	}
}
