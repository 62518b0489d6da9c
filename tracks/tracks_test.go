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

package tracks_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jetsetilly/regplay/codec"
	"github.com/jetsetilly/regplay/curated"
	"github.com/jetsetilly/regplay/registers"
	"github.com/jetsetilly/regplay/test"
	"github.com/jetsetilly/regplay/tracks"
)

func writeFile(t *testing.T, dir string, name string, data []byte) string {
	t.Helper()
	fn := filepath.Join(dir, name)
	test.DemandSuccess(t, os.WriteFile(fn, data, 0o644))
	return fn
}

func TestFormatFromFilename(t *testing.T) {
	f, ok := tracks.FormatFromFilename("commando.dmp")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, f, codec.FormatRaw)

	f, ok = tracks.FormatFromFilename("cybernoid.DMP2")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, f, codec.FormatTimed)

	f, ok = tracks.FormatFromFilename("delta.rld")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, f, codec.FormatRunLengthDiff)

	f, ok = tracks.FormatFromFilename(filepath.Join("sd", "DMP3", "monty"))
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, f, codec.FormatRunLengthDiff)

	_, ok = tracks.FormatFromFilename("readme.txt")
	test.ExpectFailure(t, ok)
}

func TestDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.rld", []byte{0})
	writeFile(t, dir, "a.dmp", make([]byte, 25))
	writeFile(t, dir, "c.bin", []byte{1, 2})
	writeFile(t, dir, ".hidden", []byte{1})
	test.DemandSuccess(t, os.Mkdir(filepath.Join(dir, "subdir"), 0o755))

	sel, err := tracks.NewDirectory(dir, codec.FormatTimed)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, sel.Len(), 3)

	expected := []struct {
		name   string
		format codec.Format
	}{
		{"a.dmp", codec.FormatRaw},
		{"b.rld", codec.FormatRunLengthDiff},
		{"c.bin", codec.FormatTimed},
		{"a.dmp", codec.FormatRaw},
	}

	for _, e := range expected {
		trk, err := sel.Next()
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, trk.Name(), e.name)
		test.ExpectEquality(t, trk.Format(), e.format)
		test.ExpectSuccess(t, trk.Close())
	}
}

func TestDirectoryRescanOnWrap(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.dmp", make([]byte, 25))

	sel, err := tracks.NewDirectory(dir, codec.FormatRaw)
	test.DemandSuccess(t, err)

	trk, err := sel.Next()
	test.DemandSuccess(t, err)
	trk.Close()

	// a file added after the first scan is seen when the list wraps
	writeFile(t, dir, "b.dmp", make([]byte, 25))
	trk, err = sel.Next()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, trk.Name(), "a.dmp")
	trk.Close()

	trk, err = sel.Next()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, trk.Name(), "b.dmp")
	trk.Close()
}

func TestEmptyDirectory(t *testing.T) {
	_, err := tracks.NewDirectory(t.TempDir(), codec.FormatRaw)
	test.ExpectSuccess(t, curated.Is(err, tracks.NoTracks))

	_, err = tracks.NewDirectory(filepath.Join(t.TempDir(), "missing"), codec.FormatRaw)
	test.ExpectSuccess(t, curated.Is(err, tracks.OpenError))
}

func TestSingleFile(t *testing.T) {
	fn := writeFile(t, t.TempDir(), "tune.dmp2", []byte{1, 2, 3, 4})

	sel, err := tracks.NewDirectory(fn, codec.FormatRaw)
	test.DemandSuccess(t, err)

	for i := 0; i < 2; i++ {
		trk, err := sel.Next()
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, trk.Name(), "tune.dmp2")
		test.ExpectEquality(t, trk.Format(), codec.FormatTimed)
		test.ExpectSuccess(t, trk.Available())

		b, err := io.ReadAll(trk)
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, len(b), 4)
		test.ExpectFailure(t, trk.Available())
		test.ExpectSuccess(t, trk.Close())
	}
}

func TestList(t *testing.T) {
	lst := &tracks.List{}
	_, err := lst.Next()
	test.ExpectSuccess(t, curated.Is(err, tracks.NoTracks))

	lst.Entries = []tracks.Entry{
		{Name: "one", Format: codec.FormatRaw, Data: []byte{1}},
		{Name: "two", Format: codec.FormatRunLengthDiff},
	}

	for _, name := range []string{"one", "two", "one"} {
		trk, err := lst.Next()
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, trk.Name(), name)
	}
	test.ExpectEquality(t, len(lst.Opened), 3)
	test.ExpectSuccess(t, lst.Opened[0].Available())
	test.ExpectFailure(t, lst.Opened[1].Available())
}

func TestSummarise(t *testing.T) {
	// two frames at the default period and one frame at 10000 ticks
	data := []byte{
		1, 4, 0x41,
		0,
		2, registers.PeriodHi, 0x27, registers.PeriodLo, 0x10,
	}

	s := tracks.Summarise(tracks.NewMemory("tune", codec.FormatRunLengthDiff, data), 1.0)
	test.ExpectSuccess(t, s.Err)
	test.ExpectEquality(t, s.Frames, 3)
	test.ExpectEquality(t, s.Overrides, 1)
	test.ExpectEquality(t, s.Pairs, 3)
	test.ExpectEquality(t, s.Duration, 50*time.Millisecond)

	s = tracks.Summarise(tracks.NewMemory("tune", codec.FormatRunLengthDiff, data), 2.0)
	test.ExpectEquality(t, s.Duration, 60*time.Millisecond)

	// a corrupt frame stops the scan
	s = tracks.Summarise(tracks.NewMemory("bad", codec.FormatRunLengthDiff, append(data, 2, 0)), 1.0)
	test.ExpectEquality(t, s.Frames, 3)
	test.ExpectSuccess(t, curated.Is(s.Err, codec.Corrupt))
}
