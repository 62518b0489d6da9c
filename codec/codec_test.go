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

package codec_test

import (
	"bytes"
	"testing"

	"github.com/jetsetilly/regplay/codec"
	"github.com/jetsetilly/regplay/curated"
	"github.com/jetsetilly/regplay/registers"
	"github.com/jetsetilly/regplay/test"
)

func rawRecord(v uint8) []byte {
	b := make([]byte, codec.RawRecordSize)
	for i := range b {
		b[i] = v
	}
	return b
}

func TestRaw(t *testing.T) {
	data := append(rawRecord(1), rawRecord(2)...)
	dec := codec.NewRaw(codec.NewByteSource(data))
	test.ExpectEquality(t, dec.Format(), codec.FormatRaw)

	f, err := dec.Next()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(f.Pairs), registers.NumChipRegisters)
	test.ExpectEquality(t, f.Mode, registers.ModeDiff)
	test.ExpectFailure(t, f.Override)
	for i, p := range f.Pairs {
		test.ExpectEquality(t, p, registers.Pair{Reg: uint8(i), Value: 1})
	}

	f, err = dec.Next()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, f.Pairs[24].Value, uint8(2))

	_, err = dec.Next()
	test.ExpectSuccess(t, curated.Is(err, codec.EndOfTrack))
}

func TestRawPartialRecord(t *testing.T) {
	// a partial fixed width record at the end of the stream is a clean end
	data := append(rawRecord(1), 1, 2, 3)
	dec := codec.NewRaw(codec.NewByteSource(data))

	_, err := dec.Next()
	test.DemandSuccess(t, err)

	_, err = dec.Next()
	test.ExpectSuccess(t, curated.Is(err, codec.EndOfTrack))
}

func TestTimed(t *testing.T) {
	data := append(rawRecord(5), 0x4c, 0xc7)
	dec := codec.NewTimed(codec.NewByteSource(data))
	test.ExpectEquality(t, dec.Format(), codec.FormatTimed)

	f, err := dec.Next()
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, f.Override)
	test.ExpectEquality(t, f.Period, uint16(0x4cc7))
	test.ExpectEquality(t, len(f.Pairs), codec.TimedRecordSize)
	test.ExpectEquality(t, f.Mode, registers.ModeDiff)

	_, err = dec.Next()
	test.ExpectSuccess(t, curated.Is(err, codec.EndOfTrack))
}

func TestRunLengthDiffPeriodAssembly(t *testing.T) {
	orders := [][]byte{
		{3, 25, 0x01, 4, 0x41, 26, 0x2c},
		{3, 26, 0x2c, 4, 0x41, 25, 0x01},
	}

	for _, data := range orders {
		dec := codec.NewRunLengthDiff(codec.NewByteSource(data))
		f, err := dec.Next()
		test.DemandSuccess(t, err)
		test.ExpectSuccess(t, f.Override)
		test.ExpectEquality(t, f.Period, uint16(300))
		test.ExpectEquality(t, f.Mode, registers.ModeForced)
		test.ExpectEquality(t, len(f.Pairs), 3)
	}
}

func TestRunLengthDiffPeriodPersists(t *testing.T) {
	data := []byte{
		2, 25, 0x01, 26, 0x2c,
		1, 26, 0x00,
		1, 0, 0x10,
	}
	dec := codec.NewRunLengthDiff(codec.NewByteSource(data))

	f, err := dec.Next()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, f.Period, uint16(0x012c))

	// only the low byte changes. the high byte is remembered
	f, err = dec.Next()
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, f.Override)
	test.ExpectEquality(t, f.Period, uint16(0x0100))

	// no timing registers means no override
	f, err = dec.Next()
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, f.Override)
}

func TestRunLengthDiffLastWins(t *testing.T) {
	data := []byte{4, 25, 0x02, 25, 0x01, 26, 0x2c, 26, 0x2c}
	dec := codec.NewRunLengthDiff(codec.NewByteSource(data))

	f, err := dec.Next()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, f.Period, uint16(300))
}

func TestRunLengthDiffEmptyFrame(t *testing.T) {
	dec := codec.NewRunLengthDiff(codec.NewByteSource([]byte{0, 0}))
	for i := 0; i < 2; i++ {
		f, err := dec.Next()
		test.DemandSuccess(t, err)
		test.ExpectSuccess(t, f.Empty())
	}
	_, err := dec.Next()
	test.ExpectSuccess(t, curated.Is(err, codec.EndOfTrack))
}

func TestTruncation(t *testing.T) {
	// ends exactly on a record boundary
	clean := []byte{1, 4, 0x41, 2, 0, 0x10, 1, 0x20}
	dec := codec.NewRunLengthDiff(codec.NewByteSource(clean))
	_, err := dec.Next()
	test.DemandSuccess(t, err)
	_, err = dec.Next()
	test.DemandSuccess(t, err)
	_, err = dec.Next()
	test.ExpectSuccess(t, curated.Is(err, codec.EndOfTrack))
	test.ExpectFailure(t, curated.Is(err, codec.Corrupt))

	// ends one byte into the body of a record that declares two pairs
	truncated := []byte{1, 4, 0x41, 2, 0}
	dec = codec.NewRunLengthDiff(codec.NewByteSource(truncated))
	_, err = dec.Next()
	test.DemandSuccess(t, err)
	_, err = dec.Next()
	test.ExpectSuccess(t, curated.Is(err, codec.Corrupt))
	test.ExpectFailure(t, curated.Is(err, codec.EndOfTrack))
}

func TestRoundTrip(t *testing.T) {
	pairs := []registers.Pair{
		{Reg: 0, Value: 0x11},
		{Reg: 4, Value: 0x41},
		{Reg: 24, Value: 0x0f},
		{Reg: 4, Value: 0x40},
		{Reg: 26, Value: 0x2c},
	}

	b := &bytes.Buffer{}
	test.DemandSuccess(t, codec.WriteRecord(b, pairs))
	test.ExpectEquality(t, b.Len(), 1+len(pairs)*2)

	dec := codec.NewRunLengthDiff(codec.NewByteSource(b.Bytes()))
	f, err := dec.Next()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(f.Pairs), len(pairs))
	for i := range pairs {
		test.ExpectEquality(t, f.Pairs[i], pairs[i])
	}

	// applying the decoded frame resolves the duplicate register to the last
	// value in the record
	bnk := registers.NewBank(nil)
	bnk.Apply(f.Mode, f.Pairs)
	test.ExpectEquality(t, bnk.Value(4), uint8(0x40))
}

func TestTooManyPairs(t *testing.T) {
	pairs := make([]registers.Pair, codec.MaxPairs+1)
	err := codec.WriteRecord(&bytes.Buffer{}, pairs)
	test.ExpectSuccess(t, curated.Is(err, codec.TooManyPairs))
}

func TestConvert(t *testing.T) {
	second := rawRecord(0)
	second[4] = 0x41
	data := append(rawRecord(0), second...)
	data = append(data, rawRecord(0)...)

	b := &bytes.Buffer{}
	n, err := codec.Convert(codec.NewRaw(codec.NewByteSource(data)), b)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, n, 3)

	// first record lists everything, then one change, then one change back
	expectedSize := (1 + registers.NumChipRegisters*2) + 3 + 3
	test.ExpectEquality(t, b.Len(), expectedSize)

	dec := codec.NewRunLengthDiff(codec.NewByteSource(b.Bytes()))
	f, err := dec.Next()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(f.Pairs), registers.NumChipRegisters)
	f, err = dec.Next()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(f.Pairs), 1)
	test.ExpectEquality(t, f.Pairs[0], registers.Pair{Reg: 4, Value: 0x41})
}

func TestParseFormat(t *testing.T) {
	f, err := codec.ParseFormat("RLD")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, f, codec.FormatRunLengthDiff)

	f, err = codec.ParseFormat("cia")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, f, codec.FormatTimed)

	_, err = codec.ParseFormat("mp3")
	test.ExpectSuccess(t, curated.Is(err, codec.UnknownFormat))

	dec, err := codec.NewDecoder(codec.FormatTimed, codec.NewByteSource(nil))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, dec.Format(), codec.FormatTimed)
}
