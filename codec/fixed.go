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

package codec

import (
	"github.com/jetsetilly/regplay/registers"
)

// Record sizes of the fixed width formats.
const (
	RawRecordSize   = registers.NumChipRegisters
	TimedRecordSize = registers.NumChipRegisters + 2
)

// fixed implements both of the fixed width formats. the timed format is the
// raw format with two extra bytes.
type fixed struct {
	src   Source
	timed bool
	buf   []byte
	pairs []registers.Pair
}

func newFixed(src Source, size int, timed bool) *fixed {
	dec := &fixed{
		src:   src,
		timed: timed,
		buf:   make([]byte, size),
		pairs: make([]registers.Pair, size),
	}
	for i := range dec.pairs {
		dec.pairs[i].Reg = uint8(i)
	}
	return dec
}

func (dec *fixed) Next() (Frame, error) {
	if err := readRecordStart(dec.src, dec.buf); err != nil {
		return Frame{}, err
	}

	for i, v := range dec.buf {
		dec.pairs[i].Value = v
	}

	f := Frame{
		Pairs: dec.pairs,
		Mode:  registers.ModeDiff,
	}

	if dec.timed {
		f.Override = true
		f.Period = uint16(dec.buf[registers.PeriodHi])<<8 | uint16(dec.buf[registers.PeriodLo])
	}

	return f, nil
}

// Raw decodes records of 25 bytes. Byte N of the record is the value of
// register N. Raw records have no period information.
type Raw struct {
	*fixed
}

// NewRaw is the preferred method of initialisation for the Raw type.
func NewRaw(src Source) *Raw {
	return &Raw{fixed: newFixed(src, RawRecordSize, false)}
}

// Format implements the Decoder interface.
func (dec *Raw) Format() Format {
	return FormatRaw
}

// Timed decodes records of 27 bytes. The first 25 bytes are the same as a Raw
// record. Bytes 25 and 26 are the high and low bytes of the frame period for
// the frame being decoded.
type Timed struct {
	*fixed
}

// NewTimed is the preferred method of initialisation for the Timed type.
func NewTimed(src Source) *Timed {
	return &Timed{fixed: newFixed(src, TimedRecordSize, true)}
}

// Format implements the Decoder interface.
func (dec *Timed) Format() Format {
	return FormatTimed
}
