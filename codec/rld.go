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

// MaxPairs is the largest number of pairs a RunLengthDiff record can hold.
const MaxPairs = 255

// RunLengthDiff decodes variable length records. The first byte of a record
// is the number of (register, value) pairs that follow.
//
// The period bytes persist for the lifetime of the decoder. A record that
// changes only one of the two bytes assembles its period from the other
// byte's most recent value.
type RunLengthDiff struct {
	src   Source
	count [1]byte
	body  []byte
	pairs []registers.Pair

	periodHi uint8
	periodLo uint8
}

// NewRunLengthDiff is the preferred method of initialisation for the
// RunLengthDiff type.
func NewRunLengthDiff(src Source) *RunLengthDiff {
	return &RunLengthDiff{
		src:   src,
		body:  make([]byte, MaxPairs*2),
		pairs: make([]registers.Pair, 0, MaxPairs),
	}
}

// Format implements the Decoder interface.
func (dec *RunLengthDiff) Format() Format {
	return FormatRunLengthDiff
}

// Next implements the Decoder interface.
func (dec *RunLengthDiff) Next() (Frame, error) {
	if err := readRecordStart(dec.src, dec.count[:]); err != nil {
		return Frame{}, err
	}

	n := int(dec.count[0])
	body := dec.body[:n*2]
	if err := readRecordBody(dec.src, body); err != nil {
		return Frame{}, err
	}

	f := Frame{Mode: registers.ModeForced}

	dec.pairs = dec.pairs[:0]
	for i := 0; i < len(body); i += 2 {
		p := registers.Pair{Reg: body[i], Value: body[i+1]}
		dec.pairs = append(dec.pairs, p)

		switch p.Reg {
		case registers.PeriodHi:
			dec.periodHi = p.Value
			f.Override = true
		case registers.PeriodLo:
			dec.periodLo = p.Value
			f.Override = true
		}
	}

	f.Pairs = dec.pairs
	if f.Override {
		f.Period = uint16(dec.periodHi)<<8 | uint16(dec.periodLo)
	}

	return f, nil
}
