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
	"io"

	"github.com/jetsetilly/regplay/curated"
	"github.com/jetsetilly/regplay/registers"
)

// TooManyPairs is returned when a record would need more than MaxPairs pairs.
const TooManyPairs = "codec: too many pairs for record (%d)"

// WriteRecord writes a single RunLengthDiff record containing the pairs
// exactly as given. Pairs are not filtered or reordered.
func WriteRecord(w io.Writer, pairs []registers.Pair) error {
	if len(pairs) > MaxPairs {
		return curated.Errorf(TooManyPairs, len(pairs))
	}

	b := make([]byte, 1, 1+len(pairs)*2)
	b[0] = uint8(len(pairs))
	for _, p := range pairs {
		b = append(b, p.Reg, p.Value)
	}

	_, err := w.Write(b)
	return err
}

// Encoder produces RunLengthDiff records from a sequence of register values.
// Only those registers which have changed since the previous call to Encode()
// are written. The first record written by an Encoder lists every register it
// is given.
type Encoder struct {
	w     io.Writer
	prev  [registers.NumSlots]int
	pairs []registers.Pair
}

// NewEncoder is the preferred method of initialisation for the Encoder type.
func NewEncoder(w io.Writer) *Encoder {
	enc := &Encoder{
		w:     w,
		pairs: make([]registers.Pair, 0, MaxPairs),
	}
	for i := range enc.prev {
		enc.prev[i] = -1
	}
	return enc
}

// Encode writes one record. Register indices outside of the register bank are
// dropped.
func (enc *Encoder) Encode(pairs []registers.Pair) error {
	enc.pairs = enc.pairs[:0]
	for _, p := range pairs {
		if int(p.Reg) >= registers.NumSlots {
			continue
		}
		if enc.prev[p.Reg] == int(p.Value) {
			continue
		}
		enc.prev[p.Reg] = int(p.Value)
		enc.pairs = append(enc.pairs, p)
	}
	return WriteRecord(enc.w, enc.pairs)
}

// Convert transcodes every frame from the decoder into RunLengthDiff records.
// Conversion stops cleanly at the end of the track. Returns the number of
// frames written.
func Convert(dec Decoder, w io.Writer) (int, error) {
	enc := NewEncoder(w)

	var n int
	for {
		f, err := dec.Next()
		if err != nil {
			if curated.Is(err, EndOfTrack) {
				return n, nil
			}
			return n, err
		}

		if err := enc.Encode(f.Pairs); err != nil {
			return n, err
		}
		n++
	}
}
