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
	"bytes"
	"errors"
	"io"

	"github.com/jetsetilly/regplay/curated"
)

// Source is the byte stream that a decoder reads records from. Available()
// returns false when the stream has no more data.
type Source interface {
	io.Reader
	Available() bool
}

type byteSource struct {
	*bytes.Reader
}

func (src byteSource) Available() bool {
	return src.Len() > 0
}

// NewByteSource returns a Source for an in-memory register trace.
func NewByteSource(b []byte) Source {
	return byteSource{Reader: bytes.NewReader(b)}
}

// readRecordStart reads the first part of a record. a short read here is a
// clean end of track.
func readRecordStart(src Source, buf []byte) error {
	if !src.Available() {
		return curated.Errorf(EndOfTrack)
	}

	_, err := io.ReadFull(src, buf)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return curated.Errorf(EndOfTrack)
		}
		return curated.Errorf(Corrupt, err)
	}

	return nil
}

// readRecordBody reads the part of a record whose length has been declared by
// the start of the record. a short read here means the record is truncated.
func readRecordBody(src Source, buf []byte) error {
	n, err := io.ReadFull(src, buf)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return curated.Errorf(Corrupt, curated.Errorf("wanted %d bytes, got %d", len(buf), n))
		}
		return curated.Errorf(Corrupt, err)
	}
	return nil
}
