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

// Package codec decodes register traces into frames. A register trace is a
// stream of records, one record per frame, describing the sound chip
// registers for that frame. Three record formats are supported:
//
//	Raw            25 bytes. the value of every chip register
//	Timed          27 bytes. as Raw followed by the frame period hi/lo bytes
//	RunLengthDiff  a count byte N followed by N (register, value) pairs
//
// Raw and Timed frames list every register and rely on the register bank to
// forward only those registers that have changed. RunLengthDiff frames list
// only the changed registers and so are forwarded unconditionally. In a
// RunLengthDiff frame, register 25 carries the high byte and register 26 the
// low byte of the frame period.
//
// Decoders return one of two curated errors when a frame cannot be produced.
// EndOfTrack means the stream ended cleanly at a record boundary. Corrupt
// means the stream ended part way through a record whose length had been
// declared, or that the stream could not be read.
package codec

import (
	"strings"

	"github.com/jetsetilly/regplay/curated"
	"github.com/jetsetilly/regplay/registers"
)

// Sentinal errors returned by Decoder.Next().
const (
	EndOfTrack = "codec: end of track"
	Corrupt    = "codec: corrupt record: %v"
)

// UnknownFormat is returned by ParseFormat().
const UnknownFormat = "codec: unknown format (%s)"

// DefaultPeriod is the frame period, in microseconds, of a track before any
// period override is seen. 50Hz PAL.
const DefaultPeriod = 20000

// Frame is the result of decoding one record. The Pairs slice is owned by
// the decoder and is only valid until the next call to Next().
type Frame struct {
	Pairs []registers.Pair

	// how the pairs should be applied to the register bank
	Mode registers.Mode

	// Period is valid only if Override is true. The value is in timer ticks
	Override bool
	Period   uint16
}

// Empty returns true if the frame changes nothing.
func (f Frame) Empty() bool {
	return len(f.Pairs) == 0 && !f.Override
}

// Decoder is implemented by each of the record formats.
type Decoder interface {
	// Next decodes the next record in the stream. The error will be a
	// curated error of EndOfTrack or Corrupt.
	Next() (Frame, error)

	Format() Format
}

// Format of a register trace.
type Format int

// List of valid Format values.
const (
	FormatRaw Format = iota
	FormatTimed
	FormatRunLengthDiff
)

func (f Format) String() string {
	switch f {
	case FormatRaw:
		return "raw"
	case FormatTimed:
		return "timed"
	case FormatRunLengthDiff:
		return "rld"
	}
	return "unknown"
}

// ParseFormat converts a format name to a Format value. Names are case
// insensitive.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "raw":
		return FormatRaw, nil
	case "timed", "cia":
		return FormatTimed, nil
	case "rld", "diff":
		return FormatRunLengthDiff, nil
	}
	return FormatRaw, curated.Errorf(UnknownFormat, s)
}

// NewDecoder returns a decoder of the specified format reading from the
// source.
func NewDecoder(f Format, src Source) (Decoder, error) {
	switch f {
	case FormatRaw:
		return NewRaw(src), nil
	case FormatTimed:
		return NewTimed(src), nil
	case FormatRunLengthDiff:
		return NewRunLengthDiff(src), nil
	}
	return nil, curated.Errorf(UnknownFormat, f)
}
