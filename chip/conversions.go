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

package chip

import (
	"math"
	"strings"
)

// LookupWaveform converts the control register value of a voice into a text
// description of the waveform. Combined waveforms are joined with a plus
// sign.
func LookupWaveform(ctrl uint8) string {
	if ctrl&0x08 == 0x08 {
		return "Test"
	}

	w := make([]string, 0, 4)
	if ctrl&0x10 == 0x10 {
		w = append(w, "Triangle")
	}
	if ctrl&0x20 == 0x20 {
		w = append(w, "Sawtooth")
	}
	if ctrl&0x40 == 0x40 {
		w = append(w, "Pulse")
	}
	if ctrl&0x80 == 0x80 {
		w = append(w, "Noise")
	}

	if len(w) == 0 {
		return "-"
	}
	return strings.Join(w, "+")
}

// Gate returns true if the gate bit of the control register is set.
func Gate(ctrl uint8) bool {
	return ctrl&0x01 == 0x01
}

// Clock frequencies of the sound chip in Hz.
const (
	ClockPAL  = 985248
	ClockNTSC = 1022727
)

// MusicalNote is the nearest note (C#4, D4, D#4, etc.) to the frequency of a
// voice.
type MusicalNote string

// NoMusicalNote is used when the frequency is outside the range of notes.
const NoMusicalNote = MusicalNote("-")

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// Frequency converts the 16-bit frequency register value of a voice into
// Hz.
func Frequency(freq uint16, clock int) float64 {
	return float64(freq) * float64(clock) / 16777216.0
}

// LookupMusicalNote converts the 16-bit frequency register value of a voice
// into the nearest musical note, using MIDI note numbering where A4 is 440Hz.
func LookupMusicalNote(freq uint16, clock int) MusicalNote {
	hz := Frequency(freq, clock)
	if hz < 16.0 {
		return NoMusicalNote
	}

	n := int(math.Round(12.0*math.Log2(hz/440.0))) + 69
	if n < 0 || n > 127 {
		return NoMusicalNote
	}

	return MusicalNote(noteNames[n%12] + string(rune('0'+n/12-1)))
}
