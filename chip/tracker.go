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
	"fmt"
	"io"

	"github.com/jetsetilly/regplay/registers"
)

// maximum number of entries kept by the Tracker
const maxEntries = 1024

// Entry is a single change to a voice.
type Entry struct {
	Frame int
	Voice int

	Frequency uint16
	Control   uint8

	Waveform    string
	Gate        bool
	MusicalNote MusicalNote
}

func (e Entry) String() string {
	gate := "-"
	if e.Gate {
		gate = "G"
	}
	return fmt.Sprintf("%6d V%d %04x %-4s %s %s", e.Frame, e.Voice+1, e.Frequency, e.MusicalNote, gate, e.Waveform)
}

// Tracker implements the registers.ChipWriter and render.Generator
// interfaces and keeps a history of the voice registers over time. Like
// Silent, it generates silence.
//
// A voice change is recorded at the end of the frame in which its frequency
// or control register was written.
type Tracker struct {
	Silent

	clock int
	frame int

	entries []Entry

	// voices written to during the current frame
	changed [NumVoices]bool

	// if echo is not nil, every register write and every entry is written to
	// it as it happens
	echo io.Writer
}

// NewTracker is the preferred method of initialisation for the Tracker type.
// The clock is used to convert frequencies into musical notes. The echo
// writer can be nil.
func NewTracker(clock int, echo io.Writer) *Tracker {
	return &Tracker{
		clock:   clock,
		entries: make([]Entry, 0, maxEntries),
		echo:    echo,
	}
}

// WriteRegister implements the registers.ChipWriter interface.
func (tr *Tracker) WriteRegister(reg uint8, value uint8) {
	tr.Silent.WriteRegister(reg, value)

	if tr.echo != nil {
		fmt.Fprintf(tr.echo, "%6d %-10s %02x\n", tr.frame, RegisterName(reg), value)
	}

	v := Voice(reg)
	if v == -1 {
		return
	}
	switch int(reg) % voiceRegisters {
	case freqLo, freqHi, control:
		tr.changed[v] = true
	}
}

// Generate implements the render.Generator interface. It is called once per
// frame after the register writes for that frame.
func (tr *Tracker) Generate(buf []byte) {
	tr.Silent.Generate(buf)
	tr.EndFrame()
}

// EndFrame records the voices that changed during the frame and begins a new
// frame. Called by Generate() or by the host when a frame is not rendered.
func (tr *Tracker) EndFrame() {
	for v := range tr.changed {
		if !tr.changed[v] {
			continue
		}
		tr.changed[v] = false

		base := uint8(v * voiceRegisters)
		freq := uint16(tr.Register(base+freqHi))<<8 | uint16(tr.Register(base+freqLo))
		ctrl := tr.Register(base + control)

		e := Entry{
			Frame:       tr.frame,
			Voice:       v,
			Frequency:   freq,
			Control:     ctrl,
			Waveform:    LookupWaveform(ctrl),
			Gate:        Gate(ctrl),
			MusicalNote: LookupMusicalNote(freq, tr.clock),
		}

		tr.entries = append(tr.entries, e)
		if len(tr.entries) > maxEntries {
			tr.entries = tr.entries[1:]
		}

		if tr.echo != nil {
			fmt.Fprintln(tr.echo, e.String())
		}
	}

	tr.frame++
}

// Frame returns the number of frames ended so far.
func (tr *Tracker) Frame() int {
	return tr.frame
}

// Copy makes a copy of the Tracker entries.
func (tr *Tracker) Copy() []Entry {
	c := make([]Entry, len(tr.entries))
	copy(c, tr.entries)
	return c
}

// compile time check that the Tracker satisfies the interface that the
// register bank requires
var _ registers.ChipWriter = (*Tracker)(nil)
