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

package chip_test

import (
	"testing"

	"github.com/jetsetilly/regplay/chip"
	"github.com/jetsetilly/regplay/registers"
	"github.com/jetsetilly/regplay/test"
)

func TestSilent(t *testing.T) {
	var c chip.Silent

	c.WriteRegister(4, 0x41)
	c.WriteRegister(24, 0x0f)
	c.WriteRegister(registers.PeriodHi, 0x01)
	test.ExpectEquality(t, c.Writes(), 2)
	test.ExpectEquality(t, c.Register(4), uint8(0x41))
	test.ExpectEquality(t, c.Register(24), uint8(0x0f))
	test.ExpectEquality(t, c.Register(registers.PeriodHi), uint8(0))

	buf := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	c.Generate(buf)
	for _, b := range buf {
		test.ExpectEquality(t, b, uint8(0))
	}
}

func TestRegisterNames(t *testing.T) {
	test.ExpectEquality(t, chip.RegisterName(0), "V1FREQLO")
	test.ExpectEquality(t, chip.RegisterName(11), "V2CTRL")
	test.ExpectEquality(t, chip.RegisterName(20), "V3SR")
	test.ExpectEquality(t, chip.RegisterName(21), "FCLO")
	test.ExpectEquality(t, chip.RegisterName(24), "MODEVOL")
	test.ExpectEquality(t, chip.RegisterName(25), "REG25")

	test.ExpectEquality(t, chip.Voice(6), 0)
	test.ExpectEquality(t, chip.Voice(7), 1)
	test.ExpectEquality(t, chip.Voice(21), -1)
}

func TestConversions(t *testing.T) {
	test.ExpectEquality(t, chip.LookupWaveform(0x00), "-")
	test.ExpectEquality(t, chip.LookupWaveform(0x41), "Pulse")
	test.ExpectEquality(t, chip.LookupWaveform(0x51), "Triangle+Pulse")
	test.ExpectEquality(t, chip.LookupWaveform(0x88), "Test")
	test.ExpectSuccess(t, chip.Gate(0x41))
	test.ExpectFailure(t, chip.Gate(0x40))

	// 440Hz on a PAL machine
	test.ExpectEquality(t, chip.LookupMusicalNote(7493, chip.ClockPAL), chip.MusicalNote("A4"))
	test.ExpectEquality(t, chip.LookupMusicalNote(7493*2, chip.ClockPAL), chip.MusicalNote("A5"))
	test.ExpectEquality(t, chip.LookupMusicalNote(0, chip.ClockPAL), chip.NoMusicalNote)
}

func TestTracker(t *testing.T) {
	w := &test.Writer{}
	tr := chip.NewTracker(chip.ClockPAL, w)

	bnk := registers.NewBank(tr)
	bnk.Apply(registers.ModeDiff, []registers.Pair{
		{Reg: 0, Value: 0x45},
		{Reg: 1, Value: 0x1d},
		{Reg: 4, Value: 0x41},
		{Reg: 24, Value: 0x0f},
	})
	tr.Generate(make([]byte, 8))

	// a frame that does not touch a voice adds no entries
	bnk.Apply(registers.ModeDiff, []registers.Pair{{Reg: 24, Value: 0x0f}})
	tr.Generate(make([]byte, 8))

	bnk.Apply(registers.ModeDiff, []registers.Pair{{Reg: 11, Value: 0x80}})
	tr.EndFrame()

	test.ExpectEquality(t, tr.Frame(), 3)
	test.ExpectEquality(t, tr.Writes(), 5)

	e := tr.Copy()
	test.DemandEquality(t, len(e), 2)
	test.ExpectEquality(t, e[0].Frame, 0)
	test.ExpectEquality(t, e[0].Voice, 0)
	test.ExpectEquality(t, e[0].Frequency, uint16(0x1d45))
	test.ExpectEquality(t, e[0].MusicalNote, chip.MusicalNote("A4"))
	test.ExpectEquality(t, e[0].Waveform, "Pulse")
	test.ExpectSuccess(t, e[0].Gate)
	test.ExpectEquality(t, e[1].Frame, 2)
	test.ExpectEquality(t, e[1].Voice, 1)
	test.ExpectEquality(t, e[1].Waveform, "Noise")
	test.ExpectFailure(t, e[1].Gate)

	test.ExpectSuccess(t, len(w.String()) > 0)
}
