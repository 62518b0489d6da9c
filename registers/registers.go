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

// Package registers models the register file of the sound chip as seen by the
// player. The Bank holds the most recent value of every register together
// with a shadow of the value last forwarded to the chip. The shadow is used
// to forward only those registers that have changed.
//
// The bank has NumSlots slots. Slots 0 to 24 are chip registers, slots 25 and
// 26 hold the high and low bytes of the frame period and slots 27 and 28 are
// reserved. Only the chip registers are ever forwarded to the ChipWriter.
//
// Register indices of 27 and above are ignored. Traces are
// produced by external tools and a bad index is rare, so they are dropped
// rather than reported on every frame.
package registers

import (
	"fmt"
	"strings"
)

// Number of slots in the bank.
const (
	NumChipRegisters = 25
	PeriodHi         = 25
	PeriodLo         = 26
	NumSlots         = 29
)

// ChipWriter is the capability that receives register writes.
type ChipWriter interface {
	WriteRegister(reg uint8, value uint8)
}

// Mode specifies how Apply() decides which registers to forward.
type Mode int

// List of valid Mode values.
const (
	// forward a register only if its value differs from the shadow
	ModeDiff Mode = iota

	// forward every chip register listed, regardless of the shadow
	ModeForced
)

func (m Mode) String() string {
	switch m {
	case ModeDiff:
		return "diff"
	case ModeForced:
		return "forced"
	}
	return "unknown"
}

// the value held by a shadow that has never been written to. it is outside
// the range of a byte so it never compares equal to a register value.
const neverWritten = -1

// Bank is the register file.
type Bank struct {
	chip   ChipWriter
	value  [NumSlots]uint8
	shadow [NumSlots]int
}

// NewBank is the preferred method of initialisation for the Bank type.
func NewBank(chip ChipWriter) *Bank {
	bnk := &Bank{chip: chip}
	bnk.Reset()
	return bnk
}

// Reset clears all shadows so that the next Apply() forwards every register
// it lists. Register values are not cleared. The chip itself keeps whatever
// was last written to it.
func (bnk *Bank) Reset() {
	for i := range bnk.shadow {
		bnk.shadow[i] = neverWritten
	}
}

// Apply a sequence of register values to the bank. The pairs slice is
// processed in order. Returns the number of writes forwarded to the chip.
func (bnk *Bank) Apply(mode Mode, pairs []Pair) int {
	var n int

	for _, p := range pairs {
		if p.Reg > PeriodLo {
			continue
		}

		bnk.value[p.Reg] = p.Value

		if p.Reg >= NumChipRegisters {
			bnk.shadow[p.Reg] = int(p.Value)
			continue
		}

		if mode == ModeDiff && bnk.shadow[p.Reg] == int(p.Value) {
			continue
		}

		if bnk.chip != nil {
			bnk.chip.WriteRegister(p.Reg, p.Value)
		}
		bnk.shadow[p.Reg] = int(p.Value)
		n++
	}

	return n
}

// Value returns the most recent value of the register. Returns zero for an
// index outside the bank.
func (bnk *Bank) Value(reg uint8) uint8 {
	if int(reg) >= NumSlots {
		return 0
	}
	return bnk.value[reg]
}

// Shadow returns the value last forwarded to the chip and whether the
// register has been forwarded since the last Reset().
func (bnk *Bank) Shadow(reg uint8) (uint8, bool) {
	if int(reg) >= NumSlots || bnk.shadow[reg] == neverWritten {
		return 0, false
	}
	return uint8(bnk.shadow[reg]), true
}

// Written returns true if the register has been forwarded to the chip since
// the last Reset().
func (bnk *Bank) Written(reg uint8) bool {
	_, ok := bnk.Shadow(reg)
	return ok
}

// Period returns the frame period as held in the timing slots.
func (bnk *Bank) Period() uint16 {
	return uint16(bnk.value[PeriodHi])<<8 | uint16(bnk.value[PeriodLo])
}

// String returns the chip registers in groups of seven: one group for each
// of the three voices followed by the filter and volume registers.
func (bnk *Bank) String() string {
	s := strings.Builder{}
	for i := 0; i < NumChipRegisters; i++ {
		if i > 0 && i%7 == 0 {
			s.WriteString("| ")
		}
		s.WriteString(fmt.Sprintf("%02x ", bnk.value[i]))
	}
	return strings.TrimSpace(s.String())
}
