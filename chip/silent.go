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

import "github.com/jetsetilly/regplay/registers"

// Silent implements the registers.ChipWriter and render.Generator interfaces.
// It generates silence.
type Silent struct {
	regs   [registers.NumChipRegisters]uint8
	writes int
}

// WriteRegister implements the registers.ChipWriter interface.
func (c *Silent) WriteRegister(reg uint8, value uint8) {
	if int(reg) >= len(c.regs) {
		return
	}
	c.regs[reg] = value
	c.writes++
}

// Generate implements the render.Generator interface.
func (c *Silent) Generate(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
}

// Register returns the most recent value written to the register.
func (c *Silent) Register(reg uint8) uint8 {
	if int(reg) >= len(c.regs) {
		return 0
	}
	return c.regs[reg]
}

// Writes returns the number of register writes received.
func (c *Silent) Writes() int {
	return c.writes
}
