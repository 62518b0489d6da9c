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

import "fmt"

// NumVoices is the number of voices in the sound chip.
const NumVoices = 3

// the number of registers used by each voice. the voice registers are
// followed by the four filter and volume registers
const voiceRegisters = 7

// offsets of the registers within a voice
const (
	freqLo = iota
	freqHi
	pwLo
	pwHi
	control
	attackDecay
	sustainRelease
)

var voiceRegisterNames = [voiceRegisters]string{
	"FREQLO", "FREQHI", "PWLO", "PWHI", "CTRL", "AD", "SR",
}

var filterRegisterNames = [...]string{
	"FCLO", "FCHI", "RESFILT", "MODEVOL",
}

// RegisterName returns the name of the chip register.
func RegisterName(reg uint8) string {
	r := int(reg)
	if r < NumVoices*voiceRegisters {
		return fmt.Sprintf("V%d%s", r/voiceRegisters+1, voiceRegisterNames[r%voiceRegisters])
	}
	r -= NumVoices * voiceRegisters
	if r < len(filterRegisterNames) {
		return filterRegisterNames[r]
	}
	return fmt.Sprintf("REG%d", reg)
}

// Voice returns the voice that the register belongs to. Returns -1 if the
// register is not a voice register.
func Voice(reg uint8) int {
	if int(reg) >= NumVoices*voiceRegisters {
		return -1
	}
	return int(reg) / voiceRegisters
}
