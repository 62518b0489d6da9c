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

// Package chip contains implementations of the player.Chip interface that
// are useful to the host but which do not synthesise sound.
//
// Silent generates silence and remembers the most recent value written to
// each register. Tracker keeps a history of voice changes and can echo that
// history as text, which is how the DUMP mode shows a register trace.
//
// A real sound chip engine plugs into the player through the same
// registers.ChipWriter and render.Generator interfaces.
package chip
