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

// Package userinput handles input from the user of the player and translates
// it into player actions.
//
// Input comes from the terminal, which is put into cbreak mode so that keys
// are available as soon as they are pressed. Keys are read in their own
// goroutine and forwarded over a channel. The host polls the channel without
// blocking, once per iteration of its loop.
package userinput
