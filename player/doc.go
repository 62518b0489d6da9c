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

// Package player is the playback controller. It ties together the register
// bank, the frame decoders, the frame pacer and the renderer, and owns the
// lifecycle of the current track.
//
// The Player is driven by the host calling Tick() repeatedly with the current
// time from a monotonic clock. Tick() never waits. If a frame is not yet due
// it returns immediately, leaving the host free to do other work (polling for
// user input for example). The only time Tick() takes longer is when the
// decoder is reading from a slow source.
//
// The state machine is:
//
//	Idle      -> Loading    on Select()
//	Loading   -> Playing    when the next track has been opened
//	Loading   -> ErrorHalt  when no track can be opened
//	Playing   -> Finished   at the end of the track, on a corrupt record, on
//	                        an overrun or on Skip()
//	Finished  -> Loading    automatically, on the next Tick()
//	ErrorHalt -> Loading    on Select(), once the host has dealt with the
//	                        cause
//
// A skipped track is abandoned immediately. Registers are not reset or
// silenced and the chip keeps its last values until the first frame of the
// next track overwrites them.
//
// The Player is not safe for concurrent use. All calls must be made from the
// host loop.
package player
