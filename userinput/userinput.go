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

package userinput

import "github.com/jetsetilly/regplay/player"

// Event is a request from the user.
type Event int

// List of valid Event values.
const (
	EventNone Event = iota

	// skip to the next track. the "next song" button
	EventSkip

	// toggle the status line
	EventStatus

	// stop the player and exit
	EventQuit
)

func (ev Event) String() string {
	switch ev {
	case EventNone:
		return "none"
	case EventSkip:
		return "skip"
	case EventStatus:
		return "status"
	case EventQuit:
		return "quit"
	}
	return "unknown"
}

// Action returns the player action for the event. The second return value is
// false if the event is not handled by the player.
func (ev Event) Action() (player.Action, bool) {
	switch ev {
	case EventSkip:
		return player.SkipTrack, true
	}
	return 0, false
}

// list of ASCII codes for non-alphanumeric characters
const (
	keyCtrlC          = 3
	keyCtrlD          = 4
	keyCarriageReturn = 13
	keyEsc            = 27
)

// list of ASCII codes for characters that can follow keyEsc
const (
	escCursor = '['
)

// list of ASCII codes for characters that can follow escCursor
const (
	cursorUp       = 'A'
	cursorDown     = 'B'
	cursorForward  = 'C'
	cursorBackward = 'D'
)
