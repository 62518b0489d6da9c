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

package player

// State of the Player.
type State int

// List of valid State values.
const (
	Idle State = iota
	Loading
	Playing
	Finished
	ErrorHalt
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Playing:
		return "playing"
	case Finished:
		return "finished"
	case ErrorHalt:
		return "error"
	}
	return "unknown"
}

// Reason is the reason the most recent track finished.
type Reason int

// List of valid Reason values.
const (
	NotFinished Reason = iota
	EndOfTrack
	Corrupt
	Overrun
	Skipped
)

func (r Reason) String() string {
	switch r {
	case NotFinished:
		return "not finished"
	case EndOfTrack:
		return "end of track"
	case Corrupt:
		return "corrupt track"
	case Overrun:
		return "overrun"
	case Skipped:
		return "skipped"
	}
	return "unknown"
}

// Action is a request made by the host on behalf of the user. Input handling
// (buttons, keyboard) is the host's concern. The host translates input into
// an Action and passes it to Do().
type Action int

// List of valid Action values.
const (
	SkipTrack Action = iota
)

func (a Action) String() string {
	switch a {
	case SkipTrack:
		return "skip track"
	}
	return "unknown"
}
