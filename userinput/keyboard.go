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

import (
	"bufio"
	"io"
)

// the number of events that can be waiting before keys are dropped
const queueLength = 16

// Keyboard translates key presses into events.
type Keyboard struct {
	events chan Event
}

// NewKeyboard is the preferred method of initialisation for the Keyboard
// type. Keys are read from the reader in a new goroutine until the reader
// returns an error. The events channel is closed when that happens.
func NewKeyboard(r io.Reader) *Keyboard {
	kb := &Keyboard{
		events: make(chan Event, queueLength),
	}

	go func() {
		defer close(kb.events)

		rd := bufio.NewReader(r)
		for {
			ev, err := readEvent(rd)
			if err != nil {
				return
			}
			if ev == EventNone {
				continue
			}

			// drop the event if the host is not keeping up
			select {
			case kb.events <- ev:
			default:
			}
		}
	}()

	return kb
}

// Events returns the channel that events are sent over.
func (kb *Keyboard) Events() <-chan Event {
	return kb.events
}

// Poll returns the next event without blocking. Returns EventNone if there is
// no event waiting. The second return value is false once the reader has been
// exhausted and all events have been consumed.
func (kb *Keyboard) Poll() (Event, bool) {
	select {
	case ev, ok := <-kb.events:
		if !ok {
			return EventNone, false
		}
		return ev, true
	default:
		return EventNone, true
	}
}

func readEvent(rd *bufio.Reader) (Event, error) {
	r, _, err := rd.ReadRune()
	if err != nil {
		return EventNone, err
	}

	switch r {
	case 'n', 'N', ' ', keyCarriageReturn, '\n':
		return EventSkip, nil
	case 's', 'S':
		return EventStatus, nil
	case 'q', 'Q', keyCtrlC, keyCtrlD:
		return EventQuit, nil
	case keyEsc:
		r, _, err := rd.ReadRune()
		if err != nil {
			return EventNone, err
		}
		if r != escCursor {
			return EventNone, nil
		}
		r, _, err = rd.ReadRune()
		if err != nil {
			return EventNone, err
		}
		switch r {
		case cursorForward, cursorDown:
			return EventSkip, nil
		case cursorUp, cursorBackward:
		}
	}

	return EventNone, nil
}
